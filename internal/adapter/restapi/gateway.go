package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/encomendas/internal/domain/errors"
	"github.com/polkiloo/encomendas/internal/domain/model"
)

const ordersTable = "orders"

// Gateway maps orders to a PostgREST-style table endpoint.
type Gateway struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// row mirrors the snake_case shape of the remote table.
type row struct {
	ID          int64      `json:"id"`
	Cliente     string     `json:"cliente"`
	Contato     string     `json:"contato"`
	Produto     string     `json:"produto"`
	CodInterno  *string    `json:"cod_interno"`
	Observacao  *string    `json:"observacao"`
	Status      string     `json:"status"`
	DataPedido  model.Date `json:"data_pedido"`
	DataChegada model.Date `json:"data_chegada"`
	UserID      *int64     `json:"user_id"`
	CreatedAt   *time.Time `json:"created_at"`
}

func (r row) order() model.Order {
	o := model.Order{
		ID:          r.ID,
		Cliente:     r.Cliente,
		Contato:     r.Contato,
		Produto:     r.Produto,
		Status:      model.OrderStatus(r.Status),
		DataPedido:  r.DataPedido,
		DataChegada: model.DatePtr(r.DataChegada),
		UserID:      r.UserID,
		CreatedAt:   r.CreatedAt,
	}
	if r.CodInterno != nil {
		o.CodInterno = *r.CodInterno
	}
	if r.Observacao != nil {
		o.Observacao = *r.Observacao
	}
	return o
}

// NewGateway creates a gateway for the REST endpoint at baseURL.
func NewGateway(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) (*Gateway, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse orders api url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("orders api url must be absolute")
	}
	return &Gateway{
		baseURL: parsed,
		apiKey:  apiKey,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

func (g *Gateway) List(ctx context.Context) ([]model.Order, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", "data_pedido.desc,id.desc")

	rows, err := g.do(ctx, http.MethodGet, q, nil)
	if err != nil {
		return nil, err
	}
	result := make([]model.Order, 0, len(rows))
	for _, r := range rows {
		result = append(result, r.order())
	}
	return result, nil
}

func (g *Gateway) Get(ctx context.Context, id int64) (*model.Order, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("id", "eq."+strconv.FormatInt(id, 10))

	rows, err := g.do(ctx, http.MethodGet, q, nil)
	if err != nil {
		return nil, err
	}
	return single(rows, id)
}

func (g *Gateway) Insert(ctx context.Context, order model.Order) (*model.Order, error) {
	payload := map[string]any{
		"cliente":     order.Cliente,
		"contato":     order.Contato,
		"produto":     order.Produto,
		"cod_interno": nullIfEmpty(order.CodInterno),
		"observacao":  nullIfEmpty(order.Observacao),
		"status":      order.Status,
		"data_pedido": order.DataPedido,
		"user_id":     order.UserID,
	}
	if order.DataChegada != nil {
		payload["data_chegada"] = *order.DataChegada
	}

	rows, err := g.do(ctx, http.MethodPost, url.Values{}, payload)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("orders api: empty insert response")
	}
	o := rows[0].order()
	return &o, nil
}

func (g *Gateway) Update(ctx context.Context, id int64, update model.OrderUpdate) (*model.Order, error) {
	payload := updatePayload(update)
	if len(payload) == 0 {
		return g.Get(ctx, id)
	}

	q := url.Values{}
	q.Set("id", "eq."+strconv.FormatInt(id, 10))

	rows, err := g.do(ctx, http.MethodPatch, q, payload)
	if err != nil {
		return nil, err
	}
	return single(rows, id)
}

func (g *Gateway) Delete(ctx context.Context, id int64) error {
	q := url.Values{}
	q.Set("id", "eq."+strconv.FormatInt(id, 10))
	_, err := g.do(ctx, http.MethodDelete, q, nil)
	return err
}

// HealthCheck issues the cheapest possible read against the table.
func (g *Gateway) HealthCheck(ctx context.Context) error {
	q := url.Values{}
	q.Set("select", "id")
	q.Set("limit", "1")
	_, err := g.do(ctx, http.MethodGet, q, nil)
	return err
}

func (g *Gateway) do(ctx context.Context, method string, query url.Values, payload any) ([]row, error) {
	endpoint := *g.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/rest/v1/", ordersTable)
	endpoint.RawQuery = query.Encode()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode payload: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method == http.MethodPost || method == http.MethodPatch {
		req.Header.Set("Prefer", "return=representation")
	}
	if g.apiKey != "" {
		req.Header.Set("apikey", g.apiKey)
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domainErrors.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		g.logger.ErrorContext(ctx, "orders api request failed",
			slog.String("method", method),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(data)))
		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, fmt.Errorf("%w: orders api error: %s", domainErrors.ErrRemoteUnavailable, resp.Status)
		}
		return nil, fmt.Errorf("orders api error: %s", resp.Status)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var rows []row
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode orders api response: %w", err)
	}
	return rows, nil
}

func updatePayload(update model.OrderUpdate) map[string]any {
	payload := map[string]any{}
	if update.Status != nil {
		payload["status"] = *update.Status
	}
	if update.DataChegada.Set {
		if update.DataChegada.Value != nil {
			payload["data_chegada"] = *update.DataChegada.Value
		} else {
			payload["data_chegada"] = nil
		}
	}
	if update.Cliente != nil {
		payload["cliente"] = strings.TrimSpace(*update.Cliente)
	}
	if update.Contato != nil {
		payload["contato"] = strings.TrimSpace(*update.Contato)
	}
	if update.Produto != nil {
		payload["produto"] = strings.TrimSpace(*update.Produto)
	}
	if update.CodInterno != nil {
		payload["cod_interno"] = nullIfEmpty(strings.TrimSpace(*update.CodInterno))
	}
	if update.Observacao != nil {
		payload["observacao"] = nullIfEmpty(strings.TrimSpace(*update.Observacao))
	}
	return payload
}

func single(rows []row, id int64) (*model.Order, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("order %d: %w", id, domainErrors.ErrNotFound)
	}
	o := rows[0].order()
	return &o, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
