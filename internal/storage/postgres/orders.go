package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/encomendas/internal/domain/errors"
	"github.com/polkiloo/encomendas/internal/domain/model"
)

const orderColumns = `id, cliente, contato, produto, cod_interno, observacao, status, data_pedido, data_chegada, user_id, created_at`

func (g *orderGateway) List(ctx context.Context) ([]model.Order, error) {
	ctx, cancel := g.storage.bound(ctx)
	defer cancel()

	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY data_pedido DESC, id DESC`
	rows, err := g.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (g *orderGateway) Get(ctx context.Context, id int64) (*model.Order, error) {
	ctx, cancel := g.storage.bound(ctx)
	defer cancel()

	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	o, err := scanOrder(g.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("order %d: %w", id, domainErrors.ErrNotFound)
		}
		return nil, err
	}
	return &o, nil
}

func (g *orderGateway) Insert(ctx context.Context, order model.Order) (*model.Order, error) {
	ctx, cancel := g.storage.bound(ctx)
	defer cancel()

	query := `INSERT INTO orders (cliente, contato, produto, cod_interno, observacao, status, data_pedido, data_chegada, user_id)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
              RETURNING ` + orderColumns
	o, err := scanOrder(g.storage.pool.QueryRow(ctx, query,
		order.Cliente,
		order.Contato,
		order.Produto,
		nullIfEmpty(order.CodInterno),
		nullIfEmpty(order.Observacao),
		string(order.Status),
		order.DataPedido.Time(),
		dateArg(order.DataChegada),
		order.UserID,
	))
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (g *orderGateway) Update(ctx context.Context, id int64, update model.OrderUpdate) (*model.Order, error) {
	sets, args := updateAssignments(update)
	if len(sets) == 0 {
		return g.Get(ctx, id)
	}

	ctx, cancel := g.storage.bound(ctx)
	defer cancel()

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE orders SET %s WHERE id=$%d RETURNING %s`, strings.Join(sets, ", "), len(args), orderColumns)
	o, err := scanOrder(g.storage.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("order %d: %w", id, domainErrors.ErrNotFound)
		}
		return nil, err
	}
	return &o, nil
}

func (g *orderGateway) Delete(ctx context.Context, id int64) error {
	ctx, cancel := g.storage.bound(ctx)
	defer cancel()

	_, err := g.storage.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	return err
}

// updateAssignments lists "column=$n" pairs for the fields present in update.
func updateAssignments(update model.OrderUpdate) ([]string, []any) {
	var (
		sets []string
		args []any
	)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s=$%d", column, len(args)))
	}

	if update.Status != nil {
		add("status", string(*update.Status))
	}
	if update.DataChegada.Set {
		add("data_chegada", dateArg(update.DataChegada.Value))
	}
	if update.Cliente != nil {
		add("cliente", strings.TrimSpace(*update.Cliente))
	}
	if update.Contato != nil {
		add("contato", strings.TrimSpace(*update.Contato))
	}
	if update.Produto != nil {
		add("produto", strings.TrimSpace(*update.Produto))
	}
	if update.CodInterno != nil {
		add("cod_interno", nullIfEmpty(strings.TrimSpace(*update.CodInterno)))
	}
	if update.Observacao != nil {
		add("observacao", nullIfEmpty(strings.TrimSpace(*update.Observacao)))
	}
	return sets, args
}

func scanOrder(row pgx.Row) (model.Order, error) {
	var (
		o           model.Order
		codInterno  *string
		observacao  *string
		status      string
		dataPedido  time.Time
		dataChegada *time.Time
		createdAt   time.Time
	)
	err := row.Scan(&o.ID, &o.Cliente, &o.Contato, &o.Produto, &codInterno, &observacao, &status, &dataPedido, &dataChegada, &o.UserID, &createdAt)
	if err != nil {
		return model.Order{}, err
	}

	if codInterno != nil {
		o.CodInterno = *codInterno
	}
	if observacao != nil {
		o.Observacao = *observacao
	}
	o.Status = model.OrderStatus(status)
	o.DataPedido = model.DateOf(dataPedido)
	if dataChegada != nil {
		o.DataChegada = model.DatePtr(model.DateOf(*dataChegada))
	}
	if !createdAt.IsZero() {
		o.CreatedAt = &createdAt
	}
	return o, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func dateArg(d *model.Date) *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time()
	return &t
}
