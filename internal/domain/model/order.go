package model

import (
	"strings"
	"time"

	domainErrors "github.com/polkiloo/encomendas/internal/domain/errors"
)

// OrderStatus describes where a package is in its pickup lifecycle.
type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "Pendente"
	OrderStatusArrived  OrderStatus = "Chegou"
	OrderStatusNotified OrderStatus = "Cliente avisado"
)

// OrderStatuses lists statuses in lifecycle order.
var OrderStatuses = []OrderStatus{OrderStatusPending, OrderStatusArrived, OrderStatusNotified}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusArrived, OrderStatusNotified:
		return true
	}
	return false
}

// Order is an incoming package awaiting client pickup.
type Order struct {
	ID          int64       `json:"id"`
	Cliente     string      `json:"cliente"`
	Contato     string      `json:"contato"`
	Produto     string      `json:"produto"`
	CodInterno  string      `json:"codInterno"`
	Observacao  string      `json:"observacao"`
	Status      OrderStatus `json:"status"`
	DataPedido  Date        `json:"dataPedido"`
	DataChegada *Date       `json:"dataChegada"`
	UserID      *int64      `json:"userId,omitempty"`
	CreatedAt   *time.Time  `json:"createdAt,omitempty"`
}

// NewOrder carries the fields supplied by the new order form.
type NewOrder struct {
	Cliente    string
	Contato    string
	Produto    string
	CodInterno string
	Observacao string
}

// Normalize trims every field.
func (n NewOrder) Normalize() NewOrder {
	return NewOrder{
		Cliente:    strings.TrimSpace(n.Cliente),
		Contato:    strings.TrimSpace(n.Contato),
		Produto:    strings.TrimSpace(n.Produto),
		CodInterno: strings.TrimSpace(n.CodInterno),
		Observacao: strings.TrimSpace(n.Observacao),
	}
}

// Validate requires cliente, contato and produto.
func (n NewOrder) Validate() error {
	if strings.TrimSpace(n.Cliente) == "" || strings.TrimSpace(n.Contato) == "" || strings.TrimSpace(n.Produto) == "" {
		return domainErrors.ErrInvalidOrder
	}
	return nil
}

// Draft builds a pending order dated today. The identifier is left for the owning store.
func (n NewOrder) Draft(today Date, userID *int64) Order {
	n = n.Normalize()
	return Order{
		Cliente:    n.Cliente,
		Contato:    n.Contato,
		Produto:    n.Produto,
		CodInterno: n.CodInterno,
		Observacao: n.Observacao,
		Status:     OrderStatusPending,
		DataPedido: today,
		UserID:     userID,
	}
}

// OrderUpdate is a partial update. Nil pointers and an unset DataChegada are left untouched.
type OrderUpdate struct {
	Cliente     *string
	Contato     *string
	Produto     *string
	CodInterno  *string
	Observacao  *string
	Status      *OrderStatus
	DataChegada OptionalDate
}

// Validate rejects blank required fields and unknown statuses.
func (u OrderUpdate) Validate() error {
	for _, field := range []*string{u.Cliente, u.Contato, u.Produto} {
		if field != nil && strings.TrimSpace(*field) == "" {
			return domainErrors.ErrInvalidOrder
		}
	}
	if u.Status != nil && !u.Status.Valid() {
		return domainErrors.ErrInvalidStatus
	}
	return nil
}

// Empty reports whether the update changes nothing.
func (u OrderUpdate) Empty() bool {
	return u.Cliente == nil && u.Contato == nil && u.Produto == nil &&
		u.CodInterno == nil && u.Observacao == nil && u.Status == nil && !u.DataChegada.Set
}

// ResolveArrival decides the arrival date written by a status change.
// An explicit date always wins. Moving to Chegou without a stored date stamps today,
// even when null was requested. Otherwise an explicit null clears and absence keeps.
func ResolveArrival(current *Date, status OrderStatus, requested OptionalDate, today Date) OptionalDate {
	if requested.Set && requested.Value != nil {
		return requested
	}
	if status == OrderStatusArrived && current == nil {
		return SetDate(today)
	}
	if requested.Set {
		return ClearDate()
	}
	return KeepDate()
}

// WithArrivalPolicy returns u with DataChegada resolved against the current record when u changes the status.
func (u OrderUpdate) WithArrivalPolicy(current Order, today Date) OrderUpdate {
	if u.Status == nil {
		return u
	}
	u.DataChegada = ResolveArrival(current.DataChegada, *u.Status, u.DataChegada, today)
	return u
}

// Apply writes the update onto o.
func (o *Order) Apply(u OrderUpdate) {
	if u.Cliente != nil {
		o.Cliente = strings.TrimSpace(*u.Cliente)
	}
	if u.Contato != nil {
		o.Contato = strings.TrimSpace(*u.Contato)
	}
	if u.Produto != nil {
		o.Produto = strings.TrimSpace(*u.Produto)
	}
	if u.CodInterno != nil {
		o.CodInterno = strings.TrimSpace(*u.CodInterno)
	}
	if u.Observacao != nil {
		o.Observacao = strings.TrimSpace(*u.Observacao)
	}
	if u.Status != nil {
		o.Status = *u.Status
	}
	if u.DataChegada.Set {
		o.DataChegada = u.DataChegada.Value
	}
}

// StatusUpdate is the update produced by a status change with an optional arrival date.
func StatusUpdate(status OrderStatus, chegada OptionalDate) OrderUpdate {
	return OrderUpdate{Status: &status, DataChegada: chegada}
}
