package dto

import "github.com/polkiloo/encomendas/internal/domain/model"

// CreateOrderRequest is the new order form.
type CreateOrderRequest struct {
	Cliente    string `json:"cliente"`
	Contato    string `json:"contato"`
	Produto    string `json:"produto"`
	CodInterno string `json:"codInterno"`
	Observacao string `json:"observacao"`
}

// StatusRequest changes the status and, optionally, the arrival date.
// An absent dataChegada keeps the stored date; null clears it.
type StatusRequest struct {
	Status      model.OrderStatus  `json:"status"`
	DataChegada model.OptionalDate `json:"dataChegada"`
}

// UpdateOrderRequest is a partial update. Absent keys are left untouched.
type UpdateOrderRequest struct {
	Cliente     *string            `json:"cliente"`
	Contato     *string            `json:"contato"`
	Produto     *string            `json:"produto"`
	CodInterno  *string            `json:"codInterno"`
	Observacao  *string            `json:"observacao"`
	Status      *model.OrderStatus `json:"status"`
	DataChegada model.OptionalDate `json:"dataChegada"`
}

// OrderResponse is an order with its arrival estimate.
type OrderResponse struct {
	model.Order
	ETA string `json:"eta"`
}

// NewOrder converts the request into the domain payload.
func (r CreateOrderRequest) NewOrder() model.NewOrder {
	return model.NewOrder{
		Cliente:    r.Cliente,
		Contato:    r.Contato,
		Produto:    r.Produto,
		CodInterno: r.CodInterno,
		Observacao: r.Observacao,
	}
}

// Update converts the request into the domain partial update.
func (r UpdateOrderRequest) Update() model.OrderUpdate {
	return model.OrderUpdate{
		Cliente:     r.Cliente,
		Contato:     r.Contato,
		Produto:     r.Produto,
		CodInterno:  r.CodInterno,
		Observacao:  r.Observacao,
		Status:      r.Status,
		DataChegada: r.DataChegada,
	}
}
