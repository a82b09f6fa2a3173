package model

import "strings"

// HistoryFilter narrows the order history. Zero fields match everything.
type HistoryFilter struct {
	Search string
	Status *OrderStatus
	From   Date
	To     Date
}

// Match reports whether o passes the filter. Search is a case-insensitive
// substring of cliente or produto; the date range is inclusive on dataPedido.
func (f HistoryFilter) Match(o Order) bool {
	if search := strings.ToLower(strings.TrimSpace(f.Search)); search != "" {
		if !strings.Contains(strings.ToLower(o.Cliente), search) && !strings.Contains(strings.ToLower(o.Produto), search) {
			return false
		}
	}
	if f.Status != nil && o.Status != *f.Status {
		return false
	}
	if !f.From.IsZero() && o.DataPedido.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && o.DataPedido.After(f.To) {
		return false
	}
	return true
}

// Apply keeps the orders matching f in their original order.
func (f HistoryFilter) Apply(orders []Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		if f.Match(o) {
			result = append(result, o)
		}
	}
	return result
}
