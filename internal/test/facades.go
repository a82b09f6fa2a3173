package test

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/encomendas/internal/domain/errors"
	"github.com/polkiloo/encomendas/internal/domain/model"
	"github.com/polkiloo/encomendas/internal/domain/repository"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	OrdersFn       func(context.Context, model.HistoryFilter) ([]model.Order, error)
	CreateFn       func(context.Context, model.NewOrder) (*model.Order, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus, model.OptionalDate) (*model.Order, error)
	UpdateFn       func(context.Context, int64, model.OrderUpdate) (*model.Order, error)
	DeleteFn       func(context.Context, int64) error
	DashboardFn    func(context.Context) (*model.Dashboard, error)
	AuditFn        func(context.Context) ([]model.AuditEntry, error)
	NowVal         time.Time
}

// Orders returns predefined orders.
func (s OrderFacadeStub) Orders(ctx context.Context, filter model.HistoryFilter) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, filter)
	}
	return []model.Order{{ID: 1, Cliente: "Ana", Contato: "11999990000", Produto: "Caixa A", Status: model.OrderStatusPending, DataPedido: model.DateOf(s.Now())}}, nil
}

// CreateOrder echoes the input as a pending order.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, in model.NewOrder) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, in)
	}
	order := in.Draft(model.DateOf(s.Now()), nil)
	order.ID = 1
	return &order, nil
}

// UpdateOrderStatus returns an order carrying the requested status.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus, chegada model.OptionalDate) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status, chegada)
	}
	return &model.Order{ID: id, Status: status, DataChegada: chegada.Value}, nil
}

// UpdateOrder applies update to an empty order with id.
func (s OrderFacadeStub) UpdateOrder(ctx context.Context, id int64, update model.OrderUpdate) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, update)
	}
	order := model.Order{ID: id, Status: model.OrderStatusPending}
	order.Apply(update)
	return &order, nil
}

// DeleteOrder executes configured delete handler.
func (s OrderFacadeStub) DeleteOrder(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// Dashboard summarizes the default order list.
func (s OrderFacadeStub) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	if s.DashboardFn != nil {
		return s.DashboardFn(ctx)
	}
	orders, _ := s.Orders(ctx, model.HistoryFilter{})
	return model.BuildDashboard(orders, s.Now()), nil
}

// AuditLog returns preconfigured entries.
func (s OrderFacadeStub) AuditLog(ctx context.Context) ([]model.AuditEntry, error) {
	if s.AuditFn != nil {
		return s.AuditFn(ctx)
	}
	return []model.AuditEntry{}, nil
}

// Now returns NowVal or a fixed day.
func (s OrderFacadeStub) Now() time.Time {
	if !s.NowVal.IsZero() {
		return s.NowVal
	}
	return time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC)
}

// OrderRepositoryStub is an in-memory order repository applying the arrival policy.
type OrderRepositoryStub struct {
	mu     sync.Mutex
	Orders []model.Order
	Today  model.Date
	Err    error
	next   int64
}

// List returns stored orders.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]model.Order{}, s.Orders...), nil
}

// Create validates in and stores a pending order.
func (s *OrderRepositoryStub) Create(ctx context.Context, in model.NewOrder) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	s.next++
	order := in.Draft(s.Today, nil)
	order.ID = s.next
	s.Orders = append(s.Orders, order)
	return &order, nil
}

// UpdateStatus changes the status of the order with id.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus, chegada model.OptionalDate) (*model.Order, error) {
	if !status.Valid() {
		return nil, domainErrors.ErrInvalidStatus
	}
	return s.UpdateFields(ctx, id, model.StatusUpdate(status, chegada))
}

// UpdateFields applies update to the order with id.
func (s *OrderRepositoryStub) UpdateFields(ctx context.Context, id int64, update model.OrderUpdate) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if err := update.Validate(); err != nil {
		return nil, err
	}
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			s.Orders[i].Apply(update.WithArrivalPolicy(s.Orders[i], s.Today))
			order := s.Orders[i]
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Delete removes the order with id if present.
func (s *OrderRepositoryStub) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	kept := s.Orders[:0]
	for _, o := range s.Orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	s.Orders = kept
	return nil
}

var _ repository.OrderRepository = (*OrderRepositoryStub)(nil)
