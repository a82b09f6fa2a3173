package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/polkiloo/encomendas/internal/domain/model"
	"github.com/polkiloo/encomendas/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle logic on top of the order repository.
type OrderUseCase struct {
	orders repository.OrderRepository
	audit  repository.AuditLog
	logger *slog.Logger
	now    func() time.Time
}

// NewOrderUseCase constructs OrderUseCase. now decides what "today" is.
func NewOrderUseCase(orders repository.OrderRepository, audit repository.AuditLog, logger *slog.Logger, now func() time.Time) *OrderUseCase {
	if now == nil {
		now = time.Now
	}
	return &OrderUseCase{orders: orders, audit: audit, logger: logger, now: now}
}

// List returns every order, newest first when served remotely.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

// Create registers a new pending order.
func (u *OrderUseCase) Create(ctx context.Context, in model.NewOrder) (*model.Order, error) {
	order, err := u.orders.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	u.record(ctx, "create", order)
	return order, nil
}

// UpdateStatus moves an order to status, optionally setting or clearing its arrival date.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus, chegada model.OptionalDate) (*model.Order, error) {
	order, err := u.orders.UpdateStatus(ctx, id, status, chegada)
	if err != nil {
		return nil, err
	}
	u.record(ctx, "update_status", order)
	return order, nil
}

// UpdateFields applies a partial update.
func (u *OrderUseCase) UpdateFields(ctx context.Context, id int64, update model.OrderUpdate) (*model.Order, error) {
	order, err := u.orders.UpdateFields(ctx, id, update)
	if err != nil {
		return nil, err
	}
	u.record(ctx, "update", order)
	return order, nil
}

// Delete removes an order. Unknown identifiers are ignored.
func (u *OrderUseCase) Delete(ctx context.Context, id int64) error {
	if err := u.orders.Delete(ctx, id); err != nil {
		return err
	}
	u.record(ctx, "delete", map[string]int64{"id": id})
	return nil
}

// Dashboard summarizes all orders and the ones placed today.
func (u *OrderUseCase) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	return model.BuildDashboard(orders, u.now()), nil
}

// History lists the orders matching filter.
func (u *OrderUseCase) History(ctx context.Context, filter model.HistoryFilter) ([]model.Order, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(orders), nil
}

// Audit lists recorded actions.
func (u *OrderUseCase) Audit(ctx context.Context) ([]model.AuditEntry, error) {
	if u.audit == nil {
		return []model.AuditEntry{}, nil
	}
	return u.audit.List(ctx)
}

// Now returns the current time in the configured location.
func (u *OrderUseCase) Now() time.Time {
	return u.now()
}

func (u *OrderUseCase) record(ctx context.Context, action string, payload any) {
	if u.audit == nil {
		return
	}
	if err := u.audit.Append(ctx, action, payload); err != nil && u.logger != nil {
		u.logger.Warn("audit append failed", slog.String("action", action), slog.Any("error", err))
	}
}
