package app

import (
	"context"
	"time"

	"github.com/polkiloo/encomendas/internal/domain/model"
	"github.com/polkiloo/encomendas/internal/usecase"
)

// TrackerFacade exposes authentication and order tracking to the HTTP layer.
type TrackerFacade struct {
	auth   *usecase.AuthUseCase
	orders *usecase.OrderUseCase
}

func NewTrackerFacade(auth *usecase.AuthUseCase, orders *usecase.OrderUseCase) *TrackerFacade {
	return &TrackerFacade{auth: auth, orders: orders}
}

func (f *TrackerFacade) Register(ctx context.Context, in model.Registration) (model.Identity, string, error) {
	return f.auth.SignUp(ctx, in)
}

func (f *TrackerFacade) Authenticate(ctx context.Context, username, password string) (model.Identity, string, error) {
	return f.auth.SignIn(ctx, username, password)
}

func (f *TrackerFacade) Logout(ctx context.Context) error {
	return f.auth.SignOut(ctx)
}

func (f *TrackerFacade) ParseToken(token string) (model.Identity, error) {
	return f.auth.ParseToken(token)
}

func (f *TrackerFacade) Orders(ctx context.Context, filter model.HistoryFilter) ([]model.Order, error) {
	return f.orders.History(ctx, filter)
}

func (f *TrackerFacade) CreateOrder(ctx context.Context, in model.NewOrder) (*model.Order, error) {
	return f.orders.Create(ctx, in)
}

func (f *TrackerFacade) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus, chegada model.OptionalDate) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, id, status, chegada)
}

func (f *TrackerFacade) UpdateOrder(ctx context.Context, id int64, update model.OrderUpdate) (*model.Order, error) {
	return f.orders.UpdateFields(ctx, id, update)
}

func (f *TrackerFacade) DeleteOrder(ctx context.Context, id int64) error {
	return f.orders.Delete(ctx, id)
}

func (f *TrackerFacade) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	return f.orders.Dashboard(ctx)
}

func (f *TrackerFacade) AuditLog(ctx context.Context) ([]model.AuditEntry, error) {
	return f.orders.Audit(ctx)
}

func (f *TrackerFacade) Now() time.Time {
	return f.orders.Now()
}
