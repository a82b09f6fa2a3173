package handlers

import (
	"context"
	"time"

	"github.com/polkiloo/encomendas/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, in model.Registration) (model.Identity, string, error)
	Authenticate(ctx context.Context, username, password string) (model.Identity, string, error)
	Logout(ctx context.Context) error
	ParseToken(token string) (model.Identity, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	Orders(ctx context.Context, filter model.HistoryFilter) ([]model.Order, error)
	CreateOrder(ctx context.Context, in model.NewOrder) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus, chegada model.OptionalDate) (*model.Order, error)
	UpdateOrder(ctx context.Context, id int64, update model.OrderUpdate) (*model.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
	Dashboard(ctx context.Context) (*model.Dashboard, error)
	AuditLog(ctx context.Context) ([]model.AuditEntry, error)
	Now() time.Time
}

// TrackerFacade aggregates the full set of operations used across handlers.
type TrackerFacade interface {
	AuthFacade
	OrderFacade
}
