package repository

import (
	"context"

	"github.com/polkiloo/encomendas/internal/domain/model"
)

// OrderRepository is the single CRUD contract used by page controllers.
type OrderRepository interface {
	List(ctx context.Context) ([]model.Order, error)
	Create(ctx context.Context, in model.NewOrder) (*model.Order, error)
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus, chegada model.OptionalDate) (*model.Order, error)
	UpdateFields(ctx context.Context, id int64, update model.OrderUpdate) (*model.Order, error)
	Delete(ctx context.Context, id int64) error
}

// OrderGateway maps orders to the remote table. It applies no policy and returns remote errors as-is.
type OrderGateway interface {
	List(ctx context.Context) ([]model.Order, error)
	Get(ctx context.Context, id int64) (*model.Order, error)
	Insert(ctx context.Context, order model.Order) (*model.Order, error)
	Update(ctx context.Context, id int64, update model.OrderUpdate) (*model.Order, error)
	Delete(ctx context.Context, id int64) error
}

// Pinger reports remote store availability.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}
