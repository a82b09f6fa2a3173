package fallback

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	domainErrors "github.com/polkiloo/encomendas/internal/domain/errors"
	"github.com/polkiloo/encomendas/internal/domain/model"
	"github.com/polkiloo/encomendas/internal/domain/repository"
	"github.com/polkiloo/encomendas/internal/metrics"
	"github.com/polkiloo/encomendas/internal/session"
)

// LocalStore is the persisted collection used when the remote store fails.
type LocalStore interface {
	Load(ctx context.Context) ([]model.Order, error)
	Create(ctx context.Context, order model.Order) (*model.Order, error)
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus, chegada model.OptionalDate, today model.Date) (*model.Order, error)
	UpdateFields(ctx context.Context, id int64, update model.OrderUpdate, today model.Date) (*model.Order, error)
	Delete(ctx context.Context, id int64) error
}

// Repository tries the remote gateway first and falls back to the local store on any
// remote error. Input is validated before either store is touched. Records written
// locally are never copied to the remote store.
type Repository struct {
	remote repository.OrderGateway
	local  LocalStore
	logger *slog.Logger
	now    func() time.Time
}

var _ repository.OrderRepository = (*Repository)(nil)

// New builds the facade. now decides what "today" is.
func New(remote repository.OrderGateway, local LocalStore, logger *slog.Logger, now func() time.Time) *Repository {
	if now == nil {
		now = time.Now
	}
	return &Repository{remote: remote, local: local, logger: logger, now: now}
}

func (r *Repository) List(ctx context.Context) ([]model.Order, error) {
	orders, err := r.remote.List(ctx)
	if err == nil {
		return orders, nil
	}
	r.fallback(ctx, "list", err)
	return r.local.Load(ctx)
}

func (r *Repository) Create(ctx context.Context, in model.NewOrder) (*model.Order, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	today := r.today()

	var userID *int64
	identity, ok := session.IdentityFrom(ctx)
	if ok {
		userID = &identity.UserID
	}
	draft := in.Draft(today, userID)

	var err error
	if ok {
		var created *model.Order
		created, err = r.remote.Insert(ctx, draft)
		if err == nil {
			metrics.OrdersCreatedTotal.WithLabelValues(metrics.StoreRemote).Inc()
			return created, nil
		}
	} else {
		err = domainErrors.ErrUnauthenticated
	}

	r.fallback(ctx, "create", err)
	created, err := r.local.Create(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("local create: %w", err)
	}
	metrics.OrdersCreatedTotal.WithLabelValues(metrics.StoreLocal).Inc()
	return created, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus, chegada model.OptionalDate) (*model.Order, error) {
	if !status.Valid() {
		return nil, domainErrors.ErrInvalidStatus
	}
	today := r.today()

	updated, err := r.remoteUpdate(ctx, id, model.StatusUpdate(status, chegada), today)
	if err == nil {
		return updated, nil
	}
	r.fallback(ctx, "update_status", err)
	return r.local.UpdateStatus(ctx, id, status, chegada, today)
}

func (r *Repository) UpdateFields(ctx context.Context, id int64, update model.OrderUpdate) (*model.Order, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}
	today := r.today()

	updated, err := r.remoteUpdate(ctx, id, update, today)
	if err == nil {
		return updated, nil
	}
	r.fallback(ctx, "update_fields", err)
	return r.local.UpdateFields(ctx, id, update, today)
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	err := r.remote.Delete(ctx, id)
	if err == nil {
		return nil
	}
	r.fallback(ctx, "delete", err)
	return r.local.Delete(ctx, id)
}

// remoteUpdate resolves the arrival date against the remote record before writing,
// since the gateway applies no policy of its own.
func (r *Repository) remoteUpdate(ctx context.Context, id int64, update model.OrderUpdate, today model.Date) (*model.Order, error) {
	if update.Status != nil {
		current, err := r.remote.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		update = update.WithArrivalPolicy(*current, today)
	}
	return r.remote.Update(ctx, id, update)
}

func (r *Repository) fallback(ctx context.Context, operation string, err error) {
	metrics.StoreFallbackTotal.WithLabelValues(operation).Inc()
	r.logger.WarnContext(ctx, "remote order store unavailable, using local fallback",
		slog.String("operation", operation),
		slog.Any("error", err))
}

func (r *Repository) today() model.Date {
	return model.DateOf(r.now())
}
