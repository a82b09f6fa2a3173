package local

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/encomendas/internal/domain/errors"
	"github.com/polkiloo/encomendas/internal/domain/model"
)

// OrderStore keeps orders in a local slot when the remote store is unreachable.
// Every mutation loads the whole collection, changes it and saves it back.
type OrderStore struct {
	slot   *Slot
	logger *slog.Logger
	now    func() time.Time

	mu sync.Mutex
}

// NewOrderStore creates a store over slot.
func NewOrderStore(slot *Slot, logger *slog.Logger, now func() time.Time) *OrderStore {
	if now == nil {
		now = time.Now
	}
	return &OrderStore{slot: slot, logger: logger, now: now}
}

// Load returns all records in insertion order. Missing or corrupt content yields an empty collection.
func (s *OrderStore) Load(ctx context.Context) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Save overwrites the collection.
func (s *OrderStore) Save(ctx context.Context, orders []model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(orders)
}

// Create appends order under a fresh local identifier.
func (s *OrderStore) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	order.ID = nextID(s.now(), orders)
	order.CreatedAt = nil
	orders = append(orders, order)

	if err := s.save(orders); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus changes the status of id, resolving the arrival date against the stored record.
func (s *OrderStore) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus, chegada model.OptionalDate, today model.Date) (*model.Order, error) {
	return s.mutate(ctx, id, func(o *model.Order) {
		o.Apply(model.StatusUpdate(status, model.ResolveArrival(o.DataChegada, status, chegada, today)))
	})
}

// UpdateFields applies a partial update to id. A status change in the update follows the
// same arrival date policy as UpdateStatus.
func (s *OrderStore) UpdateFields(ctx context.Context, id int64, update model.OrderUpdate, today model.Date) (*model.Order, error) {
	return s.mutate(ctx, id, func(o *model.Order) {
		o.Apply(update.WithArrivalPolicy(*o, today))
	})
}

// Delete removes id. Removing an unknown id leaves the collection unchanged.
func (s *OrderStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := orders[:0]
	for _, o := range orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	if len(kept) == len(orders) {
		return nil
	}
	return s.save(kept)
}

func (s *OrderStore) mutate(ctx context.Context, id int64, fn func(*model.Order)) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		fn(&orders[i])
		if err := s.save(orders); err != nil {
			return nil, err
		}
		updated := orders[i]
		return &updated, nil
	}
	return nil, fmt.Errorf("local order %d: %w", id, domainErrors.ErrNotFound)
}

func (s *OrderStore) load(ctx context.Context) ([]model.Order, error) {
	data, err := s.slot.Read()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []model.Order{}, nil
	}

	var orders []model.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		s.logger.WarnContext(ctx, "corrupt local slot, treating as empty", "slot", s.slot.Name(), "error", err)
		return []model.Order{}, nil
	}

	for i := range orders {
		if orders[i].DataChegada != nil && orders[i].DataChegada.IsZero() {
			orders[i].DataChegada = nil
		}
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

func (s *OrderStore) save(orders []model.Order) error {
	if orders == nil {
		orders = []model.Order{}
	}
	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("encode local orders: %w", err)
	}
	return s.slot.Write(data)
}

// nextID derives an identifier from the wall clock, bumped past the largest id in use.
func nextID(now time.Time, orders []model.Order) int64 {
	id := now.UnixMilli()
	for _, o := range orders {
		if o.ID >= id {
			id = o.ID + 1
		}
	}
	return id
}
