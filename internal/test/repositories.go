package test

import (
	"context"
	"encoding/json"
	"sync"

	domainErrors "github.com/polkiloo/encomendas/internal/domain/errors"
	"github.com/polkiloo/encomendas/internal/domain/model"
	"github.com/polkiloo/encomendas/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email, fullName, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Email: email, FullName: fullName, PasswordHash: passwordHash}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// OrderGatewayStub is an in-memory remote table. Setting Err makes every call fail.
type OrderGatewayStub struct {
	mu     sync.Mutex
	Orders []model.Order
	Next   int64
	Err    error
	Calls  []string
}

func (s *OrderGatewayStub) record(op string) error {
	s.Calls = append(s.Calls, op)
	return s.Err
}

// SetErr switches the failure mode.
func (s *OrderGatewayStub) SetErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Err = err
}

// List returns stored rows, newest first.
func (s *OrderGatewayStub) List(ctx context.Context) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record("list"); err != nil {
		return nil, err
	}
	result := make([]model.Order, 0, len(s.Orders))
	for i := len(s.Orders) - 1; i >= 0; i-- {
		result = append(result, s.Orders[i])
	}
	return result, nil
}

// Get returns the row with id.
func (s *OrderGatewayStub) Get(ctx context.Context, id int64) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record("get"); err != nil {
		return nil, err
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Insert assigns the next identifier and stores order.
func (s *OrderGatewayStub) Insert(ctx context.Context, order model.Order) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record("insert"); err != nil {
		return nil, err
	}
	s.Next++
	order.ID = s.Next
	s.Orders = append(s.Orders, order)
	return &order, nil
}

// Update writes update onto the row with id as-is.
func (s *OrderGatewayStub) Update(ctx context.Context, id int64, update model.OrderUpdate) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record("update"); err != nil {
		return nil, err
	}
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			s.Orders[i].Apply(update)
			order := s.Orders[i]
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Delete removes the row with id if present.
func (s *OrderGatewayStub) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record("delete"); err != nil {
		return err
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

// AuditLogStub keeps audit entries in memory.
type AuditLogStub struct {
	mu      sync.Mutex
	Entries []model.AuditEntry
	Err     error
}

// Append records action unless Err is set.
func (s *AuditLogStub) Append(ctx context.Context, action string, payload any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	raw, _ := json.Marshal(payload)
	s.Entries = append(s.Entries, model.AuditEntry{ID: int64(len(s.Entries) + 1), Action: action, Payload: raw})
	return nil
}

// List returns recorded entries.
func (s *AuditLogStub) List(ctx context.Context) ([]model.AuditEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]model.AuditEntry(nil), s.Entries...), nil
}

// Actions lists recorded action names in order.
func (s *AuditLogStub) Actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	actions := make([]string, 0, len(s.Entries))
	for _, e := range s.Entries {
		actions = append(actions, e.Action)
	}
	return actions
}

// PingerStub reports health from a sequence of results.
type PingerStub struct {
	mu      sync.Mutex
	Results []error
	calls   int
}

// HealthCheck returns the next configured result, repeating the last one.
func (s *PingerStub) HealthCheck(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Results) == 0 {
		s.calls++
		return nil
	}
	idx := s.calls
	if idx >= len(s.Results) {
		idx = len(s.Results) - 1
	}
	s.calls++
	return s.Results[idx]
}

// Calls returns the number of health checks performed.
func (s *PingerStub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

var (
	_ repository.UserRepository = (*UserRepositoryStub)(nil)
	_ repository.OrderGateway   = (*OrderGatewayStub)(nil)
	_ repository.AuditLog       = (*AuditLogStub)(nil)
	_ repository.Pinger         = (*PingerStub)(nil)
)
