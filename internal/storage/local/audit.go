package local

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/encomendas/internal/domain/model"
)

// AuditLog is an append-only list of user actions kept in a local slot.
type AuditLog struct {
	slot   *Slot
	logger *slog.Logger
	now    func() time.Time

	mu sync.Mutex
}

// NewAuditLog creates an audit log over slot.
func NewAuditLog(slot *Slot, logger *slog.Logger, now func() time.Time) *AuditLog {
	if now == nil {
		now = time.Now
	}
	return &AuditLog{slot: slot, logger: logger, now: now}
}

// Append records action with an arbitrary JSON payload.
func (a *AuditLog) Append(ctx context.Context, action string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode audit payload: %w", err)
	}
	if payload == nil {
		raw = json.RawMessage(`{}`)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	entries, err := a.load(ctx)
	if err != nil {
		return err
	}

	now := a.now()
	id := now.UnixMilli()
	if n := len(entries); n > 0 && entries[n-1].ID >= id {
		id = entries[n-1].ID + 1
	}
	entries = append(entries, model.AuditEntry{ID: id, Action: action, Payload: raw, Date: now.UTC()})

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode audit log: %w", err)
	}
	return a.slot.Write(data)
}

// List returns entries oldest first.
func (a *AuditLog) List(ctx context.Context) ([]model.AuditEntry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.load(ctx)
}

func (a *AuditLog) load(ctx context.Context) ([]model.AuditEntry, error) {
	data, err := a.slot.Read()
	if err != nil {
		return nil, err
	}
	entries := []model.AuditEntry{}
	if len(data) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		a.logger.WarnContext(ctx, "corrupt audit slot, treating as empty", "slot", a.slot.Name(), "error", err)
		return []model.AuditEntry{}, nil
	}
	return entries, nil
}
