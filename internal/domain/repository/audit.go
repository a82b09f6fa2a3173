package repository

import (
	"context"

	"github.com/polkiloo/encomendas/internal/domain/model"
)

// AuditLog stores user actions.
type AuditLog interface {
	Append(ctx context.Context, action string, payload any) error
	List(ctx context.Context) ([]model.AuditEntry, error)
}
