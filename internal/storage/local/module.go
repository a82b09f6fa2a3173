package local

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/encomendas/internal/config"
	"github.com/polkiloo/encomendas/internal/domain/repository"
)

// Module wires the local fallback store and the audit log.
var Module = fx.Options(
	fx.Provide(
		newOrderStore,
		newAuditLog,
		func(a *AuditLog) repository.AuditLog { return a },
	),
)

func newOrderStore(cfg *config.Config, logger *slog.Logger) *OrderStore {
	return NewOrderStore(NewSlot(cfg.LocalStoreDir, cfg.LocalOrdersSlot), logger, cfg.Now)
}

func newAuditLog(cfg *config.Config, logger *slog.Logger) *AuditLog {
	return NewAuditLog(NewSlot(cfg.LocalStoreDir, cfg.AuditSlot), logger, cfg.Now)
}
