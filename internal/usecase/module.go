package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/encomendas/internal/config"
	"github.com/polkiloo/encomendas/internal/domain/repository"
	pkgAuth "github.com/polkiloo/encomendas/internal/pkg/auth"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newAuthUseCase,
	newOrderUseCase,
)

func newAuthUseCase(
	cfg *config.Config,
	users repository.UserRepository,
	hasher pkgAuth.PasswordHasher,
	strategy pkgAuth.Strategy,
	audit repository.AuditLog,
	logger *slog.Logger,
) *AuthUseCase {
	return NewAuthUseCase(users, hasher, strategy, audit, logger, cfg.UserEmailDomain)
}

func newOrderUseCase(cfg *config.Config, orders repository.OrderRepository, audit repository.AuditLog, logger *slog.Logger) *OrderUseCase {
	return NewOrderUseCase(orders, audit, logger, cfg.Now)
}
