package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/encomendas/internal/config"
	"github.com/polkiloo/encomendas/internal/domain/repository"
)

// Module provides the PostgreSQL storage and the users table. The orders table
// is exposed through Storage.Orders and chosen against the REST gateway in di.
var Module = fx.Options(
	fx.Provide(
		newStorage,
		func(s *Storage) repository.UserRepository { return s.Users() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Config.RemoteTimeout, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.StopHook(storage.Close))
}
