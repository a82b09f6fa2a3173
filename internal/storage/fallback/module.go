package fallback

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/encomendas/internal/config"
	"github.com/polkiloo/encomendas/internal/domain/repository"
	"github.com/polkiloo/encomendas/internal/storage/local"
)

// Module exposes the order repository facade.
var Module = fx.Provide(newRepository)

type repositoryParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Remote repository.OrderGateway
	Local  *local.OrderStore
}

func newRepository(p repositoryParams) repository.OrderRepository {
	return New(p.Remote, p.Local, p.Logger, p.Config.Now)
}
