package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/encomendas/internal/adapter/restapi"
	"github.com/polkiloo/encomendas/internal/app"
	"github.com/polkiloo/encomendas/internal/config"
	"github.com/polkiloo/encomendas/internal/domain/repository"
	"github.com/polkiloo/encomendas/internal/logger"
	"github.com/polkiloo/encomendas/internal/pkg/auth"
	"github.com/polkiloo/encomendas/internal/server/http/router"
	"github.com/polkiloo/encomendas/internal/storage/fallback"
	"github.com/polkiloo/encomendas/internal/storage/local"
	"github.com/polkiloo/encomendas/internal/storage/postgres"
	"github.com/polkiloo/encomendas/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		restapi.Module,
		fx.Provide(newRemoteOrders),
		local.Module,
		fallback.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

type remoteParams struct {
	fx.In

	Storage *postgres.Storage
	REST    *restapi.Gateway
}

type remoteResult struct {
	fx.Out

	Orders repository.OrderGateway
	Pinger repository.Pinger
}

// newRemoteOrders picks the orders table backend. The REST gateway wins when configured.
func newRemoteOrders(p remoteParams) remoteResult {
	if p.REST != nil {
		return remoteResult{Orders: p.REST, Pinger: p.REST}
	}
	return remoteResult{Orders: p.Storage.Orders(), Pinger: p.Storage}
}
