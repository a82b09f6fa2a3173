package restapi

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/encomendas/internal/config"
)

// Module exposes the REST orders gateway to the fx graph. The gateway is nil
// when no endpoint is configured.
var Module = fx.Provide(newGateway)

type gatewayParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newGateway(p gatewayParams) (*Gateway, error) {
	if p.Config.OrdersAPIURL == "" {
		return nil, nil
	}
	return NewGateway(p.Config.OrdersAPIURL, p.Config.OrdersAPIKey, p.Config.RemoteTimeout, p.Logger)
}
