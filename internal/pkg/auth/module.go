package auth

import (
	"go.uber.org/fx"

	"github.com/polkiloo/encomendas/internal/config"
)

// Module provides the password hasher and the session token strategy.
var Module = fx.Provide(
	newPasswordHasher,
	newTokenStrategy,
)

func newPasswordHasher(cfg *config.Config) PasswordHasher {
	return NewBcryptHasher(cfg.BcryptCost)
}

type strategyParams struct {
	fx.In

	Config *config.Config
}

// newTokenStrategy signs tokens with the configured secret. Expiry follows the
// configured clock so that TIMEZONE and tests agree on "now".
func newTokenStrategy(p strategyParams) Strategy {
	return NewJWTStrategy(p.Config.JWTSecret, Options{TTL: p.Config.TokenTTL, Now: p.Config.Now})
}
