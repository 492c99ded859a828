package auth

import (
	"log/slog"

	"github.com/polkiloo/accounts/internal/config"
	"go.uber.org/fx"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenStrategy),
)

func newPasswordHasher() PasswordHasher {
	return NewBcryptHasher(0)
}

type strategyParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newTokenStrategy(p strategyParams) Strategy {
	strategy := NewJWTStrategy(p.Config.JWTSecret, Options{TTL: p.Config.TokenTTL})
	p.Logger.Info("session tokens enabled",
		slog.String("strategy", strategy.Name()),
		slog.Duration("ttl", strategy.ttl),
	)
	return strategy
}
