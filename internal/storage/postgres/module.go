package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"
)

// Open builds Storage for dsn and closes it when the application stops.
func Open(ctx context.Context, lc fx.Lifecycle, dsn string, logger *slog.Logger) (*Storage, error) {
	storage, err := New(ctx, dsn, logger)
	if err != nil {
		return nil, err
	}
	registerLifecycle(lc, storage, logger)
	return storage, nil
}

// registerLifecycle refuses to start when the database stops answering
// between pool creation and application start.
func registerLifecycle(lc fx.Lifecycle, storage *Storage, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := storage.Ping(ctx); err != nil {
				return fmt.Errorf("postgres ping: %w", err)
			}
			logger.Info("postgres reachable")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
