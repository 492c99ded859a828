// Package storage selects the account store for the fx graph and seeds it.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/accounts/internal/config"
	"github.com/polkiloo/accounts/internal/domain/repository"
	pkgAuth "github.com/polkiloo/accounts/internal/pkg/auth"
	"github.com/polkiloo/accounts/internal/storage/memory"
	"github.com/polkiloo/accounts/internal/storage/postgres"
	"github.com/polkiloo/accounts/internal/storage/seed"
)

// Module provides repository.UserRepository and applies the seed fixture.
var Module = fx.Options(
	fx.Provide(newUserRepository),
	fx.Invoke(applySeed),
)

type repositoryParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Ctx       context.Context
	Config    *config.Config
	Logger    *slog.Logger
}

func newUserRepository(p repositoryParams) (repository.UserRepository, error) {
	if p.Config.DatabaseURI == "" {
		p.Logger.Info("using in-memory account store")
		return memory.New(), nil
	}
	storage, err := postgres.Open(p.Ctx, p.Lifecycle, p.Config.DatabaseURI, p.Logger)
	if err != nil {
		return nil, err
	}
	return storage, nil
}

type seedParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	Users  repository.UserRepository
	Hasher pkgAuth.PasswordHasher
}

func applySeed(p seedParams) error {
	if p.Config.SeedFile != "" {
		if err := seedFromFile(p); err != nil {
			return err
		}
	}

	total, err := p.Users.Count(p.Ctx)
	if err != nil {
		return fmt.Errorf("count accounts: %w", err)
	}
	p.Logger.Info("account store ready", slog.Int("accounts", total))
	return nil
}

func seedFromFile(p seedParams) error {
	records, err := seed.LoadFile(p.Config.SeedFile)
	if err != nil {
		return err
	}
	inserted, err := seed.Apply(p.Ctx, p.Users, p.Hasher, records, p.Logger)
	if err != nil {
		return err
	}
	p.Logger.Info("seed applied",
		slog.String("file", p.Config.SeedFile),
		slog.Int("records", len(records)),
		slog.Int("inserted", inserted),
	)
	return nil
}
