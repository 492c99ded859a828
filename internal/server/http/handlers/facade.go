package handlers

import (
	"context"

	"github.com/polkiloo/accounts/internal/domain/model"
)

// AccountFacade describes the account operations exposed via HTTP.
type AccountFacade interface {
	Register(ctx context.Context, email, username, password string) error
	Login(ctx context.Context, email, password string) (string, string, error)
	Update(ctx context.Context, email, username, password string) (string, error)
	Delete(ctx context.Context, email, password string) error
	Profile(ctx context.Context, email string) (*model.User, error)
	ParseToken(token string) (string, error)
}
