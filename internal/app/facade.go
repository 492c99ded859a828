package app

import (
	"context"

	"github.com/polkiloo/accounts/internal/domain/model"
	"github.com/polkiloo/accounts/internal/usecase"
)

// AccountFacade adapts AccountUseCase to the shape the HTTP layer consumes.
type AccountFacade struct {
	accounts *usecase.AccountUseCase
}

func NewAccountFacade(accounts *usecase.AccountUseCase) *AccountFacade {
	return &AccountFacade{accounts: accounts}
}

func (f *AccountFacade) Register(ctx context.Context, email, username, password string) error {
	_, err := f.accounts.Register(ctx, email, username, password)
	return err
}

// Login returns the stored username and a fresh session token.
func (f *AccountFacade) Login(ctx context.Context, email, password string) (string, string, error) {
	user, token, err := f.accounts.Login(ctx, email, password)
	if err != nil {
		return "", "", err
	}
	return user.Username, token, nil
}

// Update returns the username now stored for email.
func (f *AccountFacade) Update(ctx context.Context, email, username, password string) (string, error) {
	user, err := f.accounts.Update(ctx, email, username, password)
	if err != nil {
		return "", err
	}
	return user.Username, nil
}

func (f *AccountFacade) Delete(ctx context.Context, email, password string) error {
	return f.accounts.Delete(ctx, email, password)
}

func (f *AccountFacade) Profile(ctx context.Context, email string) (*model.User, error) {
	return f.accounts.Profile(ctx, email)
}

func (f *AccountFacade) ParseToken(token string) (string, error) {
	return f.accounts.ParseToken(token)
}
