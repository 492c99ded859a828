package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/polkiloo/accounts/internal/domain/errors"
	"github.com/polkiloo/accounts/internal/domain/model"
	"github.com/polkiloo/accounts/internal/domain/repository"
	pkgAuth "github.com/polkiloo/accounts/internal/pkg/auth"
)

// AccountUseCase implements register, login, update and delete over a UserRepository.
// Every operation rejects a malformed email before touching the store.
type AccountUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAccountUseCase constructs AccountUseCase.
func NewAccountUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AccountUseCase {
	return &AccountUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register stores a new account. An email that is already stored yields ErrAlreadyExists.
func (u *AccountUseCase) Register(ctx context.Context, email, username, password string) (*model.User, error) {
	if !ValidateEmail(email) {
		return nil, domainErrors.ErrInvalidEmailFormat
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	return u.users.Create(ctx, username, email, hash)
}

// Login checks credentials and issues a session token for the account.
func (u *AccountUseCase) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	usr, err := u.verify(ctx, email, password)
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(usr.Email)
	if err != nil {
		return nil, "", err
	}
	return usr, token, nil
}

// Update overwrites username and password of the account stored under email.
// It does not check the current password.
func (u *AccountUseCase) Update(ctx context.Context, email, username, password string) (*model.User, error) {
	if !ValidateEmail(email) {
		return nil, domainErrors.ErrInvalidEmailFormat
	}

	if _, err := u.users.GetByEmail(ctx, email); err != nil {
		return nil, err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	return u.users.Update(ctx, email, username, email, hash)
}

// Delete removes the account after checking its password. A failed check
// leaves the store untouched.
func (u *AccountUseCase) Delete(ctx context.Context, email, password string) error {
	if _, err := u.verify(ctx, email, password); err != nil {
		return err
	}
	return u.users.Delete(ctx, email)
}

// Profile returns the account a session token was issued for.
func (u *AccountUseCase) Profile(ctx context.Context, email string) (*model.User, error) {
	return u.users.GetByEmail(ctx, email)
}

// ParseToken returns the account email carried by token.
func (u *AccountUseCase) ParseToken(token string) (string, error) {
	if token == "" {
		return "", pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

func (u *AccountUseCase) verify(ctx context.Context, email, password string) (*model.User, error) {
	if !ValidateEmail(email) {
		return nil, domainErrors.ErrInvalidEmailFormat
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		if errors.Is(err, pkgAuth.ErrPasswordMismatch) {
			return nil, domainErrors.ErrInvalidCredentials
		}
		return nil, err
	}
	return usr, nil
}
