package repository

import (
	"context"

	"github.com/polkiloo/accounts/internal/domain/model"
)

// UserRepository describes persistence operations for accounts keyed by email.
//
// Create must reject an email that is already stored with ErrAlreadyExists as a
// single atomic step. Lookups, Update and Delete report ErrNotFound.
type UserRepository interface {
	Create(ctx context.Context, username, email, passwordHash string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, email, username, newEmail, passwordHash string) (*model.User, error)
	Delete(ctx context.Context, email string) error
	Count(ctx context.Context) (int, error)
}
