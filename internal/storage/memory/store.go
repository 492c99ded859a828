package memory

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/accounts/internal/domain/errors"
	"github.com/polkiloo/accounts/internal/domain/model"
)

// Store keeps accounts in insertion order and looks them up by linear scan.
// All methods are safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	users []model.User
	now   func() time.Time
}

// New creates an empty store.
func New() *Store {
	return &Store{now: time.Now}
}

// Create appends a new account. The id is the creation time in milliseconds.
func (s *Store) Create(_ context.Context, username, email, passwordHash string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(email) >= 0 {
		return nil, domainErrors.ErrAlreadyExists
	}

	created := s.now()
	u := model.User{
		ID:           created.UnixMilli(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    created,
	}
	s.users = append(s.users, u)
	return &u, nil
}

func (s *Store) GetByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(email)
	if i < 0 {
		return nil, domainErrors.ErrNotFound
	}
	u := s.users[i]
	return &u, nil
}

// Update rewrites the mutable fields of the account stored under email.
// newEmail is not checked against other accounts.
func (s *Store) Update(_ context.Context, email, username, newEmail, passwordHash string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(email)
	if i < 0 {
		return nil, domainErrors.ErrNotFound
	}
	s.users[i].Username = username
	s.users[i].Email = newEmail
	s.users[i].PasswordHash = passwordHash
	u := s.users[i]
	return &u, nil
}

// Delete rebuilds the sequence without the account stored under email.
func (s *Store) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(email)
	if i < 0 {
		return domainErrors.ErrNotFound
	}
	kept := make([]model.User, 0, len(s.users)-1)
	kept = append(kept, s.users[:i]...)
	kept = append(kept, s.users[i+1:]...)
	s.users = kept
	return nil
}

func (s *Store) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), nil
}

// Snapshot returns a copy of the stored accounts in insertion order.
func (s *Store) Snapshot() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *Store) indexOf(email string) int {
	for i := range s.users {
		if s.users[i].Email == email {
			return i
		}
	}
	return -1
}
