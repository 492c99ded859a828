package test

import (
	"context"

	domainErrors "github.com/polkiloo/accounts/internal/domain/errors"
	"github.com/polkiloo/accounts/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests. Err, when set, is
// returned from every call. Calls counts every method invocation.
type UserRepositoryStub struct {
	Users []model.User
	Next  int64
	Err   error
	Calls int
}

// NewUserRepositoryStub constructs an empty stub repository.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{Next: 1}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, username, email, passwordHash string) (*model.User, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	if s.find(email) >= 0 {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := model.User{ID: s.Next, Username: username, Email: email, PasswordHash: passwordHash}
	s.Next++
	s.Users = append(s.Users, user)
	return &user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	if i := s.find(email); i >= 0 {
		user := s.Users[i]
		return &user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Update rewrites stored fields or returns not found.
func (s *UserRepositoryStub) Update(ctx context.Context, email, username, newEmail, passwordHash string) (*model.User, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	i := s.find(email)
	if i < 0 {
		return nil, domainErrors.ErrNotFound
	}
	s.Users[i].Username = username
	s.Users[i].Email = newEmail
	s.Users[i].PasswordHash = passwordHash
	user := s.Users[i]
	return &user, nil
}

// Delete removes user by email or returns not found.
func (s *UserRepositoryStub) Delete(ctx context.Context, email string) error {
	s.Calls++
	if s.Err != nil {
		return s.Err
	}
	i := s.find(email)
	if i < 0 {
		return domainErrors.ErrNotFound
	}
	s.Users = append(s.Users[:i:i], s.Users[i+1:]...)
	return nil
}

// Count returns number of stored users.
func (s *UserRepositoryStub) Count(ctx context.Context) (int, error) {
	s.Calls++
	if s.Err != nil {
		return 0, s.Err
	}
	return len(s.Users), nil
}

func (s *UserRepositoryStub) find(email string) int {
	for i := range s.Users {
		if s.Users[i].Email == email {
			return i
		}
	}
	return -1
}
