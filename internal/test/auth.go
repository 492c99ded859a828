package test

import (
	"context"
	"math/rand/v2"

	"github.com/polkiloo/accounts/internal/domain/model"
	pkgAuth "github.com/polkiloo/accounts/internal/pkg/auth"
)

const credentialAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomCredential returns an alphanumeric string of length in [minLen, maxLen],
// suitable as a form-encoded username or password.
func RandomCredential(minLen, maxLen int) string {
	minLen = max(minLen, 1)
	maxLen = max(maxLen, minLen)
	buf := make([]byte, minLen+rand.IntN(maxLen-minLen+1))
	for i := range buf {
		buf[i] = credentialAlphabet[rand.IntN(len(credentialAlphabet))]
	}
	return string(buf)
}

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return pkgAuth.ErrPasswordMismatch
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(string) (string, error)
	ParseFn func(string) (string, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(subject string) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(subject)
	}
	return "token", nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return "user@example.com", nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// TokenParserStub implements middleware token parsing contract.
type TokenParserStub struct {
	Email   string
	Err     error
	ParseFn func(string) (string, error)
}

// ParseToken either delegates to override or returns predefined result.
func (s TokenParserStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return "", s.Err
	}
	return s.Email, nil
}

// AccountFacadeStub simulates account facade interactions. Unset functions succeed.
type AccountFacadeStub struct {
	RegisterFn func(ctx context.Context, email, username, password string) error
	LoginFn    func(ctx context.Context, email, password string) (string, string, error)
	UpdateFn   func(ctx context.Context, email, username, password string) (string, error)
	DeleteFn   func(ctx context.Context, email, password string) error
	ProfileFn  func(ctx context.Context, email string) (*model.User, error)
	ParseFn    func(string) (string, error)
}

func (s AccountFacadeStub) Register(ctx context.Context, email, username, password string) error {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, username, password)
	}
	return nil
}

// Login returns the username "user" and token "token" by default.
func (s AccountFacadeStub) Login(ctx context.Context, email, password string) (string, string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	return "user", "token", nil
}

func (s AccountFacadeStub) Update(ctx context.Context, email, username, password string) (string, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, email, username, password)
	}
	return username, nil
}

func (s AccountFacadeStub) Delete(ctx context.Context, email, password string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, email, password)
	}
	return nil
}

func (s AccountFacadeStub) Profile(ctx context.Context, email string) (*model.User, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, email)
	}
	return &model.User{ID: 1, Username: "user", Email: email}, nil
}

// ParseToken returns user@example.com unless overridden.
func (s AccountFacadeStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return "user@example.com", nil
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}
