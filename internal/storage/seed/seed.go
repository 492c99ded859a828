// Package seed loads the initial set of accounts from a YAML fixture.
//
// A fixture looks like:
//
//	users:
//	  - username: A
//	    email: a@b.com
//	    password: p1
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	domainErrors "github.com/polkiloo/accounts/internal/domain/errors"
	"github.com/polkiloo/accounts/internal/domain/repository"
)

// Record is a single fixture entry. Password is plain text and hashed on Apply.
type Record struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type fixture struct {
	Users []Record `yaml:"users"`
}

// Hasher turns plain passwords into stored hashes.
type Hasher interface {
	Hash(password string) (string, error)
}

// LoadFile reads fixture records from path.
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes fixture records from r. Every record needs an email.
func Load(r io.Reader) ([]Record, error) {
	var fx fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	for i, rec := range fx.Users {
		if rec.Email == "" {
			return nil, fmt.Errorf("seed record %d: email is required", i)
		}
	}
	return fx.Users, nil
}

// Apply inserts records in order. Emails already present are skipped, so a
// fixture can be re-applied against a persistent store.
func Apply(ctx context.Context, users repository.UserRepository, hasher Hasher, records []Record, logger *slog.Logger) (int, error) {
	inserted := 0
	for _, rec := range records {
		hash, err := hasher.Hash(rec.Password)
		if err != nil {
			return inserted, fmt.Errorf("hash seed password for %s: %w", rec.Email, err)
		}
		if _, err := users.Create(ctx, rec.Username, rec.Email, hash); err != nil {
			if errors.Is(err, domainErrors.ErrAlreadyExists) {
				logger.Debug("seed account already present", slog.String("email", rec.Email))
				continue
			}
			return inserted, fmt.Errorf("insert seed account %s: %w", rec.Email, err)
		}
		inserted++
	}
	return inserted, nil
}
