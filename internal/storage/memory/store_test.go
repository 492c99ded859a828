package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/polkiloo/accounts/internal/domain/errors"
	"github.com/polkiloo/accounts/internal/domain/repository"
)

var _ repository.UserRepository = (*Store)(nil)

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

func TestStoreCreateAssignsTimestampID(t *testing.T) {
	created := time.UnixMilli(1_700_000_000_123)
	s := New()
	s.now = fixedClock(created)

	u, err := s.Create(context.Background(), "A", "a@b.com", "hash")
	require.NoError(t, err)
	assert.Equal(t, created.UnixMilli(), u.ID)
	assert.Equal(t, "A", u.Username)
	assert.Equal(t, "a@b.com", u.Email)
	assert.Equal(t, "hash", u.PasswordHash)
	assert.Equal(t, created, u.CreatedAt)
}

func TestStoreCreateRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, err := s.Create(ctx, "A", "a@b.com", "h1")
	require.NoError(t, err)

	_, err = s.Create(ctx, "B", "a@b.com", "h2")
	require.ErrorIs(t, err, domainErrors.ErrAlreadyExists)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	stored, err := s.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "A", stored.Username)
}

func TestStoreEmailIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, err := s.Create(ctx, "A", "a@b.com", "h")
	require.NoError(t, err)
	_, err = s.Create(ctx, "A2", "A@B.com", "h")
	require.NoError(t, err)

	_, err = s.GetByEmail(ctx, "A@b.com")
	require.ErrorIs(t, err, domainErrors.ErrNotFound)
}

func TestStoreKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := New()
	for i := 0; i < 3; i++ {
		_, err := s.Create(ctx, fmt.Sprintf("u%d", i), fmt.Sprintf("u%d@x.io", i), "h")
		require.NoError(t, err)
	}

	snap := s.Snapshot()
	require.Len(t, snap, 3)
	for i, u := range snap {
		assert.Equal(t, fmt.Sprintf("u%d@x.io", i), u.Email)
	}
}

func TestStoreGetReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := New()
	_, err := s.Create(ctx, "A", "a@b.com", "h")
	require.NoError(t, err)

	u, err := s.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	u.Username = "mutated"

	again, err := s.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "A", again.Username)
}

func TestStoreSameMillisecondAccountsStayDistinct(t *testing.T) {
	ctx := context.Background()
	s := New()
	s.now = fixedClock(time.UnixMilli(1_700_000_000_000))
	alice, err := s.Create(ctx, "alice", "alice@b.com", "h1")
	require.NoError(t, err)
	carol, err := s.Create(ctx, "carol", "carol@b.com", "h2")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, carol.ID)

	u, err := s.GetByEmail(ctx, "carol@b.com")
	require.NoError(t, err)
	assert.Equal(t, "carol", u.Username)
}

func TestStoreUpdateRewritesFieldsInPlace(t *testing.T) {
	ctx := context.Background()
	s := New()
	_, err := s.Create(ctx, "A", "a@b.com", "h1")
	require.NoError(t, err)
	_, err = s.Create(ctx, "C", "c@d.com", "h3")
	require.NoError(t, err)

	u, err := s.Update(ctx, "a@b.com", "A2", "a@b.com", "h2")
	require.NoError(t, err)
	assert.Equal(t, "A2", u.Username)
	assert.Equal(t, "h2", u.PasswordHash)

	snap := s.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "a@b.com", snap[0].Email)
	assert.Equal(t, "A2", snap[0].Username)

	_, err = s.Update(ctx, "missing@b.com", "x", "missing@b.com", "h")
	require.ErrorIs(t, err, domainErrors.ErrNotFound)
}

func TestStoreDeleteRemovesExactlyOne(t *testing.T) {
	ctx := context.Background()
	s := New()
	for _, email := range []string{"a@b.com", "c@d.com", "e@f.com"} {
		_, err := s.Create(ctx, "u", email, "h")
		require.NoError(t, err)
	}

	require.NoError(t, s.Delete(ctx, "c@d.com"))

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = s.GetByEmail(ctx, "c@d.com")
	require.ErrorIs(t, err, domainErrors.ErrNotFound)

	snap := s.Snapshot()
	assert.Equal(t, "a@b.com", snap[0].Email)
	assert.Equal(t, "e@f.com", snap[1].Email)

	require.ErrorIs(t, s.Delete(ctx, "c@d.com"), domainErrors.ErrNotFound)
}

func TestStoreConcurrentRegistrationKeepsEmailUnique(t *testing.T) {
	ctx := context.Background()
	s := New()

	const workers = 32
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Create(ctx, "racer", "race@x.io", "h"); err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
