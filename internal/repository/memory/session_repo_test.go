package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestSessionRepo(ttl time.Duration) (*SessionRepo, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)}
	repo := NewSessionRepo(ttl)
	repo.now = clock.now
	return repo, clock
}

func TestSessionRepo_GetMissing(t *testing.T) {
	repo, _ := newTestSessionRepo(time.Hour)

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, e.ErrSessionNotFound)
}

func TestSessionRepo_UpdateCreatesAndPersists(t *testing.T) {
	ctx := context.Background()
	repo, clock := newTestSessionRepo(time.Hour)

	s, err := repo.Update(ctx, "a", func(s *domain.Session) error {
		s.Ledger.SetQuantity("1", 2)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "a", s.ID)
	assert.Equal(t, clock.t, s.CreatedAt)

	clock.advance(time.Minute)
	_, err = repo.Update(ctx, "a", func(s *domain.Session) error {
		s.Ledger.SetQuantity("2", 1)
		return nil
	})
	require.NoError(t, err)

	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Ledger.Quantity("1"))
	assert.Equal(t, 1, got.Ledger.Quantity("2"))
	assert.Equal(t, clock.t, got.UpdatedAt)
}

func TestSessionRepo_FailedUpdateIsDiscarded(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestSessionRepo(time.Hour)

	_, err := repo.Update(ctx, "a", func(s *domain.Session) error {
		s.Ledger.SetQuantity("1", 1)
		return nil
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = repo.Update(ctx, "a", func(s *domain.Session) error {
		s.Ledger.SetQuantity("1", 99)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Ledger.Quantity("1"))
}

func TestSessionRepo_FailedUpdateDoesNotCreate(t *testing.T) {
	repo, _ := newTestSessionRepo(time.Hour)

	_, err := repo.Update(context.Background(), "a", func(*domain.Session) error {
		return e.ErrEmptyCart
	})
	assert.ErrorIs(t, err, e.ErrEmptyCart)
	assert.Equal(t, 0, repo.Len())
}

func TestSessionRepo_ReturnedSessionIsACopy(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestSessionRepo(time.Hour)

	s, err := repo.Update(ctx, "a", func(s *domain.Session) error {
		s.Ledger.SetQuantity("1", 1)
		return nil
	})
	require.NoError(t, err)

	s.Ledger.SetQuantity("1", 50)

	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Ledger.Quantity("1"))
}

func TestSessionRepo_TTL(t *testing.T) {
	ctx := context.Background()
	repo, clock := newTestSessionRepo(time.Hour)

	_, err := repo.Update(ctx, "a", func(s *domain.Session) error {
		s.Ledger.SetQuantity("1", 1)
		return nil
	})
	require.NoError(t, err)

	clock.advance(59 * time.Minute)
	_, err = repo.Get(ctx, "a")
	require.NoError(t, err)

	clock.advance(2 * time.Minute)
	_, err = repo.Get(ctx, "a")
	assert.ErrorIs(t, err, e.ErrSessionNotFound)

	s, err := repo.Update(ctx, "a", func(*domain.Session) error { return nil })
	require.NoError(t, err)
	assert.Empty(t, s.Ledger.Entries())
}

func TestSessionRepo_EvictExpired(t *testing.T) {
	ctx := context.Background()
	repo, clock := newTestSessionRepo(time.Minute)

	for _, id := range []string{"a", "b"} {
		_, err := repo.Update(ctx, id, func(*domain.Session) error { return nil })
		require.NoError(t, err)
	}
	clock.advance(2 * time.Minute)
	_, err := repo.Update(ctx, "c", func(*domain.Session) error { return nil })
	require.NoError(t, err)

	repo.evictExpired()

	assert.Len(t, repo.sessions, 1)
	assert.Equal(t, 1, repo.Len())
}

func TestSessionRepo_JanitorStops(t *testing.T) {
	repo, _ := newTestSessionRepo(time.Minute)
	repo.StartJanitor(time.Millisecond)

	require.NoError(t, repo.Close())
	require.NoError(t, repo.Close())
}

func TestSessionRepo_CanceledContext(t *testing.T) {
	repo, _ := newTestSessionRepo(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Update(ctx, "a", func(*domain.Session) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
