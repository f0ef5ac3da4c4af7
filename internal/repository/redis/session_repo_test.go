package redis

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/memory"
	"github.com/DRSN-tech/storefront/internal/repository/redis/converter"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/clients"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/alicebob/miniredis/v2"
	r "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTTL = 30 * time.Minute

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *SessionRepo) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := &clients.RedisClient{Client: r.NewClient(&r.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { _ = client.Close() })

	log := logger.NewSlogLoggerWithWriter(io.Discard, slog.LevelDebug)
	repo := NewSessionRepo(client, converter.NewSessionConverterImpl(), &cfg.RedisCfg{KeyPrefix: "test"}, testTTL, log)

	return mr, repo
}

func TestSessionRepo_GetMissing(t *testing.T) {
	_, repo := setupTestRedis(t)

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, e.ErrSessionNotFound)
}

func TestSessionRepo_UpdateStoresWithTTL(t *testing.T) {
	ctx := context.Background()
	mr, repo := setupTestRedis(t)

	s, err := repo.Update(ctx, "a", func(s *domain.Session) error {
		s.Ledger.SetQuantity("1", 2)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Ledger.Quantity("1"))

	assert.True(t, mr.Exists("test:session:a"))
	assert.Equal(t, testTTL, mr.TTL("test:session:a"))

	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Ledger.Quantity("1"))
	assert.Equal(t, domain.CheckoutStatusClosed, got.Checkout.Status())
}

func TestSessionRepo_Expires(t *testing.T) {
	ctx := context.Background()
	mr, repo := setupTestRedis(t)

	_, err := repo.Update(ctx, "a", func(s *domain.Session) error {
		s.Ledger.SetQuantity("1", 1)
		return nil
	})
	require.NoError(t, err)

	mr.FastForward(testTTL + time.Second)

	_, err = repo.Get(ctx, "a")
	assert.ErrorIs(t, err, e.ErrSessionNotFound)
}

func TestSessionRepo_FailedUpdateIsNotSaved(t *testing.T) {
	ctx := context.Background()
	mr, repo := setupTestRedis(t)

	_, err := repo.Update(ctx, "a", func(*domain.Session) error { return e.ErrEmptyCart })
	assert.ErrorIs(t, err, e.ErrEmptyCart)
	assert.False(t, mr.Exists("test:session:a"))
}

func TestSessionRepo_RetriesOnConcurrentWrite(t *testing.T) {
	ctx := context.Background()
	_, repo := setupTestRedis(t)

	_, err := repo.Update(ctx, "a", func(s *domain.Session) error {
		s.Ledger.SetQuantity("1", 1)
		return nil
	})
	require.NoError(t, err)

	calls := 0
	s, err := repo.Update(ctx, "a", func(s *domain.Session) error {
		calls++
		if calls == 1 {
			// другой запрос успевает записать сессию между WATCH и EXEC
			_, err := repo.Update(ctx, "a", func(s *domain.Session) error {
				s.Ledger.SetQuantity("2", 5)
				return nil
			})
			require.NoError(t, err)
		}
		s.Ledger.SetQuantity("1", s.Ledger.Quantity("1")+1)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, s.Ledger.Quantity("1"))
	assert.Equal(t, 5, s.Ledger.Quantity("2"))
}

func TestSessionRepo_GivesUpAfterMaxAttempts(t *testing.T) {
	ctx := context.Background()
	mr, repo := setupTestRedis(t)
	repo.maxAttempts = 3

	other := r.NewClient(&r.Options{Addr: mr.Addr()})
	defer other.Close()

	calls := 0
	_, err := repo.Update(ctx, "a", func(s *domain.Session) error {
		calls++
		return other.Set(ctx, "test:session:a", "{}", 0).Err()
	})

	assert.ErrorIs(t, err, e.ErrSessionConflict)
	assert.Equal(t, 3, calls)
}

func TestSessionRepo_CorruptedRecord(t *testing.T) {
	ctx := context.Background()
	mr, repo := setupTestRedis(t)

	require.NoError(t, mr.Set("test:session:a", "not json"))

	_, err := repo.Get(ctx, "a")
	assert.ErrorIs(t, err, e.ErrSessionNotFound)

	s, err := repo.Update(ctx, "a", func(s *domain.Session) error {
		s.Ledger.SetQuantity("3", 1)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.LedgerEntry{{ProductID: "3", Quantity: 1}}, s.Ledger.Entries())
}

func TestSessionRepo_CorruptedRecordReadsAsEmptyCart(t *testing.T) {
	ctx := context.Background()
	mr, repo := setupTestRedis(t)

	require.NoError(t, mr.Set("test:session:c", "{not json"))

	catalog := memory.NewDefaultCatalogRepo()
	cart := usecase.NewCartUC(catalog, repo, repo.logger)
	checkout := usecase.NewCheckoutUC(catalog, repo, nil, time.UTC, "GVF", repo.logger)

	view, err := cart.GetCart(ctx, "c")
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, domain.CheckoutStatusClosed, view.CheckoutStatus)

	co, err := checkout.GetCheckout(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, domain.CheckoutStatusClosed, co.Status)
}
