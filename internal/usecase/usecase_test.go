package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/repository/memory"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

const sid = "6f1c5a77-6a8e-4c84-9d1d-4a1c3f0c2b10"

var fixedNow = time.Date(2026, 10, 14, 15, 4, 5, 0, time.UTC)

type mockJournal struct {
	mu          sync.Mutex
	publishFunc func(ctx context.Context, rec *usecase.OrderRecord) error
	records     []*usecase.OrderRecord
}

func (m *mockJournal) Publish(ctx context.Context, rec *usecase.OrderRecord) error {
	m.mu.Lock()
	m.records = append(m.records, rec)
	m.mu.Unlock()

	if m.publishFunc != nil {
		return m.publishFunc(ctx, rec)
	}
	return nil
}

func testLogger() logger.Logger {
	return logger.NewSlogLoggerWithWriter(io.Discard, slog.LevelDebug)
}

type fixture struct {
	catalog  *memory.CatalogRepo
	sessions *memory.SessionRepo
	journal  *mockJournal
	cart     *usecase.CartUseCase
	checkout *usecase.CheckoutUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		catalog:  memory.NewDefaultCatalogRepo(),
		sessions: memory.NewSessionRepo(time.Hour),
		journal:  &mockJournal{},
	}
	t.Cleanup(func() { _ = f.sessions.Close() })

	log := testLogger()
	f.cart = usecase.NewCartUC(f.catalog, f.sessions, log)
	f.checkout = usecase.NewCheckoutUC(f.catalog, f.sessions, f.journal, time.UTC, "GVF", log)
	f.checkout.SetClock(func() time.Time { return fixedNow })

	return f
}
