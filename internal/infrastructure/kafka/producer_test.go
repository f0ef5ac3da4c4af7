package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu        sync.Mutex
	writeFunc func(ctx context.Context, msgs ...kafka.Message) error
	messages  []kafka.Message
	closed    bool
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if f.writeFunc != nil {
		if err := f.writeFunc(ctx, msgs...); err != nil {
			return err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func testLogger() logger.Logger {
	return logger.NewSlogLoggerWithWriter(io.Discard, slog.LevelDebug)
}

func testRecord(orderID string) *usecase.OrderRecord {
	return &usecase.OrderRecord{
		EventID:   "evt-1",
		OrderID:   orderID,
		SessionID: "sid",
		Draft: domain.OrderDraft{
			Name:       "Jane",
			Email:      "jane@example.com",
			Phone:      "555",
			PickupDate: "2026-10-15",
		},
		Lines: []domain.OrderLine{
			{ProductID: "1", Name: "Fresh Mixed Vegetables", Unit: "basket", UnitPrice: decimal.RequireFromString("12.99"), Quantity: 2},
			{ProductID: "2", Name: "Organic Tomatoes", Unit: "lb", UnitPrice: decimal.RequireFromString("4.5"), Quantity: 1},
		},
		ItemCount:   3,
		Total:       decimal.RequireFromString("30.48"),
		SubmittedAt: time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC),
	}
}

func TestProducer_WriteOrderRecord(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, testLogger(), &cfg.KafkaCfg{Topic: "orders"})

	require.NoError(t, p.WriteOrderRecord(context.Background(), testRecord("GVF123456")))
	require.Len(t, w.messages, 1)

	msg := w.messages[0]
	assert.Equal(t, "GVF123456", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, orderSubmittedEventType, string(msg.Headers[0].Value))

	var got OrderSubmittedMessage
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, orderSubmittedEventType, got.EventType)
	assert.Equal(t, "30.48", got.Total)
	assert.Equal(t, 3, got.ItemCount)
	assert.Equal(t, "jane@example.com", got.Customer.Email)
	require.Len(t, got.Lines, 2)
	assert.Equal(t, "25.98", got.Lines[0].Subtotal)
	assert.Equal(t, "4.50", got.Lines[1].UnitPrice)
}

func TestProducer_Close(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, testLogger(), &cfg.KafkaCfg{})

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestIsRetryableError(t *testing.T) {
	assert.False(t, isRetryableError(nil))
	assert.True(t, isRetryableError(errors.New("dial tcp: connection refused")))
	assert.True(t, isRetryableError(context.DeadlineExceeded))
	assert.True(t, isRetryableError(errors.New("[8] Leader Not Available")))
	assert.False(t, isRetryableError(errors.New("message too large")))
}
