package kafka

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/jitter"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

const (
	defaultMaxAttempts  = 5
	defaultWriteTimeout = 10 * time.Second
	retryBaseDelay      = 200 * time.Millisecond
	retryMaxDelay       = 5 * time.Second
)

// RecordWriter — получатель записей журнала (Producer).
type RecordWriter interface {
	WriteOrderRecord(ctx context.Context, rec *usecase.OrderRecord) error
}

// JournalWorker асинхронно доставляет записи о заказах, чтобы оформление не ждало Kafka.
// Реализует usecase.OrderJournal.
type JournalWorker struct {
	writer RecordWriter
	logger logger.Logger
	queue  chan *usecase.OrderRecord

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup

	maxAttempts  int
	writeTimeout time.Duration
	baseDelay    time.Duration
	maxDelay     time.Duration
}

func NewJournalWorker(writer RecordWriter, queueSize int, logger logger.Logger) *JournalWorker {
	return &JournalWorker{
		writer:       writer,
		logger:       logger,
		queue:        make(chan *usecase.OrderRecord, queueSize),
		maxAttempts:  defaultMaxAttempts,
		writeTimeout: defaultWriteTimeout,
		baseDelay:    retryBaseDelay,
		maxDelay:     retryMaxDelay,
	}
}

// Start запускает доставку записей из очереди.
func (w *JournalWorker) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for rec := range w.queue {
			w.deliver(rec)
		}
		w.logger.Infof("order journal drained")
	}()
}

// Publish ставит запись в очередь без блокировки.
func (w *JournalWorker) Publish(_ context.Context, rec *usecase.OrderRecord) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.closed {
		return e.ErrJournalClosed
	}

	select {
	case w.queue <- rec:
		return nil
	default:
		return e.Wrap(rec.OrderID, e.ErrJournalQueueFull)
	}
}

// Stop закрывает очередь и ждёт доставки оставшихся записей, но не дольше ctx.
func (w *JournalWorker) Stop(ctx context.Context) error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.queue)
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return e.Wrap("order journal drain interrupted", ctx.Err())
	}
}

func (w *JournalWorker) deliver(rec *usecase.OrderRecord) {
	for attempt := 0; attempt < w.maxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), w.writeTimeout)
		err := w.writer.WriteOrderRecord(ctx, rec)
		cancel()

		if err == nil {
			w.logger.Debugf("order record %s published", rec.OrderID)
			return
		}

		if !isRetryableError(err) {
			w.logger.Warnf("Permanent Kafka failure, dropping order record %s: %v", rec.OrderID, err)
			return
		}

		w.logger.Warnf("Temporary Kafka failure for order record %s (attempt %d/%d): %v", rec.OrderID, attempt+1, w.maxAttempts, err)
		time.Sleep(jitter.ExponentialBackoff(w.baseDelay, w.maxDelay, attempt, jitter.DefaultJitter))
	}

	w.logger.Warnf("order record %s dropped after %d attempts", rec.OrderID, w.maxAttempts)
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	retryablePhrases := []string{
		"connection refused",
		"i/o timeout",
		"network is unreachable",
		"broker not available",
		"leader not available",
		"connection reset",
		"broken pipe",
		"no such host",
		"context deadline exceeded",
	}
	for _, phrase := range retryablePhrases {
		if strings.Contains(errStr, phrase) {
			return true
		}
	}
	return false
}
