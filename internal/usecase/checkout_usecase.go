package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/google/uuid"
)

const defaultOrderIDPrefix = "GVF"

// CheckoutUseCase ведёт покупателя от открытия формы до подтверждения заказа.
// Заказ нигде не сохраняется: наружу уходит только диагностическая запись в лог и журнал.
type CheckoutUseCase struct {
	catalog     CatalogRepository
	sessions    SessionRepository
	journal     OrderJournal
	logger      logger.Logger
	location    *time.Location
	orderPrefix string
	now         func() time.Time
}

func NewCheckoutUC(
	catalog CatalogRepository,
	sessions SessionRepository,
	journal OrderJournal,
	location *time.Location,
	orderPrefix string,
	logger logger.Logger,
) *CheckoutUseCase {
	if location == nil {
		location = time.UTC
	}
	if orderPrefix == "" {
		orderPrefix = defaultOrderIDPrefix
	}

	return &CheckoutUseCase{
		catalog:     catalog,
		sessions:    sessions,
		journal:     journal,
		logger:      logger,
		location:    location,
		orderPrefix: orderPrefix,
		now:         time.Now,
	}
}

// SetClock подменяет источник времени.
func (c *CheckoutUseCase) SetClock(now func() time.Time) {
	c.now = now
}

// GetCheckout возвращает текущее состояние оформления.
func (c *CheckoutUseCase) GetCheckout(ctx context.Context, sessionID string) (*CheckoutView, error) {
	const op = "CheckoutUseCase.GetCheckout"

	session, err := loadOrEmpty(ctx, c.sessions, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCheckoutView(session, c.catalog), nil
}

// Open открывает форму оформления. Минимальная дата самовывоза фиксируется в этот момент.
func (c *CheckoutUseCase) Open(ctx context.Context, sessionID string) (*CheckoutView, error) {
	const op = "CheckoutUseCase.Open"

	session, err := c.sessions.Update(ctx, sessionID, func(s *domain.Session) error {
		_, err := s.OpenCheckout(c.catalog, c.now(), c.location)
		return err
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCheckoutView(session, c.catalog), nil
}

// UpdateDraft применяет правки полей черновика.
func (c *CheckoutUseCase) UpdateDraft(ctx context.Context, sessionID string, fields map[string]string) (*CheckoutView, error) {
	const op = "CheckoutUseCase.UpdateDraft"

	session, err := c.sessions.Update(ctx, sessionID, func(s *domain.Session) error {
		return s.EditDraft(fields)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCheckoutView(session, c.catalog), nil
}

// Submit отправляет заказ. draft, если задан, заменяет текущий черновик перед проверкой;
// заменённый черновик сохраняется даже при ошибке проверки.
// При неуспешной проверке возвращается *domain.ValidationError, состояние остаётся Editing.
func (c *CheckoutUseCase) Submit(ctx context.Context, sessionID string, draft *domain.OrderDraft) (*CheckoutView, error) {
	const op = "CheckoutUseCase.Submit"

	var (
		submitted *domain.CheckoutSubmitted
		invalid   *domain.ValidationError
	)

	session, err := c.sessions.Update(ctx, sessionID, func(s *domain.Session) error {
		submitted, invalid = nil, nil

		if draft != nil {
			if err := s.ReplaceDraft(*draft); err != nil {
				return err
			}
		}

		res, err := s.SubmitOrder(c.catalog, c.now(), c.orderPrefix)
		if err != nil {
			if errors.As(err, &invalid) {
				return nil
			}
			return err
		}

		submitted = res
		return nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if invalid != nil {
		c.logger.Debugf("order validation failed: session=%s %s", sessionID, invalid.Error())
		return NewCheckoutView(session, c.catalog), e.Wrap(op, invalid)
	}

	c.recordOrder(ctx, sessionID, submitted)

	return NewCheckoutView(session, c.catalog), nil
}

// Close закрывает форму. Если заказ был отправлен, сигнал о завершении очищает корзину.
func (c *CheckoutUseCase) Close(ctx context.Context, sessionID string) (*CloseCheckoutRes, error) {
	const op = "CheckoutUseCase.Close"

	var completed bool
	session, err := c.sessions.Update(ctx, sessionID, func(s *domain.Session) error {
		completed = s.CloseCheckout()
		return nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if completed {
		c.logger.Infof("order completed, cart cleared: session=%s", sessionID)
	}

	return &CloseCheckoutRes{
		Completed: completed,
		Cart:      NewCartView(session, session.LineItems(c.catalog)),
	}, nil
}

// recordOrder пишет диагностическую запись о заказе в лог и, если настроен, в журнал.
func (c *CheckoutUseCase) recordOrder(ctx context.Context, sessionID string, submitted *domain.CheckoutSubmitted) {
	const op = "CheckoutUseCase.recordOrder"

	record := NewOrderRecord(uuid.NewString(), sessionID, submitted)

	lines := make([]string, 0, len(record.Lines))
	for _, l := range record.Lines {
		lines = append(lines, l.Name+" x "+strconv.Itoa(l.Quantity)+" = "+domain.FormatPrice(l.Subtotal()))
	}

	d := record.Draft
	c.logger.Infof(
		"order submitted: order_id=%s session=%s name=%q email=%q phone=%q address=%q pickup_date=%s notes=%q items=[%s] total=%s",
		record.OrderID, sessionID, d.Name, d.Email, d.Phone, d.Address, d.PickupDate, d.Notes,
		strings.Join(lines, "; "), domain.FormatPrice(record.Total),
	)

	if c.journal == nil {
		return
	}

	if err := c.journal.Publish(ctx, record); err != nil {
		c.logger.Warnf("failed to publish order record: %v", e.Wrap(op, err))
	}
}
