package domain

import (
	"time"

	"github.com/DRSN-tech/storefront/pkg/e"
)

type CheckoutStatus string

const (
	CheckoutStatusClosed    CheckoutStatus = "closed"
	CheckoutStatusEditing   CheckoutStatus = "editing"
	CheckoutStatusSubmitted CheckoutStatus = "submitted"
)

// Checkout — состояние оформления заказа. Реализации: CheckoutClosed, *CheckoutEditing, *CheckoutSubmitted.
type Checkout interface {
	Status() CheckoutStatus
	checkout()
}

// CheckoutClosed — форма оформления закрыта.
type CheckoutClosed struct{}

func (CheckoutClosed) Status() CheckoutStatus { return CheckoutStatusClosed }
func (CheckoutClosed) checkout()              {}

// CheckoutEditing — форма открыта, черновик можно менять.
// MinPickupDate вычисляется один раз при открытии и не пересчитывается при отправке.
type CheckoutEditing struct {
	Draft         OrderDraft
	MinPickupDate string
	OpenedAt      time.Time
}

func (*CheckoutEditing) Status() CheckoutStatus { return CheckoutStatusEditing }
func (*CheckoutEditing) checkout()              {}

// SetFields применяет правки полей черновика. При неизвестном поле черновик не меняется.
func (c *CheckoutEditing) SetFields(fields map[string]string) error {
	draft := c.Draft
	for field, value := range fields {
		if err := draft.SetField(field, value); err != nil {
			return err
		}
	}
	c.Draft = draft
	return nil
}

// CheckoutSubmitted — заказ отправлен, показывается подтверждение. Черновик заморожен.
type CheckoutSubmitted struct {
	Draft        OrderDraft
	Confirmation Confirmation
}

func (*CheckoutSubmitted) Status() CheckoutStatus { return CheckoutStatusSubmitted }
func (*CheckoutSubmitted) checkout()              {}

// openCheckout переводит Closed -> Editing. Повторное открытие формы в Editing ничего не меняет.
func openCheckout(current Checkout, items []LineItem, now time.Time, loc *time.Location) (*CheckoutEditing, error) {
	switch c := current.(type) {
	case *CheckoutEditing:
		return c, nil
	case *CheckoutSubmitted:
		return nil, e.ErrCheckoutInProgress
	}

	if len(items) == 0 {
		return nil, e.ErrEmptyCart
	}

	return &CheckoutEditing{
		MinPickupDate: MinPickupDate(now, loc),
		OpenedAt:      now,
	}, nil
}

// submitCheckout переводит Editing -> Submitted, если черновик проходит проверку.
// При ошибке проверки состояние не меняется.
func submitCheckout(current Checkout, items []LineItem, now time.Time, orderPrefix string) (*CheckoutSubmitted, error) {
	editing, ok := current.(*CheckoutEditing)
	if !ok {
		if _, submitted := current.(*CheckoutSubmitted); submitted {
			return nil, e.ErrDraftFrozen
		}
		return nil, e.ErrCheckoutNotOpen
	}

	if len(items) == 0 {
		return nil, e.ErrEmptyCart
	}

	if err := editing.Draft.Validate(editing.MinPickupDate); err != nil {
		return nil, err
	}

	return &CheckoutSubmitted{
		Draft:        editing.Draft,
		Confirmation: newConfirmation(orderPrefix, items, now),
	}, nil
}
