package domain

import (
	"time"

	"github.com/DRSN-tech/storefront/pkg/e"
)

// Session — состояние страницы магазина одного посетителя: корзина и оформление заказа.
type Session struct {
	ID        string
	Ledger    *Ledger
	Checkout  Checkout
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		Ledger:    NewLedger(),
		Checkout:  CheckoutClosed{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// LineItems строит позиции корзины по каталогу.
func (s *Session) LineItems(catalog Catalog) []LineItem {
	return s.Ledger.LineItems(catalog)
}

// MaxQuantity ограничивает количество одного товара в корзине.
const MaxQuantity = 999

// SetQuantity меняет количество товара в корзине.
// Увеличивать количество можно только у товаров в наличии; уменьшать и удалять можно всегда.
// Идентификаторы, которых нет в каталоге, принимаются без ошибки.
func (s *Session) SetQuantity(catalog Catalog, productID string, quantity int) error {
	if err := ValidateProductID(productID); err != nil {
		return err
	}

	if quantity < 0 || quantity > MaxQuantity {
		return e.ErrInvalidQuantity
	}

	if s.Checkout.Status() == CheckoutStatusSubmitted {
		return e.ErrCheckoutInProgress
	}

	if quantity > s.Ledger.Quantity(productID) {
		if product, ok := catalog.Lookup(productID); ok && !product.InStock {
			return e.Wrap(productID, e.ErrOutOfStock)
		}
	}

	s.Ledger.SetQuantity(productID, quantity)
	return nil
}

// ClearCart очищает корзину по запросу покупателя.
func (s *Session) ClearCart() error {
	if s.Checkout.Status() == CheckoutStatusSubmitted {
		return e.ErrCheckoutInProgress
	}

	s.Ledger.Clear()
	return nil
}

// OpenCheckout открывает форму оформления для непустой корзины.
func (s *Session) OpenCheckout(catalog Catalog, now time.Time, loc *time.Location) (*CheckoutEditing, error) {
	editing, err := openCheckout(s.Checkout, s.LineItems(catalog), now, loc)
	if err != nil {
		return nil, err
	}

	s.Checkout = editing
	return editing, nil
}

// EditDraft применяет правки полей черновика.
func (s *Session) EditDraft(fields map[string]string) error {
	editing, err := s.editing()
	if err != nil {
		return err
	}

	return editing.SetFields(fields)
}

// ReplaceDraft заменяет черновик целиком, как при отправке заполненной формы.
func (s *Session) ReplaceDraft(draft OrderDraft) error {
	editing, err := s.editing()
	if err != nil {
		return err
	}

	editing.Draft = draft.Normalized()
	return nil
}

// SubmitOrder отправляет заказ. Если черновик не проходит проверку, возвращается *ValidationError
// и оформление остаётся в состоянии Editing.
func (s *Session) SubmitOrder(catalog Catalog, now time.Time, orderPrefix string) (*CheckoutSubmitted, error) {
	submitted, err := submitCheckout(s.Checkout, s.LineItems(catalog), now, orderPrefix)
	if err != nil {
		return nil, err
	}

	s.Checkout = submitted
	return submitted, nil
}

// CloseCheckout закрывает форму. Если заказ был отправлен, корзина очищается и возвращается true.
// Черновик отбрасывается в любом случае.
func (s *Session) CloseCheckout() bool {
	_, completed := s.Checkout.(*CheckoutSubmitted)
	if completed {
		s.Ledger.Clear()
	}

	s.Checkout = CheckoutClosed{}
	return completed
}

func (s *Session) editing() (*CheckoutEditing, error) {
	switch c := s.Checkout.(type) {
	case *CheckoutEditing:
		return c, nil
	case *CheckoutSubmitted:
		return nil, e.ErrDraftFrozen
	default:
		return nil, e.ErrCheckoutNotOpen
	}
}

// Clone возвращает независимую копию сессии.
func (s *Session) Clone() *Session {
	clone := *s
	clone.Ledger = LedgerFromEntries(s.Ledger.Entries())

	switch c := s.Checkout.(type) {
	case *CheckoutEditing:
		editing := *c
		clone.Checkout = &editing
	case *CheckoutSubmitted:
		submitted := *c
		submitted.Confirmation.Lines = append([]OrderLine(nil), c.Confirmation.Lines...)
		clone.Checkout = &submitted
	default:
		clone.Checkout = CheckoutClosed{}
	}

	return &clone
}
