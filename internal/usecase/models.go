package usecase

import (
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// CATALOG

// ProductFilter — необязательные фильтры списка товаров. nil означает «не фильтровать».
type ProductFilter struct {
	Category *string
	Organic  *bool
	InStock  *bool
}

func (f ProductFilter) match(p *domain.Product) bool {
	if f.Category != nil && p.Category != *f.Category {
		return false
	}
	if f.Organic != nil && p.Organic != *f.Organic {
		return false
	}
	if f.InStock != nil && p.InStock != *f.InStock {
		return false
	}
	return true
}

// CART

// CartView — корзина с итогами, вычисленными из тех же позиций, что и оформление заказа.
type CartView struct {
	SessionID       string
	Items           []domain.LineItem
	Totals          domain.Totals
	LedgerItemCount int // сумма всех количеств, включая товары, которых нет в каталоге
	CheckoutStatus  domain.CheckoutStatus
}

// CHECKOUT

// CheckoutView — текущее состояние оформления заказа.
// Для Editing позиции и итоги живые, для Submitted берутся из подтверждения.
type CheckoutView struct {
	SessionID     string
	Status        domain.CheckoutStatus
	Draft         *domain.OrderDraft
	MinPickupDate string
	Items         []domain.LineItem
	Totals        domain.Totals
	Confirmation  *domain.Confirmation
}

// CloseCheckoutRes — результат закрытия формы.
type CloseCheckoutRes struct {
	Completed bool // заказ был отправлен и корзина очищена
	Cart      *CartView
}

// INFRASTRUCTURE

// OrderRecord — диагностическая запись об отправленном заказе.
type OrderRecord struct {
	EventID     string
	OrderID     string
	SessionID   string
	Draft       domain.OrderDraft
	Lines       []domain.OrderLine
	ItemCount   int
	Total       decimal.Decimal
	SubmittedAt time.Time
}

// MAPPERS

func NewCartView(s *domain.Session, items []domain.LineItem) *CartView {
	return &CartView{
		SessionID:       s.ID,
		Items:           items,
		Totals:          domain.ComputeTotals(items),
		LedgerItemCount: s.Ledger.TotalQuantity(),
		CheckoutStatus:  s.Checkout.Status(),
	}
}

func NewCheckoutView(s *domain.Session, catalog domain.Catalog) *CheckoutView {
	view := &CheckoutView{
		SessionID: s.ID,
		Status:    s.Checkout.Status(),
	}

	switch c := s.Checkout.(type) {
	case *domain.CheckoutEditing:
		draft := c.Draft
		items := s.LineItems(catalog)
		view.Draft = &draft
		view.MinPickupDate = c.MinPickupDate
		view.Items = items
		view.Totals = domain.ComputeTotals(items)
	case *domain.CheckoutSubmitted:
		draft := c.Draft
		confirmation := c.Confirmation
		view.Draft = &draft
		view.Confirmation = &confirmation
		view.Items = linesToItems(confirmation.Lines)
		view.Totals = domain.Totals{
			ItemCount: confirmation.ItemCount,
			LineCount: confirmation.LineCount,
			Price:     confirmation.Total,
		}
	default:
		view.Totals = domain.Totals{Price: decimal.Zero}
	}

	return view
}

func NewOrderRecord(eventID, sessionID string, submitted *domain.CheckoutSubmitted) *OrderRecord {
	c := submitted.Confirmation
	return &OrderRecord{
		EventID:     eventID,
		OrderID:     c.OrderID,
		SessionID:   sessionID,
		Draft:       submitted.Draft,
		Lines:       c.Lines,
		ItemCount:   c.ItemCount,
		Total:       c.Total,
		SubmittedAt: c.SubmittedAt,
	}
}

// linesToItems восстанавливает позиции из зафиксированных строк заказа, не обращаясь к каталогу.
func linesToItems(lines []domain.OrderLine) []domain.LineItem {
	items := make([]domain.LineItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, domain.LineItem{
			Product: &domain.Product{
				ID:    l.ProductID,
				Name:  l.Name,
				Unit:  l.Unit,
				Price: l.UnitPrice,
			},
			Quantity: l.Quantity,
		})
	}
	return items
}
