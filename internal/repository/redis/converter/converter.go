package converter

import (
	"fmt"

	"github.com/DRSN-tech/storefront/internal/domain"
)

// SessionConverter преобразует сессию между domain и моделью Redis.
type SessionConverter interface {
	ToRedisModel(entity *domain.Session) *SessionRedisModel
	ToEntity(model *SessionRedisModel) (*domain.Session, error)
}

type SessionConverterImpl struct{}

func NewSessionConverterImpl() *SessionConverterImpl {
	return &SessionConverterImpl{}
}

func (SessionConverterImpl) ToRedisModel(entity *domain.Session) *SessionRedisModel {
	entries := entity.Ledger.Entries()
	cart := make([]CartEntryModel, 0, len(entries))
	for _, en := range entries {
		cart = append(cart, CartEntryModel{ProductID: en.ProductID, Quantity: en.Quantity})
	}

	model := &SessionRedisModel{
		ID:        entity.ID,
		Cart:      cart,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
		Checkout:  CheckoutModel{Status: string(entity.Checkout.Status())},
	}

	switch c := entity.Checkout.(type) {
	case *domain.CheckoutEditing:
		openedAt := c.OpenedAt
		model.Checkout.Draft = toDraftModel(c.Draft)
		model.Checkout.MinPickupDate = c.MinPickupDate
		model.Checkout.OpenedAt = &openedAt
	case *domain.CheckoutSubmitted:
		model.Checkout.Draft = toDraftModel(c.Draft)
		model.Checkout.Confirmation = toConfirmationModel(c.Confirmation)
	}

	return model
}

func (SessionConverterImpl) ToEntity(model *SessionRedisModel) (*domain.Session, error) {
	entries := make([]domain.LedgerEntry, 0, len(model.Cart))
	for _, en := range model.Cart {
		entries = append(entries, domain.LedgerEntry{ProductID: en.ProductID, Quantity: en.Quantity})
	}

	session := &domain.Session{
		ID:        model.ID,
		Ledger:    domain.LedgerFromEntries(entries),
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	switch domain.CheckoutStatus(model.Checkout.Status) {
	case domain.CheckoutStatusClosed, "":
		session.Checkout = domain.CheckoutClosed{}
	case domain.CheckoutStatusEditing:
		editing := &domain.CheckoutEditing{
			Draft:         toDraftEntity(model.Checkout.Draft),
			MinPickupDate: model.Checkout.MinPickupDate,
		}
		if model.Checkout.OpenedAt != nil {
			editing.OpenedAt = *model.Checkout.OpenedAt
		}
		session.Checkout = editing
	case domain.CheckoutStatusSubmitted:
		if model.Checkout.Confirmation == nil {
			return nil, fmt.Errorf("session %s: submitted checkout without confirmation", model.ID)
		}
		session.Checkout = &domain.CheckoutSubmitted{
			Draft:        toDraftEntity(model.Checkout.Draft),
			Confirmation: toConfirmationEntity(model.Checkout.Confirmation),
		}
	default:
		return nil, fmt.Errorf("session %s: unknown checkout status %q", model.ID, model.Checkout.Status)
	}

	return session, nil
}

func toDraftModel(d domain.OrderDraft) *OrderDraftModel {
	return &OrderDraftModel{
		Name:       d.Name,
		Email:      d.Email,
		Phone:      d.Phone,
		Address:    d.Address,
		PickupDate: d.PickupDate,
		Notes:      d.Notes,
	}
}

func toDraftEntity(m *OrderDraftModel) domain.OrderDraft {
	if m == nil {
		return domain.OrderDraft{}
	}
	return domain.OrderDraft{
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		Address:    m.Address,
		PickupDate: m.PickupDate,
		Notes:      m.Notes,
	}
}

func toConfirmationModel(c domain.Confirmation) *ConfirmationModel {
	lines := make([]OrderLineModel, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, OrderLineModel{
			ProductID: l.ProductID,
			Name:      l.Name,
			Unit:      l.Unit,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		})
	}

	return &ConfirmationModel{
		OrderID:     c.OrderID,
		Lines:       lines,
		ItemCount:   c.ItemCount,
		LineCount:   c.LineCount,
		Total:       c.Total,
		SubmittedAt: c.SubmittedAt,
	}
}

func toConfirmationEntity(m *ConfirmationModel) domain.Confirmation {
	lines := make([]domain.OrderLine, 0, len(m.Lines))
	for _, l := range m.Lines {
		lines = append(lines, domain.OrderLine{
			ProductID: l.ProductID,
			Name:      l.Name,
			Unit:      l.Unit,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		})
	}

	return domain.Confirmation{
		OrderID:     m.OrderID,
		Lines:       lines,
		ItemCount:   m.ItemCount,
		LineCount:   m.LineCount,
		Total:       m.Total,
		SubmittedAt: m.SubmittedAt,
	}
}
