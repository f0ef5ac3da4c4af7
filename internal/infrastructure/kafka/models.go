package kafka

import (
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
)

const orderSubmittedEventType = "order.submitted"

// OrderSubmittedMessage — JSON-сообщение журнала заказов.
type OrderSubmittedMessage struct {
	EventID     string             `json:"event_id"`
	EventType   string             `json:"event_type"`
	OrderID     string             `json:"order_id"`
	SessionID   string             `json:"session_id"`
	Customer    CustomerMessage    `json:"customer"`
	Lines       []OrderLineMessage `json:"lines"`
	ItemCount   int                `json:"item_count"`
	Total       string             `json:"total"`
	SubmittedAt time.Time          `json:"submitted_at"`
}

type CustomerMessage struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address,omitempty"`
	PickupDate string `json:"pickup_date"`
	Notes      string `json:"notes,omitempty"`
}

type OrderLineMessage struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

func toOrderSubmittedMessage(rec *usecase.OrderRecord) *OrderSubmittedMessage {
	lines := make([]OrderLineMessage, 0, len(rec.Lines))
	for _, l := range rec.Lines {
		lines = append(lines, OrderLineMessage{
			ProductID: l.ProductID,
			Name:      l.Name,
			Unit:      l.Unit,
			UnitPrice: domain.FormatPrice(l.UnitPrice),
			Quantity:  l.Quantity,
			Subtotal:  domain.FormatPrice(l.Subtotal()),
		})
	}

	return &OrderSubmittedMessage{
		EventID:   rec.EventID,
		EventType: orderSubmittedEventType,
		OrderID:   rec.OrderID,
		SessionID: rec.SessionID,
		Customer: CustomerMessage{
			Name:       rec.Draft.Name,
			Email:      rec.Draft.Email,
			Phone:      rec.Draft.Phone,
			Address:    rec.Draft.Address,
			PickupDate: rec.Draft.PickupDate,
			Notes:      rec.Draft.Notes,
		},
		Lines:       lines,
		ItemCount:   rec.ItemCount,
		Total:       domain.FormatPrice(rec.Total),
		SubmittedAt: rec.SubmittedAt.UTC(),
	}
}
