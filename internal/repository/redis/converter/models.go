package converter

import (
	"time"

	"github.com/shopspring/decimal"
)

// SessionRedisModel — JSON-представление сессии в Redis.
type SessionRedisModel struct {
	ID        string           `json:"id"`
	Cart      []CartEntryModel `json:"cart"`
	Checkout  CheckoutModel    `json:"checkout"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type CartEntryModel struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type CheckoutModel struct {
	Status        string             `json:"status"`
	Draft         *OrderDraftModel   `json:"draft,omitempty"`
	MinPickupDate string             `json:"min_pickup_date,omitempty"`
	OpenedAt      *time.Time         `json:"opened_at,omitempty"`
	Confirmation  *ConfirmationModel `json:"confirmation,omitempty"`
}

type OrderDraftModel struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	PickupDate string `json:"pickup_date"`
	Notes      string `json:"notes"`
}

type ConfirmationModel struct {
	OrderID     string           `json:"order_id"`
	Lines       []OrderLineModel `json:"lines"`
	ItemCount   int              `json:"item_count"`
	LineCount   int              `json:"line_count"`
	Total       decimal.Decimal  `json:"total"`
	SubmittedAt time.Time        `json:"submitted_at"`
}

type OrderLineModel struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}
