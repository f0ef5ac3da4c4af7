package http

import (
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
)

// Денежные поля передаются строками с двумя знаками после точки.

type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Unit        string `json:"unit"`
	Price       string `json:"price" example:"12.99"`
	Image       string `json:"image"`
	InStock     bool   `json:"in_stock"`
	Organic     bool   `json:"organic"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

type CategoryListResponse struct {
	Categories []string `json:"categories"`
}

type LineItemResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	Image     string `json:"image,omitempty"`
	Price     string `json:"price" example:"4.50"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal" example:"9.00"`
	InStock   bool   `json:"in_stock"`
}

type TotalsResponse struct {
	ItemCount int    `json:"item_count"`
	LineCount int    `json:"line_count"`
	Total     string `json:"total" example:"30.48"`
}

type CartResponse struct {
	SessionID       string             `json:"session_id"`
	Items           []LineItemResponse `json:"items"`
	Totals          TotalsResponse     `json:"totals"`
	LedgerItemCount int                `json:"ledger_item_count"`
	CheckoutStatus  string             `json:"checkout_status" example:"closed"`
}

// OrderDraftDTO — поля формы оформления. Имена совпадают с именами полей в PATCH /checkout/draft.
type OrderDraftDTO struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	PickupDate string `json:"pickupDate" example:"2026-10-15"`
	Notes      string `json:"notes"`
}

type ConfirmationResponse struct {
	OrderID     string             `json:"order_id" example:"GVF123456"`
	Items       []LineItemResponse `json:"items"`
	Totals      TotalsResponse     `json:"totals"`
	SubmittedAt time.Time          `json:"submitted_at"`
}

type CheckoutResponse struct {
	SessionID     string                `json:"session_id"`
	Status        string                `json:"status" example:"editing"`
	Draft         *OrderDraftDTO        `json:"draft,omitempty"`
	MinPickupDate string                `json:"min_pickup_date,omitempty"`
	Items         []LineItemResponse    `json:"items"`
	Totals        TotalsResponse        `json:"totals"`
	Confirmation  *ConfirmationResponse `json:"confirmation,omitempty"`
}

type CloseCheckoutResponse struct {
	Completed bool          `json:"completed"`
	Cart      *CartResponse `json:"cart"`
}

type SetQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

func toProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Unit:        p.Unit,
		Price:       domain.FormatPrice(p.Price),
		Image:       p.Image,
		InStock:     p.InStock,
		Organic:     p.Organic,
	}
}

func toLineItemsResponse(items []domain.LineItem) []LineItemResponse {
	res := make([]LineItemResponse, 0, len(items))
	for _, it := range items {
		res = append(res, LineItemResponse{
			ProductID: it.Product.ID,
			Name:      it.Product.Name,
			Unit:      it.Product.Unit,
			Image:     it.Product.Image,
			Price:     domain.FormatPrice(it.Product.Price),
			Quantity:  it.Quantity,
			Subtotal:  domain.FormatPrice(it.Subtotal()),
			InStock:   it.Product.InStock,
		})
	}
	return res
}

func toTotalsResponse(t domain.Totals) TotalsResponse {
	return TotalsResponse{
		ItemCount: t.ItemCount,
		LineCount: t.LineCount,
		Total:     domain.FormatPrice(t.Price),
	}
}

func toCartResponse(v *usecase.CartView) *CartResponse {
	return &CartResponse{
		SessionID:       v.SessionID,
		Items:           toLineItemsResponse(v.Items),
		Totals:          toTotalsResponse(v.Totals),
		LedgerItemCount: v.LedgerItemCount,
		CheckoutStatus:  string(v.CheckoutStatus),
	}
}

func toDraftDTO(d *domain.OrderDraft) *OrderDraftDTO {
	if d == nil {
		return nil
	}
	return &OrderDraftDTO{
		Name:       d.Name,
		Email:      d.Email,
		Phone:      d.Phone,
		Address:    d.Address,
		PickupDate: d.PickupDate,
		Notes:      d.Notes,
	}
}

func (d *OrderDraftDTO) toDomain() *domain.OrderDraft {
	if d == nil {
		return nil
	}
	return &domain.OrderDraft{
		Name:       d.Name,
		Email:      d.Email,
		Phone:      d.Phone,
		Address:    d.Address,
		PickupDate: d.PickupDate,
		Notes:      d.Notes,
	}
}

func toCheckoutResponse(v *usecase.CheckoutView) *CheckoutResponse {
	res := &CheckoutResponse{
		SessionID:     v.SessionID,
		Status:        string(v.Status),
		Draft:         toDraftDTO(v.Draft),
		MinPickupDate: v.MinPickupDate,
		Items:         toLineItemsResponse(v.Items),
		Totals:        toTotalsResponse(v.Totals),
	}

	if c := v.Confirmation; c != nil {
		res.Confirmation = &ConfirmationResponse{
			OrderID:     c.OrderID,
			Items:       res.Items,
			Totals:      res.Totals,
			SubmittedAt: c.SubmittedAt,
		}
	}

	return res
}
