package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
)

type CatalogUC interface {
	ListProducts(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
}

type CartUC interface {
	GetCart(ctx context.Context, sessionID string) (*CartView, error)
	SetQuantity(ctx context.Context, sessionID, productID string, quantity int) (*CartView, error)
	Increment(ctx context.Context, sessionID, productID string) (*CartView, error)
	Decrement(ctx context.Context, sessionID, productID string) (*CartView, error)
	Remove(ctx context.Context, sessionID, productID string) (*CartView, error)
	Clear(ctx context.Context, sessionID string) (*CartView, error)
}

type CheckoutUC interface {
	GetCheckout(ctx context.Context, sessionID string) (*CheckoutView, error)
	Open(ctx context.Context, sessionID string) (*CheckoutView, error)
	UpdateDraft(ctx context.Context, sessionID string, fields map[string]string) (*CheckoutView, error)
	Submit(ctx context.Context, sessionID string, draft *domain.OrderDraft) (*CheckoutView, error)
	Close(ctx context.Context, sessionID string) (*CloseCheckoutRes, error)
}
