package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

// CartUseCase управляет корзиной посетителя.
type CartUseCase struct {
	catalog  CatalogRepository
	sessions SessionRepository
	logger   logger.Logger
}

func NewCartUC(catalog CatalogRepository, sessions SessionRepository, logger logger.Logger) *CartUseCase {
	return &CartUseCase{
		catalog:  catalog,
		sessions: sessions,
		logger:   logger,
	}
}

// GetCart возвращает корзину. Для неизвестной сессии возвращается пустая корзина; сессия при этом не создаётся.
func (c *CartUseCase) GetCart(ctx context.Context, sessionID string) (*CartView, error) {
	const op = "CartUseCase.GetCart"

	session, err := loadOrEmpty(ctx, c.sessions, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCartView(session, session.LineItems(c.catalog)), nil
}

// SetQuantity задаёт количество товара; 0 удаляет позицию.
func (c *CartUseCase) SetQuantity(ctx context.Context, sessionID, productID string, quantity int) (*CartView, error) {
	const op = "CartUseCase.SetQuantity"

	return c.mutate(ctx, op, sessionID, func(s *domain.Session) error {
		return s.SetQuantity(c.catalog, productID, quantity)
	})
}

// Increment увеличивает количество товара на единицу.
func (c *CartUseCase) Increment(ctx context.Context, sessionID, productID string) (*CartView, error) {
	const op = "CartUseCase.Increment"

	return c.mutate(ctx, op, sessionID, func(s *domain.Session) error {
		return s.SetQuantity(c.catalog, productID, s.Ledger.Quantity(productID)+1)
	})
}

// Decrement уменьшает количество товара на единицу. Для отсутствующего товара ничего не делает.
func (c *CartUseCase) Decrement(ctx context.Context, sessionID, productID string) (*CartView, error) {
	const op = "CartUseCase.Decrement"

	return c.mutate(ctx, op, sessionID, func(s *domain.Session) error {
		current := s.Ledger.Quantity(productID)
		if current == 0 {
			return domain.ValidateProductID(productID)
		}
		return s.SetQuantity(c.catalog, productID, current-1)
	})
}

// Remove удаляет позицию из корзины.
func (c *CartUseCase) Remove(ctx context.Context, sessionID, productID string) (*CartView, error) {
	const op = "CartUseCase.Remove"

	return c.mutate(ctx, op, sessionID, func(s *domain.Session) error {
		return s.SetQuantity(c.catalog, productID, 0)
	})
}

// Clear очищает корзину.
func (c *CartUseCase) Clear(ctx context.Context, sessionID string) (*CartView, error) {
	const op = "CartUseCase.Clear"

	return c.mutate(ctx, op, sessionID, func(s *domain.Session) error {
		return s.ClearCart()
	})
}

func (c *CartUseCase) mutate(ctx context.Context, op, sessionID string, fn func(s *domain.Session) error) (*CartView, error) {
	session, err := c.sessions.Update(ctx, sessionID, fn)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	items := session.LineItems(c.catalog)
	c.logger.Debugf("cart updated: session=%s lines=%d", sessionID, len(items))

	return NewCartView(session, items), nil
}

// loadOrEmpty читает сессию; отсутствующая сессия заменяется пустой.
func loadOrEmpty(ctx context.Context, sessions SessionRepository, sessionID string) (*domain.Session, error) {
	session, err := sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, e.ErrSessionNotFound) {
			return domain.NewSession(sessionID, time.Now()), nil
		}
		return nil, err
	}

	return session, nil
}
