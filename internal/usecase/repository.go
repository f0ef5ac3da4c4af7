package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
)

// CatalogRepository — неизменяемый каталог товаров.
type CatalogRepository interface {
	List() []*domain.Product
	Lookup(id string) (*domain.Product, bool)
}

// SessionRepository хранит состояние посетителей.
type SessionRepository interface {
	// Get возвращает сессию или e.ErrSessionNotFound.
	Get(ctx context.Context, id string) (*domain.Session, error)
	// Update атомарно загружает сессию (или создаёт пустую), применяет fn и сохраняет результат.
	// Если fn вернула ошибку, изменения не сохраняются.
	Update(ctx context.Context, id string, fn func(s *domain.Session) error) (*domain.Session, error)
}
