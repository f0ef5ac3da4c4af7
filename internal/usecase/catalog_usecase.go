package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
)

// CatalogUseCase отдаёт каталог товаров.
type CatalogUseCase struct {
	catalog CatalogRepository
}

func NewCatalogUC(catalog CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

// ListProducts возвращает товары в порядке каталога с учётом фильтров.
func (c *CatalogUseCase) ListProducts(_ context.Context, filter ProductFilter) ([]*domain.Product, error) {
	products := c.catalog.List()

	result := make([]*domain.Product, 0, len(products))
	for _, p := range products {
		if filter.match(p) {
			result = append(result, p)
		}
	}

	return result, nil
}

// GetProduct возвращает товар по идентификатору.
func (c *CatalogUseCase) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	const op = "CatalogUseCase.GetProduct"

	if err := domain.ValidateProductID(id); err != nil {
		return nil, e.Wrap(op, err)
	}

	product, ok := c.catalog.Lookup(id)
	if !ok {
		return nil, e.Wrap(op, e.Wrap(id, e.ErrProductNotFound))
	}

	return product, nil
}

// ListCategories возвращает категории в порядке первого появления в каталоге.
func (c *CatalogUseCase) ListCategories(_ context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	var categories []string
	for _, p := range c.catalog.List() {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}

	return categories, nil
}
