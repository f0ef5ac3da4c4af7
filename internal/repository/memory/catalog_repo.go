package memory

import (
	"fmt"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// CatalogRepo — неизменяемый каталог в памяти. Порядок товаров задаётся при создании.
type CatalogRepo struct {
	products []*domain.Product
	byID     map[string]*domain.Product
}

// NewCatalogRepo строит каталог и проверяет уникальность идентификаторов и неотрицательность цен.
func NewCatalogRepo(products []domain.Product) (*CatalogRepo, error) {
	repo := &CatalogRepo{
		products: make([]*domain.Product, 0, len(products)),
		byID:     make(map[string]*domain.Product, len(products)),
	}

	for i := range products {
		p := products[i]
		if err := domain.ValidateProductID(p.ID); err != nil {
			return nil, fmt.Errorf("product #%d: %w", i, err)
		}
		if _, dup := repo.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("product %q: negative price %s", p.ID, p.Price)
		}

		repo.products = append(repo.products, &p)
		repo.byID[p.ID] = &p
	}

	return repo, nil
}

// NewDefaultCatalogRepo возвращает каталог фермы.
func NewDefaultCatalogRepo() *CatalogRepo {
	repo, err := NewCatalogRepo(DefaultProducts())
	if err != nil {
		panic(err)
	}
	return repo
}

// List возвращает копию списка товаров в порядке каталога.
func (c *CatalogRepo) List() []*domain.Product {
	return append([]*domain.Product(nil), c.products...)
}

func (c *CatalogRepo) Lookup(id string) (*domain.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// DefaultProducts — товары фермы Green Valley.
func DefaultProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "Fresh Mixed Vegetables",
			Price:       decimal.RequireFromString("12.99"),
			Unit:        "basket",
			Image:       "https://images.unsplash.com/photo-1573481078935-b9605167e06b?w=1080",
			Description: "A fresh assortment of seasonal vegetables including lettuce, carrots, and peppers",
			Category:    "Vegetables",
			InStock:     true,
			Organic:     true,
		},
		{
			ID:          "2",
			Name:        "Organic Tomatoes",
			Price:       decimal.RequireFromString("4.50"),
			Unit:        "lb",
			Image:       "https://images.unsplash.com/photo-1714510949759-f87b13c30cc0?w=1080",
			Description: "Vine-ripened organic tomatoes, perfect for salads and cooking",
			Category:    "Vegetables",
			InStock:     true,
			Organic:     true,
		},
		{
			ID:          "3",
			Name:        "Farm Fresh Lettuce",
			Price:       decimal.RequireFromString("3.25"),
			Unit:        "head",
			Image:       "https://images.unsplash.com/photo-1657411657995-2c6c101387a6?w=1080",
			Description: "Crisp, fresh lettuce heads harvested this morning",
			Category:    "Vegetables",
			InStock:     true,
		},
		{
			ID:          "4",
			Name:        "Organic Carrots",
			Price:       decimal.RequireFromString("2.75"),
			Unit:        "bunch",
			Image:       "https://images.unsplash.com/photo-1639086495429-d60e72c53c81?w=1080",
			Description: "Sweet, crunchy organic carrots with their green tops",
			Category:    "Vegetables",
			InStock:     true,
			Organic:     true,
		},
		{
			ID:          "5",
			Name:        "Fresh Apples",
			Price:       decimal.RequireFromString("3.99"),
			Unit:        "lb",
			Image:       "https://images.unsplash.com/photo-1722553908751-f3d3315702e7?w=1080",
			Description: "Crisp, sweet apples from our orchard, perfect for snacking",
			Category:    "Fruits",
			InStock:     true,
		},
		{
			ID:          "6",
			Name:        "Farm Fresh Eggs",
			Price:       decimal.RequireFromString("6.50"),
			Unit:        "dozen",
			Image:       "https://images.unsplash.com/photo-1664339307400-9c22e5f44496?w=1080",
			Description: "Free-range eggs from our happy chickens, rich and flavorful",
			Category:    "Dairy & Eggs",
			InStock:     false,
			Organic:     true,
		},
	}
}
