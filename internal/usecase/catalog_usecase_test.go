package usecase_test

import (
	"context"
	"testing"

	"github.com/DRSN-tech/storefront/internal/repository/memory"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCatalogUseCase_ListProducts(t *testing.T) {
	uc := usecase.NewCatalogUC(memory.NewDefaultCatalogRepo())

	tests := []struct {
		name    string
		filter  usecase.ProductFilter
		wantIDs []string
	}{
		{name: "all", wantIDs: []string{"1", "2", "3", "4", "5", "6"}},
		{name: "fruits", filter: usecase.ProductFilter{Category: ptr("Fruits")}, wantIDs: []string{"5"}},
		{name: "organic", filter: usecase.ProductFilter{Organic: ptr(true)}, wantIDs: []string{"1", "2", "4", "6"}},
		{name: "out_of_stock", filter: usecase.ProductFilter{InStock: ptr(false)}, wantIDs: []string{"6"}},
		{name: "no_match", filter: usecase.ProductFilter{Category: ptr("Bakery")}, wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := uc.ListProducts(context.Background(), tt.filter)
			require.NoError(t, err)

			ids := make([]string, 0, len(products))
			for _, p := range products {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestCatalogUseCase_GetProduct(t *testing.T) {
	uc := usecase.NewCatalogUC(memory.NewDefaultCatalogRepo())

	p, err := uc.GetProduct(context.Background(), "6")
	require.NoError(t, err)
	assert.Equal(t, "Farm Fresh Eggs", p.Name)
	assert.False(t, p.InStock)

	_, err = uc.GetProduct(context.Background(), "77")
	assert.ErrorIs(t, err, e.ErrProductNotFound)

	_, err = uc.GetProduct(context.Background(), "")
	assert.ErrorIs(t, err, e.ErrInvalidProductID)
}

func TestCatalogUseCase_ListCategories(t *testing.T) {
	uc := usecase.NewCatalogUC(memory.NewDefaultCatalogRepo())

	categories, err := uc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Vegetables", "Fruits", "Dairy & Eggs"}, categories)
}
