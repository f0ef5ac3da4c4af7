package domain_test

import (
	"testing"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapCatalog map[string]*domain.Product

func (c mapCatalog) Lookup(id string) (*domain.Product, bool) {
	p, ok := c[id]
	return p, ok
}

func newProduct(id, name string, price decimal.Decimal, unit, category string) *domain.Product {
	return &domain.Product{ID: id, Name: name, Price: price, Unit: unit, Category: category, InStock: true}
}

func testCatalog() mapCatalog {
	eggs := newProduct("6", "Farm Fresh Eggs", decimal.RequireFromString("6.50"), "dozen", "Dairy & Eggs")
	eggs.InStock = false

	return mapCatalog{
		"1": newProduct("1", "Fresh Mixed Vegetables", decimal.RequireFromString("12.99"), "basket", "Vegetables"),
		"2": newProduct("2", "Organic Tomatoes", decimal.RequireFromString("4.50"), "lb", "Vegetables"),
		"3": newProduct("3", "Farm Fresh Lettuce", decimal.RequireFromString("3.25"), "head", "Vegetables"),
		"6": eggs,
	}
}

func TestLedger_SetQuantity(t *testing.T) {
	l := domain.NewLedger()

	l.SetQuantity("1", 2)
	l.SetQuantity("2", 1)
	l.SetQuantity("1", 5)

	assert.Equal(t, 5, l.Quantity("1"))
	assert.Equal(t, 1, l.Quantity("2"))
	assert.Equal(t, 0, l.Quantity("3"))
	assert.Len(t, l.Entries(), 2)
	assert.Equal(t, []domain.LedgerEntry{{ProductID: "1", Quantity: 5}, {ProductID: "2", Quantity: 1}}, l.Entries())

	l.SetQuantity("1", 0)
	assert.Equal(t, 0, l.Quantity("1"))
	assert.Equal(t, []domain.LedgerEntry{{ProductID: "2", Quantity: 1}}, l.Entries())

	l.SetQuantity("2", -3)
	assert.Empty(t, l.Entries())
}

func TestLedger_RemoveMissingIsNoop(t *testing.T) {
	l := domain.NewLedger()
	l.SetQuantity("1", 1)

	l.SetQuantity("42", 0)

	assert.Len(t, l.Entries(), 1)
}

func TestLedgerFromEntries_SkipsNonPositive(t *testing.T) {
	l := domain.LedgerFromEntries([]domain.LedgerEntry{
		{ProductID: "1", Quantity: 2},
		{ProductID: "2", Quantity: 0},
		{ProductID: "3", Quantity: -1},
	})

	assert.Equal(t, []domain.LedgerEntry{{ProductID: "1", Quantity: 2}}, l.Entries())
}

func TestLedger_LineItemsAndTotals(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name      string
		setup     func(l *domain.Ledger)
		wantLines int
		wantItems int
		wantTotal string
	}{
		{
			name: "two_products",
			setup: func(l *domain.Ledger) {
				l.SetQuantity("1", 2)
				l.SetQuantity("2", 1)
			},
			wantLines: 2,
			wantItems: 3,
			wantTotal: "30.48",
		},
		{
			name: "removed_to_zero",
			setup: func(l *domain.Ledger) {
				l.SetQuantity("1", 3)
				l.SetQuantity("1", 0)
			},
			wantLines: 0,
			wantItems: 0,
			wantTotal: "0.00",
		},
		{
			name: "unknown_id_dropped",
			setup: func(l *domain.Ledger) {
				l.SetQuantity("3", 3)
				l.SetQuantity("999", 4)
			},
			wantLines: 1,
			wantItems: 3,
			wantTotal: "9.75",
		},
		{
			name:      "empty",
			setup:     func(*domain.Ledger) {},
			wantTotal: "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := domain.NewLedger()
			tt.setup(l)

			items := l.LineItems(catalog)
			totals := domain.ComputeTotals(items)

			require.Len(t, items, tt.wantLines)
			assert.Equal(t, tt.wantLines, totals.LineCount)
			assert.Equal(t, tt.wantItems, totals.ItemCount)
			assert.Equal(t, tt.wantTotal, domain.FormatPrice(totals.Price))
		})
	}
}

func TestLedger_TotalQuantityIncludesUnknownIDs(t *testing.T) {
	l := domain.NewLedger()
	l.SetQuantity("1", 2)
	l.SetQuantity("999", 4)

	assert.Equal(t, 6, l.TotalQuantity())
	assert.Equal(t, 2, domain.ComputeTotals(l.LineItems(testCatalog())).ItemCount)
}

func TestLedger_LineItemsFollowInsertionOrder(t *testing.T) {
	l := domain.NewLedger()
	l.SetQuantity("3", 1)
	l.SetQuantity("1", 1)
	l.SetQuantity("2", 1)

	items := l.LineItems(testCatalog())

	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.Product.ID)
	}
	assert.Equal(t, []string{"3", "1", "2"}, ids)
}

func TestComputeTotals_ExactDecimal(t *testing.T) {
	p := newProduct("x", "Penny", decimal.RequireFromString("0.10"), "each", "Misc")

	totals := domain.ComputeTotals([]domain.LineItem{{Product: p, Quantity: 3}})

	assert.True(t, totals.Price.Equal(decimal.RequireFromString("0.30")))
	assert.Equal(t, "0.30", domain.FormatPrice(totals.Price))
}

func TestLedger_Clear(t *testing.T) {
	l := domain.NewLedger()
	l.SetQuantity("1", 1)
	l.SetQuantity("2", 2)

	l.Clear()

	assert.Empty(t, l.Entries())
	assert.Equal(t, 0, l.TotalQuantity())
	l.SetQuantity("3", 1)
	assert.Equal(t, []domain.LedgerEntry{{ProductID: "3", Quantity: 1}}, l.Entries())
}

func TestValidateProductID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"1", false},
		{"apple-42_B", false},
		{"", true},
		{"has space", true},
		{"слово", true},
		{string(make([]byte, 65)), true},
	}

	for _, tt := range tests {
		err := domain.ValidateProductID(tt.id)
		if tt.wantErr {
			assert.Error(t, err, "id %q", tt.id)
		} else {
			assert.NoError(t, err, "id %q", tt.id)
		}
	}
}
