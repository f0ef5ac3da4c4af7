package domain

import (
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/shopspring/decimal"
)

// Product описывает товар каталога. Товары неизменяемы после загрузки каталога.
type Product struct {
	ID          string
	Name        string
	Description string
	Category    string
	Unit        string          // единица продажи: "lb", "basket", "dozen"...
	Price       decimal.Decimal // цена за единицу в долларах
	Image       string          // ссылка на изображение
	InStock     bool
	Organic     bool
}

const maxProductIDLen = 64

// ValidateProductID проверяет синтаксис идентификатора товара: 1..64 символа из [A-Za-z0-9_-].
func ValidateProductID(id string) error {
	if id == "" || len(id) > maxProductIDLen {
		return e.ErrInvalidProductID
	}

	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return e.ErrInvalidProductID
		}
	}

	return nil
}

// Catalog — источник товаров для построения позиций корзины.
type Catalog interface {
	Lookup(id string) (*Product, bool)
}
