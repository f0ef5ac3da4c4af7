package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

// LedgerEntry — запись корзины: идентификатор товара и его количество.
type LedgerEntry struct {
	ProductID string
	Quantity  int
}

// Ledger хранит количества товаров в корзине по их идентификаторам.
// Инвариант: в нём нет записей с количеством <= 0.
// Записи хранятся в порядке первого добавления. Этот порядок стабилен, но не является частью контракта.
type Ledger struct {
	order      []string
	quantities map[string]int
}

func NewLedger() *Ledger {
	return &Ledger{quantities: make(map[string]int)}
}

// LedgerFromEntries восстанавливает корзину из сохранённых записей, пропуская записи с количеством <= 0.
func LedgerFromEntries(entries []LedgerEntry) *Ledger {
	l := NewLedger()
	for _, en := range entries {
		l.SetQuantity(en.ProductID, en.Quantity)
	}
	return l
}

// SetQuantity задаёт количество товара. Ноль (или меньше) удаляет запись.
// Идентификатор не обязан существовать в каталоге.
func (l *Ledger) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		if _, ok := l.quantities[productID]; ok {
			delete(l.quantities, productID)
			l.order = slices.DeleteFunc(l.order, func(id string) bool { return id == productID })
		}
		return
	}

	if _, ok := l.quantities[productID]; !ok {
		l.order = append(l.order, productID)
	}
	l.quantities[productID] = quantity
}

// Quantity возвращает количество товара, 0 если записи нет.
func (l *Ledger) Quantity(productID string) int {
	return l.quantities[productID]
}

// Entries возвращает копию записей корзины.
func (l *Ledger) Entries() []LedgerEntry {
	entries := make([]LedgerEntry, 0, len(l.order))
	for _, id := range l.order {
		entries = append(entries, LedgerEntry{ProductID: id, Quantity: l.quantities[id]})
	}
	return entries
}

// TotalQuantity — сумма количеств по всем записям, включая не найденные в каталоге.
func (l *Ledger) TotalQuantity() int {
	total := 0
	for _, q := range l.quantities {
		total += q
	}
	return total
}

func (l *Ledger) Clear() {
	l.order = nil
	clear(l.quantities)
}

// LineItems соединяет корзину с каталогом. Записи без товара в каталоге молча отбрасываются.
func (l *Ledger) LineItems(catalog Catalog) []LineItem {
	items := make([]LineItem, 0, len(l.order))
	for _, id := range l.order {
		product, ok := catalog.Lookup(id)
		if !ok {
			continue
		}
		items = append(items, LineItem{Product: product, Quantity: l.quantities[id]})
	}
	return items
}

// LineItem — позиция корзины, производная от записи и товара каталога.
type LineItem struct {
	Product  *Product
	Quantity int
}

// Subtotal — стоимость позиции без округления.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Product.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Totals — итоги по набору позиций.
type Totals struct {
	ItemCount int             // сумма количеств
	LineCount int             // число позиций
	Price     decimal.Decimal // точная сумма, округляется только при выводе
}

// ComputeTotals считает итоги по позициям. Корзина и оформление заказа используют только её.
func ComputeTotals(items []LineItem) Totals {
	t := Totals{Price: decimal.Zero, LineCount: len(items)}
	for _, it := range items {
		t.ItemCount += it.Quantity
		t.Price = t.Price.Add(it.Subtotal())
	}
	return t
}

// FormatPrice округляет сумму до центов для отображения.
func FormatPrice(d decimal.Decimal) string {
	return d.StringFixed(2)
}
