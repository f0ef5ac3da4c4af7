package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/shopspring/decimal"
)

// Поля черновика заказа в том виде, в котором их присылает форма.
const (
	FieldName       = "name"
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldAddress    = "address"
	FieldPickupDate = "pickupDate"
	FieldNotes      = "notes"
)

// Причины отказа в валидации поля.
const (
	ReasonRequired      = "required"
	ReasonInvalidDate   = "invalid_date"
	ReasonBeforeMinDate = "before_min_date"
)

// OrderDraft — данные покупателя, вводимые в форме оформления заказа.
type OrderDraft struct {
	Name       string
	Email      string
	Phone      string
	Address    string
	PickupDate string // YYYY-MM-DD
	Notes      string
}

// SetField изменяет одно поле черновика по его имени. Пробелы по краям значения отбрасываются.
func (d *OrderDraft) SetField(field, value string) error {
	value = strings.TrimSpace(value)

	switch field {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldPhone:
		d.Phone = value
	case FieldAddress:
		d.Address = value
	case FieldPickupDate:
		d.PickupDate = value
	case FieldNotes:
		d.Notes = value
	default:
		return e.Wrap(field, e.ErrUnknownField)
	}
	return nil
}

// Normalized возвращает копию черновика без пробелов по краям полей.
func (d OrderDraft) Normalized() OrderDraft {
	return OrderDraft{
		Name:       strings.TrimSpace(d.Name),
		Email:      strings.TrimSpace(d.Email),
		Phone:      strings.TrimSpace(d.Phone),
		Address:    strings.TrimSpace(d.Address),
		PickupDate: strings.TrimSpace(d.PickupDate),
		Notes:      strings.TrimSpace(d.Notes),
	}
}

// Validate проверяет обязательные поля и дату самовывоза относительно минимальной даты minPickupDate.
func (d *OrderDraft) Validate(minPickupDate string) error {
	var fields []FieldError

	required := []struct {
		name  string
		value string
	}{
		{FieldName, d.Name},
		{FieldEmail, d.Email},
		{FieldPhone, d.Phone},
		{FieldPickupDate, d.PickupDate},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			fields = append(fields, FieldError{Field: r.name, Reason: ReasonRequired})
		}
	}

	if strings.TrimSpace(d.PickupDate) != "" {
		if reason := checkPickupDate(strings.TrimSpace(d.PickupDate), minPickupDate); reason != "" {
			fields = append(fields, FieldError{Field: FieldPickupDate, Reason: reason})
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields, MinPickupDate: minPickupDate}
	}
	return nil
}

func checkPickupDate(value, minDate string) string {
	pickup, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return ReasonInvalidDate
	}

	earliest, err := time.Parse(time.DateOnly, minDate)
	if err != nil {
		return ReasonInvalidDate
	}

	if pickup.Before(earliest) {
		return ReasonBeforeMinDate
	}
	return ""
}

// MinPickupDate возвращает «завтра» относительно now в часовом поясе магазина.
func MinPickupDate(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, loc).Format(time.DateOnly)
}

// FieldError описывает одно поле, не прошедшее проверку.
type FieldError struct {
	Field  string
	Reason string
}

// ValidationError — результат неуспешной проверки черновика. Не является фатальной ошибкой:
// оформление остаётся в состоянии редактирования.
type ValidationError struct {
	Fields        []FieldError
	MinPickupDate string
}

func (v *ValidationError) Error() string {
	parts := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		parts[i] = f.Field + ": " + f.Reason
	}
	return fmt.Sprintf("%s (%s)", e.ErrValidation.Error(), strings.Join(parts, ", "))
}

func (v *ValidationError) Unwrap() error {
	return e.ErrValidation
}

// OrderLine — зафиксированная на момент отправки позиция заказа.
type OrderLine struct {
	ProductID string
	Name      string
	Unit      string
	UnitPrice decimal.Decimal
	Quantity  int
}

func (l OrderLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Confirmation — подтверждение отправленного заказа. Хранится только в сессии.
type Confirmation struct {
	OrderID     string
	Lines       []OrderLine
	ItemCount   int
	LineCount   int
	Total       decimal.Decimal
	SubmittedAt time.Time
}

// NewOrderID формирует отображаемый номер заказа: префикс и последние 6 цифр времени в миллисекундах.
func NewOrderID(prefix string, now time.Time) string {
	return fmt.Sprintf("%s%06d", prefix, now.UnixMilli()%1_000_000)
}

func newConfirmation(prefix string, items []LineItem, now time.Time) Confirmation {
	lines := make([]OrderLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, OrderLine{
			ProductID: it.Product.ID,
			Name:      it.Product.Name,
			Unit:      it.Product.Unit,
			UnitPrice: it.Product.Price,
			Quantity:  it.Quantity,
		})
	}

	totals := ComputeTotals(items)
	return Confirmation{
		OrderID:     NewOrderID(prefix, now),
		Lines:       lines,
		ItemCount:   totals.ItemCount,
		LineCount:   totals.LineCount,
		Total:       totals.Price,
		SubmittedAt: now,
	}
}
