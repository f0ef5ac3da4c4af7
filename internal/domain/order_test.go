package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() domain.OrderDraft {
	return domain.OrderDraft{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Phone:      "555-0100",
		PickupDate: "2026-10-16",
	}
}

func TestOrderDraft_Validate(t *testing.T) {
	const minDate = "2026-10-15"

	tests := []struct {
		name       string
		mutate     func(d *domain.OrderDraft)
		wantFields []domain.FieldError
	}{
		{
			name:   "valid",
			mutate: func(*domain.OrderDraft) {},
		},
		{
			name:   "min_date_is_allowed",
			mutate: func(d *domain.OrderDraft) { d.PickupDate = minDate },
		},
		{
			name: "missing_required",
			mutate: func(d *domain.OrderDraft) {
				d.Name = ""
				d.Phone = "   "
			},
			wantFields: []domain.FieldError{
				{Field: domain.FieldName, Reason: domain.ReasonRequired},
				{Field: domain.FieldPhone, Reason: domain.ReasonRequired},
			},
		},
		{
			name:   "missing_pickup_date",
			mutate: func(d *domain.OrderDraft) { d.PickupDate = "" },
			wantFields: []domain.FieldError{
				{Field: domain.FieldPickupDate, Reason: domain.ReasonRequired},
			},
		},
		{
			name:   "malformed_date",
			mutate: func(d *domain.OrderDraft) { d.PickupDate = "16/10/2026" },
			wantFields: []domain.FieldError{
				{Field: domain.FieldPickupDate, Reason: domain.ReasonInvalidDate},
			},
		},
		{
			name:   "date_before_min",
			mutate: func(d *domain.OrderDraft) { d.PickupDate = "2026-10-14" },
			wantFields: []domain.FieldError{
				{Field: domain.FieldPickupDate, Reason: domain.ReasonBeforeMinDate},
			},
		},
		{
			name: "optional_fields_empty",
			mutate: func(d *domain.OrderDraft) {
				d.Address = ""
				d.Notes = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)

			err := d.Validate(minDate)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}

			var invalid *domain.ValidationError
			require.True(t, errors.As(err, &invalid))
			assert.True(t, errors.Is(err, e.ErrValidation))
			assert.Equal(t, tt.wantFields, invalid.Fields)
			assert.Equal(t, minDate, invalid.MinPickupDate)
		})
	}
}

func TestOrderDraft_SetField(t *testing.T) {
	var d domain.OrderDraft

	require.NoError(t, d.SetField(domain.FieldEmail, "a@b.c"))
	require.NoError(t, d.SetField(domain.FieldPickupDate, "2026-10-20"))
	assert.Equal(t, "a@b.c", d.Email)
	assert.Equal(t, "2026-10-20", d.PickupDate)

	err := d.SetField("coupon", "FREE")
	assert.ErrorIs(t, err, e.ErrUnknownField)

	require.NoError(t, d.SetField(domain.FieldPickupDate, " 2030-01-01 "))
	require.NoError(t, d.SetField(domain.FieldName, "   "))
	assert.Equal(t, "2030-01-01", d.PickupDate)
	assert.Equal(t, "", d.Name)
}

func TestOrderDraft_Normalized(t *testing.T) {
	d := domain.OrderDraft{
		Name:       "  Jane Doe ",
		Email:      " jane@example.com",
		Phone:      "555-0100\t",
		Address:    " ",
		PickupDate: " 2030-01-01 ",
		Notes:      "\ngate code 12\n",
	}

	assert.Equal(t, domain.OrderDraft{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Phone:      "555-0100",
		PickupDate: "2030-01-01",
		Notes:      "gate code 12",
	}, d.Normalized())
}

func TestMinPickupDate(t *testing.T) {
	now := time.Date(2026, 10, 14, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, "2026-10-15", domain.MinPickupDate(now, nil))
	assert.Equal(t, "2026-10-15", domain.MinPickupDate(now, time.UTC))
	assert.Equal(t, "2026-10-16", domain.MinPickupDate(now, time.FixedZone("UTC+3", 3*3600)))

	endOfMonth := time.Date(2026, 10, 31, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-11-01", domain.MinPickupDate(endOfMonth, time.UTC))
}

func TestNewOrderID(t *testing.T) {
	assert.Equal(t, "GVF123456", domain.NewOrderID("GVF", time.UnixMilli(1_700_000_123_456)))
	assert.Equal(t, "GVF000042", domain.NewOrderID("GVF", time.UnixMilli(1_700_000_000_042)))
}
