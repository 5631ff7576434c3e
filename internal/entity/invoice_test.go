package entity_test

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/billing/internal/entity"
)

func line(qty, price string) entity.LineItem {
	return entity.NewLineItem(uuid.NullUUID{}, "line", decimal.RequireFromString(qty), decimal.RequireFromString(price))
}

func TestInvoice_Recalculate(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name         string
		items        []entity.LineItem
		discount     string
		wantSubtotal string
		wantTotal    string
	}{
		{
			name:         "single line with 10% discount",
			items:        []entity.LineItem{line("3", "9.99")},
			discount:     "10",
			wantSubtotal: "29.97",
			wantTotal:    "26.973",
		},
		{
			name:         "no discount",
			items:        []entity.LineItem{line("2", "10"), line("1", "5.5")},
			discount:     "0",
			wantSubtotal: "25.5",
			wantTotal:    "25.5",
		},
		{
			name:         "full discount",
			items:        []entity.LineItem{line("4", "12.25")},
			discount:     "100",
			wantSubtotal: "49",
			wantTotal:    "0",
		},
		{
			name:         "no rounding of fractions",
			items:        []entity.LineItem{line("0.1", "0.1"), line("0.2", "0.1")},
			discount:     "33",
			wantSubtotal: "0.03",
			wantTotal:    "0.0201",
		},
		{
			name:         "discount with many fractional digits",
			items:        []entity.LineItem{line("1", "1")},
			discount:     "12.345678901234567891",
			wantSubtotal: "1",
			wantTotal:    "0.87654321098765432109",
		},
		{
			name:         "free line",
			items:        []entity.LineItem{line("1", "0"), line("5", "2")},
			discount:     "50",
			wantSubtotal: "10",
			wantTotal:    "5",
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			inv := entity.Invoice{
				Items:           tt.items,
				DiscountPercent: decimal.RequireFromString(tt.discount),
			}

			inv.Recalculate()

			require.True(t, inv.Subtotal.Equal(decimal.RequireFromString(tt.wantSubtotal)),
				"subtotal = %s, want %s", inv.Subtotal, tt.wantSubtotal)
			require.True(t, inv.Total.Equal(decimal.RequireFromString(tt.wantTotal)),
				"total = %s, want %s", inv.Total, tt.wantTotal)
		})
	}
}

func TestNewLineItem(t *testing.T) {
	t.Parallel()

	it := line("3", "9.99")
	require.True(t, it.LineTotal.Equal(decimal.RequireFromString("29.97")))
}

func TestInvoice_Validate(t *testing.T) {
	t.Parallel()

	valid := func() entity.Invoice {
		inv := entity.Invoice{
			DiscountPercent: decimal.NewFromInt(10),
			Items:           []entity.LineItem{line("1", "1")},
		}
		inv.Recalculate()

		return inv
	}

	require.NoError(t, valid().Validate())

	for _, tt := range []struct {
		name   string
		modify func(inv *entity.Invoice)
	}{
		{name: "no items", modify: func(inv *entity.Invoice) { inv.Items = nil }},
		{name: "discount above 100", modify: func(inv *entity.Invoice) { inv.DiscountPercent = decimal.NewFromInt(101) }},
		{name: "negative discount", modify: func(inv *entity.Invoice) { inv.DiscountPercent = decimal.NewFromInt(-1) }},
		{name: "zero quantity", modify: func(inv *entity.Invoice) { inv.Items[0].Quantity = decimal.Zero }},
		{name: "negative price", modify: func(inv *entity.Invoice) { inv.Items[0].UnitPrice = decimal.NewFromInt(-1) }},
		{name: "empty name", modify: func(inv *entity.Invoice) { inv.Items[0].ItemName = "" }},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			inv := valid()
			tt.modify(&inv)

			require.ErrorIs(t, inv.Validate(), entity.ErrInvalidArgument)
		})
	}
}
