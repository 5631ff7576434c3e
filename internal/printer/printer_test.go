package printer_test

import (
	"bytes"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/billing/internal/entity"
	"github.com/samandr77/billing/internal/printer"
)

func TestPrinter_InvoicePDF(t *testing.T) {
	t.Parallel()

	invoice := entity.Invoice{
		ID:              uuid.Must(uuid.NewV4()),
		Number:          7,
		CustomerName:    "Café Acme",
		Date:            "2024-01-15",
		DiscountPercent: decimal.NewFromInt(10),
		Items: []entity.LineItem{
			entity.NewLineItem(uuid.NullUUID{}, "Widget", decimal.NewFromInt(3), decimal.RequireFromString("9.99")),
		},
	}
	invoice.Recalculate()

	b, err := printer.New("INR").InvoicePDF(invoice)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

func TestPrinter_InvoicePDF_NoItems(t *testing.T) {
	t.Parallel()

	b, err := printer.New("$").InvoicePDF(entity.Invoice{Number: 1})
	require.NoError(t, err)
	require.NotEmpty(t, b)
}
