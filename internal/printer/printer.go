package printer

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/samandr77/billing/internal/entity"
)

const (
	font       = "Arial"
	lineHeight = 8.0
	pageWidth  = 190.0
)

var columns = []struct {
	title string
	width float64
	align string
}{
	{"Item", 85, "L"},
	{"Qty", 25, "R"},
	{"Price", 40, "R"},
	{"Line Total", 40, "R"},
}

// Printer renders invoices as A4 PDF documents.
type Printer struct {
	currency string
}

func New(currency string) *Printer {
	return &Printer{currency: currency}
}

func (p *Printer) InvoicePDF(invoice entity.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(fmt.Sprintf("Invoice #%d", invoice.Number), true)
	pdf.AddPage()

	pdf.SetFont(font, "B", 20)
	pdf.CellFormat(pageWidth/2, 12, fmt.Sprintf("INVOICE #%d", invoice.Number), "", 0, "L", false, 0, "")
	pdf.SetFont(font, "", 11)
	pdf.CellFormat(pageWidth/2, 12, "Date: "+tr(invoice.Date), "", 1, "R", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont(font, "B", 11)
	pdf.CellFormat(pageWidth, lineHeight, "BILL TO", "", 1, "L", false, 0, "")
	pdf.SetFont(font, "", 11)
	pdf.CellFormat(pageWidth, lineHeight, tr(invoice.CustomerName), "", 1, "L", false, 0, "")
	pdf.CellFormat(pageWidth, lineHeight, "Discount: "+percent(invoice.DiscountPercent), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont(font, "B", 11)
	pdf.SetFillColor(230, 230, 230)

	for _, c := range columns {
		pdf.CellFormat(c.width, lineHeight, c.title, "1", 0, c.align, true, 0, "")
	}

	pdf.Ln(-1)
	pdf.SetFont(font, "", 11)

	for _, it := range invoice.Items {
		row := []string{
			tr(it.ItemName),
			it.Quantity.String(),
			p.money(it.UnitPrice),
			p.money(it.LineTotal),
		}

		for i, c := range columns {
			pdf.CellFormat(c.width, lineHeight, row[i], "1", 0, c.align, false, 0, "")
		}

		pdf.Ln(-1)
	}

	pdf.Ln(6)

	labelWidth := columns[0].width + columns[1].width + columns[2].width
	valueWidth := columns[3].width

	totals := []struct {
		label string
		value string
		bold  bool
	}{
		{"Subtotal", p.money(invoice.Subtotal), false},
		{"Discount", percent(invoice.DiscountPercent), false},
		{"Total", p.money(invoice.Total), true},
	}

	for _, t := range totals {
		style := ""
		if t.bold {
			style = "B"
		}

		pdf.SetFont(font, style, 11)
		pdf.CellFormat(labelWidth, lineHeight, t.label, "", 0, "R", false, 0, "")
		pdf.CellFormat(valueWidth, lineHeight, t.value, "", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer

	err := pdf.Output(&buf)
	if err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func (p *Printer) money(d decimal.Decimal) string {
	return p.currency + " " + d.StringFixed(2)
}

func percent(d decimal.Decimal) string {
	return d.String() + "%"
}
