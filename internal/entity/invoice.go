package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Invoice is stored as a whole and never changes afterwards. CustomerName and
// the line item names are snapshots taken at creation time.
type Invoice struct {
	ID              uuid.UUID
	Number          int64
	CustomerID      uuid.UUID
	CustomerName    string
	Date            string
	DiscountPercent decimal.Decimal
	Items           []LineItem
	Subtotal        decimal.Decimal
	Total           decimal.Decimal
	CreatedAt       time.Time
}

type LineItem struct {
	ItemID    uuid.NullUUID
	ItemName  string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

type LineItemParams struct {
	ItemID    string
	ItemName  string
	Quantity  Number
	UnitPrice Number
}

type CreateInvoiceParams struct {
	CustomerID      string
	Date            string
	DiscountPercent Number
	Items           []LineItemParams
}

func NewLineItem(itemID uuid.NullUUID, name string, quantity, unitPrice decimal.Decimal) LineItem {
	return LineItem{
		ItemID:    itemID,
		ItemName:  name,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		LineTotal: quantity.Mul(unitPrice),
	}
}

// Subtotal sums line totals in order. No rounding is applied.
func Subtotal(items []LineItem) decimal.Decimal {
	sum := decimal.Zero

	for _, it := range items {
		sum = sum.Add(it.LineTotal)
	}

	return sum
}

// ApplyDiscount returns subtotal * (1 - discountPercent/100) without rounding.
func ApplyDiscount(subtotal, discountPercent decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(MaxDiscountPercent.Sub(discountPercent)).Shift(-2)
}

// Recalculate derives Subtotal and Total from Items and DiscountPercent.
func (i *Invoice) Recalculate() {
	i.Subtotal = Subtotal(i.Items)
	i.Total = ApplyDiscount(i.Subtotal, i.DiscountPercent)
}

// Validate checks the invariants a stored invoice must satisfy.
func (i Invoice) Validate() error {
	if len(i.Items) == 0 {
		return fmt.Errorf("%w: invoice has no line items", ErrInvalidArgument)
	}

	if !ValidDiscountPercent(i.DiscountPercent) {
		return fmt.Errorf("%w: discount %s is out of [0, 100]", ErrInvalidArgument, i.DiscountPercent)
	}

	for n, it := range i.Items {
		if it.ItemName == "" {
			return fmt.Errorf("%w: line %d: item name is empty", ErrInvalidArgument, n+1)
		}

		if !it.Quantity.IsPositive() {
			return fmt.Errorf("%w: line %d: quantity %s is not positive", ErrInvalidArgument, n+1, it.Quantity)
		}

		if it.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: line %d: unit price %s is negative", ErrInvalidArgument, n+1, it.UnitPrice)
		}

		if !InNumericRange(it.LineTotal) {
			return fmt.Errorf("%w: line %d: line total is too large or too precise", ErrInvalidArgument, n+1)
		}
	}

	if i.Subtotal.IsNegative() || i.Total.IsNegative() {
		return fmt.Errorf("%w: negative invoice amount", ErrInvalidArgument)
	}

	if !InNumericRange(i.Subtotal) || !InNumericRange(i.Total) {
		return fmt.Errorf("%w: invoice amount is too large or too precise", ErrInvalidArgument)
	}

	return nil
}
