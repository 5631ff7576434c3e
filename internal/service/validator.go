package service

import (
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/samandr77/billing/internal/entity"
)

func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", entity.ErrInvalidArgument)
	}

	return name, nil
}

// ValidatePrice requires a present, numeric, non-negative price.
func ValidatePrice(price entity.Number) (decimal.Decimal, error) {
	if price.Overflow {
		return decimal.Zero, errOutOfRange("price")
	}

	if !price.Valid() {
		return decimal.Zero, fmt.Errorf("%w: price must be a number", entity.ErrInvalidArgument)
	}

	if price.Value.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: price %s is negative", entity.ErrInvalidArgument, price.Value)
	}

	return price.Value, nil
}

// ValidateDiscountPercent treats a missing discount as zero and rejects
// anything that is not a number within [0, 100].
func ValidateDiscountPercent(discount entity.Number) (decimal.Decimal, error) {
	if !discount.Set {
		return decimal.Zero, nil
	}

	if discount.Overflow {
		return decimal.Zero, errOutOfRange("discount")
	}

	if discount.NaN {
		return decimal.Zero, fmt.Errorf("%w: discount must be a number", entity.ErrInvalidArgument)
	}

	if !entity.ValidDiscountPercent(discount.Value) {
		return decimal.Zero, fmt.Errorf("%w: discount %s must be between 0 and 100", entity.ErrInvalidArgument, discount.Value)
	}

	return discount.Value, nil
}

// ValidateInvoiceDiscount falls back to zero for a missing or non-numeric
// discount. The [0, 100] range is checked on the computed invoice.
func ValidateInvoiceDiscount(discount entity.Number) (decimal.Decimal, error) {
	if discount.Overflow {
		return decimal.Zero, errOutOfRange("discount")
	}

	return discount.OrZero(), nil
}

func ValidateID(s string) (uuid.UUID, error) {
	id, err := uuid.FromString(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: malformed id %q", entity.ErrInvalidArgument, s)
	}

	return id, nil
}

// ValidateLineItems checks the shape of the line items and computes them.
// Quantity and unit price that are missing or not numbers fall back to
// zero instead of being rejected.
func ValidateLineItems(params []entity.LineItemParams) ([]entity.LineItem, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("%w: at least one line item is required", entity.ErrInvalidArgument)
	}

	items := make([]entity.LineItem, 0, len(params))

	for n, p := range params {
		var itemID uuid.NullUUID

		if strings.TrimSpace(p.ItemID) != "" {
			id, err := ValidateID(p.ItemID)
			if err != nil {
				return nil, fmt.Errorf("line %d: item id: %w", n+1, err)
			}

			itemID = uuid.NullUUID{UUID: id, Valid: true}
		}

		name, err := ValidateName(p.ItemName)
		if err != nil {
			return nil, fmt.Errorf("line %d: item name: %w", n+1, err)
		}

		if p.Quantity.Overflow {
			return nil, fmt.Errorf("line %d: %w", n+1, errOutOfRange("quantity"))
		}

		if p.UnitPrice.Overflow {
			return nil, fmt.Errorf("line %d: %w", n+1, errOutOfRange("unit price"))
		}

		items = append(items, entity.NewLineItem(itemID, name, p.Quantity.OrZero(), p.UnitPrice.OrZero()))
	}

	return items, nil
}

func ValidateDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return "", fmt.Errorf("%w: date is required", entity.ErrInvalidArgument)
	}

	return date, nil
}

func errOutOfRange(field string) error {
	return fmt.Errorf("%w: %s is too large or too precise", entity.ErrInvalidArgument, field)
}
