package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type Customer struct {
	ID              uuid.UUID
	Name            string
	DiscountPercent decimal.Decimal
	CreatedAt       time.Time
}

type CreateCustomerParams struct {
	Name            string
	DiscountPercent Number
}

var (
	MinDiscountPercent = decimal.Zero
	MaxDiscountPercent = decimal.NewFromInt(100)
)

// ValidDiscountPercent reports whether d lies within [0, 100].
func ValidDiscountPercent(d decimal.Decimal) bool {
	return !d.LessThan(MinDiscountPercent) && !d.GreaterThan(MaxDiscountPercent)
}
