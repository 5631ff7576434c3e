package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Item is a catalog entry. Invoices copy its name and price, they never
// reference it live.
type Item struct {
	ID        uuid.UUID
	Name      string
	Price     decimal.Decimal
	CreatedAt time.Time
}

type CreateItemParams struct {
	Name  string
	Price Number
}
