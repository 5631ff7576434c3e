package repository

var (
	itemColumns = []string{
		"id",
		"name",
		"price",
		"created_at",
	}

	customerColumns = []string{
		"id",
		"name",
		"discount_percent",
		"created_at",
	}

	invoiceColumns = []string{
		"id",
		"invoice_number",
		"customer_id",
		"customer_name",
		"date",
		"discount_percent",
		"items",
		"subtotal",
		"total",
		"created_at",
	}
)

const (
	// PostgreSQL error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
	codeNumericValueOutOfRange = "22003"
	codeForeignKeyViolation    = "23503"
	codeUniqueViolation        = "23505"
	codeCheckViolation         = "23514"
)
