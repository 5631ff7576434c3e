package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/samandr77/billing/internal/entity"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

// lineItem is the JSONB representation of an invoice line.
type lineItem struct {
	ItemID    uuid.NullUUID   `json:"itemId"`
	ItemName  string          `json:"itemName"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

func (r *Repository) CreateItem(ctx context.Context, item entity.Item) error {
	const q = `INSERT INTO items (id, name, price, created_at) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, q, item.ID, item.Name, item.Price, item.CreatedAt)
	if err != nil {
		return wrapWriteErr(ctx, err)
	}

	return nil
}

func (r *Repository) Items(ctx context.Context) ([]entity.Item, error) {
	rows, err := r.query(ctx, sq.Select(itemColumns...).From("items").OrderBy("created_at DESC", "id DESC"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entity.Item, 0)

	for rows.Next() {
		var it entity.Item

		err = rows.Scan(&it.ID, &it.Name, &it.Price, &it.CreatedAt)
		if err != nil {
			return nil, err
		}

		it.CreatedAt = it.CreatedAt.UTC()
		items = append(items, it)
	}

	return items, rows.Err()
}

func (r *Repository) CreateCustomer(ctx context.Context, customer entity.Customer) error {
	const q = `INSERT INTO customers (id, name, discount_percent, created_at) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, q, customer.ID, customer.Name, customer.DiscountPercent, customer.CreatedAt)
	if err != nil {
		return wrapWriteErr(ctx, err)
	}

	return nil
}

func (r *Repository) Customers(ctx context.Context) ([]entity.Customer, error) {
	rows, err := r.query(ctx, sq.Select(customerColumns...).From("customers").OrderBy("created_at DESC", "id DESC"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]entity.Customer, 0)

	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}

		customers = append(customers, c)
	}

	return customers, rows.Err()
}

func (r *Repository) Customer(ctx context.Context, id uuid.UUID) (entity.Customer, error) {
	sql, args, err := sq.Select(customerColumns...).
		From("customers").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return entity.Customer{}, err
	}

	return scanCustomer(r.db.QueryRow(ctx, sql, args...))
}

// NextInvoiceNumber takes the next value of the invoice number sequence.
// A number taken by a failed insert is not reused.
func (r *Repository) NextInvoiceNumber(ctx context.Context) (int64, error) {
	const q = `SELECT nextval('invoice_number_seq')`

	var n int64

	err := r.db.QueryRow(ctx, q).Scan(&n)
	if err != nil {
		return 0, err
	}

	return n, nil
}

// CreateInvoice stores the invoice with its line items in a single row.
// A taken invoice number yields entity.ErrConflict.
func (r *Repository) CreateInvoice(ctx context.Context, invoice entity.Invoice) error {
	const q = `
	INSERT INTO invoices (
		id,
		invoice_number,
		customer_id,
		customer_name,
		date,
		discount_percent,
		items,
		subtotal,
		total,
		created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		invoice.ID,
		invoice.Number,
		invoice.CustomerID,
		invoice.CustomerName,
		invoice.Date,
		invoice.DiscountPercent,
		lineItemsToDB(invoice.Items),
		invoice.Subtotal,
		invoice.Total,
		invoice.CreatedAt,
	)
	if err != nil {
		return wrapWriteErr(ctx, err)
	}

	return nil
}

func (r *Repository) Invoices(ctx context.Context) ([]entity.Invoice, error) {
	rows, err := r.query(ctx, sq.Select(invoiceColumns...).From("invoices").OrderBy("created_at DESC", "invoice_number DESC"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := make([]entity.Invoice, 0)

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}

		invoices = append(invoices, inv)
	}

	return invoices, rows.Err()
}

func (r *Repository) Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	sql, args, err := sq.Select(invoiceColumns...).
		From("invoices").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return entity.Invoice{}, err
	}

	return scanInvoice(r.db.QueryRow(ctx, sql, args...))
}

func (r *Repository) query(ctx context.Context, stmt sq.SelectBuilder) (pgx.Rows, error) {
	sql, args, err := stmt.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	return r.db.Query(ctx, sql, args...)
}

func scanCustomer(row pgx.Row) (c entity.Customer, err error) {
	err = row.Scan(&c.ID, &c.Name, &c.DiscountPercent, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Customer{}, entity.ErrNotFound
		}

		return entity.Customer{}, err
	}

	c.CreatedAt = c.CreatedAt.UTC()

	return c, nil
}

func scanInvoice(row pgx.Row) (inv entity.Invoice, err error) {
	var (
		items     []lineItem
		createdAt time.Time
	)

	err = row.Scan(
		&inv.ID,
		&inv.Number,
		&inv.CustomerID,
		&inv.CustomerName,
		&inv.Date,
		&inv.DiscountPercent,
		&items,
		&inv.Subtotal,
		&inv.Total,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Invoice{}, entity.ErrNotFound
		}

		return entity.Invoice{}, err
	}

	inv.Items = lineItemsFromDB(items)
	inv.CreatedAt = createdAt.UTC()

	return inv, nil
}

func lineItemsToDB(items []entity.LineItem) []lineItem {
	res := make([]lineItem, 0, len(items))

	for _, it := range items {
		res = append(res, lineItem(it))
	}

	return res
}

func lineItemsFromDB(items []lineItem) []entity.LineItem {
	res := make([]entity.LineItem, 0, len(items))

	for _, it := range items {
		res = append(res, entity.LineItem(it))
	}

	return res
}

// wrapWriteErr maps constraint violations to entity errors. The returned
// message never carries schema names, those are logged instead.
func wrapWriteErr(ctx context.Context, err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	var wrapped error

	switch pgErr.Code {
	case codeUniqueViolation:
		wrapped = fmt.Errorf("%w: record already exists", entity.ErrConflict)
	case codeForeignKeyViolation:
		wrapped = fmt.Errorf("%w: referenced record does not exist", entity.ErrNotFound)
	case codeCheckViolation:
		wrapped = fmt.Errorf("%w: value rejected by storage", entity.ErrInvalidArgument)
	case codeNumericValueOutOfRange:
		wrapped = fmt.Errorf("%w: numeric value out of range", entity.ErrInvalidArgument)
	default:
		return err
	}

	slog.WarnContext(ctx, "write rejected",
		"code", pgErr.Code,
		"constraint", pgErr.ConstraintName,
		"error", pgErr.Message,
	)

	return wrapped
}
