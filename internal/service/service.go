package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/billing/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks -typed

type Repository interface {
	CreateItem(ctx context.Context, item entity.Item) error
	Items(ctx context.Context) ([]entity.Item, error)
	CreateCustomer(ctx context.Context, customer entity.Customer) error
	Customers(ctx context.Context) ([]entity.Customer, error)
	Customer(ctx context.Context, id uuid.UUID) (entity.Customer, error)
	NextInvoiceNumber(ctx context.Context) (int64, error)
	CreateInvoice(ctx context.Context, invoice entity.Invoice) error
	Invoices(ctx context.Context) ([]entity.Invoice, error)
	Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
}

type Producer interface {
	SendInvoiceCreated(ctx context.Context, invoice entity.Invoice)
}

type Service struct {
	repo     Repository
	producer Producer
}

func New(repo Repository, producer Producer) *Service {
	return &Service{
		repo:     repo,
		producer: producer,
	}
}

func (s *Service) CreateItem(ctx context.Context, p entity.CreateItemParams) (entity.Item, error) {
	name, err := ValidateName(p.Name)
	if err != nil {
		return entity.Item{}, err
	}

	price, err := ValidatePrice(p.Price)
	if err != nil {
		return entity.Item{}, err
	}

	item := entity.Item{
		ID:        uuid.Must(uuid.NewV4()),
		Name:      name,
		Price:     price,
		CreatedAt: now(),
	}

	err = s.repo.CreateItem(ctx, item)
	if err != nil {
		return entity.Item{}, fmt.Errorf("create item: %w", err)
	}

	slog.InfoContext(ctx, "item created", "item_id", item.ID, "price", item.Price)

	return item, nil
}

func (s *Service) Items(ctx context.Context) ([]entity.Item, error) {
	items, err := s.repo.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	return items, nil
}

func (s *Service) CreateCustomer(ctx context.Context, p entity.CreateCustomerParams) (entity.Customer, error) {
	name, err := ValidateName(p.Name)
	if err != nil {
		return entity.Customer{}, err
	}

	discount, err := ValidateDiscountPercent(p.DiscountPercent)
	if err != nil {
		return entity.Customer{}, err
	}

	customer := entity.Customer{
		ID:              uuid.Must(uuid.NewV4()),
		Name:            name,
		DiscountPercent: discount,
		CreatedAt:       now(),
	}

	err = s.repo.CreateCustomer(ctx, customer)
	if err != nil {
		return entity.Customer{}, fmt.Errorf("create customer: %w", err)
	}

	slog.InfoContext(ctx, "customer created", "customer_id", customer.ID)

	return customer, nil
}

func (s *Service) Customers(ctx context.Context) ([]entity.Customer, error) {
	customers, err := s.repo.Customers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	return customers, nil
}

// CreateInvoice validates the request, snapshots the customer, computes the
// totals and stores the invoice under the next invoice number. A number that
// is already taken fails with entity.ErrConflict and is not retried.
func (s *Service) CreateInvoice(ctx context.Context, p entity.CreateInvoiceParams) (entity.Invoice, error) {
	customerID, err := ValidateID(p.CustomerID)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("customer id: %w", err)
	}

	date, err := ValidateDate(p.Date)
	if err != nil {
		return entity.Invoice{}, err
	}

	items, err := ValidateLineItems(p.Items)
	if err != nil {
		return entity.Invoice{}, err
	}

	discount, err := ValidateInvoiceDiscount(p.DiscountPercent)
	if err != nil {
		return entity.Invoice{}, err
	}

	customer, err := s.repo.Customer(ctx, customerID)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get customer %s: %w", customerID, err)
	}

	invoice := entity.Invoice{
		ID:              uuid.Must(uuid.NewV4()),
		CustomerID:      customer.ID,
		CustomerName:    customer.Name,
		Date:            date,
		DiscountPercent: discount,
		Items:           items,
	}

	invoice.Recalculate()

	err = invoice.Validate()
	if err != nil {
		return entity.Invoice{}, err
	}

	invoice.Number, err = s.repo.NextInvoiceNumber(ctx)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("next invoice number: %w", err)
	}

	// Stamped after numbering so creation order follows number order.
	invoice.CreatedAt = now()

	err = s.repo.CreateInvoice(ctx, invoice)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("create invoice %d: %w", invoice.Number, err)
	}

	slog.InfoContext(ctx, "invoice created",
		"invoice_id", invoice.ID,
		"number", invoice.Number,
		"customer_id", invoice.CustomerID,
		"total", invoice.Total,
	)

	s.producer.SendInvoiceCreated(ctx, invoice)

	return invoice, nil
}

func (s *Service) Invoices(ctx context.Context) ([]entity.Invoice, error) {
	invoices, err := s.repo.Invoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}

	return invoices, nil
}

func (s *Service) Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	invoice, err := s.repo.Invoice(ctx, id)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get invoice %s: %w", id, err)
	}

	return invoice, nil
}

// now is truncated to what PostgreSQL timestamptz keeps, so a record read
// back equals the one returned on create.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
