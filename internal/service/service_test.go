package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/billing/internal/entity"
	"github.com/samandr77/billing/internal/mocks"
	"github.com/samandr77/billing/internal/service"
)

type testService struct {
	repo     *mocks.MockRepository
	producer *mocks.MockProducer
	s        *service.Service
}

func newTestService(t *testing.T) *testService {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	return &testService{
		repo:     repo,
		producer: producer,
		s:        service.New(repo, producer),
	}
}

func num(s string) entity.Number {
	return entity.NewNumber(decimal.RequireFromString(s))
}

func TestService_CreateItem(t *testing.T) {
	t.Parallel()

	ts := newTestService(t)

	var stored entity.Item

	ts.repo.EXPECT().CreateItem(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, item entity.Item) error {
			stored = item
			return nil
		})

	item, err := ts.s.CreateItem(context.Background(), entity.CreateItemParams{
		Name:  "Widget",
		Price: num("9.99"),
	})
	require.NoError(t, err)
	require.False(t, item.ID.IsNil())
	require.False(t, item.CreatedAt.IsZero())
	require.Equal(t, "Widget", item.Name)
	require.True(t, item.Price.Equal(decimal.RequireFromString("9.99")))
	require.Equal(t, stored, item)
}

func TestService_CreateItem_Invalid(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name string
		p    entity.CreateItemParams
	}{
		{name: "empty name", p: entity.CreateItemParams{Name: "", Price: num("1")}},
		{name: "blank name", p: entity.CreateItemParams{Name: "   ", Price: num("1")}},
		{name: "missing price", p: entity.CreateItemParams{Name: "Widget"}},
		{name: "negative price", p: entity.CreateItemParams{Name: "Widget", Price: num("-0.01")}},
		{name: "NaN price", p: entity.CreateItemParams{Name: "Widget", Price: entity.Number{Set: true, NaN: true}}},
		{name: "price out of range", p: entity.CreateItemParams{Name: "Widget", Price: entity.Number{Set: true, Overflow: true}}},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := newTestService(t)

			_, err := ts.s.CreateItem(context.Background(), tt.p)
			require.ErrorIs(t, err, entity.ErrInvalidArgument)
		})
	}
}

func TestService_CreateCustomer(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name         string
		discount     entity.Number
		wantDiscount string
		wantErr      error
	}{
		{name: "ten percent", discount: num("10"), wantDiscount: "10"},
		{name: "zero", discount: num("0"), wantDiscount: "0"},
		{name: "hundred", discount: num("100"), wantDiscount: "100"},
		{name: "missing defaults to zero", discount: entity.Number{}, wantDiscount: "0"},
		{name: "above hundred", discount: num("150"), wantErr: entity.ErrInvalidArgument},
		{name: "negative", discount: num("-1"), wantErr: entity.ErrInvalidArgument},
		{name: "NaN", discount: entity.Number{Set: true, NaN: true}, wantErr: entity.ErrInvalidArgument},
		{name: "out of range", discount: entity.Number{Set: true, Overflow: true}, wantErr: entity.ErrInvalidArgument},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := newTestService(t)

			if tt.wantErr == nil {
				ts.repo.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return(nil)
			}

			customer, err := ts.s.CreateCustomer(context.Background(), entity.CreateCustomerParams{
				Name:            "Acme",
				DiscountPercent: tt.discount,
			})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.False(t, customer.ID.IsNil())
			require.Equal(t, "Acme", customer.Name)
			require.True(t, customer.DiscountPercent.Equal(decimal.RequireFromString(tt.wantDiscount)))
		})
	}
}

func TestService_CreateInvoice(t *testing.T) {
	t.Parallel()

	ts := newTestService(t)
	ctx := context.Background()

	customer := entity.Customer{
		ID:              uuid.Must(uuid.NewV4()),
		Name:            "Acme",
		DiscountPercent: decimal.NewFromInt(10),
		CreatedAt:       time.Now(),
	}

	var stored entity.Invoice

	gomock.InOrder(
		ts.repo.EXPECT().Customer(ctx, customer.ID).Return(customer, nil),
		ts.repo.EXPECT().NextInvoiceNumber(ctx).Return(int64(1), nil),
		ts.repo.EXPECT().CreateInvoice(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entity.Invoice) error {
				stored = inv
				return nil
			}),
		ts.producer.EXPECT().SendInvoiceCreated(ctx, gomock.Any()),
	)

	invoice, err := ts.s.CreateInvoice(ctx, entity.CreateInvoiceParams{
		CustomerID:      customer.ID.String(),
		Date:            "2024-01-15",
		DiscountPercent: num("10"),
		Items: []entity.LineItemParams{
			{ItemName: "Widget", Quantity: num("3"), UnitPrice: num("9.99")},
		},
	})
	require.NoError(t, err)
	require.Equal(t, stored, invoice)

	require.Equal(t, int64(1), invoice.Number)
	require.Equal(t, customer.ID, invoice.CustomerID)
	require.Equal(t, "Acme", invoice.CustomerName)
	require.Equal(t, "2024-01-15", invoice.Date)
	require.True(t, invoice.Subtotal.Equal(decimal.RequireFromString("29.97")), invoice.Subtotal.String())
	require.True(t, invoice.Total.Equal(decimal.RequireFromString("26.973")), invoice.Total.String())
	require.Len(t, invoice.Items, 1)
	require.True(t, invoice.Items[0].LineTotal.Equal(decimal.RequireFromString("29.97")))
	require.False(t, invoice.Items[0].ItemID.Valid)
}

func TestService_CreateInvoice_SequentialNumbers(t *testing.T) {
	t.Parallel()

	ts := newTestService(t)
	ctx := context.Background()

	customer := entity.Customer{ID: uuid.Must(uuid.NewV4()), Name: "Acme"}

	var next int64 = 42

	ts.repo.EXPECT().Customer(ctx, customer.ID).Return(customer, nil).Times(2)
	ts.repo.EXPECT().NextInvoiceNumber(ctx).DoAndReturn(func(context.Context) (int64, error) {
		n := next
		next++

		return n, nil
	}).Times(2)
	ts.repo.EXPECT().CreateInvoice(ctx, gomock.Any()).Return(nil).Times(2)
	ts.producer.EXPECT().SendInvoiceCreated(ctx, gomock.Any()).Times(2)

	p := entity.CreateInvoiceParams{
		CustomerID: customer.ID.String(),
		Date:       "2024-01-15",
		Items:      []entity.LineItemParams{{ItemName: "Widget", Quantity: num("1"), UnitPrice: num("1")}},
	}

	first, err := ts.s.CreateInvoice(ctx, p)
	require.NoError(t, err)

	second, err := ts.s.CreateInvoice(ctx, p)
	require.NoError(t, err)

	require.Equal(t, int64(42), first.Number)
	require.Equal(t, first.Number+1, second.Number)
}

func TestService_CreateInvoice_CreatedAfterNumbering(t *testing.T) {
	t.Parallel()

	ts := newTestService(t)
	ctx := context.Background()

	customer := entity.Customer{ID: uuid.Must(uuid.NewV4()), Name: "Acme"}

	var numberedAt time.Time

	ts.repo.EXPECT().Customer(ctx, customer.ID).Return(customer, nil)
	ts.repo.EXPECT().NextInvoiceNumber(ctx).DoAndReturn(func(context.Context) (int64, error) {
		time.Sleep(time.Millisecond)
		numberedAt = time.Now().UTC().Truncate(time.Microsecond)

		return 1, nil
	})
	ts.repo.EXPECT().CreateInvoice(ctx, gomock.Any()).Return(nil)
	ts.producer.EXPECT().SendInvoiceCreated(ctx, gomock.Any())

	invoice, err := ts.s.CreateInvoice(ctx, entity.CreateInvoiceParams{
		CustomerID: customer.ID.String(),
		Date:       "2024-01-15",
		Items:      []entity.LineItemParams{{ItemName: "Widget", Quantity: num("1"), UnitPrice: num("1")}},
	})
	require.NoError(t, err)
	require.False(t, invoice.CreatedAt.Before(numberedAt),
		"created at %s, numbered at %s", invoice.CreatedAt, numberedAt)
}

func TestService_CreateInvoice_LineItems(t *testing.T) {
	t.Parallel()

	ts := newTestService(t)
	ctx := context.Background()

	customer := entity.Customer{ID: uuid.Must(uuid.NewV4()), Name: "Acme"}
	itemID := uuid.Must(uuid.NewV4())

	ts.repo.EXPECT().Customer(ctx, customer.ID).Return(customer, nil)
	ts.repo.EXPECT().NextInvoiceNumber(ctx).Return(int64(8), nil)
	ts.repo.EXPECT().CreateInvoice(ctx, gomock.Any()).Return(nil)
	ts.producer.EXPECT().SendInvoiceCreated(ctx, gomock.Any())

	invoice, err := ts.s.CreateInvoice(ctx, entity.CreateInvoiceParams{
		CustomerID: customer.ID.String(),
		Date:       "2024-02-01",
		// Not a number, falls back to zero.
		DiscountPercent: entity.Number{Set: true, NaN: true},
		Items: []entity.LineItemParams{
			{ItemID: itemID.String(), ItemName: "Widget", Quantity: num("2"), UnitPrice: num("10")},
			{ItemName: "Setup", Quantity: num("1"), UnitPrice: entity.Number{Set: true, NaN: true}},
			{ItemName: "Support", Quantity: num("1.5"), UnitPrice: num("4")},
		},
	})
	require.NoError(t, err)

	require.Equal(t, int64(8), invoice.Number)
	require.True(t, invoice.DiscountPercent.IsZero())
	require.Equal(t, []string{"Widget", "Setup", "Support"},
		[]string{invoice.Items[0].ItemName, invoice.Items[1].ItemName, invoice.Items[2].ItemName})
	require.Equal(t, uuid.NullUUID{UUID: itemID, Valid: true}, invoice.Items[0].ItemID)
	require.True(t, invoice.Items[1].UnitPrice.IsZero())
	require.True(t, invoice.Items[1].LineTotal.IsZero())
	require.True(t, invoice.Subtotal.Equal(decimal.NewFromInt(26)))
	require.True(t, invoice.Total.Equal(invoice.Subtotal))
}

func TestService_CreateInvoice_Invalid(t *testing.T) {
	t.Parallel()

	customerID := uuid.Must(uuid.NewV4()).String()
	items := []entity.LineItemParams{{ItemName: "Widget", Quantity: num("1"), UnitPrice: num("1")}}

	for _, tt := range []struct {
		name string
		p    entity.CreateInvoiceParams
	}{
		{name: "malformed customer id", p: entity.CreateInvoiceParams{CustomerID: "42", Date: "2024-01-15", Items: items}},
		{name: "missing customer id", p: entity.CreateInvoiceParams{Date: "2024-01-15", Items: items}},
		{name: "missing date", p: entity.CreateInvoiceParams{CustomerID: customerID, Items: items}},
		{name: "no items", p: entity.CreateInvoiceParams{CustomerID: customerID, Date: "2024-01-15"}},
		{name: "empty items", p: entity.CreateInvoiceParams{
			CustomerID: customerID, Date: "2024-01-15", Items: []entity.LineItemParams{},
		}},
		{name: "line without name", p: entity.CreateInvoiceParams{
			CustomerID: customerID, Date: "2024-01-15",
			Items: []entity.LineItemParams{{Quantity: num("1"), UnitPrice: num("1")}},
		}},
		{name: "quantity out of range", p: entity.CreateInvoiceParams{
			CustomerID: customerID, Date: "2024-01-15",
			Items: []entity.LineItemParams{{ItemName: "Widget", Quantity: entity.Number{Set: true, Overflow: true}, UnitPrice: num("1")}},
		}},
		{name: "unit price out of range", p: entity.CreateInvoiceParams{
			CustomerID: customerID, Date: "2024-01-15",
			Items: []entity.LineItemParams{{ItemName: "Widget", Quantity: num("1"), UnitPrice: entity.Number{Set: true, Overflow: true}}},
		}},
		{name: "discount out of range", p: entity.CreateInvoiceParams{
			CustomerID: customerID, Date: "2024-01-15", Items: items,
			DiscountPercent: entity.Number{Set: true, Overflow: true},
		}},
		{name: "malformed item id", p: entity.CreateInvoiceParams{
			CustomerID: customerID, Date: "2024-01-15",
			Items: []entity.LineItemParams{{ItemID: "nope", ItemName: "Widget", Quantity: num("1"), UnitPrice: num("1")}},
		}},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := newTestService(t)

			_, err := ts.s.CreateInvoice(context.Background(), tt.p)
			require.ErrorIs(t, err, entity.ErrInvalidArgument)
		})
	}
}

func TestService_CreateInvoice_StoredInvariants(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name     string
		discount entity.Number
		item     entity.LineItemParams
	}{
		{name: "zero quantity", item: entity.LineItemParams{ItemName: "Widget", Quantity: num("0"), UnitPrice: num("1")}},
		{name: "missing quantity", item: entity.LineItemParams{ItemName: "Widget", UnitPrice: num("1")}},
		{name: "negative price", item: entity.LineItemParams{ItemName: "Widget", Quantity: num("1"), UnitPrice: num("-1")}},
		{
			name: "line total out of range",
			item: entity.LineItemParams{ItemName: "Widget", Quantity: num("1e131000"), UnitPrice: num("1e131000")},
		},
		{
			name:     "discount above hundred",
			discount: num("150"),
			item:     entity.LineItemParams{ItemName: "Widget", Quantity: num("1"), UnitPrice: num("1")},
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := newTestService(t)

			customer := entity.Customer{ID: uuid.Must(uuid.NewV4()), Name: "Acme"}
			ts.repo.EXPECT().Customer(gomock.Any(), customer.ID).Return(customer, nil)

			_, err := ts.s.CreateInvoice(context.Background(), entity.CreateInvoiceParams{
				CustomerID:      customer.ID.String(),
				Date:            "2024-01-15",
				DiscountPercent: tt.discount,
				Items:           []entity.LineItemParams{tt.item},
			})
			require.ErrorIs(t, err, entity.ErrInvalidArgument)
		})
	}
}

func TestService_CreateInvoice_UnknownCustomer(t *testing.T) {
	t.Parallel()

	ts := newTestService(t)

	customerID := uuid.Must(uuid.NewV4())
	ts.repo.EXPECT().Customer(gomock.Any(), customerID).Return(entity.Customer{}, entity.ErrNotFound)

	_, err := ts.s.CreateInvoice(context.Background(), entity.CreateInvoiceParams{
		CustomerID: customerID.String(),
		Date:       "2024-01-15",
		Items:      []entity.LineItemParams{{ItemName: "Widget", Quantity: num("1"), UnitPrice: num("1")}},
	})
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_CreateInvoice_NumberConflict(t *testing.T) {
	t.Parallel()

	ts := newTestService(t)

	customer := entity.Customer{ID: uuid.Must(uuid.NewV4()), Name: "Acme"}

	ts.repo.EXPECT().Customer(gomock.Any(), customer.ID).Return(customer, nil)
	ts.repo.EXPECT().NextInvoiceNumber(gomock.Any()).Return(int64(4), nil)
	ts.repo.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
		Return(errors.Join(entity.ErrConflict, errors.New("duplicate key")))

	_, err := ts.s.CreateInvoice(context.Background(), entity.CreateInvoiceParams{
		CustomerID: customer.ID.String(),
		Date:       "2024-01-15",
		Items:      []entity.LineItemParams{{ItemName: "Widget", Quantity: num("1"), UnitPrice: num("1")}},
	})
	require.ErrorIs(t, err, entity.ErrConflict)
}

func TestService_Invoice(t *testing.T) {
	t.Parallel()

	ts := newTestService(t)

	want := entity.Invoice{ID: uuid.Must(uuid.NewV4()), Number: 5}

	ts.repo.EXPECT().Invoice(gomock.Any(), want.ID).Return(want, nil)

	got, err := ts.s.Invoice(context.Background(), want.ID)
	require.NoError(t, err)
	require.Equal(t, want, got)

	missing := uuid.Must(uuid.NewV4())
	ts.repo.EXPECT().Invoice(gomock.Any(), missing).Return(entity.Invoice{}, entity.ErrNotFound)

	_, err = ts.s.Invoice(context.Background(), missing)
	require.ErrorIs(t, err, entity.ErrNotFound)
}
