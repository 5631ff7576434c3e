package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/samandr77/billing/internal/entity"
)

// @title Billing API
// @version 1.0
// @description Items, customers and invoices with computed totals
// @BasePath /api

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks -typed

type Service interface {
	CreateItem(ctx context.Context, p entity.CreateItemParams) (entity.Item, error)
	Items(ctx context.Context) ([]entity.Item, error)
	CreateCustomer(ctx context.Context, p entity.CreateCustomerParams) (entity.Customer, error)
	Customers(ctx context.Context) ([]entity.Customer, error)
	CreateInvoice(ctx context.Context, p entity.CreateInvoiceParams) (entity.Invoice, error)
	Invoices(ctx context.Context) ([]entity.Invoice, error)
	Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
}

type Printer interface {
	InvoicePDF(invoice entity.Invoice) ([]byte, error)
}

type Handler struct {
	s Service
	p Printer
}

func NewHandler(s Service, p Printer) *Handler {
	return &Handler{
		s: s,
		p: p,
	}
}

type Item struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price" swaggertype:"number"`
	CreatedAt time.Time       `json:"createdAt"`
}

func itemToAPI(item entity.Item) Item {
	return Item{
		ID:        item.ID,
		Name:      item.Name,
		Price:     item.Price,
		CreatedAt: item.CreatedAt,
	}
}

type CreateItemRequest struct {
	Name  string        `json:"name"`
	Price entity.Number `json:"price" swaggertype:"number"`
}

// ListItems returns all items
// @Summary List items
// @Description Returns catalog items, newest first
// @Tags items
// @Produce json
// @Success 200 {array} Item
// @Failure 500 {object} ErrorResponse
// @Router /items [get]
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := h.s.Items(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	resp := make([]Item, 0, len(items))
	for _, item := range items {
		resp = append(resp, itemToAPI(item))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

// CreateItem creates a catalog item
// @Summary Create item
// @Tags items
// @Accept json
// @Produce json
// @Param CreateItemRequest body CreateItemRequest true "Item"
// @Success 201 {object} Item
// @Failure 400 {object} ErrorResponse "Empty name or invalid price"
// @Failure 500 {object} ErrorResponse
// @Router /items [post]
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateItemRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, KindInvalidInput, err, "invalid JSON")
		return
	}

	item, err := h.s.CreateItem(ctx, entity.CreateItemParams{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, itemToAPI(item))
}

type Customer struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	DiscountPercent decimal.Decimal `json:"discountPercent" swaggertype:"number"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func customerToAPI(c entity.Customer) Customer {
	return Customer{
		ID:              c.ID,
		Name:            c.Name,
		DiscountPercent: c.DiscountPercent,
		CreatedAt:       c.CreatedAt,
	}
}

type CreateCustomerRequest struct {
	Name            string        `json:"name"`
	DiscountPercent entity.Number `json:"discountPercent" swaggertype:"number"`
}

// ListCustomers returns all customers
// @Summary List customers
// @Description Returns customers, newest first
// @Tags customers
// @Produce json
// @Success 200 {array} Customer
// @Failure 500 {object} ErrorResponse
// @Router /customers [get]
func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customers, err := h.s.Customers(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	resp := make([]Customer, 0, len(customers))
	for _, c := range customers {
		resp = append(resp, customerToAPI(c))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

// CreateCustomer creates a customer
// @Summary Create customer
// @Tags customers
// @Accept json
// @Produce json
// @Param CreateCustomerRequest body CreateCustomerRequest true "Customer"
// @Success 201 {object} Customer
// @Failure 400 {object} ErrorResponse "Empty name or discount out of [0, 100]"
// @Failure 500 {object} ErrorResponse
// @Router /customers [post]
func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateCustomerRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, KindInvalidInput, err, "invalid JSON")
		return
	}

	customer, err := h.s.CreateCustomer(ctx, entity.CreateCustomerParams{
		Name:            req.Name,
		DiscountPercent: req.DiscountPercent,
	})
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, customerToAPI(customer))
}

type LineItem struct {
	ItemID    *uuid.UUID      `json:"itemId,omitempty"`
	ItemName  string          `json:"itemName"`
	Quantity  decimal.Decimal `json:"quantity" swaggertype:"number"`
	UnitPrice decimal.Decimal `json:"unitPrice" swaggertype:"number"`
	LineTotal decimal.Decimal `json:"lineTotal" swaggertype:"number"`
}

type Invoice struct {
	ID              uuid.UUID       `json:"id"`
	InvoiceNumber   int64           `json:"invoiceNumber"`
	CustomerID      uuid.UUID       `json:"customerId"`
	CustomerName    string          `json:"customerName"`
	Date            string          `json:"date"`
	DiscountPercent decimal.Decimal `json:"discountPercent" swaggertype:"number"`
	Items           []LineItem      `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal" swaggertype:"number"`
	Total           decimal.Decimal `json:"total" swaggertype:"number"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func invoiceToAPI(inv entity.Invoice) Invoice {
	items := make([]LineItem, 0, len(inv.Items))

	for _, it := range inv.Items {
		li := LineItem{
			ItemName:  it.ItemName,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			LineTotal: it.LineTotal,
		}

		if it.ItemID.Valid {
			id := it.ItemID.UUID
			li.ItemID = &id
		}

		items = append(items, li)
	}

	return Invoice{
		ID:              inv.ID,
		InvoiceNumber:   inv.Number,
		CustomerID:      inv.CustomerID,
		CustomerName:    inv.CustomerName,
		Date:            inv.Date,
		DiscountPercent: inv.DiscountPercent,
		Items:           items,
		Subtotal:        inv.Subtotal,
		Total:           inv.Total,
		CreatedAt:       inv.CreatedAt,
	}
}

type LineItemRequest struct {
	ItemID    string        `json:"itemId"`
	ItemName  string        `json:"itemName"`
	Quantity  entity.Number `json:"quantity" swaggertype:"number"`
	UnitPrice entity.Number `json:"unitPrice" swaggertype:"number"`
}

type CreateInvoiceRequest struct {
	CustomerID      string            `json:"customerId"`
	Date            string            `json:"date"`
	DiscountPercent entity.Number     `json:"discountPercent" swaggertype:"number"`
	Items           []LineItemRequest `json:"items"`
}

// ListInvoices returns all invoices
// @Summary List invoices
// @Description Returns invoices with their line items, newest first
// @Tags invoices
// @Produce json
// @Success 200 {array} Invoice
// @Failure 500 {object} ErrorResponse
// @Router /invoices [get]
func (h *Handler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	invoices, err := h.s.Invoices(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	resp := make([]Invoice, 0, len(invoices))
	for _, inv := range invoices {
		resp = append(resp, invoiceToAPI(inv))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

// GetInvoice returns an invoice by id
// @Summary Get invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} Invoice
// @Failure 400 {object} ErrorResponse "Malformed id"
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 500 {object} ErrorResponse
// @Router /invoices/{id} [get]
func (h *Handler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	invoice, ok := h.invoice(w, r)
	if !ok {
		return
	}

	SendJSON(ctx, w, http.StatusOK, invoiceToAPI(invoice))
}

// InvoicePDF renders a printable invoice
// @Summary Print invoice
// @Tags invoices
// @Produce application/pdf
// @Param id path string true "Invoice ID"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse "Malformed id"
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 500 {object} ErrorResponse
// @Router /invoices/{id}/pdf [get]
func (h *Handler) InvoicePDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	invoice, ok := h.invoice(w, r)
	if !ok {
		return
	}

	b, err := h.p.InvoicePDF(invoice)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, KindInternal, err, "failed to render invoice")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=invoice-%d.pdf", invoice.Number))
	w.Header().Set("Content-Length", strconv.Itoa(len(b)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

func (h *Handler) invoice(w http.ResponseWriter, r *http.Request) (entity.Invoice, bool) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, KindInvalidInput, err, "malformed invoice id")
		return entity.Invoice{}, false
	}

	invoice, err := h.s.Invoice(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return entity.Invoice{}, false
	}

	return invoice, true
}

// CreateInvoice creates an invoice for a customer
// @Summary Create invoice
// @Description Computes line totals, subtotal and total and assigns the next invoice number
// @Tags invoices
// @Accept json
// @Produce json
// @Param CreateInvoiceRequest body CreateInvoiceRequest true "Invoice"
// @Success 201 {object} Invoice
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Failure 409 {object} ErrorResponse "Invoice number taken, resubmit"
// @Failure 500 {object} ErrorResponse
// @Router /invoices [post]
func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateInvoiceRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, KindInvalidInput, err, "invalid JSON")
		return
	}

	p := entity.CreateInvoiceParams{
		CustomerID:      req.CustomerID,
		Date:            req.Date,
		DiscountPercent: req.DiscountPercent,
		Items:           make([]entity.LineItemParams, 0, len(req.Items)),
	}

	for _, it := range req.Items {
		p.Items = append(p.Items, entity.LineItemParams{
			ItemID:    it.ItemID,
			ItemName:  it.ItemName,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	invoice, err := h.s.CreateInvoice(ctx, p)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, invoiceToAPI(invoice))
}

// HealthHandler godoc
// @Summary Health check
// @Tags health
// @Success 200
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func sendServiceErr(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrInvalidArgument):
		SendJSONErr(ctx, w, http.StatusBadRequest, KindInvalidInput, err, err.Error())
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, KindNotFound, err, err.Error())
	case errors.Is(err, entity.ErrConflict):
		SendJSONErr(ctx, w, http.StatusConflict, KindConflict, err, "invoice number already taken, resubmit the request")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, KindInternal, err, "internal error")
	}
}
