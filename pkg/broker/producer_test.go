package broker_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/billing/internal/entity"
	"github.com/samandr77/billing/pkg/broker"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}

	w.msgs = append(w.msgs, msgs...)

	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestProducer_SendInvoiceCreated(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	p := broker.NewProducerWithWriter(slog.Default(), w, "billing.invoice.created")

	invoice := entity.Invoice{
		ID:         uuid.Must(uuid.NewV4()),
		Number:     12,
		CustomerID: uuid.Must(uuid.NewV4()),
		Total:      decimal.RequireFromString("26.973"),
		CreatedAt:  time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}

	p.SendInvoiceCreated(context.Background(), invoice)
	p.Close()

	require.True(t, w.closed)
	require.Len(t, w.msgs, 1)
	require.Equal(t, "billing.invoice.created", w.msgs[0].Topic)
	require.Equal(t, invoice.ID.String(), string(w.msgs[0].Key))

	var got broker.InvoiceCreatedEvent

	err := json.Unmarshal(w.msgs[0].Value, &got)
	require.NoError(t, err)
	require.Equal(t, invoice.ID, got.InvoiceID)
	require.Equal(t, invoice.Number, got.InvoiceNumber)
	require.Equal(t, invoice.CustomerID, got.CustomerID)
	require.True(t, invoice.Total.Equal(got.Total))
	require.True(t, invoice.CreatedAt.Equal(got.CreatedAt))
}

func TestProducer_SendInvoiceCreated_WriteError(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	l := slog.New(slog.NewJSONHandler(buf, nil))

	w := &fakeWriter{err: errors.New("broker down")}
	p := broker.NewProducerWithWriter(l, w, "topic")

	p.SendInvoiceCreated(context.Background(), entity.Invoice{ID: uuid.Must(uuid.NewV4())})

	require.Empty(t, w.msgs)
	require.Contains(t, buf.String(), "broker down")
}
