package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/samandr77/billing/internal/entity"
)

// MessageWriter is the part of *kafka.Writer used by Producer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Producer struct {
	l     *slog.Logger
	w     MessageWriter
	topic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return NewProducerWithWriter(l, w, topic)
}

func NewProducerWithWriter(l *slog.Logger, w MessageWriter, topic string) *Producer {
	return &Producer{
		l:     l,
		w:     w,
		topic: topic,
	}
}

type InvoiceCreatedEvent struct {
	InvoiceID     uuid.UUID       `json:"invoiceId"`
	InvoiceNumber int64           `json:"invoiceNumber"`
	CustomerID    uuid.UUID       `json:"customerId"`
	Total         decimal.Decimal `json:"total"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// SendInvoiceCreated publishes the event keyed by invoice id. Failures are
// only logged, the invoice is already stored at this point.
func (p *Producer) SendInvoiceCreated(ctx context.Context, invoice entity.Invoice) {
	event := InvoiceCreatedEvent{
		InvoiceID:     invoice.ID,
		InvoiceNumber: invoice.Number,
		CustomerID:    invoice.CustomerID,
		Total:         invoice.Total,
		CreatedAt:     invoice.CreatedAt,
	}

	b, err := json.Marshal(event)
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(invoice.ID.String()),
		Value: b,
		Topic: p.topic,
	})
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

// NopProducer drops events. Used when Kafka is disabled.
type NopProducer struct{}

func (NopProducer) SendInvoiceCreated(context.Context, entity.Invoice) {}

func (NopProducer) Close() {}

type infoLogger struct {
	l *slog.Logger
}

func (l *infoLogger) Printf(format string, v ...any) {
	l.l.Info(fmt.Sprintf(format, v...))
}

type errorLogger struct {
	l *slog.Logger
}

func (l *errorLogger) Printf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}
