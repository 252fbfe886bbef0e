package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/dev-playground/order-demo/internal/order/domain"
	"github.com/dev-playground/order-demo/internal/payment/application"
	"github.com/dev-playground/order-demo/pkg/idempotency"
	"github.com/dev-playground/order-demo/pkg/tracing"
)

// Consumer reads the orders topic and acknowledges every message it
// observes. Malformed payloads are logged and committed as well: this
// consumer never holds up the partition.
type Consumer struct {
	log    *slog.Logger
	reader *kafka.Reader
	svc    *application.Service
	idem   *idempotency.Store // nil disables duplicate suppression
	tracer trace.Tracer
}

func NewConsumer(log *slog.Logger, brokers []string, topic, group string, svc *application.Service, idem *idempotency.Store) *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: group,
	})
	return &Consumer{
		log:    log,
		reader: r,
		svc:    svc,
		idem:   idem,
		tracer: otel.Tracer("payment-consumer"),
	}
}

func (c *Consumer) Run(ctx context.Context) error {
	defer c.reader.Close()

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			return err
		}
		c.process(ctx, msg)
		_ = c.reader.CommitMessages(ctx, msg)
	}
}

func (c *Consumer) process(ctx context.Context, msg kafka.Message) {
	if c.idem != nil {
		key := c.idem.Key(msg.Topic, msg.Partition, msg.Offset)
		seen, err := c.idem.Seen(ctx, key)
		if err != nil {
			c.log.Error("idempotency check failed", "err", err)
		} else if seen {
			c.log.Info("duplicate message skipped", "key", key)
			return
		}
	}

	msgCtx := tracing.ExtractKafkaHeaders(ctx, msg.Headers)
	msgCtx, span := c.tracer.Start(msgCtx, "ConsumeOrderAccepted")
	defer span.End()

	var o domain.Order
	if err := json.Unmarshal(msg.Value, &o); err != nil {
		c.log.Error("unmarshal order failed", "offset", msg.Offset, "err", err)
		return
	}

	if err := c.svc.HandleOrderAccepted(msgCtx, o); err != nil {
		c.log.Error("handle order failed", "order_id", o.ID, "err", err)
	}
}
