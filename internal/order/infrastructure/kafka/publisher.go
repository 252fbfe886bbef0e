package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/dev-playground/order-demo/internal/order/domain"
	"github.com/dev-playground/order-demo/pkg/tracing"
)

// Publisher writes order-accepted events to the orders topic. Messages are
// keyed by order id and hash-balanced, so events for one order land on one
// partition.
type Publisher struct {
	log    *slog.Logger
	writer *kafka.Writer
}

func NewPublisher(log *slog.Logger, brokers []string, topic string) *Publisher {
	return &Publisher{
		log: log,
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *Publisher) PublishOrderAccepted(ctx context.Context, o domain.Order) error {
	payload, err := json.Marshal(o)
	if err != nil {
		return err
	}

	headers := []kafka.Header{{Key: "event_type", Value: []byte("OrderAccepted")}}
	headers = tracing.InjectKafkaHeaders(ctx, headers)

	msg := kafka.Message{
		Key:     []byte(o.ID),
		Value:   payload,
		Headers: headers,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Error("write order accepted failed", "order_id", o.ID, "err", err)
		return err
	}
	p.log.Info("order accepted published", "order_id", o.ID, "sku", o.SKU)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
