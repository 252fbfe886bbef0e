package application

import (
	"context"
	"log/slog"

	"github.com/dev-playground/order-demo/internal/order/domain"
)

// Service is the deliberate no-op terminus of the pipeline: it observes
// order-accepted events and nothing more.
type Service struct {
	log *slog.Logger
}

func NewService(log *slog.Logger) *Service {
	return &Service{log: log}
}

func (s *Service) HandleOrderAccepted(ctx context.Context, o domain.Order) error {
	s.log.Info("received order message",
		"order_id", o.ID, "sku", o.SKU, "quantity", o.Quantity, "status", string(o.Status))
	return nil
}
