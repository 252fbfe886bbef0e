package application

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dev-playground/order-demo/internal/order/domain"
)

type Service struct {
	log  *slog.Logger
	repo OrderRepository
	inv  InventoryClient
	pub  EventPublisher
}

func NewService(log *slog.Logger, repo OrderRepository, inv InventoryClient, pub EventPublisher) *Service {
	return &Service{log: log, repo: repo, inv: inv, pub: pub}
}

// CreateOrder runs the acceptance workflow: assign an id, check stock, and
// publish exactly one order-accepted event when the check passes. A failed or
// unreachable stock check degrades to rejection; the caller never sees a
// fault, only the status field. The order is stored after the publish
// decision, so a GetOrder racing the response can briefly miss it. Known
// ordering quirk, kept as is.
func (s *Service) CreateOrder(ctx context.Context, sku string, quantity int) domain.Order {
	o := domain.NewOrder(uuid.NewString(), sku, quantity)

	stock, err := s.inv.GetStock(ctx, o.SKU)
	switch {
	case err != nil:
		s.log.Warn("stock check failed, rejecting order", "order_id", o.ID, "sku", o.SKU, "err", err)
		o.Status = domain.StatusRejectedNoStock
	case stock.Available < o.Quantity:
		s.log.Info("insufficient stock", "order_id", o.ID, "sku", o.SKU,
			"requested", o.Quantity, "available", stock.Available)
		o.Status = domain.StatusRejectedNoStock
	default:
		if err := s.pub.PublishOrderAccepted(ctx, o); err != nil {
			// Fire-and-forget: a publish failure does not change the
			// order's fate.
			s.log.Error("publish order accepted failed", "order_id", o.ID, "err", err)
		}
	}

	s.repo.Save(ctx, o)
	return o
}

// GetOrder is a pure lookup. The second return is false for ids this process
// never assigned.
func (s *Service) GetOrder(ctx context.Context, id string) (domain.Order, bool) {
	return s.repo.Get(ctx, id)
}
