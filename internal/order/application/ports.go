package application

import (
	"context"

	invdomain "github.com/dev-playground/order-demo/internal/inventory/domain"
	"github.com/dev-playground/order-demo/internal/order/domain"
)

type OrderRepository interface {
	Save(ctx context.Context, o domain.Order)
	Get(ctx context.Context, id string) (domain.Order, bool)
}

type InventoryClient interface {
	GetStock(ctx context.Context, sku string) (invdomain.Stock, error)
}

type EventPublisher interface {
	PublishOrderAccepted(ctx context.Context, o domain.Order) error
}
