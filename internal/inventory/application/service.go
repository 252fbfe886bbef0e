package application

import (
	"context"

	"github.com/dev-playground/order-demo/internal/inventory/domain"
)

type Service struct {
	store StockStore
}

func NewService(store StockStore) *Service {
	return &Service{store: store}
}

// GetStock answers a point lookup. It never fails: a SKU the store has no
// entry for reads as zero available.
func (s *Service) GetStock(ctx context.Context, sku string) domain.Stock {
	available, _ := s.store.Get(ctx, sku)
	return domain.Stock{SKU: sku, Available: available}
}

// Restock replaces the available quantity for a SKU. Negative quantities are
// clamped to zero to hold the available >= 0 invariant.
func (s *Service) Restock(ctx context.Context, sku string, available int) {
	if available < 0 {
		available = 0
	}
	s.store.Set(ctx, sku, available)
}
