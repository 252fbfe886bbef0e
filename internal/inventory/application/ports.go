package application

import "context"

type StockStore interface {
	Get(ctx context.Context, sku string) (int, bool)
	Set(ctx context.Context, sku string, available int)
}
