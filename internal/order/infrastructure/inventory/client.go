// Package inventory is the HTTP client for the inventory query service.
package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	invdomain "github.com/dev-playground/order-demo/internal/inventory/domain"
)

type Client struct {
	log     *slog.Logger
	baseURL string
	hc      *http.Client
}

// NewClient builds a client against baseURL, e.g. "http://localhost:8081".
// Every lookup is bounded by timeout; a timeout surfaces as an error and the
// order service folds it into rejection.
func NewClient(log *slog.Logger, baseURL string, timeout time.Duration) *Client {
	return &Client{
		log:     log,
		baseURL: baseURL,
		hc:      &http.Client{Timeout: timeout},
	}
}

func (c *Client) GetStock(ctx context.Context, sku string) (invdomain.Stock, error) {
	u := c.baseURL + "/inventory/" + url.PathEscape(sku)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return invdomain.Stock{}, err
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return invdomain.Stock{}, fmt.Errorf("inventory request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return invdomain.Stock{}, fmt.Errorf("inventory responded %d", resp.StatusCode)
	}

	var stock invdomain.Stock
	if err := json.NewDecoder(resp.Body).Decode(&stock); err != nil {
		return invdomain.Stock{}, fmt.Errorf("decode stock: %w", err)
	}
	return stock, nil
}
