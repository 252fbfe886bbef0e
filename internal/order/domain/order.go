package domain

// Status is the closed set of order outcomes. The wire strings are fixed:
// accepted orders stay PENDING (nothing here advances them further), rejected
// ones read REJECTED_NO_STOCK.
type Status string

const (
	StatusPending         Status = "PENDING"
	StatusRejectedNoStock Status = "REJECTED_NO_STOCK"
)

type Order struct {
	ID       string `json:"id"`
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
	Status   Status `json:"status"`
}

// NewOrder creates a provisional order. The stock decision may still flip the
// status to rejected before the order becomes visible anywhere.
func NewOrder(id, sku string, quantity int) Order {
	return Order{
		ID:       id,
		SKU:      sku,
		Quantity: quantity,
		Status:   StatusPending,
	}
}
