package domain

// Stock is the answer to a point lookup. Unknown SKUs answer with zero
// availability rather than an error, so "not found" and "out of stock" are
// indistinguishable on purpose.
type Stock struct {
	SKU       string `json:"sku"`
	Available int    `json:"available"`
}
