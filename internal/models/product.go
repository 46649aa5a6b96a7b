package models

// Product is a catalog entry whose price and description prefill
// quotation line items.
type Product struct {
	ID          int64   `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	AccountID   int64   `json:"account_id,omitempty"`
}
