package models

// Quotation statuses known to the backend.
const (
	StatusDraft    = "draft"
	StatusSent     = "sent"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// QuotationItem is one row of a quotation. ProductID may be zero for a
// free-text row.
type QuotationItem struct {
	ID          int64   `json:"id,omitempty"`
	ProductID   int64   `json:"product_id,omitempty"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	IsTaxable   bool    `json:"is_taxable"`
	Total       float64 `json:"total,omitempty"`
}

// Quotation is a priced proposal document. Monetary totals are computed
// server-side on create; the client recomputes them locally only for
// display while editing.
type Quotation struct {
	ID              int64           `json:"id,omitempty"`
	QuotationNumber string          `json:"quotation_number,omitempty"`
	ClientID        int64           `json:"client_id"`
	UserID          int64           `json:"user_id"`
	ValidUntilDate  string          `json:"valid_until_date"`
	TaxPercentage   float64         `json:"tax_percentage"`
	OtherCharges    float64         `json:"other_charges"`
	Status          string          `json:"status,omitempty"`
	CreatedDate     string          `json:"created_date,omitempty"`
	Subtotal        float64         `json:"subtotal,omitempty"`
	TotalTax        float64         `json:"total_tax,omitempty"`
	Total           float64         `json:"total,omitempty"`
	AccountID       int64           `json:"account_id,omitempty"`
	Items           []QuotationItem `json:"items"`
	Client          *Client         `json:"client,omitempty"`
	User            *User           `json:"user,omitempty"`
}

// QuotationUpdate is status-only: the backend does not support editing a
// stored quotation's items.
type QuotationUpdate struct {
	Status string `json:"status"`
}
