// Package quotation computes display-ready monetary totals for a quotation
// being edited. The arithmetic is pure and synchronous; rounding happens
// only at presentation time.
package quotation

import (
	"fmt"
	"strconv"
	"strings"

	"cotizador/internal/models"
)

// Totals is derived from (items, tax percentage) and never persisted:
// the backend recomputes authoritative totals on create.
type Totals struct {
	Subtotal    float64
	TaxableBase float64
	TotalTax    float64
	Total       float64
}

// Calculate sums the line items at full float64 precision.
//
//	Subtotal    = Σ unit_price × quantity
//	TaxableBase = Σ unit_price × quantity over taxable items
//	TotalTax    = TaxableBase × taxPercentage / 100
//	Total       = Subtotal + TotalTax
//
// Values are not validated here: negative prices or quantities flow through
// and produce negative results. An empty item list yields all zeros.
func Calculate(items []models.QuotationItem, taxPercentage float64) Totals {
	var t Totals
	for _, item := range items {
		line := item.UnitPrice * float64(item.Quantity)
		t.Subtotal += line
		if item.IsTaxable {
			t.TaxableBase += line
		}
	}
	t.TotalTax = t.TaxableBase * (taxPercentage / 100)
	t.Total = t.Subtotal + t.TotalTax
	return t
}

// Calculator memoizes the most recent Calculate input so repeated calls with
// identical inputs (every redisplay of an unchanged editor) are cheap.
// Not safe for concurrent use; the editor is single-threaded.
type Calculator struct {
	valid    bool
	lastTax  float64
	lastItem []models.QuotationItem
	lastOut  Totals
}

// Totals returns Calculate(items, taxPercentage), reusing the previous
// result when the inputs are unchanged.
func (c *Calculator) Totals(items []models.QuotationItem, taxPercentage float64) Totals {
	if c.valid && c.lastTax == taxPercentage && sameItems(c.lastItem, items) {
		return c.lastOut
	}

	out := Calculate(items, taxPercentage)

	c.valid = true
	c.lastTax = taxPercentage
	c.lastItem = append(c.lastItem[:0], items...)
	c.lastOut = out
	return out
}

func sameItems(a, b []models.QuotationItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// CoerceNumber converts free-form numeric text to a float64. Empty or
// invalid input coerces to 0, mirroring how an empty price field reads as
// zero while editing.
func CoerceNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// CoerceInt converts free-form integer text, coercing invalid input to 0.
func CoerceInt(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

// FormatMoney renders v as currency text with two decimals. This is the
// only place rounding is applied.
func FormatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
