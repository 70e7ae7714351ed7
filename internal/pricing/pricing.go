// Package pricing derives monetary totals from a draft and the known catalog.
// All functions are pure; amounts stay full-precision float64 until they are
// rounded once for persistence or display.
package pricing

import (
	"math"

	"orderdesk/internal/models"
)

// TaxRate is a fixed policy, not configuration.
const TaxRate = 0.10

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Subtotal sums unit price times quantity over the lines whose product ID
// resolves in the catalog. Unresolvable lines and lines with quantity < 1
// contribute exactly 0.
func Subtotal(lines []models.LineSelection, catalog models.Catalog) float64 {
	var sum float64
	for _, l := range lines {
		if l.Quantity < 1 {
			continue
		}
		p, ok := catalog[l.ProductID]
		if !ok {
			continue
		}
		sum += p.UnitPrice * float64(l.Quantity)
	}
	return sum
}

// Discount returns subtotal * discountPercent / 100. The percentage must be
// clamped to [0,100] by the caller; no re-validation happens here.
func Discount(subtotal, discountPercent float64) float64 {
	return subtotal * discountPercent / 100
}

// Tax applies the fixed rate to the discounted subtotal.
func Tax(subtotal, discount float64) float64 {
	return (subtotal - discount) * TaxRate
}

func Total(subtotal, discount, tax float64) float64 {
	return subtotal - discount + tax
}

// Quote runs the whole derivation in order: subtotal, discount, tax, total.
func Quote(lines []models.LineSelection, catalog models.Catalog, discountPercent float64) Totals {
	subtotal := Subtotal(lines, catalog)
	discount := Discount(subtotal, discountPercent)
	tax := Tax(subtotal, discount)
	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    Total(subtotal, discount, tax),
	}
}

// Round2 rounds to 2 decimal places. Applied only when an amount leaves the
// engine, never between derivation steps.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
