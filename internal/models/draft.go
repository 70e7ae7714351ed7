package models

import "strings"

// LineSelection is a (product, quantity) pair inside a draft. Lines with a
// quantity below 1 are kept in the draft but never contribute to totals.
type LineSelection struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// NewRetailerContact holds the inline contact fields used when an order is
// submitted for a retailer that does not exist yet.
type NewRetailerContact struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	BusinessName string `json:"business_name"`
	StoreAddress string `json:"store_address"`
}

// SplitName breaks the free-form contact name into first/last components for
// the identity row. Everything after the first word goes into the last name.
func (c NewRetailerContact) SplitName() (first, last string) {
	parts := strings.Fields(c.Name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// OrderDraft is the in-memory order being assembled before submission. It is
// an explicit value passed to the committer, consumed exactly once.
type OrderDraft struct {
	RetailerID      string             `json:"retailer_id"`
	NewRetailer     bool               `json:"new_retailer"`
	Contact         NewRetailerContact `json:"contact"`
	Lines           []LineSelection    `json:"lines"`
	DiscountPercent float64            `json:"discount_percent"`
	Notes           string             `json:"notes"`
}

// ClampDiscount forces the discount percentage into [0,100]. Callers must
// apply it at every mutation boundary; the pricing engine does not re-check.
func (d *OrderDraft) ClampDiscount() {
	if d.DiscountPercent < 0 {
		d.DiscountPercent = 0
	}
	if d.DiscountPercent > 100 {
		d.DiscountPercent = 100
	}
}

// CanSubmit reports whether the draft is minimally well-formed: at least one
// line with quantity >= 1 and either an existing retailer reference or the
// new-retailer flag. Field-level completeness of the contact block is a UI
// concern and not checked here.
func (d OrderDraft) CanSubmit() bool {
	hasLine := false
	for _, l := range d.Lines {
		if l.Quantity >= 1 {
			hasLine = true
			break
		}
	}
	if !hasLine {
		return false
	}
	return d.RetailerID != "" || d.NewRetailer
}
