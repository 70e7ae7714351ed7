package models

import (
	"time"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// NormalizeStatus maps the alternate dashboard vocabulary onto the canonical enum.
// confirmed and shipped are both stages of fulfilment, delivered is terminal.
func NormalizeStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return OrderStatus(s), true
	}
	switch s {
	case "confirmed", "shipped":
		return StatusProcessing, true
	case "delivered":
		return StatusCompleted, true
	}
	return "", false
}

func (s OrderStatus) CanTransition(to OrderStatus) bool {
	switch s {
	case StatusPending:
		return to == StatusProcessing || to == StatusCancelled
	case StatusProcessing:
		return to == StatusCompleted || to == StatusCancelled
	default:
		return false
	}
}

type Order struct {
	OrderNumber   string      `json:"order_number"   validate:"required" gorm:"primary_key;unique"`
	RetailerID    string      `json:"retailer_id"    validate:"required" gorm:"type:uuid;index"`
	DistributorID string      `json:"distributor_id" validate:"required" gorm:"type:uuid;index"`
	Status        OrderStatus `json:"status"         validate:"oneof=pending processing completed cancelled"`
	Subtotal      float64     `json:"subtotal"       validate:"gte=0"`
	Discount      float64     `json:"discount"       validate:"gte=0"`
	Tax           float64     `json:"tax"            validate:"gte=0"`
	Total         float64     `json:"total"          validate:"gte=0"`
	Notes         string      `json:"notes"`
	DateCreated   time.Time   `json:"date_created"   validate:"required"`
	// Items may legally be empty: a draft whose every line references an
	// unknown product still commits with zero totals.
	Items []OrderItem `json:"items" validate:"dive" gorm:"foreignkey:OrderRefer;association_foreignkey:OrderNumber"`
}

type OrderItem struct {
	OrderRefer string  `json:"-"           gorm:"type:varchar(32);index"`
	ProductID  string  `json:"product_id"  validate:"required" gorm:"type:uuid"`
	Quantity   int     `json:"quantity"    validate:"gte=1"`
	UnitPrice  float64 `json:"unit_price"  validate:"gte=0"`
	TotalPrice float64 `json:"total_price" validate:"gte=0"`
}
