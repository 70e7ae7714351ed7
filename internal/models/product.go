package models

type Product struct {
	ID            string  `json:"id"             validate:"required" gorm:"primary_key;type:uuid"`
	DistributorID string  `json:"distributor_id" validate:"required" gorm:"type:uuid;index"`
	Name          string  `json:"name"           validate:"required"`
	Description   string  `json:"description"`
	UnitPrice     float64 `json:"unit_price"     validate:"gte=0"`
	CaseSize      int     `json:"case_size"      validate:"gte=1"`
	Category      string  `json:"category"`
	ImageURL      string  `json:"image_url"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
}

// Catalog is the set of products visible to the ordering flow, keyed by product ID.
type Catalog map[string]Product

func NewCatalog(products []Product) Catalog {
	c := make(Catalog, len(products))
	for _, p := range products {
		c[p.ID] = p
	}
	return c
}
