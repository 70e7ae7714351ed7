package postgres

import (
	"orderdesk/internal/models"

	"github.com/jinzhu/gorm"
)

type CatalogPostgresRepo struct {
	db *gorm.DB
}

func NewCatalogPostgres(db *gorm.DB) *CatalogPostgresRepo {
	return &CatalogPostgresRepo{db: db}
}

func (r *CatalogPostgresRepo) GetProducts(distributorID string) ([]models.Product, error) {
	var out []models.Product
	q := r.db.Where("distributor_id = ?", distributorID).Find(&out)
	return out, q.Error
}

func (r *CatalogPostgresRepo) GetAllProducts() ([]models.Product, error) {
	var out []models.Product
	q := r.db.Find(&out)
	return out, q.Error
}
