package repository

import (
	"orderdesk/internal/models"
	"orderdesk/internal/repository/cache"
	"orderdesk/internal/repository/postgres"

	"github.com/jinzhu/gorm"
)

type OrderPostgres interface {
	CreateHeader(ord models.Order) error
	CreateItems(items []models.OrderItem) error
	DeleteHeader(orderNumber string) error
	Get(number string) (models.Order, error)
	GetAll() ([]models.Order, error)
	GetByDistributor(distributorID string) ([]models.Order, error)
	UpdateStatus(number string, status models.OrderStatus) error
}

type CatalogPostgres interface {
	GetProducts(distributorID string) ([]models.Product, error)
	GetAllProducts() ([]models.Product, error)
}

type AccountPostgres interface {
	GetDistributorByUserID(userID string) (models.Distributor, error)
	GetRetailer(id string) (models.Retailer, error)
	GetRetailers() ([]models.Retailer, error)
	GetPartneredRetailers(distributorID string) ([]models.Retailer, error)
	CreateRetailer(user models.User, retailer models.Retailer) error
}

type OrderCache interface {
	PutOrder(number string, order models.Order)
	GetOrder(number string) (models.Order, error)
	GetAllOrders() ([]models.Order, error)
	DeleteOrder(number string)
}

type CatalogCache interface {
	PutProduct(p models.Product)
	GetProduct(id string) (models.Product, error)
	Snapshot() models.Catalog
}

type Repository struct {
	OrderPostgres
	CatalogPostgres
	AccountPostgres
	OrderCache
	CatalogCache
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		OrderPostgres:   postgres.NewOrderPostgres(db),
		CatalogPostgres: postgres.NewCatalogPostgres(db),
		AccountPostgres: postgres.NewAccountPostgres(db),
		OrderCache:      cache.NewOrderCache(cache.NewSharded(cache.WithShards(16))),
		CatalogCache:    cache.NewCatalogCache(cache.New()),
	}
}
