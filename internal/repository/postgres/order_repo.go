package postgres

import (
	"orderdesk/internal/models"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

type OrderPostgresRepo struct {
	db *gorm.DB
}

func NewOrderPostgres(db *gorm.DB) *OrderPostgresRepo {
	return &OrderPostgresRepo{db: db}
}

// CreateHeader writes the order row only. Items are written separately so the
// committer controls the header-before-items ordering.
func (r *OrderPostgresRepo) CreateHeader(o models.Order) error {
	hdr := o
	hdr.Items = nil
	if err := r.db.Set("gorm:association_autocreate", false).Create(&hdr).Error; err != nil {
		return errors.Wrap(err, "create order header")
	}
	return nil
}

// CreateItems writes the item batch in one transaction, so a midway failure
// leaves no items behind.
func (r *OrderPostgresRepo) CreateItems(items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for i := range items {
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return errors.Wrap(err, "create order items")
}

// DeleteHeader is the compensating write for a failed item batch.
func (r *OrderPostgresRepo) DeleteHeader(orderNumber string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_refer = ?", orderNumber).Delete(models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Where("order_number = ?", orderNumber).Delete(models.Order{}).Error
	})
	return errors.Wrap(err, "delete order header")
}

func (r *OrderPostgresRepo) Get(number string) (models.Order, error) {
	var o models.Order
	q := r.db.Preload("Items").
		Where("order_number = ?", number).
		First(&o)
	return o, q.Error
}

func (r *OrderPostgresRepo) GetAll() ([]models.Order, error) {
	var out []models.Order
	q := r.db.Preload("Items").Find(&out)
	return out, q.Error
}

func (r *OrderPostgresRepo) GetByDistributor(distributorID string) ([]models.Order, error) {
	var out []models.Order
	q := r.db.Preload("Items").
		Where("distributor_id = ?", distributorID).
		Find(&out)
	return out, q.Error
}

func (r *OrderPostgresRepo) UpdateStatus(number string, status models.OrderStatus) error {
	q := r.db.Model(&models.Order{}).
		Where("order_number = ?", number).
		Update("status", status)
	if q.Error != nil {
		return errors.Wrap(q.Error, "update order status")
	}
	if q.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
