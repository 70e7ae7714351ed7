package postgres

import (
	"orderdesk/internal/models"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

type AccountPostgresRepo struct {
	db *gorm.DB
}

func NewAccountPostgres(db *gorm.DB) *AccountPostgresRepo {
	return &AccountPostgresRepo{db: db}
}

func (r *AccountPostgresRepo) GetDistributorByUserID(userID string) (models.Distributor, error) {
	var d models.Distributor
	q := r.db.Where("user_id = ?", userID).First(&d)
	return d, q.Error
}

func (r *AccountPostgresRepo) GetRetailer(id string) (models.Retailer, error) {
	var ret models.Retailer
	q := r.db.Where("id = ?", id).First(&ret)
	return ret, q.Error
}

func (r *AccountPostgresRepo) GetRetailers() ([]models.Retailer, error) {
	var out []models.Retailer
	q := r.db.Find(&out)
	return out, q.Error
}

func (r *AccountPostgresRepo) GetPartneredRetailers(distributorID string) ([]models.Retailer, error) {
	var out []models.Retailer
	q := r.db.
		Joins("JOIN partnerships ON partnerships.retailer_id = retailers.id").
		Where("partnerships.distributor_id = ? AND partnerships.status = ?",
			distributorID, models.PartnershipAccepted).
		Find(&out)
	return out, q.Error
}

// CreateRetailer is the two-step inline signup: identity row first, then the
// dependent profile row, in one transaction so no orphan identity survives a
// profile failure.
func (r *AccountPostgresRepo) CreateRetailer(user models.User, retailer models.Retailer) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&retailer).Error
	})
	return errors.Wrap(err, "create retailer")
}
