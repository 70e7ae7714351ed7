package service

import (
	"orderdesk/internal/models"

	"github.com/sirupsen/logrus"
)

func (s *Service) Products(distributorID string) ([]models.Product, error) {
	return s.repo.GetProducts(distributorID)
}

func (s *Service) Retailers(distributorID string, partneredOnly bool) ([]models.Retailer, error) {
	if partneredOnly {
		return s.repo.GetPartneredRetailers(distributorID)
	}
	return s.repo.GetRetailers()
}

// WarmCaches loads committed orders and the full product catalog from the
// database into their read caches. Rows that fail struct validation are
// skipped with a warning rather than poisoning the cache.
func (s *Service) WarmCaches() error {
	orders, err := s.repo.OrderPostgres.GetAll()
	if err != nil {
		return err
	}
	for _, o := range orders {
		if err := s.v.Struct(o); err != nil {
			logrus.WithError(err).WithField("order_number", o.OrderNumber).Warn("skip invalid order from DB")
			continue
		}
		s.repo.PutOrder(o.OrderNumber, o)
	}

	products, err := s.repo.GetAllProducts()
	if err != nil {
		return err
	}
	for _, p := range products {
		if err := s.v.Struct(p); err != nil {
			logrus.WithError(err).WithField("product_id", p.ID).Warn("skip invalid product from DB")
			continue
		}
		s.repo.PutProduct(p)
	}
	return nil
}
