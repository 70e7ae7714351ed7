package cache

import (
	"fmt"
	"net/http"

	"orderdesk/internal/models"
)

type OrderCacheRepo struct {
	cch KV
}

func NewOrderCache(cch KV) *OrderCacheRepo {
	return &OrderCacheRepo{cch: cch}
}

func (o *OrderCacheRepo) PutOrder(number string, ord models.Order) {
	o.cch.Put(number, ord)
}

func (o *OrderCacheRepo) GetOrder(number string) (models.Order, error) {
	v, ok := o.cch.Get(number)
	if !ok {
		return models.Order{}, NewErrorHandler(fmt.Errorf("order %s not found", number), http.StatusNotFound)
	}

	ord, ok := v.(models.Order)
	if !ok {
		return models.Order{},
			NewErrorHandler(fmt.Errorf("failed to convert order %s to its struct", number),
				http.StatusInternalServerError)
	}
	return ord, nil
}

func (o *OrderCacheRepo) GetAllOrders() ([]models.Order, error) {
	snap := o.cch.Snapshot()
	if len(snap) == 0 {
		return []models.Order{}, nil
	}

	orders := make([]models.Order, 0, len(snap))
	for number, val := range snap {
		ord, ok := val.(models.Order)
		if !ok {
			return nil,
				NewErrorHandler(fmt.Errorf("failed to convert order %s to its struct", number),
					http.StatusInternalServerError)
		}
		orders = append(orders, ord)
	}
	return orders, nil
}

func (o *OrderCacheRepo) DeleteOrder(number string) {
	o.cch.Delete(number)
}
