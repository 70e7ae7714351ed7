package service

import (
	"context"

	"orderdesk/internal/models"
	"orderdesk/internal/repository"

	"github.com/go-playground/validator/v10"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

type Order interface {
	SubmitDraft(ctx context.Context, userID string, draft models.OrderDraft) (models.Order, error)
	UpdateOrderStatus(number string, status string) (models.Order, error)

	GetCachedOrder(number string) (models.Order, error)
	GetAllCachedOrders() ([]models.Order, error)
	GetDbOrder(number string) (models.Order, error)
	GetAllDbOrders() ([]models.Order, error)

	Products(distributorID string) ([]models.Product, error)
	Retailers(distributorID string, partneredOnly bool) ([]models.Retailer, error)

	WarmCaches() error

	HandleMessage(ctx context.Context, payload []byte) error
}

type Service struct {
	repo *repository.Repository
	v    *validator.Validate
}

func NewService(repo *repository.Repository) *Service {
	return &Service{
		repo: repo,
		v:    validator.New(),
	}
}
