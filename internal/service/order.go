package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"orderdesk/internal/models"
	"orderdesk/internal/pricing"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

const orderNumberPrefix = "ORD-"

// newOrderNumber returns a short, display-friendly token. The UUID-derived
// suffix replaces the old timestamp scheme, which could collide when two
// submissions landed in the same millisecond.
func newOrderNumber() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return orderNumberPrefix + strings.ToUpper(suffix)
}

// SubmitDraft turns a validated draft into a persisted Order plus its items.
// The steps run strictly in sequence: each write depends on an identifier
// produced by the previous one.
func (s *Service) SubmitDraft(ctx context.Context, userID string, draft models.OrderDraft) (models.Order, error) {
	if userID == "" {
		return models.Order{}, ErrNotAuthenticated
	}

	draft.ClampDiscount()
	if !draft.CanSubmit() {
		return models.Order{}, fmt.Errorf("%w: draft needs at least one line and a retailer", ErrValidation)
	}

	dist, err := s.repo.GetDistributorByUserID(userID)
	if gorm.IsRecordNotFoundError(err) {
		return models.Order{}, ErrProfileNotFound
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("resolve distributor: %w", err)
	}

	retailerID, err := s.resolveRetailer(draft)
	if err != nil {
		return models.Order{}, err
	}

	// Price against an immutable snapshot, so items below are captured at
	// the same unit prices the totals were computed from.
	catalog := s.repo.CatalogCache.Snapshot()
	quote := pricing.Quote(draft.Lines, catalog, draft.DiscountPercent)

	ord := models.Order{
		OrderNumber:   newOrderNumber(),
		RetailerID:    retailerID,
		DistributorID: dist.ID,
		Status:        models.StatusPending,
		Subtotal:      pricing.Round2(quote.Subtotal),
		Discount:      pricing.Round2(quote.Discount),
		Tax:           pricing.Round2(quote.Tax),
		Total:         pricing.Round2(quote.Total),
		Notes:         draft.Notes,
		DateCreated:   time.Now().UTC(),
	}

	if err := s.repo.CreateHeader(ord); err != nil {
		return models.Order{}, fmt.Errorf("persist order: %w", err)
	}

	items := buildItems(ord.OrderNumber, draft.Lines, catalog)
	if err := s.repo.CreateItems(items); err != nil {
		logrus.WithError(err).
			WithField("order_number", ord.OrderNumber).
			Error("item batch failed, compensating header delete")
		if derr := s.repo.DeleteHeader(ord.OrderNumber); derr != nil {
			logrus.WithError(derr).
				WithField("order_number", ord.OrderNumber).
				Error("compensation failed, order header is orphaned")
			return models.Order{}, &PartialCommitError{OrderNumber: ord.OrderNumber, Cause: err}
		}
		return models.Order{}, fmt.Errorf("persist order items: %w", err)
	}

	ord.Items = items
	s.repo.PutOrder(ord.OrderNumber, ord)
	return ord, nil
}

// resolveRetailer returns the identifier the order header will reference:
// either a verified existing retailer or a freshly created identity+profile
// pair. Order creation must not start if this fails.
func (s *Service) resolveRetailer(draft models.OrderDraft) (string, error) {
	if draft.RetailerID != "" {
		ret, err := s.repo.GetRetailer(draft.RetailerID)
		if gorm.IsRecordNotFoundError(err) {
			return "", ErrRetailerNotFound
		}
		if err != nil {
			return "", fmt.Errorf("resolve retailer: %w", err)
		}
		return ret.ID, nil
	}

	first, last := draft.Contact.SplitName()
	user := models.User{
		ID:        uuid.NewString(),
		FirstName: first,
		LastName:  last,
		Email:     draft.Contact.Email,
		Phone:     draft.Contact.Phone,
		Role:      models.RoleRetailer,
	}
	ret := models.Retailer{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		BusinessName: draft.Contact.BusinessName,
		ContactEmail: draft.Contact.Email,
		ContactPhone: draft.Contact.Phone,
		StoreAddress: draft.Contact.StoreAddress,
	}
	if err := s.repo.CreateRetailer(user, ret); err != nil {
		return "", fmt.Errorf("create retailer: %w", err)
	}
	return ret.ID, nil
}

func buildItems(orderNumber string, lines []models.LineSelection, catalog models.Catalog) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(lines))
	for _, l := range lines {
		if l.Quantity < 1 {
			continue
		}
		p, ok := catalog[l.ProductID]
		if !ok {
			logrus.WithField("product_id", l.ProductID).Warn("skip line with unknown product")
			continue
		}
		items = append(items, models.OrderItem{
			OrderRefer: orderNumber,
			ProductID:  p.ID,
			Quantity:   l.Quantity,
			UnitPrice:  p.UnitPrice,
			TotalPrice: pricing.Round2(p.UnitPrice * float64(l.Quantity)),
		})
	}
	return items
}

func (s *Service) UpdateOrderStatus(number, raw string) (models.Order, error) {
	to, ok := models.NormalizeStatus(raw)
	if !ok {
		return models.Order{}, fmt.Errorf("%w: unknown status %q", ErrValidation, raw)
	}

	ord, err := s.repo.OrderPostgres.Get(number)
	if gorm.IsRecordNotFoundError(err) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("load order: %w", err)
	}

	if !ord.Status.CanTransition(to) {
		return models.Order{}, fmt.Errorf("%w: %s -> %s", ErrBadTransition, ord.Status, to)
	}

	if err := s.repo.UpdateStatus(number, to); err != nil {
		return models.Order{}, fmt.Errorf("update status: %w", err)
	}

	ord.Status = to
	s.repo.PutOrder(number, ord)
	return ord, nil
}

func (s *Service) GetCachedOrder(number string) (models.Order, error) {
	return s.repo.OrderCache.GetOrder(number)
}

func (s *Service) GetAllCachedOrders() ([]models.Order, error) {
	return s.repo.GetAllOrders()
}

func (s *Service) GetDbOrder(number string) (models.Order, error) {
	ord, err := s.repo.OrderPostgres.Get(number)
	if gorm.IsRecordNotFoundError(err) {
		return models.Order{}, ErrNotFound
	}
	return ord, err
}

func (s *Service) GetAllDbOrders() ([]models.Order, error) {
	return s.repo.OrderPostgres.GetAll()
}
