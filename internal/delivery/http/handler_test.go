package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	httpdelivery "orderdesk/internal/delivery/http"
	"orderdesk/internal/models"
	"orderdesk/internal/service"
)

type svcStub struct {
	submit       func(ctx context.Context, userID string, draft models.OrderDraft) (models.Order, error)
	updateStatus func(number, status string) (models.Order, error)

	getCached    func(number string) (models.Order, error)
	getAllCached func() ([]models.Order, error)
	getDb        func(number string) (models.Order, error)
	getAllDb     func() ([]models.Order, error)

	products  func(distributorID string) ([]models.Product, error)
	retailers func(distributorID string, partneredOnly bool) ([]models.Retailer, error)

	warm   func() error
	handle func(ctx context.Context, payload []byte) error
}

var _ service.Order = (*svcStub)(nil)

func (s *svcStub) SubmitDraft(ctx context.Context, userID string, draft models.OrderDraft) (models.Order, error) {
	if s.submit != nil {
		return s.submit(ctx, userID, draft)
	}
	return models.Order{}, fmt.Errorf("not implemented")
}
func (s *svcStub) UpdateOrderStatus(number, status string) (models.Order, error) {
	if s.updateStatus != nil {
		return s.updateStatus(number, status)
	}
	return models.Order{}, fmt.Errorf("not implemented")
}
func (s *svcStub) GetCachedOrder(number string) (models.Order, error) {
	if s.getCached != nil {
		return s.getCached(number)
	}
	return models.Order{}, service.ErrNotFound
}
func (s *svcStub) GetAllCachedOrders() ([]models.Order, error) {
	if s.getAllCached != nil {
		return s.getAllCached()
	}
	return nil, nil
}
func (s *svcStub) GetDbOrder(number string) (models.Order, error) {
	if s.getDb != nil {
		return s.getDb(number)
	}
	return models.Order{}, service.ErrNotFound
}
func (s *svcStub) GetAllDbOrders() ([]models.Order, error) {
	if s.getAllDb != nil {
		return s.getAllDb()
	}
	return nil, nil
}
func (s *svcStub) Products(distributorID string) ([]models.Product, error) {
	if s.products != nil {
		return s.products(distributorID)
	}
	return nil, nil
}
func (s *svcStub) Retailers(distributorID string, partneredOnly bool) ([]models.Retailer, error) {
	if s.retailers != nil {
		return s.retailers(distributorID, partneredOnly)
	}
	return nil, nil
}
func (s *svcStub) WarmCaches() error {
	if s.warm != nil {
		return s.warm()
	}
	return nil
}
func (s *svcStub) HandleMessage(ctx context.Context, payload []byte) error {
	if s.handle != nil {
		return s.handle(ctx, payload)
	}
	return nil
}

func draftBody(t *testing.T) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(models.OrderDraft{
		RetailerID: "ret-1",
		Lines:      []models.LineSelection{{ProductID: "prod-a", Quantity: 2}},
	})
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func Test_SubmitOrder_Created(t *testing.T) {
	s := &svcStub{
		submit: func(_ context.Context, userID string, draft models.OrderDraft) (models.Order, error) {
			require.Equal(t, "user-1", userID)
			require.Len(t, draft.Lines, 1)
			return models.Order{OrderNumber: "ORD-AB12CD", Status: models.StatusPending}, nil
		},
	}
	h := httpdelivery.NewHandler(s)
	r := h.InitRoutes()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", draftBody(t))
	req.Header.Set("X-User-ID", "user-1")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), "ORD-AB12CD")
}

func Test_SubmitOrder_NoSession_401(t *testing.T) {
	s := &svcStub{
		submit: func(context.Context, string, models.OrderDraft) (models.Order, error) {
			return models.Order{}, service.ErrNotAuthenticated
		},
	}
	h := httpdelivery.NewHandler(s)
	r := h.InitRoutes()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", draftBody(t))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func Test_SubmitOrder_EmptyDraft_422(t *testing.T) {
	s := &svcStub{
		submit: func(context.Context, string, models.OrderDraft) (models.Order, error) {
			return models.Order{}, fmt.Errorf("%w: draft needs at least one line and a retailer", service.ErrValidation)
		},
	}
	h := httpdelivery.NewHandler(s)
	r := h.InitRoutes()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", draftBody(t))
	req.Header.Set("X-User-ID", "user-1")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func Test_SubmitOrder_BadJSON_400(t *testing.T) {
	h := httpdelivery.NewHandler(&svcStub{})
	r := h.InitRoutes()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader([]byte("{nope")))
	req.Header.Set("X-User-ID", "user-1")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_SubmitOrder_PartialCommit_500_Distinct(t *testing.T) {
	s := &svcStub{
		submit: func(context.Context, string, models.OrderDraft) (models.Order, error) {
			return models.Order{}, &service.PartialCommitError{
				OrderNumber: "ORD-ZZ99XX",
				Cause:       fmt.Errorf("items insert refused"),
			}
		},
	}
	h := httpdelivery.NewHandler(s)
	r := h.InitRoutes()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", draftBody(t))
	req.Header.Set("X-User-ID", "user-1")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "ORD-ZZ99XX",
		"partial commit is surfaced distinctly from a generic failure")
}

func Test_GetAllOrders_RegularError_500(t *testing.T) {
	s := &svcStub{
		getAllCached: func() ([]models.Order, error) {
			return nil, fmt.Errorf("regular error")
		},
	}
	h := httpdelivery.NewHandler(s)
	r := h.InitRoutes()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "regular error")
}

func Test_GetOrderByNumber_NotFound_404(t *testing.T) {
	h := httpdelivery.NewHandler(&svcStub{})
	r := h.InitRoutes()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/order/ORD-MISSES", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func Test_UpdateOrderStatus_Conflict_409(t *testing.T) {
	s := &svcStub{
		updateStatus: func(number, status string) (models.Order, error) {
			return models.Order{}, fmt.Errorf("%w: completed -> pending", service.ErrBadTransition)
		},
	}
	h := httpdelivery.NewHandler(s)
	r := h.InitRoutes()

	body := bytes.NewReader([]byte(`{"status":"pending"}`))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/order/ORD-AB12CD/status", body)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
}

func Test_GetProducts_MissingDistributor_400(t *testing.T) {
	h := httpdelivery.NewHandler(&svcStub{})
	r := h.InitRoutes()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_GetRetailers_PartneredFlag(t *testing.T) {
	var gotPartnered bool
	var gotDistributor string
	s := &svcStub{
		retailers: func(distributorID string, partneredOnly bool) ([]models.Retailer, error) {
			gotDistributor = distributorID
			gotPartnered = partneredOnly
			return []models.Retailer{{ID: "ret-1", BusinessName: "Corner Pantry"}}, nil
		},
	}
	h := httpdelivery.NewHandler(s)
	r := h.InitRoutes()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/retailers?partnered=1&distributor_id=dist-1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, gotPartnered)
	require.Equal(t, "dist-1", gotDistributor)
	require.Contains(t, w.Body.String(), "Corner Pantry")
}

func TestHandler_NoRoute(t *testing.T) {
	h := httpdelivery.NewHandler(&svcStub{})
	r := h.InitRoutes()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_Run_Shutdown(t *testing.T) {
	s := &httpdelivery.Server{}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	go func() {
		err := s.Run(":0", handler)
		if err != nil && err != http.ErrServerClosed {
			t.Error(err)
		}
	}()

	time.Sleep(50 * time.Millisecond)

	require.NoError(t, s.Shutdown(context.Background()))
}
