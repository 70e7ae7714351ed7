package http

import (
	"errors"
	"net/http"
	"strings"

	"orderdesk/internal/models"
	"orderdesk/internal/repository/cache"
	"orderdesk/internal/service"

	"github.com/gin-gonic/gin"
)

type getAllOrdersResponse struct {
	Data []models.Order `json:"data"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// SubmitOrder
// @Summary SubmitOrder
// @Description Commits an order draft: resolves the retailer, prices the lines and persists the order with its items
// @ID submit-order
// @Accept json
// @Produce json
// @Param X-User-ID header string true "authenticated user id"
// @Param draft body models.OrderDraft true "order draft"
// @Success 201 {object} models.Order
// @Failure 400,401,422 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders [post]
func (h *Handler) SubmitOrder(c *gin.Context) {
	userID := strings.TrimSpace(c.GetHeader(userIDHeader))

	var draft models.OrderDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid draft payload")
		return
	}

	ord, err := h.svc.SubmitDraft(c.Request.Context(), userID, draft)
	if err != nil {
		orderCommitFailures.Inc()
		var pce *service.PartialCommitError
		switch {
		case errors.Is(err, service.ErrNotAuthenticated):
			newErrorResponse(c, http.StatusUnauthorized, "authentication required")
		case errors.Is(err, service.ErrProfileNotFound),
			errors.Is(err, service.ErrRetailerNotFound),
			errors.Is(err, service.ErrValidation):
			newErrorResponse(c, http.StatusUnprocessableEntity, err.Error())
		case errors.As(err, &pce):
			newErrorResponse(c, http.StatusInternalServerError, pce.Error())
		default:
			newErrorResponse(c, http.StatusInternalServerError, "failed to create order, try again")
		}
		return
	}

	ordersCreated.Inc()
	c.JSON(http.StatusCreated, ord)
}

// GetOrderByNumber
// @Summary GetOrderByNumber
// @Description Allows to get a specific order from the app's cache via its number
// @ID get-order-by-number
// @Accept json
// @Produce json
// @Param number path string true "order number"
// @Success 200 {object} models.Order
// @Failure 400,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/order/{number} [get]
func (h *Handler) GetOrderByNumber(c *gin.Context) {
	number := strings.TrimSpace(c.Param("number"))
	if number == "" {
		newErrorResponse(c, http.StatusBadRequest, "invalid order number")
		return
	}

	order, err := h.svc.GetCachedOrder(number)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "not found")
			return
		}
		var eh cache.ErrorHandler
		if errors.As(err, &eh) {
			newErrorResponse(c, eh.StatusCode, err.Error())
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, order)
}

// GetDbOrderByNumber
// @Summary GetDbOrderByNumber
// @Description Allows to get a specific order from the postgres database via its number
// @ID get-db-order-by-number
// @Accept json
// @Produce json
// @Param number path string true "order number"
// @Success 200 {object} models.Order
// @Failure 400,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/order/db/{number} [get]
func (h *Handler) GetDbOrderByNumber(c *gin.Context) {
	number := strings.TrimSpace(c.Param("number"))
	if number == "" {
		newErrorResponse(c, http.StatusBadRequest, "missing order number")
		return
	}

	order, err := h.svc.GetDbOrder(number)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "order not found")
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, order)
}

// GetAllOrders
// @Summary GetAllOrders
// @Description Allows to get all committed orders from the app's cache
// @ID get-all-orders
// @Accept json
// @Produce json
// @Success 200 {object} getAllOrdersResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders [get]
func (h *Handler) GetAllOrders(c *gin.Context) {
	orders, err := h.svc.GetAllCachedOrders()
	if err != nil {
		var eh cache.ErrorHandler
		if errors.As(err, &eh) {
			newErrorResponse(c, eh.StatusCode, err.Error())
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, getAllOrdersResponse{
		Data: orders,
	})
}

// UpdateOrderStatus
// @Summary UpdateOrderStatus
// @Description Moves an order along the canonical pending/processing/completed/cancelled flow
// @ID update-order-status
// @Accept json
// @Produce json
// @Param number path string true "order number"
// @Param status body updateStatusRequest true "target status"
// @Success 200 {object} models.Order
// @Failure 400,404,409,422 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/order/{number}/status [patch]
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	number := strings.TrimSpace(c.Param("number"))
	if number == "" {
		newErrorResponse(c, http.StatusBadRequest, "missing order number")
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid status payload")
		return
	}

	ord, err := h.svc.UpdateOrderStatus(number, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			newErrorResponse(c, http.StatusNotFound, "order not found")
		case errors.Is(err, service.ErrBadTransition):
			newErrorResponse(c, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrValidation):
			newErrorResponse(c, http.StatusUnprocessableEntity, err.Error())
		default:
			newErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, ord)
}
