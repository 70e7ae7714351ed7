package http

import (
	"net/http"
	"strings"

	"orderdesk/internal/models"

	"github.com/gin-gonic/gin"
)

type getProductsResponse struct {
	Data []models.Product `json:"data"`
}

type getRetailersResponse struct {
	Data []models.Retailer `json:"data"`
}

// GetProducts
// @Summary GetProducts
// @Description Lists the catalog visible to a distributor
// @ID get-products
// @Accept json
// @Produce json
// @Param distributor_id query string true "distributor id"
// @Success 200 {object} getProductsResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/products [get]
func (h *Handler) GetProducts(c *gin.Context) {
	distributorID := strings.TrimSpace(c.Query("distributor_id"))
	if distributorID == "" {
		newErrorResponse(c, http.StatusBadRequest, "missing distributor_id")
		return
	}

	products, err := h.svc.Products(distributorID)
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, getProductsResponse{Data: products})
}

// GetRetailers
// @Summary GetRetailers
// @Description Lists retailers, optionally only those with an accepted partnership
// @ID get-retailers
// @Accept json
// @Produce json
// @Param distributor_id query string false "distributor id, required when partnered=1"
// @Param partnered query string false "filter by accepted partnership"
// @Success 200 {object} getRetailersResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/retailers [get]
func (h *Handler) GetRetailers(c *gin.Context) {
	distributorID := strings.TrimSpace(c.Query("distributor_id"))
	partnered := c.Query("partnered") == "1"
	if partnered && distributorID == "" {
		newErrorResponse(c, http.StatusBadRequest, "missing distributor_id")
		return
	}

	retailers, err := h.svc.Retailers(distributorID, partnered)
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, getRetailersResponse{Data: retailers})
}
