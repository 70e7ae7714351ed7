package http

import (
	"net/http"

	"orderdesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "orderdesk/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// userIDHeader carries the authenticated caller's identity. Authentication
// itself happens in an external collaborator; an empty header means no
// active session.
const userIDHeader = "X-User-ID"

type Handler struct {
	svc service.Order
}

func NewHandler(s service.Order) *Handler {
	return &Handler{svc: s}
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.Default()

	api := router.Group("/api")
	{
		api.POST("/orders", h.SubmitOrder)
		api.GET("/orders", h.GetAllOrders)
		api.GET("/order/:number", h.GetOrderByNumber)
		api.GET("/order/db/:number", h.GetDbOrderByNumber)
		api.PATCH("/order/:number/status", h.UpdateOrderStatus)

		api.GET("/products", h.GetProducts)
		api.GET("/retailers", h.GetRetailers)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
