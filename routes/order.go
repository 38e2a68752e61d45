package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ramizraj19/B2B-nexus/auth"
	ordercontroller "github.com/Ramizraj19/B2B-nexus/controllers/order"
	"github.com/Ramizraj19/B2B-nexus/middleware"
	"github.com/Ramizraj19/B2B-nexus/models"
)

// SetupOrderRoutes registers all "/orders/*" endpoints.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, tokens *auth.TokenService) {
	orders := r.Group("/orders")
	orders.Use(middleware.Authenticate(db, tokens))
	{
		// Create a new order (buyers only)
		orders.POST("", middleware.RequireRoles(models.RoleBuyer),
			ordercontroller.PlaceOrderHandler(db))

		// Role-scoped order listing
		orders.GET("", ordercontroller.ListOrdersHandler(db))

		// Move an order along the status state machine (admin or owning seller)
		orders.PUT("/:orderID/status",
			middleware.RequireRoles(models.RoleAdmin, models.RoleSeller),
			ordercontroller.UpdateOrderStatusHandler(db))
	}
}
