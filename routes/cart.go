package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ramizraj19/B2B-nexus/auth"
	cartcontroller "github.com/Ramizraj19/B2B-nexus/controllers/cart"
	"github.com/Ramizraj19/B2B-nexus/middleware"
	"github.com/Ramizraj19/B2B-nexus/models"
)

// SetupCartRoutes registers the buyer-only "/cart/*" endpoints.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB, tokens *auth.TokenService) {
	cart := r.Group("/cart")
	cart.Use(
		middleware.Authenticate(db, tokens),
		middleware.RequireRoles(models.RoleBuyer),
	)
	{
		cart.GET("", cartcontroller.GetCartHandler(db))
		cart.POST("/add", cartcontroller.AddItemHandler(db))
	}
}
