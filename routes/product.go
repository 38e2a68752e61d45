package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ramizraj19/B2B-nexus/auth"
	productcontroller "github.com/Ramizraj19/B2B-nexus/controllers/product"
	"github.com/Ramizraj19/B2B-nexus/middleware"
	"github.com/Ramizraj19/B2B-nexus/models"
)

// SetupProductRoutes registers all "/products/*" endpoints. Reads are public,
// mutations require a seller or admin (ownership is checked in the handlers).
func SetupProductRoutes(r *gin.Engine, db *gorm.DB, tokens *auth.TokenService) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.ListProductsHandler(db))
		products.GET("/:id", productcontroller.GetProductHandler(db))
	}

	protected := products.Group("")
	protected.Use(
		middleware.Authenticate(db, tokens),
		middleware.RequireRoles(models.RoleSeller, models.RoleAdmin),
	)
	{
		protected.POST("", productcontroller.CreateProductHandler(db))
		protected.PUT("/:id", productcontroller.UpdateProductHandler(db))
		protected.DELETE("/:id", productcontroller.DeleteProductHandler(db))
	}
}
