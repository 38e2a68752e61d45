package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ramizraj19/B2B-nexus/auth"
	admincontroller "github.com/Ramizraj19/B2B-nexus/controllers/admin"
	"github.com/Ramizraj19/B2B-nexus/middleware"
	"github.com/Ramizraj19/B2B-nexus/models"
)

// SetupAdminRoutes registers the admin-only "/admin/*" endpoints.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, tokens *auth.TokenService) {
	admin := r.Group("/admin")
	admin.Use(
		middleware.Authenticate(db, tokens),
		middleware.RequireRoles(models.RoleAdmin),
	)
	{
		admin.GET("/users", admincontroller.ListUsersHandler(db))
		admin.GET("/analytics", admincontroller.AnalyticsHandler(db))
	}
}
