package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ramizraj19/B2B-nexus/auth"
	"github.com/Ramizraj19/B2B-nexus/middleware"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, tokens *auth.TokenService) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.RegisterHandler(db, tokens))
		authGroup.POST("/login", auth.LoginHandler(db, tokens))

		authGroup.GET("/me", middleware.Authenticate(db, tokens), func(c *gin.Context) {
			user, _ := middleware.CurrentUser(c)
			c.JSON(http.StatusOK, user)
		})
	}
}
