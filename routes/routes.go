package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ramizraj19/B2B-nexus/auth"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, tokens *auth.TokenService) {
	SetupAuthRoutes(r, db, tokens)
	SetupProductRoutes(r, db, tokens)
	SetupCartRoutes(r, db, tokens)
	SetupOrderRoutes(r, db, tokens)
	SetupAdminRoutes(r, db, tokens)
}
