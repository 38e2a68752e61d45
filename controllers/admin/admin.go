package admincontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ramizraj19/B2B-nexus/models"
)

type Analytics struct {
	TotalUsers    int64   `json:"total_users"`
	TotalProducts int64   `json:"total_products"`
	TotalOrders   int64   `json:"total_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// GetAnalytics aggregates platform-wide counts and revenue.
func GetAnalytics(db *gorm.DB) (Analytics, error) {
	var a Analytics
	if err := db.Model(&models.User{}).Count(&a.TotalUsers).Error; err != nil {
		return Analytics{}, err
	}
	if err := db.Model(&models.Product{}).Where("is_active = ?", true).Count(&a.TotalProducts).Error; err != nil {
		return Analytics{}, err
	}
	if err := db.Model(&models.Order{}).Count(&a.TotalOrders).Error; err != nil {
		return Analytics{}, err
	}
	if err := db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&a.TotalRevenue).Error; err != nil {
		return Analytics{}, err
	}
	return a, nil
}

// GET /admin/users
func ListUsersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Order("created_at DESC").Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// GET /admin/analytics
func AnalyticsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		analytics, err := GetAnalytics(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute analytics"})
			return
		}
		c.JSON(http.StatusOK, analytics)
	}
}
