package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ramizraj19/B2B-nexus/models"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type ProductFilter struct {
	Category string
	Search   string
	MinPrice *float64
	MaxPrice *float64
	Skip     int
	Limit    int
}

// ListProducts returns active products matching all supplied filters.
// Search is a case-insensitive substring match across name, description and tags.
func ListProducts(db *gorm.DB, f ProductFilter) ([]models.Product, error) {
	query := db.Model(&models.Product{}).Where("is_active = ?", true)

	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(tags) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if f.MinPrice != nil {
		query = query.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		query = query.Where("price <= ?", *f.MaxPrice)
	}

	if f.Skip > 0 {
		query = query.Offset(f.Skip)
	}
	if f.Limit > 0 {
		query = query.Limit(f.Limit)
	}

	var products []models.Product
	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GET /products
func ListProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := ProductFilter{
			Category: c.Query("category"),
			Search:   c.Query("search"),
			Skip:     0,
			Limit:    defaultListLimit,
		}

		if v := c.Query("min_price"); v != "" {
			mp, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			filter.MinPrice = &mp
		}
		if v := c.Query("max_price"); v != "" {
			mp, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			filter.MaxPrice = &mp
		}
		if v := c.Query("skip"); v != "" {
			skip, err := strconv.Atoi(v)
			if err != nil || skip < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skip"})
				return
			}
			filter.Skip = skip
		}
		if v := c.Query("limit"); v != "" {
			limit, err := strconv.Atoi(v)
			if err != nil || limit < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
				return
			}
			if limit > maxListLimit {
				limit = maxListLimit
			}
			filter.Limit = limit
		}

		products, err := ListProducts(db, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
