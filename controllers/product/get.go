package productcontroller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ramizraj19/B2B-nexus/apperrors"
	"github.com/Ramizraj19/B2B-nexus/models"
)

// GetProduct returns a single active product.
func GetProduct(db *gorm.DB, productID string) (models.Product, error) {
	var product models.Product
	err := db.Where("id = ? AND is_active = ?", productID, true).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, fmt.Errorf("product not found: %w", apperrors.ErrNotFound)
		}
		return models.Product{}, err
	}
	return product, nil
}

// GET /products/:id
func GetProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := GetProduct(db, c.Param("id"))
		if err != nil {
			c.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
