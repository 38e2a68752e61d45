package productcontroller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ramizraj19/B2B-nexus/apperrors"
	"github.com/Ramizraj19/B2B-nexus/middleware"
	"github.com/Ramizraj19/B2B-nexus/models"
)

// DeactivateProduct soft-deletes a product. Snapshots already captured in
// carts and orders keep their frozen values.
func DeactivateProduct(db *gorm.DB, user models.User, productID string) error {
	var product models.Product
	if err := db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("product not found: %w", apperrors.ErrNotFound)
		}
		return err
	}

	if err := middleware.AuthorizeOwnership(user, product.SellerID); err != nil {
		return err
	}

	product.IsActive = false
	return db.Save(&product).Error
}

// DELETE /products/:id
func DeleteProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUnauthenticated.Error()})
			return
		}

		if err := DeactivateProduct(db, user, c.Param("id")); err != nil {
			c.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
