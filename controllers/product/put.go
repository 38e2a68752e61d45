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

// UpdateProductRequest carries a partial update; absent fields keep their value.
type UpdateProductRequest struct {
	Name           *string   `json:"name"`
	AlternateNames *[]string `json:"alternate_names"`
	Description    *string   `json:"description"`
	Price          *float64  `json:"price"`
	StockQuantity  *int      `json:"stock_quantity"`
	Category       *string   `json:"category"`
	Tags           *[]string `json:"tags"`
	Images         *[]string `json:"images"`
}

// UpdateProduct applies the present fields to a product owned by the caller
// (or any product for admins) and refreshes its last-modified timestamp.
func UpdateProduct(db *gorm.DB, user models.User, productID string, req UpdateProductRequest) (models.Product, error) {
	var product models.Product
	if err := db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, fmt.Errorf("product not found: %w", apperrors.ErrNotFound)
		}
		return models.Product{}, err
	}

	if err := middleware.AuthorizeOwnership(user, product.SellerID); err != nil {
		return models.Product{}, err
	}

	if req.Price != nil && *req.Price < 0 {
		return models.Product{}, fmt.Errorf("price must be non-negative: %w", apperrors.ErrValidation)
	}
	if req.StockQuantity != nil && *req.StockQuantity < 0 {
		return models.Product{}, fmt.Errorf("stock_quantity must be non-negative: %w", apperrors.ErrValidation)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.AlternateNames != nil {
		product.AlternateNames = *req.AlternateNames
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Tags != nil {
		product.Tags = *req.Tags
	}
	if req.Images != nil {
		product.Images = *req.Images
	}

	if err := db.Save(&product).Error; err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// PUT /products/:id
func UpdateProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUnauthenticated.Error()})
			return
		}

		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := UpdateProduct(db, user, c.Param("id"), req)
		if err != nil {
			c.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
