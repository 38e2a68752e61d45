package productcontroller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ramizraj19/B2B-nexus/apperrors"
	"github.com/Ramizraj19/B2B-nexus/middleware"
	"github.com/Ramizraj19/B2B-nexus/models"
)

type CreateProductRequest struct {
	Name           string   `json:"name" binding:"required"`
	AlternateNames []string `json:"alternate_names"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	StockQuantity  int      `json:"stock_quantity"`
	Category       string   `json:"category"`
	Tags           []string `json:"tags"`
	Images         []string `json:"images"`
}

// CreateProduct creates an active product owned by the calling seller.
func CreateProduct(db *gorm.DB, seller models.User, req CreateProductRequest) (models.Product, error) {
	if req.Price < 0 {
		return models.Product{}, fmt.Errorf("price must be non-negative: %w", apperrors.ErrValidation)
	}
	if req.StockQuantity < 0 {
		return models.Product{}, fmt.Errorf("stock_quantity must be non-negative: %w", apperrors.ErrValidation)
	}

	product := models.Product{
		ID:             uuid.NewString(),
		Name:           req.Name,
		AlternateNames: req.AlternateNames,
		Description:    req.Description,
		Price:          req.Price,
		StockQuantity:  req.StockQuantity,
		Category:       req.Category,
		Tags:           req.Tags,
		Images:         req.Images,
		SellerID:       seller.ID,
		SellerName:     seller.FullName,
		IsActive:       true,
	}
	if err := db.Create(&product).Error; err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// POST /products
func CreateProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUnauthenticated.Error()})
			return
		}

		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := CreateProduct(db, seller, req)
		if err != nil {
			c.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
