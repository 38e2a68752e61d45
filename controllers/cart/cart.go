package cartcontroller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ramizraj19/B2B-nexus/apperrors"
	"github.com/Ramizraj19/B2B-nexus/middleware"
	"github.com/Ramizraj19/B2B-nexus/models"
)

type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// GetOrCreateCart returns the buyer's cart, lazily creating an empty one.
func GetOrCreateCart(db *gorm.DB, buyerID string) (models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items").Where("user_id = ?", buyerID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{ID: uuid.NewString(), UserID: buyerID}
		if err := db.Create(&cart).Error; err != nil {
			return models.Cart{}, err
		}
		return cart, nil
	}
	return cart, err
}

// AddItem puts quantity units of a product into the buyer's cart. An existing
// line for the same product has its quantity incremented; otherwise a new line
// is appended with a fresh name/price/seller snapshot. The cart total is
// recomputed after the mutation.
//
// The stock check here is advisory only: availability is re-checked (and
// decremented) when the order is created.
func AddItem(db *gorm.DB, buyerID string, req AddItemRequest) (models.Cart, error) {
	if req.Quantity < 1 {
		return models.Cart{}, fmt.Errorf("quantity must be at least 1: %w", apperrors.ErrValidation)
	}

	var product models.Product
	err := db.Where("id = ? AND is_active = ?", req.ProductID, true).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Cart{}, fmt.Errorf("product not found: %w", apperrors.ErrNotFound)
		}
		return models.Cart{}, err
	}
	if product.StockQuantity < req.Quantity {
		return models.Cart{}, fmt.Errorf("%s: %w", product.Name, apperrors.ErrInsufficientStock)
	}

	cart, err := GetOrCreateCart(db, buyerID)
	if err != nil {
		return models.Cart{}, err
	}

	var line models.CartItem
	err = db.Where("cart_id = ? AND product_id = ?", cart.ID, req.ProductID).First(&line).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		line = models.CartItem{
			CartID:      cart.ID,
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.Price,
			Quantity:    req.Quantity,
			SellerID:    product.SellerID,
		}
		if err := db.Create(&line).Error; err != nil {
			return models.Cart{}, err
		}
	case err != nil:
		return models.Cart{}, err
	default:
		line.Quantity += req.Quantity
		if err := db.Save(&line).Error; err != nil {
			return models.Cart{}, err
		}
	}

	return refreshCartTotal(db, cart.ID)
}

// refreshCartTotal recomputes the cached total from the cart's lines.
func refreshCartTotal(db *gorm.DB, cartID string) (models.Cart, error) {
	var items []models.CartItem
	if err := db.Where("cart_id = ?", cartID).Find(&items).Error; err != nil {
		return models.Cart{}, err
	}

	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}

	updates := map[string]interface{}{"total_amount": total, "updated_at": time.Now()}
	if err := db.Model(&models.Cart{}).Where("id = ?", cartID).Updates(updates).Error; err != nil {
		return models.Cart{}, err
	}

	var cart models.Cart
	if err := db.Preload("Items").First(&cart, "id = ?", cartID).Error; err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

// -------- Handlers --------

// GET /cart
func GetCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		buyer, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUnauthenticated.Error()})
			return
		}

		cart, err := GetOrCreateCart(db, buyer.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// POST /cart/add
func AddItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		buyer, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUnauthenticated.Error()})
			return
		}

		var req AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := AddItem(db, buyer.ID, req)
		if err != nil {
			c.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}
