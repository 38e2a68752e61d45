package ordercontroller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ramizraj19/B2B-nexus/apperrors"
	"github.com/Ramizraj19/B2B-nexus/middleware"
	"github.com/Ramizraj19/B2B-nexus/models"
)

// -------- Request Structs --------

// OrderItemInput is a caller-supplied cart snapshot line: pricing is taken as
// given to preserve at-order-time prices, while stock is re-checked against
// the catalog inside the order transaction.
type OrderItemInput struct {
	ProductID   string  `json:"product_id" binding:"required"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity" binding:"required,min=1"`
	SellerID    string  `json:"seller_id" binding:"required"`
}

type PlaceOrderRequest struct {
	Items           []OrderItemInput `json:"items" binding:"required,min=1,dive"`
	ShippingAddress string           `json:"shipping_address" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Map string to OrderStatus
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusConfirmed):
		return models.OrderStatusConfirmed, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", fmt.Errorf("invalid order status %q: %w", status, apperrors.ErrValidation)
	}
}

// -------- Core Logic --------

// PlaceOrder converts the supplied snapshot lines into immutable pending
// orders, one per seller (lines are grouped by seller in first-seen order).
// Stock is checked and decremented per line, and the buyer's cart is cleared,
// all inside a single transaction: any failure rolls back every order.
func PlaceOrder(db *gorm.DB, buyer models.User, req PlaceOrderRequest) ([]models.Order, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item: %w", apperrors.ErrValidation)
	}
	for _, line := range req.Items {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("quantity must be at least 1: %w", apperrors.ErrValidation)
		}
		if line.Price < 0 {
			return nil, fmt.Errorf("price must be non-negative: %w", apperrors.ErrValidation)
		}
	}

	// Group lines per seller, preserving first-seen seller order.
	sellerIDs := make([]string, 0, len(req.Items))
	grouped := make(map[string][]OrderItemInput)
	for _, line := range req.Items {
		if _, seen := grouped[line.SellerID]; !seen {
			sellerIDs = append(sellerIDs, line.SellerID)
		}
		grouped[line.SellerID] = append(grouped[line.SellerID], line)
	}

	var orders []models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, sellerID := range sellerIDs {
			lines := grouped[sellerID]

			// A seller that no longer resolves yields an empty display name,
			// not a failed order.
			var sellerName string
			var seller models.User
			if err := tx.First(&seller, "id = ?", sellerID).Error; err == nil {
				sellerName = seller.FullName
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			var total float64
			var items []models.OrderItem
			for _, line := range lines {
				if err := decrementStock(tx, line.ProductID, line.Quantity); err != nil {
					return err
				}
				total += line.Price * float64(line.Quantity)
				items = append(items, models.OrderItem{
					ProductID:   line.ProductID,
					ProductName: line.ProductName,
					Price:       line.Price,
					Quantity:    line.Quantity,
					SellerID:    sellerID,
				})
			}

			order := models.Order{
				ID:              uuid.NewString(),
				BuyerID:         buyer.ID,
				BuyerName:       buyer.FullName,
				SellerID:        sellerID,
				SellerName:      sellerName,
				Items:           items,
				TotalAmount:     total,
				Status:          models.OrderStatusPending,
				ShippingAddress: req.ShippingAddress,
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			orders = append(orders, order)
		}

		return clearCart(tx, buyer.ID)
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// decrementStock atomically takes quantity units off a product's stock,
// failing when the product is missing or the remaining stock is too low.
func decrementStock(tx *gorm.DB, productID string, quantity int) error {
	res := tx.Model(&models.Product{}).
		Where("id = ? AND stock_quantity >= ?", productID, quantity).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var product models.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product %s not found: %w", productID, apperrors.ErrNotFound)
			}
			return err
		}
		return fmt.Errorf("%s: %w", product.Name, apperrors.ErrInsufficientStock)
	}
	return nil
}

// restoreStock returns quantity units to a product's stock. Missing products
// are skipped: their stock no longer exists to restore.
func restoreStock(tx *gorm.DB, productID string, quantity int) error {
	return tx.Model(&models.Product{}).
		Where("id = ?", productID).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity + ?", quantity)).Error
}

// clearCart empties the buyer's cart lines and zeroes the cached total.
func clearCart(tx *gorm.DB, buyerID string) error {
	var cart models.Cart
	err := tx.Where("user_id = ?", buyerID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		return err
	}
	updates := map[string]interface{}{"total_amount": 0.0, "updated_at": time.Now()}
	return tx.Model(&models.Cart{}).Where("id = ?", cart.ID).Updates(updates).Error
}

// ListOrders returns orders scoped by role: buyers see their purchases,
// sellers their sales, admins everything.
func ListOrders(db *gorm.DB, user models.User) ([]models.Order, error) {
	query := db.Preload("Items").Order("created_at DESC")
	switch user.Role {
	case models.RoleBuyer:
		query = query.Where("buyer_id = ?", user.ID)
	case models.RoleSeller:
		query = query.Where("seller_id = ?", user.ID)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus moves an order one step along the forward-only state
// machine. Admins may act on any order, sellers only on their own.
// Cancellation restores the decremented stock in the same transaction.
func UpdateOrderStatus(db *gorm.DB, user models.User, orderID, status string) (models.Order, error) {
	newStatus, err := mapOrderStatus(status)
	if err != nil {
		return models.Order{}, err
	}

	var order models.Order
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("order not found: %w", apperrors.ErrNotFound)
			}
			return err
		}

		if err := middleware.AuthorizeOwnership(user, order.SellerID); err != nil {
			return err
		}

		if !order.Status.CanTransitionTo(newStatus) {
			return fmt.Errorf("cannot transition order from %s to %s: %w",
				order.Status, newStatus, apperrors.ErrValidation)
		}

		if newStatus == models.OrderStatusCancelled {
			for _, item := range order.Items {
				if err := restoreStock(tx, item.ProductID, item.Quantity); err != nil {
					return err
				}
			}
		}

		if err := tx.Model(&models.Order{}).Where("id = ?", orderID).
			Update("status", newStatus).Error; err != nil {
			return err
		}
		order.Status = newStatus
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// -------- Handlers --------

// POST /orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		buyer, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUnauthenticated.Error()})
			return
		}

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		orders, err := PlaceOrder(db, buyer, req)
		if err != nil {
			c.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, orders)
	}
}

// GET /orders
func ListOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUnauthenticated.Error()})
			return
		}

		orders, err := ListOrders(db, user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUnauthenticated.Error()})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := UpdateOrderStatus(db, user, c.Param("orderID"), req.Status)
		if err != nil {
			c.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
