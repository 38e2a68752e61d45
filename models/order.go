package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // order placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // confirmed by seller
	OrderStatusShipped   OrderStatus = "shipped"   // out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // buyer received the items
	OrderStatusCancelled OrderStatus = "cancelled" // cancelled before shipping
)

// CanTransitionTo reports whether moving to next is a legal forward-only step.
// Delivered and cancelled are terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return next == OrderStatusConfirmed || next == OrderStatusCancelled
	case OrderStatusConfirmed:
		return next == OrderStatusShipped || next == OrderStatusCancelled
	case OrderStatusShipped:
		return next == OrderStatusDelivered
	default:
		return false
	}
}

type Order struct {
	ID              string      `gorm:"primaryKey" json:"id"`
	BuyerID         string      `gorm:"index;not null" json:"buyer_id"`
	BuyerName       string      `json:"buyer_name"`
	SellerID        string      `gorm:"index;not null" json:"seller_id"`
	SellerName      string      `json:"seller_name"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount     float64     `json:"total_amount"`
	Status          OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	ShippingAddress string      `json:"shipping_address"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"-"`
	OrderID     string  `gorm:"index" json:"-"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	SellerID    string  `json:"seller_id"`
}
