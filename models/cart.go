package models

import "time"

type Cart struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	UserID      string     `gorm:"uniqueIndex;not null" json:"user_id"` // enforces ONE cart per buyer
	Items       []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount float64    `json:"total_amount"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CartItem snapshots product name, price and seller at add-time so later
// catalog changes do not affect lines already in the cart.
type CartItem struct {
	ID          uint    `gorm:"primaryKey" json:"-"`
	CartID      string  `gorm:"index" json:"-"`
	ProductID   string  `gorm:"not null" json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	SellerID    string  `json:"seller_id"`
}
