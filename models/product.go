package models

import "time"

type Product struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	AlternateNames []string  `gorm:"serializer:json;type:text" json:"alternate_names"`
	Description    string    `json:"description"`
	Price          float64   `gorm:"not null" json:"price"`
	StockQuantity  int       `gorm:"not null" json:"stock_quantity"`
	Category       string    `gorm:"index" json:"category"`
	Tags           []string  `gorm:"serializer:json;type:text" json:"tags"`
	Images         []string  `gorm:"serializer:json;type:text" json:"images"`
	SellerID       string    `gorm:"index;not null" json:"seller_id"`
	SellerName     string    `json:"seller_name"`
	IsActive       bool      `gorm:"default:true" json:"is_active"` // soft delete
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
