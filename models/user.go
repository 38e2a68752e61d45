package models

import "time"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleSeller Role = "seller"
	RoleBuyer  Role = "buyer"
)

type User struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Username    string    `gorm:"uniqueIndex;not null" json:"username"`
	FullName    string    `json:"full_name"`
	Password    string    `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	Role        Role      `gorm:"type:VARCHAR(10);not null" json:"role"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CompanyName string    `json:"company_name,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
