package models

import "time"

type User struct {
	ID           string    `json:"id" gorm:"primaryKey;size:50"`
	Name         string    `json:"name" gorm:"not null" validate:"required"`
	Email        string    `json:"email" gorm:"unique;not null" validate:"required,email"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         string    `json:"role" gorm:"size:50;not null;check:role IN ('Admin','Front Desk','Sales','Operations')" validate:"required,oneof=Admin 'Front Desk' Sales Operations"`
	IsActive     bool      `json:"isActive" gorm:"default:true"`
	CreatedAt    time.Time `json:"createdAt"`
}

const (
	RoleAdmin      = "Admin"
	RoleFrontDesk  = "Front Desk"
	RoleSales      = "Sales"
	RoleOperations = "Operations"
)
