package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID          string          `json:"id" gorm:"primaryKey;size:50"`
	Name        string          `json:"name" gorm:"not null" validate:"required"`
	Mobile      string          `json:"mobile" gorm:"size:20;not null" validate:"required"`
	Email       *string         `json:"email"`
	Address     *string         `json:"address" gorm:"type:text"`
	TotalOrders int             `json:"totalOrders" gorm:"default:0"`
	TotalValue  decimal.Decimal `json:"totalValue" gorm:"type:decimal(12,2);default:0"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
