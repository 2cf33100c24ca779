package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID                string          `json:"id" gorm:"primaryKey;size:50"`
	Name              string          `json:"name" gorm:"not null" validate:"required"`
	Category          string          `json:"category" gorm:"size:100;not null;check:category IN ('Roofing Sheet','Tile','Accessories')" validate:"required,oneof='Roofing Sheet' Tile Accessories"`
	Unit              string          `json:"unit" gorm:"size:50;not null" validate:"required"`
	Price             decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	AvailableQuantity int             `json:"availableQuantity" gorm:"not null;default:0" validate:"min=0"`
	ThresholdQuantity int             `json:"thresholdQuantity" gorm:"not null" validate:"min=0"`
	Status            string          `json:"status" gorm:"size:50;not null;check:status IN ('Active','Alert','Out of Stock')"`
	IsActive          bool            `json:"isActive" gorm:"default:true"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

const (
	CategoryRoofingSheet = "Roofing Sheet"
	CategoryTile         = "Tile"
	CategoryAccessories  = "Accessories"

	ProductActive     = "Active"
	ProductAlert      = "Alert"
	ProductOutOfStock = "Out of Stock"
)

// ComputeStatus derives the stock status from quantity and threshold.
// Status is never independent truth; every quantity or threshold
// mutation must write the result of this function back.
func ComputeStatus(availableQuantity, thresholdQuantity int) string {
	switch {
	case availableQuantity == 0:
		return ProductOutOfStock
	case availableQuantity <= thresholdQuantity:
		return ProductAlert
	default:
		return ProductActive
	}
}

func (p *Product) RecomputeStatus() {
	p.Status = ComputeStatus(p.AvailableQuantity, p.ThresholdQuantity)
}
