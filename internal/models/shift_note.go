package models

import "time"

// ShiftNote is a handover note between shifts. Only one note is active
// at a time; creating a new one deactivates the rest.
type ShiftNote struct {
	ID        string    `json:"id" gorm:"primaryKey;size:50"`
	CreatedBy string    `json:"createdBy" gorm:"not null" validate:"required"`
	Content   string    `json:"content" gorm:"type:text;not null" validate:"required"`
	IsActive  bool      `json:"isActive" gorm:"default:true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
