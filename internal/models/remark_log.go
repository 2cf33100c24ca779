package models

import "time"

// RemarkLog is an append-only audit trail keyed by (entityType, entityId).
// Entries are never updated or deleted.
type RemarkLog struct {
	ID         string    `json:"id" gorm:"primaryKey;size:50"`
	EntityType string    `json:"entityType" gorm:"size:50;not null;index:idx_remark_logs_entity;check:entity_type IN ('callLog','lead','order','product','customer','user')" validate:"required,oneof=callLog lead order product customer user"`
	EntityID   string    `json:"entityId" gorm:"size:50;not null;index:idx_remark_logs_entity" validate:"required"`
	Remark     string    `json:"remark" gorm:"type:text;not null" validate:"required"`
	CreatedBy  string    `json:"createdBy" gorm:"not null" validate:"required"`
	CreatedAt  time.Time `json:"createdAt"`
}
