package repository

import (
	"gorm.io/gorm"

	"crm_backend/internal/models"
)

// RemarkLogRepository is append-only: remarks are an audit trail, so
// there is deliberately no update or delete.
type RemarkLogRepository interface {
	Create(remark *models.RemarkLog) error
	GetAll() ([]models.RemarkLog, error)
	GetByEntity(entityType, entityID string) ([]models.RemarkLog, error)
}

type remarkLogRepository struct {
	db *gorm.DB
}

func NewRemarkLogRepository(db *gorm.DB) RemarkLogRepository {
	return &remarkLogRepository{db: db}
}

func (r *remarkLogRepository) Create(remark *models.RemarkLog) error {
	return r.db.Create(remark).Error
}

func (r *remarkLogRepository) GetAll() ([]models.RemarkLog, error) {
	var remarks []models.RemarkLog
	err := r.db.Order("created_at DESC").Find(&remarks).Error
	return remarks, err
}

func (r *remarkLogRepository) GetByEntity(entityType, entityID string) ([]models.RemarkLog, error) {
	var remarks []models.RemarkLog
	err := r.db.Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at DESC").Find(&remarks).Error
	return remarks, err
}
