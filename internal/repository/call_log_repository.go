package repository

import (
	"errors"

	"gorm.io/gorm"

	"crm_backend/internal/apperrors"
	"crm_backend/internal/models"
)

type CallLogRepository interface {
	Create(callLog *models.CallLog) error
	GetByID(id string) (*models.CallLog, error)
	GetAll() ([]models.CallLog, error)
	UpdateFields(id string, cols map[string]interface{}) (*models.CallLog, error)
	Delete(id string) error
}

type callLogRepository struct {
	db *gorm.DB
}

func NewCallLogRepository(db *gorm.DB) CallLogRepository {
	return &callLogRepository{db: db}
}

func (r *callLogRepository) Create(callLog *models.CallLog) error {
	return r.db.Create(callLog).Error
}

func (r *callLogRepository) GetByID(id string) (*models.CallLog, error) {
	var callLog models.CallLog
	err := r.db.First(&callLog, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Entity: "Call log"}
		}
		return nil, err
	}
	return &callLog, nil
}

func (r *callLogRepository) GetAll() ([]models.CallLog, error) {
	var callLogs []models.CallLog
	err := r.db.Order("call_date DESC").Find(&callLogs).Error
	return callLogs, err
}

func (r *callLogRepository) UpdateFields(id string, cols map[string]interface{}) (*models.CallLog, error) {
	res := r.db.Model(&models.CallLog{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, &apperrors.NotFoundError{Entity: "Call log"}
	}
	return r.GetByID(id)
}

func (r *callLogRepository) Delete(id string) error {
	res := r.db.Delete(&models.CallLog{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &apperrors.NotFoundError{Entity: "Call log"}
	}
	return nil
}
