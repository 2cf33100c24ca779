package repository

import (
	"errors"

	"gorm.io/gorm"

	"crm_backend/internal/apperrors"
	"crm_backend/internal/models"
)

type LeadRepository interface {
	Create(lead *models.Lead) error
	GetByID(id string) (*models.Lead, error)
	GetAll() ([]models.Lead, error)
	UpdateFields(id string, cols map[string]interface{}) (*models.Lead, error)
	Delete(id string) error
}

type leadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) Create(lead *models.Lead) error {
	return r.db.Create(lead).Error
}

func (r *leadRepository) GetByID(id string) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.First(&lead, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Entity: "Lead"}
		}
		return nil, err
	}
	return &lead, nil
}

func (r *leadRepository) GetAll() ([]models.Lead, error) {
	var leads []models.Lead
	err := r.db.Order("created_date DESC").Find(&leads).Error
	return leads, err
}

func (r *leadRepository) UpdateFields(id string, cols map[string]interface{}) (*models.Lead, error) {
	res := r.db.Model(&models.Lead{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, &apperrors.NotFoundError{Entity: "Lead"}
	}
	return r.GetByID(id)
}

func (r *leadRepository) Delete(id string) error {
	res := r.db.Delete(&models.Lead{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &apperrors.NotFoundError{Entity: "Lead"}
	}
	return nil
}
