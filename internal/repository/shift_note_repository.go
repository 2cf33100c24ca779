package repository

import (
	"gorm.io/gorm"

	"crm_backend/internal/apperrors"
	"crm_backend/internal/models"
)

type ShiftNoteRepository interface {
	// CreateAsActive deactivates every other note and inserts the new
	// one as the single active handover note, atomically.
	CreateAsActive(note *models.ShiftNote) error
	GetAll() ([]models.ShiftNote, error)
	Update(id string, content string, isActive bool) (*models.ShiftNote, error)
}

type shiftNoteRepository struct {
	db *gorm.DB
}

func NewShiftNoteRepository(db *gorm.DB) ShiftNoteRepository {
	return &shiftNoteRepository{db: db}
}

func (r *shiftNoteRepository) CreateAsActive(note *models.ShiftNote) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ShiftNote{}).Where("is_active = ?", true).
			UpdateColumn("is_active", false).Error; err != nil {
			return err
		}
		note.IsActive = true
		return tx.Create(note).Error
	})
}

func (r *shiftNoteRepository) GetAll() ([]models.ShiftNote, error) {
	var notes []models.ShiftNote
	err := r.db.Order("created_at DESC").Find(&notes).Error
	return notes, err
}

func (r *shiftNoteRepository) Update(id string, content string, isActive bool) (*models.ShiftNote, error) {
	res := r.db.Model(&models.ShiftNote{}).Where("id = ?", id).Updates(map[string]interface{}{
		"content":   content,
		"is_active": isActive,
	})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, &apperrors.NotFoundError{Entity: "Shift note"}
	}
	var note models.ShiftNote
	if err := r.db.First(&note, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &note, nil
}
