package repository

import (
	"gorm.io/gorm"

	"crm_backend/internal/apperrors"
	"crm_backend/internal/models"
)

type TaskRepository interface {
	Create(task *models.Task) error
	GetAll() ([]models.Task, error)
	UpdateFields(id string, cols map[string]interface{}) (*models.Task, error)
	Delete(id string) error
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

func (r *taskRepository) GetAll() ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Order("due_date").Find(&tasks).Error
	return tasks, err
}

func (r *taskRepository) UpdateFields(id string, cols map[string]interface{}) (*models.Task, error) {
	res := r.db.Model(&models.Task{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, &apperrors.NotFoundError{Entity: "Task"}
	}
	var task models.Task
	if err := r.db.First(&task, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) Delete(id string) error {
	res := r.db.Delete(&models.Task{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &apperrors.NotFoundError{Entity: "Task"}
	}
	return nil
}
