package services

import (
	"time"

	"crm_backend/internal/fields"
	"crm_backend/internal/idgen"
	"crm_backend/internal/models"
	"crm_backend/internal/repository"
)

type TaskService interface {
	GetAllTasks() ([]models.Task, error)
	CreateTask(task *models.Task) error
	UpdateTask(id string, updates map[string]interface{}) (*models.Task, error)
	DeleteTask(id string) error
}

type taskService struct {
	taskRepo repository.TaskRepository
}

func NewTaskService(taskRepo repository.TaskRepository) TaskService {
	return &taskService{taskRepo: taskRepo}
}

func (s *taskService) GetAllTasks() ([]models.Task, error) {
	return s.taskRepo.GetAll()
}

func (s *taskService) CreateTask(task *models.Task) error {
	if task.ID == "" {
		task.ID = idgen.New(idgen.PrefixTask)
	}
	if task.Status == "" {
		task.Status = models.TaskPending
	}
	if task.DueDate.IsZero() {
		task.DueDate = time.Now()
	}
	if err := models.Validate(task); err != nil {
		return err
	}
	return s.taskRepo.Create(task)
}

func (s *taskService) UpdateTask(id string, updates map[string]interface{}) (*models.Task, error) {
	if err := checkEnumUpdate(updates, "type", models.TaskFollowUp, models.TaskDelivery,
		models.TaskCallBack, models.TaskMeeting); err != nil {
		return nil, err
	}
	if err := checkEnumUpdate(updates, "linkedTo", models.LinkedLead, models.LinkedOrder, models.LinkedCall); err != nil {
		return nil, err
	}
	if err := checkEnumUpdate(updates, "status", models.TaskPending, models.TaskDone, models.TaskOverdue); err != nil {
		return nil, err
	}
	cols, err := fields.Sanitize(fields.EntityTasks, updates)
	if err != nil {
		return nil, err
	}
	return s.taskRepo.UpdateFields(id, cols)
}

func (s *taskService) DeleteTask(id string) error {
	return s.taskRepo.Delete(id)
}
