package services

import (
	"time"

	"crm_backend/internal/fields"
	"crm_backend/internal/idgen"
	"crm_backend/internal/models"
	"crm_backend/internal/repository"
)

type CallLogService interface {
	GetAllCallLogs() ([]models.CallLog, error)
	GetCallLogByID(id string) (*models.CallLog, error)
	// CreateCallLog records the call; a Follow-up next action with a
	// follow-up date also queues a pending follow-up task.
	CreateCallLog(callLog *models.CallLog) error
	UpdateCallLog(id string, updates map[string]interface{}) (*models.CallLog, error)
	DeleteCallLog(id string) error
}

type callLogService struct {
	callLogRepo repository.CallLogRepository
	taskRepo    repository.TaskRepository
}

func NewCallLogService(callLogRepo repository.CallLogRepository, taskRepo repository.TaskRepository) CallLogService {
	return &callLogService{callLogRepo: callLogRepo, taskRepo: taskRepo}
}

func (s *callLogService) GetAllCallLogs() ([]models.CallLog, error) {
	return s.callLogRepo.GetAll()
}

func (s *callLogService) GetCallLogByID(id string) (*models.CallLog, error) {
	return s.callLogRepo.GetByID(id)
}

func (s *callLogService) CreateCallLog(callLog *models.CallLog) error {
	if callLog.ID == "" {
		callLog.ID = idgen.New(idgen.PrefixCallLog)
	}
	if callLog.CallDate.IsZero() {
		callLog.CallDate = time.Now()
	}
	if callLog.Status == "" {
		callLog.Status = models.CallOpen
	}
	if err := models.Validate(callLog); err != nil {
		return err
	}
	if err := s.callLogRepo.Create(callLog); err != nil {
		return err
	}

	if callLog.NextAction == models.ActionFollowUp && callLog.FollowUpDate != nil {
		task := &models.Task{
			ID:           idgen.New(idgen.PrefixTask),
			Type:         models.TaskFollowUp,
			LinkedTo:     models.LinkedCall,
			LinkedID:     callLog.ID,
			CustomerName: callLog.CustomerName,
			DueDate:      *callLog.FollowUpDate,
			Status:       models.TaskPending,
			AssignedTo:   callLog.AssignedTo,
			Remarks:      callLog.Remarks,
		}
		if err := s.taskRepo.Create(task); err != nil {
			return err
		}
	}
	return nil
}

func (s *callLogService) UpdateCallLog(id string, updates map[string]interface{}) (*models.CallLog, error) {
	if err := checkEnumUpdate(updates, "queryType", models.QueryPriceInquiry, models.QueryProductInfo,
		models.QueryComplaint, models.QueryOrderStatus, models.QueryGeneral); err != nil {
		return nil, err
	}
	if err := checkEnumUpdate(updates, "nextAction", models.ActionFollowUp, models.ActionLeadCreated,
		models.ActionOrderUpdated, models.ActionNewOrder, models.ActionNone); err != nil {
		return nil, err
	}
	if err := checkEnumUpdate(updates, "status", models.CallOpen, models.CallClosed); err != nil {
		return nil, err
	}
	cols, err := fields.Sanitize(fields.EntityCallLogs, updates)
	if err != nil {
		return nil, err
	}
	return s.callLogRepo.UpdateFields(id, cols)
}

func (s *callLogService) DeleteCallLog(id string) error {
	return s.callLogRepo.Delete(id)
}
