package services

import (
	"crm_backend/internal/idgen"
	"crm_backend/internal/models"
	"crm_backend/internal/repository"
)

type RemarkLogService interface {
	GetRemarkLogs(entityType, entityID string) ([]models.RemarkLog, error)
	CreateRemarkLog(remark *models.RemarkLog) error
}

type remarkLogService struct {
	remarkLogRepo repository.RemarkLogRepository
}

func NewRemarkLogService(remarkLogRepo repository.RemarkLogRepository) RemarkLogService {
	return &remarkLogService{remarkLogRepo: remarkLogRepo}
}

func (s *remarkLogService) GetRemarkLogs(entityType, entityID string) ([]models.RemarkLog, error) {
	if entityType != "" && entityID != "" {
		return s.remarkLogRepo.GetByEntity(entityType, entityID)
	}
	return s.remarkLogRepo.GetAll()
}

func (s *remarkLogService) CreateRemarkLog(remark *models.RemarkLog) error {
	if remark.ID == "" {
		remark.ID = idgen.New(idgen.PrefixRemark)
	}
	if err := models.Validate(remark); err != nil {
		return err
	}
	return s.remarkLogRepo.Create(remark)
}
