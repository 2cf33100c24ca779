package services

import (
	"time"

	"crm_backend/internal/models"
	"crm_backend/internal/repository"
)

type StatsService interface {
	// GetDashboardStats re-derives every aggregate from current data.
	// Nothing is cached between requests.
	GetDashboardStats() (*models.DashboardStats, error)
}

type statsService struct {
	callLogRepo repository.CallLogRepository
	leadRepo    repository.LeadRepository
	orderRepo   repository.OrderRepository
	taskRepo    repository.TaskRepository
}

func NewStatsService(callLogRepo repository.CallLogRepository, leadRepo repository.LeadRepository,
	orderRepo repository.OrderRepository, taskRepo repository.TaskRepository) StatsService {
	return &statsService{callLogRepo: callLogRepo, leadRepo: leadRepo, orderRepo: orderRepo, taskRepo: taskRepo}
}

func (s *statsService) GetDashboardStats() (*models.DashboardStats, error) {
	now := time.Now()

	callLogs, err := s.callLogRepo.GetAll()
	if err != nil {
		return nil, err
	}
	leads, err := s.leadRepo.GetAll()
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}
	tasks, err := s.taskRepo.GetAll()
	if err != nil {
		return nil, err
	}

	// Derived fields feed the aggregates, so refresh them first.
	for i := range leads {
		leads[i].Recompute(now)
	}
	for i := range orders {
		orders[i].AgingDays = models.AgingDays(orders[i].OrderDate, now)
		orders[i].IsDelayed = orders[i].Delayed(now)
	}

	stats := models.ComputeStats(callLogs, leads, orders, tasks, now)
	return &stats, nil
}
