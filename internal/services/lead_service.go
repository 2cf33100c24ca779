package services

import (
	"time"

	"github.com/shopspring/decimal"

	"crm_backend/internal/fields"
	"crm_backend/internal/idgen"
	"crm_backend/internal/models"
	"crm_backend/internal/repository"
)

type LeadService interface {
	GetAllLeads() ([]models.Lead, error)
	GetLeadByID(id string) (*models.Lead, error)
	CreateLead(lead *models.Lead) error
	UpdateLead(id string, updates map[string]interface{}) (*models.Lead, error)
	DeleteLead(id string) error
	// ConvertToOrder marks the lead Won and creates an order prefilled
	// from the lead's customer details; overrides win over lead data.
	ConvertToOrder(id string, overrides *CreateOrderRequest) (*models.Order, error)
}

type leadService struct {
	leadRepo     repository.LeadRepository
	orderService OrderService
}

func NewLeadService(leadRepo repository.LeadRepository, orderService OrderService) LeadService {
	return &leadService{leadRepo: leadRepo, orderService: orderService}
}

func (s *leadService) GetAllLeads() ([]models.Lead, error) {
	leads, err := s.leadRepo.GetAll()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	for i := range leads {
		leads[i].Recompute(now)
	}
	return leads, nil
}

func (s *leadService) GetLeadByID(id string) (*models.Lead, error) {
	lead, err := s.leadRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	lead.Recompute(time.Now())
	return lead, nil
}

func (s *leadService) CreateLead(lead *models.Lead) error {
	now := time.Now()
	if lead.ID == "" {
		lead.ID = idgen.New(idgen.PrefixLead)
	}
	if lead.Status == "" {
		lead.Status = models.LeadNew
	}
	if lead.CreatedDate.IsZero() {
		lead.CreatedDate = now
	}
	lead.Recompute(now)
	if err := models.Validate(lead); err != nil {
		return err
	}
	return s.leadRepo.Create(lead)
}

func (s *leadService) UpdateLead(id string, updates map[string]interface{}) (*models.Lead, error) {
	if err := checkEnumUpdate(updates, "status", models.LeadNew, models.LeadContacted,
		models.LeadQuoted, models.LeadNegotiation, models.LeadWon, models.LeadLost); err != nil {
		return nil, err
	}
	cols, err := fields.Sanitize(fields.EntityLeads, updates)
	if err != nil {
		return nil, err
	}
	lead, err := s.leadRepo.UpdateFields(id, cols)
	if err != nil {
		return nil, err
	}
	// createdDate may have changed; refresh and persist the aging pair.
	lead.Recompute(time.Now())
	return s.leadRepo.UpdateFields(id, map[string]interface{}{
		"aging_days":   lead.AgingDays,
		"aging_bucket": lead.AgingBucket,
	})
}

func (s *leadService) DeleteLead(id string) error {
	return s.leadRepo.Delete(id)
}

func (s *leadService) ConvertToOrder(id string, overrides *CreateOrderRequest) (*models.Order, error) {
	lead, err := s.leadRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	req := &CreateOrderRequest{}
	if overrides != nil {
		*req = *overrides
	}
	leadID := lead.ID
	req.LeadID = &leadID
	if req.CustomerName == "" {
		req.CustomerName = lead.CustomerName
	}
	if req.Mobile == "" {
		req.Mobile = lead.Mobile
	}
	if req.DeliveryAddress == "" && lead.Address != nil {
		req.DeliveryAddress = *lead.Address
	}
	if req.AssignedTo == "" {
		req.AssignedTo = lead.AssignedTo
	}
	if req.Remarks == "" {
		req.Remarks = lead.Remarks
	}
	if req.ExpectedDeliveryDate.IsZero() {
		req.ExpectedDeliveryDate = time.Now().AddDate(0, 0, 5)
	}

	// A bare conversion carries no product lines yet; the order opens
	// as a draft valued at the lead's estimate.
	var order *models.Order
	if len(req.Products) == 0 {
		total := decimal.Zero
		if lead.EstimatedValue != nil {
			total = *lead.EstimatedValue
		}
		order, err = s.orderService.CreateDraftOrder(req, total)
	} else {
		order, err = s.orderService.CreateOrder(req)
	}
	if err != nil {
		return nil, err
	}

	if _, err := s.UpdateLead(id, map[string]interface{}{"status": models.LeadWon}); err != nil {
		return nil, err
	}
	return order, nil
}
