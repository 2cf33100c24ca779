package services

import (
	"crm_backend/internal/fields"
	"crm_backend/internal/idgen"
	"crm_backend/internal/models"
	"crm_backend/internal/repository"
)

type CustomerService interface {
	GetAllCustomers() ([]models.Customer, error)
	CreateCustomer(customer *models.Customer) error
	UpdateCustomer(id string, updates map[string]interface{}) (*models.Customer, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) GetAllCustomers() ([]models.Customer, error) {
	return s.customerRepo.GetAll()
}

func (s *customerService) CreateCustomer(customer *models.Customer) error {
	if customer.ID == "" {
		customer.ID = idgen.New(idgen.PrefixCustomer)
	}
	if err := models.Validate(customer); err != nil {
		return err
	}
	return s.customerRepo.Create(customer)
}

func (s *customerService) UpdateCustomer(id string, updates map[string]interface{}) (*models.Customer, error) {
	cols, err := fields.Sanitize(fields.EntityCustomers, updates)
	if err != nil {
		return nil, err
	}
	return s.customerRepo.UpdateFields(id, cols)
}
