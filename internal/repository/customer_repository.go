package repository

import (
	"gorm.io/gorm"

	"crm_backend/internal/apperrors"
	"crm_backend/internal/models"
)

type CustomerRepository interface {
	Create(customer *models.Customer) error
	GetAll() ([]models.Customer, error)
	UpdateFields(id string, cols map[string]interface{}) (*models.Customer, error)
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

func (r *customerRepository) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Order("name").Find(&customers).Error
	return customers, err
}

func (r *customerRepository) UpdateFields(id string, cols map[string]interface{}) (*models.Customer, error) {
	res := r.db.Model(&models.Customer{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, &apperrors.NotFoundError{Entity: "Customer"}
	}
	var customer models.Customer
	if err := r.db.First(&customer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}
