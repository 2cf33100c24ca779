package services

import (
	"crm_backend/internal/apperrors"
	"crm_backend/internal/fields"
	"crm_backend/internal/idgen"
	"crm_backend/internal/models"
	"crm_backend/internal/repository"
)

type ProductService interface {
	GetAllProducts() ([]models.Product, error)
	GetProductByID(id string) (*models.Product, error)
	CreateProduct(product *models.Product) error
	UpdateProduct(id string, updates map[string]interface{}) (*models.Product, error)
	DeleteProduct(id string) error
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) GetAllProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

func (s *productService) GetProductByID(id string) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

func (s *productService) CreateProduct(product *models.Product) error {
	if product.ID == "" {
		product.ID = idgen.New(idgen.PrefixProduct)
	}
	if product.AvailableQuantity < 0 {
		return &apperrors.ValidationError{Msg: "availableQuantity must not be negative"}
	}
	product.RecomputeStatus()
	if err := models.Validate(product); err != nil {
		return err
	}
	return s.productRepo.Create(product)
}

func (s *productService) UpdateProduct(id string, updates map[string]interface{}) (*models.Product, error) {
	if err := checkEnumUpdate(updates, "category", models.CategoryRoofingSheet,
		models.CategoryTile, models.CategoryAccessories); err != nil {
		return nil, err
	}
	if qty, ok := updates["availableQuantity"].(float64); ok && qty < 0 {
		return nil, &apperrors.ValidationError{Msg: "availableQuantity must not be negative"}
	}
	cols, err := fields.Sanitize(fields.EntityProducts, updates)
	if err != nil {
		return nil, err
	}
	return s.productRepo.UpdateFields(id, cols)
}

// DeleteProduct refuses to remove a product that order lines still
// reference, matching the schema's ON DELETE RESTRICT.
func (s *productService) DeleteProduct(id string) error {
	inUse, err := s.productRepo.ReferencedByOrders(id)
	if err != nil {
		return err
	}
	if inUse {
		return &apperrors.ConflictError{Msg: "Product is referenced by existing orders"}
	}
	return s.productRepo.Delete(id)
}
