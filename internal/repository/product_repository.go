package repository

import (
	"errors"

	"gorm.io/gorm"

	"crm_backend/internal/apperrors"
	"crm_backend/internal/models"
)

type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id string) (*models.Product, error)
	GetAll() ([]models.Product, error)
	UpdateFields(id string, cols map[string]interface{}) (*models.Product, error)
	Delete(id string) error
	// ReferencedByOrders reports whether any order line still points at
	// the product (the application-side view of ON DELETE RESTRICT).
	ReferencedByOrders(id string) (bool, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Entity: "Product"}
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Order("name").Find(&products).Error
	return products, err
}

func (r *productRepository) UpdateFields(id string, cols map[string]interface{}) (*models.Product, error) {
	var out models.Product
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Product{}).Where("id = ?", id).Updates(cols)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &apperrors.NotFoundError{Entity: "Product"}
		}
		// Quantity or threshold may have moved; status follows.
		if err := tx.First(&out, "id = ?", id).Error; err != nil {
			return err
		}
		out.RecomputeStatus()
		return tx.Model(&models.Product{}).Where("id = ?", id).UpdateColumn("status", out.Status).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *productRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &apperrors.NotFoundError{Entity: "Product"}
	}
	return nil
}

func (r *productRepository) ReferencedByOrders(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.OrderProduct{}).Where("product_id = ?", id).Count(&count).Error
	return count > 0, err
}
