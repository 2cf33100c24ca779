package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"crm_backend/internal/apperrors"
	"crm_backend/internal/models"
)

var nowFn = time.Now

type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	// CreateWithLines inserts the order and its lines and applies the
	// conditional stock decrement for each line in one transaction.
	CreateWithLines(order *models.Order) error
	// UpdateWithLines applies a partial column update and, when
	// replaceLines is set, swaps the full line set with restore-then-
	// decrement inventory reconciliation. Everything runs in a single
	// transaction; derived order fields are recomputed before commit.
	UpdateWithLines(id string, cols map[string]interface{}, newLines []models.OrderProduct, replaceLines bool) (*models.Order, error)
	Delete(id string) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Products").Order("order_date DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Products").First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Entity: "Order"}
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) CreateWithLines(order *models.Order) error {
	lines := order.Products
	order.Products = nil
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].ID = 0
			lines[i].OrderID = order.ID
			if err := tx.Create(&lines[i]).Error; err != nil {
				return err
			}
			if err := decrementStock(tx, &lines[i]); err != nil {
				return err
			}
		}
		return refreshProductStatuses(tx, productIDs(lines))
	})
	order.Products = lines
	return err
}

func (r *orderRepository) UpdateWithLines(id string, cols map[string]interface{}, newLines []models.OrderProduct, replaceLines bool) (*models.Order, error) {
	var out models.Order
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Preload("Products").First(&order, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &apperrors.NotFoundError{Entity: "Order"}
			}
			return err
		}

		if replaceLines {
			// Give every previous line's quantity back, then re-apply
			// the conditional decrement for the replacement set. Net
			// effect equals a fresh allocation, and a failed decrement
			// rolls the whole edit back.
			touched := productIDs(order.Products)
			for _, line := range order.Products {
				if err := restoreStock(tx, line.ProductID, line.Quantity); err != nil {
					return err
				}
			}
			if err := tx.Where("order_id = ?", id).Delete(&models.OrderProduct{}).Error; err != nil {
				return err
			}
			for i := range newLines {
				newLines[i].ID = 0
				newLines[i].OrderID = id
				if err := tx.Create(&newLines[i]).Error; err != nil {
					return err
				}
				if err := decrementStock(tx, &newLines[i]); err != nil {
					return err
				}
			}
			touched = append(touched, productIDs(newLines)...)
			if err := refreshProductStatuses(tx, touched); err != nil {
				return err
			}
			if cols == nil {
				cols = map[string]interface{}{}
			}
			cols["total_amount"] = models.OrderTotal(newLines)
		}

		if len(cols) > 0 {
			res := tx.Model(&models.Order{}).Where("id = ?", id).Updates(cols)
			if res.Error != nil {
				return res.Error
			}
		}

		// Recompute derived fields against the post-update row.
		if err := tx.Preload("Products").First(&out, "id = ?", id).Error; err != nil {
			return err
		}
		out.Recompute(nowFn())
		return tx.Model(&models.Order{}).Where("id = ?", id).Updates(map[string]interface{}{
			"aging_days":           out.AgingDays,
			"is_delayed":           out.IsDelayed,
			"actual_delivery_date": out.ActualDeliveryDate,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the order; its lines go with it via the ON DELETE
// CASCADE constraint. Inventory is intentionally not restored: deletion
// is a hard removal of a record, not a cancellation.
func (r *orderRepository) Delete(id string) error {
	res := r.db.Delete(&models.Order{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &apperrors.NotFoundError{Entity: "Order"}
	}
	return nil
}

// decrementStock is the single concurrency-safety mechanism in the
// system: an atomic conditional update that only subtracts when enough
// stock remains. Two racing orders for the last units cannot both pass.
func decrementStock(tx *gorm.DB, line *models.OrderProduct) error {
	res := tx.Model(&models.Product{}).
		Where("id = ? AND available_quantity >= ?", line.ProductID, line.Quantity).
		UpdateColumn("available_quantity", gorm.Expr("available_quantity - ?", line.Quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.Product{}).Where("id = ?", line.ProductID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return &apperrors.NotFoundError{Entity: "Product " + line.ProductID}
		}
		return &apperrors.InsufficientInventoryError{ProductName: line.ProductName}
	}
	return nil
}

func restoreStock(tx *gorm.DB, productID string, quantity int) error {
	return tx.Model(&models.Product{}).
		Where("id = ?", productID).
		UpdateColumn("available_quantity", gorm.Expr("available_quantity + ?", quantity)).Error
}

// refreshProductStatuses recomputes the derived stock status for every
// touched product inside the same transaction as the quantity change.
func refreshProductStatuses(tx *gorm.DB, ids []string) error {
	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		var p models.Product
		if err := tx.First(&p, "id = ?", id).Error; err != nil {
			return err
		}
		p.RecomputeStatus()
		if err := tx.Model(&models.Product{}).Where("id = ?", id).UpdateColumn("status", p.Status).Error; err != nil {
			return err
		}
	}
	return nil
}

func productIDs(lines []models.OrderProduct) []string {
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID)
	}
	return ids
}
