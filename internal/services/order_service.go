package services

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"crm_backend/internal/apperrors"
	"crm_backend/internal/fields"
	"crm_backend/internal/idgen"
	"crm_backend/internal/models"
	"crm_backend/internal/repository"
)

type OrderLineRequest struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

type CreateOrderRequest struct {
	ID                   string             `json:"id"`
	LeadID               *string            `json:"leadId"`
	CallID               *string            `json:"callId"`
	CustomerName         string             `json:"customerName"`
	Mobile               string             `json:"mobile"`
	DeliveryAddress      string             `json:"deliveryAddress"`
	Products             []OrderLineRequest `json:"products"`
	Status               string             `json:"status"`
	OrderDate            *time.Time         `json:"orderDate"`
	ExpectedDeliveryDate time.Time          `json:"expectedDeliveryDate"`
	PaymentStatus        string             `json:"paymentStatus"`
	InvoiceNumber        *string            `json:"invoiceNumber"`
	AssignedTo           string             `json:"assignedTo"`
	Remarks              string             `json:"remarks"`
}

type OrderService interface {
	GetAllOrders() ([]models.Order, error)
	GetOrderByID(id string) (*models.Order, error)
	CreateOrder(req *CreateOrderRequest) (*models.Order, error)
	// CreateDraftOrder records an order with no product lines yet; lead
	// conversion uses it when no catalogue items have been picked. The
	// total comes from the caller since there are no lines to sum.
	CreateDraftOrder(req *CreateOrderRequest, total decimal.Decimal) (*models.Order, error)
	// UpdateOrder applies a raw partial-update body. A "products" key
	// replaces the full line set with inventory reconciliation; all
	// other keys pass through the orders allow-list.
	UpdateOrder(id string, updates map[string]interface{}) (*models.Order, error)
	DeleteOrder(id string) error
}

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) OrderService {
	return &orderService{orderRepo: orderRepo, productRepo: productRepo}
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	for i := range orders {
		orders[i].AgingDays = models.AgingDays(orders[i].OrderDate, now)
		orders[i].IsDelayed = orders[i].Delayed(now)
	}
	return orders, nil
}

func (s *orderService) GetOrderByID(id string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	order.AgingDays = models.AgingDays(order.OrderDate, now)
	order.IsDelayed = order.Delayed(now)
	return order, nil
}

func (s *orderService) CreateOrder(req *CreateOrderRequest) (*models.Order, error) {
	if len(req.Products) == 0 {
		return nil, &apperrors.ValidationError{Msg: "Order must include at least one product"}
	}

	order, err := newOrderFromRequest(req)
	if err != nil {
		return nil, err
	}

	lines, err := s.buildLines(req.Products)
	if err != nil {
		return nil, err
	}
	order.Products = lines
	order.TotalAmount = models.OrderTotal(lines)

	return s.persistOrder(order)
}

func (s *orderService) CreateDraftOrder(req *CreateOrderRequest, total decimal.Decimal) (*models.Order, error) {
	order, err := newOrderFromRequest(req)
	if err != nil {
		return nil, err
	}
	order.TotalAmount = total
	return s.persistOrder(order)
}

func newOrderFromRequest(req *CreateOrderRequest) (*models.Order, error) {
	orderDate := time.Now()
	if req.OrderDate != nil {
		orderDate = *req.OrderDate
	}
	if req.ExpectedDeliveryDate.IsZero() {
		return nil, &apperrors.ValidationError{Msg: "expectedDeliveryDate is required"}
	}

	order := &models.Order{
		ID:                   req.ID,
		LeadID:               req.LeadID,
		CallID:               req.CallID,
		CustomerName:         req.CustomerName,
		Mobile:               req.Mobile,
		DeliveryAddress:      req.DeliveryAddress,
		Status:               req.Status,
		OrderDate:            orderDate,
		ExpectedDeliveryDate: req.ExpectedDeliveryDate,
		PaymentStatus:        req.PaymentStatus,
		InvoiceNumber:        req.InvoiceNumber,
		AssignedTo:           req.AssignedTo,
		Remarks:              req.Remarks,
	}
	if order.ID == "" {
		order.ID = idgen.New(idgen.PrefixOrder)
	}
	if order.Status == "" {
		order.Status = models.OrderReceived
	}
	if order.PaymentStatus == "" {
		order.PaymentStatus = models.PaymentPending
	}
	return order, nil
}

func (s *orderService) persistOrder(order *models.Order) (*models.Order, error) {
	order.Recompute(time.Now())
	if err := models.Validate(order); err != nil {
		return nil, err
	}
	if err := s.orderRepo.CreateWithLines(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) UpdateOrder(id string, updates map[string]interface{}) (*models.Order, error) {
	replaceLines := false
	var newLines []models.OrderProduct
	if raw, ok := updates["products"]; ok {
		replaceLines = true
		reqLines, err := decodeLines(raw)
		if err != nil {
			return nil, err
		}
		newLines, err = s.buildLines(reqLines)
		if err != nil {
			return nil, err
		}
	}
	// The previous line set comes from the database inside the update
	// transaction, so a client-supplied snapshot is ignored.
	delete(updates, "products")
	delete(updates, "previousProducts")

	if err := checkEnumUpdate(updates, "status", models.OrderReceived, models.OrderInProduction,
		models.OrderReadyForDelivery, models.OrderOutForDelivery, models.OrderDelivered, models.OrderCancelled); err != nil {
		return nil, err
	}
	if err := checkEnumUpdate(updates, "paymentStatus", models.PaymentPending, models.PaymentPartial, models.PaymentCompleted); err != nil {
		return nil, err
	}

	cols := map[string]interface{}{}
	if len(updates) > 0 {
		var err error
		cols, err = fields.Sanitize(fields.EntityOrders, updates)
		if err != nil {
			if !replaceLines {
				return nil, err
			}
			cols = map[string]interface{}{}
		}
	} else if !replaceLines {
		return nil, &apperrors.ValidationError{Msg: "No valid fields to update"}
	}

	return s.orderRepo.UpdateWithLines(id, cols, newLines, replaceLines)
}

func (s *orderService) DeleteOrder(id string) error {
	return s.orderRepo.Delete(id)
}

// buildLines resolves each requested line against the product catalogue,
// snapshots name/unit/price at order time and recomputes line totals so
// a client cannot submit a price that disagrees with quantity x unit.
func (s *orderService) buildLines(reqs []OrderLineRequest) ([]models.OrderProduct, error) {
	lines := make([]models.OrderProduct, 0, len(reqs))
	for _, req := range reqs {
		if req.ProductID == "" {
			return nil, &apperrors.ValidationError{Msg: "productId is required for every order line"}
		}
		if req.Quantity <= 0 {
			return nil, &apperrors.ValidationError{Msg: "quantity must be greater than zero"}
		}
		product, err := s.productRepo.GetByID(req.ProductID)
		if err != nil {
			return nil, err
		}
		name := req.ProductName
		if name == "" {
			name = product.Name
		}
		unit := req.Unit
		if unit == "" {
			unit = product.Unit
		}
		unitPrice := req.UnitPrice
		if unitPrice.IsZero() {
			unitPrice = product.Price
		}
		lines = append(lines, models.OrderProduct{
			ProductID:   product.ID,
			ProductName: name,
			Quantity:    req.Quantity,
			Unit:        unit,
			UnitPrice:   unitPrice,
			TotalPrice:  models.LineTotal(req.Quantity, unitPrice),
		})
	}
	return lines, nil
}

func decodeLines(raw interface{}) ([]OrderLineRequest, error) {
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, &apperrors.ValidationError{Msg: "products must be a list of order lines"}
	}
	var reqs []OrderLineRequest
	if err := json.Unmarshal(b, &reqs); err != nil {
		return nil, &apperrors.ValidationError{Msg: "products must be a list of order lines"}
	}
	return reqs, nil
}
