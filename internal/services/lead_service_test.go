package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"crm_backend/internal/apperrors"
	"crm_backend/internal/models"
)

type stubLeadRepo struct {
	lead    *models.Lead
	updates []map[string]interface{}
}

func (r *stubLeadRepo) Create(*models.Lead) error { return nil }

func (r *stubLeadRepo) GetByID(id string) (*models.Lead, error) {
	if r.lead == nil || r.lead.ID != id {
		return nil, &apperrors.NotFoundError{Entity: "Lead"}
	}
	return r.lead, nil
}

func (r *stubLeadRepo) GetAll() ([]models.Lead, error) { return nil, nil }

func (r *stubLeadRepo) UpdateFields(id string, cols map[string]interface{}) (*models.Lead, error) {
	if r.lead == nil || r.lead.ID != id {
		return nil, &apperrors.NotFoundError{Entity: "Lead"}
	}
	r.updates = append(r.updates, cols)
	if status, ok := cols["status"].(string); ok {
		r.lead.Status = status
	}
	return r.lead, nil
}

func (r *stubLeadRepo) Delete(string) error { return nil }

type stubOrderRepo struct {
	created *models.Order
}

func (r *stubOrderRepo) GetAll() ([]models.Order, error) { return nil, nil }

func (r *stubOrderRepo) GetByID(string) (*models.Order, error) {
	return nil, &apperrors.NotFoundError{Entity: "Order"}
}

func (r *stubOrderRepo) CreateWithLines(order *models.Order) error {
	r.created = order
	return nil
}

func (r *stubOrderRepo) UpdateWithLines(string, map[string]interface{}, []models.OrderProduct, bool) (*models.Order, error) {
	return nil, &apperrors.NotFoundError{Entity: "Order"}
}

func (r *stubOrderRepo) Delete(string) error { return nil }

type stubProductRepo struct {
	products map[string]*models.Product
}

func (r *stubProductRepo) Create(*models.Product) error { return nil }

func (r *stubProductRepo) GetByID(id string) (*models.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, &apperrors.NotFoundError{Entity: "Product"}
	}
	return p, nil
}

func (r *stubProductRepo) GetAll() ([]models.Product, error) { return nil, nil }

func (r *stubProductRepo) UpdateFields(string, map[string]interface{}) (*models.Product, error) {
	return nil, &apperrors.NotFoundError{Entity: "Product"}
}

func (r *stubProductRepo) Delete(string) error { return nil }

func (r *stubProductRepo) ReferencedByOrders(string) (bool, error) { return false, nil }

func testLead() *models.Lead {
	address := "12, Thillai Nagar, Trichy"
	estimate := decimal.NewFromInt(170000)
	return &models.Lead{
		ID:              "L-102",
		CustomerName:    "Senthil Builders",
		Mobile:          "9876543212",
		Address:         &address,
		ProductInterest: "Polycarbonate Sheet",
		Status:          models.LeadQuoted,
		CreatedDate:     time.Now().AddDate(0, 0, -1),
		AssignedTo:      "Ravi K.",
		EstimatedValue:  &estimate,
		Remarks:         "Quote sent for 2000 sqft",
	}
}

func TestConvertLeadWithoutProductsCreatesDraftOrder(t *testing.T) {
	leadRepo := &stubLeadRepo{lead: testLead()}
	orderRepo := &stubOrderRepo{}
	orderService := NewOrderService(orderRepo, &stubProductRepo{})
	leadService := NewLeadService(leadRepo, orderService)

	order, err := leadService.ConvertToOrder("L-102", nil)
	if err != nil {
		t.Fatalf("ConvertToOrder failed: %v", err)
	}

	if orderRepo.created == nil {
		t.Fatal("no order was persisted")
	}
	if order.LeadID == nil || *order.LeadID != "L-102" {
		t.Errorf("LeadID = %v, want L-102", order.LeadID)
	}
	if order.CustomerName != "Senthil Builders" || order.Mobile != "9876543212" {
		t.Errorf("customer details not prefilled: %q %q", order.CustomerName, order.Mobile)
	}
	if order.DeliveryAddress != "12, Thillai Nagar, Trichy" {
		t.Errorf("DeliveryAddress = %q, want lead address", order.DeliveryAddress)
	}
	if len(order.Products) != 0 {
		t.Errorf("draft order carries %d lines, want none", len(order.Products))
	}
	if !order.TotalAmount.Equal(decimal.NewFromInt(170000)) {
		t.Errorf("TotalAmount = %s, want the lead's 170000 estimate", order.TotalAmount)
	}
	if order.Status != models.OrderReceived {
		t.Errorf("Status = %q, want Order Received", order.Status)
	}
	if leadRepo.lead.Status != models.LeadWon {
		t.Errorf("lead status = %q, want Won", leadRepo.lead.Status)
	}
}

func TestConvertLeadWithoutEstimateDefaultsToZeroTotal(t *testing.T) {
	lead := testLead()
	lead.EstimatedValue = nil
	leadRepo := &stubLeadRepo{lead: lead}
	orderRepo := &stubOrderRepo{}
	leadService := NewLeadService(leadRepo, NewOrderService(orderRepo, &stubProductRepo{}))

	order, err := leadService.ConvertToOrder("L-102", nil)
	if err != nil {
		t.Fatalf("ConvertToOrder failed: %v", err)
	}
	if !order.TotalAmount.Equal(decimal.Zero) {
		t.Errorf("TotalAmount = %s, want 0", order.TotalAmount)
	}
}

func TestConvertLeadWithProductsBuildsLines(t *testing.T) {
	leadRepo := &stubLeadRepo{lead: testLead()}
	orderRepo := &stubOrderRepo{}
	productRepo := &stubProductRepo{products: map[string]*models.Product{
		"P003": {
			ID:       "P003",
			Name:     "Polycarbonate Sheet",
			Unit:     "Sq.ft",
			Price:    decimal.NewFromInt(85),
			Category: models.CategoryRoofingSheet,
		},
	}}
	leadService := NewLeadService(leadRepo, NewOrderService(orderRepo, productRepo))

	order, err := leadService.ConvertToOrder("L-102", &CreateOrderRequest{
		Products: []OrderLineRequest{{ProductID: "P003", Quantity: 2000}},
	})
	if err != nil {
		t.Fatalf("ConvertToOrder failed: %v", err)
	}

	if len(order.Products) != 1 {
		t.Fatalf("order has %d lines, want 1", len(order.Products))
	}
	line := order.Products[0]
	if line.ProductName != "Polycarbonate Sheet" || line.Unit != "Sq.ft" {
		t.Errorf("line did not snapshot catalogue details: %+v", line)
	}
	if !order.TotalAmount.Equal(decimal.NewFromInt(170000)) {
		t.Errorf("TotalAmount = %s, want 170000 from the lines", order.TotalAmount)
	}
}

func TestConvertUnknownLead(t *testing.T) {
	leadService := NewLeadService(&stubLeadRepo{}, NewOrderService(&stubOrderRepo{}, &stubProductRepo{}))

	_, err := leadService.ConvertToOrder("L-999", nil)
	if _, ok := err.(*apperrors.NotFoundError); !ok {
		t.Fatalf("expected not found error, got %v", err)
	}
}
