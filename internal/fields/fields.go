// Package fields holds the per-entity allow-list that maps external
// JSON field names to storage columns. Partial updates are built from
// these maps only; an unknown field is dropped (and logged), never
// passed through to SQL.
package fields

import (
	"github.com/sirupsen/logrus"

	"crm_backend/internal/apperrors"
	"crm_backend/internal/logging"
)

const (
	EntityCallLogs  = "callLogs"
	EntityLeads     = "leads"
	EntityOrders    = "orders"
	EntityProducts  = "products"
	EntityTasks     = "tasks"
	EntityCustomers = "customers"
)

var allowed = map[string]map[string]string{
	EntityCallLogs: {
		"callDate":        "call_date",
		"customerName":    "customer_name",
		"mobile":          "mobile",
		"queryType":       "query_type",
		"productInterest": "product_interest",
		"nextAction":      "next_action",
		"followUpDate":    "follow_up_date",
		"remarks":         "remarks",
		"assignedTo":      "assigned_to",
		"status":          "status",
	},
	EntityLeads: {
		"callId":                  "call_id",
		"customerName":            "customer_name",
		"mobile":                  "mobile",
		"email":                   "email",
		"address":                 "address",
		"productInterest":         "product_interest",
		"plannedPurchaseQuantity": "planned_purchase_quantity",
		"status":                  "status",
		"createdDate":             "created_date",
		"lastFollowUp":            "last_follow_up",
		"nextFollowUp":            "next_follow_up",
		"assignedTo":              "assigned_to",
		"estimatedValue":          "estimated_value",
		"remarks":                 "remarks",
	},
	EntityOrders: {
		"leadId":               "lead_id",
		"callId":               "call_id",
		"customerName":         "customer_name",
		"mobile":               "mobile",
		"deliveryAddress":      "delivery_address",
		"status":               "status",
		"orderDate":            "order_date",
		"expectedDeliveryDate": "expected_delivery_date",
		"actualDeliveryDate":   "actual_delivery_date",
		"paymentStatus":        "payment_status",
		"invoiceNumber":        "invoice_number",
		"assignedTo":           "assigned_to",
		"remarks":              "remarks",
	},
	EntityProducts: {
		"name":              "name",
		"category":          "category",
		"unit":              "unit",
		"price":             "price",
		"availableQuantity": "available_quantity",
		"thresholdQuantity": "threshold_quantity",
		"isActive":          "is_active",
	},
	EntityTasks: {
		"type":         "type",
		"linkedTo":     "linked_to",
		"linkedId":     "linked_id",
		"customerName": "customer_name",
		"dueDate":      "due_date",
		"status":       "status",
		"assignedTo":   "assigned_to",
		"remarks":      "remarks",
	},
	EntityCustomers: {
		"name":        "name",
		"mobile":      "mobile",
		"email":       "email",
		"address":     "address",
		"totalOrders": "total_orders",
		"totalValue":  "total_value",
	},
}

// Sanitize converts a raw partial-update body into a column->value map
// containing only allow-listed fields. The id is never updatable.
// Returns a validation error when nothing valid remains.
//
// Derived columns (product status, lead aging, order delay flags) are
// deliberately absent from the maps above: they are recomputed by the
// owning service on every write, so a client cannot set them directly.
func Sanitize(entity string, updates map[string]interface{}) (map[string]interface{}, error) {
	cols := allowed[entity]
	out := make(map[string]interface{}, len(updates))
	for key, value := range updates {
		if key == "id" {
			continue
		}
		col, ok := cols[key]
		if !ok {
			logging.L().WithFields(logrus.Fields{
				"entity": entity,
				"field":  key,
			}).Warn("dropping unknown update field")
			continue
		}
		out[col] = value
	}
	if len(out) == 0 {
		return nil, &apperrors.ValidationError{Msg: "No valid fields to update"}
	}
	return out, nil
}
