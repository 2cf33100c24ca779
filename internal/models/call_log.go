package models

import "time"

type CallLog struct {
	ID              string     `json:"id" gorm:"primaryKey;size:50"`
	CallDate        time.Time  `json:"callDate" gorm:"not null"`
	CustomerName    string     `json:"customerName" gorm:"not null" validate:"required"`
	Mobile          string     `json:"mobile" gorm:"size:20;not null;index" validate:"required"`
	QueryType       string     `json:"queryType" gorm:"size:100;not null;check:query_type IN ('Price Inquiry','Product Info','Complaint','Order Status','General')" validate:"required,oneof='Price Inquiry' 'Product Info' Complaint 'Order Status' General"`
	ProductInterest string     `json:"productInterest"`
	NextAction      string     `json:"nextAction" gorm:"size:100;not null;check:next_action IN ('Follow-up','Lead Created','Order Updated','New Order','No Action')" validate:"required,oneof=Follow-up 'Lead Created' 'Order Updated' 'New Order' 'No Action'"`
	FollowUpDate    *time.Time `json:"followUpDate"`
	Remarks         string     `json:"remarks" gorm:"type:text"`
	AssignedTo      string     `json:"assignedTo" gorm:"not null" validate:"required"`
	Status          string     `json:"status" gorm:"size:50;not null;index;check:status IN ('Open','Closed')" validate:"required,oneof=Open Closed"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

const (
	QueryPriceInquiry = "Price Inquiry"
	QueryProductInfo  = "Product Info"
	QueryComplaint    = "Complaint"
	QueryOrderStatus  = "Order Status"
	QueryGeneral      = "General"

	ActionFollowUp     = "Follow-up"
	ActionLeadCreated  = "Lead Created"
	ActionOrderUpdated = "Order Updated"
	ActionNewOrder     = "New Order"
	ActionNone         = "No Action"

	CallOpen   = "Open"
	CallClosed = "Closed"
)
