package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID                   string          `json:"id" gorm:"primaryKey;size:50"`
	LeadID               *string         `json:"leadId" gorm:"size:50"`
	CallID               *string         `json:"callId" gorm:"size:50"`
	CustomerName         string          `json:"customerName" gorm:"not null" validate:"required"`
	Mobile               string          `json:"mobile" gorm:"size:20;not null" validate:"required"`
	DeliveryAddress      string          `json:"deliveryAddress" gorm:"type:text;not null" validate:"required"`
	TotalAmount          decimal.Decimal `json:"totalAmount" gorm:"type:decimal(12,2);not null"`
	Status               string          `json:"status" gorm:"size:100;not null;check:status IN ('Order Received','In Production','Ready for Delivery','Out for Delivery','Delivered','Cancelled')" validate:"required,oneof='Order Received' 'In Production' 'Ready for Delivery' 'Out for Delivery' Delivered Cancelled"`
	OrderDate            time.Time       `json:"orderDate" gorm:"not null"`
	ExpectedDeliveryDate time.Time       `json:"expectedDeliveryDate" gorm:"not null"`
	ActualDeliveryDate   *time.Time      `json:"actualDeliveryDate"`
	AgingDays            int             `json:"agingDays" gorm:"default:0"`
	IsDelayed            bool            `json:"isDelayed" gorm:"default:false"`
	PaymentStatus        string          `json:"paymentStatus" gorm:"size:50;not null;check:payment_status IN ('Pending','Partial','Completed')" validate:"required,oneof=Pending Partial Completed"`
	InvoiceNumber        *string         `json:"invoiceNumber" gorm:"size:100"`
	AssignedTo           string          `json:"assignedTo" gorm:"not null" validate:"required"`
	Remarks              string          `json:"remarks" gorm:"type:text"`
	Products             []OrderProduct  `json:"products" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`

	Lead *Lead    `json:"-" gorm:"foreignKey:LeadID;constraint:OnDelete:SET NULL"`
	Call *CallLog `json:"-" gorm:"foreignKey:CallID;constraint:OnDelete:SET NULL"`
}

type OrderProduct struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	OrderID     string          `json:"orderId" gorm:"size:50;not null;index"`
	ProductID   string          `json:"productId" gorm:"size:50;not null" validate:"required"`
	ProductName string          `json:"productName" gorm:"not null"`
	Quantity    int             `json:"quantity" gorm:"not null" validate:"gt=0"`
	Unit        string          `json:"unit" gorm:"size:50;not null"`
	UnitPrice   decimal.Decimal `json:"unitPrice" gorm:"type:decimal(10,2);not null"`
	TotalPrice  decimal.Decimal `json:"totalPrice" gorm:"type:decimal(12,2);not null"`
	CreatedAt   time.Time       `json:"createdAt"`

	Product *Product `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

const (
	OrderReceived         = "Order Received"
	OrderInProduction     = "In Production"
	OrderReadyForDelivery = "Ready for Delivery"
	OrderOutForDelivery   = "Out for Delivery"
	OrderDelivered        = "Delivered"
	OrderCancelled        = "Cancelled"

	PaymentPending   = "Pending"
	PaymentPartial   = "Partial"
	PaymentCompleted = "Completed"
)

// OrderStatuses in their forward progression order, used by dashboard
// status breakdowns. Cancelled orders stay off the board.
var OrderStatuses = []string{
	OrderReceived,
	OrderInProduction,
	OrderReadyForDelivery,
	OrderOutForDelivery,
	OrderDelivered,
}

// Delayed reports whether the order is past its expected delivery date
// and still in flight. Delivered and cancelled orders are never delayed.
func (o *Order) Delayed(now time.Time) bool {
	if o.Status == OrderDelivered || o.Status == OrderCancelled {
		return false
	}
	return now.After(o.ExpectedDeliveryDate)
}

// Recompute refreshes the derived order fields. A transition into
// Delivered stamps the actual delivery date exactly once.
func (o *Order) Recompute(now time.Time) {
	o.AgingDays = AgingDays(o.OrderDate, now)
	o.IsDelayed = o.Delayed(now)
	if o.Status == OrderDelivered && o.ActualDeliveryDate == nil {
		t := now
		o.ActualDeliveryDate = &t
	}
}

// LineTotal is quantity x unit price for a single order line.
func LineTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// OrderTotal sums the line totals of an order.
func OrderTotal(lines []OrderProduct) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.TotalPrice)
	}
	return total
}
