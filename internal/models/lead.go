package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Lead struct {
	ID                      string           `json:"id" gorm:"primaryKey;size:50"`
	CallID                  *string          `json:"callId" gorm:"size:50"`
	CustomerName            string           `json:"customerName" gorm:"not null" validate:"required"`
	Mobile                  string           `json:"mobile" gorm:"size:20;not null" validate:"required"`
	Email                   *string          `json:"email"`
	Address                 *string          `json:"address" gorm:"type:text"`
	ProductInterest         string           `json:"productInterest"`
	PlannedPurchaseQuantity *int             `json:"plannedPurchaseQuantity"`
	Status                  string           `json:"status" gorm:"size:100;not null;check:status IN ('New','Contacted','Quoted','Negotiation','Won','Lost')" validate:"required,oneof=New Contacted Quoted Negotiation Won Lost"`
	CreatedDate             time.Time        `json:"createdDate" gorm:"not null"`
	AgingDays               int              `json:"agingDays" gorm:"default:0"`
	AgingBucket             string           `json:"agingBucket" gorm:"size:50;check:aging_bucket IN ('Fresh','Warm','At Risk','Critical')"`
	LastFollowUp            *time.Time       `json:"lastFollowUp"`
	NextFollowUp            *time.Time       `json:"nextFollowUp"`
	AssignedTo              string           `json:"assignedTo" gorm:"not null" validate:"required"`
	EstimatedValue          *decimal.Decimal `json:"estimatedValue" gorm:"type:decimal(12,2)"`
	Remarks                 string           `json:"remarks" gorm:"type:text"`
	CreatedAt               time.Time        `json:"createdAt"`
	UpdatedAt               time.Time        `json:"updatedAt"`

	Call *CallLog `json:"-" gorm:"foreignKey:CallID;constraint:OnDelete:SET NULL"`
}

const (
	LeadNew         = "New"
	LeadContacted   = "Contacted"
	LeadQuoted      = "Quoted"
	LeadNegotiation = "Negotiation"
	LeadWon         = "Won"
	LeadLost        = "Lost"

	BucketFresh    = "Fresh"
	BucketWarm     = "Warm"
	BucketAtRisk   = "At Risk"
	BucketCritical = "Critical"
)

// LeadBuckets in escalating urgency order.
var LeadBuckets = []string{BucketFresh, BucketWarm, BucketAtRisk, BucketCritical}

// Open reports whether the lead is still being worked (neither won nor lost).
func (l *Lead) Open() bool {
	return l.Status != LeadWon && l.Status != LeadLost
}

// Recompute refreshes the derived aging fields from the creation date.
func (l *Lead) Recompute(now time.Time) {
	l.AgingDays = AgingDays(l.CreatedDate, now)
	l.AgingBucket = AgingBucketFor(l.AgingDays)
}
