package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestOrderDelayed(t *testing.T) {
	now := time.Date(2024, 12, 15, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -2)
	future := now.AddDate(0, 0, 2)

	tests := []struct {
		name     string
		status   string
		expected time.Time
		want     bool
	}{
		{"in flight past expected", OrderInProduction, past, true},
		{"in flight before expected", OrderInProduction, future, false},
		{"received past expected", OrderReceived, past, true},
		{"out for delivery past expected", OrderOutForDelivery, past, true},
		{"delivered never delayed", OrderDelivered, past, false},
		{"cancelled never delayed", OrderCancelled, past, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Order{Status: tt.status, ExpectedDeliveryDate: tt.expected}
			if got := o.Delayed(now); got != tt.want {
				t.Errorf("Delayed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOrderRecomputeStampsDeliveryDateOnce(t *testing.T) {
	now := time.Date(2024, 12, 15, 12, 0, 0, 0, time.UTC)
	o := Order{
		Status:               OrderDelivered,
		OrderDate:            now.AddDate(0, 0, -3),
		ExpectedDeliveryDate: now.AddDate(0, 0, -1),
	}

	o.Recompute(now)

	if o.ActualDeliveryDate == nil || !o.ActualDeliveryDate.Equal(now) {
		t.Fatalf("ActualDeliveryDate = %v, want %v", o.ActualDeliveryDate, now)
	}
	if o.IsDelayed {
		t.Error("delivered order must not be flagged delayed")
	}
	if o.AgingDays != 3 {
		t.Errorf("AgingDays = %d, want 3", o.AgingDays)
	}

	// A later recompute must not move the stamp.
	later := now.Add(48 * time.Hour)
	o.Recompute(later)
	if !o.ActualDeliveryDate.Equal(now) {
		t.Errorf("ActualDeliveryDate moved to %v on recompute", o.ActualDeliveryDate)
	}
}

func TestLineTotal(t *testing.T) {
	got := LineTotal(500, decimal.NewFromInt(45))
	if !got.Equal(decimal.NewFromInt(22500)) {
		t.Errorf("LineTotal = %s, want 22500", got)
	}
}

func TestOrderTotal(t *testing.T) {
	lines := []OrderProduct{
		{TotalPrice: decimal.NewFromInt(22500)},
		{TotalPrice: decimal.NewFromFloat(1562.50)},
	}
	got := OrderTotal(lines)
	if !got.Equal(decimal.NewFromFloat(24062.50)) {
		t.Errorf("OrderTotal = %s, want 24062.50", got)
	}

	if !OrderTotal(nil).Equal(decimal.Zero) {
		t.Error("OrderTotal(nil) should be zero")
	}
}
