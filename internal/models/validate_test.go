package models

import (
	"strings"
	"testing"
	"time"
)

func TestValidateAcceptsMultiWordEnums(t *testing.T) {
	log := CallLog{
		ID:           "CALL-1",
		CallDate:     time.Now(),
		CustomerName: "Kumar",
		Mobile:       "9876543210",
		QueryType:    QueryPriceInquiry,
		NextAction:   ActionLeadCreated,
		AssignedTo:   "Priya S.",
		Status:       CallOpen,
	}
	if err := Validate(&log); err != nil {
		t.Fatalf("valid call log rejected: %v", err)
	}
}

func TestValidateRejectsUnknownEnumValue(t *testing.T) {
	log := CallLog{
		ID:           "CALL-1",
		CallDate:     time.Now(),
		CustomerName: "Kumar",
		Mobile:       "9876543210",
		QueryType:    "Gossip",
		NextAction:   ActionNone,
		AssignedTo:   "Priya S.",
		Status:       CallOpen,
	}
	err := Validate(&log)
	if err == nil {
		t.Fatal("expected validation error for unknown query type")
	}
	if !strings.Contains(err.Error(), "QueryType") {
		t.Errorf("error should name the offending field, got %q", err.Error())
	}
}

func TestValidateRejectsMissingRequired(t *testing.T) {
	order := Order{
		ID:            "ORD-1",
		Status:        OrderReceived,
		PaymentStatus: PaymentPending,
	}
	if err := Validate(&order); err == nil {
		t.Fatal("expected validation error for missing customer fields")
	}
}
