package fields

import (
	"errors"
	"testing"

	"crm_backend/internal/apperrors"
)

func TestSanitizeMapsAllowedFields(t *testing.T) {
	cols, err := Sanitize(EntityLeads, map[string]interface{}{
		"customerName": "Kumar",
		"nextFollowUp": "2024-12-16",
		"status":       "Quoted",
	})
	if err != nil {
		t.Fatalf("Sanitize returned error: %v", err)
	}

	if cols["customer_name"] != "Kumar" {
		t.Errorf("customer_name = %v", cols["customer_name"])
	}
	if cols["next_follow_up"] != "2024-12-16" {
		t.Errorf("next_follow_up = %v", cols["next_follow_up"])
	}
	if cols["status"] != "Quoted" {
		t.Errorf("status = %v", cols["status"])
	}
}

func TestSanitizeDropsUnknownAndDerivedFields(t *testing.T) {
	cols, err := Sanitize(EntityLeads, map[string]interface{}{
		"remarks":     "updated",
		"agingDays":   99,
		"agingBucket": "Fresh",
		"bogus":       true,
	})
	if err != nil {
		t.Fatalf("Sanitize returned error: %v", err)
	}

	if len(cols) != 1 {
		t.Fatalf("expected only remarks to survive, got %v", cols)
	}
	if _, ok := cols["aging_days"]; ok {
		t.Error("derived field agingDays must not be updatable")
	}
}

func TestSanitizeNeverUpdatesID(t *testing.T) {
	cols, err := Sanitize(EntityProducts, map[string]interface{}{
		"id":   "P999",
		"name": "Ridge Cap",
	})
	if err != nil {
		t.Fatalf("Sanitize returned error: %v", err)
	}
	if _, ok := cols["id"]; ok {
		t.Error("id must never appear in the update set")
	}
	if cols["name"] != "Ridge Cap" {
		t.Errorf("name = %v", cols["name"])
	}
}

func TestSanitizeRejectsEmptyResult(t *testing.T) {
	_, err := Sanitize(EntityOrders, map[string]interface{}{
		"id":        "ORD-1",
		"agingDays": 3,
	})
	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSanitizeProductStatusNotSettable(t *testing.T) {
	_, err := Sanitize(EntityProducts, map[string]interface{}{
		"status": "Active",
	})
	if err == nil {
		t.Fatal("product status is derived and must not be directly settable")
	}
}
