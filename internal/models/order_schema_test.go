package models

import (
	"sync"
	"testing"

	"gorm.io/gorm/schema"
)

// The delete contract depends on the DDL gorm emits: order lines must
// go with their order, and a product referenced by lines must refuse
// deletion. Parsing the schema pins the constraint clauses down without
// a database.
func TestOrderLinesCascadeOnDelete(t *testing.T) {
	s, err := schema.Parse(&Order{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatalf("failed to parse order schema: %v", err)
	}
	rel, ok := s.Relationships.Relations["Products"]
	if !ok {
		t.Fatal("order has no Products relation")
	}
	constraint := rel.ParseConstraint()
	if constraint == nil {
		t.Fatal("order lines relation emits no foreign key constraint")
	}
	if constraint.OnDelete != "CASCADE" {
		t.Errorf("order_products FK OnDelete = %q, want CASCADE", constraint.OnDelete)
	}
}

func TestOrderLineProductRestrictsDelete(t *testing.T) {
	s, err := schema.Parse(&OrderProduct{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatalf("failed to parse order line schema: %v", err)
	}
	rel, ok := s.Relationships.Relations["Product"]
	if !ok {
		t.Fatal("order line has no Product relation")
	}
	constraint := rel.ParseConstraint()
	if constraint == nil {
		t.Fatal("order line product relation emits no foreign key constraint")
	}
	if constraint.OnDelete != "RESTRICT" {
		t.Errorf("product FK OnDelete = %q, want RESTRICT", constraint.OnDelete)
	}
}
