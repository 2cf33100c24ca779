// Package apperrors defines the error taxonomy shared by services and
// handlers: validation (400), auth (401), not found (404), conflict and
// insufficient inventory (409). Anything else surfaces as a generic 500.
package apperrors

import "fmt"

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

type AuthError struct {
	Msg string
}

func (e *AuthError) Error() string { return e.Msg }

// ConflictError marks a request that is well-formed but collides with
// current state, such as deleting a product still referenced by orders.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

// InsufficientInventoryError reports the order line that lost the stock
// race; the whole order transaction is rolled back when it occurs.
type InsufficientInventoryError struct {
	ProductName string
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("Insufficient inventory for product %s", e.ProductName)
}
