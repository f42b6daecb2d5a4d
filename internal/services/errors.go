// internal/services/errors.go
package services

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrNoStock           = errors.New("product has no stock available")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrEmptyInventory    = errors.New("inventory is empty")
	ErrNoSales           = errors.New("no sales registered yet")
)

// StockError carries the quantities behind ErrInsufficientStock.
type StockError struct {
	Available int `json:"available"`
	Requested int `json:"requested"`
}

func (e *StockError) Error() string {
	return fmt.Sprintf("%s: available %d, requested %d", ErrInsufficientStock, e.Available, e.Requested)
}

func (e *StockError) Unwrap() error {
	return ErrInsufficientStock
}

// Reasons a partial update field can be rejected for.
const (
	ReasonNegative = "negative"
	ReasonBlank    = "blank"
	ReasonTooLarge = "too_large"
)

// FieldError describes one field a partial update skipped.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e FieldError) Unwrap() error {
	return ErrInvalidInput
}
