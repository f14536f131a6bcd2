package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput matches every ValidationError.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoSellerSelected is returned when a product is selected while the
	// console is still browsing sellers.
	ErrNoSellerSelected = errors.New("no seller selected")
)

// ValidationError reports a form field that violates a client-side
// constraint. It is raised before any request reaches the API.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is makes errors.Is(err, ErrInvalidInput) hold for validation errors.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
