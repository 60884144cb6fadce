package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is the root of every missing-row error.
	ErrNotFound = errors.New("not found")

	// ErrCategoryNotFound is returned when no category matches an id.
	ErrCategoryNotFound = fmt.Errorf("category %w", ErrNotFound)

	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = fmt.Errorf("product %w", ErrNotFound)

	// ErrConstraintViolation is the root of every store constraint failure.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrDuplicateCategoryName is returned when a category name is already taken.
	ErrDuplicateCategoryName = fmt.Errorf("category name already exists: %w", ErrConstraintViolation)

	// ErrInvalidCategoryReference is returned when a product points at a missing category.
	ErrInvalidCategoryReference = fmt.Errorf("category reference is invalid: %w", ErrConstraintViolation)

	// ErrRequiredField is returned when the store rejects a null required column.
	ErrRequiredField = fmt.Errorf("required field missing: %w", ErrConstraintViolation)

	// ErrValidation marks malformed caller input.
	ErrValidation = errors.New("invalid input")

	// ErrValueOutOfRange is returned when the store rejects a value that does not fit its column.
	ErrValueOutOfRange = fmt.Errorf("value does not fit the column: %w", ErrValidation)

	// ErrMissingCategory is returned when a product without a loaded category is mapped.
	ErrMissingCategory = errors.New("product has no category loaded")
)

// ValidationError describes a single rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
