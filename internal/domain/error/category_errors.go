// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameExists is returned when attempting to create a category with an existing name.
	ErrCategoryNameExists = errors.New("category name already exists")

	// ErrCategoryNameEmpty is returned when the category name is empty.
	ErrCategoryNameEmpty = errors.New("category name cannot be empty")

	// ErrCategoryNameTooLong is returned when the category name exceeds the maximum length.
	ErrCategoryNameTooLong = errors.New("category name too long")

	// ErrCategoryProtected is returned when a mutation or deletion is attempted on a protected category.
	ErrCategoryProtected = errors.New("category is protected")

	// ErrUncategorizedMissing is returned when the Uncategorized category is absent
	// while it is required. Unreachable when the bootstrap invariant holds, but
	// handled defensively.
	ErrUncategorizedMissing = errors.New("uncategorized category is missing")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is the error class and YYYY is the specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNameEmpty   CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNameTooLong CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryNameExists  CategoryErrorCode = "CAT-010003"
	ErrCodeCategoryNotFound    CategoryErrorCode = "CAT-010004"

	// Protected-resource errors (02XXXX)
	ErrCodeCategoryProtected CategoryErrorCode = "CAT-020001"

	// Configuration errors (03XXXX)
	ErrCodeUncategorizedMissing CategoryErrorCode = "CAT-030001"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
