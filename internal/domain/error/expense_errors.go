// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidExpenseAmount is returned when the expense amount is not positive.
	ErrInvalidExpenseAmount = errors.New("expense amount must be positive")

	// ErrCategoryNotFoundForExpense is returned when the referenced category does not exist.
	ErrCategoryNotFoundForExpense = errors.New("category not found")

	// ErrInvalidPagination is returned when skip or limit is out of bounds.
	ErrInvalidPagination = errors.New("invalid pagination parameters")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is the error class and YYYY is the specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidExpenseAmount ExpenseErrorCode = "EXP-010001"
	ErrCodeExpenseNotFound      ExpenseErrorCode = "EXP-010002"
	ErrCodeExpCategoryNotFound  ExpenseErrorCode = "EXP-010003"
	ErrCodeInvalidPagination    ExpenseErrorCode = "EXP-010004"
	ErrCodeMissingExpenseFields ExpenseErrorCode = "EXP-010005"

	// Configuration errors (03XXXX)
	ErrCodeExpUncategorizedMissing ExpenseErrorCode = "EXP-030001"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
