// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Analytics domain errors.
var (
	// ErrInvalidTimeRange is returned when the time range selector is not one of
	// week, month or year.
	ErrInvalidTimeRange = errors.New("invalid time range")
)

// AnalyticsErrorCode defines error codes for analytics errors.
type AnalyticsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTimeRange AnalyticsErrorCode = "ANA-010001"
)

// AnalyticsError represents an analytics error with code and message.
type AnalyticsError struct {
	Code    AnalyticsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AnalyticsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// NewAnalyticsError creates a new AnalyticsError with the given code and message.
func NewAnalyticsError(code AnalyticsErrorCode, message string, err error) *AnalyticsError {
	return &AnalyticsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
