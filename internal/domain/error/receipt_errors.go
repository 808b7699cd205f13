// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Receipt domain errors.
var (
	// ErrNotAnImage is returned when the uploaded file is not an image.
	ErrNotAnImage = errors.New("file must be an image")

	// ErrEmptyReceiptFile is returned when the uploaded file has no content.
	ErrEmptyReceiptFile = errors.New("receipt file is empty")

	// ErrReceiptStorageFailed is returned when the receipt file cannot be written.
	ErrReceiptStorageFailed = errors.New("failed to store receipt file")

	// ErrTextRecognitionFailed is returned when the external text-recognition
	// call fails. Unmatched extraction fields are not an error; only the call
	// itself failing is.
	ErrTextRecognitionFailed = errors.New("text recognition failed")
)

// ReceiptErrorCode defines error codes for receipt errors.
type ReceiptErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNotAnImage       ReceiptErrorCode = "RCP-010001"
	ErrCodeEmptyReceiptFile ReceiptErrorCode = "RCP-010002"

	// External-processing errors (04XXXX)
	ErrCodeReceiptStorageFailed  ReceiptErrorCode = "RCP-040001"
	ErrCodeTextRecognitionFailed ReceiptErrorCode = "RCP-040002"
)

// ReceiptError represents a receipt error with code and message.
type ReceiptError struct {
	Code    ReceiptErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReceiptError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReceiptError) Unwrap() error {
	return e.Err
}

// NewReceiptError creates a new ReceiptError with the given code and message.
func NewReceiptError(code ReceiptErrorCode, message string, err error) *ReceiptError {
	return &ReceiptError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
