// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a single expense record in the Expense Tracker system.
type Expense struct {
	ID          uuid.UUID
	Amount      decimal.Decimal // Always positive
	Description string
	Date        time.Time
	CategoryID  uuid.UUID // Never nil at rest; defaults to the Uncategorized category
	ReceiptPath *string   // Optional path to a stored receipt image
	Pending     bool      // True when created from a receipt scan whose total could not be read
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates a new Expense entity. The date defaults to the creation
// time when the zero value is given.
func NewExpense(
	amount decimal.Decimal,
	description string,
	date time.Time,
	categoryID uuid.UUID,
	receiptPath *string,
	pending bool,
) *Expense {
	now := time.Now().UTC()
	if date.IsZero() {
		date = now
	}

	return &Expense{
		ID:          uuid.New(),
		Amount:      amount,
		Description: description,
		Date:        date,
		CategoryID:  categoryID,
		ReceiptPath: receiptPath,
		Pending:     pending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ExpenseWithCategory represents an expense with its resolved category.
type ExpenseWithCategory struct {
	Expense      *Expense
	CategoryName string
}
