package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
	Date        *time.Time      `json:"date,omitempty"`
	CategoryID  *string         `json:"categoryId,omitempty"`
}

// UpdateExpenseRequest represents the request body for expense update.
type UpdateExpenseRequest struct {
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description *string          `json:"description,omitempty"`
	Date        *time.Time       `json:"date,omitempty"`
	CategoryID  *string          `json:"categoryId,omitempty"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	CategoryID  string          `json:"categoryId"`
	ReceiptPath *string         `json:"receiptPath,omitempty"`
	Pending     bool            `json:"pending"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(exp *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          exp.ID.String(),
		Amount:      exp.Amount,
		Description: exp.Description,
		Date:        exp.Date,
		CategoryID:  exp.CategoryID.String(),
		ReceiptPath: exp.ReceiptPath,
		Pending:     exp.Pending,
		CreatedAt:   exp.CreatedAt,
		UpdatedAt:   exp.UpdatedAt,
	}
}

// ToExpenseListResponse converts a list of expenses to an ExpenseListResponse.
func ToExpenseListResponse(expenses []*entity.Expense) ExpenseListResponse {
	responses := make([]ExpenseResponse, 0, len(expenses))
	for _, exp := range expenses {
		responses = append(responses, ToExpenseResponse(exp))
	}
	return ExpenseListResponse{Expenses: responses}
}
