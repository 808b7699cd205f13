// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// DefaultListLimit is the page size callers apply when no limit is given.
// The use case itself requires an explicit positive limit so that a literal
// limit=0 is rejected instead of silently widened.
const DefaultListLimit = 100

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	Skip  int
	Limit int
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
}

// ListExpensesUseCase handles expense listing logic.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute retrieves a page of expenses in insertion order.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	if input.Skip < 0 {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidPagination,
			"skip must not be negative",
			domainerror.ErrInvalidPagination,
		)
	}
	if input.Limit <= 0 {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidPagination,
			"limit must be greater than zero",
			domainerror.ErrInvalidPagination,
		)
	}

	expenses, err := uc.expenseRepo.FindPage(ctx, input.Skip, input.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return &ListExpensesOutput{
		Expenses: expenses,
	}, nil
}
