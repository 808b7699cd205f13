// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	Amount      decimal.Decimal
	Description string
	Date        time.Time  // Zero value defaults to creation time
	CategoryID  *uuid.UUID // Nil resolves to the Uncategorized category
	ReceiptPath *string
	Pending     bool
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
	summaryCache adapter.SummaryCache
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
	summaryCache adapter.SummaryCache,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		summaryCache: summaryCache,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	categoryID, err := uc.resolveCategory(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	expense := entity.NewExpense(
		input.Amount,
		input.Description,
		input.Date,
		categoryID,
		input.ReceiptPath,
		input.Pending,
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	invalidateSummaries(ctx, uc.summaryCache)

	return &CreateExpenseOutput{
		Expense: expense,
	}, nil
}

// resolveCategory returns the category to attach the expense to: the given one
// when present, Uncategorized otherwise.
func (uc *CreateExpenseUseCase) resolveCategory(ctx context.Context, categoryID *uuid.UUID) (uuid.UUID, error) {
	if categoryID != nil {
		if _, err := uc.categoryRepo.FindByID(ctx, *categoryID); err != nil {
			if errors.Is(err, domainerror.ErrCategoryNotFound) {
				return uuid.Nil, domainerror.NewExpenseError(
					domainerror.ErrCodeExpCategoryNotFound,
					"category not found",
					domainerror.ErrCategoryNotFoundForExpense,
				)
			}
			return uuid.Nil, fmt.Errorf("failed to find category: %w", err)
		}
		return *categoryID, nil
	}

	uncategorized, err := uc.categoryRepo.FindByName(ctx, entity.UncategorizedName)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to look up uncategorized category: %w", err)
	}
	if uncategorized == nil {
		return uuid.Nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpUncategorizedMissing,
			"uncategorized category is missing",
			domainerror.ErrUncategorizedMissing,
		)
	}
	return uncategorized.ID, nil
}
