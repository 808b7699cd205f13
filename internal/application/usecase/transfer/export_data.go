// Package transfer contains the bulk export/import use cases.
package transfer

import (
	"context"
	"fmt"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// exportPageLimit bounds a single export read. The dataset is a single user's
// expense history, well under this.
const exportPageLimit = 100000

// ExportDataOutput represents the output of a full data export.
type ExportDataOutput struct {
	Categories []*entity.Category
	Expenses   []*entity.ExpenseWithCategory
}

// ExportDataUseCase dumps every category and expense for backup purposes.
type ExportDataUseCase struct {
	categoryRepo adapter.CategoryRepository
	expenseRepo  adapter.ExpenseRepository
}

// NewExportDataUseCase creates a new ExportDataUseCase instance.
func NewExportDataUseCase(categoryRepo adapter.CategoryRepository, expenseRepo adapter.ExpenseRepository) *ExportDataUseCase {
	return &ExportDataUseCase{
		categoryRepo: categoryRepo,
		expenseRepo:  expenseRepo,
	}
}

// Execute loads the full dataset.
func (uc *ExportDataUseCase) Execute(ctx context.Context) (*ExportDataOutput, error) {
	categories, err := uc.categoryRepo.FindAll(ctx, 0, exportPageLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to export categories: %w", err)
	}

	expenses, err := uc.expenseRepo.FindAllWithCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export expenses: %w", err)
	}

	return &ExportDataOutput{
		Categories: categories,
		Expenses:   expenses,
	}, nil
}
