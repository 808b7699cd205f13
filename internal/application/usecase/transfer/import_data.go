// Package transfer contains the bulk export/import use cases.
package transfer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// ImportCategory is one category record of an import payload.
type ImportCategory struct {
	Name        string
	Description string
}

// ImportExpense is one expense record of an import payload. The category is
// referenced by name, matching the export format.
type ImportExpense struct {
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	Category    string
	ReceiptPath *string
}

// ImportDataInput represents the input for a bulk import.
type ImportDataInput struct {
	Categories []ImportCategory
	Expenses   []ImportExpense
}

// ImportDataOutput represents the output of a bulk import.
type ImportDataOutput struct {
	CategoriesCreated int
	ExpensesCreated   int
}

// ImportDataUseCase loads a previously exported dataset. Categories land
// before the expenses referencing them; the whole import is one transaction
// and any invalid record rolls everything back.
type ImportDataUseCase struct {
	categoryRepo adapter.CategoryRepository
	importRepo   adapter.ImportRepository
	summaryCache adapter.SummaryCache
}

// NewImportDataUseCase creates a new ImportDataUseCase instance.
func NewImportDataUseCase(
	categoryRepo adapter.CategoryRepository,
	importRepo adapter.ImportRepository,
	summaryCache adapter.SummaryCache,
) *ImportDataUseCase {
	return &ImportDataUseCase{
		categoryRepo: categoryRepo,
		importRepo:   importRepo,
		summaryCache: summaryCache,
	}
}

// Execute performs the bulk import.
func (uc *ImportDataUseCase) Execute(ctx context.Context, input ImportDataInput) (*ImportDataOutput, error) {
	existing, err := uc.categoryRepo.FindAll(ctx, 0, exportPageLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	idsByName := make(map[string]*entity.Category, len(existing))
	for _, c := range existing {
		idsByName[c.Name] = c
	}

	var newCategories []*entity.Category
	for _, ic := range input.Categories {
		if ic.Name == "" {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNameEmpty,
				"imported category name is required",
				domainerror.ErrCategoryNameEmpty,
			)
		}
		if _, ok := idsByName[ic.Name]; ok {
			continue
		}
		created := entity.NewCategory(ic.Name, ic.Description, false)
		newCategories = append(newCategories, created)
		idsByName[ic.Name] = created
	}

	uncategorized, ok := idsByName[entity.UncategorizedName]
	if !ok {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeUncategorizedMissing,
			"uncategorized category is missing",
			domainerror.ErrUncategorizedMissing,
		)
	}

	expenses := make([]*entity.Expense, 0, len(input.Expenses))
	for _, ie := range input.Expenses {
		if !ie.Amount.IsPositive() {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseAmount,
				"imported expense amount must be greater than zero",
				domainerror.ErrInvalidExpenseAmount,
			)
		}
		category, ok := idsByName[ie.Category]
		if !ok {
			// Unknown names fall back to Uncategorized rather than failing
			// the whole import
			category = uncategorized
		}
		expenses = append(expenses, entity.NewExpense(
			ie.Amount,
			ie.Description,
			ie.Date,
			category.ID,
			ie.ReceiptPath,
			false,
		))
	}

	if err := uc.importRepo.ImportAll(ctx, newCategories, expenses); err != nil {
		return nil, fmt.Errorf("failed to import data: %w", err)
	}

	if uc.summaryCache != nil {
		if err := uc.summaryCache.Invalidate(ctx); err != nil {
			slog.Warn("failed to invalidate summary cache", "error", err)
		}
	}

	return &ImportDataOutput{
		CategoriesCreated: len(newCategories),
		ExpensesCreated:   len(expenses),
	}, nil
}
