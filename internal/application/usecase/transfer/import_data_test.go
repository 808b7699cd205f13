package transfer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

func seededCategoryRepo() (*memCategoryRepo, *entity.Category) {
	uncategorized := entity.NewCategory(entity.UncategorizedName, "Default category", true)
	repo := &memCategoryRepo{categories: []*entity.Category{uncategorized}}
	return repo, uncategorized
}

func TestImportData_CreatesCategoriesAndExpenses(t *testing.T) {
	categoryRepo, _ := seededCategoryRepo()
	importRepo := &recordingImportRepo{}
	useCase := NewImportDataUseCase(categoryRepo, importRepo, nil)

	output, err := useCase.Execute(context.Background(), ImportDataInput{
		Categories: []ImportCategory{
			{Name: "Dining", Description: "Restaurants"},
			{Name: "Travel"},
		},
		Expenses: []ImportExpense{
			{Amount: decimal.NewFromFloat(42.50), Description: "Lunch", Date: time.Now(), Category: "Dining"},
			{Amount: decimal.NewFromInt(300), Description: "Flight", Date: time.Now(), Category: "Travel"},
		},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.CategoriesCreated != 2 {
		t.Errorf("CategoriesCreated = %d, want 2", output.CategoriesCreated)
	}
	if output.ExpensesCreated != 2 {
		t.Errorf("ExpensesCreated = %d, want 2", output.ExpensesCreated)
	}
	if importRepo.calls != 1 {
		t.Fatalf("ImportAll calls = %d, want 1", importRepo.calls)
	}

	var dining *entity.Category
	for _, c := range importRepo.categories {
		if c.Name == "Dining" {
			dining = c
		}
	}
	if dining == nil {
		t.Fatal("expected Dining among the persisted categories")
	}
	if dining.Description != "Restaurants" {
		t.Errorf("Dining description = %q, want %q", dining.Description, "Restaurants")
	}
	if importRepo.expenses[0].CategoryID != dining.ID {
		t.Errorf("first expense category = %s, want the imported Dining id %s", importRepo.expenses[0].CategoryID, dining.ID)
	}
}

func TestImportData_SkipsExistingCategoryNames(t *testing.T) {
	categoryRepo, _ := seededCategoryRepo()
	existing := entity.NewCategory("Dining", "", false)
	categoryRepo.categories = append(categoryRepo.categories, existing)
	importRepo := &recordingImportRepo{}
	useCase := NewImportDataUseCase(categoryRepo, importRepo, nil)

	output, err := useCase.Execute(context.Background(), ImportDataInput{
		Categories: []ImportCategory{{Name: "Dining"}, {Name: entity.UncategorizedName}},
		Expenses: []ImportExpense{
			{Amount: decimal.NewFromInt(10), Category: "Dining"},
		},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.CategoriesCreated != 0 {
		t.Errorf("CategoriesCreated = %d, want 0", output.CategoriesCreated)
	}
	if got := importRepo.expenses[0].CategoryID; got != existing.ID {
		t.Errorf("expense category = %s, want existing Dining id %s", got, existing.ID)
	}
}

func TestImportData_UnknownCategoryFallsBackToUncategorized(t *testing.T) {
	categoryRepo, uncategorized := seededCategoryRepo()
	importRepo := &recordingImportRepo{}
	useCase := NewImportDataUseCase(categoryRepo, importRepo, nil)

	_, err := useCase.Execute(context.Background(), ImportDataInput{
		Expenses: []ImportExpense{
			{Amount: decimal.NewFromInt(25), Category: "NoSuchCategory"},
		},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if got := importRepo.expenses[0].CategoryID; got != uncategorized.ID {
		t.Errorf("expense category = %s, want Uncategorized id %s", got, uncategorized.ID)
	}
}

func TestImportData_Validation(t *testing.T) {
	tests := []struct {
		name     string
		input    ImportDataInput
		wantCode string
	}{
		{
			name: "empty category name",
			input: ImportDataInput{
				Categories: []ImportCategory{{Name: ""}},
			},
			wantCode: string(domainerror.ErrCodeCategoryNameEmpty),
		},
		{
			name: "zero amount",
			input: ImportDataInput{
				Expenses: []ImportExpense{{Amount: decimal.Zero, Category: entity.UncategorizedName}},
			},
			wantCode: string(domainerror.ErrCodeInvalidExpenseAmount),
		},
		{
			name: "negative amount",
			input: ImportDataInput{
				Expenses: []ImportExpense{{Amount: decimal.NewFromInt(-5), Category: entity.UncategorizedName}},
			},
			wantCode: string(domainerror.ErrCodeInvalidExpenseAmount),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			categoryRepo, _ := seededCategoryRepo()
			importRepo := &recordingImportRepo{}
			useCase := NewImportDataUseCase(categoryRepo, importRepo, nil)

			_, err := useCase.Execute(context.Background(), tt.input)
			if err == nil {
				t.Fatal("Execute() expected error, got nil")
			}
			if importRepo.calls != 0 {
				t.Errorf("ImportAll calls = %d, want 0 on validation failure", importRepo.calls)
			}

			code := errorCode(t, err)
			if code != tt.wantCode {
				t.Errorf("error code = %s, want %s", code, tt.wantCode)
			}
		})
	}
}

func TestImportData_MissingUncategorized(t *testing.T) {
	categoryRepo := &memCategoryRepo{}
	importRepo := &recordingImportRepo{}
	useCase := NewImportDataUseCase(categoryRepo, importRepo, nil)

	_, err := useCase.Execute(context.Background(), ImportDataInput{
		Expenses: []ImportExpense{{Amount: decimal.NewFromInt(10), Category: "Dining"}},
	})
	if err == nil {
		t.Fatal("Execute() expected error, got nil")
	}

	var catErr *domainerror.CategoryError
	if !errors.As(err, &catErr) || catErr.Code != domainerror.ErrCodeUncategorizedMissing {
		t.Errorf("error = %v, want CategoryError with code %s", err, domainerror.ErrCodeUncategorizedMissing)
	}
}

func TestImportData_RepositoryFailureRollsBack(t *testing.T) {
	categoryRepo, _ := seededCategoryRepo()
	importRepo := &recordingImportRepo{err: errors.New("db down")}
	useCase := NewImportDataUseCase(categoryRepo, importRepo, nil)

	_, err := useCase.Execute(context.Background(), ImportDataInput{
		Expenses: []ImportExpense{{Amount: decimal.NewFromInt(10), Category: entity.UncategorizedName}},
	})
	if err == nil {
		t.Fatal("Execute() expected error, got nil")
	}
}

func errorCode(t *testing.T, err error) string {
	t.Helper()

	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		return string(catErr.Code)
	}
	var expErr *domainerror.ExpenseError
	if errors.As(err, &expErr) {
		return string(expErr.Code)
	}
	t.Fatalf("error %v carries no domain code", err)
	return ""
}
