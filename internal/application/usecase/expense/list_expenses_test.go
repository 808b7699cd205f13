package expense

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

func seedExpenses(n int) *memExpenseRepo {
	repo := &memExpenseRepo{}
	category := entity.NewCategory("Misc", "", false)
	for i := 0; i < n; i++ {
		repo.expenses = append(repo.expenses, entity.NewExpense(
			decimal.NewFromInt(int64(i+1)),
			fmt.Sprintf("expense %d", i),
			time.Now(),
			category.ID,
			nil,
			false,
		))
	}
	return repo
}

func TestListExpenses_Pagination(t *testing.T) {
	repo := seedExpenses(10)
	uc := NewListExpensesUseCase(repo)

	tests := []struct {
		name  string
		input ListExpensesInput
		want  int
	}{
		{name: "default limit covers all", input: ListExpensesInput{Limit: DefaultListLimit}, want: 10},
		{name: "limit caps the page", input: ListExpensesInput{Limit: 3}, want: 3},
		{name: "skip advances the page", input: ListExpensesInput{Skip: 8, Limit: 5}, want: 2},
		{name: "skip past the end", input: ListExpensesInput{Skip: 100, Limit: DefaultListLimit}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := uc.Execute(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(output.Expenses) != tt.want {
				t.Errorf("expected %d expenses, got %d", tt.want, len(output.Expenses))
			}
		})
	}
}

func TestListExpenses_PreservesInsertionOrder(t *testing.T) {
	repo := seedExpenses(3)
	uc := NewListExpensesUseCase(repo)

	output, err := uc.Execute(context.Background(), ListExpensesInput{Limit: DefaultListLimit})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, e := range output.Expenses {
		want := fmt.Sprintf("expense %d", i)
		if e.Description != want {
			t.Errorf("expected %q at index %d, got %q", want, i, e.Description)
		}
	}
}

func TestListExpenses_InvalidPagination(t *testing.T) {
	repo := seedExpenses(3)
	uc := NewListExpensesUseCase(repo)

	tests := []struct {
		name  string
		input ListExpensesInput
	}{
		{name: "negative skip", input: ListExpensesInput{Skip: -1, Limit: DefaultListLimit}},
		{name: "zero limit", input: ListExpensesInput{Limit: 0}},
		{name: "negative limit", input: ListExpensesInput{Limit: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			if !errors.Is(err, domainerror.ErrInvalidPagination) {
				t.Errorf("expected pagination error, got %v", err)
			}
		})
	}
}
