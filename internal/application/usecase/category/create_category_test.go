package category

import (
	"context"
	"errors"
	"strings"
	"testing"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

func TestCreateCategory(t *testing.T) {
	repo := newMemCategoryRepo()
	uc := NewCreateCategoryUseCase(repo, nil)

	output, err := uc.Execute(context.Background(), CreateCategoryInput{
		Name:        "Groceries",
		Description: "Food and household supplies",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Category.Name != "Groceries" {
		t.Errorf("expected name Groceries, got %q", output.Category.Name)
	}
	if output.Category.IsProtected {
		t.Error("user-created categories must not be protected")
	}
	if output.Category.ID.String() == "" {
		t.Error("expected a generated ID")
	}
}

func TestCreateCategory_Validation(t *testing.T) {
	tests := []struct {
		name     string
		input    CreateCategoryInput
		sentinel error
	}{
		{
			name:     "empty name",
			input:    CreateCategoryInput{Name: ""},
			sentinel: domainerror.ErrCategoryNameEmpty,
		},
		{
			name:     "name too long",
			input:    CreateCategoryInput{Name: strings.Repeat("x", MaxCategoryNameLength+1)},
			sentinel: domainerror.ErrCategoryNameTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemCategoryRepo()
			uc := NewCreateCategoryUseCase(repo, nil)

			_, err := uc.Execute(context.Background(), tt.input)
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("expected %v, got %v", tt.sentinel, err)
			}
			if len(repo.categories) != 0 {
				t.Error("expected nothing persisted")
			}
		})
	}
}

func TestCreateCategory_DuplicateName(t *testing.T) {
	repo := newMemCategoryRepo()
	uc := NewCreateCategoryUseCase(repo, nil)

	if _, err := uc.Execute(context.Background(), CreateCategoryInput{Name: "Groceries"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := uc.Execute(context.Background(), CreateCategoryInput{Name: "Groceries"})
	if !errors.Is(err, domainerror.ErrCategoryNameExists) {
		t.Errorf("expected duplicate-name error, got %v", err)
	}
}

func TestCreateCategory_NameAtMaxLength(t *testing.T) {
	repo := newMemCategoryRepo()
	uc := NewCreateCategoryUseCase(repo, nil)

	_, err := uc.Execute(context.Background(), CreateCategoryInput{
		Name: strings.Repeat("x", MaxCategoryNameLength),
	})
	if err != nil {
		t.Errorf("expected max-length name to be accepted, got %v", err)
	}
}
