package expense

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// memExpenseRepo is an in-memory ExpenseRepository for package tests.
type memExpenseRepo struct {
	expenses []*entity.Expense
}

func (r *memExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error {
	r.expenses = append(r.expenses, expense)
	return nil
}

func (r *memExpenseRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	for _, e := range r.expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domainerror.ErrExpenseNotFound
}

func (r *memExpenseRepo) FindPage(ctx context.Context, skip, limit int) ([]*entity.Expense, error) {
	if skip >= len(r.expenses) {
		return nil, nil
	}
	end := len(r.expenses)
	if limit > 0 && skip+limit < end {
		end = skip + limit
	}
	return r.expenses[skip:end], nil
}

func (r *memExpenseRepo) FindAllWithCategory(ctx context.Context) ([]*entity.ExpenseWithCategory, error) {
	result := make([]*entity.ExpenseWithCategory, 0, len(r.expenses))
	for _, e := range r.expenses {
		result = append(result, &entity.ExpenseWithCategory{Expense: e})
	}
	return result, nil
}

func (r *memExpenseRepo) Update(ctx context.Context, expense *entity.Expense) error {
	for i, e := range r.expenses {
		if e.ID == expense.ID {
			r.expenses[i] = expense
			return nil
		}
	}
	return domainerror.ErrExpenseNotFound
}

func (r *memExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, e := range r.expenses {
		if e.ID == id {
			r.expenses = append(r.expenses[:i], r.expenses[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrExpenseNotFound
}

// memCategoryRepo is a minimal in-memory CategoryRepository for expense tests.
type memCategoryRepo struct {
	categories []*entity.Category
}

func (r *memCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	r.categories = append(r.categories, category)
	return nil
}

func (r *memCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (r *memCategoryRepo) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memCategoryRepo) FindAll(ctx context.Context, skip, limit int) ([]*entity.Category, error) {
	return r.categories, nil
}

func (r *memCategoryRepo) Update(ctx context.Context, category *entity.Category) error { return nil }

func (r *memCategoryRepo) DeleteAndReassign(ctx context.Context, id, reassignTo uuid.UUID) error {
	return nil
}

func (r *memCategoryRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}
