package transfer

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// memCategoryRepo is an in-memory CategoryRepository fake.
type memCategoryRepo struct {
	categories []*entity.Category
	findErr    error
}

func (r *memCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.categories = append(r.categories, category)
	return nil
}

func (r *memCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memCategoryRepo) FindByName(_ context.Context, name string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memCategoryRepo) FindAll(_ context.Context, skip, limit int) ([]*entity.Category, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	if skip >= len(r.categories) {
		return nil, nil
	}
	end := len(r.categories)
	if limit > 0 && skip+limit < end {
		end = skip + limit
	}
	return r.categories[skip:end], nil
}

func (r *memCategoryRepo) Update(_ context.Context, _ *entity.Category) error { return nil }

func (r *memCategoryRepo) DeleteAndReassign(_ context.Context, _, _ uuid.UUID) error { return nil }

func (r *memCategoryRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	c, _ := r.FindByName(context.Background(), name)
	return c != nil, nil
}

// recordingImportRepo captures what ImportAll was asked to persist.
type recordingImportRepo struct {
	categories []*entity.Category
	expenses   []*entity.Expense
	calls      int
	err        error
}

func (r *recordingImportRepo) ImportAll(_ context.Context, categories []*entity.Category, expenses []*entity.Expense) error {
	r.calls++
	if r.err != nil {
		return r.err
	}
	r.categories = categories
	r.expenses = expenses
	return nil
}

// stubExpenseRepo serves a fixed set of expenses with category names.
type stubExpenseRepo struct {
	expenses []*entity.ExpenseWithCategory
	err      error
}

func (r *stubExpenseRepo) Create(_ context.Context, _ *entity.Expense) error { return nil }

func (r *stubExpenseRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Expense, error) {
	return nil, nil
}

func (r *stubExpenseRepo) FindPage(_ context.Context, _, _ int) ([]*entity.Expense, error) {
	return nil, nil
}

func (r *stubExpenseRepo) FindAllWithCategory(_ context.Context) ([]*entity.ExpenseWithCategory, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.expenses, nil
}

func (r *stubExpenseRepo) Update(_ context.Context, _ *entity.Expense) error { return nil }

func (r *stubExpenseRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }
