package category

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// memCategoryRepo is an in-memory CategoryRepository used across the package
// tests. Reassignments are tracked instead of applied since expenses live in
// another repository.
type memCategoryRepo struct {
	categories    []*entity.Category
	reassignments map[uuid.UUID]uuid.UUID
	updateCalls   int
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{
		reassignments: make(map[uuid.UUID]uuid.UUID),
	}
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
	if skip >= len(r.categories) {
		return nil, nil
	}
	end := len(r.categories)
	if limit > 0 && skip+limit < end {
		end = skip + limit
	}
	return r.categories[skip:end], nil
}

func (r *memCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	r.updateCalls++
	for i, c := range r.categories {
		if c.ID == category.ID {
			r.categories[i] = category
			return nil
		}
	}
	return domainerror.ErrCategoryNotFound
}

func (r *memCategoryRepo) DeleteAndReassign(ctx context.Context, id, reassignTo uuid.UUID) error {
	for i, c := range r.categories {
		if c.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			r.reassignments[id] = reassignTo
			return nil
		}
	}
	return domainerror.ErrCategoryNotFound
}

func (r *memCategoryRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}
