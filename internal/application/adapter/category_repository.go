// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByName retrieves a category by its exact (case-sensitive) name.
	// Returns nil without error when no category has that name.
	FindByName(ctx context.Context, name string) (*entity.Category, error)

	// FindAll retrieves a page of categories in insertion order.
	FindAll(ctx context.Context, skip, limit int) ([]*entity.Category, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// DeleteAndReassign reassigns every expense referencing the category to the
	// given replacement category, then deletes the category row. Both writes
	// happen inside a single transaction so no expense can transiently
	// reference a deleted category.
	DeleteAndReassign(ctx context.Context, id, reassignTo uuid.UUID) error

	// ExistsByName checks if a category with the given name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)
}
