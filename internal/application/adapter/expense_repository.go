// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindPage retrieves a page of expenses in insertion order.
	FindPage(ctx context.Context, skip, limit int) ([]*entity.Expense, error)

	// FindAllWithCategory retrieves every expense together with its resolved
	// category name, for in-memory aggregation.
	FindAllWithCategory(ctx context.Context) ([]*entity.ExpenseWithCategory, error)

	// Update updates an existing expense in the database.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
