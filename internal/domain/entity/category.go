// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UncategorizedName is the name of the sentinel category that absorbs expenses
// whose category is unspecified or was deleted. It is always protected.
const UncategorizedName = "Uncategorized"

// Category represents an expense category in the Expense Tracker system.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	IsProtected bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(name, description string, isProtected bool) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		IsProtected: isProtected,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
