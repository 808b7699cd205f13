// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// importRepository implements the adapter.ImportRepository interface.
type importRepository struct {
	db *gorm.DB
}

// NewImportRepository creates a new import repository instance.
func NewImportRepository(db *gorm.DB) adapter.ImportRepository {
	return &importRepository{
		db: db,
	}
}

// ImportAll inserts categories then expenses inside one transaction. Any
// failure rolls back the whole import.
func (r *importRepository) ImportAll(ctx context.Context, categories []*entity.Category, expenses []*entity.Expense) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, category := range categories {
			if err := tx.Create(model.CategoryFromEntity(category)).Error; err != nil {
				return err
			}
		}
		for _, expense := range expenses {
			if err := tx.Create(model.ExpenseFromEntity(expense)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
