package adapter

import (
	"context"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ImportRepository persists a bulk data import as one transactional unit.
// Either every record lands or none do.
type ImportRepository interface {
	ImportAll(ctx context.Context, categories []*entity.Category, expenses []*entity.Expense) error
}
