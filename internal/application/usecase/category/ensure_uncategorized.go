// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"time"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// EnsureUncategorizedOutput represents the output of the bootstrap step.
type EnsureUncategorizedOutput struct {
	Category *entity.Category
	Created  bool
}

// EnsureUncategorizedUseCase guarantees the protected Uncategorized category
// exists. Idempotent: safe to call repeatedly, invoked once before serving.
type EnsureUncategorizedUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewEnsureUncategorizedUseCase creates a new EnsureUncategorizedUseCase instance.
func NewEnsureUncategorizedUseCase(categoryRepo adapter.CategoryRepository) *EnsureUncategorizedUseCase {
	return &EnsureUncategorizedUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute creates the Uncategorized category if absent, and restores its
// protection flag if present but unprotected.
func (uc *EnsureUncategorizedUseCase) Execute(ctx context.Context) (*EnsureUncategorizedOutput, error) {
	existing, err := uc.categoryRepo.FindByName(ctx, entity.UncategorizedName)
	if err != nil {
		return nil, fmt.Errorf("failed to look up uncategorized category: %w", err)
	}

	if existing == nil {
		created := entity.NewCategory(
			entity.UncategorizedName,
			"Default category for uncategorized expenses",
			true,
		)
		if err := uc.categoryRepo.Create(ctx, created); err != nil {
			return nil, fmt.Errorf("failed to create uncategorized category: %w", err)
		}
		return &EnsureUncategorizedOutput{Category: created, Created: true}, nil
	}

	if !existing.IsProtected {
		existing.IsProtected = true
		existing.UpdatedAt = time.Now().UTC()
		if err := uc.categoryRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to restore uncategorized protection: %w", err)
		}
	}

	return &EnsureUncategorizedOutput{Category: existing, Created: false}, nil
}
