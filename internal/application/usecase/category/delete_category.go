// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID uuid.UUID
}

// DeleteCategoryOutput represents the output of category deletion.
type DeleteCategoryOutput struct {
	// ReassignedTo is the ID of the category that absorbed the deleted
	// category's expenses.
	ReassignedTo uuid.UUID
}

// DeleteCategoryUseCase handles category deletion logic. Deleting a category
// reassigns all of its expenses to Uncategorized before removing the row; the
// two writes are one transactional unit.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	summaryCache adapter.SummaryCache
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository, summaryCache adapter.SummaryCache) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		summaryCache: summaryCache,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if category.IsProtected {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryProtected,
			"protected categories cannot be deleted",
			domainerror.ErrCategoryProtected,
		)
	}

	uncategorized, err := uc.categoryRepo.FindByName(ctx, entity.UncategorizedName)
	if err != nil {
		return nil, fmt.Errorf("failed to look up uncategorized category: %w", err)
	}
	if uncategorized == nil {
		// Unreachable when the bootstrap invariant holds
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeUncategorizedMissing,
			"uncategorized category is missing",
			domainerror.ErrUncategorizedMissing,
		)
	}

	if err := uc.categoryRepo.DeleteAndReassign(ctx, category.ID, uncategorized.ID); err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	invalidateSummaries(ctx, uc.summaryCache)

	return &DeleteCategoryOutput{
		ReassignedTo: uncategorized.ID,
	}, nil
}
