package expense

import (
	"context"
	"log/slog"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// invalidateSummaries drops cached analytics summaries after a mutation.
// A cache failure never fails the write that triggered it.
func invalidateSummaries(ctx context.Context, cache adapter.SummaryCache) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		slog.Warn("failed to invalidate summary cache", "error", err)
	}
}
