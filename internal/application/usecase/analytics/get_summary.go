// Package analytics contains the spending-summary aggregation engine.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// RecentExpenseCount is the fixed length cap of the recent-expense list.
const RecentExpenseCount = 5

// summaryCacheTTL bounds how stale a cached summary can get; writes also
// invalidate eagerly.
const summaryCacheTTL = 60 * time.Second

// GetSummaryInput represents the input for the analytics summary.
type GetSummaryInput struct {
	TimeRange TimeRange
}

// CategoryTotal is the summed amount for one category in the breakdown.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// RecentExpense is one entry of the latest-activity list.
type RecentExpense struct {
	ID          uuid.UUID       `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
}

// Summary is the full analytics output. The headline total and the breakdown
// honor the selected time range; recents and trends always cover full history.
type Summary struct {
	TimeRange               TimeRange       `json:"timeRange,omitempty"`
	TotalExpenses           decimal.Decimal `json:"totalExpenses"`
	CategoryBreakdown       []CategoryTotal `json:"categoryBreakdown"`
	RecentExpenses          []RecentExpense `json:"recentExpenses"`
	MonthlyTrends           []TrendBucket   `json:"monthlyTrends"`
	WeeklyTrends            []TrendBucket   `json:"weeklyTrends"`
	OptimizationSuggestions []string        `json:"optimizationSuggestions"`
}

// GetSummaryOutput represents the output of the analytics summary.
type GetSummaryOutput struct {
	Summary *Summary
}

// GetSummaryUseCase computes the spending summary over the full expense
// collection. It never errors on empty input; aggregates degrade to zero.
type GetSummaryUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	summaryCache adapter.SummaryCache
	now          func() time.Time
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(expenseRepo adapter.ExpenseRepository, summaryCache adapter.SummaryCache) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		expenseRepo:  expenseRepo,
		summaryCache: summaryCache,
		now:          time.Now,
	}
}

// Execute computes (or serves from cache) the analytics summary.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	if cached := uc.fromCache(ctx, input.TimeRange); cached != nil {
		return &GetSummaryOutput{Summary: cached}, nil
	}

	expenses, err := uc.expenseRepo.FindAllWithCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	now := uc.now()

	filtered := make([]*entity.ExpenseWithCategory, 0, len(expenses))
	for _, e := range expenses {
		if input.TimeRange.Contains(now, e.Expense.Date) {
			filtered = append(filtered, e)
		}
	}

	total := decimal.Zero
	categoryTotals := make(map[string]decimal.Decimal)
	for _, e := range filtered {
		total = total.Add(e.Expense.Amount)
		categoryTotals[e.CategoryName] = categoryTotals[e.CategoryName].Add(e.Expense.Amount)
	}

	breakdown := make([]CategoryTotal, 0, len(categoryTotals))
	for name, sum := range categoryTotals {
		breakdown = append(breakdown, CategoryTotal{Category: name, Total: sum})
	}
	sort.Slice(breakdown, func(i, j int) bool { return breakdown[i].Category < breakdown[j].Category })

	summary := &Summary{
		TimeRange:               input.TimeRange,
		TotalExpenses:           total,
		CategoryBreakdown:       breakdown,
		RecentExpenses:          recentExpenses(expenses),
		MonthlyTrends:           monthlyTrends(expenses, now),
		WeeklyTrends:            weeklyTrends(expenses, now),
		OptimizationSuggestions: buildSuggestions(categoryTotals, total),
	}

	uc.toCache(ctx, input.TimeRange, summary)

	return &GetSummaryOutput{Summary: summary}, nil
}

// recentExpenses returns the newest expenses by date from the unfiltered set,
// independent of the selected analysis window.
func recentExpenses(expenses []*entity.ExpenseWithCategory) []RecentExpense {
	sorted := make([]*entity.ExpenseWithCategory, len(expenses))
	copy(sorted, expenses)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Expense.Date.After(sorted[j].Expense.Date)
	})

	if len(sorted) > RecentExpenseCount {
		sorted = sorted[:RecentExpenseCount]
	}

	recents := make([]RecentExpense, 0, len(sorted))
	for _, e := range sorted {
		recents = append(recents, RecentExpense{
			ID:          e.Expense.ID,
			Amount:      e.Expense.Amount,
			Category:    e.CategoryName,
			Description: e.Expense.Description,
			Date:        e.Expense.Date,
		})
	}
	return recents
}

func summaryCacheKey(tr TimeRange) string {
	if tr == TimeRangeAll {
		return "analytics:summary:all"
	}
	return "analytics:summary:" + string(tr)
}

func (uc *GetSummaryUseCase) fromCache(ctx context.Context, tr TimeRange) *Summary {
	if uc.summaryCache == nil {
		return nil
	}
	payload, err := uc.summaryCache.Get(ctx, summaryCacheKey(tr))
	if err != nil {
		slog.Warn("summary cache read failed", "error", err)
		return nil
	}
	if payload == nil {
		return nil
	}
	var summary Summary
	if err := json.Unmarshal(payload, &summary); err != nil {
		slog.Warn("discarding unreadable cached summary", "error", err)
		return nil
	}
	return &summary
}

func (uc *GetSummaryUseCase) toCache(ctx context.Context, tr TimeRange, summary *Summary) {
	if uc.summaryCache == nil {
		return
	}
	payload, err := json.Marshal(summary)
	if err != nil {
		slog.Warn("failed to serialize summary for cache", "error", err)
		return
	}
	if err := uc.summaryCache.Set(ctx, summaryCacheKey(tr), payload, summaryCacheTTL); err != nil {
		slog.Warn("summary cache write failed", "error", err)
	}
}
