package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

type stubExpenseRepo struct {
	expenses []*entity.ExpenseWithCategory
	err      error
	calls    int
}

func (r *stubExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error { return nil }
func (r *stubExpenseRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	return nil, nil
}
func (r *stubExpenseRepo) FindPage(ctx context.Context, skip, limit int) ([]*entity.Expense, error) {
	return nil, nil
}
func (r *stubExpenseRepo) FindAllWithCategory(ctx context.Context) ([]*entity.ExpenseWithCategory, error) {
	r.calls++
	return r.expenses, r.err
}
func (r *stubExpenseRepo) Update(ctx context.Context, expense *entity.Expense) error { return nil }
func (r *stubExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }

type memorySummaryCache struct {
	entries map[string][]byte
}

func newMemorySummaryCache() *memorySummaryCache {
	return &memorySummaryCache{entries: make(map[string][]byte)}
}

func (c *memorySummaryCache) Get(ctx context.Context, key string) ([]byte, error) {
	return c.entries[key], nil
}

func (c *memorySummaryCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	c.entries[key] = payload
	return nil
}

func (c *memorySummaryCache) Invalidate(ctx context.Context) error {
	c.entries = make(map[string][]byte)
	return nil
}

func fixedNow() time.Time {
	return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
}

func newSummaryUseCase(repo *stubExpenseRepo, cache *memorySummaryCache) *GetSummaryUseCase {
	uc := &GetSummaryUseCase{
		expenseRepo: repo,
		now:         fixedNow,
	}
	if cache != nil {
		uc.summaryCache = cache
	}
	return uc
}

func TestGetSummary_EmptyHistory(t *testing.T) {
	uc := newSummaryUseCase(&stubExpenseRepo{}, nil)

	output, err := uc.Execute(context.Background(), GetSummaryInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := output.Summary
	if !s.TotalExpenses.IsZero() {
		t.Errorf("expected zero total, got %s", s.TotalExpenses)
	}
	if len(s.CategoryBreakdown) != 0 {
		t.Errorf("expected empty breakdown, got %v", s.CategoryBreakdown)
	}
	if len(s.RecentExpenses) != 0 {
		t.Errorf("expected no recents, got %v", s.RecentExpenses)
	}
	if len(s.MonthlyTrends) != MonthlyTrendMonths {
		t.Errorf("expected %d monthly buckets, got %d", MonthlyTrendMonths, len(s.MonthlyTrends))
	}
	if len(s.WeeklyTrends) != WeeklyTrendWeeks {
		t.Errorf("expected %d weekly buckets, got %d", WeeklyTrendWeeks, len(s.WeeklyTrends))
	}
	if len(s.OptimizationSuggestions) != 1 || s.OptimizationSuggestions[0] != msgNotEnoughData {
		t.Errorf("expected not-enough-data suggestion, got %v", s.OptimizationSuggestions)
	}
}

func TestGetSummary_TotalAndBreakdown(t *testing.T) {
	now := fixedNow()
	repo := &stubExpenseRepo{expenses: []*entity.ExpenseWithCategory{
		expenseOn(now.AddDate(0, 0, -1), 100, "Groceries"),
		expenseOn(now.AddDate(0, 0, -2), 50, "Dining"),
		expenseOn(now.AddDate(0, 0, -3), 25, "Groceries"),
	}}
	uc := newSummaryUseCase(repo, nil)

	output, err := uc.Execute(context.Background(), GetSummaryInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := output.Summary
	if !s.TotalExpenses.Equal(decimal.NewFromInt(175)) {
		t.Errorf("expected total 175, got %s", s.TotalExpenses)
	}
	if len(s.CategoryBreakdown) != 2 {
		t.Fatalf("expected 2 breakdown entries, got %d", len(s.CategoryBreakdown))
	}
	// Sorted by category name
	if s.CategoryBreakdown[0].Category != "Dining" || !s.CategoryBreakdown[0].Total.Equal(decimal.NewFromInt(50)) {
		t.Errorf("unexpected first entry: %+v", s.CategoryBreakdown[0])
	}
	if s.CategoryBreakdown[1].Category != "Groceries" || !s.CategoryBreakdown[1].Total.Equal(decimal.NewFromInt(125)) {
		t.Errorf("unexpected second entry: %+v", s.CategoryBreakdown[1])
	}
}

func TestGetSummary_TimeRangeFiltersTotalButNotRecents(t *testing.T) {
	now := fixedNow()
	repo := &stubExpenseRepo{expenses: []*entity.ExpenseWithCategory{
		expenseOn(now.AddDate(0, 0, -1), 100, "Groceries"),
		expenseOn(now.AddDate(0, 0, -20), 50, "Dining"),
	}}
	uc := newSummaryUseCase(repo, nil)

	output, err := uc.Execute(context.Background(), GetSummaryInput{TimeRange: TimeRangeWeek})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := output.Summary
	if !s.TotalExpenses.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected filtered total 100, got %s", s.TotalExpenses)
	}
	if len(s.CategoryBreakdown) != 1 || s.CategoryBreakdown[0].Category != "Groceries" {
		t.Errorf("expected breakdown with Groceries only, got %v", s.CategoryBreakdown)
	}
	// Recents ignore the window
	if len(s.RecentExpenses) != 2 {
		t.Errorf("expected 2 recents regardless of time range, got %d", len(s.RecentExpenses))
	}
}

func TestGetSummary_RecentsNewestFirstCappedAtFive(t *testing.T) {
	now := fixedNow()
	repo := &stubExpenseRepo{}
	for i := 0; i < 8; i++ {
		repo.expenses = append(repo.expenses, expenseOn(now.AddDate(0, 0, -i), float64(i+1), "Groceries"))
	}
	uc := newSummaryUseCase(repo, nil)

	output, err := uc.Execute(context.Background(), GetSummaryInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	recents := output.Summary.RecentExpenses
	if len(recents) != RecentExpenseCount {
		t.Fatalf("expected %d recents, got %d", RecentExpenseCount, len(recents))
	}
	for i := 1; i < len(recents); i++ {
		if recents[i].Date.After(recents[i-1].Date) {
			t.Errorf("recents not ordered newest first at index %d", i)
		}
	}
	if !recents[0].Date.Equal(now) {
		t.Errorf("expected newest expense first, got date %v", recents[0].Date)
	}
}

func TestGetSummary_ServesFromCacheOnSecondCall(t *testing.T) {
	now := fixedNow()
	repo := &stubExpenseRepo{expenses: []*entity.ExpenseWithCategory{
		expenseOn(now.AddDate(0, 0, -1), 100, "Groceries"),
	}}
	cache := newMemorySummaryCache()
	uc := newSummaryUseCase(repo, cache)

	first, err := uc.Execute(context.Background(), GetSummaryInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := uc.Execute(context.Background(), GetSummaryInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.calls != 1 {
		t.Errorf("expected one repository read, got %d", repo.calls)
	}
	if !second.Summary.TotalExpenses.Equal(first.Summary.TotalExpenses) {
		t.Errorf("cached summary differs: %s vs %s", second.Summary.TotalExpenses, first.Summary.TotalExpenses)
	}
}

func TestGetSummary_CacheKeyVariesByTimeRange(t *testing.T) {
	now := fixedNow()
	repo := &stubExpenseRepo{expenses: []*entity.ExpenseWithCategory{
		expenseOn(now.AddDate(0, 0, -1), 100, "Groceries"),
		expenseOn(now.AddDate(0, 0, -20), 50, "Dining"),
	}}
	cache := newMemorySummaryCache()
	uc := newSummaryUseCase(repo, cache)

	all, err := uc.Execute(context.Background(), GetSummaryInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	week, err := uc.Execute(context.Background(), GetSummaryInput{TimeRange: TimeRangeWeek})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if all.Summary.TotalExpenses.Equal(week.Summary.TotalExpenses) {
		t.Error("expected different totals for different time ranges")
	}
	if len(cache.entries) != 2 {
		t.Errorf("expected 2 cache entries, got %d", len(cache.entries))
	}
}

func TestGetSummary_RepositoryErrorPropagates(t *testing.T) {
	repo := &stubExpenseRepo{err: errors.New("connection refused")}
	uc := newSummaryUseCase(repo, nil)

	_, err := uc.Execute(context.Background(), GetSummaryInput{})
	if err == nil {
		t.Fatal("expected error when repository fails")
	}
}
