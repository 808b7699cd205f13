// Package analytics contains the spending-summary aggregation engine.
package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

const (
	// MonthlyTrendMonths is the fixed length of the monthly trend series.
	MonthlyTrendMonths = 6
	// WeeklyTrendWeeks is the fixed length of the weekly trend series.
	WeeklyTrendWeeks = 4
)

// TrendBucket is a single fixed-window aggregate in a trend series. The sort
// key lets consumers order buckets without parsing the label: year*100+month
// for monthly buckets, days since epoch of the window start for weekly ones.
type TrendBucket struct {
	Label   string          `json:"label"`
	Total   decimal.Decimal `json:"total"`
	SortKey int             `json:"sortKey"`
}

// monthlyTrends returns exactly MonthlyTrendMonths calendar-month buckets
// ending with the month containing now, summed over expenses in the trailing
// 365 days. Months without expenses carry a zero total.
func monthlyTrends(expenses []*entity.ExpenseWithCategory, now time.Time) []TrendBucket {
	totals := make(map[int]decimal.Decimal)
	yearAgo := now.AddDate(0, 0, -365)
	for _, e := range expenses {
		d := e.Expense.Date
		if d.Before(yearAgo) || d.After(now) {
			continue
		}
		key := d.Year()*100 + int(d.Month())
		totals[key] = totals[key].Add(e.Expense.Amount)
	}

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(MonthlyTrendMonths - 1), 0)

	buckets := make([]TrendBucket, 0, MonthlyTrendMonths)
	for i := 0; i < MonthlyTrendMonths; i++ {
		month := first.AddDate(0, i, 0)
		key := month.Year()*100 + int(month.Month())
		buckets = append(buckets, TrendBucket{
			Label:   month.Format("Jan 2006"),
			Total:   totals[key],
			SortKey: key,
		})
	}
	return buckets
}

// weeklyTrends returns exactly WeeklyTrendWeeks rolling 7-day buckets ending
// at now, now-7d, now-14d and now-21d, oldest first. Each window is half-open
// (end-7d, end] so an expense on a shared boundary is counted once.
func weeklyTrends(expenses []*entity.ExpenseWithCategory, now time.Time) []TrendBucket {
	buckets := make([]TrendBucket, 0, WeeklyTrendWeeks)
	for i := WeeklyTrendWeeks - 1; i >= 0; i-- {
		end := now.AddDate(0, 0, -7*i)
		cutoff := end.AddDate(0, 0, -7)
		start := end.AddDate(0, 0, -6)

		var total decimal.Decimal
		for _, e := range expenses {
			d := e.Expense.Date
			if d.After(cutoff) && !d.After(end) {
				total = total.Add(e.Expense.Amount)
			}
		}

		buckets = append(buckets, TrendBucket{
			Label:   fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2")),
			Total:   total,
			SortKey: int(start.Unix() / 86400),
		})
	}
	return buckets
}
