// Package analytics contains the spending-summary aggregation engine.
package analytics

import (
	"time"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// TimeRange selects the analysis window applied to the headline total and the
// category breakdown. Trend buckets and recent expenses ignore it.
type TimeRange string

const (
	// TimeRangeAll applies no filter.
	TimeRangeAll TimeRange = ""
	// TimeRangeWeek covers the trailing 7 days.
	TimeRangeWeek TimeRange = "week"
	// TimeRangeMonth covers the trailing 30 days.
	TimeRangeMonth TimeRange = "month"
	// TimeRangeYear covers the trailing 365 days.
	TimeRangeYear TimeRange = "year"
)

// ParseTimeRange validates a raw time-range selector. The empty string means
// no filter.
func ParseTimeRange(raw string) (TimeRange, error) {
	switch TimeRange(raw) {
	case TimeRangeAll, TimeRangeWeek, TimeRangeMonth, TimeRangeYear:
		return TimeRange(raw), nil
	default:
		return TimeRangeAll, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidTimeRange,
			"time_range must be one of: week, month, year",
			domainerror.ErrInvalidTimeRange,
		)
	}
}

// days returns the window length in days, or 0 when no filter applies.
func (tr TimeRange) days() int {
	switch tr {
	case TimeRangeWeek:
		return 7
	case TimeRangeMonth:
		return 30
	case TimeRangeYear:
		return 365
	default:
		return 0
	}
}

// Contains reports whether date falls inside the window ending at now.
// Both window boundaries are inclusive; TimeRangeAll contains everything.
func (tr TimeRange) Contains(now, date time.Time) bool {
	d := tr.days()
	if d == 0 {
		return true
	}
	start := now.AddDate(0, 0, -d)
	return !date.Before(start) && !date.After(now)
}
