// Package report contains the financial aggregation and reporting engine.
package report

import (
	"fmt"
	"time"

	"github.com/expenso/backend/internal/domain/entity"
)

// Granularity represents the size of a time window.
type Granularity string

const (
	GranularityDaily     Granularity = "daily"
	GranularityWeekly    Granularity = "weekly"
	GranularityMonthly   Granularity = "monthly"
	GranularityQuarterly Granularity = "quarterly"
	GranularityYearly    Granularity = "yearly"
)

// TimeWindow is one half-open calendar interval [Start, End).
type TimeWindow struct {
	Label string    `json:"label"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the window.
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// BuildWindows produces periodCount contiguous, non-overlapping half-open
// windows ending with the period that contains reference; the most recent
// window is last. Calendar boundaries follow the granularity: months start
// on the 1st, weeks on Monday, quarters on Jan/Apr/Jul/Oct 1st.
func BuildWindows(reference time.Time, granularity Granularity, periodCount int) []TimeWindow {
	if periodCount <= 0 {
		return nil
	}

	windows := make([]TimeWindow, 0, periodCount)
	for i := periodCount - 1; i >= 0; i-- {
		start := periodStart(shiftPeriods(reference, granularity, -i), granularity)
		end := nextPeriodStart(start, granularity)
		windows = append(windows, TimeWindow{
			Label: periodLabel(start, granularity),
			Start: start,
			End:   end,
		})
	}
	return windows
}

// AssignToWindow returns the index of the unique window containing the
// record's timestamp, or -1 when the record has no resolved timestamp or
// falls outside every window.
func AssignToWindow(r entity.Record, windows []TimeWindow) int {
	if r.OccurredAt == nil {
		return -1
	}
	for i, w := range windows {
		if w.Contains(*r.OccurredAt) {
			return i
		}
	}
	return -1
}

// periodStart truncates date to the first instant of its period.
func periodStart(date time.Time, granularity Granularity) time.Time {
	loc := date.Location()
	switch granularity {
	case GranularityWeekly:
		// Weeks start on Monday.
		weekday := int(date.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		return time.Date(date.Year(), date.Month(), date.Day()-(weekday-1), 0, 0, 0, 0, loc)
	case GranularityMonthly:
		return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, loc)
	case GranularityQuarterly:
		quarter := (int(date.Month()) - 1) / 3
		return time.Date(date.Year(), time.Month(quarter*3+1), 1, 0, 0, 0, 0, loc)
	case GranularityYearly:
		return time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	}
}

// nextPeriodStart returns the exclusive end of the period starting at start.
func nextPeriodStart(start time.Time, granularity Granularity) time.Time {
	switch granularity {
	case GranularityWeekly:
		return start.AddDate(0, 0, 7)
	case GranularityMonthly:
		return start.AddDate(0, 1, 0)
	case GranularityQuarterly:
		return start.AddDate(0, 3, 0)
	case GranularityYearly:
		return start.AddDate(1, 0, 0)
	default:
		return start.AddDate(0, 0, 1)
	}
}

// shiftPeriods moves date by n periods of the given granularity.
func shiftPeriods(date time.Time, granularity Granularity, n int) time.Time {
	switch granularity {
	case GranularityWeekly:
		return date.AddDate(0, 0, 7*n)
	case GranularityMonthly:
		// Shift from the period start so short months cannot skip a period.
		return periodStart(date, granularity).AddDate(0, n, 0)
	case GranularityQuarterly:
		return periodStart(date, granularity).AddDate(0, 3*n, 0)
	case GranularityYearly:
		return date.AddDate(n, 0, 0)
	default:
		return date.AddDate(0, 0, n)
	}
}

// periodLabel generates a human-readable label for the period starting at
// start. Formats: "02 Jan" (daily), "W05 2025" (weekly), "Jan 2025"
// (monthly), "Q1 2025" (quarterly), "2025" (yearly).
func periodLabel(start time.Time, granularity Granularity) string {
	switch granularity {
	case GranularityWeekly:
		year, week := start.ISOWeek()
		return fmt.Sprintf("W%02d %d", week, year)
	case GranularityMonthly:
		return start.Format("Jan 2006")
	case GranularityQuarterly:
		quarter := (int(start.Month())-1)/3 + 1
		return fmt.Sprintf("Q%d %d", quarter, start.Year())
	case GranularityYearly:
		return fmt.Sprintf("%d", start.Year())
	default:
		return start.Format("02 Jan")
	}
}
