package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/domain/entity"
)

func TestBuildWindows(t *testing.T) {
	reference := time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)

	t.Run("monthly windows end with the reference month", func(t *testing.T) {
		windows := BuildWindows(reference, GranularityMonthly, 3)
		if len(windows) != 3 {
			t.Fatalf("expected 3 windows, got %d", len(windows))
		}

		last := windows[2]
		if !last.Start.Equal(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected last window to start 2025-03-01, got %v", last.Start)
		}
		if !last.End.Equal(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected last window to end 2025-04-01, got %v", last.End)
		}
		if last.Label != "Mar 2025" {
			t.Errorf("expected label Mar 2025, got %s", last.Label)
		}
	})

	t.Run("windows are contiguous and non-overlapping", func(t *testing.T) {
		for _, g := range []Granularity{
			GranularityDaily, GranularityWeekly, GranularityMonthly, GranularityQuarterly, GranularityYearly,
		} {
			windows := BuildWindows(reference, g, 6)
			for i := 1; i < len(windows); i++ {
				if !windows[i].Start.Equal(windows[i-1].End) {
					t.Errorf("%s: window %d start %v does not meet previous end %v",
						g, i, windows[i].Start, windows[i-1].End)
				}
			}
		}
	})

	t.Run("weekly windows start on Monday", func(t *testing.T) {
		windows := BuildWindows(reference, GranularityWeekly, 4)
		for _, w := range windows {
			if w.Start.Weekday() != time.Monday {
				t.Errorf("expected Monday start, got %v", w.Start.Weekday())
			}
		}
	})

	t.Run("quarterly labels", func(t *testing.T) {
		windows := BuildWindows(reference, GranularityQuarterly, 2)
		if windows[0].Label != "Q4 2024" || windows[1].Label != "Q1 2025" {
			t.Errorf("unexpected labels: %s, %s", windows[0].Label, windows[1].Label)
		}
	})

	t.Run("monthly windows do not skip short months", func(t *testing.T) {
		// Jan 31 minus one calendar month must land in December, not skip it.
		ref := time.Date(2025, time.January, 31, 12, 0, 0, 0, time.UTC)
		windows := BuildWindows(ref, GranularityMonthly, 2)
		if windows[0].Label != "Dec 2024" {
			t.Errorf("expected Dec 2024, got %s", windows[0].Label)
		}
	})

	t.Run("zero period count yields no windows", func(t *testing.T) {
		if windows := BuildWindows(reference, GranularityDaily, 0); windows != nil {
			t.Errorf("expected nil, got %v", windows)
		}
	})
}

func TestTimeWindowContains(t *testing.T) {
	w := TimeWindow{
		Start: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("start is inclusive", func(t *testing.T) {
		if !w.Contains(w.Start) {
			t.Error("expected window to contain its start")
		}
	})

	t.Run("end is exclusive", func(t *testing.T) {
		if w.Contains(w.End) {
			t.Error("expected window to exclude its end")
		}
	})

	t.Run("instant before end is contained", func(t *testing.T) {
		if !w.Contains(w.End.Add(-time.Nanosecond)) {
			t.Error("expected window to contain the last instant before end")
		}
	})
}

func TestAssignToWindow(t *testing.T) {
	windows := BuildWindows(time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), GranularityMonthly, 3)

	t.Run("dated record maps to exactly one window", func(t *testing.T) {
		date := time.Date(2025, time.February, 10, 8, 0, 0, 0, time.UTC)
		r := entity.Record{Amount: decimal.NewFromInt(10), OccurredAt: &date}
		if idx := AssignToWindow(r, windows); idx != 1 {
			t.Errorf("expected window 1, got %d", idx)
		}
	})

	t.Run("boundary timestamp belongs to the later window", func(t *testing.T) {
		date := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
		r := entity.Record{Amount: decimal.NewFromInt(10), OccurredAt: &date}
		if idx := AssignToWindow(r, windows); idx != 2 {
			t.Errorf("expected window 2, got %d", idx)
		}
	})

	t.Run("record without a date is unassigned", func(t *testing.T) {
		r := entity.Record{Amount: decimal.NewFromInt(10)}
		if idx := AssignToWindow(r, windows); idx != -1 {
			t.Errorf("expected -1, got %d", idx)
		}
	})

	t.Run("record outside every window is unassigned", func(t *testing.T) {
		date := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
		r := entity.Record{Amount: decimal.NewFromInt(10), OccurredAt: &date}
		if idx := AssignToWindow(r, windows); idx != -1 {
			t.Errorf("expected -1, got %d", idx)
		}
	})
}
