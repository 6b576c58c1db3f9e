package finance

import (
	"testing"
	"time"
)

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC)

	t.Run("future deadline", func(t *testing.T) {
		due := now.AddDate(0, 0, 5)
		if got := DaysRemaining(now, due); got != 5 {
			t.Errorf("expected 5 days remaining, got %d", got)
		}
		if IsOverdue(now, due) {
			t.Error("expected not overdue")
		}
	})

	t.Run("past deadline", func(t *testing.T) {
		due := now.AddDate(0, 0, -3)
		if got := DaysRemaining(now, due); got != -3 {
			t.Errorf("expected -3 days remaining, got %d", got)
		}
		if !IsOverdue(now, due) {
			t.Error("expected overdue")
		}
	})

	t.Run("partial day rounds up", func(t *testing.T) {
		due := now.Add(36 * time.Hour)
		if got := DaysRemaining(now, due); got != 2 {
			t.Errorf("expected 2 days remaining, got %d", got)
		}
	})

	t.Run("same instant is not overdue", func(t *testing.T) {
		if got := DaysRemaining(now, now); got != 0 {
			t.Errorf("expected 0 days remaining, got %d", got)
		}
		if IsOverdue(now, now) {
			t.Error("expected not overdue at the exact deadline")
		}
	})
}
