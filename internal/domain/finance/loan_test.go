package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestMonthlyInterest(t *testing.T) {
	t.Run("simple monthly accrual", func(t *testing.T) {
		// 100000 at 12% annual -> 1000.00 per month exactly.
		got := MonthlyInterest(decimal.NewFromInt(100000), 12)
		if !got.Equal(decimal.RequireFromString("1000.00")) {
			t.Errorf("expected 1000.00, got %s", got)
		}
	})

	t.Run("fractional rates round to cents", func(t *testing.T) {
		got := MonthlyInterest(decimal.NewFromInt(50000), 10.5)
		if !got.Equal(decimal.RequireFromString("437.50")) {
			t.Errorf("expected 437.50, got %s", got)
		}
	})

	t.Run("zero principal accrues nothing", func(t *testing.T) {
		if got := MonthlyInterest(decimal.Zero, 12); !got.IsZero() {
			t.Errorf("expected zero, got %s", got)
		}
	})
}

func TestNextInterestDueDate(t *testing.T) {
	due := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	lastPaid := time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC)

	t.Run("one month after last payment", func(t *testing.T) {
		got := NextInterestDueDate(&lastPaid, &due)
		want := time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC)
		if got == nil || !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("falls back to original due date", func(t *testing.T) {
		got := NextInterestDueDate(nil, &due)
		if got == nil || !got.Equal(due) {
			t.Errorf("expected %v, got %v", due, got)
		}
	})

	t.Run("nil when no dates known", func(t *testing.T) {
		if got := NextInterestDueDate(nil, nil); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})
}

func TestIsInterestDue(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 1)

	t.Run("due once the date passes", func(t *testing.T) {
		if !IsInterestDue(now, &past, false) {
			t.Error("expected interest to be due")
		}
	})

	t.Run("due exactly at the due instant", func(t *testing.T) {
		if !IsInterestDue(now, &now, false) {
			t.Error("expected interest to be due at the exact instant")
		}
	})

	t.Run("not due before the date", func(t *testing.T) {
		if IsInterestDue(now, &future, false) {
			t.Error("expected interest not to be due")
		}
	})

	t.Run("paid loans never accrue", func(t *testing.T) {
		if IsInterestDue(now, &past, true) {
			t.Error("expected no interest on a paid loan")
		}
	})
}
