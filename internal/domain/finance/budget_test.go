package finance

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCompareToBudget(t *testing.T) {
	t.Run("under budget", func(t *testing.T) {
		r := CompareToBudget(decimal.NewFromInt(800), decimal.NewFromInt(1000))
		if !r.Variance.Equal(decimal.NewFromInt(-200)) {
			t.Errorf("expected variance -200, got %s", r.Variance)
		}
		if r.PerformancePercent != 20 {
			t.Errorf("expected performance 20, got %v", r.PerformancePercent)
		}
	})

	t.Run("over budget", func(t *testing.T) {
		r := CompareToBudget(decimal.NewFromInt(1200), decimal.NewFromInt(1000))
		if !r.Variance.Equal(decimal.NewFromInt(200)) {
			t.Errorf("expected variance 200, got %s", r.Variance)
		}
		if r.PerformancePercent != -20 {
			t.Errorf("expected performance -20, got %v", r.PerformancePercent)
		}
	})

	t.Run("zero budget guards the ratio", func(t *testing.T) {
		r := CompareToBudget(decimal.NewFromInt(500), decimal.Zero)
		if r.PerformancePercent != 0 {
			t.Errorf("expected performance 0, got %v", r.PerformancePercent)
		}
	})
}
