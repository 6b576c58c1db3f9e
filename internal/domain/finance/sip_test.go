package finance

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestProjectSIP(t *testing.T) {
	t.Run("computes annuity-due future value", func(t *testing.T) {
		// monthly 1000 at 12% annual for 12 months: r=0.01,
		// FV = 1000 * ((1.01^12 - 1) / 0.01) * 1.01 = 12809.33
		p := ProjectSIP(decimal.NewFromInt(1000), 12, 12, 12)

		fv, _ := p.FutureValue.Float64()
		if math.Abs(fv-12809.33) > 0.01 {
			t.Errorf("expected future value ~12809.33, got %v", fv)
		}
		if !p.TotalInvested.Equal(decimal.NewFromInt(12000)) {
			t.Errorf("expected total invested 12000, got %s", p.TotalInvested)
		}
		if p.ProgressPercent != 100 {
			t.Errorf("expected progress 100, got %v", p.ProgressPercent)
		}
	})

	t.Run("zero rate degrades to simple sum", func(t *testing.T) {
		p := ProjectSIP(decimal.NewFromInt(500), 0, 24, 10)
		if !p.FutureValue.Equal(decimal.NewFromInt(5000)) {
			t.Errorf("expected future value 5000, got %s", p.FutureValue)
		}
	})

	t.Run("months are capped at plan duration", func(t *testing.T) {
		p := ProjectSIP(decimal.NewFromInt(1000), 12, 12, 30)
		if p.MonthsConsidered != 12 {
			t.Errorf("expected 12 months considered, got %d", p.MonthsConsidered)
		}
	})

	t.Run("progress exceeds 100 only via raw value", func(t *testing.T) {
		p := ProjectSIP(decimal.NewFromInt(1000), 12, 12, 12)
		if p.ProgressPercent > 100 {
			t.Errorf("capped months should not yield progress above 100, got %v", p.ProgressPercent)
		}
	})

	t.Run("zero duration yields empty projection", func(t *testing.T) {
		p := ProjectSIP(decimal.NewFromInt(1000), 12, 0, 6)
		if !p.FutureValue.IsZero() || !p.TotalInvested.IsZero() || p.ProgressPercent != 0 {
			t.Errorf("expected zeroed projection, got %+v", p)
		}
	})

	t.Run("negative elapsed is floored at zero", func(t *testing.T) {
		p := ProjectSIP(decimal.NewFromInt(1000), 12, 12, -3)
		if p.MonthsConsidered != 0 {
			t.Errorf("expected 0 months considered, got %d", p.MonthsConsidered)
		}
	})
}
