// Package finance provides the pure financial formulas used across the
// application: SIP compound-growth projection, loan interest accrual,
// obligation deadline arithmetic, stock position economics and budget
// variance. Functions here never touch storage and never return errors;
// ratios with a zero denominator yield zero.
package finance

import (
	"math"

	"github.com/shopspring/decimal"
)

// SIPProjection is the computed state of a systematic investment plan.
type SIPProjection struct {
	MonthsConsidered int
	TotalInvested    decimal.Decimal
	FutureValue      decimal.Decimal
	// ProgressPercent is the raw progress; it can exceed 100 once the plan
	// has run past its duration. Callers cap it for display.
	ProgressPercent float64
}

// ProjectSIP computes the annuity-due future value of a SIP after
// monthsElapsed months, capped at the plan duration. Each contribution
// compounds monthly and earns one extra period of interest.
//
//	r = annualReturnRatePercent / 12 / 100
//	FV = monthlyAmount * ((1+r)^n - 1) / r * (1+r), or monthlyAmount * n when r = 0
func ProjectSIP(monthlyAmount decimal.Decimal, annualReturnRatePercent float64, durationMonths, monthsElapsed int) SIPProjection {
	if durationMonths < 0 {
		durationMonths = 0
	}
	n := monthsElapsed
	if n > durationMonths {
		n = durationMonths
	}
	if n < 0 {
		n = 0
	}

	invested := monthlyAmount.Mul(decimal.NewFromInt(int64(n)))

	r := annualReturnRatePercent / 12 / 100
	var fv decimal.Decimal
	if r == 0 {
		fv = invested
	} else {
		m, _ := monthlyAmount.Float64()
		raw := m * ((math.Pow(1+r, float64(n)) - 1) / r) * (1 + r)
		fv = decimal.NewFromFloat(raw).Round(2)
	}

	var progress float64
	if durationMonths > 0 {
		progress = float64(n) / float64(durationMonths) * 100
	}

	return SIPProjection{
		MonthsConsidered: n,
		TotalInvested:    invested,
		FutureValue:      fv,
		ProgressPercent:  progress,
	}
}
