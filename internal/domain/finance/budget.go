package finance

import "github.com/shopspring/decimal"

// BudgetResult compares one period's actual spend against a reference budget.
type BudgetResult struct {
	Budget   decimal.Decimal
	Actual   decimal.Decimal
	Variance decimal.Decimal // actual - budget; positive means overspend
	// PerformancePercent is positive when under budget.
	PerformancePercent float64
}

// CompareToBudget computes variance and performance for one period.
// Performance is zero when the reference budget is zero.
func CompareToBudget(actual, budget decimal.Decimal) BudgetResult {
	variance := actual.Sub(budget)

	var performance float64
	if !budget.IsZero() {
		p, _ := budget.Sub(actual).
			Mul(decimal.NewFromInt(100)).
			Div(budget).
			Round(1).
			Float64()
		performance = p
	}

	return BudgetResult{
		Budget:             budget,
		Actual:             actual,
		Variance:           variance,
		PerformancePercent: performance,
	}
}
