// Package report contains the financial aggregation and reporting engine.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/domain/entity"
)

// TrendDirection labels the movement of a time series.
type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendStable     TrendDirection = "stable"
)

// trendComparisonSpan caps how many points the leading and trailing means
// consider. Short, noisy series get a smaller span of ceil(n/3).
const trendComparisonSpan = 3

// ClassifyTrend compares the mean of the trailing points against the mean
// of the leading points. The 1.1/0.9 thresholds absorb noise: a series must
// move more than 10% to leave "stable". Series shorter than two points are
// always stable.
func ClassifyTrend(series []decimal.Decimal) TrendDirection {
	n := len(series)
	if n < 2 {
		return TrendStable
	}

	span := (n + 2) / 3
	if span > trendComparisonSpan {
		span = trendComparisonSpan
	}

	recent := meanOf(series[n-span:])
	earlier := meanOf(series[:span])

	if recent.GreaterThan(earlier.Mul(decimal.NewFromFloat(1.1))) {
		return TrendIncreasing
	}
	if recent.LessThan(earlier.Mul(decimal.NewFromFloat(0.9))) {
		return TrendDecreasing
	}
	return TrendStable
}

// TrendPoint is one period's amount in a category series.
type TrendPoint struct {
	Period string          `json:"period"`
	Amount decimal.Decimal `json:"amount"`
}

// TrendSeries is one category's amounts across a window sequence, labeled
// with its direction.
type TrendSeries struct {
	Category    string          `json:"category"`
	Points      []TrendPoint    `json:"points"`
	Direction   TrendDirection  `json:"direction"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// CategoryTrends builds a gap-free per-category series across the windows
// and classifies each one, returning the top categories by total amount.
// topN <= 0 returns all categories.
func CategoryTrends(records []entity.Record, windows []TimeWindow, topN int) []TrendSeries {
	amounts := make(map[string][]decimal.Decimal)

	for _, r := range records {
		i := AssignToWindow(r, windows)
		if i < 0 {
			continue
		}
		category := r.Category
		if category == "" {
			category = entity.UncategorizedLabel
		}
		series, ok := amounts[category]
		if !ok {
			series = make([]decimal.Decimal, len(windows))
			for j := range series {
				series[j] = decimal.Zero
			}
			amounts[category] = series
		}
		series[i] = series[i].Add(r.Amount)
	}

	trends := make([]TrendSeries, 0, len(amounts))
	for category, series := range amounts {
		points := make([]TrendPoint, len(windows))
		total := decimal.Zero
		for i, amount := range series {
			points[i] = TrendPoint{Period: windows[i].Label, Amount: amount}
			total = total.Add(amount)
		}
		trends = append(trends, TrendSeries{
			Category:    category,
			Points:      points,
			Direction:   ClassifyTrend(series),
			TotalAmount: total,
		})
	}

	sort.Slice(trends, func(a, b int) bool {
		if !trends[a].TotalAmount.Equal(trends[b].TotalAmount) {
			return trends[a].TotalAmount.GreaterThan(trends[b].TotalAmount)
		}
		return trends[a].Category < trends[b].Category
	})

	if topN > 0 && len(trends) > topN {
		trends = trends[:topN]
	}
	return trends
}

// meanOf averages a non-empty slice.
func meanOf(values []decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(v)
	}
	return sum.Div(decimal.NewFromInt(int64(len(values))))
}
