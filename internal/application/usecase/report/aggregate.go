// Package report contains the financial aggregation and reporting engine.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/domain/entity"
)

// CategoryShare is one category's slice of a window total.
type CategoryShare struct {
	Category          string          `json:"category"`
	Amount            decimal.Decimal `json:"amount"`
	PercentageOfTotal float64         `json:"percentage_of_total"`
	TransactionCount  int             `json:"transaction_count"`
}

// Aggregate holds the computed totals for one time window.
// Invariant: the category amounts sum exactly to TotalAmount; decimal
// arithmetic keeps cents exact so no reconciliation pass is needed.
type Aggregate struct {
	Window           TimeWindow      `json:"window"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	TransactionCount int             `json:"transaction_count"`
	ByCategory       []CategoryShare `json:"by_category"`
}

// AggregateByWindow computes one Aggregate per window. Records outside
// every window (or without a resolved timestamp) are skipped here but
// remain visible to non-windowed totals.
func AggregateByWindow(records []entity.Record, windows []TimeWindow) []Aggregate {
	aggregates := make([]Aggregate, len(windows))
	byCategory := make([]map[string]*CategoryShare, len(windows))
	for i, w := range windows {
		aggregates[i] = Aggregate{Window: w, TotalAmount: decimal.Zero}
		byCategory[i] = make(map[string]*CategoryShare)
	}

	for _, r := range records {
		i := AssignToWindow(r, windows)
		if i < 0 {
			continue
		}
		aggregates[i].TotalAmount = aggregates[i].TotalAmount.Add(r.Amount)
		aggregates[i].TransactionCount++

		category := r.Category
		if category == "" {
			category = entity.UncategorizedLabel
		}
		share, ok := byCategory[i][category]
		if !ok {
			share = &CategoryShare{Category: category, Amount: decimal.Zero}
			byCategory[i][category] = share
		}
		share.Amount = share.Amount.Add(r.Amount)
		share.TransactionCount++
	}

	for i := range aggregates {
		shares := make([]CategoryShare, 0, len(byCategory[i]))
		for _, share := range byCategory[i] {
			share.PercentageOfTotal = percentageOf(share.Amount, aggregates[i].TotalAmount)
			shares = append(shares, *share)
		}
		sort.Slice(shares, func(a, b int) bool {
			if !shares[a].Amount.Equal(shares[b].Amount) {
				return shares[a].Amount.GreaterThan(shares[b].Amount)
			}
			return shares[a].Category < shares[b].Category
		})
		aggregates[i].ByCategory = shares
	}

	return aggregates
}

// distributionEdges are the fixed upper bounds of the amount buckets.
var distributionEdges = []int64{100, 500, 1000, 5000, 10000}

// distributionLabels name the buckets, including the open-ended last one.
var distributionLabels = []string{"0-100", "100-500", "500-1K", "1K-5K", "5K-10K", "10K+"}

// DistributionBucket is one amount-range bucket of the distribution.
type DistributionBucket struct {
	Range      string  `json:"range"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Distribution classifies record amounts into fixed half-open ranges
// [prevEdge, edge). Only populated buckets are returned, in range order;
// an empty record set yields an empty distribution.
func Distribution(records []entity.Record) []DistributionBucket {
	if len(records) == 0 {
		return nil
	}

	counts := make([]int, len(distributionLabels))
	for _, r := range records {
		counts[distributionIndex(r.Amount)]++
	}

	total := decimal.NewFromInt(int64(len(records)))
	buckets := make([]DistributionBucket, 0, len(counts))
	for i, count := range counts {
		if count == 0 {
			continue
		}
		buckets = append(buckets, DistributionBucket{
			Range:      distributionLabels[i],
			Count:      count,
			Percentage: percentageOf(decimal.NewFromInt(int64(count)), total),
		})
	}
	return buckets
}

// distributionIndex maps an amount to its bucket index.
func distributionIndex(amount decimal.Decimal) int {
	for i, edge := range distributionEdges {
		if amount.LessThan(decimal.NewFromInt(edge)) {
			return i
		}
	}
	return len(distributionEdges)
}

// WeekdayStat is the spending profile of one day of the week.
type WeekdayStat struct {
	Day              string          `json:"day"`
	AverageAmount    decimal.Decimal `json:"average_amount"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	TransactionCount int             `json:"transaction_count"`
}

var weekdayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// WeeklyPattern averages spending per day of week over all dated records.
// Always returns seven entries, Sunday through Saturday; days without
// records report zero.
func WeeklyPattern(records []entity.Record) []WeekdayStat {
	stats := make([]WeekdayStat, 7)
	for i := range stats {
		stats[i] = WeekdayStat{Day: weekdayNames[i], AverageAmount: decimal.Zero, TotalAmount: decimal.Zero}
	}

	for _, r := range records {
		if r.OccurredAt == nil {
			continue
		}
		day := int(r.OccurredAt.Weekday())
		stats[day].TotalAmount = stats[day].TotalAmount.Add(r.Amount)
		stats[day].TransactionCount++
	}

	for i := range stats {
		if stats[i].TransactionCount > 0 {
			stats[i].AverageAmount = stats[i].TotalAmount.
				DivRound(decimal.NewFromInt(int64(stats[i].TransactionCount)), 2)
		}
	}
	return stats
}

// percentageOf returns part/total*100 rounded to one decimal, zero when the
// total is zero.
func percentageOf(part, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	p, _ := part.Mul(decimal.NewFromInt(100)).DivRound(total, 1).Float64()
	return p
}
