package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/domain/entity"
)

func dated(day int, amount float64, category string) entity.Record {
	date := time.Date(2025, time.March, day, 12, 0, 0, 0, time.UTC)
	return entity.Record{
		Kind:       entity.KindExpense,
		Amount:     decimal.NewFromFloat(amount),
		Category:   category,
		OccurredAt: &date,
	}
}

func TestAggregateByWindow(t *testing.T) {
	reference := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	windows := BuildWindows(reference, GranularityMonthly, 3)

	t.Run("category amounts sum exactly to the window total", func(t *testing.T) {
		records := []entity.Record{
			dated(1, 10.10, "Food"),
			dated(2, 20.25, "Food"),
			dated(3, 33.33, "Travel"),
			dated(4, 0.07, "Misc"),
		}

		aggregates := AggregateByWindow(records, windows)
		march := aggregates[2]

		sum := decimal.Zero
		for _, share := range march.ByCategory {
			sum = sum.Add(share.Amount)
		}
		if !sum.Equal(march.TotalAmount) {
			t.Errorf("category sum %s does not equal total %s", sum, march.TotalAmount)
		}
		if !march.TotalAmount.Equal(decimal.NewFromFloat(63.75)) {
			t.Errorf("expected total 63.75, got %s", march.TotalAmount)
		}
		if march.TransactionCount != 4 {
			t.Errorf("expected 4 transactions, got %d", march.TransactionCount)
		}
	})

	t.Run("categories are sorted by amount descending", func(t *testing.T) {
		records := []entity.Record{
			dated(1, 5, "Small"),
			dated(2, 100, "Big"),
			dated(3, 50, "Medium"),
		}
		aggregates := AggregateByWindow(records, windows)
		shares := aggregates[2].ByCategory
		if shares[0].Category != "Big" || shares[1].Category != "Medium" || shares[2].Category != "Small" {
			t.Errorf("unexpected order: %v", shares)
		}
	})

	t.Run("equal amounts break ties by name", func(t *testing.T) {
		records := []entity.Record{
			dated(1, 10, "Zeta"),
			dated(2, 10, "Alpha"),
		}
		aggregates := AggregateByWindow(records, windows)
		shares := aggregates[2].ByCategory
		if shares[0].Category != "Alpha" {
			t.Errorf("expected Alpha first, got %s", shares[0].Category)
		}
	})

	t.Run("undated records are skipped", func(t *testing.T) {
		records := []entity.Record{
			{Kind: entity.KindExpense, Amount: decimal.NewFromInt(999), Category: "Lost"},
			dated(1, 10, "Food"),
		}
		aggregates := AggregateByWindow(records, windows)
		if !aggregates[2].TotalAmount.Equal(decimal.NewFromInt(10)) {
			t.Errorf("expected 10, got %s", aggregates[2].TotalAmount)
		}
	})

	t.Run("empty windows report zero totals", func(t *testing.T) {
		aggregates := AggregateByWindow(nil, windows)
		for _, agg := range aggregates {
			if !agg.TotalAmount.IsZero() || agg.TransactionCount != 0 {
				t.Errorf("expected empty aggregate, got %+v", agg)
			}
		}
	})

	t.Run("percentages of one window sum close to one hundred", func(t *testing.T) {
		records := []entity.Record{
			dated(1, 33.33, "A"),
			dated(2, 33.33, "B"),
			dated(3, 33.34, "C"),
		}
		aggregates := AggregateByWindow(records, windows)
		var sum float64
		for _, share := range aggregates[2].ByCategory {
			sum += share.PercentageOfTotal
		}
		if sum < 99.5 || sum > 100.5 {
			t.Errorf("expected percentages to sum near 100, got %f", sum)
		}
	})
}

func TestDistribution(t *testing.T) {
	t.Run("empty input yields no buckets", func(t *testing.T) {
		if buckets := Distribution(nil); buckets != nil {
			t.Errorf("expected nil, got %v", buckets)
		}
	})

	t.Run("amounts land in half-open ranges", func(t *testing.T) {
		records := []entity.Record{
			{Amount: decimal.NewFromInt(50)},    // 0-100
			{Amount: decimal.NewFromInt(100)},   // 100-500, lower edge inclusive
			{Amount: decimal.NewFromInt(499)},   // 100-500
			{Amount: decimal.NewFromInt(10000)}, // 10K+, last edge open-ended
		}
		buckets := Distribution(records)
		if len(buckets) != 3 {
			t.Fatalf("expected 3 populated buckets, got %d", len(buckets))
		}
		if buckets[0].Range != "0-100" || buckets[0].Count != 1 {
			t.Errorf("unexpected first bucket: %+v", buckets[0])
		}
		if buckets[1].Range != "100-500" || buckets[1].Count != 2 {
			t.Errorf("unexpected second bucket: %+v", buckets[1])
		}
		if buckets[2].Range != "10K+" || buckets[2].Count != 1 {
			t.Errorf("unexpected third bucket: %+v", buckets[2])
		}
	})

	t.Run("bucket percentages reflect counts", func(t *testing.T) {
		records := []entity.Record{
			{Amount: decimal.NewFromInt(10)},
			{Amount: decimal.NewFromInt(20)},
			{Amount: decimal.NewFromInt(200)},
			{Amount: decimal.NewFromInt(300)},
		}
		buckets := Distribution(records)
		for _, b := range buckets {
			if b.Percentage != 50 {
				t.Errorf("expected 50%% for %s, got %f", b.Range, b.Percentage)
			}
		}
	})
}

func TestWeeklyPattern(t *testing.T) {
	t.Run("always returns seven days in order", func(t *testing.T) {
		days := WeeklyPattern(nil)
		if len(days) != 7 {
			t.Fatalf("expected 7 days, got %d", len(days))
		}
		if days[0].Day != "Sunday" || days[6].Day != "Saturday" {
			t.Errorf("unexpected day order: %s .. %s", days[0].Day, days[6].Day)
		}
		for _, d := range days {
			if !d.TotalAmount.IsZero() || d.TransactionCount != 0 {
				t.Errorf("expected zeroed day, got %+v", d)
			}
		}
	})

	t.Run("averages spending per weekday", func(t *testing.T) {
		// 2025-03-03 and 2025-03-10 are both Mondays.
		monday1 := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
		monday2 := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
		records := []entity.Record{
			{Amount: decimal.NewFromInt(100), OccurredAt: &monday1},
			{Amount: decimal.NewFromInt(50), OccurredAt: &monday2},
		}
		days := WeeklyPattern(records)
		monday := days[1]
		if !monday.TotalAmount.Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected Monday total 150, got %s", monday.TotalAmount)
		}
		if !monday.AverageAmount.Equal(decimal.NewFromInt(75)) {
			t.Errorf("expected Monday average 75, got %s", monday.AverageAmount)
		}
		if monday.TransactionCount != 2 {
			t.Errorf("expected 2 transactions, got %d", monday.TransactionCount)
		}
	})

	t.Run("undated records are ignored", func(t *testing.T) {
		records := []entity.Record{{Amount: decimal.NewFromInt(42)}}
		days := WeeklyPattern(records)
		for _, d := range days {
			if d.TransactionCount != 0 {
				t.Errorf("expected no transactions, got %+v", d)
			}
		}
	})
}
