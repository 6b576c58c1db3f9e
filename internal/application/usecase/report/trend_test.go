package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/domain/entity"
)

func series(values ...int64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.NewFromInt(v)
	}
	return out
}

func TestClassifyTrend(t *testing.T) {
	t.Run("monotonically growing series is increasing", func(t *testing.T) {
		if got := ClassifyTrend(series(100, 150, 200, 300, 400, 500)); got != TrendIncreasing {
			t.Errorf("expected increasing, got %s", got)
		}
	})

	t.Run("monotonically shrinking series is decreasing", func(t *testing.T) {
		if got := ClassifyTrend(series(500, 400, 300, 200, 150, 100)); got != TrendDecreasing {
			t.Errorf("expected decreasing, got %s", got)
		}
	})

	t.Run("flat series is stable", func(t *testing.T) {
		if got := ClassifyTrend(series(200, 200, 200, 200)); got != TrendStable {
			t.Errorf("expected stable, got %s", got)
		}
	})

	t.Run("movement within ten percent is stable", func(t *testing.T) {
		if got := ClassifyTrend(series(100, 105, 108)); got != TrendStable {
			t.Errorf("expected stable, got %s", got)
		}
	})

	t.Run("movement just past the threshold is classified", func(t *testing.T) {
		if got := ClassifyTrend(series(100, 111)); got != TrendIncreasing {
			t.Errorf("expected increasing, got %s", got)
		}
		if got := ClassifyTrend(series(100, 89)); got != TrendDecreasing {
			t.Errorf("expected decreasing, got %s", got)
		}
	})

	t.Run("fewer than two points is stable", func(t *testing.T) {
		if got := ClassifyTrend(nil); got != TrendStable {
			t.Errorf("expected stable for empty series, got %s", got)
		}
		if got := ClassifyTrend(series(1000)); got != TrendStable {
			t.Errorf("expected stable for single point, got %s", got)
		}
	})

	t.Run("long series compares at most three points each side", func(t *testing.T) {
		// Only the last three and first three matter; the middle spike
		// must not affect the result.
		s := series(100, 100, 100, 9999, 100, 100, 100)
		if got := ClassifyTrend(s); got != TrendStable {
			t.Errorf("expected stable, got %s", got)
		}
	})
}

func TestCategoryTrends(t *testing.T) {
	reference := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	windows := BuildWindows(reference, GranularityMonthly, 3)

	monthly := func(month time.Month, amount int64, category string) entity.Record {
		date := time.Date(2025, month, 10, 0, 0, 0, 0, time.UTC)
		return entity.Record{
			Kind:       entity.KindExpense,
			Amount:     decimal.NewFromInt(amount),
			Category:   category,
			OccurredAt: &date,
		}
	}

	t.Run("series are gap free across windows", func(t *testing.T) {
		records := []entity.Record{
			monthly(time.January, 100, "Food"),
			monthly(time.March, 300, "Food"),
		}
		trends := CategoryTrends(records, windows, 0)
		if len(trends) != 1 {
			t.Fatalf("expected 1 series, got %d", len(trends))
		}
		points := trends[0].Points
		if len(points) != 3 {
			t.Fatalf("expected 3 points, got %d", len(points))
		}
		if !points[1].Amount.IsZero() {
			t.Errorf("expected zero for the empty month, got %s", points[1].Amount)
		}
		if points[0].Period != "Jan 2025" || points[2].Period != "Mar 2025" {
			t.Errorf("unexpected period labels: %s, %s", points[0].Period, points[2].Period)
		}
	})

	t.Run("series are ranked by total and cut to topN", func(t *testing.T) {
		records := []entity.Record{
			monthly(time.January, 10, "Tiny"),
			monthly(time.January, 500, "Huge"),
			monthly(time.February, 100, "Mid"),
		}
		trends := CategoryTrends(records, windows, 2)
		if len(trends) != 2 {
			t.Fatalf("expected 2 series, got %d", len(trends))
		}
		if trends[0].Category != "Huge" || trends[1].Category != "Mid" {
			t.Errorf("unexpected ranking: %s, %s", trends[0].Category, trends[1].Category)
		}
	})

	t.Run("each series carries its direction", func(t *testing.T) {
		records := []entity.Record{
			monthly(time.January, 100, "Rent"),
			monthly(time.February, 200, "Rent"),
			monthly(time.March, 400, "Rent"),
		}
		trends := CategoryTrends(records, windows, 0)
		if trends[0].Direction != TrendIncreasing {
			t.Errorf("expected increasing, got %s", trends[0].Direction)
		}
	})

	t.Run("uncategorized records group under the fallback label", func(t *testing.T) {
		records := []entity.Record{
			monthly(time.January, 50, ""),
			monthly(time.February, 60, ""),
		}
		trends := CategoryTrends(records, windows, 0)
		if len(trends) != 1 || trends[0].Category != entity.UncategorizedLabel {
			t.Errorf("expected a single %s series, got %v", entity.UncategorizedLabel, trends)
		}
	})
}
