package report

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/domain/entity"
	domainerror "github.com/expenso/backend/internal/domain/error"
)

type stubReportRepository struct {
	snapshot *Snapshot
	err      error
	calls    int
}

func (s *stubReportRepository) GetSnapshot(_ context.Context, _ uuid.UUID) (*Snapshot, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.snapshot, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuildReportUseCase(t *testing.T) {
	userID := uuid.New()
	start, end := marchPeriod()

	t.Run("builds a report from the snapshot", func(t *testing.T) {
		repo := &stubReportRepository{snapshot: &Snapshot{
			Expenses: []*entity.Expense{expenseOn(5, 250, "Food")},
		}}
		uc := NewBuildReportUseCase(repo, testLogger())

		output, err := uc.Execute(context.Background(), BuildReportInput{
			UserID:    userID,
			Type:      ReportMonthly,
			StartDate: start,
			EndDate:   end,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		total, _ := output.Report.Summary["totalExpenses"].(decimal.Decimal)
		if !total.Equal(decimal.NewFromInt(250)) {
			t.Errorf("expected 250, got %s", total)
		}
		if output.Encoded != "" {
			t.Errorf("expected no encoded output, got %q", output.Encoded)
		}
		if repo.calls != 1 {
			t.Errorf("expected one snapshot fetch, got %d", repo.calls)
		}
	})

	t.Run("encodes when a format is requested", func(t *testing.T) {
		repo := &stubReportRepository{snapshot: &Snapshot{}}
		uc := NewBuildReportUseCase(repo, testLogger())

		output, err := uc.Execute(context.Background(), BuildReportInput{
			UserID:    userID,
			Type:      ReportMonthly,
			StartDate: start,
			EndDate:   end,
			Format:    FormatCSV,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(output.Encoded, "Financial Report - monthly") {
			t.Errorf("unexpected encoded output: %q", output.Encoded)
		}
	})

	t.Run("store failure degrades to an empty report", func(t *testing.T) {
		repo := &stubReportRepository{err: errors.New("connection refused")}
		uc := NewBuildReportUseCase(repo, testLogger())

		output, err := uc.Execute(context.Background(), BuildReportInput{
			UserID:    userID,
			Type:      ReportComprehensive,
			StartDate: start,
			EndDate:   end,
		})
		if err != nil {
			t.Fatalf("expected a degraded report, got error: %v", err)
		}
		total, _ := output.Report.Summary["totalExpenses"].(decimal.Decimal)
		if !total.IsZero() {
			t.Errorf("expected zero totalExpenses, got %s", total)
		}
	})

	t.Run("rejects an unknown report type", func(t *testing.T) {
		uc := NewBuildReportUseCase(&stubReportRepository{}, testLogger())
		_, err := uc.Execute(context.Background(), BuildReportInput{
			UserID:    userID,
			Type:      ReportType("weekly"),
			StartDate: start,
			EndDate:   end,
		})
		assertReportErrorCode(t, err, domainerror.ErrCodeInvalidReportType)
	})

	t.Run("rejects a missing start date", func(t *testing.T) {
		uc := NewBuildReportUseCase(&stubReportRepository{}, testLogger())
		_, err := uc.Execute(context.Background(), BuildReportInput{
			UserID:  userID,
			Type:    ReportMonthly,
			EndDate: end,
		})
		assertReportErrorCode(t, err, domainerror.ErrCodeMissingStartDate)
	})

	t.Run("rejects an inverted date range", func(t *testing.T) {
		uc := NewBuildReportUseCase(&stubReportRepository{}, testLogger())
		_, err := uc.Execute(context.Background(), BuildReportInput{
			UserID:    userID,
			Type:      ReportMonthly,
			StartDate: end,
			EndDate:   start,
		})
		assertReportErrorCode(t, err, domainerror.ErrCodeInvalidDateRange)
	})

	t.Run("rejects an unknown export format", func(t *testing.T) {
		uc := NewBuildReportUseCase(&stubReportRepository{}, testLogger())
		_, err := uc.Execute(context.Background(), BuildReportInput{
			UserID:    userID,
			Type:      ReportMonthly,
			StartDate: start,
			EndDate:   end,
			Format:    ExportFormat("pdf"),
		})
		assertReportErrorCode(t, err, domainerror.ErrCodeUnsupportedFormat)
	})
}

func TestGetTrendsUseCase(t *testing.T) {
	userID := uuid.New()
	reference := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

	t.Run("classifies overall direction across periods", func(t *testing.T) {
		repo := &stubReportRepository{snapshot: &Snapshot{
			Expenses: []*entity.Expense{
				expenseInMonth(time.January, 100),
				expenseInMonth(time.February, 200),
				expenseInMonth(time.March, 400),
			},
		}}
		uc := NewGetTrendsUseCase(repo, testLogger())

		output, err := uc.Execute(context.Background(), GetTrendsInput{
			UserID:      userID,
			Granularity: GranularityMonthly,
			PeriodCount: 3,
			Reference:   reference,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Overall) != 3 {
			t.Fatalf("expected 3 aggregates, got %d", len(output.Overall))
		}
		if output.Direction != TrendIncreasing {
			t.Errorf("expected increasing, got %s", output.Direction)
		}
	})

	t.Run("defaults the period count per granularity", func(t *testing.T) {
		repo := &stubReportRepository{snapshot: &Snapshot{}}
		uc := NewGetTrendsUseCase(repo, testLogger())

		output, err := uc.Execute(context.Background(), GetTrendsInput{
			UserID:      userID,
			Granularity: GranularityWeekly,
			Reference:   reference,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Overall) != 12 {
			t.Errorf("expected 12 weekly aggregates, got %d", len(output.Overall))
		}
	})

	t.Run("rejects an unknown granularity", func(t *testing.T) {
		uc := NewGetTrendsUseCase(&stubReportRepository{}, testLogger())
		_, err := uc.Execute(context.Background(), GetTrendsInput{
			UserID:      userID,
			Granularity: Granularity("hourly"),
		})
		assertReportErrorCode(t, err, domainerror.ErrCodeInvalidGranularity)
	})

	t.Run("rejects an excessive period count", func(t *testing.T) {
		uc := NewGetTrendsUseCase(&stubReportRepository{}, testLogger())
		_, err := uc.Execute(context.Background(), GetTrendsInput{
			UserID:      userID,
			Granularity: GranularityDaily,
			PeriodCount: maxPeriodCount + 1,
		})
		assertReportErrorCode(t, err, domainerror.ErrCodeInvalidDateRange)
	})

	t.Run("store failure yields empty aggregates", func(t *testing.T) {
		repo := &stubReportRepository{err: errors.New("timeout")}
		uc := NewGetTrendsUseCase(repo, testLogger())

		output, err := uc.Execute(context.Background(), GetTrendsInput{
			UserID:      userID,
			Granularity: GranularityMonthly,
			PeriodCount: 2,
			Reference:   reference,
		})
		if err != nil {
			t.Fatalf("expected degraded output, got error: %v", err)
		}
		for _, agg := range output.Overall {
			if !agg.TotalAmount.IsZero() {
				t.Errorf("expected zero totals, got %s", agg.TotalAmount)
			}
		}
	})
}

func TestGetDistributionUseCase(t *testing.T) {
	userID := uuid.New()

	t.Run("buckets all expenses when no period is given", func(t *testing.T) {
		repo := &stubReportRepository{snapshot: &Snapshot{
			Expenses: []*entity.Expense{
				expenseOn(1, 50, "A"),
				expenseOn(2, 250, "B"),
			},
		}}
		uc := NewGetDistributionUseCase(repo, testLogger())

		output, err := uc.Execute(context.Background(), GetDistributionInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Total != 2 {
			t.Errorf("expected 2 records, got %d", output.Total)
		}
		if len(output.Buckets) != 2 {
			t.Errorf("expected 2 buckets, got %d", len(output.Buckets))
		}
	})

	t.Run("filters by period when one is given", func(t *testing.T) {
		repo := &stubReportRepository{snapshot: &Snapshot{
			Expenses: []*entity.Expense{
				expenseOn(1, 50, "A"),
				expenseInMonth(time.January, 999),
			},
		}}
		uc := NewGetDistributionUseCase(repo, testLogger())

		start, end := marchPeriod()
		output, err := uc.Execute(context.Background(), GetDistributionInput{
			UserID:    userID,
			StartDate: start,
			EndDate:   end,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Total != 1 {
			t.Errorf("expected 1 record in March, got %d", output.Total)
		}
	})

	t.Run("rejects a half-specified period", func(t *testing.T) {
		uc := NewGetDistributionUseCase(&stubReportRepository{}, testLogger())
		start, _ := marchPeriod()
		_, err := uc.Execute(context.Background(), GetDistributionInput{
			UserID:    userID,
			StartDate: start,
		})
		assertReportErrorCode(t, err, domainerror.ErrCodeInvalidDateRange)
	})
}

func TestGetWeeklyPatternUseCase(t *testing.T) {
	userID := uuid.New()

	t.Run("identifies the peak day", func(t *testing.T) {
		// 2025-03-03 is a Monday, 2025-03-08 is a Saturday.
		repo := &stubReportRepository{snapshot: &Snapshot{
			Expenses: []*entity.Expense{
				expenseOn(3, 100, "Food"),
				expenseOn(8, 900, "Shopping"),
			},
		}}
		uc := NewGetWeeklyPatternUseCase(repo, testLogger())

		output, err := uc.Execute(context.Background(), GetWeeklyPatternInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Days) != 7 {
			t.Fatalf("expected 7 days, got %d", len(output.Days))
		}
		if output.PeakDay != "Saturday" {
			t.Errorf("expected Saturday peak, got %s", output.PeakDay)
		}
		if !output.PeakAmount.Equal(decimal.NewFromInt(900)) {
			t.Errorf("expected peak 900, got %s", output.PeakAmount)
		}
	})

	t.Run("no expenses yields no peak day", func(t *testing.T) {
		repo := &stubReportRepository{snapshot: &Snapshot{}}
		uc := NewGetWeeklyPatternUseCase(repo, testLogger())

		output, err := uc.Execute(context.Background(), GetWeeklyPatternInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.PeakDay != "" {
			t.Errorf("expected no peak day, got %s", output.PeakDay)
		}
	})
}

func expenseInMonth(month time.Month, amount int64) *entity.Expense {
	date := time.Date(2025, month, 10, 0, 0, 0, 0, time.UTC)
	return &entity.Expense{
		ID:       uuid.New(),
		Amount:   decimal.NewFromInt(amount),
		Category: "Misc",
		Date:     &date,
	}
}

func assertReportErrorCode(t *testing.T, err error, code domainerror.ReportErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	var reportErr *domainerror.ReportError
	if !errors.As(err, &reportErr) {
		t.Fatalf("expected a ReportError, got %T", err)
	}
	if reportErr.Code != code {
		t.Errorf("expected code %s, got %s", code, reportErr.Code)
	}
}
