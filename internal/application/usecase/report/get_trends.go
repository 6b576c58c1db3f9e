package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/expenso/backend/internal/domain/error"
)

// Default number of periods returned per granularity when the caller
// does not ask for a specific count.
var defaultPeriodCounts = map[Granularity]int{
	GranularityDaily:     30,
	GranularityWeekly:    12,
	GranularityMonthly:   12,
	GranularityQuarterly: 8,
	GranularityYearly:    5,
}

const maxPeriodCount = 60

// GetTrendsInput represents the input for getting spending trends.
type GetTrendsInput struct {
	UserID      uuid.UUID
	Granularity Granularity
	PeriodCount int
	Reference   time.Time
	TopN        int
}

// GetTrendsOutput represents the output of getting spending trends.
type GetTrendsOutput struct {
	Granularity Granularity    `json:"granularity"`
	Overall     []Aggregate    `json:"overall"`
	Direction   TrendDirection `json:"direction"`
	Categories  []TrendSeries  `json:"categories"`
}

// GetTrendsUseCase handles computing spending trends across periods.
type GetTrendsUseCase struct {
	reportRepo ReportRepository
	logger     *slog.Logger
}

// NewGetTrendsUseCase creates a new GetTrendsUseCase instance.
func NewGetTrendsUseCase(reportRepo ReportRepository, logger *slog.Logger) *GetTrendsUseCase {
	return &GetTrendsUseCase{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// Execute computes overall and per-category spending trends for the user.
func (uc *GetTrendsUseCase) Execute(
	ctx context.Context,
	input GetTrendsInput,
) (*GetTrendsOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	periodCount := input.PeriodCount
	if periodCount <= 0 {
		periodCount = defaultPeriodCounts[input.Granularity]
	}
	reference := input.Reference
	if reference.IsZero() {
		reference = time.Now().UTC()
	}
	topN := input.TopN
	if topN <= 0 {
		topN = 5
	}

	snapshot, err := uc.reportRepo.GetSnapshot(ctx, input.UserID)
	if err != nil {
		uc.logger.Warn("trend snapshot fetch failed, using empty snapshot",
			"user_id", input.UserID.String(),
			"error", err.Error(),
		)
		snapshot = &Snapshot{}
	}

	expenses := expenseRecords(snapshot)
	windows := BuildWindows(reference, input.Granularity, periodCount)
	overall := AggregateByWindow(expenses, windows)

	totals := make([]decimal.Decimal, 0, len(overall))
	for _, agg := range overall {
		totals = append(totals, agg.TotalAmount)
	}

	return &GetTrendsOutput{
		Granularity: input.Granularity,
		Overall:     overall,
		Direction:   ClassifyTrend(totals),
		Categories:  CategoryTrends(expenses, windows, topN),
	}, nil
}

func (uc *GetTrendsUseCase) validateInput(input GetTrendsInput) error {
	switch input.Granularity {
	case GranularityDaily, GranularityWeekly, GranularityMonthly, GranularityQuarterly, GranularityYearly:
	default:
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidGranularity,
			"granularity must be one of: daily, weekly, monthly, quarterly, yearly",
			nil,
		)
	}
	if input.PeriodCount > maxPeriodCount {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"period count is too large",
			nil,
		)
	}
	return nil
}
