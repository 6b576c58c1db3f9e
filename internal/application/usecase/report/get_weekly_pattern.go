package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/domain/entity"
	domainerror "github.com/expenso/backend/internal/domain/error"
)

// GetWeeklyPatternInput represents the input for getting the day-of-week
// spending pattern.
type GetWeeklyPatternInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// GetWeeklyPatternOutput represents the output of getting the day-of-week
// spending pattern.
type GetWeeklyPatternOutput struct {
	Days       []WeekdayStat   `json:"days"`
	PeakDay    string          `json:"peak_day"`
	PeakAmount decimal.Decimal `json:"peak_amount"`
}

// GetWeeklyPatternUseCase handles computing spending totals per weekday.
type GetWeeklyPatternUseCase struct {
	reportRepo ReportRepository
	logger     *slog.Logger
}

// NewGetWeeklyPatternUseCase creates a new GetWeeklyPatternUseCase instance.
func NewGetWeeklyPatternUseCase(reportRepo ReportRepository, logger *slog.Logger) *GetWeeklyPatternUseCase {
	return &GetWeeklyPatternUseCase{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// Execute computes per-weekday spending totals and averages for the period.
func (uc *GetWeeklyPatternUseCase) Execute(
	ctx context.Context,
	input GetWeeklyPatternInput,
) (*GetWeeklyPatternOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	snapshot, err := uc.reportRepo.GetSnapshot(ctx, input.UserID)
	if err != nil {
		uc.logger.Warn("weekly pattern snapshot fetch failed, using empty snapshot",
			"user_id", input.UserID.String(),
			"error", err.Error(),
		)
		snapshot = &Snapshot{}
	}

	expenses := expenseRecords(snapshot)
	if !input.StartDate.IsZero() && !input.EndDate.IsZero() {
		filtered := make([]entity.Record, 0, len(expenses))
		for _, r := range expenses {
			if r.InWindow(input.StartDate, input.EndDate) {
				filtered = append(filtered, r)
			}
		}
		expenses = filtered
	}

	days := WeeklyPattern(expenses)
	peakDay := ""
	peakAmount := decimal.Zero
	for _, d := range days {
		if d.TotalAmount.GreaterThan(peakAmount) {
			peakAmount = d.TotalAmount
			peakDay = d.Day
		}
	}

	return &GetWeeklyPatternOutput{
		Days:       days,
		PeakDay:    peakDay,
		PeakAmount: peakAmount,
	}, nil
}

func (uc *GetWeeklyPatternUseCase) validateInput(input GetWeeklyPatternInput) error {
	if input.StartDate.IsZero() != input.EndDate.IsZero() {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"start date and end date must be provided together",
			nil,
		)
	}
	if !input.StartDate.IsZero() && !input.EndDate.After(input.StartDate) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"end date must be after start date",
			nil,
		)
	}
	return nil
}
