package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/expenso/backend/internal/domain/entity"
	domainerror "github.com/expenso/backend/internal/domain/error"
)

// GetDistributionInput represents the input for getting the expense
// amount distribution.
type GetDistributionInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// GetDistributionOutput represents the output of getting the expense
// amount distribution.
type GetDistributionOutput struct {
	Buckets []DistributionBucket `json:"buckets"`
	Total   int                  `json:"total"`
}

// GetDistributionUseCase handles bucketing expenses by amount range.
type GetDistributionUseCase struct {
	reportRepo ReportRepository
	logger     *slog.Logger
}

// NewGetDistributionUseCase creates a new GetDistributionUseCase instance.
func NewGetDistributionUseCase(reportRepo ReportRepository, logger *slog.Logger) *GetDistributionUseCase {
	return &GetDistributionUseCase{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// Execute buckets the user's expenses in the period by amount range.
// When no period is given all expenses are considered.
func (uc *GetDistributionUseCase) Execute(
	ctx context.Context,
	input GetDistributionInput,
) (*GetDistributionOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	snapshot, err := uc.reportRepo.GetSnapshot(ctx, input.UserID)
	if err != nil {
		uc.logger.Warn("distribution snapshot fetch failed, using empty snapshot",
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

	total := 0
	buckets := Distribution(expenses)
	for _, b := range buckets {
		total += b.Count
	}

	return &GetDistributionOutput{
		Buckets: buckets,
		Total:   total,
	}, nil
}

func (uc *GetDistributionUseCase) validateInput(input GetDistributionInput) error {
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
