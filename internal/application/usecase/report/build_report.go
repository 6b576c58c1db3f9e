package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/expenso/backend/internal/domain/error"
)

// BuildReportInput represents the input for building a financial report.
type BuildReportInput struct {
	UserID    uuid.UUID
	Type      ReportType
	StartDate time.Time
	EndDate   time.Time
	Format    ExportFormat
}

// BuildReportOutput represents the output of building a financial report.
type BuildReportOutput struct {
	Report  *Report `json:"report"`
	Encoded string  `json:"encoded,omitempty"`
}

// BuildReportUseCase handles composing a report over a user's records and
// optionally encoding it for export.
type BuildReportUseCase struct {
	reportRepo ReportRepository
	logger     *slog.Logger
}

// NewBuildReportUseCase creates a new BuildReportUseCase instance.
func NewBuildReportUseCase(reportRepo ReportRepository, logger *slog.Logger) *BuildReportUseCase {
	return &BuildReportUseCase{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// Execute builds a report of the requested type for the given period.
// When Format is set the report is also encoded into that format.
func (uc *BuildReportUseCase) Execute(
	ctx context.Context,
	input BuildReportInput,
) (*BuildReportOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	snapshot, err := uc.reportRepo.GetSnapshot(ctx, input.UserID)
	if err != nil {
		// Reporting degrades to an empty snapshot rather than failing the
		// whole request when the store is unavailable.
		uc.logger.Warn("report snapshot fetch failed, using empty snapshot",
			"user_id", input.UserID.String(),
			"error", err.Error(),
		)
		snapshot = &Snapshot{}
	}

	rpt := ComposeReport(snapshot, input.Type, input.StartDate, input.EndDate)

	output := &BuildReportOutput{Report: rpt}
	if input.Format != "" {
		encoded, err := EncodeReport(rpt, input.Format)
		if err != nil {
			return nil, err
		}
		output.Encoded = encoded
	}

	return output, nil
}

func (uc *BuildReportUseCase) validateInput(input BuildReportInput) error {
	switch input.Type {
	case ReportMonthly, ReportCategory, ReportComprehensive, ReportComparison:
	default:
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportType,
			"report type must be one of: monthly, category, comprehensive, comparison",
			nil,
		)
	}

	if input.StartDate.IsZero() {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingStartDate,
			"start date is required",
			nil,
		)
	}
	if input.EndDate.IsZero() {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingEndDate,
			"end date is required",
			nil,
		)
	}
	if !input.EndDate.After(input.StartDate) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"end date must be after start date",
			nil,
		)
	}

	switch input.Format {
	case "", FormatJSON, FormatCSV, FormatHTML:
	default:
		return domainerror.NewReportError(
			domainerror.ErrCodeUnsupportedFormat,
			"export format must be one of: json, csv, html",
			nil,
		)
	}

	return nil
}
