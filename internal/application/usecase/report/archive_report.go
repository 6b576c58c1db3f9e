package report

import (
	"context"
	"log/slog"

	"github.com/expenso/backend/internal/application/adapter"
	"github.com/expenso/backend/internal/domain/entity"
)

// ArchiveReportInput represents the input for building and archiving a report.
type ArchiveReportInput struct {
	BuildReportInput
}

// ArchiveReportOutput represents the output of an archived report build.
type ArchiveReportOutput struct {
	Report  *Report `json:"report"`
	Encoded string  `json:"encoded,omitempty"`
	Entry   *entity.ReportArchive
}

// ArchiveReportUseCase builds a report and records it in the user's report
// history. Archiving is best effort: a failed write does not fail the build.
type ArchiveReportUseCase struct {
	builder     *BuildReportUseCase
	archiveRepo adapter.ReportArchiveRepository
	logger      *slog.Logger
}

// NewArchiveReportUseCase creates a new ArchiveReportUseCase instance.
func NewArchiveReportUseCase(
	builder *BuildReportUseCase,
	archiveRepo adapter.ReportArchiveRepository,
	logger *slog.Logger,
) *ArchiveReportUseCase {
	return &ArchiveReportUseCase{
		builder:     builder,
		archiveRepo: archiveRepo,
		logger:      logger,
	}
}

// Execute builds a report and appends an entry to the user's report history.
func (uc *ArchiveReportUseCase) Execute(
	ctx context.Context,
	input ArchiveReportInput,
) (*ArchiveReportOutput, error) {
	built, err := uc.builder.Execute(ctx, input.BuildReportInput)
	if err != nil {
		return nil, err
	}

	entry := entity.NewReportArchive(
		input.UserID,
		string(input.Type),
		string(input.Format),
		input.StartDate,
		input.EndDate,
		built.Report.Insights,
	)

	if err := uc.archiveRepo.Create(ctx, entry); err != nil {
		uc.logger.Warn("report archive write failed",
			"user_id", input.UserID.String(),
			"report_type", string(input.Type),
			"error", err.Error(),
		)
		entry = nil
	}

	return &ArchiveReportOutput{
		Report:  built.Report,
		Encoded: built.Encoded,
		Entry:   entry,
	}, nil
}
