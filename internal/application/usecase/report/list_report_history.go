package report

import (
	"context"

	"github.com/google/uuid"

	"github.com/expenso/backend/internal/application/adapter"
	"github.com/expenso/backend/internal/domain/entity"
	domainerror "github.com/expenso/backend/internal/domain/error"
)

// DefaultHistoryLimit caps how many history entries are returned when the
// caller does not ask for a specific number.
const DefaultHistoryLimit = 20

// ListReportHistoryInput represents the input for listing report history.
type ListReportHistoryInput struct {
	UserID uuid.UUID
	Limit  int
}

// ListReportHistoryOutput represents the output of listing report history.
type ListReportHistoryOutput struct {
	Entries []*entity.ReportArchive
}

// ListReportHistoryUseCase handles retrieving a user's generated reports,
// newest first.
type ListReportHistoryUseCase struct {
	archiveRepo adapter.ReportArchiveRepository
}

// NewListReportHistoryUseCase creates a new ListReportHistoryUseCase instance.
func NewListReportHistoryUseCase(archiveRepo adapter.ReportArchiveRepository) *ListReportHistoryUseCase {
	return &ListReportHistoryUseCase{archiveRepo: archiveRepo}
}

// Execute retrieves the user's report history.
func (uc *ListReportHistoryUseCase) Execute(
	ctx context.Context,
	input ListReportHistoryInput,
) (*ListReportHistoryOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = DefaultHistoryLimit
	}

	entries, err := uc.archiveRepo.FindByUser(ctx, input.UserID, limit)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportInternalError,
			"failed to retrieve report history",
			err,
		)
	}

	return &ListReportHistoryOutput{Entries: entries}, nil
}
