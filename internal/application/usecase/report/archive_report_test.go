package report

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/expenso/backend/internal/domain/entity"
	domainerror "github.com/expenso/backend/internal/domain/error"
)

type stubArchiveRepository struct {
	created []*entity.ReportArchive
	entries []*entity.ReportArchive
	err     error
	limit   int
}

func (s *stubArchiveRepository) Create(_ context.Context, archive *entity.ReportArchive) error {
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, archive)
	return nil
}

func (s *stubArchiveRepository) FindByUser(_ context.Context, _ uuid.UUID, limit int) ([]*entity.ReportArchive, error) {
	s.limit = limit
	if s.err != nil {
		return nil, s.err
	}
	return s.entries, nil
}

func TestArchiveReportUseCase(t *testing.T) {
	userID := uuid.New()
	start, end := marchPeriod()

	newUseCase := func(snapshot *Snapshot, archiveRepo *stubArchiveRepository) *ArchiveReportUseCase {
		builder := NewBuildReportUseCase(&stubReportRepository{snapshot: snapshot}, testLogger())
		return NewArchiveReportUseCase(builder, archiveRepo, testLogger())
	}

	t.Run("records the report in the history", func(t *testing.T) {
		archiveRepo := &stubArchiveRepository{}
		uc := newUseCase(&Snapshot{
			Expenses: []*entity.Expense{expenseOn(5, 300, "Food")},
		}, archiveRepo)

		output, err := uc.Execute(context.Background(), ArchiveReportInput{
			BuildReportInput: BuildReportInput{
				UserID:    userID,
				Type:      ReportMonthly,
				StartDate: start,
				EndDate:   end,
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(archiveRepo.created) != 1 {
			t.Fatalf("expected one archive entry, got %d", len(archiveRepo.created))
		}
		entry := archiveRepo.created[0]
		if entry.UserID != userID {
			t.Errorf("expected user %s, got %s", userID, entry.UserID)
		}
		if entry.ReportType != string(ReportMonthly) {
			t.Errorf("expected monthly, got %s", entry.ReportType)
		}
		if !entry.PeriodStart.Equal(start) || !entry.PeriodEnd.Equal(end) {
			t.Errorf("unexpected period: %s - %s", entry.PeriodStart, entry.PeriodEnd)
		}
		if len(entry.Insights) != len(output.Report.Insights) {
			t.Errorf("expected %d insights, got %d", len(output.Report.Insights), len(entry.Insights))
		}
		if output.Entry == nil {
			t.Error("expected the entry in the output")
		}
	})

	t.Run("archive failure does not fail the build", func(t *testing.T) {
		archiveRepo := &stubArchiveRepository{err: errors.New("connection refused")}
		uc := newUseCase(&Snapshot{}, archiveRepo)

		output, err := uc.Execute(context.Background(), ArchiveReportInput{
			BuildReportInput: BuildReportInput{
				UserID:    userID,
				Type:      ReportMonthly,
				StartDate: start,
				EndDate:   end,
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Report == nil {
			t.Fatal("expected a report")
		}
		if output.Entry != nil {
			t.Error("expected no entry after a failed archive write")
		}
	})

	t.Run("invalid input is rejected before archiving", func(t *testing.T) {
		archiveRepo := &stubArchiveRepository{}
		uc := newUseCase(&Snapshot{}, archiveRepo)

		_, err := uc.Execute(context.Background(), ArchiveReportInput{
			BuildReportInput: BuildReportInput{
				UserID:    userID,
				Type:      ReportType("weekly"),
				StartDate: start,
				EndDate:   end,
			},
		})
		assertReportErrorCode(t, err, domainerror.ErrCodeInvalidReportType)
		if len(archiveRepo.created) != 0 {
			t.Errorf("expected no archive entries, got %d", len(archiveRepo.created))
		}
	})
}

func TestListReportHistoryUseCase(t *testing.T) {
	userID := uuid.New()

	t.Run("returns the stored entries", func(t *testing.T) {
		start, end := marchPeriod()
		archiveRepo := &stubArchiveRepository{entries: []*entity.ReportArchive{
			entity.NewReportArchive(userID, "monthly", "json", start, end, []string{"spending held steady"}),
		}}
		uc := NewListReportHistoryUseCase(archiveRepo)

		output, err := uc.Execute(context.Background(), ListReportHistoryInput{UserID: userID, Limit: 5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Entries) != 1 {
			t.Fatalf("expected one entry, got %d", len(output.Entries))
		}
		if archiveRepo.limit != 5 {
			t.Errorf("expected limit 5, got %d", archiveRepo.limit)
		}
	})

	t.Run("defaults the limit when out of range", func(t *testing.T) {
		archiveRepo := &stubArchiveRepository{}
		uc := NewListReportHistoryUseCase(archiveRepo)

		if _, err := uc.Execute(context.Background(), ListReportHistoryInput{UserID: userID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if archiveRepo.limit != DefaultHistoryLimit {
			t.Errorf("expected default limit %d, got %d", DefaultHistoryLimit, archiveRepo.limit)
		}

		if _, err := uc.Execute(context.Background(), ListReportHistoryInput{UserID: userID, Limit: 500}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if archiveRepo.limit != DefaultHistoryLimit {
			t.Errorf("expected default limit %d for excessive requests, got %d", DefaultHistoryLimit, archiveRepo.limit)
		}
	})

	t.Run("store failure surfaces a report error", func(t *testing.T) {
		archiveRepo := &stubArchiveRepository{err: errors.New("timeout")}
		uc := NewListReportHistoryUseCase(archiveRepo)

		_, err := uc.Execute(context.Background(), ListReportHistoryInput{UserID: userID})
		assertReportErrorCode(t, err, domainerror.ErrCodeReportInternalError)
	})
}
