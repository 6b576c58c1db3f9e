// Package reminder contains use cases for scheduling due-date reminder emails.
package reminder

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/expenso/backend/internal/application/adapter"
	"github.com/expenso/backend/internal/domain/entity"
	domainerror "github.com/expenso/backend/internal/domain/error"
	"github.com/expenso/backend/internal/domain/finance"
)

// DefaultReminderLeadDays is how far ahead of a due date the scan looks.
const DefaultReminderLeadDays = 7

// ScanDueObligationsInput represents the input for a reminder scan.
type ScanDueObligationsInput struct {
	// LeadDays widens the scan window; zero means DefaultReminderLeadDays.
	LeadDays int
	// Now overrides the scan reference time; zero means time.Now().UTC().
	Now time.Time
}

// ScanDueObligationsOutput represents the result of a reminder scan.
type ScanDueObligationsOutput struct {
	Scanned int
	Queued  int
	Skipped int
}

// ScanDueObligationsUseCase finds pending obligations whose due date falls
// inside the lead window and queues a reminder email for each owner that
// has reminders enabled.
type ScanDueObligationsUseCase struct {
	obligationRepo adapter.ObligationRepository
	userRepo       adapter.UserRepository
	emailService   adapter.EmailService
	logger         *slog.Logger
}

// NewScanDueObligationsUseCase creates a new ScanDueObligationsUseCase instance.
func NewScanDueObligationsUseCase(
	obligationRepo adapter.ObligationRepository,
	userRepo adapter.UserRepository,
	emailService adapter.EmailService,
	logger *slog.Logger,
) *ScanDueObligationsUseCase {
	return &ScanDueObligationsUseCase{
		obligationRepo: obligationRepo,
		userRepo:       userRepo,
		emailService:   emailService,
		logger:         logger,
	}
}

// Execute performs the reminder scan. A failure to queue one reminder is
// logged and counted as skipped; it does not abort the scan.
func (uc *ScanDueObligationsUseCase) Execute(ctx context.Context, input ScanDueObligationsInput) (*ScanDueObligationsOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	leadDays := input.LeadDays
	if leadDays <= 0 {
		leadDays = DefaultReminderLeadDays
	}

	from := now.Truncate(24 * time.Hour)
	to := from.AddDate(0, 0, leadDays+1)

	obligations, err := uc.obligationRepo.FindDueBetween(ctx, from, to)
	if err != nil {
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to scan obligations for reminders",
			err,
		)
	}

	output := &ScanDueObligationsOutput{Scanned: len(obligations)}

	// Users repeat across obligations; resolve each once per scan.
	users := make(map[uuid.UUID]*entity.User)

	for _, obligation := range obligations {
		if obligation.Status != entity.ObligationStatusPending || obligation.DueDate == nil {
			output.Skipped++
			continue
		}

		user, ok := users[obligation.UserID]
		if !ok {
			user, err = uc.userRepo.FindByID(ctx, obligation.UserID)
			if err != nil {
				uc.logger.Warn("reminder scan could not resolve user",
					"userId", obligation.UserID,
					"obligationId", obligation.ID,
					"error", err,
				)
				output.Skipped++
				continue
			}
			users[obligation.UserID] = user
		}

		if !user.EmailNotifications || !user.DueDateReminders {
			output.Skipped++
			continue
		}

		err = uc.emailService.QueueDueDateReminderEmail(ctx, adapter.QueueDueDateReminderInput{
			UserID:         user.ID.String(),
			UserEmail:      user.Email,
			UserName:       user.Name,
			ObligationType: obligation.Type,
			Amount:         obligation.Amount.StringFixed(2),
			DueDate:        obligation.DueDate.Format("2006-01-02"),
			DaysRemaining:  finance.DaysRemaining(now, *obligation.DueDate),
		})
		if err != nil {
			uc.logger.Warn("failed to queue due date reminder",
				"userId", user.ID,
				"obligationId", obligation.ID,
				"error", err,
			)
			output.Skipped++
			continue
		}

		output.Queued++
	}

	return output, nil
}
