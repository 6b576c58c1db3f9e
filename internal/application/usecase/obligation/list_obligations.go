// Package obligation contains tax and violation-related use cases.
package obligation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/application/adapter"
	"github.com/expenso/backend/internal/domain/entity"
	domainerror "github.com/expenso/backend/internal/domain/error"
	"github.com/expenso/backend/internal/domain/finance"
)

// ObligationWithDeadline pairs an obligation with its deadline state.
type ObligationWithDeadline struct {
	Obligation    *entity.Obligation
	DaysRemaining *int // nil when no due date is set
	Overdue       bool
}

// ListObligationsInput represents the input for listing obligations.
type ListObligationsInput struct {
	UserID uuid.UUID
	Kind   *entity.ObligationKind
	Now    time.Time // zero means current time
}

// ListObligationsOutput represents the output of listing obligations.
// Pending totals exclude paid entries.
type ListObligationsOutput struct {
	Obligations  []ObligationWithDeadline
	TotalPending decimal.Decimal
	OverdueCount int
}

// ListObligationsUseCase handles obligation listing logic.
type ListObligationsUseCase struct {
	obligationRepo adapter.ObligationRepository
}

// NewListObligationsUseCase creates a new ListObligationsUseCase instance.
func NewListObligationsUseCase(obligationRepo adapter.ObligationRepository) *ListObligationsUseCase {
	return &ListObligationsUseCase{
		obligationRepo: obligationRepo,
	}
}

// Execute retrieves the user's obligations with deadline arithmetic applied.
func (uc *ListObligationsUseCase) Execute(ctx context.Context, input ListObligationsInput) (*ListObligationsOutput, error) {
	obligations, err := uc.obligationRepo.FindByUser(ctx, input.UserID, input.Kind)
	if err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordInternalError,
			"failed to list obligations",
			err,
		)
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	output := &ListObligationsOutput{
		Obligations:  make([]ObligationWithDeadline, 0, len(obligations)),
		TotalPending: decimal.Zero,
	}
	for _, o := range obligations {
		entry := ObligationWithDeadline{Obligation: o}
		if o.DueDate != nil {
			days := finance.DaysRemaining(now, *o.DueDate)
			entry.DaysRemaining = &days
			entry.Overdue = o.Status == entity.ObligationStatusPending && finance.IsOverdue(now, *o.DueDate)
		}
		output.Obligations = append(output.Obligations, entry)

		if o.Status == entity.ObligationStatusPending {
			output.TotalPending = output.TotalPending.Add(o.Amount)
			if entry.Overdue {
				output.OverdueCount++
			}
		}
	}

	return output, nil
}
