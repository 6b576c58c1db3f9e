// Package obligation contains tax and violation-related use cases.
package obligation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/expenso/backend/internal/application/adapter"
	"github.com/expenso/backend/internal/domain/entity"
	domainerror "github.com/expenso/backend/internal/domain/error"
)

// MarkObligationPaidInput represents the input for settling an obligation.
type MarkObligationPaidInput struct {
	ObligationID uuid.UUID
	UserID       uuid.UUID
}

// MarkObligationPaidOutput represents the output of settling an obligation.
type MarkObligationPaidOutput struct {
	Obligation *entity.Obligation
}

// MarkObligationPaidUseCase handles obligation settlement logic.
type MarkObligationPaidUseCase struct {
	obligationRepo adapter.ObligationRepository
}

// NewMarkObligationPaidUseCase creates a new MarkObligationPaidUseCase instance.
func NewMarkObligationPaidUseCase(obligationRepo adapter.ObligationRepository) *MarkObligationPaidUseCase {
	return &MarkObligationPaidUseCase{
		obligationRepo: obligationRepo,
	}
}

// Execute marks the obligation as paid. Settling an already paid obligation
// is a no-op.
func (uc *MarkObligationPaidUseCase) Execute(ctx context.Context, input MarkObligationPaidInput) (*MarkObligationPaidOutput, error) {
	obligation, err := uc.obligationRepo.FindByID(ctx, input.ObligationID)
	if err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordNotFound,
			"obligation not found",
			domainerror.ErrObligationNotFound,
		)
	}

	if obligation.UserID != input.UserID {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordNotAuthorized,
			"obligation does not belong to user",
			domainerror.ErrNotAuthorizedToModifyRecord,
		)
	}

	if obligation.Status != entity.ObligationStatusPaid {
		obligation.Status = entity.ObligationStatusPaid
		obligation.UpdatedAt = time.Now().UTC()
		if err := uc.obligationRepo.Update(ctx, obligation); err != nil {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeRecordInternalError,
				"failed to settle obligation",
				err,
			)
		}
	}

	return &MarkObligationPaidOutput{Obligation: obligation}, nil
}
