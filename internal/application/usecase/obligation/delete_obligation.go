// Package obligation contains tax and violation-related use cases.
package obligation

import (
	"context"

	"github.com/google/uuid"

	"github.com/expenso/backend/internal/application/adapter"
	domainerror "github.com/expenso/backend/internal/domain/error"
)

// DeleteObligationInput represents the input for obligation deletion.
type DeleteObligationInput struct {
	ObligationID uuid.UUID
	UserID       uuid.UUID
}

// DeleteObligationUseCase handles obligation deletion logic.
type DeleteObligationUseCase struct {
	obligationRepo adapter.ObligationRepository
}

// NewDeleteObligationUseCase creates a new DeleteObligationUseCase instance.
func NewDeleteObligationUseCase(obligationRepo adapter.ObligationRepository) *DeleteObligationUseCase {
	return &DeleteObligationUseCase{
		obligationRepo: obligationRepo,
	}
}

// Execute performs the obligation deletion.
func (uc *DeleteObligationUseCase) Execute(ctx context.Context, input DeleteObligationInput) error {
	obligation, err := uc.obligationRepo.FindByID(ctx, input.ObligationID)
	if err != nil {
		return domainerror.NewRecordError(
			domainerror.ErrCodeRecordNotFound,
			"obligation not found",
			domainerror.ErrObligationNotFound,
		)
	}

	if obligation.UserID != input.UserID {
		return domainerror.NewRecordError(
			domainerror.ErrCodeRecordNotAuthorized,
			"obligation does not belong to user",
			domainerror.ErrNotAuthorizedToModifyRecord,
		)
	}

	if err := uc.obligationRepo.Delete(ctx, input.ObligationID); err != nil {
		return domainerror.NewRecordError(
			domainerror.ErrCodeRecordInternalError,
			"failed to delete obligation",
			err,
		)
	}
	return nil
}
