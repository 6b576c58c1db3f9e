// Package debt contains debt-related use cases.
package debt

import (
	"context"

	"github.com/google/uuid"

	"github.com/expenso/backend/internal/application/adapter"
	domainerror "github.com/expenso/backend/internal/domain/error"
)

// DeleteDebtInput represents the input for debt deletion.
type DeleteDebtInput struct {
	DebtID uuid.UUID
	UserID uuid.UUID
}

// DeleteDebtUseCase handles debt deletion logic.
type DeleteDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewDeleteDebtUseCase creates a new DeleteDebtUseCase instance.
func NewDeleteDebtUseCase(debtRepo adapter.DebtRepository) *DeleteDebtUseCase {
	return &DeleteDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute performs the debt deletion.
func (uc *DeleteDebtUseCase) Execute(ctx context.Context, input DeleteDebtInput) error {
	debt, err := uc.debtRepo.FindByID(ctx, input.DebtID)
	if err != nil {
		return domainerror.NewRecordError(
			domainerror.ErrCodeRecordNotFound,
			"debt not found",
			domainerror.ErrDebtNotFound,
		)
	}

	if debt.UserID != input.UserID {
		return domainerror.NewRecordError(
			domainerror.ErrCodeRecordNotAuthorized,
			"debt does not belong to user",
			domainerror.ErrNotAuthorizedToModifyRecord,
		)
	}

	if err := uc.debtRepo.Delete(ctx, input.DebtID); err != nil {
		return domainerror.NewRecordError(
			domainerror.ErrCodeRecordInternalError,
			"failed to delete debt",
			err,
		)
	}
	return nil
}
