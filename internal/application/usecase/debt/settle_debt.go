// Package debt contains debt-related use cases.
package debt

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/expenso/backend/internal/application/adapter"
	"github.com/expenso/backend/internal/domain/entity"
	domainerror "github.com/expenso/backend/internal/domain/error"
)

// SettleDebtInput represents the input for marking a debt cleared.
type SettleDebtInput struct {
	DebtID uuid.UUID
	UserID uuid.UUID
}

// SettleDebtOutput represents the output of settling a debt.
type SettleDebtOutput struct {
	Debt *entity.Debt
}

// SettleDebtUseCase handles debt settlement logic.
type SettleDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewSettleDebtUseCase creates a new SettleDebtUseCase instance.
func NewSettleDebtUseCase(debtRepo adapter.DebtRepository) *SettleDebtUseCase {
	return &SettleDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute marks the debt as cleared. Settling an already cleared debt is a
// no-op rather than an error.
func (uc *SettleDebtUseCase) Execute(ctx context.Context, input SettleDebtInput) (*SettleDebtOutput, error) {
	debt, err := uc.debtRepo.FindByID(ctx, input.DebtID)
	if err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordNotFound,
			"debt not found",
			domainerror.ErrDebtNotFound,
		)
	}

	if debt.UserID != input.UserID {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordNotAuthorized,
			"debt does not belong to user",
			domainerror.ErrNotAuthorizedToModifyRecord,
		)
	}

	if debt.Status != entity.DebtStatusCleared {
		debt.Status = entity.DebtStatusCleared
		debt.UpdatedAt = time.Now().UTC()
		if err := uc.debtRepo.Update(ctx, debt); err != nil {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeRecordInternalError,
				"failed to settle debt",
				err,
			)
		}
	}

	return &SettleDebtOutput{Debt: debt}, nil
}
