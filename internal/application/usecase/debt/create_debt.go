// Package debt contains debt-related use cases.
package debt

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/application/adapter"
	"github.com/expenso/backend/internal/domain/entity"
	domainerror "github.com/expenso/backend/internal/domain/error"
)

// CreateDebtInput represents the input for debt creation.
type CreateDebtInput struct {
	UserID           uuid.UUID
	Direction        entity.DebtDirection
	Amount           decimal.Decimal
	CounterpartyName string
	DueDate          *time.Time
	Note             string
}

// CreateDebtOutput represents the output of debt creation.
type CreateDebtOutput struct {
	Debt *entity.Debt
}

// CreateDebtUseCase handles debt creation logic.
type CreateDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewCreateDebtUseCase creates a new CreateDebtUseCase instance.
func NewCreateDebtUseCase(debtRepo adapter.DebtRepository) *CreateDebtUseCase {
	return &CreateDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute performs the debt creation.
func (uc *CreateDebtUseCase) Execute(ctx context.Context, input CreateDebtInput) (*CreateDebtOutput, error) {
	if input.Direction != entity.DebtOwedByMe && input.Direction != entity.DebtOwedToMe {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeMissingRecordFields,
			"debt direction must be 'owed_by_me' or 'owed_to_me'",
			nil,
		)
	}
	if input.Amount.IsNegative() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be a non-negative number",
			domainerror.ErrInvalidAmount,
		)
	}
	if input.CounterpartyName == "" {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeMissingRecordFields,
			"counterparty name is required",
			nil,
		)
	}

	debt := entity.NewDebt(input.UserID, input.Direction, input.Amount, input.CounterpartyName, input.DueDate, input.Note)

	if err := uc.debtRepo.Create(ctx, debt); err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordInternalError,
			"failed to create debt",
			err,
		)
	}

	return &CreateDebtOutput{Debt: debt}, nil
}
