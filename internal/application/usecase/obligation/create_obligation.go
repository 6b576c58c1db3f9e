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
)

// CreateObligationInput represents the input for obligation creation.
type CreateObligationInput struct {
	UserID        uuid.UUID
	Kind          entity.ObligationKind
	Type          string
	Amount        decimal.Decimal
	DueDate       *time.Time
	ViolationDate *time.Time
	Note          string
}

// CreateObligationOutput represents the output of obligation creation.
type CreateObligationOutput struct {
	Obligation *entity.Obligation
}

// CreateObligationUseCase handles obligation creation logic.
type CreateObligationUseCase struct {
	obligationRepo adapter.ObligationRepository
}

// NewCreateObligationUseCase creates a new CreateObligationUseCase instance.
func NewCreateObligationUseCase(obligationRepo adapter.ObligationRepository) *CreateObligationUseCase {
	return &CreateObligationUseCase{
		obligationRepo: obligationRepo,
	}
}

// Execute performs the obligation creation. Violations without an explicit
// due date default to the violation date plus thirty days.
func (uc *CreateObligationUseCase) Execute(ctx context.Context, input CreateObligationInput) (*CreateObligationOutput, error) {
	if input.Kind != entity.ObligationTax && input.Kind != entity.ObligationViolation {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeMissingRecordFields,
			"obligation kind must be 'tax' or 'violation'",
			nil,
		)
	}
	if input.Type == "" {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeMissingRecordFields,
			"obligation type is required",
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

	obligation := entity.NewObligation(
		input.UserID,
		input.Kind,
		input.Type,
		input.Amount,
		input.DueDate,
		input.ViolationDate,
		input.Note,
	)

	if err := uc.obligationRepo.Create(ctx, obligation); err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordInternalError,
			"failed to create obligation",
			err,
		)
	}

	return &CreateObligationOutput{Obligation: obligation}, nil
}
