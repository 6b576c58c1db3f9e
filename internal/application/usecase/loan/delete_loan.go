// Package loan contains loan-related use cases.
package loan

import (
	"context"

	"github.com/google/uuid"

	"github.com/expenso/backend/internal/application/adapter"
	domainerror "github.com/expenso/backend/internal/domain/error"
)

// DeleteLoanInput represents the input for loan deletion.
type DeleteLoanInput struct {
	LoanID uuid.UUID
	UserID uuid.UUID
}

// DeleteLoanUseCase handles loan deletion logic.
type DeleteLoanUseCase struct {
	loanRepo adapter.LoanRepository
}

// NewDeleteLoanUseCase creates a new DeleteLoanUseCase instance.
func NewDeleteLoanUseCase(loanRepo adapter.LoanRepository) *DeleteLoanUseCase {
	return &DeleteLoanUseCase{
		loanRepo: loanRepo,
	}
}

// Execute performs the loan deletion.
func (uc *DeleteLoanUseCase) Execute(ctx context.Context, input DeleteLoanInput) error {
	loan, err := uc.loanRepo.FindByID(ctx, input.LoanID)
	if err != nil {
		return domainerror.NewRecordError(
			domainerror.ErrCodeRecordNotFound,
			"loan not found",
			domainerror.ErrLoanNotFound,
		)
	}

	if loan.UserID != input.UserID {
		return domainerror.NewRecordError(
			domainerror.ErrCodeRecordNotAuthorized,
			"loan does not belong to user",
			domainerror.ErrNotAuthorizedToModifyRecord,
		)
	}

	if err := uc.loanRepo.Delete(ctx, input.LoanID); err != nil {
		return domainerror.NewRecordError(
			domainerror.ErrCodeRecordInternalError,
			"failed to delete loan",
			err,
		)
	}
	return nil
}
