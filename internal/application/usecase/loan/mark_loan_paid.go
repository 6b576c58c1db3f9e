// Package loan contains loan-related use cases.
package loan

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/expenso/backend/internal/application/adapter"
	"github.com/expenso/backend/internal/domain/entity"
	domainerror "github.com/expenso/backend/internal/domain/error"
)

// MarkLoanPaidInput represents the input for settling a loan.
type MarkLoanPaidInput struct {
	LoanID uuid.UUID
	UserID uuid.UUID
}

// MarkLoanPaidOutput represents the output of settling a loan.
type MarkLoanPaidOutput struct {
	Loan *entity.Loan
}

// MarkLoanPaidUseCase handles loan settlement logic.
type MarkLoanPaidUseCase struct {
	loanRepo adapter.LoanRepository
}

// NewMarkLoanPaidUseCase creates a new MarkLoanPaidUseCase instance.
func NewMarkLoanPaidUseCase(loanRepo adapter.LoanRepository) *MarkLoanPaidUseCase {
	return &MarkLoanPaidUseCase{
		loanRepo: loanRepo,
	}
}

// Execute marks the loan as paid. Settling an already paid loan is a no-op.
func (uc *MarkLoanPaidUseCase) Execute(ctx context.Context, input MarkLoanPaidInput) (*MarkLoanPaidOutput, error) {
	loan, err := uc.loanRepo.FindByID(ctx, input.LoanID)
	if err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordNotFound,
			"loan not found",
			domainerror.ErrLoanNotFound,
		)
	}

	if loan.UserID != input.UserID {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordNotAuthorized,
			"loan does not belong to user",
			domainerror.ErrNotAuthorizedToModifyRecord,
		)
	}

	if loan.Status != entity.LoanStatusPaid {
		loan.Status = entity.LoanStatusPaid
		loan.UpdatedAt = time.Now().UTC()
		if err := uc.loanRepo.Update(ctx, loan); err != nil {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeRecordInternalError,
				"failed to settle loan",
				err,
			)
		}
	}

	return &MarkLoanPaidOutput{Loan: loan}, nil
}
