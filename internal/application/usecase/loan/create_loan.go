// Package loan contains loan-related use cases.
package loan

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/application/adapter"
	"github.com/expenso/backend/internal/domain/entity"
	domainerror "github.com/expenso/backend/internal/domain/error"
)

// CreateLoanInput represents the input for loan creation.
type CreateLoanInput struct {
	UserID                    uuid.UUID
	OrganizationName          string
	Principal                 decimal.Decimal
	AnnualInterestRatePercent float64
	DueDate                   *time.Time
	Reason                    string
}

// CreateLoanOutput represents the output of loan creation.
type CreateLoanOutput struct {
	Loan *entity.Loan
}

// CreateLoanUseCase handles loan creation logic.
type CreateLoanUseCase struct {
	loanRepo adapter.LoanRepository
}

// NewCreateLoanUseCase creates a new CreateLoanUseCase instance.
func NewCreateLoanUseCase(loanRepo adapter.LoanRepository) *CreateLoanUseCase {
	return &CreateLoanUseCase{
		loanRepo: loanRepo,
	}
}

// Execute performs the loan creation.
func (uc *CreateLoanUseCase) Execute(ctx context.Context, input CreateLoanInput) (*CreateLoanOutput, error) {
	if input.OrganizationName == "" {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeMissingRecordFields,
			"organization name is required",
			nil,
		)
	}
	if input.Principal.IsNegative() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidAmount,
			"principal must be a non-negative number",
			domainerror.ErrInvalidAmount,
		)
	}
	if input.AnnualInterestRatePercent < 0 {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidAmount,
			"interest rate must be a non-negative number",
			domainerror.ErrInvalidAmount,
		)
	}

	loan := entity.NewLoan(
		input.UserID,
		input.OrganizationName,
		input.Principal,
		input.AnnualInterestRatePercent,
		input.DueDate,
		input.Reason,
	)

	if err := uc.loanRepo.Create(ctx, loan); err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordInternalError,
			"failed to create loan",
			err,
		)
	}

	return &CreateLoanOutput{Loan: loan}, nil
}
