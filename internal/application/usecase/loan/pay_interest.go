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
	"github.com/expenso/backend/internal/domain/finance"
)

// PayInterestInput represents the input for recording an interest payment.
// A zero Amount pays the computed monthly interest.
type PayInterestInput struct {
	LoanID uuid.UUID
	UserID uuid.UUID
	Amount decimal.Decimal
	PaidAt time.Time // zero means current time
}

// PayInterestOutput represents the output of recording an interest payment.
type PayInterestOutput struct {
	Loan       *entity.Loan
	AmountPaid decimal.Decimal
}

// PayInterestUseCase handles loan interest payment logic. Paying interest
// never reduces the principal.
type PayInterestUseCase struct {
	loanRepo adapter.LoanRepository
}

// NewPayInterestUseCase creates a new PayInterestUseCase instance.
func NewPayInterestUseCase(loanRepo adapter.LoanRepository) *PayInterestUseCase {
	return &PayInterestUseCase{
		loanRepo: loanRepo,
	}
}

// Execute records the interest payment.
func (uc *PayInterestUseCase) Execute(ctx context.Context, input PayInterestInput) (*PayInterestOutput, error) {
	if input.Amount.IsNegative() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidAmount,
			"payment amount must be a non-negative number",
			domainerror.ErrInvalidAmount,
		)
	}

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
	if loan.Status == entity.LoanStatusPaid {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeLoanAlreadyPaid,
			"loan already paid",
			domainerror.ErrLoanAlreadyPaid,
		)
	}

	paidAt := input.PaidAt
	if paidAt.IsZero() {
		paidAt = time.Now().UTC()
	}
	amount := input.Amount
	if amount.IsZero() {
		amount = finance.MonthlyInterest(loan.Principal, loan.AnnualInterestRatePercent)
	}

	loan.RecordInterestPayment(paidAt, amount)

	if err := uc.loanRepo.Update(ctx, loan); err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordInternalError,
			"failed to record interest payment",
			err,
		)
	}

	return &PayInterestOutput{Loan: loan, AmountPaid: amount}, nil
}
