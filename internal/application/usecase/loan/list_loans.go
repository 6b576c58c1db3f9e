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

// LoanWithAccrual pairs a loan with its interest schedule as of now.
type LoanWithAccrual struct {
	Loan            *entity.Loan
	MonthlyInterest decimal.Decimal
	NextInterestDue *time.Time
	InterestDue     bool
	TotalPaid       decimal.Decimal
}

// ListLoansInput represents the input for listing loans.
type ListLoansInput struct {
	UserID uuid.UUID
	Now    time.Time // zero means current time
}

// ListLoansOutput represents the output of listing loans. Principal totals
// only cover pending loans.
type ListLoansOutput struct {
	Loans                []LoanWithAccrual
	TotalPrincipal       decimal.Decimal
	TotalMonthlyInterest decimal.Decimal
}

// ListLoansUseCase handles loan listing logic.
type ListLoansUseCase struct {
	loanRepo adapter.LoanRepository
}

// NewListLoansUseCase creates a new ListLoansUseCase instance.
func NewListLoansUseCase(loanRepo adapter.LoanRepository) *ListLoansUseCase {
	return &ListLoansUseCase{
		loanRepo: loanRepo,
	}
}

// Execute retrieves the user's loans with their accrual state.
func (uc *ListLoansUseCase) Execute(ctx context.Context, input ListLoansInput) (*ListLoansOutput, error) {
	loans, err := uc.loanRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordInternalError,
			"failed to list loans",
			err,
		)
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	output := &ListLoansOutput{
		Loans:                make([]LoanWithAccrual, 0, len(loans)),
		TotalPrincipal:       decimal.Zero,
		TotalMonthlyInterest: decimal.Zero,
	}
	for _, l := range loans {
		monthly := finance.MonthlyInterest(l.Principal, l.AnnualInterestRatePercent)
		nextDue := finance.NextInterestDueDate(l.LastInterestPaidDate, l.DueDate)
		paid := l.Status == entity.LoanStatusPaid

		totalPaid := decimal.Zero
		for _, payment := range l.InterestPaymentHistory {
			totalPaid = totalPaid.Add(payment.Amount)
		}

		output.Loans = append(output.Loans, LoanWithAccrual{
			Loan:            l,
			MonthlyInterest: monthly,
			NextInterestDue: nextDue,
			InterestDue:     finance.IsInterestDue(now, nextDue, paid),
			TotalPaid:       totalPaid,
		})
		if !paid {
			output.TotalPrincipal = output.TotalPrincipal.Add(l.Principal)
			output.TotalMonthlyInterest = output.TotalMonthlyInterest.Add(monthly)
		}
	}

	return output, nil
}
