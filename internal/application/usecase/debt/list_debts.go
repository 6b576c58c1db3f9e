// Package debt contains debt-related use cases.
package debt

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/application/adapter"
	"github.com/expenso/backend/internal/domain/entity"
	domainerror "github.com/expenso/backend/internal/domain/error"
)

// ListDebtsInput represents the input for listing debts.
type ListDebtsInput struct {
	UserID    uuid.UUID
	Direction *entity.DebtDirection
}

// ListDebtsOutput represents the output of listing debts. Outstanding
// totals only count pending debts.
type ListDebtsOutput struct {
	Debts            []*entity.Debt
	TotalOwedByMe    decimal.Decimal
	TotalOwedToMe    decimal.Decimal
	OutstandingCount int
}

// ListDebtsUseCase handles debt listing logic.
type ListDebtsUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewListDebtsUseCase creates a new ListDebtsUseCase instance.
func NewListDebtsUseCase(debtRepo adapter.DebtRepository) *ListDebtsUseCase {
	return &ListDebtsUseCase{
		debtRepo: debtRepo,
	}
}

// Execute retrieves the user's debts with outstanding totals per direction.
func (uc *ListDebtsUseCase) Execute(ctx context.Context, input ListDebtsInput) (*ListDebtsOutput, error) {
	debts, err := uc.debtRepo.FindByUser(ctx, input.UserID, input.Direction)
	if err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordInternalError,
			"failed to list debts",
			err,
		)
	}

	output := &ListDebtsOutput{
		Debts:         debts,
		TotalOwedByMe: decimal.Zero,
		TotalOwedToMe: decimal.Zero,
	}
	for _, d := range debts {
		if !d.IsOutstanding() {
			continue
		}
		output.OutstandingCount++
		if d.Direction == entity.DebtOwedByMe {
			output.TotalOwedByMe = output.TotalOwedByMe.Add(d.Amount)
		} else {
			output.TotalOwedToMe = output.TotalOwedToMe.Add(d.Amount)
		}
	}

	return output, nil
}
