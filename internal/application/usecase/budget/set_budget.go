// Package budget contains monthly budget-related use cases.
package budget

import (
	"context"
	"regexp"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/application/adapter"
	"github.com/expenso/backend/internal/domain/entity"
	domainerror "github.com/expenso/backend/internal/domain/error"
)

// monthPattern matches "YYYY-MM" calendar months.
var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// SetBudgetInput represents the input for setting a monthly budget.
type SetBudgetInput struct {
	UserID uuid.UUID
	Month  string // "YYYY-MM"
	Amount decimal.Decimal
}

// SetBudgetOutput represents the output of setting a monthly budget.
type SetBudgetOutput struct {
	Budget *entity.MonthlyBudget
}

// SetBudgetUseCase handles budget upsert logic. Setting a budget for a
// month that already has one replaces it.
type SetBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewSetBudgetUseCase creates a new SetBudgetUseCase instance.
func NewSetBudgetUseCase(budgetRepo adapter.BudgetRepository) *SetBudgetUseCase {
	return &SetBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute stores the budget for the month.
func (uc *SetBudgetUseCase) Execute(ctx context.Context, input SetBudgetInput) (*SetBudgetOutput, error) {
	if !monthPattern.MatchString(input.Month) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"month must be in YYYY-MM format",
			domainerror.ErrInvalidBudgetMonth,
		)
	}
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"budget amount must be positive",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	budget := entity.NewMonthlyBudget(input.UserID, input.Month, input.Amount)

	if err := uc.budgetRepo.Upsert(ctx, budget); err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetInternalError,
			"failed to store budget",
			err,
		)
	}

	return &SetBudgetOutput{Budget: budget}, nil
}
