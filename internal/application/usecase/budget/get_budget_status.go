// Package budget contains monthly budget-related use cases.
package budget

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/application/adapter"
	domainerror "github.com/expenso/backend/internal/domain/error"
	"github.com/expenso/backend/internal/domain/finance"
)

// GetBudgetStatusInput represents the input for budget status retrieval.
type GetBudgetStatusInput struct {
	UserID uuid.UUID
	Month  string // "YYYY-MM"
}

// GetBudgetStatusOutput represents the output of budget status retrieval.
type GetBudgetStatusOutput struct {
	Month  string
	Result finance.BudgetResult
}

// GetBudgetStatusUseCase compares one month's actual spend against its budget.
type GetBudgetStatusUseCase struct {
	budgetRepo  adapter.BudgetRepository
	expenseRepo adapter.ExpenseRepository
}

// NewGetBudgetStatusUseCase creates a new GetBudgetStatusUseCase instance.
func NewGetBudgetStatusUseCase(
	budgetRepo adapter.BudgetRepository,
	expenseRepo adapter.ExpenseRepository,
) *GetBudgetStatusUseCase {
	return &GetBudgetStatusUseCase{
		budgetRepo:  budgetRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute computes the budget variance for the month.
func (uc *GetBudgetStatusUseCase) Execute(ctx context.Context, input GetBudgetStatusInput) (*GetBudgetStatusOutput, error) {
	if !monthPattern.MatchString(input.Month) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"month must be in YYYY-MM format",
			domainerror.ErrInvalidBudgetMonth,
		)
	}

	budget, err := uc.budgetRepo.FindByUserAndMonth(ctx, input.UserID, input.Month)
	if err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetInternalError,
			"failed to load budget",
			err,
		)
	}
	if budget == nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"no budget set for month",
			domainerror.ErrBudgetNotFound,
		)
	}

	start, _ := time.Parse("2006-01", input.Month)
	end := start.AddDate(0, 1, 0)
	expenses, err := uc.expenseRepo.FindByFilter(ctx, adapter.ExpenseFilter{
		UserID:    input.UserID,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetInternalError,
			"failed to load month expenses",
			err,
		)
	}

	actual := decimal.Zero
	for _, e := range expenses {
		actual = actual.Add(e.Amount)
	}

	return &GetBudgetStatusOutput{
		Month:  input.Month,
		Result: finance.CompareToBudget(actual, budget.Amount),
	}, nil
}
