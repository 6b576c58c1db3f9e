// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/application/adapter"
	"github.com/expenso/backend/internal/domain/entity"
	domainerror "github.com/expenso/backend/internal/domain/error"
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
	Total    decimal.Decimal
	Count    int
}

// ListExpensesUseCase handles expense listing logic.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute retrieves the user's expenses, optionally filtered by period and
// category, along with their total.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	expenses, err := uc.expenseRepo.FindByFilter(ctx, adapter.ExpenseFilter{
		UserID:    input.UserID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Category:  input.Category,
	})
	if err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordInternalError,
			"failed to list expenses",
			err,
		)
	}

	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}

	return &ListExpensesOutput{
		Expenses: expenses,
		Total:    total,
		Count:    len(expenses),
	}, nil
}
