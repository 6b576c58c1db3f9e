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

// UpdateExpenseInput represents the input for expense update. Nil fields
// are left unchanged.
type UpdateExpenseInput struct {
	ExpenseID uuid.UUID
	UserID    uuid.UUID
	Amount    *decimal.Decimal
	Category  *string
	Date      *time.Time
	Note      *string
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	if expense.UserID != input.UserID {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordNotAuthorized,
			"expense does not belong to user",
			domainerror.ErrNotAuthorizedToModifyRecord,
		)
	}

	if input.Amount != nil {
		if err := validateAmount(*input.Amount); err != nil {
			return nil, err
		}
		expense.Amount = *input.Amount
	}
	if input.Category != nil {
		category := *input.Category
		if category == "" {
			category = entity.UncategorizedLabel
		}
		expense.Category = category
	}
	if input.Date != nil {
		expense.Date = input.Date
	}
	if input.Note != nil {
		if err := validateNote(*input.Note); err != nil {
			return nil, err
		}
		expense.Note = *input.Note
	}
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordInternalError,
			"failed to update expense",
			err,
		)
	}

	return &UpdateExpenseOutput{Expense: expense}, nil
}
