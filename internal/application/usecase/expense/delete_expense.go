// Package expense contains expense-related use cases.
package expense

import (
	"context"

	"github.com/google/uuid"

	"github.com/expenso/backend/internal/application/adapter"
	domainerror "github.com/expenso/backend/internal/domain/error"
)

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	ExpenseID uuid.UUID
	UserID    uuid.UUID
}

// DeleteExpenseUseCase handles expense deletion logic.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense deletion.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) error {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		return domainerror.NewRecordError(
			domainerror.ErrCodeRecordNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	if expense.UserID != input.UserID {
		return domainerror.NewRecordError(
			domainerror.ErrCodeRecordNotAuthorized,
			"expense does not belong to user",
			domainerror.ErrNotAuthorizedToModifyRecord,
		)
	}

	if err := uc.expenseRepo.Delete(ctx, input.ExpenseID); err != nil {
		return domainerror.NewRecordError(
			domainerror.ErrCodeRecordInternalError,
			"failed to delete expense",
			err,
		)
	}
	return nil
}
