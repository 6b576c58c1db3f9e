// Package aicategorization contains AI category suggestion use cases.
package aicategorization

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/expenso/backend/internal/application/adapter"
	"github.com/expenso/backend/internal/domain/entity"
	domainerror "github.com/expenso/backend/internal/domain/error"
)

// ApplySuggestionInput represents the input for applying a suggestion.
type ApplySuggestionInput struct {
	UserID    uuid.UUID
	ExpenseID uuid.UUID
	Category  string
}

// ApplySuggestionOutput represents the output of applying a suggestion.
type ApplySuggestionOutput struct {
	Expense *entity.Expense
}

// ApplySuggestionUseCase sets a suggested category on an expense.
type ApplySuggestionUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewApplySuggestionUseCase creates a new ApplySuggestionUseCase instance.
func NewApplySuggestionUseCase(expenseRepo adapter.ExpenseRepository) *ApplySuggestionUseCase {
	return &ApplySuggestionUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute applies the suggested category to the expense.
func (uc *ApplySuggestionUseCase) Execute(ctx context.Context, input ApplySuggestionInput) (*ApplySuggestionOutput, error) {
	if input.Category == "" {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeMissingRecordFields,
			"suggested category is required",
			nil,
		)
	}

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

	expense.Category = input.Category
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordInternalError,
			"failed to update expense",
			err,
		)
	}

	return &ApplySuggestionOutput{Expense: expense}, nil
}
