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

// MaxNoteLength is the maximum allowed length for record notes.
const MaxNoteLength = 1000

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	UserID   uuid.UUID
	Amount   decimal.Decimal
	Category string
	Date     *time.Time
	Note     string
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := validateNote(input.Note); err != nil {
		return nil, err
	}

	expense := entity.NewExpense(input.UserID, input.Amount, input.Category, input.Date, input.Note)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordInternalError,
			"failed to create expense",
			err,
		)
	}

	return &CreateExpenseOutput{Expense: expense}, nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domainerror.NewRecordError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be a non-negative number",
			domainerror.ErrInvalidAmount,
		)
	}
	return nil
}

func validateNote(note string) error {
	if len(note) > MaxNoteLength {
		return domainerror.NewRecordError(
			domainerror.ErrCodeMissingRecordFields,
			"note is too long",
			nil,
		)
	}
	return nil
}
