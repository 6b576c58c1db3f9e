// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/expenso/backend/internal/domain/entity"
)

// ExpenseFilter defines filter options for listing expenses.
type ExpenseFilter struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByFilter retrieves expenses matching the filter, newest first.
	FindByFilter(ctx context.Context, filter ExpenseFilter) ([]*entity.Expense, error)

	// Update updates an existing expense in the database.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

// DebtRepository defines the interface for debt persistence operations.
type DebtRepository interface {
	// Create creates a new debt in the database.
	Create(ctx context.Context, debt *entity.Debt) error

	// FindByID retrieves a debt by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Debt, error)

	// FindByUser retrieves all debts for a user, optionally one direction only.
	FindByUser(ctx context.Context, userID uuid.UUID, direction *entity.DebtDirection) ([]*entity.Debt, error)

	// Update updates an existing debt in the database.
	Update(ctx context.Context, debt *entity.Debt) error

	// Delete removes a debt from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

// InvestmentPlanRepository defines the interface for SIP plan persistence operations.
type InvestmentPlanRepository interface {
	// Create creates a new investment plan in the database.
	Create(ctx context.Context, plan *entity.InvestmentPlan) error

	// FindByID retrieves an investment plan by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.InvestmentPlan, error)

	// FindByUser retrieves all investment plans for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.InvestmentPlan, error)

	// Update updates an existing investment plan in the database.
	Update(ctx context.Context, plan *entity.InvestmentPlan) error

	// Delete removes an investment plan from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

// StockRepository defines the interface for stock holding persistence operations.
type StockRepository interface {
	// Create creates a new stock holding in the database.
	Create(ctx context.Context, stock *entity.StockHolding) error

	// FindByID retrieves a stock holding by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.StockHolding, error)

	// FindByUser retrieves all stock holdings for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.StockHolding, error)

	// Update updates an existing stock holding in the database.
	Update(ctx context.Context, stock *entity.StockHolding) error

	// Delete removes a stock holding from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

// LoanRepository defines the interface for loan persistence operations.
type LoanRepository interface {
	// Create creates a new loan in the database.
	Create(ctx context.Context, loan *entity.Loan) error

	// FindByID retrieves a loan by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Loan, error)

	// FindByUser retrieves all loans for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Loan, error)

	// Update updates an existing loan in the database.
	Update(ctx context.Context, loan *entity.Loan) error

	// Delete removes a loan from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ObligationRepository defines the interface for tax and violation persistence operations.
type ObligationRepository interface {
	// Create creates a new obligation in the database.
	Create(ctx context.Context, obligation *entity.Obligation) error

	// FindByID retrieves an obligation by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Obligation, error)

	// FindByUser retrieves all obligations for a user, optionally one kind only.
	FindByUser(ctx context.Context, userID uuid.UUID, kind *entity.ObligationKind) ([]*entity.Obligation, error)

	// FindDueBetween retrieves pending obligations of all users with a due
	// date inside [from, to). Used by the reminder scan.
	FindDueBetween(ctx context.Context, from, to time.Time) ([]*entity.Obligation, error)

	// Update updates an existing obligation in the database.
	Update(ctx context.Context, obligation *entity.Obligation) error

	// Delete removes an obligation from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

// BudgetRepository defines the interface for monthly budget persistence operations.
type BudgetRepository interface {
	// Upsert creates or replaces the budget for a user and month.
	Upsert(ctx context.Context, budget *entity.MonthlyBudget) error

	// FindByUserAndMonth retrieves the budget for a user and month, nil when unset.
	FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month string) (*entity.MonthlyBudget, error)
}
