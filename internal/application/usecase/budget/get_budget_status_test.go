package budget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/application/adapter"
	"github.com/expenso/backend/internal/domain/entity"
	domainerror "github.com/expenso/backend/internal/domain/error"
)

type stubBudgetRepository struct {
	byMonth map[string]*entity.MonthlyBudget
}

func newStubBudgetRepository() *stubBudgetRepository {
	return &stubBudgetRepository{byMonth: make(map[string]*entity.MonthlyBudget)}
}

func (r *stubBudgetRepository) Upsert(_ context.Context, budget *entity.MonthlyBudget) error {
	r.byMonth[budget.Month] = budget
	return nil
}

func (r *stubBudgetRepository) FindByUserAndMonth(_ context.Context, _ uuid.UUID, month string) (*entity.MonthlyBudget, error) {
	return r.byMonth[month], nil
}

type stubExpenseRepository struct {
	expenses []*entity.Expense
}

func (r *stubExpenseRepository) Create(_ context.Context, e *entity.Expense) error {
	r.expenses = append(r.expenses, e)
	return nil
}

func (r *stubExpenseRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	for _, e := range r.expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *stubExpenseRepository) FindByFilter(_ context.Context, filter adapter.ExpenseFilter) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, e := range r.expenses {
		if e.UserID != filter.UserID || e.Date == nil {
			continue
		}
		if filter.StartDate != nil && e.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && !e.Date.Before(*filter.EndDate) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *stubExpenseRepository) Update(_ context.Context, _ *entity.Expense) error { return nil }

func (r *stubExpenseRepository) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func TestSetBudgetUseCase(t *testing.T) {
	userID := uuid.New()

	t.Run("stores a valid budget", func(t *testing.T) {
		repo := newStubBudgetRepository()
		uc := NewSetBudgetUseCase(repo)

		output, err := uc.Execute(context.Background(), SetBudgetInput{
			UserID: userID,
			Month:  "2025-03",
			Amount: decimal.NewFromInt(20000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Budget.Month != "2025-03" {
			t.Errorf("unexpected month: %s", output.Budget.Month)
		}
	})

	t.Run("replaces an existing budget for the month", func(t *testing.T) {
		repo := newStubBudgetRepository()
		uc := NewSetBudgetUseCase(repo)

		for _, amount := range []int64{10000, 25000} {
			if _, err := uc.Execute(context.Background(), SetBudgetInput{
				UserID: userID,
				Month:  "2025-03",
				Amount: decimal.NewFromInt(amount),
			}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if !repo.byMonth["2025-03"].Amount.Equal(decimal.NewFromInt(25000)) {
			t.Errorf("expected 25000, got %s", repo.byMonth["2025-03"].Amount)
		}
	})

	t.Run("rejects a malformed month", func(t *testing.T) {
		uc := NewSetBudgetUseCase(newStubBudgetRepository())
		for _, month := range []string{"2025-13", "2025-3", "03-2025", "march"} {
			_, err := uc.Execute(context.Background(), SetBudgetInput{
				UserID: userID,
				Month:  month,
				Amount: decimal.NewFromInt(100),
			})
			assertBudgetErrorCode(t, err, domainerror.ErrCodeInvalidBudgetMonth)
		}
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		uc := NewSetBudgetUseCase(newStubBudgetRepository())
		_, err := uc.Execute(context.Background(), SetBudgetInput{
			UserID: userID,
			Month:  "2025-03",
			Amount: decimal.Zero,
		})
		assertBudgetErrorCode(t, err, domainerror.ErrCodeInvalidBudgetAmount)
	})
}

func TestGetBudgetStatusUseCase(t *testing.T) {
	userID := uuid.New()

	monthExpense := func(day int, amount int64) *entity.Expense {
		date := time.Date(2025, time.March, day, 10, 0, 0, 0, time.UTC)
		return &entity.Expense{ID: uuid.New(), UserID: userID, Amount: decimal.NewFromInt(amount), Date: &date}
	}

	t.Run("compares month spend against the budget", func(t *testing.T) {
		budgetRepo := newStubBudgetRepository()
		budgetRepo.byMonth["2025-03"] = entity.NewMonthlyBudget(userID, "2025-03", decimal.NewFromInt(20000))
		outside := time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC)
		expenseRepo := &stubExpenseRepository{expenses: []*entity.Expense{
			monthExpense(5, 9000),
			monthExpense(20, 6000),
			{ID: uuid.New(), UserID: userID, Amount: decimal.NewFromInt(500), Date: &outside},
		}}
		uc := NewGetBudgetStatusUseCase(budgetRepo, expenseRepo)

		output, err := uc.Execute(context.Background(), GetBudgetStatusInput{UserID: userID, Month: "2025-03"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Result.Actual.Equal(decimal.NewFromInt(15000)) {
			t.Errorf("expected actual 15000, got %s", output.Result.Actual)
		}
		if !output.Result.Variance.Equal(decimal.NewFromInt(-5000)) {
			t.Errorf("expected variance -5000, got %s", output.Result.Variance)
		}
		if output.Result.PerformancePercent != 25 {
			t.Errorf("expected performance 25%%, got %f", output.Result.PerformancePercent)
		}
	})

	t.Run("missing budget yields not found", func(t *testing.T) {
		uc := NewGetBudgetStatusUseCase(newStubBudgetRepository(), &stubExpenseRepository{})
		_, err := uc.Execute(context.Background(), GetBudgetStatusInput{UserID: userID, Month: "2025-03"})
		assertBudgetErrorCode(t, err, domainerror.ErrCodeBudgetNotFound)
	})
}

func assertBudgetErrorCode(t *testing.T, err error, code domainerror.BudgetErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	var budgetErr *domainerror.BudgetError
	if !errors.As(err, &budgetErr) {
		t.Fatalf("expected a BudgetError, got %T", err)
	}
	if budgetErr.Code != code {
		t.Errorf("expected code %s, got %s", code, budgetErr.Code)
	}
}
