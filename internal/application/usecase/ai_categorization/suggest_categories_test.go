package aicategorization

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/application/adapter"
	"github.com/expenso/backend/internal/domain/entity"
)

type stubExpenseRepository struct {
	expenses []*entity.Expense
	err      error
	updated  []*entity.Expense
}

func (r *stubExpenseRepository) Create(_ context.Context, _ *entity.Expense) error { return nil }

func (r *stubExpenseRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	for _, e := range r.expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *stubExpenseRepository) FindByFilter(_ context.Context, filter adapter.ExpenseFilter) ([]*entity.Expense, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.Expense
	for _, e := range r.expenses {
		if e.UserID != filter.UserID {
			continue
		}
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *stubExpenseRepository) Update(_ context.Context, e *entity.Expense) error {
	r.updated = append(r.updated, e)
	return nil
}

func (r *stubExpenseRepository) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type stubAIService struct {
	available bool
	err       error
	requests  []*adapter.CategorySuggestionRequest
}

func (s *stubAIService) IsAvailable() bool { return s.available }

func (s *stubAIService) SuggestCategories(_ context.Context, request *adapter.CategorySuggestionRequest) ([]*adapter.CategorySuggestion, error) {
	s.requests = append(s.requests, request)
	if s.err != nil {
		return nil, s.err
	}
	out := make([]*adapter.CategorySuggestion, 0, len(request.Expenses))
	for _, e := range request.Expenses {
		out = append(out, &adapter.CategorySuggestion{
			ExpenseID:  e.ID,
			Category:   "Groceries",
			Confidence: 0.9,
			Reasoning:  "note mentions a supermarket",
		})
	}
	return out, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func expenseWithCategory(userID uuid.UUID, category, note string) *entity.Expense {
	date := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)
	return entity.NewExpense(userID, decimal.NewFromInt(250), category, &date, note)
}

func TestSuggestCategoriesUseCase(t *testing.T) {
	userID := uuid.New()

	t.Run("suggests categories for uncategorized expenses only", func(t *testing.T) {
		repo := &stubExpenseRepository{expenses: []*entity.Expense{
			expenseWithCategory(userID, "", "big bazaar weekly run"),
			expenseWithCategory(userID, "", "dmart"),
			expenseWithCategory(userID, "Rent", "may rent"),
		}}
		ai := &stubAIService{available: true}
		tracker := NewInMemoryProcessingTracker()

		uc := NewSuggestCategoriesUseCase(repo, ai, tracker, testLogger())
		output, err := uc.Execute(context.Background(), SuggestCategoriesInput{UserID: userID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if output.Processed != 2 {
			t.Errorf("Processed = %d, want 2", output.Processed)
		}
		if len(output.Suggestions) != 2 {
			t.Fatalf("got %d suggestions, want 2", len(output.Suggestions))
		}
		if output.JobID == "" {
			t.Error("JobID is empty")
		}
		if len(ai.requests) != 1 {
			t.Fatalf("AI called %d times, want 1", len(ai.requests))
		}
		if got := ai.requests[0].KnownCategories; len(got) != 1 || got[0] != "Rent" {
			t.Errorf("KnownCategories = %v, want [Rent]", got)
		}
	})

	t.Run("no uncategorized expenses is a no-op", func(t *testing.T) {
		repo := &stubExpenseRepository{expenses: []*entity.Expense{
			expenseWithCategory(userID, "Rent", "may rent"),
		}}
		ai := &stubAIService{available: true}

		uc := NewSuggestCategoriesUseCase(repo, ai, NewInMemoryProcessingTracker(), testLogger())
		output, err := uc.Execute(context.Background(), SuggestCategoriesInput{UserID: userID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if output.Processed != 0 || len(output.Suggestions) != 0 {
			t.Errorf("output = %+v, want empty run", output)
		}
		if len(ai.requests) != 0 {
			t.Errorf("AI called %d times, want 0", len(ai.requests))
		}
	})

	t.Run("splits large runs into batches", func(t *testing.T) {
		var expenses []*entity.Expense
		for i := 0; i < BatchSize+5; i++ {
			expenses = append(expenses, expenseWithCategory(userID, "", "misc"))
		}
		repo := &stubExpenseRepository{expenses: expenses}
		ai := &stubAIService{available: true}

		uc := NewSuggestCategoriesUseCase(repo, ai, NewInMemoryProcessingTracker(), testLogger())
		output, err := uc.Execute(context.Background(), SuggestCategoriesInput{UserID: userID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(ai.requests) != 2 {
			t.Fatalf("AI called %d times, want 2", len(ai.requests))
		}
		if len(ai.requests[0].Expenses) != BatchSize {
			t.Errorf("first batch size = %d, want %d", len(ai.requests[0].Expenses), BatchSize)
		}
		if len(ai.requests[1].Expenses) != 5 {
			t.Errorf("second batch size = %d, want 5", len(ai.requests[1].Expenses))
		}
		if output.Processed != BatchSize+5 {
			t.Errorf("Processed = %d, want %d", output.Processed, BatchSize+5)
		}
	})

	t.Run("unconfigured service is rejected", func(t *testing.T) {
		uc := NewSuggestCategoriesUseCase(&stubExpenseRepository{}, &stubAIService{}, NewInMemoryProcessingTracker(), testLogger())
		if _, err := uc.Execute(context.Background(), SuggestCategoriesInput{UserID: userID}); err == nil {
			t.Fatal("Execute() error = nil, want error")
		}
	})

	t.Run("concurrent run for the same user is rejected", func(t *testing.T) {
		tracker := NewInMemoryProcessingTracker()
		tracker.SetProcessing(userID, "job-1")

		uc := NewSuggestCategoriesUseCase(&stubExpenseRepository{}, &stubAIService{available: true}, tracker, testLogger())
		if _, err := uc.Execute(context.Background(), SuggestCategoriesInput{UserID: userID}); err == nil {
			t.Fatal("Execute() error = nil, want error")
		}
	})

	t.Run("AI failure records a classified error and clears processing", func(t *testing.T) {
		repo := &stubExpenseRepository{expenses: []*entity.Expense{
			expenseWithCategory(userID, "", "misc"),
		}}
		ai := &stubAIService{available: true, err: errors.New("googleapi: Error 429: resource exhausted")}
		tracker := NewInMemoryProcessingTracker()

		uc := NewSuggestCategoriesUseCase(repo, ai, tracker, testLogger())
		if _, err := uc.Execute(context.Background(), SuggestCategoriesInput{UserID: userID}); err == nil {
			t.Fatal("Execute() error = nil, want error")
		}
		if !tracker.HasError(userID) {
			t.Fatal("tracker has no error recorded")
		}
		if got := tracker.GetError(userID).Code; got != ErrCodeAIRateLimited {
			t.Errorf("recorded code = %q, want %q", got, ErrCodeAIRateLimited)
		}
		if tracker.IsProcessing(userID) {
			t.Error("processing flag not cleared after failure")
		}
	})

	t.Run("new run clears the previous error", func(t *testing.T) {
		tracker := NewInMemoryProcessingTracker()
		tracker.SetError(userID, &ProcessingError{Code: ErrCodeAIUnknownError})

		repo := &stubExpenseRepository{}
		uc := NewSuggestCategoriesUseCase(repo, &stubAIService{available: true}, tracker, testLogger())
		if _, err := uc.Execute(context.Background(), SuggestCategoriesInput{UserID: userID}); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if tracker.HasError(userID) {
			t.Error("previous error not cleared")
		}
	})
}

func TestApplySuggestionUseCase(t *testing.T) {
	userID := uuid.New()

	t.Run("applies the suggested category", func(t *testing.T) {
		expense := expenseWithCategory(userID, "", "big bazaar")
		repo := &stubExpenseRepository{expenses: []*entity.Expense{expense}}

		uc := NewApplySuggestionUseCase(repo)
		output, err := uc.Execute(context.Background(), ApplySuggestionInput{
			UserID:    userID,
			ExpenseID: expense.ID,
			Category:  "Groceries",
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if output.Expense.Category != "Groceries" {
			t.Errorf("Category = %q, want Groceries", output.Expense.Category)
		}
		if len(repo.updated) != 1 {
			t.Errorf("Update called %d times, want 1", len(repo.updated))
		}
	})

	t.Run("empty category is rejected", func(t *testing.T) {
		uc := NewApplySuggestionUseCase(&stubExpenseRepository{})
		if _, err := uc.Execute(context.Background(), ApplySuggestionInput{
			UserID:    userID,
			ExpenseID: uuid.New(),
		}); err == nil {
			t.Fatal("Execute() error = nil, want error")
		}
	})

	t.Run("another user's expense is rejected", func(t *testing.T) {
		expense := expenseWithCategory(uuid.New(), "", "big bazaar")
		repo := &stubExpenseRepository{expenses: []*entity.Expense{expense}}

		uc := NewApplySuggestionUseCase(repo)
		if _, err := uc.Execute(context.Background(), ApplySuggestionInput{
			UserID:    userID,
			ExpenseID: expense.ID,
			Category:  "Groceries",
		}); err == nil {
			t.Fatal("Execute() error = nil, want error")
		}
	})
}

func TestGetStatusUseCase(t *testing.T) {
	userID := uuid.New()

	t.Run("reports uncategorized count and run state", func(t *testing.T) {
		repo := &stubExpenseRepository{expenses: []*entity.Expense{
			expenseWithCategory(userID, "", "one"),
			expenseWithCategory(userID, "", "two"),
			expenseWithCategory(userID, "Rent", "rent"),
		}}
		tracker := NewInMemoryProcessingTracker()
		tracker.SetProcessing(userID, "job-9")

		uc := NewGetStatusUseCase(repo, tracker)
		output, err := uc.Execute(context.Background(), GetStatusInput{UserID: userID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if output.UncategorizedCount != 2 {
			t.Errorf("UncategorizedCount = %d, want 2", output.UncategorizedCount)
		}
		if !output.IsProcessing || output.JobID != "job-9" {
			t.Errorf("processing state = %v/%q, want true/job-9", output.IsProcessing, output.JobID)
		}
		if output.HasError {
			t.Error("HasError = true, want false")
		}
	})

	t.Run("surfaces the recorded error", func(t *testing.T) {
		tracker := NewInMemoryProcessingTracker()
		tracker.SetError(userID, &ProcessingError{Code: ErrCodeAITimeout})

		uc := NewGetStatusUseCase(&stubExpenseRepository{}, tracker)
		output, err := uc.Execute(context.Background(), GetStatusInput{UserID: userID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !output.HasError || output.Error == nil || output.Error.Code != ErrCodeAITimeout {
			t.Errorf("error state = %v/%+v, want recorded timeout", output.HasError, output.Error)
		}
	})
}
