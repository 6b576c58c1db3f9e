// Package aicategorization contains AI category suggestion use cases.
package aicategorization

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/expenso/backend/internal/application/adapter"
	"github.com/expenso/backend/internal/domain/entity"
)

// BatchSize is the number of expenses to send per AI request. Keeping this
// small (30-50) ensures Gemini can respond within timeout.
const BatchSize = 40

// SuggestCategoriesInput represents the input for a suggestion run.
type SuggestCategoriesInput struct {
	UserID uuid.UUID
}

// SuggestCategoriesOutput represents the result of a suggestion run.
type SuggestCategoriesOutput struct {
	JobID       string
	Processed   int
	Suggestions []*adapter.CategorySuggestion
}

// SuggestCategoriesUseCase asks the AI service to propose a category for
// every uncategorized expense of a user.
type SuggestCategoriesUseCase struct {
	expenseRepo adapter.ExpenseRepository
	aiService   adapter.CategorySuggestionService
	tracker     ProcessingTracker
	logger      *slog.Logger
}

// NewSuggestCategoriesUseCase creates a new SuggestCategoriesUseCase instance.
func NewSuggestCategoriesUseCase(
	expenseRepo adapter.ExpenseRepository,
	aiService adapter.CategorySuggestionService,
	tracker ProcessingTracker,
	logger *slog.Logger,
) *SuggestCategoriesUseCase {
	return &SuggestCategoriesUseCase{
		expenseRepo: expenseRepo,
		aiService:   aiService,
		tracker:     tracker,
		logger:      logger,
	}
}

// Execute runs a suggestion pass over the user's uncategorized expenses.
// Only one run per user may be in flight at a time.
func (uc *SuggestCategoriesUseCase) Execute(ctx context.Context, input SuggestCategoriesInput) (*SuggestCategoriesOutput, error) {
	if !uc.aiService.IsAvailable() {
		return nil, fmt.Errorf("%s: service not configured", ErrCodeAIServiceUnavailable)
	}

	if uc.tracker.IsProcessing(input.UserID) {
		return nil, fmt.Errorf("categorization already in progress for user %s", input.UserID)
	}

	jobID := uuid.NewString()
	uc.tracker.SetProcessing(input.UserID, jobID)
	uc.tracker.ClearError(input.UserID)
	defer uc.tracker.ClearProcessing(input.UserID)

	expenses, err := uc.expenseRepo.FindByFilter(ctx, adapter.ExpenseFilter{UserID: input.UserID})
	if err != nil {
		processingErr := classifyError(err)
		uc.tracker.SetError(input.UserID, processingErr)
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	var uncategorized []*entity.Expense
	for _, e := range expenses {
		if e.Category == entity.UncategorizedLabel {
			uncategorized = append(uncategorized, e)
		}
	}
	if len(uncategorized) == 0 {
		return &SuggestCategoriesOutput{JobID: jobID}, nil
	}

	known := knownCategories(expenses)

	output := &SuggestCategoriesOutput{JobID: jobID}
	for start := 0; start < len(uncategorized); start += BatchSize {
		end := start + BatchSize
		if end > len(uncategorized) {
			end = len(uncategorized)
		}

		request := &adapter.CategorySuggestionRequest{
			UserID:          input.UserID,
			Expenses:        expensesForAI(uncategorized[start:end]),
			KnownCategories: known,
		}

		suggestions, err := uc.aiService.SuggestCategories(ctx, request)
		if err != nil {
			processingErr := classifyError(err)
			uc.tracker.SetError(input.UserID, processingErr)
			uc.logger.Error("AI suggestion batch failed",
				"userId", input.UserID,
				"jobId", jobID,
				"code", processingErr.Code,
				"error", err,
			)
			return nil, fmt.Errorf("suggestion batch failed: %w", err)
		}

		output.Processed += end - start
		output.Suggestions = append(output.Suggestions, suggestions...)
	}

	uc.logger.Info("AI suggestion run complete",
		"userId", input.UserID,
		"jobId", jobID,
		"processed", output.Processed,
		"suggestions", len(output.Suggestions),
	)

	return output, nil
}

// knownCategories collects the distinct categories already in use, sorted,
// excluding the uncategorized placeholder.
func knownCategories(expenses []*entity.Expense) []string {
	seen := make(map[string]struct{})
	for _, e := range expenses {
		if e.Category == entity.UncategorizedLabel {
			continue
		}
		seen[e.Category] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func expensesForAI(expenses []*entity.Expense) []*adapter.ExpenseForAI {
	out := make([]*adapter.ExpenseForAI, 0, len(expenses))
	for _, e := range expenses {
		date := ""
		if e.Date != nil {
			date = e.Date.Format("2006-01-02")
		}
		out = append(out, &adapter.ExpenseForAI{
			ID:     e.ID,
			Note:   e.Note,
			Amount: e.Amount.StringFixed(2),
			Date:   date,
		})
	}
	return out
}
