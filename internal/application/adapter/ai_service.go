// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// CategorySuggestionRequest represents a request to suggest categories for expenses.
type CategorySuggestionRequest struct {
	UserID          uuid.UUID
	Expenses        []*ExpenseForAI
	KnownCategories []string
}

// ExpenseForAI represents expense data for AI processing.
type ExpenseForAI struct {
	ID     uuid.UUID
	Note   string
	Amount string
	Date   string
}

// CategorySuggestion represents the AI's category suggestion for one expense.
type CategorySuggestion struct {
	ExpenseID  uuid.UUID
	Category   string
	Confidence float64
	Reasoning  string
}

// CategorySuggestionService defines the interface for AI category suggestions.
type CategorySuggestionService interface {
	// SuggestCategories analyzes uncategorized expenses and returns category suggestions.
	SuggestCategories(ctx context.Context, request *CategorySuggestionRequest) ([]*CategorySuggestion, error)

	// IsAvailable checks if the AI service is available and properly configured.
	IsAvailable() bool
}
