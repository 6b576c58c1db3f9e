package dto

import (
	"github.com/expenso/backend/internal/application/adapter"
	aicategorization "github.com/expenso/backend/internal/application/usecase/ai_categorization"
)

// ApplySuggestionRequest represents the request body for applying a suggestion.
type ApplySuggestionRequest struct {
	Category string `json:"category" binding:"required,max=100"`
}

// ProcessingErrorResponse represents an AI processing error in the response.
type ProcessingErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
	Timestamp string `json:"timestamp"`
}

// CategorizationStatusResponse represents the response for AI categorization status.
type CategorizationStatusResponse struct {
	UncategorizedCount int                      `json:"uncategorized_count"`
	IsProcessing       bool                     `json:"is_processing"`
	JobID              string                   `json:"job_id,omitempty"`
	HasError           bool                     `json:"has_error"`
	Error              *ProcessingErrorResponse `json:"error,omitempty"`
}

// CategorySuggestionResponse represents one suggested category.
type CategorySuggestionResponse struct {
	ExpenseID  string  `json:"expense_id"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning,omitempty"`
}

// SuggestCategoriesResponse represents the response for a suggestion run.
type SuggestCategoriesResponse struct {
	JobID       string                       `json:"job_id"`
	Processed   int                          `json:"processed"`
	Suggestions []CategorySuggestionResponse `json:"suggestions"`
}

// ToCategorizationStatusResponse converts status output to a DTO.
func ToCategorizationStatusResponse(output *aicategorization.GetStatusOutput) CategorizationStatusResponse {
	response := CategorizationStatusResponse{
		UncategorizedCount: output.UncategorizedCount,
		IsProcessing:       output.IsProcessing,
		JobID:              output.JobID,
		HasError:           output.HasError,
	}
	if output.Error != nil {
		response.Error = &ProcessingErrorResponse{
			Code:      output.Error.Code,
			Message:   output.Error.Message,
			Retryable: output.Error.Retryable,
			Timestamp: output.Error.Timestamp.Format(timestampLayout),
		}
	}
	return response
}

// ToSuggestCategoriesResponse converts a suggestion run output to a DTO.
func ToSuggestCategoriesResponse(output *aicategorization.SuggestCategoriesOutput) SuggestCategoriesResponse {
	suggestions := make([]CategorySuggestionResponse, len(output.Suggestions))
	for i, s := range output.Suggestions {
		suggestions[i] = toCategorySuggestionResponse(s)
	}
	return SuggestCategoriesResponse{
		JobID:       output.JobID,
		Processed:   output.Processed,
		Suggestions: suggestions,
	}
}

func toCategorySuggestionResponse(s *adapter.CategorySuggestion) CategorySuggestionResponse {
	return CategorySuggestionResponse{
		ExpenseID:  s.ExpenseID.String(),
		Category:   s.Category,
		Confidence: s.Confidence,
		Reasoning:  s.Reasoning,
	}
}
