// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/expenso/backend/internal/application/adapter"
)

// GeminiService implements the CategorySuggestionService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// SuggestCategories analyzes uncategorized expenses and returns category suggestions.
func (s *GeminiService) SuggestCategories(ctx context.Context, request *adapter.CategorySuggestionRequest) ([]*adapter.CategorySuggestion, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)

	// Configure model for JSON output
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildPrompt(request)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	results, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return results, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(request *adapter.CategorySuggestionRequest) string {
	var sb strings.Builder

	sb.WriteString(`You are an expert at categorizing personal spending records. Your task is to analyze uncategorized expenses and suggest an appropriate category for each.

RULES:
- Prefer one of the user's existing categories when it fits well
- Only propose a new category name when no existing one fits; keep new names short (one or two words, Title Case)
- Common category names: Food & Dining, Groceries, Transport, Fuel, Rent, Utilities, Healthcare, Education, Entertainment, Shopping, Travel, Subscriptions, Fitness, Personal Care
- Base the suggestion on the note text; the amount and date are secondary signals
- Confidence reflects how certain you are (0.0 to 1.0)

EXISTING CATEGORIES:
`)

	if len(request.KnownCategories) > 0 {
		for _, name := range request.KnownCategories {
			sb.WriteString(fmt.Sprintf("- %s\n", name))
		}
	} else {
		sb.WriteString("(no existing categories)\n")
	}

	sb.WriteString("\nEXPENSES TO CATEGORIZE:\n")
	for _, e := range request.Expenses {
		sb.WriteString(fmt.Sprintf("- ID: %s, Note: %q, Amount: %s, Date: %s\n",
			e.ID, e.Note, e.Amount, e.Date))
	}

	sb.WriteString(`
Respond with a JSON array of suggestions. Each suggestion must have:
{
  "expense_id": "uuid of the expense",
  "category": "suggested category name",
  "confidence": 0.0-1.0,
  "reasoning": "brief explanation"
}

RESPONSE FORMAT: Return only the JSON array, no additional text.
`)

	return sb.String()
}

// geminiSuggestion represents the raw response from Gemini.
type geminiSuggestion struct {
	ExpenseID  string  `json:"expense_id"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// parseResponse parses the Gemini response into CategorySuggestions.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) ([]*adapter.CategorySuggestion, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var suggestions []geminiSuggestion
	if err := json.Unmarshal([]byte(textContent), &suggestions); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	results := make([]*adapter.CategorySuggestion, 0, len(suggestions))
	for _, raw := range suggestions {
		id, err := uuid.Parse(raw.ExpenseID)
		if err != nil {
			continue // Skip invalid IDs
		}
		if raw.Category == "" {
			continue
		}
		results = append(results, &adapter.CategorySuggestion{
			ExpenseID:  id,
			Category:   raw.Category,
			Confidence: raw.Confidence,
			Reasoning:  raw.Reasoning,
		})
	}

	return results, nil
}
