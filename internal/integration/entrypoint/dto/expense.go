// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/expenso/backend/internal/application/usecase/expense"
	"github.com/expenso/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for creating an expense.
type CreateExpenseRequest struct {
	Amount   float64 `json:"amount" binding:"required"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
	Note     string  `json:"note" binding:"max=500"`
}

// UpdateExpenseRequest represents the request body for updating an expense.
// All fields are optional; only provided fields are changed.
type UpdateExpenseRequest struct {
	Amount   *float64 `json:"amount,omitempty"`
	Category *string  `json:"category,omitempty"`
	Date     *string  `json:"date,omitempty"`
	Note     *string  `json:"note,omitempty"`
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID        string  `json:"id"`
	Amount    string  `json:"amount"`
	Category  string  `json:"category"`
	Date      *string `json:"date"`
	Note      string  `json:"note,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    string            `json:"total"`
	Count    int               `json:"count"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:        e.ID.String(),
		Amount:    e.Amount.String(),
		Category:  e.Category,
		Date:      formatDatePtr(e.Date),
		Note:      e.Note,
		CreatedAt: formatTimestamp(e.CreatedAt),
		UpdatedAt: formatTimestamp(e.UpdatedAt),
	}
}

// ToExpenseListResponse converts list output to an ExpenseListResponse DTO.
func ToExpenseListResponse(output *expense.ListExpensesOutput) ExpenseListResponse {
	expenses := make([]ExpenseResponse, len(output.Expenses))
	for i, e := range output.Expenses {
		expenses[i] = ToExpenseResponse(e)
	}
	return ExpenseListResponse{
		Expenses: expenses,
		Total:    output.Total.String(),
		Count:    output.Count,
	}
}
