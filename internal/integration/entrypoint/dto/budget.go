package dto

import (
	"github.com/expenso/backend/internal/application/usecase/budget"
	"github.com/expenso/backend/internal/domain/entity"
)

// SetBudgetRequest represents the request body for setting a monthly budget.
type SetBudgetRequest struct {
	Month  string  `json:"month" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
}

// BudgetResponse represents a monthly budget in API responses.
type BudgetResponse struct {
	ID        string `json:"id"`
	Month     string `json:"month"`
	Amount    string `json:"amount"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// BudgetStatusResponse represents the response for a month's budget status.
type BudgetStatusResponse struct {
	Month              string  `json:"month"`
	Budget             string  `json:"budget"`
	Actual             string  `json:"actual"`
	Variance           string  `json:"variance"`
	PerformancePercent float64 `json:"performance_percent"`
	OverBudget         bool    `json:"over_budget"`
}

// ToBudgetResponse converts a domain MonthlyBudget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.MonthlyBudget) BudgetResponse {
	return BudgetResponse{
		ID:        b.ID.String(),
		Month:     b.Month,
		Amount:    b.Amount.String(),
		CreatedAt: formatTimestamp(b.CreatedAt),
		UpdatedAt: formatTimestamp(b.UpdatedAt),
	}
}

// ToBudgetStatusResponse converts status output to a BudgetStatusResponse DTO.
func ToBudgetStatusResponse(output *budget.GetBudgetStatusOutput) BudgetStatusResponse {
	return BudgetStatusResponse{
		Month:              output.Month,
		Budget:             output.Result.Budget.String(),
		Actual:             output.Result.Actual.String(),
		Variance:           output.Result.Variance.String(),
		PerformancePercent: output.Result.PerformancePercent,
		OverBudget:         output.Result.Variance.IsPositive(),
	}
}
