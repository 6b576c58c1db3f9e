package dto

import (
	"github.com/expenso/backend/internal/application/usecase/investmentplan"
	"github.com/expenso/backend/internal/domain/entity"
)

// CreatePlanRequest represents the request body for creating an investment plan.
type CreatePlanRequest struct {
	Name                    string  `json:"name" binding:"required,max=100"`
	MonthlyAmount           float64 `json:"monthly_amount" binding:"required"`
	AnnualReturnRatePercent float64 `json:"annual_return_rate_percent"`
	DurationMonths          int     `json:"duration_months" binding:"required,min=1"`
	StartDate               string  `json:"start_date"`
}

// UpdatePlanStatusRequest represents the request body for changing a plan status.
type UpdatePlanStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Active Completed Cancelled"`
}

// PlanResponse represents an investment plan in API responses.
type PlanResponse struct {
	ID                      string  `json:"id"`
	Name                    string  `json:"name"`
	MonthlyAmount           string  `json:"monthly_amount"`
	AnnualReturnRatePercent float64 `json:"annual_return_rate_percent"`
	DurationMonths          int     `json:"duration_months"`
	StartDate               *string `json:"start_date"`
	Status                  string  `json:"status"`
	CreatedAt               string  `json:"created_at"`
	UpdatedAt               string  `json:"updated_at"`
}

// PlanWithProjectionResponse pairs a plan with its computed projection.
type PlanWithProjectionResponse struct {
	PlanResponse
	MonthsConsidered int     `json:"months_considered"`
	TotalInvested    string  `json:"total_invested"`
	FutureValue      string  `json:"future_value"`
	ProgressPercent  float64 `json:"progress_percent"`
}

// PlanListResponse represents the response for listing investment plans.
type PlanListResponse struct {
	Plans           []PlanWithProjectionResponse `json:"plans"`
	TotalInvested   string                       `json:"total_invested"`
	TotalProjected  string                       `json:"total_projected"`
	ActivePlanCount int                          `json:"active_plan_count"`
}

// ToPlanResponse converts a domain InvestmentPlan entity to a PlanResponse DTO.
func ToPlanResponse(p *entity.InvestmentPlan) PlanResponse {
	return PlanResponse{
		ID:                      p.ID.String(),
		Name:                    p.Name,
		MonthlyAmount:           p.MonthlyAmount.String(),
		AnnualReturnRatePercent: p.AnnualReturnRatePercent,
		DurationMonths:          p.DurationMonths,
		StartDate:               formatDatePtr(p.StartDate),
		Status:                  string(p.Status),
		CreatedAt:               formatTimestamp(p.CreatedAt),
		UpdatedAt:               formatTimestamp(p.UpdatedAt),
	}
}

// ToPlanListResponse converts list output to a PlanListResponse DTO.
func ToPlanListResponse(output *investmentplan.ListPlansOutput) PlanListResponse {
	plans := make([]PlanWithProjectionResponse, len(output.Plans))
	for i, p := range output.Plans {
		progress := p.Projection.ProgressPercent
		if progress > 100 {
			progress = 100
		}
		plans[i] = PlanWithProjectionResponse{
			PlanResponse:     ToPlanResponse(p.Plan),
			MonthsConsidered: p.Projection.MonthsConsidered,
			TotalInvested:    p.Projection.TotalInvested.String(),
			FutureValue:      p.Projection.FutureValue.String(),
			ProgressPercent:  progress,
		}
	}
	return PlanListResponse{
		Plans:           plans,
		TotalInvested:   output.TotalInvested.String(),
		TotalProjected:  output.TotalProjected.String(),
		ActivePlanCount: output.ActivePlanCount,
	}
}
