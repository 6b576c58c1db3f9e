package dto

import (
	"github.com/expenso/backend/internal/application/usecase/obligation"
	"github.com/expenso/backend/internal/domain/entity"
)

// CreateObligationRequest represents the request body for creating a tax or violation.
type CreateObligationRequest struct {
	Kind          string  `json:"kind" binding:"required,oneof=tax violation"`
	Type          string  `json:"type" binding:"required,max=100"`
	Amount        float64 `json:"amount" binding:"required"`
	DueDate       string  `json:"due_date"`
	ViolationDate string  `json:"violation_date"`
	Note          string  `json:"note" binding:"max=500"`
}

// ObligationResponse represents a tax or violation in API responses.
type ObligationResponse struct {
	ID            string  `json:"id"`
	Kind          string  `json:"kind"`
	Type          string  `json:"type"`
	Amount        string  `json:"amount"`
	DueDate       *string `json:"due_date"`
	ViolationDate *string `json:"violation_date,omitempty"`
	Status        string  `json:"status"`
	Note          string  `json:"note,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// ObligationWithDeadlineResponse pairs an obligation with deadline arithmetic.
type ObligationWithDeadlineResponse struct {
	ObligationResponse
	DaysRemaining *int `json:"days_remaining"`
	Overdue       bool `json:"overdue"`
}

// ObligationListResponse represents the response for listing obligations.
type ObligationListResponse struct {
	Obligations  []ObligationWithDeadlineResponse `json:"obligations"`
	TotalPending string                           `json:"total_pending"`
	OverdueCount int                              `json:"overdue_count"`
}

// ToObligationResponse converts a domain Obligation entity to a DTO.
func ToObligationResponse(o *entity.Obligation) ObligationResponse {
	return ObligationResponse{
		ID:            o.ID.String(),
		Kind:          string(o.Kind),
		Type:          o.Type,
		Amount:        o.Amount.String(),
		DueDate:       formatDatePtr(o.DueDate),
		ViolationDate: formatDatePtr(o.ViolationDate),
		Status:        string(o.Status),
		Note:          o.Note,
		CreatedAt:     formatTimestamp(o.CreatedAt),
		UpdatedAt:     formatTimestamp(o.UpdatedAt),
	}
}

// ToObligationListResponse converts list output to an ObligationListResponse DTO.
func ToObligationListResponse(output *obligation.ListObligationsOutput) ObligationListResponse {
	obligations := make([]ObligationWithDeadlineResponse, len(output.Obligations))
	for i, o := range output.Obligations {
		obligations[i] = ObligationWithDeadlineResponse{
			ObligationResponse: ToObligationResponse(o.Obligation),
			DaysRemaining:      o.DaysRemaining,
			Overdue:            o.Overdue,
		}
	}
	return ObligationListResponse{
		Obligations:  obligations,
		TotalPending: output.TotalPending.String(),
		OverdueCount: output.OverdueCount,
	}
}
