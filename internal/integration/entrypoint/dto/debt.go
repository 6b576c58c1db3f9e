package dto

import (
	"github.com/expenso/backend/internal/application/usecase/debt"
	"github.com/expenso/backend/internal/domain/entity"
)

// CreateDebtRequest represents the request body for creating a debt.
type CreateDebtRequest struct {
	Direction        string  `json:"direction" binding:"required,oneof=owed_by_me owed_to_me"`
	Amount           float64 `json:"amount" binding:"required"`
	CounterpartyName string  `json:"counterparty_name" binding:"required,max=100"`
	DueDate          string  `json:"due_date"`
	Note             string  `json:"note" binding:"max=500"`
}

// DebtResponse represents a debt in API responses.
type DebtResponse struct {
	ID               string  `json:"id"`
	Direction        string  `json:"direction"`
	Amount           string  `json:"amount"`
	CounterpartyName string  `json:"counterparty_name"`
	DueDate          *string `json:"due_date"`
	Status           string  `json:"status"`
	Note             string  `json:"note,omitempty"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

// DebtListResponse represents the response for listing debts.
type DebtListResponse struct {
	Debts            []DebtResponse `json:"debts"`
	TotalOwedByMe    string         `json:"total_owed_by_me"`
	TotalOwedToMe    string         `json:"total_owed_to_me"`
	OutstandingCount int            `json:"outstanding_count"`
}

// ToDebtResponse converts a domain Debt entity to a DebtResponse DTO.
func ToDebtResponse(d *entity.Debt) DebtResponse {
	return DebtResponse{
		ID:               d.ID.String(),
		Direction:        string(d.Direction),
		Amount:           d.Amount.String(),
		CounterpartyName: d.CounterpartyName,
		DueDate:          formatDatePtr(d.DueDate),
		Status:           string(d.Status),
		Note:             d.Note,
		CreatedAt:        formatTimestamp(d.CreatedAt),
		UpdatedAt:        formatTimestamp(d.UpdatedAt),
	}
}

// ToDebtListResponse converts list output to a DebtListResponse DTO.
func ToDebtListResponse(output *debt.ListDebtsOutput) DebtListResponse {
	debts := make([]DebtResponse, len(output.Debts))
	for i, d := range output.Debts {
		debts[i] = ToDebtResponse(d)
	}
	return DebtListResponse{
		Debts:            debts,
		TotalOwedByMe:    output.TotalOwedByMe.String(),
		TotalOwedToMe:    output.TotalOwedToMe.String(),
		OutstandingCount: output.OutstandingCount,
	}
}
