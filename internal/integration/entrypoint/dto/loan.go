package dto

import (
	"github.com/expenso/backend/internal/application/usecase/loan"
	"github.com/expenso/backend/internal/domain/entity"
)

// CreateLoanRequest represents the request body for creating a loan.
type CreateLoanRequest struct {
	OrganizationName          string  `json:"organization_name" binding:"required,max=100"`
	Principal                 float64 `json:"principal" binding:"required"`
	AnnualInterestRatePercent float64 `json:"annual_interest_rate_percent"`
	DueDate                   string  `json:"due_date"`
	Reason                    string  `json:"reason" binding:"max=500"`
}

// PayInterestRequest represents the request body for recording an interest payment.
type PayInterestRequest struct {
	Amount float64 `json:"amount"`
	PaidAt string  `json:"paid_at"`
}

// InterestPaymentResponse represents one recorded interest payment.
type InterestPaymentResponse struct {
	Date   string `json:"date"`
	Amount string `json:"amount"`
}

// LoanResponse represents a loan in API responses.
type LoanResponse struct {
	ID                        string                    `json:"id"`
	OrganizationName          string                    `json:"organization_name"`
	Principal                 string                    `json:"principal"`
	AnnualInterestRatePercent float64                   `json:"annual_interest_rate_percent"`
	DueDate                   *string                   `json:"due_date"`
	Status                    string                    `json:"status"`
	Reason                    string                    `json:"reason,omitempty"`
	InterestPaymentHistory    []InterestPaymentResponse `json:"interest_payment_history"`
	LastInterestPaidDate      *string                   `json:"last_interest_paid_date"`
	CreatedAt                 string                    `json:"created_at"`
	UpdatedAt                 string                    `json:"updated_at"`
}

// LoanWithAccrualResponse pairs a loan with its interest projection.
type LoanWithAccrualResponse struct {
	LoanResponse
	MonthlyInterest string  `json:"monthly_interest"`
	NextInterestDue *string `json:"next_interest_due"`
	InterestDue     bool    `json:"interest_due"`
	TotalPaid       string  `json:"total_paid"`
}

// LoanListResponse represents the response for listing loans.
type LoanListResponse struct {
	Loans                []LoanWithAccrualResponse `json:"loans"`
	TotalPrincipal       string                    `json:"total_principal"`
	TotalMonthlyInterest string                    `json:"total_monthly_interest"`
}

// PayInterestResponse represents the response for an interest payment.
type PayInterestResponse struct {
	Loan       LoanResponse `json:"loan"`
	AmountPaid string       `json:"amount_paid"`
}

// ToLoanResponse converts a domain Loan entity to a LoanResponse DTO.
func ToLoanResponse(l *entity.Loan) LoanResponse {
	history := make([]InterestPaymentResponse, len(l.InterestPaymentHistory))
	for i, p := range l.InterestPaymentHistory {
		history[i] = InterestPaymentResponse{
			Date:   p.Date.Format(dateLayout),
			Amount: p.Amount.String(),
		}
	}
	return LoanResponse{
		ID:                        l.ID.String(),
		OrganizationName:          l.OrganizationName,
		Principal:                 l.Principal.String(),
		AnnualInterestRatePercent: l.AnnualInterestRatePercent,
		DueDate:                   formatDatePtr(l.DueDate),
		Status:                    string(l.Status),
		Reason:                    l.Reason,
		InterestPaymentHistory:    history,
		LastInterestPaidDate:      formatDatePtr(l.LastInterestPaidDate),
		CreatedAt:                 formatTimestamp(l.CreatedAt),
		UpdatedAt:                 formatTimestamp(l.UpdatedAt),
	}
}

// ToLoanListResponse converts list output to a LoanListResponse DTO.
func ToLoanListResponse(output *loan.ListLoansOutput) LoanListResponse {
	loans := make([]LoanWithAccrualResponse, len(output.Loans))
	for i, l := range output.Loans {
		loans[i] = LoanWithAccrualResponse{
			LoanResponse:    ToLoanResponse(l.Loan),
			MonthlyInterest: l.MonthlyInterest.String(),
			NextInterestDue: formatDatePtr(l.NextInterestDue),
			InterestDue:     l.InterestDue,
			TotalPaid:       l.TotalPaid.String(),
		}
	}
	return LoanListResponse{
		Loans:                loans,
		TotalPrincipal:       output.TotalPrincipal.String(),
		TotalMonthlyInterest: output.TotalMonthlyInterest.String(),
	}
}

// ToPayInterestResponse converts pay-interest output to a PayInterestResponse DTO.
func ToPayInterestResponse(output *loan.PayInterestOutput) PayInterestResponse {
	return PayInterestResponse{
		Loan:       ToLoanResponse(output.Loan),
		AmountPaid: output.AmountPaid.String(),
	}
}
