// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoanStatus represents the repayment status of a loan.
type LoanStatus string

const (
	LoanStatusPending LoanStatus = "Pending"
	LoanStatusPaid    LoanStatus = "Paid"
)

// InterestPayment is one entry in a loan's interest payment history.
type InterestPayment struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// Loan represents money borrowed from an organization. Interest accrues
// monthly on the principal; paying interest records a history entry without
// reducing the principal.
type Loan struct {
	ID                        uuid.UUID
	UserID                    uuid.UUID
	OrganizationName          string
	Principal                 decimal.Decimal
	AnnualInterestRatePercent float64
	DueDate                   *time.Time
	Status                    LoanStatus
	Reason                    string
	InterestPaymentHistory    []InterestPayment
	LastInterestPaidDate      *time.Time
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

// NewLoan creates a new pending Loan entity.
func NewLoan(
	userID uuid.UUID,
	organizationName string,
	principal decimal.Decimal,
	annualInterestRatePercent float64,
	dueDate *time.Time,
	reason string,
) *Loan {
	now := time.Now().UTC()
	return &Loan{
		ID:                        uuid.New(),
		UserID:                    userID,
		OrganizationName:          organizationName,
		Principal:                 principal,
		AnnualInterestRatePercent: annualInterestRatePercent,
		DueDate:                   dueDate,
		Status:                    LoanStatusPending,
		Reason:                    reason,
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}
}

// RecordInterestPayment appends a payment to the history and advances the
// last-paid marker. The principal is untouched.
func (l *Loan) RecordInterestPayment(paidAt time.Time, amount decimal.Decimal) {
	l.InterestPaymentHistory = append(l.InterestPaymentHistory, InterestPayment{
		Date:   paidAt,
		Amount: amount,
	})
	l.LastInterestPaidDate = &paidAt
	l.UpdatedAt = time.Now().UTC()
}
