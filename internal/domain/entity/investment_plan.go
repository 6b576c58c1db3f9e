// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvestmentPlanStatus represents the lifecycle status of a SIP.
type InvestmentPlanStatus string

const (
	InvestmentPlanActive    InvestmentPlanStatus = "Active"
	InvestmentPlanCompleted InvestmentPlanStatus = "Completed"
	InvestmentPlanCancelled InvestmentPlanStatus = "Cancelled"
)

// InvestmentPlan represents a systematic investment plan (SIP): a fixed
// monthly contribution with an expected annual return over a fixed duration.
type InvestmentPlan struct {
	ID                      uuid.UUID
	UserID                  uuid.UUID
	Name                    string
	MonthlyAmount           decimal.Decimal
	AnnualReturnRatePercent float64
	DurationMonths          int
	StartDate               *time.Time
	Status                  InvestmentPlanStatus
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// NewInvestmentPlan creates a new active InvestmentPlan entity.
func NewInvestmentPlan(
	userID uuid.UUID,
	name string,
	monthlyAmount decimal.Decimal,
	annualReturnRatePercent float64,
	durationMonths int,
	startDate *time.Time,
) *InvestmentPlan {
	now := time.Now().UTC()
	return &InvestmentPlan{
		ID:                      uuid.New(),
		UserID:                  userID,
		Name:                    name,
		MonthlyAmount:           monthlyAmount,
		AnnualReturnRatePercent: annualReturnRatePercent,
		DurationMonths:          durationMonths,
		StartDate:               startDate,
		Status:                  InvestmentPlanActive,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
}

// MonthsElapsed returns the number of whole calendar months between the plan's
// start date and now, floored at zero. Plans without a start date report zero.
func (p *InvestmentPlan) MonthsElapsed(now time.Time) int {
	if p.StartDate == nil {
		return 0
	}
	start := *p.StartDate
	months := (now.Year()-start.Year())*12 + int(now.Month()) - int(start.Month())
	if months < 0 {
		return 0
	}
	return months
}
