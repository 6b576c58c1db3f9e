// Package investmentplan contains SIP-related use cases.
package investmentplan

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/application/adapter"
	"github.com/expenso/backend/internal/domain/entity"
	domainerror "github.com/expenso/backend/internal/domain/error"
	"github.com/expenso/backend/internal/domain/finance"
)

// PlanWithProjection pairs a plan with its computed projection as of now.
type PlanWithProjection struct {
	Plan       *entity.InvestmentPlan
	Projection finance.SIPProjection
}

// ListPlansInput represents the input for listing investment plans.
type ListPlansInput struct {
	UserID uuid.UUID
	Now    time.Time // zero means current time
}

// ListPlansOutput represents the output of listing investment plans.
type ListPlansOutput struct {
	Plans           []PlanWithProjection
	TotalInvested   decimal.Decimal
	TotalProjected  decimal.Decimal
	ActivePlanCount int
}

// ListPlansUseCase handles investment plan listing logic.
type ListPlansUseCase struct {
	planRepo adapter.InvestmentPlanRepository
}

// NewListPlansUseCase creates a new ListPlansUseCase instance.
func NewListPlansUseCase(planRepo adapter.InvestmentPlanRepository) *ListPlansUseCase {
	return &ListPlansUseCase{
		planRepo: planRepo,
	}
}

// Execute retrieves the user's plans, each with its projected value.
func (uc *ListPlansUseCase) Execute(ctx context.Context, input ListPlansInput) (*ListPlansOutput, error) {
	plans, err := uc.planRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordInternalError,
			"failed to list investment plans",
			err,
		)
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	output := &ListPlansOutput{
		Plans:          make([]PlanWithProjection, 0, len(plans)),
		TotalInvested:  decimal.Zero,
		TotalProjected: decimal.Zero,
	}
	for _, p := range plans {
		projection := finance.ProjectSIP(
			p.MonthlyAmount,
			p.AnnualReturnRatePercent,
			p.DurationMonths,
			p.MonthsElapsed(now),
		)
		output.Plans = append(output.Plans, PlanWithProjection{Plan: p, Projection: projection})
		output.TotalInvested = output.TotalInvested.Add(projection.TotalInvested)
		output.TotalProjected = output.TotalProjected.Add(projection.FutureValue)
		if p.Status == entity.InvestmentPlanActive {
			output.ActivePlanCount++
		}
	}

	return output, nil
}
