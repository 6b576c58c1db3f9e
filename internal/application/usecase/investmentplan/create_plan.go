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
)

// CreatePlanInput represents the input for investment plan creation.
type CreatePlanInput struct {
	UserID                  uuid.UUID
	Name                    string
	MonthlyAmount           decimal.Decimal
	AnnualReturnRatePercent float64
	DurationMonths          int
	StartDate               *time.Time
}

// CreatePlanOutput represents the output of investment plan creation.
type CreatePlanOutput struct {
	Plan *entity.InvestmentPlan
}

// CreatePlanUseCase handles investment plan creation logic.
type CreatePlanUseCase struct {
	planRepo adapter.InvestmentPlanRepository
}

// NewCreatePlanUseCase creates a new CreatePlanUseCase instance.
func NewCreatePlanUseCase(planRepo adapter.InvestmentPlanRepository) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo: planRepo,
	}
}

// Execute performs the investment plan creation.
func (uc *CreatePlanUseCase) Execute(ctx context.Context, input CreatePlanInput) (*CreatePlanOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeMissingRecordFields,
			"plan name is required",
			nil,
		)
	}
	if input.MonthlyAmount.IsNegative() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidAmount,
			"monthly amount must be a non-negative number",
			domainerror.ErrInvalidAmount,
		)
	}
	if input.DurationMonths <= 0 {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeMissingRecordFields,
			"duration must be a positive number of months",
			nil,
		)
	}

	plan := entity.NewInvestmentPlan(
		input.UserID,
		input.Name,
		input.MonthlyAmount,
		input.AnnualReturnRatePercent,
		input.DurationMonths,
		input.StartDate,
	)

	if err := uc.planRepo.Create(ctx, plan); err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordInternalError,
			"failed to create investment plan",
			err,
		)
	}

	return &CreatePlanOutput{Plan: plan}, nil
}
