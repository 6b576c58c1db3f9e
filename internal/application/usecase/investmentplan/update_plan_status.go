// Package investmentplan contains SIP-related use cases.
package investmentplan

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/expenso/backend/internal/application/adapter"
	"github.com/expenso/backend/internal/domain/entity"
	domainerror "github.com/expenso/backend/internal/domain/error"
)

// UpdatePlanStatusInput represents the input for changing a plan's status.
type UpdatePlanStatusInput struct {
	PlanID uuid.UUID
	UserID uuid.UUID
	Status entity.InvestmentPlanStatus
}

// UpdatePlanStatusOutput represents the output of changing a plan's status.
type UpdatePlanStatusOutput struct {
	Plan *entity.InvestmentPlan
}

// UpdatePlanStatusUseCase handles plan completion and cancellation.
type UpdatePlanStatusUseCase struct {
	planRepo adapter.InvestmentPlanRepository
}

// NewUpdatePlanStatusUseCase creates a new UpdatePlanStatusUseCase instance.
func NewUpdatePlanStatusUseCase(planRepo adapter.InvestmentPlanRepository) *UpdatePlanStatusUseCase {
	return &UpdatePlanStatusUseCase{
		planRepo: planRepo,
	}
}

// Execute changes the plan status.
func (uc *UpdatePlanStatusUseCase) Execute(ctx context.Context, input UpdatePlanStatusInput) (*UpdatePlanStatusOutput, error) {
	switch input.Status {
	case entity.InvestmentPlanActive, entity.InvestmentPlanCompleted, entity.InvestmentPlanCancelled:
	default:
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeMissingRecordFields,
			"status must be 'Active', 'Completed' or 'Cancelled'",
			nil,
		)
	}

	plan, err := uc.planRepo.FindByID(ctx, input.PlanID)
	if err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordNotFound,
			"investment plan not found",
			domainerror.ErrInvestmentPlanNotFound,
		)
	}

	if plan.UserID != input.UserID {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordNotAuthorized,
			"investment plan does not belong to user",
			domainerror.ErrNotAuthorizedToModifyRecord,
		)
	}

	plan.Status = input.Status
	plan.UpdatedAt = time.Now().UTC()

	if err := uc.planRepo.Update(ctx, plan); err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordInternalError,
			"failed to update investment plan",
			err,
		)
	}

	return &UpdatePlanStatusOutput{Plan: plan}, nil
}
