// Package investmentplan contains SIP-related use cases.
package investmentplan

import (
	"context"

	"github.com/google/uuid"

	"github.com/expenso/backend/internal/application/adapter"
	domainerror "github.com/expenso/backend/internal/domain/error"
)

// DeletePlanInput represents the input for plan deletion.
type DeletePlanInput struct {
	PlanID uuid.UUID
	UserID uuid.UUID
}

// DeletePlanUseCase handles investment plan deletion logic.
type DeletePlanUseCase struct {
	planRepo adapter.InvestmentPlanRepository
}

// NewDeletePlanUseCase creates a new DeletePlanUseCase instance.
func NewDeletePlanUseCase(planRepo adapter.InvestmentPlanRepository) *DeletePlanUseCase {
	return &DeletePlanUseCase{
		planRepo: planRepo,
	}
}

// Execute performs the plan deletion.
func (uc *DeletePlanUseCase) Execute(ctx context.Context, input DeletePlanInput) error {
	plan, err := uc.planRepo.FindByID(ctx, input.PlanID)
	if err != nil {
		return domainerror.NewRecordError(
			domainerror.ErrCodeRecordNotFound,
			"investment plan not found",
			domainerror.ErrInvestmentPlanNotFound,
		)
	}

	if plan.UserID != input.UserID {
		return domainerror.NewRecordError(
			domainerror.ErrCodeRecordNotAuthorized,
			"investment plan does not belong to user",
			domainerror.ErrNotAuthorizedToModifyRecord,
		)
	}

	if err := uc.planRepo.Delete(ctx, input.PlanID); err != nil {
		return domainerror.NewRecordError(
			domainerror.ErrCodeRecordInternalError,
			"failed to delete investment plan",
			err,
		)
	}
	return nil
}
