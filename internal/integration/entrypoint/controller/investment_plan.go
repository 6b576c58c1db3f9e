package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/application/usecase/investmentplan"
	"github.com/expenso/backend/internal/domain/entity"
	"github.com/expenso/backend/internal/integration/entrypoint/dto"
	"github.com/expenso/backend/internal/integration/entrypoint/middleware"
)

// InvestmentPlanController handles investment plan endpoints.
type InvestmentPlanController struct {
	listUseCase         *investmentplan.ListPlansUseCase
	createUseCase       *investmentplan.CreatePlanUseCase
	updateStatusUseCase *investmentplan.UpdatePlanStatusUseCase
	deleteUseCase       *investmentplan.DeletePlanUseCase
}

// NewInvestmentPlanController creates a new investment plan controller instance.
func NewInvestmentPlanController(
	listUseCase *investmentplan.ListPlansUseCase,
	createUseCase *investmentplan.CreatePlanUseCase,
	updateStatusUseCase *investmentplan.UpdatePlanStatusUseCase,
	deleteUseCase *investmentplan.DeletePlanUseCase,
) *InvestmentPlanController {
	return &InvestmentPlanController{
		listUseCase:         listUseCase,
		createUseCase:       createUseCase,
		updateStatusUseCase: updateStatusUseCase,
		deleteUseCase:       deleteUseCase,
	}
}

// List handles GET /investment-plans requests.
func (c *InvestmentPlanController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), investmentplan.ListPlansInput{
		UserID: userID,
	})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPlanListResponse(output))
}

// Create handles POST /investment-plans requests.
func (c *InvestmentPlanController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	var req dto.CreatePlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := investmentplan.CreatePlanInput{
		UserID:                  userID,
		Name:                    req.Name,
		MonthlyAmount:           decimal.NewFromFloat(req.MonthlyAmount),
		AnnualReturnRatePercent: req.AnnualReturnRatePercent,
		DurationMonths:          req.DurationMonths,
	}
	if req.StartDate != "" {
		startDate, err := dto.ParseDate(req.StartDate)
		if err != nil {
			badDate(ctx, "start_date")
			return
		}
		input.StartDate = &startDate
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPlanResponse(output.Plan))
}

// UpdateStatus handles PATCH /investment-plans/:id/status requests.
func (c *InvestmentPlanController) UpdateStatus(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	planID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid plan ID format",
		})
		return
	}

	var req dto.UpdatePlanStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.updateStatusUseCase.Execute(ctx.Request.Context(), investmentplan.UpdatePlanStatusInput{
		PlanID: planID,
		UserID: userID,
		Status: entity.InvestmentPlanStatus(req.Status),
	})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPlanResponse(output.Plan))
}

// Delete handles DELETE /investment-plans/:id requests.
func (c *InvestmentPlanController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	planID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid plan ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), investmentplan.DeletePlanInput{
		PlanID: planID,
		UserID: userID,
	}); err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
