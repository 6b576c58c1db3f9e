package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/application/usecase/obligation"
	"github.com/expenso/backend/internal/domain/entity"
	"github.com/expenso/backend/internal/integration/entrypoint/dto"
	"github.com/expenso/backend/internal/integration/entrypoint/middleware"
)

// ObligationController handles tax and violation endpoints.
type ObligationController struct {
	listUseCase     *obligation.ListObligationsUseCase
	createUseCase   *obligation.CreateObligationUseCase
	markPaidUseCase *obligation.MarkObligationPaidUseCase
	deleteUseCase   *obligation.DeleteObligationUseCase
}

// NewObligationController creates a new obligation controller instance.
func NewObligationController(
	listUseCase *obligation.ListObligationsUseCase,
	createUseCase *obligation.CreateObligationUseCase,
	markPaidUseCase *obligation.MarkObligationPaidUseCase,
	deleteUseCase *obligation.DeleteObligationUseCase,
) *ObligationController {
	return &ObligationController{
		listUseCase:     listUseCase,
		createUseCase:   createUseCase,
		markPaidUseCase: markPaidUseCase,
		deleteUseCase:   deleteUseCase,
	}
}

// List handles GET /obligations requests.
func (c *ObligationController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	input := obligation.ListObligationsInput{UserID: userID}
	if kindStr := ctx.Query("kind"); kindStr != "" {
		kind := entity.ObligationKind(kindStr)
		input.Kind = &kind
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToObligationListResponse(output))
}

// Create handles POST /obligations requests.
func (c *ObligationController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	var req dto.CreateObligationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := obligation.CreateObligationInput{
		UserID: userID,
		Kind:   entity.ObligationKind(req.Kind),
		Type:   req.Type,
		Amount: decimal.NewFromFloat(req.Amount),
		Note:   req.Note,
	}
	if req.DueDate != "" {
		dueDate, err := dto.ParseDate(req.DueDate)
		if err != nil {
			badDate(ctx, "due_date")
			return
		}
		input.DueDate = &dueDate
	}
	if req.ViolationDate != "" {
		violationDate, err := dto.ParseDate(req.ViolationDate)
		if err != nil {
			badDate(ctx, "violation_date")
			return
		}
		input.ViolationDate = &violationDate
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToObligationResponse(output.Obligation))
}

// MarkPaid handles POST /obligations/:id/mark-paid requests.
func (c *ObligationController) MarkPaid(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	obligationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid obligation ID format",
		})
		return
	}

	output, err := c.markPaidUseCase.Execute(ctx.Request.Context(), obligation.MarkObligationPaidInput{
		ObligationID: obligationID,
		UserID:       userID,
	})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToObligationResponse(output.Obligation))
}

// Delete handles DELETE /obligations/:id requests.
func (c *ObligationController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	obligationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid obligation ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), obligation.DeleteObligationInput{
		ObligationID: obligationID,
		UserID:       userID,
	}); err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
