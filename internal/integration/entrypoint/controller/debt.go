package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/application/usecase/debt"
	"github.com/expenso/backend/internal/domain/entity"
	"github.com/expenso/backend/internal/integration/entrypoint/dto"
	"github.com/expenso/backend/internal/integration/entrypoint/middleware"
)

// DebtController handles debt endpoints.
type DebtController struct {
	listUseCase   *debt.ListDebtsUseCase
	createUseCase *debt.CreateDebtUseCase
	settleUseCase *debt.SettleDebtUseCase
	deleteUseCase *debt.DeleteDebtUseCase
}

// NewDebtController creates a new debt controller instance.
func NewDebtController(
	listUseCase *debt.ListDebtsUseCase,
	createUseCase *debt.CreateDebtUseCase,
	settleUseCase *debt.SettleDebtUseCase,
	deleteUseCase *debt.DeleteDebtUseCase,
) *DebtController {
	return &DebtController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		settleUseCase: settleUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /debts requests.
func (c *DebtController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	input := debt.ListDebtsInput{UserID: userID}
	if directionStr := ctx.Query("direction"); directionStr != "" {
		direction := entity.DebtDirection(directionStr)
		input.Direction = &direction
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtListResponse(output))
}

// Create handles POST /debts requests.
func (c *DebtController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	var req dto.CreateDebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := debt.CreateDebtInput{
		UserID:           userID,
		Direction:        entity.DebtDirection(req.Direction),
		Amount:           decimal.NewFromFloat(req.Amount),
		CounterpartyName: req.CounterpartyName,
		Note:             req.Note,
	}
	if req.DueDate != "" {
		dueDate, err := dto.ParseDate(req.DueDate)
		if err != nil {
			badDate(ctx, "due_date")
			return
		}
		input.DueDate = &dueDate
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDebtResponse(output.Debt))
}

// Settle handles POST /debts/:id/settle requests.
func (c *DebtController) Settle(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	debtID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid debt ID format",
		})
		return
	}

	output, err := c.settleUseCase.Execute(ctx.Request.Context(), debt.SettleDebtInput{
		DebtID: debtID,
		UserID: userID,
	})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtResponse(output.Debt))
}

// Delete handles DELETE /debts/:id requests.
func (c *DebtController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	debtID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid debt ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), debt.DeleteDebtInput{
		DebtID: debtID,
		UserID: userID,
	}); err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
