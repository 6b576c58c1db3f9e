package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/application/usecase/expense"
	"github.com/expenso/backend/internal/integration/entrypoint/dto"
	"github.com/expenso/backend/internal/integration/entrypoint/middleware"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	listUseCase   *expense.ListExpensesUseCase
	createUseCase *expense.CreateExpenseUseCase
	updateUseCase *expense.UpdateExpenseUseCase
	deleteUseCase *expense.DeleteExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	listUseCase *expense.ListExpensesUseCase,
	createUseCase *expense.CreateExpenseUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	input := expense.ListExpensesInput{
		UserID:   userID,
		Category: ctx.Query("category"),
	}

	if startDateStr := ctx.Query("start_date"); startDateStr != "" {
		startDate, err := dto.ParseDate(startDateStr)
		if err != nil {
			badDate(ctx, "start_date")
			return
		}
		input.StartDate = &startDate
	}
	if endDateStr := ctx.Query("end_date"); endDateStr != "" {
		endDate, err := dto.ParseDate(endDateStr)
		if err != nil {
			badDate(ctx, "end_date")
			return
		}
		input.EndDate = &endDate
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output))
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := expense.CreateExpenseInput{
		UserID:   userID,
		Amount:   decimal.NewFromFloat(req.Amount),
		Category: req.Category,
		Note:     req.Note,
	}
	if req.Date != "" {
		date, err := dto.ParseDate(req.Date)
		if err != nil {
			badDate(ctx, "date")
			return
		}
		input.Date = &date
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// Update handles PATCH /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := expense.UpdateExpenseInput{
		ExpenseID: expenseID,
		UserID:    userID,
		Category:  req.Category,
		Note:      req.Note,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.Date != nil {
		date, err := dto.ParseDate(*req.Date)
		if err != nil {
			badDate(ctx, "date")
			return
		}
		input.Date = &date
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{
		ExpenseID: expenseID,
		UserID:    userID,
	}); err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
