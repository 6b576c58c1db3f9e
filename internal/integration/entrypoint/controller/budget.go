package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/application/usecase/budget"
	domainerror "github.com/expenso/backend/internal/domain/error"
	"github.com/expenso/backend/internal/integration/entrypoint/dto"
	"github.com/expenso/backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles monthly budget endpoints.
type BudgetController struct {
	setUseCase    *budget.SetBudgetUseCase
	statusUseCase *budget.GetBudgetStatusUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	setUseCase *budget.SetBudgetUseCase,
	statusUseCase *budget.GetBudgetStatusUseCase,
) *BudgetController {
	return &BudgetController{
		setUseCase:    setUseCase,
		statusUseCase: statusUseCase,
	}
}

// Set handles PUT /budgets requests.
func (c *BudgetController) Set(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	var req dto.SetBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.setUseCase.Execute(ctx.Request.Context(), budget.SetBudgetInput{
		UserID: userID,
		Month:  req.Month,
		Amount: decimal.NewFromFloat(req.Amount),
	})
	if err != nil {
		handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// GetStatus handles GET /budgets/status requests. The month defaults to the
// current one.
func (c *BudgetController) GetStatus(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	month := ctx.Query("month")
	if month == "" {
		month = time.Now().UTC().Format("2006-01")
	}

	output, err := c.statusUseCase.Execute(ctx.Request.Context(), budget.GetBudgetStatusInput{
		UserID: userID,
		Month:  month,
	})
	if err != nil {
		handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetStatusResponse(output))
}

// handleBudgetError maps budget domain errors onto HTTP responses.
func handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		ctx.JSON(budgetErrorStatus(budgetErr.Code), dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

func budgetErrorStatus(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidBudgetAmount,
		domainerror.ErrCodeInvalidBudgetMonth:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
