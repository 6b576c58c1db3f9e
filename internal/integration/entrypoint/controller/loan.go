package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/application/usecase/loan"
	"github.com/expenso/backend/internal/integration/entrypoint/dto"
	"github.com/expenso/backend/internal/integration/entrypoint/middleware"
)

// LoanController handles loan endpoints.
type LoanController struct {
	listUseCase        *loan.ListLoansUseCase
	createUseCase      *loan.CreateLoanUseCase
	payInterestUseCase *loan.PayInterestUseCase
	markPaidUseCase    *loan.MarkLoanPaidUseCase
	deleteUseCase      *loan.DeleteLoanUseCase
}

// NewLoanController creates a new loan controller instance.
func NewLoanController(
	listUseCase *loan.ListLoansUseCase,
	createUseCase *loan.CreateLoanUseCase,
	payInterestUseCase *loan.PayInterestUseCase,
	markPaidUseCase *loan.MarkLoanPaidUseCase,
	deleteUseCase *loan.DeleteLoanUseCase,
) *LoanController {
	return &LoanController{
		listUseCase:        listUseCase,
		createUseCase:      createUseCase,
		payInterestUseCase: payInterestUseCase,
		markPaidUseCase:    markPaidUseCase,
		deleteUseCase:      deleteUseCase,
	}
}

// List handles GET /loans requests.
func (c *LoanController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), loan.ListLoansInput{
		UserID: userID,
	})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoanListResponse(output))
}

// Create handles POST /loans requests.
func (c *LoanController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	var req dto.CreateLoanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := loan.CreateLoanInput{
		UserID:                    userID,
		OrganizationName:          req.OrganizationName,
		Principal:                 decimal.NewFromFloat(req.Principal),
		AnnualInterestRatePercent: req.AnnualInterestRatePercent,
		Reason:                    req.Reason,
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

	ctx.JSON(http.StatusCreated, dto.ToLoanResponse(output.Loan))
}

// PayInterest handles POST /loans/:id/pay-interest requests.
func (c *LoanController) PayInterest(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	loanID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid loan ID format",
		})
		return
	}

	var req dto.PayInterestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := loan.PayInterestInput{
		LoanID: loanID,
		UserID: userID,
		Amount: decimal.NewFromFloat(req.Amount),
	}
	if req.PaidAt != "" {
		paidAt, err := dto.ParseDate(req.PaidAt)
		if err != nil {
			badDate(ctx, "paid_at")
			return
		}
		input.PaidAt = paidAt
	}

	output, err := c.payInterestUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPayInterestResponse(output))
}

// MarkPaid handles POST /loans/:id/mark-paid requests.
func (c *LoanController) MarkPaid(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	loanID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid loan ID format",
		})
		return
	}

	output, err := c.markPaidUseCase.Execute(ctx.Request.Context(), loan.MarkLoanPaidInput{
		LoanID: loanID,
		UserID: userID,
	})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoanResponse(output.Loan))
}

// Delete handles DELETE /loans/:id requests.
func (c *LoanController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	loanID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid loan ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), loan.DeleteLoanInput{
		LoanID: loanID,
		UserID: userID,
	}); err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
