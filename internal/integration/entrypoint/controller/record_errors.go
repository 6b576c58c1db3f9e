// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/expenso/backend/internal/domain/error"
	"github.com/expenso/backend/internal/integration/entrypoint/dto"
)

// handleRecordError maps record domain errors onto HTTP responses. It is
// shared by the expense, debt, investment, stock, loan and obligation
// controllers.
func handleRecordError(ctx *gin.Context, err error) {
	var recErr *domainerror.RecordError
	if errors.As(err, &recErr) {
		ctx.JSON(recordErrorStatus(recErr.Code), dto.ErrorResponse{
			Error: recErr.Message,
			Code:  string(recErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

func recordErrorStatus(code domainerror.RecordErrorCode) int {
	switch code {
	case domainerror.ErrCodeRecordNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeRecordNotAuthorized:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeInvalidQuantity,
		domainerror.ErrCodeSellQuantityTooLarge,
		domainerror.ErrCodeMissingRecordFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeStockAlreadySold,
		domainerror.ErrCodeLoanAlreadyPaid:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// unauthorized writes the standard missing-token response.
func unauthorized(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

// badDate writes the standard invalid-date response.
func badDate(ctx *gin.Context, field string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid " + field + " format. Use YYYY-MM-DD",
	})
}
