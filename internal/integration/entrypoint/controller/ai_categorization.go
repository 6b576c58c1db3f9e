package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	aicategorization "github.com/expenso/backend/internal/application/usecase/ai_categorization"
	"github.com/expenso/backend/internal/integration/entrypoint/dto"
	"github.com/expenso/backend/internal/integration/entrypoint/middleware"
)

// AICategorizationController handles AI category suggestion endpoints.
type AICategorizationController struct {
	suggestUseCase *aicategorization.SuggestCategoriesUseCase
	applyUseCase   *aicategorization.ApplySuggestionUseCase
	statusUseCase  *aicategorization.GetStatusUseCase
}

// NewAICategorizationController creates a new AI categorization controller instance.
func NewAICategorizationController(
	suggestUseCase *aicategorization.SuggestCategoriesUseCase,
	applyUseCase *aicategorization.ApplySuggestionUseCase,
	statusUseCase *aicategorization.GetStatusUseCase,
) *AICategorizationController {
	return &AICategorizationController{
		suggestUseCase: suggestUseCase,
		applyUseCase:   applyUseCase,
		statusUseCase:  statusUseCase,
	}
}

// Suggest handles POST /ai/suggestions requests. It runs the uncategorized
// expenses through the AI service and returns suggested categories.
func (c *AICategorizationController) Suggest(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	output, err := c.suggestUseCase.Execute(ctx.Request.Context(), aicategorization.SuggestCategoriesInput{
		UserID: userID,
	})
	if err != nil {
		// The tracker already holds the classified error; surface the
		// user-facing message with a conflict-friendly status.
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSuggestCategoriesResponse(output))
}

// Apply handles POST /ai/suggestions/:expenseId/apply requests.
func (c *AICategorizationController) Apply(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("expenseId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	var req dto.ApplySuggestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.applyUseCase.Execute(ctx.Request.Context(), aicategorization.ApplySuggestionInput{
		ExpenseID: expenseID,
		UserID:    userID,
		Category:  req.Category,
	})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Status handles GET /ai/status requests.
func (c *AICategorizationController) Status(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	output, err := c.statusUseCase.Execute(ctx.Request.Context(), aicategorization.GetStatusInput{
		UserID: userID,
	})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategorizationStatusResponse(output))
}
