package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/application/usecase/stock"
	"github.com/expenso/backend/internal/integration/entrypoint/dto"
	"github.com/expenso/backend/internal/integration/entrypoint/middleware"
)

// StockController handles stock holding endpoints.
type StockController struct {
	listUseCase   *stock.ListStocksUseCase
	createUseCase *stock.CreateStockUseCase
	sellUseCase   *stock.SellStockUseCase
	deleteUseCase *stock.DeleteStockUseCase
}

// NewStockController creates a new stock controller instance.
func NewStockController(
	listUseCase *stock.ListStocksUseCase,
	createUseCase *stock.CreateStockUseCase,
	sellUseCase *stock.SellStockUseCase,
	deleteUseCase *stock.DeleteStockUseCase,
) *StockController {
	return &StockController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		sellUseCase:   sellUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /stocks requests.
func (c *StockController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), stock.ListStocksInput{
		UserID: userID,
	})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStockListResponse(output))
}

// Create handles POST /stocks requests.
func (c *StockController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	var req dto.CreateStockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := stock.CreateStockInput{
		UserID:       userID,
		Name:         req.Name,
		Quantity:     decimal.NewFromFloat(req.Quantity),
		BuyPrice:     decimal.NewFromFloat(req.BuyPrice),
		CurrentPrice: decimal.NewFromFloat(req.CurrentPrice),
	}
	if req.BuyDate != "" {
		buyDate, err := dto.ParseDate(req.BuyDate)
		if err != nil {
			badDate(ctx, "buy_date")
			return
		}
		input.BuyDate = &buyDate
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToStockResponse(output.Stock))
}

// Sell handles POST /stocks/:id/sell requests.
func (c *StockController) Sell(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	stockID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid stock ID format",
		})
		return
	}

	var req dto.SellStockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := stock.SellStockInput{
		StockID:   stockID,
		UserID:    userID,
		Quantity:  decimal.NewFromFloat(req.Quantity),
		SellPrice: decimal.NewFromFloat(req.SellPrice),
	}
	if req.SellDate != "" {
		sellDate, err := dto.ParseDate(req.SellDate)
		if err != nil {
			badDate(ctx, "sell_date")
			return
		}
		input.SellDate = &sellDate
	}

	output, err := c.sellUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSellStockResponse(output))
}

// Delete handles DELETE /stocks/:id requests.
func (c *StockController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	stockID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid stock ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), stock.DeleteStockInput{
		StockID: stockID,
		UserID:  userID,
	}); err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
