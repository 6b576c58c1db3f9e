// Package stock contains stock holding-related use cases.
package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/application/adapter"
	"github.com/expenso/backend/internal/domain/entity"
	domainerror "github.com/expenso/backend/internal/domain/error"
)

// CreateStockInput represents the input for stock holding creation.
type CreateStockInput struct {
	UserID       uuid.UUID
	Name         string
	Quantity     decimal.Decimal
	BuyPrice     decimal.Decimal
	CurrentPrice decimal.Decimal
	BuyDate      *time.Time
}

// CreateStockOutput represents the output of stock holding creation.
type CreateStockOutput struct {
	Stock *entity.StockHolding
}

// CreateStockUseCase handles stock holding creation logic.
type CreateStockUseCase struct {
	stockRepo adapter.StockRepository
}

// NewCreateStockUseCase creates a new CreateStockUseCase instance.
func NewCreateStockUseCase(stockRepo adapter.StockRepository) *CreateStockUseCase {
	return &CreateStockUseCase{
		stockRepo: stockRepo,
	}
}

// Execute performs the stock holding creation. A missing current price
// defaults to the buy price.
func (uc *CreateStockUseCase) Execute(ctx context.Context, input CreateStockInput) (*CreateStockOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeMissingRecordFields,
			"stock name is required",
			nil,
		)
	}
	if !input.Quantity.IsPositive() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidQuantity,
			"quantity must be positive",
			domainerror.ErrInvalidQuantity,
		)
	}
	if input.BuyPrice.IsNegative() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidAmount,
			"buy price must be a non-negative number",
			domainerror.ErrInvalidAmount,
		)
	}

	currentPrice := input.CurrentPrice
	if currentPrice.IsZero() {
		currentPrice = input.BuyPrice
	}

	stock := entity.NewStockHolding(input.UserID, input.Name, input.Quantity, input.BuyPrice, currentPrice, input.BuyDate)

	if err := uc.stockRepo.Create(ctx, stock); err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordInternalError,
			"failed to create stock holding",
			err,
		)
	}

	return &CreateStockOutput{Stock: stock}, nil
}
