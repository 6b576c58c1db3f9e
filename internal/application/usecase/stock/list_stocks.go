// Package stock contains stock holding-related use cases.
package stock

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/application/adapter"
	"github.com/expenso/backend/internal/domain/entity"
	domainerror "github.com/expenso/backend/internal/domain/error"
	"github.com/expenso/backend/internal/domain/finance"
)

// StockWithPosition pairs a holding with its computed economics.
type StockWithPosition struct {
	Stock    *entity.StockHolding
	Position finance.StockPosition
}

// ListStocksInput represents the input for listing stock holdings.
type ListStocksInput struct {
	UserID uuid.UUID
}

// ListStocksOutput represents the output of listing stock holdings.
// Portfolio totals cover open positions only.
type ListStocksOutput struct {
	Stocks        []StockWithPosition
	TotalInvested decimal.Decimal
	TotalValue    decimal.Decimal
	TotalGainLoss decimal.Decimal
}

// ListStocksUseCase handles stock holding listing logic.
type ListStocksUseCase struct {
	stockRepo adapter.StockRepository
}

// NewListStocksUseCase creates a new ListStocksUseCase instance.
func NewListStocksUseCase(stockRepo adapter.StockRepository) *ListStocksUseCase {
	return &ListStocksUseCase{
		stockRepo: stockRepo,
	}
}

// Execute retrieves the user's holdings, each with gain/loss economics.
func (uc *ListStocksUseCase) Execute(ctx context.Context, input ListStocksInput) (*ListStocksOutput, error) {
	stocks, err := uc.stockRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordInternalError,
			"failed to list stock holdings",
			err,
		)
	}

	output := &ListStocksOutput{
		Stocks:        make([]StockWithPosition, 0, len(stocks)),
		TotalInvested: decimal.Zero,
		TotalValue:    decimal.Zero,
		TotalGainLoss: decimal.Zero,
	}
	for _, s := range stocks {
		position := finance.EvaluatePosition(s.Quantity, s.BuyPrice, s.CurrentPrice)
		output.Stocks = append(output.Stocks, StockWithPosition{Stock: s, Position: position})
		if s.Status == entity.StockStatusHolding {
			output.TotalInvested = output.TotalInvested.Add(position.TotalInvested)
			output.TotalValue = output.TotalValue.Add(position.CurrentValue)
			output.TotalGainLoss = output.TotalGainLoss.Add(position.GainLoss)
		}
	}

	return output, nil
}
