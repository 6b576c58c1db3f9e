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

// SellStockInput represents the input for selling shares of a holding.
type SellStockInput struct {
	StockID   uuid.UUID
	UserID    uuid.UUID
	Quantity  decimal.Decimal
	SellPrice decimal.Decimal
	SellDate  *time.Time
}

// SellStockOutput represents the output of selling shares. SoldRecord is
// the closed position; RemainingRecord is non-nil only for partial sales.
type SellStockOutput struct {
	SoldRecord      *entity.StockHolding
	RemainingRecord *entity.StockHolding
}

// SellStockUseCase handles full and partial stock sales. A partial sale
// splits the position so the summed quantity across records is conserved.
type SellStockUseCase struct {
	stockRepo adapter.StockRepository
}

// NewSellStockUseCase creates a new SellStockUseCase instance.
func NewSellStockUseCase(stockRepo adapter.StockRepository) *SellStockUseCase {
	return &SellStockUseCase{
		stockRepo: stockRepo,
	}
}

// Execute performs the sale.
func (uc *SellStockUseCase) Execute(ctx context.Context, input SellStockInput) (*SellStockOutput, error) {
	if !input.Quantity.IsPositive() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidQuantity,
			"sell quantity must be positive",
			domainerror.ErrInvalidQuantity,
		)
	}
	if input.SellPrice.IsNegative() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidAmount,
			"sell price must be a non-negative number",
			domainerror.ErrInvalidAmount,
		)
	}

	stock, err := uc.stockRepo.FindByID(ctx, input.StockID)
	if err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordNotFound,
			"stock holding not found",
			domainerror.ErrStockNotFound,
		)
	}

	if stock.UserID != input.UserID {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordNotAuthorized,
			"stock holding does not belong to user",
			domainerror.ErrNotAuthorizedToModifyRecord,
		)
	}
	if stock.Status == entity.StockStatusSold {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeStockAlreadySold,
			"stock holding already sold",
			domainerror.ErrStockAlreadySold,
		)
	}
	if input.Quantity.GreaterThan(stock.Quantity) {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeSellQuantityTooLarge,
			"sell quantity exceeds held quantity",
			domainerror.ErrSellQuantityTooLarge,
		)
	}

	now := time.Now().UTC()
	sellDate := input.SellDate
	if sellDate == nil {
		sellDate = &now
	}
	sellQuantity := input.Quantity
	sellPrice := input.SellPrice

	if input.Quantity.Equal(stock.Quantity) {
		// Full sale closes the position in place.
		stock.Status = entity.StockStatusSold
		stock.SellQuantity = &sellQuantity
		stock.SellPrice = &sellPrice
		stock.SellDate = sellDate
		stock.UpdatedAt = now

		if err := uc.stockRepo.Update(ctx, stock); err != nil {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeRecordInternalError,
				"failed to sell stock holding",
				err,
			)
		}
		return &SellStockOutput{SoldRecord: stock}, nil
	}

	// Partial sale: a new Sold record carries the sold quantity with the
	// original buy terms; the original keeps the rest.
	sold := entity.NewStockHolding(stock.UserID, stock.Name, sellQuantity, stock.BuyPrice, stock.CurrentPrice, stock.BuyDate)
	sold.Status = entity.StockStatusSold
	sold.SellQuantity = &sellQuantity
	sold.SellPrice = &sellPrice
	sold.SellDate = sellDate

	stock.Quantity = stock.Quantity.Sub(input.Quantity)
	stock.UpdatedAt = now

	if err := uc.stockRepo.Create(ctx, sold); err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordInternalError,
			"failed to record stock sale",
			err,
		)
	}
	if err := uc.stockRepo.Update(ctx, stock); err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordInternalError,
			"failed to update remaining stock holding",
			err,
		)
	}

	return &SellStockOutput{SoldRecord: sold, RemainingRecord: stock}, nil
}
