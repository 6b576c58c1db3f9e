// Package stock contains stock holding-related use cases.
package stock

import (
	"context"

	"github.com/google/uuid"

	"github.com/expenso/backend/internal/application/adapter"
	domainerror "github.com/expenso/backend/internal/domain/error"
)

// DeleteStockInput represents the input for stock holding deletion.
type DeleteStockInput struct {
	StockID uuid.UUID
	UserID  uuid.UUID
}

// DeleteStockUseCase handles stock holding deletion logic.
type DeleteStockUseCase struct {
	stockRepo adapter.StockRepository
}

// NewDeleteStockUseCase creates a new DeleteStockUseCase instance.
func NewDeleteStockUseCase(stockRepo adapter.StockRepository) *DeleteStockUseCase {
	return &DeleteStockUseCase{
		stockRepo: stockRepo,
	}
}

// Execute performs the stock holding deletion.
func (uc *DeleteStockUseCase) Execute(ctx context.Context, input DeleteStockInput) error {
	stock, err := uc.stockRepo.FindByID(ctx, input.StockID)
	if err != nil {
		return domainerror.NewRecordError(
			domainerror.ErrCodeRecordNotFound,
			"stock holding not found",
			domainerror.ErrStockNotFound,
		)
	}

	if stock.UserID != input.UserID {
		return domainerror.NewRecordError(
			domainerror.ErrCodeRecordNotAuthorized,
			"stock holding does not belong to user",
			domainerror.ErrNotAuthorizedToModifyRecord,
		)
	}

	if err := uc.stockRepo.Delete(ctx, input.StockID); err != nil {
		return domainerror.NewRecordError(
			domainerror.ErrCodeRecordInternalError,
			"failed to delete stock holding",
			err,
		)
	}
	return nil
}
