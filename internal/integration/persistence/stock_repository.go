// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/expenso/backend/internal/application/adapter"
	"github.com/expenso/backend/internal/domain/entity"
	domainerror "github.com/expenso/backend/internal/domain/error"
	"github.com/expenso/backend/internal/integration/persistence/model"
)

// stockRepository implements the adapter.StockRepository interface.
type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository creates a new stock repository instance.
func NewStockRepository(db *gorm.DB) adapter.StockRepository {
	return &stockRepository{
		db: db,
	}
}

// Create creates a new stock holding in the database.
func (r *stockRepository) Create(ctx context.Context, stock *entity.StockHolding) error {
	stockModel := model.StockHoldingFromEntity(stock)
	result := r.db.WithContext(ctx).Create(stockModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a stock holding by its ID.
func (r *stockRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.StockHolding, error) {
	var stockModel model.StockHoldingModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&stockModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrStockNotFound
		}
		return nil, result.Error
	}
	return stockModel.ToEntity(), nil
}

// FindByUser retrieves all stock holdings for a user.
func (r *stockRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.StockHolding, error) {
	var stockModels []model.StockHoldingModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&stockModels)
	if result.Error != nil {
		return nil, result.Error
	}

	stocks := make([]*entity.StockHolding, len(stockModels))
	for i, sm := range stockModels {
		stocks[i] = sm.ToEntity()
	}
	return stocks, nil
}

// Update updates an existing stock holding in the database.
func (r *stockRepository) Update(ctx context.Context, stock *entity.StockHolding) error {
	stockModel := model.StockHoldingFromEntity(stock)
	result := r.db.WithContext(ctx).Save(stockModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a stock holding from the database.
func (r *stockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.StockHoldingModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
