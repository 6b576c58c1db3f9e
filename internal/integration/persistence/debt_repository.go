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

// debtRepository implements the adapter.DebtRepository interface.
type debtRepository struct {
	db *gorm.DB
}

// NewDebtRepository creates a new debt repository instance.
func NewDebtRepository(db *gorm.DB) adapter.DebtRepository {
	return &debtRepository{
		db: db,
	}
}

// Create creates a new debt in the database.
func (r *debtRepository) Create(ctx context.Context, debt *entity.Debt) error {
	debtModel := model.DebtFromEntity(debt)
	result := r.db.WithContext(ctx).Create(debtModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a debt by its ID.
func (r *debtRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Debt, error) {
	var debtModel model.DebtModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&debtModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrDebtNotFound
		}
		return nil, result.Error
	}
	return debtModel.ToEntity(), nil
}

// FindByUser retrieves all debts for a user, optionally one direction only.
func (r *debtRepository) FindByUser(ctx context.Context, userID uuid.UUID, direction *entity.DebtDirection) ([]*entity.Debt, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if direction != nil {
		query = query.Where("direction = ?", string(*direction))
	}

	var debtModels []model.DebtModel
	result := query.
		Order("created_at DESC").
		Find(&debtModels)
	if result.Error != nil {
		return nil, result.Error
	}

	debts := make([]*entity.Debt, len(debtModels))
	for i, dm := range debtModels {
		debts[i] = dm.ToEntity()
	}
	return debts, nil
}

// Update updates an existing debt in the database.
func (r *debtRepository) Update(ctx context.Context, debt *entity.Debt) error {
	debtModel := model.DebtFromEntity(debt)
	result := r.db.WithContext(ctx).Save(debtModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a debt from the database.
func (r *debtRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.DebtModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
