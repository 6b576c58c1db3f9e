// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/expenso/backend/internal/application/adapter"
	"github.com/expenso/backend/internal/domain/entity"
	"github.com/expenso/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Upsert creates or replaces the budget for a user and month.
func (r *budgetRepository) Upsert(ctx context.Context, budget *entity.MonthlyBudget) error {
	budgetModel := model.MonthlyBudgetFromEntity(budget)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
		}).
		Create(budgetModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUserAndMonth retrieves the budget for a user and month, nil when unset.
func (r *budgetRepository) FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month string) (*entity.MonthlyBudget, error) {
	var budgetModel model.MonthlyBudgetModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND month = ?", userID, month).
		First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}
