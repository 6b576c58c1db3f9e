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

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Create(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an expense by its ID.
func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindByFilter retrieves expenses matching the filter, newest first.
func (r *expenseRepository) FindByFilter(ctx context.Context, filter adapter.ExpenseFilter) ([]*entity.Expense, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", filter.UserID)

	if filter.StartDate != nil {
		query = query.Where("date >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date < ?", filter.EndDate)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var expenseModels []model.ExpenseModel
	result := query.
		Order("date DESC, created_at DESC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntity()
	}
	return expenses, nil
}

// Update updates an existing expense in the database.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Save(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an expense from the database.
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ExpenseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
