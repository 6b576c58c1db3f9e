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

// investmentPlanRepository implements the adapter.InvestmentPlanRepository interface.
type investmentPlanRepository struct {
	db *gorm.DB
}

// NewInvestmentPlanRepository creates a new investment plan repository instance.
func NewInvestmentPlanRepository(db *gorm.DB) adapter.InvestmentPlanRepository {
	return &investmentPlanRepository{
		db: db,
	}
}

// Create creates a new investment plan in the database.
func (r *investmentPlanRepository) Create(ctx context.Context, plan *entity.InvestmentPlan) error {
	planModel := model.InvestmentPlanFromEntity(plan)
	result := r.db.WithContext(ctx).Create(planModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an investment plan by its ID.
func (r *investmentPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.InvestmentPlan, error) {
	var planModel model.InvestmentPlanModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&planModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrInvestmentPlanNotFound
		}
		return nil, result.Error
	}
	return planModel.ToEntity(), nil
}

// FindByUser retrieves all investment plans for a user.
func (r *investmentPlanRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.InvestmentPlan, error) {
	var planModels []model.InvestmentPlanModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&planModels)
	if result.Error != nil {
		return nil, result.Error
	}

	plans := make([]*entity.InvestmentPlan, len(planModels))
	for i, pm := range planModels {
		plans[i] = pm.ToEntity()
	}
	return plans, nil
}

// Update updates an existing investment plan in the database.
func (r *investmentPlanRepository) Update(ctx context.Context, plan *entity.InvestmentPlan) error {
	planModel := model.InvestmentPlanFromEntity(plan)
	result := r.db.WithContext(ctx).Save(planModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an investment plan from the database.
func (r *investmentPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.InvestmentPlanModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
