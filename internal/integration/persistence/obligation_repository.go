// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/expenso/backend/internal/application/adapter"
	"github.com/expenso/backend/internal/domain/entity"
	domainerror "github.com/expenso/backend/internal/domain/error"
	"github.com/expenso/backend/internal/integration/persistence/model"
)

// obligationRepository implements the adapter.ObligationRepository interface.
type obligationRepository struct {
	db *gorm.DB
}

// NewObligationRepository creates a new obligation repository instance.
func NewObligationRepository(db *gorm.DB) adapter.ObligationRepository {
	return &obligationRepository{
		db: db,
	}
}

// Create creates a new obligation in the database.
func (r *obligationRepository) Create(ctx context.Context, obligation *entity.Obligation) error {
	obligationModel := model.ObligationFromEntity(obligation)
	result := r.db.WithContext(ctx).Create(obligationModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an obligation by its ID.
func (r *obligationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Obligation, error) {
	var obligationModel model.ObligationModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&obligationModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrObligationNotFound
		}
		return nil, result.Error
	}
	return obligationModel.ToEntity(), nil
}

// FindByUser retrieves all obligations for a user, optionally one kind only.
func (r *obligationRepository) FindByUser(ctx context.Context, userID uuid.UUID, kind *entity.ObligationKind) ([]*entity.Obligation, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if kind != nil {
		query = query.Where("kind = ?", string(*kind))
	}

	var obligationModels []model.ObligationModel
	result := query.
		Order("due_date ASC NULLS LAST, created_at DESC").
		Find(&obligationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	obligations := make([]*entity.Obligation, len(obligationModels))
	for i, om := range obligationModels {
		obligations[i] = om.ToEntity()
	}
	return obligations, nil
}

// FindDueBetween retrieves pending obligations of all users with a due date
// inside [from, to).
func (r *obligationRepository) FindDueBetween(ctx context.Context, from, to time.Time) ([]*entity.Obligation, error) {
	var obligationModels []model.ObligationModel
	result := r.db.WithContext(ctx).
		Where("status = ?", string(entity.ObligationStatusPending)).
		Where("due_date >= ? AND due_date < ?", from, to).
		Order("due_date ASC").
		Find(&obligationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	obligations := make([]*entity.Obligation, len(obligationModels))
	for i, om := range obligationModels {
		obligations[i] = om.ToEntity()
	}
	return obligations, nil
}

// Update updates an existing obligation in the database.
func (r *obligationRepository) Update(ctx context.Context, obligation *entity.Obligation) error {
	obligationModel := model.ObligationFromEntity(obligation)
	result := r.db.WithContext(ctx).Save(obligationModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an obligation from the database.
func (r *obligationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ObligationModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
