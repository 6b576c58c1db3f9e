// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/expenso/backend/internal/application/adapter"
	"github.com/expenso/backend/internal/domain/entity"
	"github.com/expenso/backend/internal/integration/persistence/model"
)

// reportArchiveRepository implements the adapter.ReportArchiveRepository interface.
type reportArchiveRepository struct {
	db *gorm.DB
}

// NewReportArchiveRepository creates a new report archive repository instance.
func NewReportArchiveRepository(db *gorm.DB) adapter.ReportArchiveRepository {
	return &reportArchiveRepository{
		db: db,
	}
}

// Create records a generated report.
func (r *reportArchiveRepository) Create(ctx context.Context, archive *entity.ReportArchive) error {
	archiveModel := model.ReportArchiveFromEntity(archive)
	result := r.db.WithContext(ctx).Create(archiveModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUser retrieves a user's report history, newest first.
func (r *reportArchiveRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.ReportArchive, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var archiveModels []model.ReportArchiveModel
	result := query.Find(&archiveModels)
	if result.Error != nil {
		return nil, result.Error
	}

	archives := make([]*entity.ReportArchive, len(archiveModels))
	for i, am := range archiveModels {
		archives[i] = am.ToEntity()
	}
	return archives, nil
}
