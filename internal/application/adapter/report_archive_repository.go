// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expenso/backend/internal/domain/entity"
)

// ReportArchiveRepository defines the interface for report history persistence.
type ReportArchiveRepository interface {
	// Create records a generated report.
	Create(ctx context.Context, archive *entity.ReportArchive) error

	// FindByUser retrieves a user's report history, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.ReportArchive, error)
}
