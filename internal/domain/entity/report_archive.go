// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReportArchive is a record of a generated report: which type and period
// it covered and the insights it produced. The full report body is not
// stored; it is recomputed on demand.
type ReportArchive struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ReportType  string
	Format      string
	PeriodStart time.Time
	PeriodEnd   time.Time
	Insights    []string
	CreatedAt   time.Time
}

// NewReportArchive creates a new ReportArchive entry.
func NewReportArchive(
	userID uuid.UUID,
	reportType, format string,
	periodStart, periodEnd time.Time,
	insights []string,
) *ReportArchive {
	return &ReportArchive{
		ID:          uuid.New(),
		UserID:      userID,
		ReportType:  reportType,
		Format:      format,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Insights:    insights,
		CreatedAt:   time.Now().UTC(),
	}
}
