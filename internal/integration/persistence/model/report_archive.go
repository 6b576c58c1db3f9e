// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/expenso/backend/internal/domain/entity"
)

// ReportArchiveModel represents the report_archives table in the database.
type ReportArchiveModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	ReportType  string         `gorm:"type:varchar(20);not null"`
	Format      string         `gorm:"type:varchar(10);not null"`
	PeriodStart time.Time      `gorm:"type:date;not null"`
	PeriodEnd   time.Time      `gorm:"type:date;not null"`
	Insights    pq.StringArray `gorm:"type:text[]"`
	CreatedAt   time.Time      `gorm:"not null;index"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the ReportArchiveModel.
func (ReportArchiveModel) TableName() string {
	return "report_archives"
}

// ToEntity converts a ReportArchiveModel to a domain ReportArchive entity.
func (m *ReportArchiveModel) ToEntity() *entity.ReportArchive {
	return &entity.ReportArchive{
		ID:          m.ID,
		UserID:      m.UserID,
		ReportType:  m.ReportType,
		Format:      m.Format,
		PeriodStart: m.PeriodStart,
		PeriodEnd:   m.PeriodEnd,
		Insights:    []string(m.Insights),
		CreatedAt:   m.CreatedAt,
	}
}

// ReportArchiveFromEntity creates a ReportArchiveModel from a domain entity.
func ReportArchiveFromEntity(archive *entity.ReportArchive) *ReportArchiveModel {
	return &ReportArchiveModel{
		ID:          archive.ID,
		UserID:      archive.UserID,
		ReportType:  archive.ReportType,
		Format:      archive.Format,
		PeriodStart: archive.PeriodStart,
		PeriodEnd:   archive.PeriodEnd,
		Insights:    pq.StringArray(archive.Insights),
		CreatedAt:   archive.CreatedAt,
	}
}
