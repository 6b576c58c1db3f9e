// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/domain/entity"
)

// ObligationModel represents the obligations table in the database. Taxes
// and traffic violations share the table, distinguished by kind.
type ObligationModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Kind          string          `gorm:"type:varchar(10);not null;index"`
	Type          string          `gorm:"type:varchar(100);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DueDate       *time.Time      `gorm:"type:date;index"`
	ViolationDate *time.Time      `gorm:"type:date"`
	Status        string          `gorm:"type:varchar(10);not null;default:'Pending';index"`
	Note          string          `gorm:"type:text"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the ObligationModel.
func (ObligationModel) TableName() string {
	return "obligations"
}

// ToEntity converts an ObligationModel to a domain Obligation entity.
func (m *ObligationModel) ToEntity() *entity.Obligation {
	return &entity.Obligation{
		ID:            m.ID,
		UserID:        m.UserID,
		Kind:          entity.ObligationKind(m.Kind),
		Type:          m.Type,
		Amount:        m.Amount,
		DueDate:       m.DueDate,
		ViolationDate: m.ViolationDate,
		Status:        entity.ObligationStatus(m.Status),
		Note:          m.Note,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ObligationFromEntity creates an ObligationModel from a domain entity.
func ObligationFromEntity(obligation *entity.Obligation) *ObligationModel {
	return &ObligationModel{
		ID:            obligation.ID,
		UserID:        obligation.UserID,
		Kind:          string(obligation.Kind),
		Type:          obligation.Type,
		Amount:        obligation.Amount,
		DueDate:       obligation.DueDate,
		ViolationDate: obligation.ViolationDate,
		Status:        string(obligation.Status),
		Note:          obligation.Note,
		CreatedAt:     obligation.CreatedAt,
		UpdatedAt:     obligation.UpdatedAt,
	}
}
