// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/domain/entity"
)

// DebtModel represents the debts table in the database.
type DebtModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	Direction        string          `gorm:"type:varchar(10);not null;index"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CounterpartyName string          `gorm:"type:varchar(255);not null"`
	DueDate          *time.Time      `gorm:"type:date"`
	Status           string          `gorm:"type:varchar(10);not null;default:'Pending'"`
	Note             string          `gorm:"type:text"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the DebtModel.
func (DebtModel) TableName() string {
	return "debts"
}

// ToEntity converts a DebtModel to a domain Debt entity.
func (m *DebtModel) ToEntity() *entity.Debt {
	return &entity.Debt{
		ID:               m.ID,
		UserID:           m.UserID,
		Direction:        entity.DebtDirection(m.Direction),
		Amount:           m.Amount,
		CounterpartyName: m.CounterpartyName,
		DueDate:          m.DueDate,
		Status:           entity.DebtStatus(m.Status),
		Note:             m.Note,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// DebtFromEntity creates a DebtModel from a domain Debt entity.
func DebtFromEntity(debt *entity.Debt) *DebtModel {
	return &DebtModel{
		ID:               debt.ID,
		UserID:           debt.UserID,
		Direction:        string(debt.Direction),
		Amount:           debt.Amount,
		CounterpartyName: debt.CounterpartyName,
		DueDate:          debt.DueDate,
		Status:           string(debt.Status),
		Note:             debt.Note,
		CreatedAt:        debt.CreatedAt,
		UpdatedAt:        debt.UpdatedAt,
	}
}
