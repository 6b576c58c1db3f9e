// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/domain/entity"
)

// MonthlyBudgetModel represents the monthly_budgets table in the database.
// One row per user per month.
type MonthlyBudgetModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budget_user_month"`
	Month     string          `gorm:"type:varchar(7);not null;uniqueIndex:idx_budget_user_month"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the MonthlyBudgetModel.
func (MonthlyBudgetModel) TableName() string {
	return "monthly_budgets"
}

// ToEntity converts a MonthlyBudgetModel to a domain MonthlyBudget entity.
func (m *MonthlyBudgetModel) ToEntity() *entity.MonthlyBudget {
	return &entity.MonthlyBudget{
		ID:        m.ID,
		UserID:    m.UserID,
		Month:     m.Month,
		Amount:    m.Amount,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// MonthlyBudgetFromEntity creates a MonthlyBudgetModel from a domain entity.
func MonthlyBudgetFromEntity(budget *entity.MonthlyBudget) *MonthlyBudgetModel {
	return &MonthlyBudgetModel{
		ID:        budget.ID,
		UserID:    budget.UserID,
		Month:     budget.Month,
		Amount:    budget.Amount,
		CreatedAt: budget.CreatedAt,
		UpdatedAt: budget.UpdatedAt,
	}
}
