// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category  string          `gorm:"type:varchar(100);not null;index"`
	Date      *time.Time      `gorm:"type:date;index"`
	Note      string          `gorm:"type:text"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:        m.ID,
		UserID:    m.UserID,
		Amount:    m.Amount,
		Category:  m.Category,
		Date:      m.Date,
		Note:      m.Note,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:        expense.ID,
		UserID:    expense.UserID,
		Amount:    expense.Amount,
		Category:  expense.Category,
		Date:      expense.Date,
		Note:      expense.Note,
		CreatedAt: expense.CreatedAt,
		UpdatedAt: expense.UpdatedAt,
	}
}
