// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlyBudget represents the spending budget a user has set for one
// calendar month. Month is stored as "YYYY-MM".
type MonthlyBudget struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Month     string
	Amount    decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMonthlyBudget creates a budget for the given month.
func NewMonthlyBudget(userID uuid.UUID, month string, amount decimal.Decimal) *MonthlyBudget {
	now := time.Now().UTC()
	return &MonthlyBudget{
		ID:        uuid.New(),
		UserID:    userID,
		Month:     month,
		Amount:    amount,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
