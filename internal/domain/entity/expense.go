// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a single spend record in the Expenso system.
type Expense struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Amount    decimal.Decimal
	Category  string
	Date      *time.Time // nil when the source date was absent or unparseable
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(userID uuid.UUID, amount decimal.Decimal, category string, date *time.Time, note string) *Expense {
	now := time.Now().UTC()
	if category == "" {
		category = UncategorizedLabel
	}
	return &Expense{
		ID:        uuid.New(),
		UserID:    userID,
		Amount:    amount,
		Category:  category,
		Date:      date,
		Note:      note,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
