// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtDirection indicates who owes whom.
type DebtDirection string

const (
	DebtOwedByMe DebtDirection = "owed_by_me"
	DebtOwedToMe DebtDirection = "owed_to_me"
)

// DebtStatus represents the settlement status of a debt.
type DebtStatus string

const (
	DebtStatusPending DebtStatus = "Pending"
	DebtStatusCleared DebtStatus = "Cleared"
)

// Debt represents money owed to or by the user.
type Debt struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Direction        DebtDirection
	Amount           decimal.Decimal
	CounterpartyName string
	DueDate          *time.Time
	Status           DebtStatus
	Note             string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewDebt creates a new Debt entity in pending status.
func NewDebt(
	userID uuid.UUID,
	direction DebtDirection,
	amount decimal.Decimal,
	counterpartyName string,
	dueDate *time.Time,
	note string,
) *Debt {
	now := time.Now().UTC()
	return &Debt{
		ID:               uuid.New(),
		UserID:           userID,
		Direction:        direction,
		Amount:           amount,
		CounterpartyName: counterpartyName,
		DueDate:          dueDate,
		Status:           DebtStatusPending,
		Note:             note,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// IsOutstanding reports whether the debt still counts toward liability totals.
func (d *Debt) IsOutstanding() bool {
	return d.Status != DebtStatusCleared
}
