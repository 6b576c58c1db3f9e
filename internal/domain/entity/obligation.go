// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ObligationKind distinguishes dated payment obligations.
type ObligationKind string

const (
	ObligationTax       ObligationKind = "tax"
	ObligationViolation ObligationKind = "violation"
)

// ObligationStatus represents the payment status of an obligation.
type ObligationStatus string

const (
	ObligationStatusPending ObligationStatus = "Pending"
	ObligationStatusPaid    ObligationStatus = "Paid"
)

// ViolationDueDays is the default payment window granted after a traffic
// violation when no explicit due date is supplied.
const ViolationDueDays = 30

// Obligation represents a dated payment obligation: a tax or a
// traffic-violation fine.
type Obligation struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Kind          ObligationKind
	Type          string // e.g. "Income Tax", "Speeding"
	Amount        decimal.Decimal
	DueDate       *time.Time
	ViolationDate *time.Time // violations only
	Status        ObligationStatus
	Note          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewObligation creates a new pending Obligation entity. For violations
// without an explicit due date, the due date defaults to the violation
// date plus ViolationDueDays.
func NewObligation(
	userID uuid.UUID,
	kind ObligationKind,
	obligationType string,
	amount decimal.Decimal,
	dueDate *time.Time,
	violationDate *time.Time,
	note string,
) *Obligation {
	now := time.Now().UTC()
	if kind == ObligationViolation && dueDate == nil && violationDate != nil {
		d := violationDate.AddDate(0, 0, ViolationDueDays)
		dueDate = &d
	}
	return &Obligation{
		ID:            uuid.New(),
		UserID:        userID,
		Kind:          kind,
		Type:          obligationType,
		Amount:        amount,
		DueDate:       dueDate,
		ViolationDate: violationDate,
		Status:        ObligationStatusPending,
		Note:          note,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
