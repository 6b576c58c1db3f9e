// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordKind identifies the concrete type of a financial record.
type RecordKind string

const (
	KindExpense        RecordKind = "expense"
	KindDebtOwedByMe   RecordKind = "debt_owed_by_me"
	KindDebtOwedToMe   RecordKind = "debt_owed_to_me"
	KindInvestmentPlan RecordKind = "investment_plan"
	KindStockHolding   RecordKind = "stock_holding"
	KindLoan           RecordKind = "loan"
	KindTax            RecordKind = "tax"
	KindViolation      RecordKind = "violation"
)

// UncategorizedLabel is the category assigned to records without one.
const UncategorizedLabel = "Uncategorized"

// Record is the canonical, normalized view of any financial record.
// Every stored kind is projected onto this shape before aggregation,
// so time bucketing and category math never inspect kind-specific fields.
//
// OccurredAt is nil when the stored date was absent or unparseable; such
// records are excluded from time-windowed aggregates but still contribute
// to totals where time is irrelevant.
type Record struct {
	ID         uuid.UUID
	Kind       RecordKind
	Amount     decimal.Decimal
	Category   string
	Status     string
	OccurredAt *time.Time
}

// InWindow reports whether the record falls inside [start, end).
// Records without a resolved timestamp never match a window.
func (r Record) InWindow(start, end time.Time) bool {
	if r.OccurredAt == nil {
		return false
	}
	t := *r.OccurredAt
	return !t.Before(start) && t.Before(end)
}
