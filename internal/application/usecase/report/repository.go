// Package report contains the financial aggregation and reporting engine:
// record normalization, time bucketing, per-window aggregation, trend
// classification and report composition. Everything here computes fresh
// values from an immutable snapshot of the user's records; nothing is
// cached or mutated in place.
package report

import (
	"context"

	"github.com/google/uuid"

	"github.com/expenso/backend/internal/domain/entity"
)

// Snapshot is one consistent read of all financial records for a user.
// Reports are computed against a single snapshot so aggregates never mix
// data from different points in time.
type Snapshot struct {
	Expenses    []*entity.Expense
	Debts       []*entity.Debt
	Plans       []*entity.InvestmentPlan
	Stocks      []*entity.StockHolding
	Loans       []*entity.Loan
	Obligations []*entity.Obligation
}

// ReportRepository fetches record snapshots for report computation.
type ReportRepository interface {
	// GetSnapshot returns all records belonging to the user.
	GetSnapshot(ctx context.Context, userID uuid.UUID) (*Snapshot, error)
}
