// Package report contains the financial aggregation and reporting engine.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/domain/entity"
)

// flexibleDateLayouts are the accepted textual date representations, tried
// in order. Bare calendar dates resolve to UTC midnight.
var flexibleDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseFlexibleDate parses a date stored either as a full timestamp or as a
// bare YYYY-MM-DD string. It returns nil for empty or unparseable input;
// callers keep such records but exclude them from time-windowed views.
func ParseFlexibleDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range flexibleDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

// NormalizeSnapshot projects every stored record kind onto the canonical
// Record shape with a single resolved timestamp. The projection never
// fails: missing amounts become zero and missing categories fall back to
// the uncategorized label.
func NormalizeSnapshot(s *Snapshot) []entity.Record {
	if s == nil {
		return nil
	}

	records := make([]entity.Record, 0,
		len(s.Expenses)+len(s.Debts)+len(s.Plans)+len(s.Stocks)+len(s.Loans)+len(s.Obligations))

	for _, e := range s.Expenses {
		category := e.Category
		if category == "" {
			category = entity.UncategorizedLabel
		}
		records = append(records, entity.Record{
			ID:         e.ID,
			Kind:       entity.KindExpense,
			Amount:     e.Amount,
			Category:   category,
			OccurredAt: e.Date,
		})
	}

	for _, d := range s.Debts {
		kind := entity.KindDebtOwedByMe
		if d.Direction == entity.DebtOwedToMe {
			kind = entity.KindDebtOwedToMe
		}
		records = append(records, entity.Record{
			ID:         d.ID,
			Kind:       kind,
			Amount:     d.Amount,
			Category:   "Debt",
			Status:     string(d.Status),
			OccurredAt: d.DueDate,
		})
	}

	for _, p := range s.Plans {
		records = append(records, entity.Record{
			ID:         p.ID,
			Kind:       entity.KindInvestmentPlan,
			Amount:     p.MonthlyAmount,
			Category:   "Investment",
			Status:     string(p.Status),
			OccurredAt: p.StartDate,
		})
	}

	for _, st := range s.Stocks {
		records = append(records, entity.Record{
			ID:         st.ID,
			Kind:       entity.KindStockHolding,
			Amount:     st.TotalInvested(),
			Category:   "Investment",
			Status:     string(st.Status),
			OccurredAt: st.BuyDate,
		})
	}

	for _, l := range s.Loans {
		records = append(records, entity.Record{
			ID:         l.ID,
			Kind:       entity.KindLoan,
			Amount:     l.Principal,
			Category:   "Loan",
			Status:     string(l.Status),
			OccurredAt: l.DueDate,
		})
	}

	for _, o := range s.Obligations {
		kind := entity.KindTax
		if o.Kind == entity.ObligationViolation {
			kind = entity.KindViolation
		}
		records = append(records, entity.Record{
			ID:         o.ID,
			Kind:       kind,
			Amount:     o.Amount,
			Category:   o.Type,
			Status:     string(o.Status),
			OccurredAt: o.DueDate,
		})
	}

	return records
}

// expenseRecords returns normalized records for expenses only, the kind
// most aggregate views operate on.
func expenseRecords(s *Snapshot) []entity.Record {
	if s == nil {
		return nil
	}
	trimmed := &Snapshot{Expenses: s.Expenses}
	return NormalizeSnapshot(trimmed)
}

// sumAmounts totals record amounts regardless of timestamps. Records with
// unresolved dates still count here.
func sumAmounts(records []entity.Record) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return total
}
