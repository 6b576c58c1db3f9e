// Package report contains the financial aggregation and reporting engine.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/domain/entity"
)

// ReportType selects one of the four report shapes.
type ReportType string

const (
	ReportMonthly       ReportType = "monthly"
	ReportCategory      ReportType = "category"
	ReportComprehensive ReportType = "comprehensive"
	ReportComparison    ReportType = "comparison"
)

// CategoryStat is the per-category analysis of the category report.
type CategoryStat struct {
	Category          string          `json:"category"`
	Total             decimal.Decimal `json:"total"`
	Count             int             `json:"count"`
	Average           decimal.Decimal `json:"average"`
	Max               decimal.Decimal `json:"max"`
	Min               decimal.Decimal `json:"min"`
	PercentageOfTotal float64         `json:"percentage_of_total"`
}

// DailyPoint is one day's spend in the daily series.
type DailyPoint struct {
	Date   string          `json:"date"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// TopExpense is one of the largest expenses of the period.
type TopExpense struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date,omitempty"`
	Note     string          `json:"note,omitempty"`
}

// Report is the assembled output of the engine. Which optional sections are
// populated depends on the report type.
type Report struct {
	Type              ReportType             `json:"type"`
	PeriodLabel       string                 `json:"period_label"`
	Summary           map[string]interface{} `json:"summary"`
	CategoryBreakdown []CategoryShare        `json:"category_breakdown,omitempty"`
	Categories        []CategoryStat         `json:"categories,omitempty"`
	DailySpending     []DailyPoint           `json:"daily_spending,omitempty"`
	TopExpenses       []TopExpense           `json:"top_expenses,omitempty"`
	FinancialHealth   map[string]interface{} `json:"financial_health,omitempty"`
	Insights          []string               `json:"insights"`
	Recommendations   []string               `json:"recommendations,omitempty"`
}

// topExpenseCount limits how many expenses the monthly report lists.
const topExpenseCount = 10

// ComposeReport assembles a report of the requested type from one snapshot.
// The period is half-open: [start, end). Composition never fails; an empty
// snapshot produces a report with zeroed summary values and no insights.
func ComposeReport(snapshot *Snapshot, reportType ReportType, start, end time.Time) *Report {
	switch reportType {
	case ReportCategory:
		return composeCategoryReport(snapshot, start, end)
	case ReportComprehensive:
		return composeComprehensiveReport(snapshot, start, end)
	case ReportComparison:
		return composeComparisonReport(snapshot, start, end)
	default:
		return composeMonthlyReport(snapshot, start, end)
	}
}

func composeMonthlyReport(snapshot *Snapshot, start, end time.Time) *Report {
	period := TimeWindow{Start: start, End: end}
	expenses := periodExpenses(snapshot, period)
	totalExpenses := sumAmounts(expenses)

	totalDebts := decimal.Zero
	if snapshot != nil {
		for _, d := range snapshot.Debts {
			if d.Direction == entity.DebtOwedByMe && d.IsOutstanding() {
				totalDebts = totalDebts.Add(d.Amount)
			}
		}
	}

	totalInvestments := investmentTotal(snapshot)

	days := int64(end.Sub(start).Hours() / 24)
	if days < 1 {
		days = 1
	}
	avgDaily := totalExpenses.DivRound(decimal.NewFromInt(days), 2)

	breakdown := categoryBreakdown(expenses, period)
	daily := dailySeries(expenses)

	report := &Report{
		Type:        ReportMonthly,
		PeriodLabel: periodRangeLabel(start, end),
		Summary: map[string]interface{}{
			"totalExpenses":    totalExpenses,
			"totalDebts":       totalDebts,
			"totalInvestments": totalInvestments,
			"transactionCount": len(expenses),
			"avgDailySpending": avgDaily,
			"netWorth":         totalInvestments.Sub(totalDebts),
		},
		CategoryBreakdown: breakdown,
		DailySpending:     daily,
		TopExpenses:       topExpenses(expenses),
		Insights:          spendingInsights(expenses, breakdown, daily),
	}
	return report
}

func composeCategoryReport(snapshot *Snapshot, start, end time.Time) *Report {
	period := TimeWindow{Start: start, End: end}
	expenses := periodExpenses(snapshot, period)
	totalSpent := sumAmounts(expenses)

	byCategory := make(map[string]*CategoryStat)
	for _, r := range expenses {
		stat, ok := byCategory[r.Category]
		if !ok {
			stat = &CategoryStat{
				Category: r.Category,
				Total:    decimal.Zero,
				Max:      r.Amount,
				Min:      r.Amount,
			}
			byCategory[r.Category] = stat
		}
		stat.Total = stat.Total.Add(r.Amount)
		stat.Count++
		if r.Amount.GreaterThan(stat.Max) {
			stat.Max = r.Amount
		}
		if r.Amount.LessThan(stat.Min) {
			stat.Min = r.Amount
		}
	}

	stats := make([]CategoryStat, 0, len(byCategory))
	for _, stat := range byCategory {
		stat.Average = stat.Total.DivRound(decimal.NewFromInt(int64(stat.Count)), 2)
		stat.PercentageOfTotal = percentageOf(stat.Total, totalSpent)
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(a, b int) bool {
		if !stats[a].Total.Equal(stats[b].Total) {
			return stats[a].Total.GreaterThan(stats[b].Total)
		}
		return stats[a].Category < stats[b].Category
	})

	avgPerCategory := decimal.Zero
	if len(stats) > 0 {
		avgPerCategory = totalSpent.DivRound(decimal.NewFromInt(int64(len(stats))), 2)
	}

	return &Report{
		Type:        ReportCategory,
		PeriodLabel: periodRangeLabel(start, end),
		Summary: map[string]interface{}{
			"totalCategories": len(stats),
			"totalExpenses":   totalSpent,
			"avgPerCategory":  avgPerCategory,
		},
		Categories: stats,
		Insights:   categoryInsights(stats),
	}
}

func composeComprehensiveReport(snapshot *Snapshot, start, end time.Time) *Report {
	report := composeMonthlyReport(snapshot, start, end)
	report.Type = ReportComprehensive

	totalExpenses, _ := report.Summary["totalExpenses"].(decimal.Decimal)
	totalDebts, _ := report.Summary["totalDebts"].(decimal.Decimal)

	totalAssets := investmentTotal(snapshot)
	totalLiabilities := totalDebts
	if snapshot != nil {
		for _, l := range snapshot.Loans {
			totalLiabilities = totalLiabilities.Add(l.Principal)
		}
	}
	netWorth := totalAssets.Sub(totalLiabilities)

	// Income is estimated from committed monthly investments; the system
	// does not track salary.
	monthlyIncome := decimal.Zero
	if snapshot != nil {
		for _, p := range snapshot.Plans {
			monthlyIncome = monthlyIncome.Add(p.MonthlyAmount)
		}
	}
	annualIncome := monthlyIncome.Mul(decimal.NewFromInt(12))
	expenseToIncome := percentageOf(totalExpenses.Mul(decimal.NewFromInt(12)), annualIncome)
	debtToAsset := percentageOf(totalLiabilities, totalAssets)

	report.FinancialHealth = map[string]interface{}{
		"netWorth":             netWorth,
		"totalAssets":          totalAssets,
		"totalLiabilities":     totalLiabilities,
		"expenseToIncomeRatio": expenseToIncome,
		"debtToAssetRatio":     debtToAsset,
	}
	report.Recommendations = recommendations(report.CategoryBreakdown, expenseToIncome, netWorth)
	return report
}

func composeComparisonReport(snapshot *Snapshot, start, end time.Time) *Report {
	length := end.Sub(start)
	prevStart := start.Add(-length)

	current := TimeWindow{Start: start, End: end}
	previous := TimeWindow{Start: prevStart, End: start}

	currentExpenses := periodExpenses(snapshot, current)
	previousExpenses := periodExpenses(snapshot, previous)

	currentTotal := sumAmounts(currentExpenses)
	previousTotal := sumAmounts(previousExpenses)
	change := currentTotal.Sub(previousTotal)

	report := &Report{
		Type:        ReportComparison,
		PeriodLabel: periodRangeLabel(start, end),
		Summary: map[string]interface{}{
			"currentPeriod":    periodRangeLabel(start, end),
			"previousPeriod":   periodRangeLabel(prevStart, start),
			"currentTotal":     currentTotal,
			"currentCount":     len(currentExpenses),
			"previousTotal":    previousTotal,
			"previousCount":    len(previousExpenses),
			"totalChange":      change,
			"percentageChange": percentageOf(change, previousTotal),
			"countChange":      len(currentExpenses) - len(previousExpenses),
		},
		Insights: comparisonInsights(currentTotal, previousTotal, change),
	}
	return report
}

// periodExpenses normalizes the snapshot's expenses and keeps those inside
// the window. Expenses without a resolved date are excluded from the
// windowed view.
func periodExpenses(snapshot *Snapshot, period TimeWindow) []entity.Record {
	var inPeriod []entity.Record
	for _, r := range expenseRecords(snapshot) {
		if r.InWindow(period.Start, period.End) {
			inPeriod = append(inPeriod, r)
		}
	}
	return inPeriod
}

// investmentTotal sums SIP monthly commitment and stock invested amounts.
func investmentTotal(snapshot *Snapshot) decimal.Decimal {
	total := decimal.Zero
	if snapshot == nil {
		return total
	}
	for _, p := range snapshot.Plans {
		total = total.Add(p.MonthlyAmount)
	}
	for _, s := range snapshot.Stocks {
		total = total.Add(s.TotalInvested())
	}
	return total
}

// categoryBreakdown aggregates the period expenses into category shares.
func categoryBreakdown(expenses []entity.Record, period TimeWindow) []CategoryShare {
	aggregates := AggregateByWindow(expenses, []TimeWindow{period})
	if len(aggregates) == 0 {
		return nil
	}
	return aggregates[0].ByCategory
}

// dailySeries groups period expenses by calendar day, sorted ascending.
func dailySeries(expenses []entity.Record) []DailyPoint {
	byDay := make(map[string]decimal.Decimal)
	for _, r := range expenses {
		if r.OccurredAt == nil {
			continue
		}
		key := r.OccurredAt.Format("2006-01-02")
		byDay[key] = byDay[key].Add(r.Amount)
	}

	points := make([]DailyPoint, 0, len(byDay))
	for day, amount := range byDay {
		t, _ := time.Parse("2006-01-02", day)
		points = append(points, DailyPoint{
			Date:   day,
			Label:  t.Format("02 Jan"),
			Amount: amount,
		})
	}
	sort.Slice(points, func(a, b int) bool { return points[a].Date < points[b].Date })
	return points
}

// topExpenses returns the largest period expenses, at most topExpenseCount.
func topExpenses(expenses []entity.Record) []TopExpense {
	sorted := make([]entity.Record, len(expenses))
	copy(sorted, expenses)
	sort.Slice(sorted, func(a, b int) bool {
		return sorted[a].Amount.GreaterThan(sorted[b].Amount)
	})
	if len(sorted) > topExpenseCount {
		sorted = sorted[:topExpenseCount]
	}

	top := make([]TopExpense, 0, len(sorted))
	for _, r := range sorted {
		line := TopExpense{Category: r.Category, Amount: r.Amount}
		if r.OccurredAt != nil {
			line.Date = r.OccurredAt.Format("2006-01-02")
		}
		top = append(top, line)
	}
	return top
}

// spendingInsights derives up to three deterministic insight sentences for
// the monthly report. No expenses means no insights.
func spendingInsights(expenses []entity.Record, breakdown []CategoryShare, daily []DailyPoint) []string {
	if len(expenses) == 0 {
		return []string{}
	}

	insights := make([]string, 0, 3)
	if len(breakdown) > 0 {
		top := breakdown[0]
		insights = append(insights, fmt.Sprintf(
			"Your highest spending category is %s (%.1f%% of total)", top.Category, top.PercentageOfTotal))
	}
	if len(daily) > 0 {
		highest := daily[0]
		for _, p := range daily[1:] {
			if p.Amount.GreaterThan(highest.Amount) {
				highest = p
			}
		}
		insights = append(insights, fmt.Sprintf(
			"Your highest spending day was %s with %s", highest.Label, highest.Amount.StringFixed(2)))
	}
	avg := sumAmounts(expenses).DivRound(decimal.NewFromInt(int64(len(expenses))), 2)
	insights = append(insights, fmt.Sprintf("Your average transaction amount is %s", avg.StringFixed(2)))
	return insights
}

// categoryInsights derives insight sentences for the category report.
func categoryInsights(stats []CategoryStat) []string {
	if len(stats) == 0 {
		return []string{}
	}
	top := stats[0]
	return []string{
		fmt.Sprintf("%s accounts for %.1f%% of your spending", top.Category, top.PercentageOfTotal),
		fmt.Sprintf("You made %d transactions in %s", top.Count, top.Category),
		fmt.Sprintf("Average %s expense: %s", top.Category, top.Average.StringFixed(2)),
	}
}

// comparisonInsights summarizes period-over-period movement.
func comparisonInsights(currentTotal, previousTotal, change decimal.Decimal) []string {
	if currentTotal.IsZero() && previousTotal.IsZero() {
		return []string{}
	}
	switch {
	case change.IsPositive():
		return []string{fmt.Sprintf("Spending increased by %s compared to the previous period", change.StringFixed(2))}
	case change.IsNegative():
		return []string{fmt.Sprintf("Spending decreased by %s compared to the previous period", change.Abs().StringFixed(2))}
	default:
		return []string{"Spending is unchanged compared to the previous period"}
	}
}

// Thresholds for rule-based recommendations.
const (
	expenseToIncomeWarning = 80.0
	categoryShareWarning   = 30.0
)

// recommendations applies the rule set of the comprehensive report.
func recommendations(breakdown []CategoryShare, expenseToIncome float64, netWorth decimal.Decimal) []string {
	var recs []string
	if expenseToIncome > expenseToIncomeWarning {
		recs = append(recs, "Consider reducing expenses as they exceed 80% of estimated income")
	}
	if len(breakdown) > 0 && breakdown[0].PercentageOfTotal > categoryShareWarning {
		recs = append(recs, fmt.Sprintf(
			"Consider diversifying spending - %s represents %.1f%% of expenses",
			breakdown[0].Category, breakdown[0].PercentageOfTotal))
	}
	if netWorth.IsNegative() {
		recs = append(recs, "Focus on debt reduction and increasing investments to improve net worth")
	}
	return recs
}

// periodRangeLabel formats a half-open period using its inclusive end day.
func periodRangeLabel(start, end time.Time) string {
	lastDay := end.AddDate(0, 0, -1)
	if lastDay.Before(start) {
		lastDay = start
	}
	return fmt.Sprintf("%s - %s", start.Format("02 Jan 2006"), lastDay.Format("02 Jan 2006"))
}
