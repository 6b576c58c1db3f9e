package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyInterest returns the simple monthly interest accrued on a loan
// principal: principal * annualRatePercent / 12 / 100, rounded to cents.
func MonthlyInterest(principal decimal.Decimal, annualRatePercent float64) decimal.Decimal {
	return principal.
		Mul(decimal.NewFromFloat(annualRatePercent)).
		Div(decimal.NewFromInt(1200)).
		Round(2)
}

// NextInterestDueDate projects when the next interest payment is due: one
// calendar month after the last payment, or the loan's original due date
// when no payment has been made. Returns nil when neither date is known.
func NextInterestDueDate(lastPaid, dueDate *time.Time) *time.Time {
	if lastPaid != nil {
		next := lastPaid.AddDate(0, 1, 0)
		return &next
	}
	return dueDate
}

// IsInterestDue reports whether interest is payable at now. Paid-off loans
// never accrue.
func IsInterestDue(now time.Time, nextDue *time.Time, paid bool) bool {
	if paid || nextDue == nil {
		return false
	}
	return !now.Before(*nextDue)
}
