package finance

import "github.com/shopspring/decimal"

// StockPosition is the computed economics of a single holding.
type StockPosition struct {
	TotalInvested   decimal.Decimal
	CurrentValue    decimal.Decimal
	GainLoss        decimal.Decimal // may be negative
	GainLossPercent float64
}

// EvaluatePosition computes invested amount, current value and gain/loss
// for a holding. GainLossPercent is zero when nothing was invested.
func EvaluatePosition(quantity, buyPrice, currentPrice decimal.Decimal) StockPosition {
	invested := quantity.Mul(buyPrice)
	current := quantity.Mul(currentPrice)
	gainLoss := current.Sub(invested)

	var pct float64
	if !invested.IsZero() {
		p, _ := gainLoss.Mul(decimal.NewFromInt(100)).Div(invested).Round(2).Float64()
		pct = p
	}

	return StockPosition{
		TotalInvested:   invested,
		CurrentValue:    current,
		GainLoss:        gainLoss,
		GainLossPercent: pct,
	}
}
