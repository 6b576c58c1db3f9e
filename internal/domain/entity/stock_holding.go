// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockStatus represents whether a holding is still open.
type StockStatus string

const (
	StockStatusHolding StockStatus = "Holding"
	StockStatusSold    StockStatus = "Sold"
)

// StockHolding represents a position in a single stock. A partial sale
// splits the position: the original keeps the unsold quantity and a new
// Sold record carries the sold quantity with the original buy terms.
type StockHolding struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	Quantity     decimal.Decimal
	BuyPrice     decimal.Decimal
	CurrentPrice decimal.Decimal
	BuyDate      *time.Time
	Status       StockStatus
	SellQuantity *decimal.Decimal
	SellPrice    *decimal.Decimal
	SellDate     *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewStockHolding creates a new open StockHolding entity.
func NewStockHolding(
	userID uuid.UUID,
	name string,
	quantity, buyPrice, currentPrice decimal.Decimal,
	buyDate *time.Time,
) *StockHolding {
	now := time.Now().UTC()
	return &StockHolding{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         name,
		Quantity:     quantity,
		BuyPrice:     buyPrice,
		CurrentPrice: currentPrice,
		BuyDate:      buyDate,
		Status:       StockStatusHolding,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// TotalInvested returns quantity * buy price.
func (s *StockHolding) TotalInvested() decimal.Decimal {
	return s.Quantity.Mul(s.BuyPrice)
}

// CurrentValue returns quantity * current price.
func (s *StockHolding) CurrentValue() decimal.Decimal {
	return s.Quantity.Mul(s.CurrentPrice)
}
