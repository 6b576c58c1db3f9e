// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/domain/entity"
)

// StockHoldingModel represents the stock_holdings table in the database.
type StockHoldingModel struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID        `gorm:"type:uuid;not null;index"`
	Name         string           `gorm:"type:varchar(255);not null"`
	Quantity     decimal.Decimal  `gorm:"type:decimal(15,4);not null"`
	BuyPrice     decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	CurrentPrice decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	BuyDate      *time.Time       `gorm:"type:date"`
	Status       string           `gorm:"type:varchar(10);not null;default:'Holding';index"`
	SellQuantity *decimal.Decimal `gorm:"type:decimal(15,4)"`
	SellPrice    *decimal.Decimal `gorm:"type:decimal(15,2)"`
	SellDate     *time.Time       `gorm:"type:date"`
	CreatedAt    time.Time        `gorm:"not null"`
	UpdatedAt    time.Time        `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the StockHoldingModel.
func (StockHoldingModel) TableName() string {
	return "stock_holdings"
}

// ToEntity converts a StockHoldingModel to a domain StockHolding entity.
func (m *StockHoldingModel) ToEntity() *entity.StockHolding {
	return &entity.StockHolding{
		ID:           m.ID,
		UserID:       m.UserID,
		Name:         m.Name,
		Quantity:     m.Quantity,
		BuyPrice:     m.BuyPrice,
		CurrentPrice: m.CurrentPrice,
		BuyDate:      m.BuyDate,
		Status:       entity.StockStatus(m.Status),
		SellQuantity: m.SellQuantity,
		SellPrice:    m.SellPrice,
		SellDate:     m.SellDate,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// StockHoldingFromEntity creates a StockHoldingModel from a domain entity.
func StockHoldingFromEntity(stock *entity.StockHolding) *StockHoldingModel {
	return &StockHoldingModel{
		ID:           stock.ID,
		UserID:       stock.UserID,
		Name:         stock.Name,
		Quantity:     stock.Quantity,
		BuyPrice:     stock.BuyPrice,
		CurrentPrice: stock.CurrentPrice,
		BuyDate:      stock.BuyDate,
		Status:       string(stock.Status),
		SellQuantity: stock.SellQuantity,
		SellPrice:    stock.SellPrice,
		SellDate:     stock.SellDate,
		CreatedAt:    stock.CreatedAt,
		UpdatedAt:    stock.UpdatedAt,
	}
}
