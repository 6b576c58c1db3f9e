// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/domain/entity"
)

// InvestmentPlanModel represents the investment_plans table in the database.
type InvestmentPlanModel struct {
	ID                      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID                  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name                    string          `gorm:"type:varchar(255);not null"`
	MonthlyAmount           decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	AnnualReturnRatePercent float64         `gorm:"type:decimal(6,3);not null"`
	DurationMonths          int             `gorm:"not null"`
	StartDate               *time.Time      `gorm:"type:date"`
	Status                  string          `gorm:"type:varchar(10);not null;default:'Active';index"`
	CreatedAt               time.Time       `gorm:"not null"`
	UpdatedAt               time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the InvestmentPlanModel.
func (InvestmentPlanModel) TableName() string {
	return "investment_plans"
}

// ToEntity converts an InvestmentPlanModel to a domain InvestmentPlan entity.
func (m *InvestmentPlanModel) ToEntity() *entity.InvestmentPlan {
	return &entity.InvestmentPlan{
		ID:                      m.ID,
		UserID:                  m.UserID,
		Name:                    m.Name,
		MonthlyAmount:           m.MonthlyAmount,
		AnnualReturnRatePercent: m.AnnualReturnRatePercent,
		DurationMonths:          m.DurationMonths,
		StartDate:               m.StartDate,
		Status:                  entity.InvestmentPlanStatus(m.Status),
		CreatedAt:               m.CreatedAt,
		UpdatedAt:               m.UpdatedAt,
	}
}

// InvestmentPlanFromEntity creates an InvestmentPlanModel from a domain entity.
func InvestmentPlanFromEntity(plan *entity.InvestmentPlan) *InvestmentPlanModel {
	return &InvestmentPlanModel{
		ID:                      plan.ID,
		UserID:                  plan.UserID,
		Name:                    plan.Name,
		MonthlyAmount:           plan.MonthlyAmount,
		AnnualReturnRatePercent: plan.AnnualReturnRatePercent,
		DurationMonths:          plan.DurationMonths,
		StartDate:               plan.StartDate,
		Status:                  string(plan.Status),
		CreatedAt:               plan.CreatedAt,
		UpdatedAt:               plan.UpdatedAt,
	}
}
