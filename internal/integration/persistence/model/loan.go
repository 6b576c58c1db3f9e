// Package model defines database models for persistence layer.
package model

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/domain/entity"
)

// LoanModel represents the loans table in the database. The interest
// payment history is stored as a jsonb array.
type LoanModel struct {
	ID                        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID                    uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrganizationName          string          `gorm:"type:varchar(255);not null"`
	Principal                 decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	AnnualInterestRatePercent float64         `gorm:"type:decimal(6,3);not null"`
	DueDate                   *time.Time      `gorm:"type:date"`
	Status                    string          `gorm:"type:varchar(10);not null;default:'Pending';index"`
	Reason                    string          `gorm:"type:text"`
	InterestPaymentHistory    string          `gorm:"type:jsonb;not null;default:'[]'"`
	LastInterestPaidDate      *time.Time      `gorm:"type:date"`
	CreatedAt                 time.Time       `gorm:"not null"`
	UpdatedAt                 time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the LoanModel.
func (LoanModel) TableName() string {
	return "loans"
}

// ToEntity converts a LoanModel to a domain Loan entity.
func (m *LoanModel) ToEntity() *entity.Loan {
	var history []entity.InterestPayment
	if m.InterestPaymentHistory != "" {
		if err := json.Unmarshal([]byte(m.InterestPaymentHistory), &history); err != nil {
			slog.Warn("Failed to unmarshal loan interest history", "error", err, "id", m.ID)
		}
	}

	return &entity.Loan{
		ID:                        m.ID,
		UserID:                    m.UserID,
		OrganizationName:          m.OrganizationName,
		Principal:                 m.Principal,
		AnnualInterestRatePercent: m.AnnualInterestRatePercent,
		DueDate:                   m.DueDate,
		Status:                    entity.LoanStatus(m.Status),
		Reason:                    m.Reason,
		InterestPaymentHistory:    history,
		LastInterestPaidDate:      m.LastInterestPaidDate,
		CreatedAt:                 m.CreatedAt,
		UpdatedAt:                 m.UpdatedAt,
	}
}

// LoanFromEntity creates a LoanModel from a domain Loan entity.
func LoanFromEntity(loan *entity.Loan) *LoanModel {
	historyJSON, err := json.Marshal(loan.InterestPaymentHistory)
	if err != nil {
		slog.Error("Failed to marshal loan interest history", "error", err, "id", loan.ID)
		historyJSON = []byte("[]")
	}
	if loan.InterestPaymentHistory == nil {
		historyJSON = []byte("[]")
	}

	return &LoanModel{
		ID:                        loan.ID,
		UserID:                    loan.UserID,
		OrganizationName:          loan.OrganizationName,
		Principal:                 loan.Principal,
		AnnualInterestRatePercent: loan.AnnualInterestRatePercent,
		DueDate:                   loan.DueDate,
		Status:                    string(loan.Status),
		Reason:                    loan.Reason,
		InterestPaymentHistory:    string(historyJSON),
		LastInterestPaidDate:      loan.LastInterestPaidDate,
		CreatedAt:                 loan.CreatedAt,
		UpdatedAt:                 loan.UpdatedAt,
	}
}
