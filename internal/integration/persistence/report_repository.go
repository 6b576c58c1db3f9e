// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/expenso/backend/internal/application/usecase/report"
	"github.com/expenso/backend/internal/domain/entity"
	"github.com/expenso/backend/internal/integration/persistence/model"
)

// reportRepository implements the report.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance.
func NewReportRepository(db *gorm.DB) report.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// GetSnapshot returns all records belonging to the user. The reads run in
// a transaction so the snapshot is one consistent view.
func (r *reportRepository) GetSnapshot(ctx context.Context, userID uuid.UUID) (*report.Snapshot, error) {
	snapshot := &report.Snapshot{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var expenseModels []model.ExpenseModel
		if err := tx.Where("user_id = ?", userID).Find(&expenseModels).Error; err != nil {
			return err
		}
		snapshot.Expenses = make([]*entity.Expense, len(expenseModels))
		for i, m := range expenseModels {
			snapshot.Expenses[i] = m.ToEntity()
		}

		var debtModels []model.DebtModel
		if err := tx.Where("user_id = ?", userID).Find(&debtModels).Error; err != nil {
			return err
		}
		snapshot.Debts = make([]*entity.Debt, len(debtModels))
		for i, m := range debtModels {
			snapshot.Debts[i] = m.ToEntity()
		}

		var planModels []model.InvestmentPlanModel
		if err := tx.Where("user_id = ?", userID).Find(&planModels).Error; err != nil {
			return err
		}
		snapshot.Plans = make([]*entity.InvestmentPlan, len(planModels))
		for i, m := range planModels {
			snapshot.Plans[i] = m.ToEntity()
		}

		var stockModels []model.StockHoldingModel
		if err := tx.Where("user_id = ?", userID).Find(&stockModels).Error; err != nil {
			return err
		}
		snapshot.Stocks = make([]*entity.StockHolding, len(stockModels))
		for i, m := range stockModels {
			snapshot.Stocks[i] = m.ToEntity()
		}

		var loanModels []model.LoanModel
		if err := tx.Where("user_id = ?", userID).Find(&loanModels).Error; err != nil {
			return err
		}
		snapshot.Loans = make([]*entity.Loan, len(loanModels))
		for i, m := range loanModels {
			snapshot.Loans[i] = m.ToEntity()
		}

		var obligationModels []model.ObligationModel
		if err := tx.Where("user_id = ?", userID).Find(&obligationModels).Error; err != nil {
			return err
		}
		snapshot.Obligations = make([]*entity.Obligation, len(obligationModels))
		for i, m := range obligationModels {
			snapshot.Obligations[i] = m.ToEntity()
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}
