package loan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/domain/entity"
	domainerror "github.com/expenso/backend/internal/domain/error"
)

type stubLoanRepository struct {
	byID    map[uuid.UUID]*entity.Loan
	updated []*entity.Loan
}

func newStubLoanRepository(loans ...*entity.Loan) *stubLoanRepository {
	repo := &stubLoanRepository{byID: make(map[uuid.UUID]*entity.Loan)}
	for _, l := range loans {
		repo.byID[l.ID] = l
	}
	return repo
}

func (r *stubLoanRepository) Create(_ context.Context, loan *entity.Loan) error {
	r.byID[loan.ID] = loan
	return nil
}

func (r *stubLoanRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Loan, error) {
	loan, ok := r.byID[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return loan, nil
}

func (r *stubLoanRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Loan, error) {
	var out []*entity.Loan
	for _, l := range r.byID {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *stubLoanRepository) Update(_ context.Context, loan *entity.Loan) error {
	r.byID[loan.ID] = loan
	r.updated = append(r.updated, loan)
	return nil
}

func (r *stubLoanRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

func loanOf(userID uuid.UUID) *entity.Loan {
	due := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	return entity.NewLoan(userID, "HDFC Bank", decimal.NewFromInt(100000), 12, &due, "home renovation")
}

func TestPayInterestUseCase(t *testing.T) {
	userID := uuid.New()
	paidAt := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	t.Run("zero amount pays the computed monthly interest", func(t *testing.T) {
		loan := loanOf(userID)
		repo := newStubLoanRepository(loan)
		uc := NewPayInterestUseCase(repo)

		output, err := uc.Execute(context.Background(), PayInterestInput{
			LoanID: loan.ID,
			UserID: userID,
			PaidAt: paidAt,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// 100000 * 12% / 12 months.
		if !output.AmountPaid.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected 1000, got %s", output.AmountPaid)
		}
		if len(output.Loan.InterestPaymentHistory) != 1 {
			t.Fatalf("expected one history entry, got %d", len(output.Loan.InterestPaymentHistory))
		}
		if output.Loan.LastInterestPaidDate == nil || !output.Loan.LastInterestPaidDate.Equal(paidAt) {
			t.Error("expected the last paid date to advance")
		}
	})

	t.Run("payment never reduces the principal", func(t *testing.T) {
		loan := loanOf(userID)
		repo := newStubLoanRepository(loan)
		uc := NewPayInterestUseCase(repo)

		output, err := uc.Execute(context.Background(), PayInterestInput{
			LoanID: loan.ID,
			UserID: userID,
			Amount: decimal.NewFromInt(5000),
			PaidAt: paidAt,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Loan.Principal.Equal(decimal.NewFromInt(100000)) {
			t.Errorf("expected untouched principal 100000, got %s", output.Loan.Principal)
		}
	})

	t.Run("payments accumulate in the history", func(t *testing.T) {
		loan := loanOf(userID)
		repo := newStubLoanRepository(loan)
		uc := NewPayInterestUseCase(repo)

		for i := 0; i < 3; i++ {
			if _, err := uc.Execute(context.Background(), PayInterestInput{
				LoanID: loan.ID,
				UserID: userID,
				PaidAt: paidAt.AddDate(0, i, 0),
			}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if len(loan.InterestPaymentHistory) != 3 {
			t.Errorf("expected 3 history entries, got %d", len(loan.InterestPaymentHistory))
		}
	})

	t.Run("rejects a settled loan", func(t *testing.T) {
		loan := loanOf(userID)
		loan.Status = entity.LoanStatusPaid
		repo := newStubLoanRepository(loan)
		uc := NewPayInterestUseCase(repo)

		_, err := uc.Execute(context.Background(), PayInterestInput{
			LoanID: loan.ID,
			UserID: userID,
		})
		assertLoanErrorCode(t, err, domainerror.ErrCodeLoanAlreadyPaid)
	})

	t.Run("rejects another user's loan", func(t *testing.T) {
		loan := loanOf(userID)
		repo := newStubLoanRepository(loan)
		uc := NewPayInterestUseCase(repo)

		_, err := uc.Execute(context.Background(), PayInterestInput{
			LoanID: loan.ID,
			UserID: uuid.New(),
		})
		assertLoanErrorCode(t, err, domainerror.ErrCodeRecordNotAuthorized)
	})
}

func TestListLoansUseCase(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	t.Run("accrual state follows the payment history", func(t *testing.T) {
		loan := loanOf(userID)
		loan.RecordInterestPayment(time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC), decimal.NewFromInt(1000))
		repo := newStubLoanRepository(loan)
		uc := NewListLoansUseCase(repo)

		output, err := uc.Execute(context.Background(), ListLoansInput{UserID: userID, Now: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Loans) != 1 {
			t.Fatalf("expected 1 loan, got %d", len(output.Loans))
		}

		accrual := output.Loans[0]
		if !accrual.MonthlyInterest.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected monthly interest 1000, got %s", accrual.MonthlyInterest)
		}
		// Next due is one month after the May 20 payment, before July 1.
		if !accrual.InterestDue {
			t.Error("expected interest to be due")
		}
		if !accrual.TotalPaid.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected total paid 1000, got %s", accrual.TotalPaid)
		}
		if !output.TotalPrincipal.Equal(decimal.NewFromInt(100000)) {
			t.Errorf("expected principal total 100000, got %s", output.TotalPrincipal)
		}
	})

	t.Run("paid loans are excluded from totals and never accrue", func(t *testing.T) {
		loan := loanOf(userID)
		loan.Status = entity.LoanStatusPaid
		repo := newStubLoanRepository(loan)
		uc := NewListLoansUseCase(repo)

		output, err := uc.Execute(context.Background(), ListLoansInput{UserID: userID, Now: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.TotalPrincipal.IsZero() {
			t.Errorf("expected zero principal total, got %s", output.TotalPrincipal)
		}
		if output.Loans[0].InterestDue {
			t.Error("expected no accrual on a paid loan")
		}
	})
}

func assertLoanErrorCode(t *testing.T, err error, code domainerror.RecordErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	var recordErr *domainerror.RecordError
	if !errors.As(err, &recordErr) {
		t.Fatalf("expected a RecordError, got %T", err)
	}
	if recordErr.Code != code {
		t.Errorf("expected code %s, got %s", code, recordErr.Code)
	}
}
