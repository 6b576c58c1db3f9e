package reminder

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/application/adapter"
	"github.com/expenso/backend/internal/domain/entity"
)

type stubObligationRepository struct {
	obligations []*entity.Obligation
	err         error
	from, to    time.Time
}

func (r *stubObligationRepository) Create(_ context.Context, _ *entity.Obligation) error {
	return nil
}

func (r *stubObligationRepository) FindByID(_ context.Context, _ uuid.UUID) (*entity.Obligation, error) {
	return nil, errors.New("record not found")
}

func (r *stubObligationRepository) FindByUser(_ context.Context, _ uuid.UUID, _ *entity.ObligationKind) ([]*entity.Obligation, error) {
	return nil, nil
}

func (r *stubObligationRepository) FindDueBetween(_ context.Context, from, to time.Time) ([]*entity.Obligation, error) {
	r.from, r.to = from, to
	if r.err != nil {
		return nil, r.err
	}
	return r.obligations, nil
}

func (r *stubObligationRepository) Update(_ context.Context, _ *entity.Obligation) error {
	return nil
}

func (r *stubObligationRepository) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

type stubUserRepository struct {
	users map[uuid.UUID]*entity.User
	calls int
}

func (r *stubUserRepository) Create(_ context.Context, _ *entity.User) error { return nil }

func (r *stubUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.calls++
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return u, nil
}

func (r *stubUserRepository) FindByEmail(_ context.Context, _ string) (*entity.User, error) {
	return nil, errors.New("record not found")
}

func (r *stubUserRepository) Update(_ context.Context, _ *entity.User) error { return nil }

func (r *stubUserRepository) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (r *stubUserRepository) ExistsByEmail(_ context.Context, _ string) (bool, error) {
	return false, nil
}

type stubEmailService struct {
	reminders []adapter.QueueDueDateReminderInput
	err       error
}

func (s *stubEmailService) QueuePasswordResetEmail(_ context.Context, _ adapter.QueuePasswordResetInput) error {
	return nil
}

func (s *stubEmailService) QueueDueDateReminderEmail(_ context.Context, input adapter.QueueDueDateReminderInput) error {
	if s.err != nil {
		return s.err
	}
	s.reminders = append(s.reminders, input)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pendingObligation(userID uuid.UUID, obligationType string, amount float64, due time.Time) *entity.Obligation {
	return entity.NewObligation(
		userID,
		entity.ObligationTax,
		obligationType,
		decimal.NewFromFloat(amount),
		&due,
		nil,
		"",
	)
}

func TestScanDueObligationsUseCase(t *testing.T) {
	now := time.Date(2025, time.June, 10, 8, 0, 0, 0, time.UTC)

	user := entity.NewUser("asha@example.com", "Asha", "hash")

	t.Run("queues reminders for obligations inside the lead window", func(t *testing.T) {
		obligationRepo := &stubObligationRepository{obligations: []*entity.Obligation{
			pendingObligation(user.ID, "Income Tax", 12500, time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC)),
			pendingObligation(user.ID, "Property Tax", 4000, time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC)),
		}}
		userRepo := &stubUserRepository{users: map[uuid.UUID]*entity.User{user.ID: user}}
		emails := &stubEmailService{}

		uc := NewScanDueObligationsUseCase(obligationRepo, userRepo, emails, testLogger())
		output, err := uc.Execute(context.Background(), ScanDueObligationsInput{Now: now})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if output.Scanned != 2 || output.Queued != 2 || output.Skipped != 0 {
			t.Fatalf("output = %+v, want scanned 2 queued 2 skipped 0", output)
		}
		if len(emails.reminders) != 2 {
			t.Fatalf("queued %d reminders, want 2", len(emails.reminders))
		}

		first := emails.reminders[0]
		if first.UserEmail != "asha@example.com" {
			t.Errorf("UserEmail = %q", first.UserEmail)
		}
		if first.ObligationType != "Income Tax" {
			t.Errorf("ObligationType = %q", first.ObligationType)
		}
		if first.Amount != "12500.00" {
			t.Errorf("Amount = %q", first.Amount)
		}
		if first.DueDate != "2025-06-14" {
			t.Errorf("DueDate = %q", first.DueDate)
		}
		if first.DaysRemaining != 4 {
			t.Errorf("DaysRemaining = %d, want 4", first.DaysRemaining)
		}
	})

	t.Run("resolves each user once per scan", func(t *testing.T) {
		due := time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC)
		obligationRepo := &stubObligationRepository{obligations: []*entity.Obligation{
			pendingObligation(user.ID, "Income Tax", 100, due),
			pendingObligation(user.ID, "Water Tax", 200, due),
			pendingObligation(user.ID, "Property Tax", 300, due),
		}}
		userRepo := &stubUserRepository{users: map[uuid.UUID]*entity.User{user.ID: user}}

		uc := NewScanDueObligationsUseCase(obligationRepo, userRepo, &stubEmailService{}, testLogger())
		if _, err := uc.Execute(context.Background(), ScanDueObligationsInput{Now: now}); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if userRepo.calls != 1 {
			t.Errorf("user lookups = %d, want 1", userRepo.calls)
		}
	})

	t.Run("skips users with reminders disabled", func(t *testing.T) {
		muted := entity.NewUser("ravi@example.com", "Ravi", "hash")
		muted.DueDateReminders = false

		obligationRepo := &stubObligationRepository{obligations: []*entity.Obligation{
			pendingObligation(muted.ID, "Income Tax", 500, time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC)),
		}}
		userRepo := &stubUserRepository{users: map[uuid.UUID]*entity.User{muted.ID: muted}}
		emails := &stubEmailService{}

		uc := NewScanDueObligationsUseCase(obligationRepo, userRepo, emails, testLogger())
		output, err := uc.Execute(context.Background(), ScanDueObligationsInput{Now: now})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if output.Queued != 0 || output.Skipped != 1 {
			t.Errorf("output = %+v, want queued 0 skipped 1", output)
		}
		if len(emails.reminders) != 0 {
			t.Errorf("queued %d reminders, want 0", len(emails.reminders))
		}
	})

	t.Run("skips obligations of unknown users without aborting the scan", func(t *testing.T) {
		due := time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC)
		obligationRepo := &stubObligationRepository{obligations: []*entity.Obligation{
			pendingObligation(uuid.New(), "Income Tax", 500, due),
			pendingObligation(user.ID, "Property Tax", 900, due),
		}}
		userRepo := &stubUserRepository{users: map[uuid.UUID]*entity.User{user.ID: user}}
		emails := &stubEmailService{}

		uc := NewScanDueObligationsUseCase(obligationRepo, userRepo, emails, testLogger())
		output, err := uc.Execute(context.Background(), ScanDueObligationsInput{Now: now})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if output.Queued != 1 || output.Skipped != 1 {
			t.Errorf("output = %+v, want queued 1 skipped 1", output)
		}
	})

	t.Run("counts queue failures as skipped", func(t *testing.T) {
		obligationRepo := &stubObligationRepository{obligations: []*entity.Obligation{
			pendingObligation(user.ID, "Income Tax", 500, time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC)),
		}}
		userRepo := &stubUserRepository{users: map[uuid.UUID]*entity.User{user.ID: user}}
		emails := &stubEmailService{err: errors.New("queue unavailable")}

		uc := NewScanDueObligationsUseCase(obligationRepo, userRepo, emails, testLogger())
		output, err := uc.Execute(context.Background(), ScanDueObligationsInput{Now: now})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if output.Queued != 0 || output.Skipped != 1 {
			t.Errorf("output = %+v, want queued 0 skipped 1", output)
		}
	})

	t.Run("lead days default covers the next seven days", func(t *testing.T) {
		obligationRepo := &stubObligationRepository{}
		userRepo := &stubUserRepository{users: map[uuid.UUID]*entity.User{}}

		uc := NewScanDueObligationsUseCase(obligationRepo, userRepo, &stubEmailService{}, testLogger())
		if _, err := uc.Execute(context.Background(), ScanDueObligationsInput{Now: now}); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		wantFrom := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
		wantTo := time.Date(2025, time.June, 18, 0, 0, 0, 0, time.UTC)
		if !obligationRepo.from.Equal(wantFrom) || !obligationRepo.to.Equal(wantTo) {
			t.Errorf("window = [%v, %v), want [%v, %v)", obligationRepo.from, obligationRepo.to, wantFrom, wantTo)
		}
	})

	t.Run("repository failure surfaces an error", func(t *testing.T) {
		obligationRepo := &stubObligationRepository{err: errors.New("connection refused")}
		userRepo := &stubUserRepository{}

		uc := NewScanDueObligationsUseCase(obligationRepo, userRepo, &stubEmailService{}, testLogger())
		if _, err := uc.Execute(context.Background(), ScanDueObligationsInput{Now: now}); err == nil {
			t.Fatal("Execute() error = nil, want error")
		}
	})
}
