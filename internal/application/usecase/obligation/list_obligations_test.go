package obligation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenso/backend/internal/domain/entity"
)

type stubObligationRepository struct {
	byID map[uuid.UUID]*entity.Obligation
}

func newStubObligationRepository(obligations ...*entity.Obligation) *stubObligationRepository {
	repo := &stubObligationRepository{byID: make(map[uuid.UUID]*entity.Obligation)}
	for _, o := range obligations {
		repo.byID[o.ID] = o
	}
	return repo
}

func (r *stubObligationRepository) Create(_ context.Context, o *entity.Obligation) error {
	r.byID[o.ID] = o
	return nil
}

func (r *stubObligationRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Obligation, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return o, nil
}

func (r *stubObligationRepository) FindByUser(_ context.Context, userID uuid.UUID, kind *entity.ObligationKind) ([]*entity.Obligation, error) {
	var out []*entity.Obligation
	for _, o := range r.byID {
		if o.UserID != userID {
			continue
		}
		if kind != nil && o.Kind != *kind {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *stubObligationRepository) FindDueBetween(_ context.Context, from, to time.Time) ([]*entity.Obligation, error) {
	var out []*entity.Obligation
	for _, o := range r.byID {
		if o.Status != entity.ObligationStatusPending || o.DueDate == nil {
			continue
		}
		if !o.DueDate.Before(from) && o.DueDate.Before(to) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *stubObligationRepository) Update(_ context.Context, o *entity.Obligation) error {
	r.byID[o.ID] = o
	return nil
}

func (r *stubObligationRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

func TestCreateObligationUseCase(t *testing.T) {
	userID := uuid.New()

	t.Run("violation without a due date gets violation date plus thirty days", func(t *testing.T) {
		violationDate := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
		uc := NewCreateObligationUseCase(newStubObligationRepository())

		output, err := uc.Execute(context.Background(), CreateObligationInput{
			UserID:        userID,
			Kind:          entity.ObligationViolation,
			Type:          "Speeding",
			Amount:        decimal.NewFromInt(500),
			ViolationDate: &violationDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := time.Date(2025, time.May, 31, 0, 0, 0, 0, time.UTC)
		if output.Obligation.DueDate == nil || !output.Obligation.DueDate.Equal(want) {
			t.Errorf("expected due date %v, got %v", want, output.Obligation.DueDate)
		}
	})

	t.Run("explicit due date wins over the default", func(t *testing.T) {
		violationDate := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
		explicit := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)
		uc := NewCreateObligationUseCase(newStubObligationRepository())

		output, err := uc.Execute(context.Background(), CreateObligationInput{
			UserID:        userID,
			Kind:          entity.ObligationViolation,
			Type:          "Parking",
			Amount:        decimal.NewFromInt(200),
			DueDate:       &explicit,
			ViolationDate: &violationDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Obligation.DueDate.Equal(explicit) {
			t.Errorf("expected %v, got %v", explicit, output.Obligation.DueDate)
		}
	})

	t.Run("rejects an unknown kind", func(t *testing.T) {
		uc := NewCreateObligationUseCase(newStubObligationRepository())
		_, err := uc.Execute(context.Background(), CreateObligationInput{
			UserID: userID,
			Kind:   entity.ObligationKind("fine"),
			Type:   "Other",
			Amount: decimal.NewFromInt(1),
		})
		if err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestListObligationsUseCase(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	t.Run("deadline arithmetic marks overdue entries", func(t *testing.T) {
		past := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
		future := time.Date(2025, time.June, 25, 0, 0, 0, 0, time.UTC)
		overdue := entity.NewObligation(userID, entity.ObligationTax, "Income Tax", decimal.NewFromInt(3000), &past, nil, "")
		upcoming := entity.NewObligation(userID, entity.ObligationTax, "Property Tax", decimal.NewFromInt(1000), &future, nil, "")
		repo := newStubObligationRepository(overdue, upcoming)
		uc := NewListObligationsUseCase(repo)

		output, err := uc.Execute(context.Background(), ListObligationsInput{UserID: userID, Now: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Obligations) != 2 {
			t.Fatalf("expected 2 obligations, got %d", len(output.Obligations))
		}
		if output.OverdueCount != 1 {
			t.Errorf("expected 1 overdue, got %d", output.OverdueCount)
		}
		if !output.TotalPending.Equal(decimal.NewFromInt(4000)) {
			t.Errorf("expected pending total 4000, got %s", output.TotalPending)
		}

		for _, entry := range output.Obligations {
			if entry.DaysRemaining == nil {
				t.Fatal("expected days remaining on dated obligations")
			}
			switch entry.Obligation.Type {
			case "Income Tax":
				if *entry.DaysRemaining != -14 || !entry.Overdue {
					t.Errorf("expected -14 days overdue, got %d (overdue=%v)", *entry.DaysRemaining, entry.Overdue)
				}
			case "Property Tax":
				if *entry.DaysRemaining != 10 || entry.Overdue {
					t.Errorf("expected 10 days remaining, got %d (overdue=%v)", *entry.DaysRemaining, entry.Overdue)
				}
			}
		}
	})

	t.Run("paid obligations do not count as pending or overdue", func(t *testing.T) {
		past := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
		paid := entity.NewObligation(userID, entity.ObligationViolation, "Speeding", decimal.NewFromInt(500), &past, nil, "")
		paid.Status = entity.ObligationStatusPaid
		repo := newStubObligationRepository(paid)
		uc := NewListObligationsUseCase(repo)

		output, err := uc.Execute(context.Background(), ListObligationsInput{UserID: userID, Now: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.TotalPending.IsZero() || output.OverdueCount != 0 {
			t.Errorf("expected nothing pending, got total %s overdue %d", output.TotalPending, output.OverdueCount)
		}
	})

	t.Run("kind filter narrows the listing", func(t *testing.T) {
		due := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
		tax := entity.NewObligation(userID, entity.ObligationTax, "Income Tax", decimal.NewFromInt(3000), &due, nil, "")
		violation := entity.NewObligation(userID, entity.ObligationViolation, "Speeding", decimal.NewFromInt(500), &due, nil, "")
		repo := newStubObligationRepository(tax, violation)
		uc := NewListObligationsUseCase(repo)

		kind := entity.ObligationViolation
		output, err := uc.Execute(context.Background(), ListObligationsInput{UserID: userID, Kind: &kind, Now: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Obligations) != 1 || output.Obligations[0].Obligation.Kind != entity.ObligationViolation {
			t.Errorf("expected only the violation, got %d entries", len(output.Obligations))
		}
	})
}
