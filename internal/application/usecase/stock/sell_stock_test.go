package stock

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

type stubStockRepository struct {
	byID    map[uuid.UUID]*entity.StockHolding
	created []*entity.StockHolding
	updated []*entity.StockHolding
}

func newStubStockRepository(stocks ...*entity.StockHolding) *stubStockRepository {
	repo := &stubStockRepository{byID: make(map[uuid.UUID]*entity.StockHolding)}
	for _, s := range stocks {
		repo.byID[s.ID] = s
	}
	return repo
}

func (r *stubStockRepository) Create(_ context.Context, stock *entity.StockHolding) error {
	r.byID[stock.ID] = stock
	r.created = append(r.created, stock)
	return nil
}

func (r *stubStockRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.StockHolding, error) {
	stock, ok := r.byID[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return stock, nil
}

func (r *stubStockRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.StockHolding, error) {
	var out []*entity.StockHolding
	for _, s := range r.byID {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubStockRepository) Update(_ context.Context, stock *entity.StockHolding) error {
	r.byID[stock.ID] = stock
	r.updated = append(r.updated, stock)
	return nil
}

func (r *stubStockRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

func holdingOf(userID uuid.UUID, quantity int64) *entity.StockHolding {
	buyDate := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	return entity.NewStockHolding(
		userID,
		"RELIANCE",
		decimal.NewFromInt(quantity),
		decimal.NewFromInt(2500),
		decimal.NewFromInt(2800),
		&buyDate,
	)
}

func TestSellStockUseCase(t *testing.T) {
	userID := uuid.New()
	sellPrice := decimal.NewFromInt(3000)

	t.Run("full sale closes the position in place", func(t *testing.T) {
		holding := holdingOf(userID, 10)
		repo := newStubStockRepository(holding)
		uc := NewSellStockUseCase(repo)

		output, err := uc.Execute(context.Background(), SellStockInput{
			StockID:   holding.ID,
			UserID:    userID,
			Quantity:  decimal.NewFromInt(10),
			SellPrice: sellPrice,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.RemainingRecord != nil {
			t.Error("expected no remaining record for a full sale")
		}
		if output.SoldRecord.Status != entity.StockStatusSold {
			t.Errorf("expected sold status, got %s", output.SoldRecord.Status)
		}
		if output.SoldRecord.SellPrice == nil || !output.SoldRecord.SellPrice.Equal(sellPrice) {
			t.Error("expected the sell price to be recorded")
		}
		if output.SoldRecord.SellDate == nil {
			t.Error("expected a defaulted sell date")
		}
		if len(repo.created) != 0 {
			t.Errorf("expected no new records, got %d", len(repo.created))
		}
	})

	t.Run("partial sale conserves total quantity", func(t *testing.T) {
		holding := holdingOf(userID, 10)
		repo := newStubStockRepository(holding)
		uc := NewSellStockUseCase(repo)

		output, err := uc.Execute(context.Background(), SellStockInput{
			StockID:   holding.ID,
			UserID:    userID,
			Quantity:  decimal.NewFromInt(4),
			SellPrice: sellPrice,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.RemainingRecord == nil {
			t.Fatal("expected a remaining record")
		}

		total := output.SoldRecord.Quantity.Add(output.RemainingRecord.Quantity)
		if !total.Equal(decimal.NewFromInt(10)) {
			t.Errorf("expected conserved quantity 10, got %s", total)
		}
		if !output.RemainingRecord.Quantity.Equal(decimal.NewFromInt(6)) {
			t.Errorf("expected 6 remaining, got %s", output.RemainingRecord.Quantity)
		}
		if output.RemainingRecord.Status != entity.StockStatusHolding {
			t.Errorf("expected the remainder to stay open, got %s", output.RemainingRecord.Status)
		}

		// The sold slice keeps the original buy terms.
		if !output.SoldRecord.BuyPrice.Equal(holding.BuyPrice) {
			t.Errorf("expected buy price %s, got %s", holding.BuyPrice, output.SoldRecord.BuyPrice)
		}
		if output.SoldRecord.BuyDate == nil || !output.SoldRecord.BuyDate.Equal(*holding.BuyDate) {
			t.Error("expected the original buy date on the sold record")
		}
		if len(repo.created) != 1 {
			t.Errorf("expected one new record, got %d", len(repo.created))
		}
	})

	t.Run("rejects overselling", func(t *testing.T) {
		holding := holdingOf(userID, 10)
		repo := newStubStockRepository(holding)
		uc := NewSellStockUseCase(repo)

		_, err := uc.Execute(context.Background(), SellStockInput{
			StockID:   holding.ID,
			UserID:    userID,
			Quantity:  decimal.NewFromInt(11),
			SellPrice: sellPrice,
		})
		assertRecordErrorCode(t, err, domainerror.ErrCodeSellQuantityTooLarge)
	})

	t.Run("rejects selling a closed position", func(t *testing.T) {
		holding := holdingOf(userID, 10)
		holding.Status = entity.StockStatusSold
		repo := newStubStockRepository(holding)
		uc := NewSellStockUseCase(repo)

		_, err := uc.Execute(context.Background(), SellStockInput{
			StockID:   holding.ID,
			UserID:    userID,
			Quantity:  decimal.NewFromInt(1),
			SellPrice: sellPrice,
		})
		assertRecordErrorCode(t, err, domainerror.ErrCodeStockAlreadySold)
	})

	t.Run("rejects another user's holding", func(t *testing.T) {
		holding := holdingOf(userID, 10)
		repo := newStubStockRepository(holding)
		uc := NewSellStockUseCase(repo)

		_, err := uc.Execute(context.Background(), SellStockInput{
			StockID:   holding.ID,
			UserID:    uuid.New(),
			Quantity:  decimal.NewFromInt(1),
			SellPrice: sellPrice,
		})
		assertRecordErrorCode(t, err, domainerror.ErrCodeRecordNotAuthorized)
	})

	t.Run("rejects a non-positive quantity", func(t *testing.T) {
		uc := NewSellStockUseCase(newStubStockRepository())
		_, err := uc.Execute(context.Background(), SellStockInput{
			StockID:   uuid.New(),
			UserID:    userID,
			Quantity:  decimal.Zero,
			SellPrice: sellPrice,
		})
		assertRecordErrorCode(t, err, domainerror.ErrCodeInvalidQuantity)
	})
}

func TestListStocksUseCase(t *testing.T) {
	userID := uuid.New()

	t.Run("totals cover open positions only", func(t *testing.T) {
		open := holdingOf(userID, 10)
		closed := holdingOf(userID, 5)
		closed.Status = entity.StockStatusSold
		repo := newStubStockRepository(open, closed)
		uc := NewListStocksUseCase(repo)

		output, err := uc.Execute(context.Background(), ListStocksInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Stocks) != 2 {
			t.Fatalf("expected 2 holdings, got %d", len(output.Stocks))
		}
		if !output.TotalInvested.Equal(decimal.NewFromInt(25000)) {
			t.Errorf("expected invested 25000, got %s", output.TotalInvested)
		}
		if !output.TotalValue.Equal(decimal.NewFromInt(28000)) {
			t.Errorf("expected value 28000, got %s", output.TotalValue)
		}
		if !output.TotalGainLoss.Equal(decimal.NewFromInt(3000)) {
			t.Errorf("expected gain 3000, got %s", output.TotalGainLoss)
		}
	})
}

func assertRecordErrorCode(t *testing.T, err error, code domainerror.RecordErrorCode) {
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
