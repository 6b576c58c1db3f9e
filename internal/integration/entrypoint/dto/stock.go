package dto

import (
	"github.com/expenso/backend/internal/application/usecase/stock"
	"github.com/expenso/backend/internal/domain/entity"
)

// CreateStockRequest represents the request body for adding a stock holding.
type CreateStockRequest struct {
	Name         string  `json:"name" binding:"required,max=100"`
	Quantity     float64 `json:"quantity" binding:"required"`
	BuyPrice     float64 `json:"buy_price" binding:"required"`
	CurrentPrice float64 `json:"current_price"`
	BuyDate      string  `json:"buy_date"`
}

// SellStockRequest represents the request body for selling shares.
type SellStockRequest struct {
	Quantity  float64 `json:"quantity" binding:"required"`
	SellPrice float64 `json:"sell_price" binding:"required"`
	SellDate  string  `json:"sell_date"`
}

// StockResponse represents a stock holding in API responses.
type StockResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Quantity     string  `json:"quantity"`
	BuyPrice     string  `json:"buy_price"`
	CurrentPrice string  `json:"current_price"`
	BuyDate      *string `json:"buy_date"`
	Status       string  `json:"status"`
	SellQuantity *string `json:"sell_quantity,omitempty"`
	SellPrice    *string `json:"sell_price,omitempty"`
	SellDate     *string `json:"sell_date,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// StockWithPositionResponse pairs a holding with its computed economics.
type StockWithPositionResponse struct {
	StockResponse
	TotalInvested   string  `json:"total_invested"`
	CurrentValue    string  `json:"current_value"`
	GainLoss        string  `json:"gain_loss"`
	GainLossPercent float64 `json:"gain_loss_percent"`
}

// StockListResponse represents the response for listing stock holdings.
type StockListResponse struct {
	Stocks        []StockWithPositionResponse `json:"stocks"`
	TotalInvested string                      `json:"total_invested"`
	TotalValue    string                      `json:"total_value"`
	TotalGainLoss string                      `json:"total_gain_loss"`
}

// SellStockResponse represents the response for a sale.
type SellStockResponse struct {
	SoldRecord      StockResponse  `json:"sold_record"`
	RemainingRecord *StockResponse `json:"remaining_record,omitempty"`
}

// ToStockResponse converts a domain StockHolding entity to a StockResponse DTO.
func ToStockResponse(s *entity.StockHolding) StockResponse {
	resp := StockResponse{
		ID:           s.ID.String(),
		Name:         s.Name,
		Quantity:     s.Quantity.String(),
		BuyPrice:     s.BuyPrice.String(),
		CurrentPrice: s.CurrentPrice.String(),
		BuyDate:      formatDatePtr(s.BuyDate),
		Status:       string(s.Status),
		SellDate:     formatDatePtr(s.SellDate),
		CreatedAt:    formatTimestamp(s.CreatedAt),
		UpdatedAt:    formatTimestamp(s.UpdatedAt),
	}
	if s.SellQuantity != nil {
		qty := s.SellQuantity.String()
		resp.SellQuantity = &qty
	}
	if s.SellPrice != nil {
		price := s.SellPrice.String()
		resp.SellPrice = &price
	}
	return resp
}

// ToStockListResponse converts list output to a StockListResponse DTO.
func ToStockListResponse(output *stock.ListStocksOutput) StockListResponse {
	stocks := make([]StockWithPositionResponse, len(output.Stocks))
	for i, s := range output.Stocks {
		stocks[i] = StockWithPositionResponse{
			StockResponse:   ToStockResponse(s.Stock),
			TotalInvested:   s.Position.TotalInvested.String(),
			CurrentValue:    s.Position.CurrentValue.String(),
			GainLoss:        s.Position.GainLoss.String(),
			GainLossPercent: s.Position.GainLossPercent,
		}
	}
	return StockListResponse{
		Stocks:        stocks,
		TotalInvested: output.TotalInvested.String(),
		TotalValue:    output.TotalValue.String(),
		TotalGainLoss: output.TotalGainLoss.String(),
	}
}

// ToSellStockResponse converts sell output to a SellStockResponse DTO.
func ToSellStockResponse(output *stock.SellStockOutput) SellStockResponse {
	resp := SellStockResponse{
		SoldRecord: ToStockResponse(output.SoldRecord),
	}
	if output.RemainingRecord != nil {
		remaining := ToStockResponse(output.RemainingRecord)
		resp.RemainingRecord = &remaining
	}
	return resp
}
