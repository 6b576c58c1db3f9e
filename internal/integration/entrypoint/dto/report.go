package dto

import (
	"github.com/expenso/backend/internal/domain/entity"
)

// ReportHistoryEntryResponse represents one archived report in API responses.
type ReportHistoryEntryResponse struct {
	ID          string   `json:"id"`
	ReportType  string   `json:"report_type"`
	Format      string   `json:"format,omitempty"`
	PeriodStart string   `json:"period_start"`
	PeriodEnd   string   `json:"period_end"`
	Insights    []string `json:"insights"`
	CreatedAt   string   `json:"created_at"`
}

// ReportHistoryResponse represents the response for listing report history.
type ReportHistoryResponse struct {
	Entries []ReportHistoryEntryResponse `json:"entries"`
}

// ToReportHistoryResponse converts archive entries to a ReportHistoryResponse DTO.
func ToReportHistoryResponse(entries []*entity.ReportArchive) ReportHistoryResponse {
	out := make([]ReportHistoryEntryResponse, len(entries))
	for i, e := range entries {
		insights := e.Insights
		if insights == nil {
			insights = []string{}
		}
		out[i] = ReportHistoryEntryResponse{
			ID:          e.ID.String(),
			ReportType:  e.ReportType,
			Format:      e.Format,
			PeriodStart: e.PeriodStart.Format(dateLayout),
			PeriodEnd:   e.PeriodEnd.Format(dateLayout),
			Insights:    insights,
			CreatedAt:   formatTimestamp(e.CreatedAt),
		}
	}
	return ReportHistoryResponse{Entries: out}
}
