package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/expenso/backend/internal/application/usecase/report"
	domainerror "github.com/expenso/backend/internal/domain/error"
	"github.com/expenso/backend/internal/integration/entrypoint/dto"
	"github.com/expenso/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles report and analytics endpoints.
type ReportController struct {
	archiveUseCase      *report.ArchiveReportUseCase
	historyUseCase      *report.ListReportHistoryUseCase
	trendsUseCase       *report.GetTrendsUseCase
	distributionUseCase *report.GetDistributionUseCase
	weeklyUseCase       *report.GetWeeklyPatternUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	archiveUseCase *report.ArchiveReportUseCase,
	historyUseCase *report.ListReportHistoryUseCase,
	trendsUseCase *report.GetTrendsUseCase,
	distributionUseCase *report.GetDistributionUseCase,
	weeklyUseCase *report.GetWeeklyPatternUseCase,
) *ReportController {
	return &ReportController{
		archiveUseCase:      archiveUseCase,
		historyUseCase:      historyUseCase,
		trendsUseCase:       trendsUseCase,
		distributionUseCase: distributionUseCase,
		weeklyUseCase:       weeklyUseCase,
	}
}

// Build handles GET /reports requests. The report is recorded in the user's
// history; csv and html formats are returned as plain documents.
func (c *ReportController) Build(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	input := report.ArchiveReportInput{
		BuildReportInput: report.BuildReportInput{
			UserID: userID,
			Type:   report.ReportType(ctx.DefaultQuery("type", string(report.ReportMonthly))),
			Format: report.ExportFormat(ctx.Query("format")),
		},
	}

	if startDateStr := ctx.Query("start_date"); startDateStr != "" {
		startDate, err := dto.ParseDate(startDateStr)
		if err != nil {
			badDate(ctx, "start_date")
			return
		}
		input.StartDate = startDate
	}
	if endDateStr := ctx.Query("end_date"); endDateStr != "" {
		endDate, err := dto.ParseDate(endDateStr)
		if err != nil {
			badDate(ctx, "end_date")
			return
		}
		input.EndDate = endDate
	}

	output, err := c.archiveUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	switch input.Format {
	case report.FormatCSV:
		ctx.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(output.Encoded))
	case report.FormatHTML:
		ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(output.Encoded))
	default:
		ctx.JSON(http.StatusOK, output.Report)
	}
}

// History handles GET /reports/history requests.
func (c *ReportController) History(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	input := report.ListReportHistoryInput{UserID: userID}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			input.Limit = limit
		}
	}

	output, err := c.historyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportHistoryResponse(output.Entries))
}

// Trends handles GET /analytics/trends requests.
func (c *ReportController) Trends(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	input := report.GetTrendsInput{
		UserID:      userID,
		Granularity: report.Granularity(ctx.DefaultQuery("granularity", string(report.GranularityMonthly))),
		Reference:   time.Now().UTC(),
	}
	if periodsStr := ctx.Query("periods"); periodsStr != "" {
		if periods, err := strconv.Atoi(periodsStr); err == nil {
			input.PeriodCount = periods
		}
	}
	if topNStr := ctx.Query("top"); topNStr != "" {
		if topN, err := strconv.Atoi(topNStr); err == nil {
			input.TopN = topN
		}
	}

	output, err := c.trendsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// Distribution handles GET /analytics/distribution requests.
func (c *ReportController) Distribution(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	input := report.GetDistributionInput{UserID: userID}
	if startDateStr := ctx.Query("start_date"); startDateStr != "" {
		startDate, err := dto.ParseDate(startDateStr)
		if err != nil {
			badDate(ctx, "start_date")
			return
		}
		input.StartDate = startDate
	}
	if endDateStr := ctx.Query("end_date"); endDateStr != "" {
		endDate, err := dto.ParseDate(endDateStr)
		if err != nil {
			badDate(ctx, "end_date")
			return
		}
		input.EndDate = endDate
	}

	output, err := c.distributionUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// WeeklyPattern handles GET /analytics/weekly-pattern requests.
func (c *ReportController) WeeklyPattern(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	input := report.GetWeeklyPatternInput{UserID: userID}
	if startDateStr := ctx.Query("start_date"); startDateStr != "" {
		startDate, err := dto.ParseDate(startDateStr)
		if err != nil {
			badDate(ctx, "start_date")
			return
		}
		input.StartDate = startDate
	}
	if endDateStr := ctx.Query("end_date"); endDateStr != "" {
		endDate, err := dto.ParseDate(endDateStr)
		if err != nil {
			badDate(ctx, "end_date")
			return
		}
		input.EndDate = endDate
	}

	output, err := c.weeklyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// handleReportError maps report errors onto HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		status := http.StatusBadRequest
		if reportErr.Code == domainerror.ErrCodeReportInternalError {
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
