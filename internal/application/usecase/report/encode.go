// Package report contains the financial aggregation and reporting engine.
package report

import (
	"encoding/json"
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	domainerror "github.com/expenso/backend/internal/domain/error"
)

// ExportFormat selects the report serialization.
type ExportFormat string

const (
	FormatJSON ExportFormat = "json"
	FormatCSV  ExportFormat = "csv"
	FormatHTML ExportFormat = "html"
)

// EncodeReport serializes a report to the requested format.
func EncodeReport(r *Report, format ExportFormat) (string, error) {
	switch format {
	case FormatJSON:
		return encodeJSON(r)
	case FormatCSV:
		return encodeCSV(r), nil
	case FormatHTML:
		return encodeHTML(r), nil
	default:
		return "", domainerror.NewReportError(
			domainerror.ErrCodeUnsupportedFormat,
			fmt.Sprintf("unsupported export format: %s", format),
			domainerror.ErrUnsupportedFormat,
		)
	}
}

func encodeJSON(r *Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}
	return string(data), nil
}

// encodeCSV writes the report as sectioned CSV: a title line, the summary
// as key,value rows and the category breakdown as a three-column table.
// Summary keys are sorted so output is deterministic.
func encodeCSV(r *Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Financial Report - %s\n", r.Type)
	fmt.Fprintf(&b, "Period: %s\n", r.PeriodLabel)
	b.WriteString("\n")

	b.WriteString("Summary\n")
	for _, key := range sortedSummaryKeys(r.Summary) {
		fmt.Fprintf(&b, "%s,%s\n", key, formatSummaryValue(r.Summary[key]))
	}

	if len(r.CategoryBreakdown) > 0 {
		b.WriteString("\nCategory Breakdown\n")
		b.WriteString("Category,Amount,Percentage\n")
		for _, share := range r.CategoryBreakdown {
			fmt.Fprintf(&b, "%s,%s,%.1f%%\n", share.Category, share.Amount.StringFixed(2), share.PercentageOfTotal)
		}
	}
	return b.String()
}

// encodeHTML writes a minimal standalone HTML document for the report.
func encodeHTML(r *Report) string {
	var b strings.Builder
	title := html.EscapeString(fmt.Sprintf("Financial Report - %s", r.Type))

	b.WriteString("<!DOCTYPE html>\n<html>\n<head><title>")
	b.WriteString(title)
	b.WriteString("</title></head>\n<body>\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", title)
	fmt.Fprintf(&b, "<p><strong>Period:</strong> %s</p>\n", html.EscapeString(r.PeriodLabel))

	b.WriteString("<div>\n<h2>Summary</h2>\n")
	for _, key := range sortedSummaryKeys(r.Summary) {
		fmt.Fprintf(&b, "<p><strong>%s:</strong> %s</p>\n",
			html.EscapeString(key), html.EscapeString(formatSummaryValue(r.Summary[key])))
	}
	b.WriteString("</div>\n")

	if len(r.CategoryBreakdown) > 0 {
		b.WriteString("<h2>Category Breakdown</h2>\n<table>\n")
		b.WriteString("<tr><th>Category</th><th>Amount</th><th>Percentage</th></tr>\n")
		for _, share := range r.CategoryBreakdown {
			fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%.1f%%</td></tr>\n",
				html.EscapeString(share.Category), share.Amount.StringFixed(2), share.PercentageOfTotal)
		}
		b.WriteString("</table>\n")
	}

	if len(r.Insights) > 0 {
		b.WriteString("<h2>Insights</h2>\n<ul>\n")
		for _, insight := range r.Insights {
			fmt.Fprintf(&b, "<li>%s</li>\n", html.EscapeString(insight))
		}
		b.WriteString("</ul>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// sortedSummaryKeys returns the summary keys in stable order.
func sortedSummaryKeys(summary map[string]interface{}) []string {
	keys := make([]string, 0, len(summary))
	for key := range summary {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// formatSummaryValue renders a summary value for text output.
func formatSummaryValue(v interface{}) string {
	switch value := v.(type) {
	case decimal.Decimal:
		return value.StringFixed(2)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	case string:
		return value
	default:
		return fmt.Sprintf("%v", value)
	}
}
