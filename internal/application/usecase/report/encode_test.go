package report

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	domainerror "github.com/expenso/backend/internal/domain/error"
)

func sampleReport() *Report {
	return &Report{
		Type:        ReportMonthly,
		PeriodLabel: "01 Mar 2025 - 31 Mar 2025",
		Summary: map[string]interface{}{
			"totalExpenses":    decimal.NewFromFloat(1500.50),
			"transactionCount": 3,
			"avgDailySpending": decimal.NewFromFloat(48.40),
		},
		CategoryBreakdown: []CategoryShare{
			{Category: "Rent", Amount: decimal.NewFromInt(1000), PercentageOfTotal: 66.6, TransactionCount: 1},
			{Category: "Food & Dining", Amount: decimal.NewFromFloat(500.50), PercentageOfTotal: 33.4, TransactionCount: 2},
		},
		Insights: []string{"Your highest spending category is Rent (66.6% of total)"},
	}
}

func TestEncodeReportJSON(t *testing.T) {
	out, err := EncodeReport(sampleReport(), FormatJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["type"] != "monthly" {
		t.Errorf("expected type monthly, got %v", decoded["type"])
	}
	if decoded["period_label"] != "01 Mar 2025 - 31 Mar 2025" {
		t.Errorf("unexpected period label: %v", decoded["period_label"])
	}
	if _, ok := decoded["summary"].(map[string]interface{}); !ok {
		t.Error("expected a summary object")
	}
}

func TestEncodeReportCSV(t *testing.T) {
	out, err := EncodeReport(sampleReport(), FormatCSV)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(out, "\n")

	t.Run("starts with title and period", func(t *testing.T) {
		if lines[0] != "Financial Report - monthly" {
			t.Errorf("unexpected title line: %s", lines[0])
		}
		if lines[1] != "Period: 01 Mar 2025 - 31 Mar 2025" {
			t.Errorf("unexpected period line: %s", lines[1])
		}
	})

	t.Run("summary rows are sorted key,value pairs", func(t *testing.T) {
		if lines[3] != "Summary" {
			t.Errorf("expected Summary header, got %s", lines[3])
		}
		if lines[4] != "avgDailySpending,48.40" {
			t.Errorf("unexpected first summary row: %s", lines[4])
		}
		if lines[5] != "totalExpenses,1500.50" {
			t.Errorf("unexpected second summary row: %s", lines[5])
		}
		if lines[6] != "transactionCount,3" {
			t.Errorf("unexpected third summary row: %s", lines[6])
		}
	})

	t.Run("category section has a header row", func(t *testing.T) {
		if !strings.Contains(out, "Category Breakdown\nCategory,Amount,Percentage\n") {
			t.Error("expected category breakdown header")
		}
		if !strings.Contains(out, "Rent,1000.00,66.6%") {
			t.Error("expected Rent row")
		}
		if !strings.Contains(out, "Food & Dining,500.50,33.4%") {
			t.Error("expected Food & Dining row")
		}
	})
}

func TestEncodeReportHTML(t *testing.T) {
	out, err := EncodeReport(sampleReport(), FormatHTML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("is a standalone document", func(t *testing.T) {
		if !strings.HasPrefix(out, "<!DOCTYPE html>") {
			t.Error("expected a doctype prefix")
		}
		if !strings.Contains(out, "<h1>Financial Report - monthly</h1>") {
			t.Error("expected an h1 title")
		}
	})

	t.Run("escapes content", func(t *testing.T) {
		if !strings.Contains(out, "Food &amp; Dining") {
			t.Error("expected the ampersand to be escaped")
		}
	})

	t.Run("renders breakdown table and insights list", func(t *testing.T) {
		if !strings.Contains(out, "<tr><th>Category</th><th>Amount</th><th>Percentage</th></tr>") {
			t.Error("expected a table header row")
		}
		if !strings.Contains(out, "<ul>") || !strings.Contains(out, "<li>") {
			t.Error("expected an insights list")
		}
	})

	t.Run("omits empty sections", func(t *testing.T) {
		bare := &Report{Type: ReportComparison, PeriodLabel: "x", Summary: map[string]interface{}{}, Insights: []string{}}
		out, err := EncodeReport(bare, FormatHTML)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(out, "<table>") {
			t.Error("expected no table for an empty breakdown")
		}
		if strings.Contains(out, "<ul>") {
			t.Error("expected no list for empty insights")
		}
	})
}

func TestEncodeReportUnsupportedFormat(t *testing.T) {
	_, err := EncodeReport(sampleReport(), ExportFormat("xml"))
	if err == nil {
		t.Fatal("expected an error for an unsupported format")
	}

	var reportErr *domainerror.ReportError
	if !errors.As(err, &reportErr) {
		t.Fatalf("expected a ReportError, got %T", err)
	}
	if reportErr.Code != domainerror.ErrCodeUnsupportedFormat {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeUnsupportedFormat, reportErr.Code)
	}
}
