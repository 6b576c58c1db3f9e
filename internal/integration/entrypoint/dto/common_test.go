package dto

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Run("parses bare date as UTC midnight", func(t *testing.T) {
		got, err := ParseDate("2026-03-15")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("parses RFC3339 timestamp", func(t *testing.T) {
		got, err := ParseDate("2026-03-15T10:30:00Z")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("rejects unparseable input", func(t *testing.T) {
		if _, err := ParseDate("15/03/2026"); err == nil {
			t.Error("expected error for unsupported layout")
		}
		if _, err := ParseDate(""); err == nil {
			t.Error("expected error for empty input")
		}
	})
}
