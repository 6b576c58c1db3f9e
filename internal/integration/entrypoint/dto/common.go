package dto

import (
	"fmt"
	"time"

	"github.com/expenso/backend/internal/application/usecase/report"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = time.RFC3339
)

// ParseDate parses a date supplied either as a full RFC3339 timestamp or as
// a bare YYYY-MM-DD string resolved to UTC midnight.
func ParseDate(value string) (time.Time, error) {
	if t := report.ParseFlexibleDate(value); t != nil {
		return *t, nil
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", value)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func formatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

func formatTimestampPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(timestampLayout)
	return &s
}
