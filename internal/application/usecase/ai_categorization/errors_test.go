package aicategorization

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantCode      string
		wantRetryable bool
	}{
		{
			name:          "deadline exceeded maps to timeout",
			err:           context.DeadlineExceeded,
			wantCode:      ErrCodeAITimeout,
			wantRetryable: true,
		},
		{
			name:          "cancellation maps to timeout",
			err:           context.Canceled,
			wantCode:      ErrCodeAITimeout,
			wantRetryable: true,
		},
		{
			name:          "quota exhaustion maps to rate limited",
			err:           errors.New("googleapi: Error 429: resource exhausted"),
			wantCode:      ErrCodeAIRateLimited,
			wantRetryable: true,
		},
		{
			name:          "rate limit wording maps to rate limited",
			err:           errors.New("rate limit exceeded, retry later"),
			wantCode:      ErrCodeAIRateLimited,
			wantRetryable: true,
		},
		{
			name:          "invalid api key maps to auth error",
			err:           errors.New("invalid API key provided"),
			wantCode:      ErrCodeAIAuthError,
			wantRetryable: false,
		},
		{
			name:          "403 maps to auth error",
			err:           errors.New("googleapi: Error 403: permission denied"),
			wantCode:      ErrCodeAIAuthError,
			wantRetryable: false,
		},
		{
			name:          "connection refused maps to unavailable",
			err:           errors.New("dial tcp: connection refused"),
			wantCode:      ErrCodeAIServiceUnavailable,
			wantRetryable: true,
		},
		{
			name:          "503 maps to unavailable",
			err:           errors.New("upstream returned 503"),
			wantCode:      ErrCodeAIServiceUnavailable,
			wantRetryable: true,
		},
		{
			name:          "json failure maps to parse error",
			err:           errors.New("failed to unmarshal suggestion payload"),
			wantCode:      ErrCodeAIParseError,
			wantRetryable: true,
		},
		{
			name:          "anything else maps to unknown",
			err:           errors.New("something odd happened"),
			wantCode:      ErrCodeAIUnknownError,
			wantRetryable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Retryable != tt.wantRetryable {
				t.Errorf("Retryable = %v, want %v", got.Retryable, tt.wantRetryable)
			}
			if got.Message == "" {
				t.Error("Message is empty")
			}
			if got.Timestamp.IsZero() {
				t.Error("Timestamp is zero")
			}
		})
	}
}

func TestClassifyError_WrappedContextErrors(t *testing.T) {
	wrapped := fmt.Errorf("generate content: %w", context.DeadlineExceeded)
	got := classifyError(wrapped)
	if got.Code != ErrCodeAITimeout {
		t.Errorf("Code = %q, want %q", got.Code, ErrCodeAITimeout)
	}
}

func TestClassifyError_CaseInsensitive(t *testing.T) {
	got := classifyError(errors.New("RATE LIMIT reached"))
	if got.Code != ErrCodeAIRateLimited {
		t.Errorf("Code = %q, want %q", got.Code, ErrCodeAIRateLimited)
	}
}

func TestErrorMessages_AllCodesHaveMessages(t *testing.T) {
	codes := []string{
		ErrCodeAIServiceUnavailable,
		ErrCodeAIRateLimited,
		ErrCodeAIAuthError,
		ErrCodeAITimeout,
		ErrCodeAIParseError,
		ErrCodeAIUnknownError,
	}
	for _, code := range codes {
		if errorMessages[code] == "" {
			t.Errorf("no message for code %q", code)
		}
	}
}
