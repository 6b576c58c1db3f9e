package aicategorization

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestInMemoryProcessingTracker_ProcessingMethods(t *testing.T) {
	tracker := NewInMemoryProcessingTracker()
	userID := uuid.New()

	if tracker.IsProcessing(userID) {
		t.Error("new tracker reports processing")
	}
	if got := tracker.GetJobID(userID); got != "" {
		t.Errorf("GetJobID = %q, want empty", got)
	}

	tracker.SetProcessing(userID, "job-1")
	if !tracker.IsProcessing(userID) {
		t.Error("IsProcessing = false after SetProcessing")
	}
	if got := tracker.GetJobID(userID); got != "job-1" {
		t.Errorf("GetJobID = %q, want job-1", got)
	}

	tracker.ClearProcessing(userID)
	if tracker.IsProcessing(userID) {
		t.Error("IsProcessing = true after ClearProcessing")
	}
}

func TestInMemoryProcessingTracker_ErrorTracking(t *testing.T) {
	tracker := NewInMemoryProcessingTracker()
	userID := uuid.New()

	if tracker.HasError(userID) {
		t.Error("new tracker reports error")
	}
	if tracker.GetError(userID) != nil {
		t.Error("GetError != nil on new tracker")
	}

	perr := &ProcessingError{
		Code:      ErrCodeAIRateLimited,
		Message:   errorMessages[ErrCodeAIRateLimited],
		Retryable: true,
		Timestamp: time.Now(),
	}
	tracker.SetError(userID, perr)

	if !tracker.HasError(userID) {
		t.Error("HasError = false after SetError")
	}
	got := tracker.GetError(userID)
	if got == nil || got.Code != ErrCodeAIRateLimited {
		t.Errorf("GetError = %+v, want code %s", got, ErrCodeAIRateLimited)
	}

	// Errors are tracked per user.
	other := uuid.New()
	if tracker.HasError(other) {
		t.Error("error leaked to another user")
	}

	tracker.ClearError(userID)
	if tracker.HasError(userID) {
		t.Error("HasError = true after ClearError")
	}
}

func TestInMemoryProcessingTracker_ThreadSafety(t *testing.T) {
	tracker := NewInMemoryProcessingTracker()
	userID := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			tracker.SetProcessing(userID, "job")
			tracker.ClearProcessing(userID)
		}()
		go func() {
			defer wg.Done()
			tracker.IsProcessing(userID)
			tracker.SetError(userID, &ProcessingError{Code: ErrCodeAIUnknownError})
			tracker.HasError(userID)
			tracker.ClearError(userID)
		}()
	}
	wg.Wait()
}
