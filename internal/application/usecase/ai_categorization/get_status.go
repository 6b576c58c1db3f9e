// Package aicategorization contains AI category suggestion use cases.
package aicategorization

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/expenso/backend/internal/application/adapter"
	"github.com/expenso/backend/internal/domain/entity"
	domainerror "github.com/expenso/backend/internal/domain/error"
)

// GetStatusInput represents the input for getting suggestion run status.
type GetStatusInput struct {
	UserID uuid.UUID
}

// GetStatusOutput represents the output of getting suggestion run status.
type GetStatusOutput struct {
	UncategorizedCount int              `json:"uncategorized_count"`
	IsProcessing       bool             `json:"is_processing"`
	JobID              string           `json:"job_id,omitempty"`
	HasError           bool             `json:"has_error"`
	Error              *ProcessingError `json:"error,omitempty"`
}

// GetStatusUseCase handles retrieving suggestion run status.
type GetStatusUseCase struct {
	expenseRepo adapter.ExpenseRepository
	tracker     ProcessingTracker
}

// ProcessingTracker tracks per-user suggestion run state.
type ProcessingTracker interface {
	IsProcessing(userID uuid.UUID) bool
	GetJobID(userID uuid.UUID) string
	SetProcessing(userID uuid.UUID, jobID string)
	ClearProcessing(userID uuid.UUID)

	// Error tracking methods.
	SetError(userID uuid.UUID, err *ProcessingError)
	GetError(userID uuid.UUID) *ProcessingError
	ClearError(userID uuid.UUID)
	HasError(userID uuid.UUID) bool
}

// NewGetStatusUseCase creates a new GetStatusUseCase instance.
func NewGetStatusUseCase(
	expenseRepo adapter.ExpenseRepository,
	tracker ProcessingTracker,
) *GetStatusUseCase {
	return &GetStatusUseCase{
		expenseRepo: expenseRepo,
		tracker:     tracker,
	}
}

// Execute retrieves the suggestion run status for a user.
func (uc *GetStatusUseCase) Execute(ctx context.Context, input GetStatusInput) (*GetStatusOutput, error) {
	expenses, err := uc.expenseRepo.FindByFilter(ctx, adapter.ExpenseFilter{
		UserID:   input.UserID,
		Category: entity.UncategorizedLabel,
	})
	if err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordInternalError,
			"failed to count uncategorized expenses",
			err,
		)
	}

	output := &GetStatusOutput{
		UncategorizedCount: len(expenses),
	}

	if uc.tracker != nil {
		output.IsProcessing = uc.tracker.IsProcessing(input.UserID)
		output.JobID = uc.tracker.GetJobID(input.UserID)
		output.HasError = uc.tracker.HasError(input.UserID)
		if output.HasError {
			output.Error = uc.tracker.GetError(input.UserID)
		}
	}

	return output, nil
}

// InMemoryProcessingTracker is a simple in-memory implementation of ProcessingTracker.
type InMemoryProcessingTracker struct {
	mu         sync.RWMutex
	processing map[uuid.UUID]string
	errors     map[uuid.UUID]*ProcessingError
}

// NewInMemoryProcessingTracker creates a new in-memory processing tracker.
func NewInMemoryProcessingTracker() *InMemoryProcessingTracker {
	return &InMemoryProcessingTracker{
		processing: make(map[uuid.UUID]string),
		errors:     make(map[uuid.UUID]*ProcessingError),
	}
}

// IsProcessing checks if a user has a run in flight.
func (t *InMemoryProcessingTracker) IsProcessing(userID uuid.UUID) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.processing[userID]
	return ok
}

// GetJobID gets the job ID for a user.
func (t *InMemoryProcessingTracker) GetJobID(userID uuid.UUID) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.processing[userID]
}

// SetProcessing sets the processing state for a user.
func (t *InMemoryProcessingTracker) SetProcessing(userID uuid.UUID, jobID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.processing[userID] = jobID
}

// ClearProcessing clears the processing state for a user.
func (t *InMemoryProcessingTracker) ClearProcessing(userID uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.processing, userID)
}

// SetError stores an error for a user.
func (t *InMemoryProcessingTracker) SetError(userID uuid.UUID, err *ProcessingError) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.errors[userID] = err
}

// GetError retrieves the error for a user.
func (t *InMemoryProcessingTracker) GetError(userID uuid.UUID) *ProcessingError {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.errors[userID]
}

// ClearError removes the error for a user.
func (t *InMemoryProcessingTracker) ClearError(userID uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.errors, userID)
}

// HasError checks if a user has a recorded error.
func (t *InMemoryProcessingTracker) HasError(userID uuid.UUID) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.errors[userID]
	return ok
}
