// Package error defines domain-specific errors for the Expenso application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when no budget exists for the month.
	ErrBudgetNotFound = errors.New("budget not found for month")

	// ErrInvalidBudgetAmount is returned when the budget amount is not positive.
	ErrInvalidBudgetAmount = errors.New("budget amount must be positive")

	// ErrInvalidBudgetMonth is returned when the month is not in YYYY-MM format.
	ErrInvalidBudgetMonth = errors.New("month must be in YYYY-MM format")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	ErrCodeInvalidBudgetAmount BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidBudgetMonth  BudgetErrorCode = "BGT-010002"
	ErrCodeBudgetNotFound      BudgetErrorCode = "BGT-020001"
	ErrCodeBudgetInternalError BudgetErrorCode = "BGT-990001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
