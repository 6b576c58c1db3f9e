// Package error defines domain-specific errors for the Expenso application.
package error

import "errors"

// Record domain errors, shared by the expense, debt, investment, stock,
// loan and obligation areas.
var (
	// ErrExpenseNotFound is returned when an expense is not found.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrDebtNotFound is returned when a debt is not found.
	ErrDebtNotFound = errors.New("debt not found")

	// ErrInvestmentPlanNotFound is returned when an investment plan is not found.
	ErrInvestmentPlanNotFound = errors.New("investment plan not found")

	// ErrStockNotFound is returned when a stock holding is not found.
	ErrStockNotFound = errors.New("stock holding not found")

	// ErrLoanNotFound is returned when a loan is not found.
	ErrLoanNotFound = errors.New("loan not found")

	// ErrObligationNotFound is returned when a tax or violation is not found.
	ErrObligationNotFound = errors.New("obligation not found")

	// ErrNotAuthorizedToModifyRecord is returned when the record belongs to another user.
	ErrNotAuthorizedToModifyRecord = errors.New("not authorized to modify record")

	// ErrInvalidAmount is returned when an amount is negative or not a number.
	ErrInvalidAmount = errors.New("amount must be a non-negative number")

	// ErrInvalidQuantity is returned when a stock quantity is not positive.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrSellQuantityTooLarge is returned when selling more shares than held.
	ErrSellQuantityTooLarge = errors.New("sell quantity exceeds held quantity")

	// ErrStockAlreadySold is returned when operating on a closed position.
	ErrStockAlreadySold = errors.New("stock holding already sold")

	// ErrLoanAlreadyPaid is returned when paying interest on a settled loan.
	ErrLoanAlreadyPaid = errors.New("loan already paid")
)

// RecordErrorCode defines error codes for record errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecordErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAmount        RecordErrorCode = "REC-010001"
	ErrCodeInvalidQuantity      RecordErrorCode = "REC-010002"
	ErrCodeSellQuantityTooLarge RecordErrorCode = "REC-010003"
	ErrCodeMissingRecordFields  RecordErrorCode = "REC-010004"

	// Lookup errors (02XXXX)
	ErrCodeRecordNotFound      RecordErrorCode = "REC-020001"
	ErrCodeRecordNotAuthorized RecordErrorCode = "REC-020002"

	// State errors (03XXXX)
	ErrCodeStockAlreadySold RecordErrorCode = "REC-030001"
	ErrCodeLoanAlreadyPaid  RecordErrorCode = "REC-030002"

	// Internal errors (99XXXX)
	ErrCodeRecordInternalError RecordErrorCode = "REC-990001"
)

// RecordError represents a record error with code and message.
type RecordError struct {
	Code    RecordErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError with the given code and message.
func NewRecordError(code RecordErrorCode, message string, err error) *RecordError {
	return &RecordError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
