// Package error defines domain-specific errors for the FinTrack application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget record is not found for the user.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrNegativeBudget is returned when a negative monthly budget is provided.
	ErrNegativeBudget = errors.New("monthly budget cannot be negative")

	// ErrNegativeSavingsGoal is returned when a negative savings goal is provided.
	ErrNegativeSavingsGoal = errors.New("savings goal cannot be negative")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNegativeBudget      BudgetErrorCode = "BDG-010001"
	ErrCodeNegativeSavingsGoal BudgetErrorCode = "BDG-010002"

	// Access errors (02XXXX)
	ErrCodeBudgetNotFound BudgetErrorCode = "BDG-020001"
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
