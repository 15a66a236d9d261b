// Package transaction contains transaction-related use cases.
package transaction

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/fintrack/backend/internal/domain/error"
)

const (
	// MaxTitleLength is the maximum allowed length for transaction titles.
	MaxTitleLength = 255
	// MaxCategoryLength is the maximum allowed length for category labels.
	MaxCategoryLength = 100
)

// validateTransactionFields checks the shared invariants for create and
// update: a non-empty bounded title, a bounded category, a non-zero amount
// and a usable date.
func validateTransactionFields(title string, amount decimal.Decimal, category string, date time.Time) error {
	if strings.TrimSpace(title) == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyTransactionTitle,
			"transaction title cannot be empty",
			domainerror.ErrEmptyTransactionTitle,
		)
	}

	if len(title) > MaxTitleLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTitleTooLong,
			fmt.Sprintf("title must not exceed %d characters", MaxTitleLength),
			domainerror.ErrTitleTooLong,
		)
	}

	if len(category) > MaxCategoryLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeCategoryTooLong,
			fmt.Sprintf("category must not exceed %d characters", MaxCategoryLength),
			domainerror.ErrCategoryTooLong,
		)
	}

	if amount.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeZeroTransactionAmount,
			"transaction amount cannot be zero",
			domainerror.ErrZeroTransactionAmount,
		)
	}

	if date.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"transaction date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	return nil
}
