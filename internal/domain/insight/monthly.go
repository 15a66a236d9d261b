package insight

import (
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

// MonthBucket is one month's accumulated income and expense.
type MonthBucket struct {
	Month   string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// MonthlyRollup buckets every transaction by its short month label ("Jan",
// "Feb", ...) in first-encounter order. The label deliberately omits the
// year, so the same calendar month from different years shares a bucket;
// this mirrors the dashboard's chart grouping and changing it would change
// observable multi-year behavior. Transactions with a zero date are
// skipped rather than bucketed.
func MonthlyRollup(transactions []*entity.Transaction) []MonthBucket {
	var buckets []MonthBucket
	index := make(map[string]int)

	for _, t := range transactions {
		if t.Date.IsZero() {
			continue
		}

		label := t.Date.Format("Jan")

		i, ok := index[label]
		if !ok {
			i = len(buckets)
			index[label] = i
			buckets = append(buckets, MonthBucket{
				Month:   label,
				Income:  decimal.Zero,
				Expense: decimal.Zero,
			})
		}

		switch {
		case t.Amount.IsPositive():
			buckets[i].Income = buckets[i].Income.Add(t.Amount)
		case t.Amount.IsNegative():
			buckets[i].Expense = buckets[i].Expense.Add(t.Amount.Abs())
		}
	}

	return buckets
}
