package insight

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

// DaySpend is the spending accumulated on a single day of the current month.
type DaySpend struct {
	Day   int
	Spent decimal.Decimal
	Count int
}

// DailySpending returns one entry per day of now's month, each with the
// total absolute expense and expense count for that day. Days without
// spending are present with zero values so a calendar can render the full
// month.
func DailySpending(transactions []*entity.Transaction, now time.Time) []DaySpend {
	daysInMonth := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()

	days := make([]DaySpend, daysInMonth)
	for i := range days {
		days[i] = DaySpend{Day: i + 1, Spent: decimal.Zero}
	}

	for _, t := range transactions {
		if !t.Amount.IsNegative() || t.Date.IsZero() {
			continue
		}
		if t.Date.Year() != now.Year() || t.Date.Month() != now.Month() {
			continue
		}

		i := t.Date.Day() - 1
		days[i].Spent = days[i].Spent.Add(t.Amount.Abs())
		days[i].Count++
	}

	return days
}
