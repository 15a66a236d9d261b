package insight

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

// PaceStatus tiers today's spending against the suggested daily budget.
type PaceStatus string

const (
	PaceGood    PaceStatus = "good"
	PaceCaution PaceStatus = "caution"
	PaceOver    PaceStatus = "over"
)

// PaceCautionFactor is the multiple of the daily budget above which today's
// spending is flagged "caution"; beyond PaceOverFactor it becomes "over".
// The tiers are fixed, not configurable.
const (
	PaceCautionFactor = 1.0
	PaceOverFactor    = 1.2
)

// DailyPace is the suggested spend-per-remaining-day for the current month
// and how today's spending compares to it.
type DailyPace struct {
	DailyBudget     decimal.Decimal
	TodaySpent      decimal.Decimal
	ProgressPercent float64
	Status          PaceStatus
}

// ComputeDailyPace derives the daily allowance from the balance spread over
// the remaining days of now's month, sums today's expenses, and tiers the
// result. A non-positive balance yields a zero daily budget, and a zero
// daily budget yields zero progress; no division by zero can occur.
func ComputeDailyPace(transactions []*entity.Transaction, balance decimal.Decimal, now time.Time) DailyPace {
	daysInMonth := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
	remainingDays := daysInMonth - now.Day() + 1

	dailyBudget := decimal.Zero
	if remainingDays > 0 && balance.IsPositive() {
		dailyBudget = balance.Div(decimal.NewFromInt(int64(remainingDays)))
	}

	todaySpent := decimal.Zero
	for _, t := range transactions {
		if t.Amount.IsNegative() && sameDay(t.Date, now) {
			todaySpent = todaySpent.Add(t.Amount.Abs())
		}
	}

	progress := float64(0)
	if dailyBudget.IsPositive() {
		progress = clampedPercent(todaySpent, dailyBudget)
	}

	return DailyPace{
		DailyBudget:     dailyBudget,
		TodaySpent:      todaySpent,
		ProgressPercent: progress,
		Status:          paceStatus(todaySpent, dailyBudget),
	}
}

// paceStatus tiers spending: within budget is good, up to 1.2x is caution,
// beyond that is over.
func paceStatus(todaySpent, dailyBudget decimal.Decimal) PaceStatus {
	overLimit := dailyBudget.Mul(decimal.NewFromFloat(PaceOverFactor))

	switch {
	case todaySpent.GreaterThan(overLimit):
		return PaceOver
	case todaySpent.GreaterThan(dailyBudget):
		return PaceCaution
	default:
		return PaceGood
	}
}

// sameDay reports whether two instants fall on the same calendar date.
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
