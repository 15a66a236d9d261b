// Package insight derives dashboard metrics from a snapshot of a user's
// transactions and budget. Every function is pure: given the same snapshot
// (and clock, where one applies) it produces the same output, performs no
// I/O, and never mutates its input.
package insight

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

// Snapshot is the input to the engine: the user's transactions plus the
// current budget scalars. Transactions are expected to be pre-scoped to a
// single user; the engine never filters by owner.
type Snapshot struct {
	Transactions  []*entity.Transaction
	MonthlyBudget decimal.Decimal
	SavingsGoal   decimal.Decimal
}

// DerivedView is the full set of derived metrics for one snapshot. It is
// recomputed from scratch on every input change and never persisted.
type DerivedView struct {
	Totals     Totals
	Categories []CategoryBucket
	Monthly    []MonthBucket
	DailyPace  DailyPace
	Goal       GoalProjection
	Alerts     []Alert
}

// Compute derives the complete view for a snapshot. The clock is explicit
// so that day- and month-relative metrics are deterministic under test.
func Compute(s Snapshot, now time.Time) DerivedView {
	totals := ComputeTotals(s.Transactions, s.MonthlyBudget)
	categories := AggregateCategories(s.Transactions)

	return DerivedView{
		Totals:     totals,
		Categories: categories,
		Monthly:    MonthlyRollup(s.Transactions),
		DailyPace:  ComputeDailyPace(s.Transactions, totals.Balance, now),
		Goal:       ProjectGoal(totals, s.MonthlyBudget, s.SavingsGoal),
		Alerts:     EvaluateAlerts(s.Transactions, totals, categories, s.MonthlyBudget, s.SavingsGoal),
	}
}

// clampedPercent computes numerator/denominator*100 as a float rounded to
// two places, capped at 100. It returns 0 when the denominator is not
// positive, so no division by zero or negative percentage can escape.
func clampedPercent(numerator, denominator decimal.Decimal) float64 {
	if !denominator.IsPositive() {
		return 0
	}

	pct := numerator.Mul(decimal.NewFromInt(100)).Div(denominator)
	if pct.GreaterThan(decimal.NewFromInt(100)) {
		return 100
	}
	if pct.IsNegative() {
		return 0
	}

	value, _ := pct.Round(2).Float64()
	return value
}
