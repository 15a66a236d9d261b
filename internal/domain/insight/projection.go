package insight

import (
	"github.com/shopspring/decimal"
)

// GoalProjection estimates how long the savings goal will take to reach at
// the current monthly saving rate.
type GoalProjection struct {
	// MonthsToGoal is 0 when the goal is already reached. It is undefined
	// when Unreachable is true.
	MonthsToGoal    int
	Unreachable     bool
	ProgressPercent float64
}

// ProjectGoal computes the goal timeline. The monthly saving power is
// budget-aware: with a budget set it is budget minus expenses, otherwise it
// falls back to net income. A non-positive saving power makes the goal
// unreachable; a zero goal yields zero progress and no projection target.
func ProjectGoal(totals Totals, monthlyBudget, savingsGoal decimal.Decimal) GoalProjection {
	savingPower := MonthlySavingPower(totals, monthlyBudget)

	projection := GoalProjection{
		ProgressPercent: clampedPercent(totals.Savings, savingsGoal),
	}

	switch {
	case totals.Savings.GreaterThanOrEqual(savingsGoal):
		projection.MonthsToGoal = 0
	case !savingPower.IsPositive():
		projection.Unreachable = true
	default:
		amountToGoal := savingsGoal.Sub(totals.Savings)
		projection.MonthsToGoal = int(amountToGoal.Div(savingPower).Ceil().IntPart())
	}

	return projection
}

// MonthlySavingPower is the projected amount saved per month: budget minus
// expenses when a budget is set, net income otherwise.
func MonthlySavingPower(totals Totals, monthlyBudget decimal.Decimal) decimal.Decimal {
	if monthlyBudget.IsPositive() {
		return monthlyBudget.Sub(totals.TotalExpense)
	}
	return totals.TotalIncome.Sub(totals.TotalExpense)
}
