package insight

import (
	"testing"

	"github.com/shopspring/decimal"
)

func totalsOf(income, expense, balance, savings int64) Totals {
	return Totals{
		TotalIncome:  decimal.NewFromInt(income),
		TotalExpense: decimal.NewFromInt(expense),
		Balance:      decimal.NewFromInt(balance),
		Savings:      decimal.NewFromInt(savings),
	}
}

func TestProjectGoal(t *testing.T) {
	t.Run("reached goal projects zero months", func(t *testing.T) {
		projection := ProjectGoal(totalsOf(6000, 1000, 5000, 5000), decimal.Zero, decimal.NewFromInt(4000))

		if projection.MonthsToGoal != 0 {
			t.Errorf("expected 0 months, got %d", projection.MonthsToGoal)
		}
		if projection.Unreachable {
			t.Error("expected goal to be reachable")
		}
		if projection.ProgressPercent != 100 {
			t.Errorf("expected progress capped at 100, got %v", projection.ProgressPercent)
		}
	})

	t.Run("overspending makes the goal unreachable", func(t *testing.T) {
		// No budget, income 1000, expenses 1200: saving power is negative.
		projection := ProjectGoal(totalsOf(1000, 1200, -200, 0), decimal.Zero, decimal.NewFromInt(5000))

		if !projection.Unreachable {
			t.Error("expected unreachable goal")
		}
	})

	t.Run("months to goal rounds up", func(t *testing.T) {
		// 4000 short of the goal, saving 1500/month: 2.67 months rounds to 3.
		projection := ProjectGoal(totalsOf(2500, 1000, 1500, 1000), decimal.Zero, decimal.NewFromInt(5000))

		if projection.Unreachable {
			t.Fatal("expected reachable goal")
		}
		if projection.MonthsToGoal != 3 {
			t.Errorf("expected 3 months, got %d", projection.MonthsToGoal)
		}
	})

	t.Run("budget takes precedence over net income", func(t *testing.T) {
		// Saving power is budget-expense=500, not income-expense=2000.
		// 2500 short of the goal at 500/month is 5 months.
		projection := ProjectGoal(totalsOf(3000, 1000, 3500, 2500), decimal.NewFromInt(1500), decimal.NewFromInt(5000))

		if projection.MonthsToGoal != 5 {
			t.Errorf("expected 5 months, got %d", projection.MonthsToGoal)
		}
	})

	t.Run("zero goal yields zero progress", func(t *testing.T) {
		projection := ProjectGoal(totalsOf(1000, 200, 800, 800), decimal.Zero, decimal.Zero)

		if projection.ProgressPercent != 0 {
			t.Errorf("expected zero progress, got %v", projection.ProgressPercent)
		}
		if projection.Unreachable {
			t.Error("a zero goal is trivially reached, not unreachable")
		}
	})

	t.Run("progress percent is clamped", func(t *testing.T) {
		projection := ProjectGoal(totalsOf(1000, 0, 1000, 1000), decimal.Zero, decimal.NewFromInt(400))

		if projection.ProgressPercent != 100 {
			t.Errorf("expected progress 100, got %v", projection.ProgressPercent)
		}
	})
}

// TestProjectGoalMonotonic checks that a higher saving power never pushes the
// goal further away.
func TestProjectGoalMonotonic(t *testing.T) {
	goal := decimal.NewFromInt(10000)
	previous := int(^uint(0) >> 1)

	for income := int64(100); income <= 5000; income += 100 {
		projection := ProjectGoal(totalsOf(income, 0, income, income), decimal.Zero, goal)
		if projection.Unreachable {
			t.Fatalf("income %d: unexpected unreachable goal", income)
		}
		if projection.MonthsToGoal > previous {
			t.Fatalf("income %d: months went up from %d to %d", income, previous, projection.MonthsToGoal)
		}
		previous = projection.MonthsToGoal
	}
}

func TestMonthlySavingPower(t *testing.T) {
	cases := []struct {
		name    string
		totals  Totals
		budget  int64
		want    int64
	}{
		{"budget set", totalsOf(3000, 1000, 2000, 2000), 1500, 500},
		{"no budget falls back to net income", totalsOf(3000, 1000, 2000, 2000), 0, 2000},
		{"budget overspent goes negative", totalsOf(3000, 2000, 1000, 1000), 1500, -500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MonthlySavingPower(tc.totals, decimal.NewFromInt(tc.budget))
			if !got.Equal(decimal.NewFromInt(tc.want)) {
				t.Errorf("expected %d, got %s", tc.want, got)
			}
		})
	}
}
