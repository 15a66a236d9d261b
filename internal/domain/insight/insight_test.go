package insight

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

func TestCompute(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	snapshot := Snapshot{
		Transactions: []*entity.Transaction{
			tx(5000, "Salary", time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)),
			tx(-1200, "Rent", time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)),
			tx(-300, "Food", now),
		},
		MonthlyBudget: decimal.NewFromInt(2000),
		SavingsGoal:   decimal.NewFromInt(6000),
	}

	t.Run("assembles every component from one pass", func(t *testing.T) {
		view := Compute(snapshot, now)

		if !view.Totals.Balance.Equal(decimal.NewFromInt(5500)) {
			t.Errorf("expected balance 5500, got %s", view.Totals.Balance)
		}
		if len(view.Categories) != 2 {
			t.Errorf("expected 2 expense categories, got %d", len(view.Categories))
		}
		if len(view.Monthly) != 2 {
			t.Errorf("expected 2 month buckets, got %d", len(view.Monthly))
		}
		if !view.DailyPace.TodaySpent.Equal(decimal.NewFromInt(300)) {
			t.Errorf("expected today spent 300, got %s", view.DailyPace.TodaySpent)
		}
		// 500 short of the goal, saving 2000-1500=500/month.
		if view.Goal.MonthsToGoal != 1 {
			t.Errorf("expected 1 month to goal, got %d", view.Goal.MonthsToGoal)
		}
		if _, ok := findAlert(view.Alerts, AlertGoalProgress); !ok {
			t.Error("expected goal progress alert")
		}
	})

	t.Run("is deterministic for a fixed snapshot and clock", func(t *testing.T) {
		first := Compute(snapshot, now)
		second := Compute(snapshot, now)

		if !reflect.DeepEqual(first, second) {
			t.Error("two computations of the same snapshot differ")
		}
	})

	t.Run("does not mutate the snapshot", func(t *testing.T) {
		before := make([]entity.Transaction, len(snapshot.Transactions))
		for i, txn := range snapshot.Transactions {
			before[i] = *txn
		}

		Compute(snapshot, now)

		for i, txn := range snapshot.Transactions {
			if !reflect.DeepEqual(before[i], *txn) {
				t.Errorf("transaction %d was mutated", i)
			}
		}
	})

	t.Run("empty snapshot yields a zeroed view", func(t *testing.T) {
		view := Compute(Snapshot{MonthlyBudget: decimal.Zero, SavingsGoal: decimal.Zero}, now)

		if !view.Totals.Balance.IsZero() {
			t.Errorf("expected zero balance, got %s", view.Totals.Balance)
		}
		if len(view.Categories) != 0 || len(view.Monthly) != 0 || len(view.Alerts) != 0 {
			t.Error("expected empty categories, months and alerts")
		}
		if view.DailyPace.Status != PaceGood {
			t.Errorf("expected good pace, got %s", view.DailyPace.Status)
		}
		if view.Goal.Unreachable {
			t.Error("a zero goal is trivially reached, not unreachable")
		}
	})
}
