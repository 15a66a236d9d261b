package insight

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

func TestMonthlyRollup(t *testing.T) {
	jan := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2025, time.February, 12, 0, 0, 0, 0, time.UTC)

	t.Run("accumulates income and expense per month", func(t *testing.T) {
		transactions := []*entity.Transaction{
			tx(1000, "", jan),
			tx(-400, "Food", jan),
			tx(-100, "Food", feb),
		}

		buckets := MonthlyRollup(transactions)

		if len(buckets) != 2 {
			t.Fatalf("expected 2 buckets, got %d", len(buckets))
		}
		if buckets[0].Month != "Jan" || !buckets[0].Income.Equal(decimal.NewFromInt(1000)) || !buckets[0].Expense.Equal(decimal.NewFromInt(400)) {
			t.Errorf("unexpected Jan bucket: %+v", buckets[0])
		}
		if buckets[1].Month != "Feb" || !buckets[1].Expense.Equal(decimal.NewFromInt(100)) {
			t.Errorf("unexpected Feb bucket: %+v", buckets[1])
		}
	})

	t.Run("buckets keep first-encounter order", func(t *testing.T) {
		transactions := []*entity.Transaction{
			tx(-1, "", feb),
			tx(-2, "", jan),
			tx(-3, "", feb),
		}

		buckets := MonthlyRollup(transactions)

		if buckets[0].Month != "Feb" || buckets[1].Month != "Jan" {
			t.Errorf("expected order [Feb Jan], got [%s %s]", buckets[0].Month, buckets[1].Month)
		}
	})

	t.Run("same month across years shares one bucket", func(t *testing.T) {
		transactions := []*entity.Transaction{
			tx(-100, "", time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)),
			tx(-200, "", time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)),
		}

		buckets := MonthlyRollup(transactions)

		if len(buckets) != 1 {
			t.Fatalf("expected a single Mar bucket, got %d", len(buckets))
		}
		if !buckets[0].Expense.Equal(decimal.NewFromInt(300)) {
			t.Errorf("expected Mar expense 300, got %s", buckets[0].Expense)
		}
	})

	t.Run("zero dates are skipped", func(t *testing.T) {
		transactions := []*entity.Transaction{
			tx(-100, "", time.Time{}),
			tx(-50, "", jan),
		}

		buckets := MonthlyRollup(transactions)

		if len(buckets) != 1 || buckets[0].Month != "Jan" {
			t.Fatalf("expected only a Jan bucket, got %+v", buckets)
		}
	})
}
