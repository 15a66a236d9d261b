package insight

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

func TestAggregateCategories(t *testing.T) {
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	t.Run("groups expenses by category with totals and counts", func(t *testing.T) {
		transactions := []*entity.Transaction{
			tx(5000, "Salary", date),
			tx(-2000, "Food", date),
			tx(-500, "Food", date),
			tx(-300, "Transport", date),
		}

		buckets := AggregateCategories(transactions)

		if len(buckets) != 2 {
			t.Fatalf("expected 2 buckets, got %d", len(buckets))
		}
		if buckets[0].Name != "Food" || !buckets[0].Total.Equal(decimal.NewFromInt(2500)) || buckets[0].Count != 2 {
			t.Errorf("unexpected Food bucket: %+v", buckets[0])
		}
		if buckets[1].Name != "Transport" || !buckets[1].Total.Equal(decimal.NewFromInt(300)) || buckets[1].Count != 1 {
			t.Errorf("unexpected Transport bucket: %+v", buckets[1])
		}
	})

	t.Run("missing category falls back to General", func(t *testing.T) {
		buckets := AggregateCategories([]*entity.Transaction{tx(-100, "", date)})

		if len(buckets) != 1 || buckets[0].Name != entity.DefaultCategory {
			t.Fatalf("expected a single General bucket, got %+v", buckets)
		}
	})

	t.Run("income never creates a bucket", func(t *testing.T) {
		buckets := AggregateCategories([]*entity.Transaction{
			tx(100, "Food", date),
			tx(0, "Food", date),
		})

		if len(buckets) != 0 {
			t.Fatalf("expected no buckets, got %+v", buckets)
		}
	})

	t.Run("buckets keep first-encounter order", func(t *testing.T) {
		transactions := []*entity.Transaction{
			tx(-10, "B", date),
			tx(-20, "A", date),
			tx(-30, "B", date),
		}

		buckets := AggregateCategories(transactions)

		if buckets[0].Name != "B" || buckets[1].Name != "A" {
			t.Errorf("expected order [B A], got [%s %s]", buckets[0].Name, buckets[1].Name)
		}
	})
}

func TestCategorySumClosure(t *testing.T) {
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		amounts []int64
	}{
		{"mixed", []int64{5000, -2000, -500, -300, 250}},
		{"expenses only", []int64{-1, -2, -3, -4}},
		{"income only", []int64{10, 20}},
		{"empty", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			transactions := make([]*entity.Transaction, 0, len(tc.amounts))
			for i, a := range tc.amounts {
				category := ""
				if i%2 == 0 {
					category = "Food"
				}
				transactions = append(transactions, tx(a, category, date))
			}

			buckets := AggregateCategories(transactions)
			totals := ComputeTotals(transactions, decimal.Zero)

			if !TotalExpenseOf(buckets).Equal(totals.TotalExpense) {
				t.Errorf("bucket sum %s does not close over total expense %s",
					TotalExpenseOf(buckets), totals.TotalExpense)
			}
		})
	}
}

func TestBucketPercent(t *testing.T) {
	t.Run("zero denominator yields zero", func(t *testing.T) {
		bucket := CategoryBucket{Name: "Food", Total: decimal.NewFromInt(100)}

		if got := BucketPercent(bucket, decimal.Zero); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})

	t.Run("share of the total", func(t *testing.T) {
		bucket := CategoryBucket{Name: "Food", Total: decimal.NewFromInt(250)}

		if got := BucketPercent(bucket, decimal.NewFromInt(1000)); got != 25 {
			t.Errorf("expected 25, got %v", got)
		}
	})
}

func TestRankByTotal(t *testing.T) {
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	transactions := []*entity.Transaction{
		tx(-100, "A", date),
		tx(-300, "B", date),
		tx(-100, "C", date),
	}

	buckets := AggregateCategories(transactions)
	ranked := RankByTotal(buckets)

	if ranked[0].Name != "B" {
		t.Errorf("expected B first, got %s", ranked[0].Name)
	}
	// A and C tie; the stable sort keeps first-encounter order.
	if ranked[1].Name != "A" || ranked[2].Name != "C" {
		t.Errorf("expected tie order [A C], got [%s %s]", ranked[1].Name, ranked[2].Name)
	}

	// The input slice is untouched.
	if buckets[0].Name != "A" {
		t.Errorf("RankByTotal mutated its input: %+v", buckets)
	}
}
