package insight

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

// CategoryBucket is one expense category's accumulated total and count.
type CategoryBucket struct {
	Name  string
	Total decimal.Decimal
	Count int
}

// AggregateCategories groups expense transactions (amount < 0) by category,
// accumulating absolute totals and counts. A missing category falls back to
// entity.DefaultCategory. Buckets are returned in first-encounter order;
// consumers that need ranking use RankByTotal.
func AggregateCategories(transactions []*entity.Transaction) []CategoryBucket {
	var buckets []CategoryBucket
	index := make(map[string]int)

	for _, t := range transactions {
		if !t.Amount.IsNegative() {
			continue
		}

		name := t.Category
		if name == "" {
			name = entity.DefaultCategory
		}

		i, ok := index[name]
		if !ok {
			i = len(buckets)
			index[name] = i
			buckets = append(buckets, CategoryBucket{Name: name, Total: decimal.Zero})
		}

		buckets[i].Total = buckets[i].Total.Add(t.Amount.Abs())
		buckets[i].Count++
	}

	return buckets
}

// TotalExpenseOf sums all bucket totals. It equals Totals.TotalExpense for
// the same snapshot and serves as the percentage denominator.
func TotalExpenseOf(buckets []CategoryBucket) decimal.Decimal {
	total := decimal.Zero
	for _, b := range buckets {
		total = total.Add(b.Total)
	}
	return total
}

// BucketPercent returns a bucket's share of the total expense in percent,
// rounded to two places. It returns 0 when the total expense is zero.
func BucketPercent(bucket CategoryBucket, totalExpense decimal.Decimal) float64 {
	if totalExpense.IsZero() {
		return 0
	}

	pct, _ := bucket.Total.Mul(decimal.NewFromInt(100)).Div(totalExpense).Round(2).Float64()
	return pct
}

// RankByTotal returns a copy of the buckets sorted by total descending.
// Ties keep first-encounter order (stable sort).
func RankByTotal(buckets []CategoryBucket) []CategoryBucket {
	ranked := make([]CategoryBucket, len(buckets))
	copy(ranked, buckets)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total.GreaterThan(ranked[j].Total)
	})

	return ranked
}
