package insight

import (
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

// Totals holds the headline sums for a snapshot. The invariants
// Balance = MonthlyBudget + TotalIncome - TotalExpense and
// Savings = max(0, Balance) hold for every recomputation.
type Totals struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
	Savings      decimal.Decimal
}

// ComputeTotals sums income and expense over the transactions and derives
// balance and savings. The amount sign decides which side a transaction
// lands on; the redundant type tag is ignored. Zero amounts contribute to
// neither side. An empty list yields all-zero totals except
// Balance = monthlyBudget.
func ComputeTotals(transactions []*entity.Transaction, monthlyBudget decimal.Decimal) Totals {
	income := decimal.Zero
	expense := decimal.Zero

	for _, t := range transactions {
		switch {
		case t.Amount.IsPositive():
			income = income.Add(t.Amount)
		case t.Amount.IsNegative():
			expense = expense.Add(t.Amount.Abs())
		}
	}

	balance := monthlyBudget.Add(income).Sub(expense)

	savings := balance
	if savings.IsNegative() {
		savings = decimal.Zero
	}

	return Totals{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      balance,
		Savings:      savings,
	}
}
