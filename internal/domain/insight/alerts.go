package insight

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

// Severity classifies an alert for display.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
	SeveritySuccess Severity = "success"
)

// AlertKind identifies which rule produced an alert.
type AlertKind string

const (
	AlertOverspend        AlertKind = "overspend"
	AlertBudgetExceeded   AlertKind = "budget_exceeded"
	AlertGoalReached      AlertKind = "goal_reached"
	AlertGoalProgress     AlertKind = "goal_progress"
	AlertLargeTransaction AlertKind = "large_transaction"
	AlertConcentration    AlertKind = "category_concentration"
)

// LargeTransactionThreshold is the absolute amount at or above which a
// single transaction triggers a large-transaction alert.
var LargeTransactionThreshold = decimal.NewFromInt(10000)

// ConcentrationShare is the fraction of total expenses above which a single
// category triggers a concentration alert.
var ConcentrationShare = decimal.NewFromFloat(0.5)

// Stable alert identifiers. Fixed rules use small constants; per-category
// concentration alerts use concentrationIDBase plus the bucket's
// first-encounter index, so a consumer can dismiss them idempotently.
const (
	alertIDOverspend        = 1
	alertIDBudgetExceeded   = 2
	alertIDGoalReached      = 3
	alertIDGoalProgress     = 4
	alertIDLargeTransaction = 5
	concentrationIDBase     = 100
)

// Alert is a rule-triggered, user-facing notification. The ID is stable
// across recomputations of the same snapshot; dismissal state is owned by
// the consumer, never by the engine.
type Alert struct {
	ID       int
	Kind     AlertKind
	Message  string
	Severity Severity
}

// EvaluateAlerts runs the full rule set against a snapshot. Every rule is
// evaluated independently and all matches are emitted; there is no
// short-circuiting between rules.
func EvaluateAlerts(
	transactions []*entity.Transaction,
	totals Totals,
	categories []CategoryBucket,
	monthlyBudget, savingsGoal decimal.Decimal,
) []Alert {
	var alerts []Alert

	if totals.TotalExpense.GreaterThan(totals.TotalIncome) {
		alerts = append(alerts, Alert{
			ID:       alertIDOverspend,
			Kind:     AlertOverspend,
			Message:  "Spending is higher than your income",
			Severity: SeverityWarning,
		})
	}

	if monthlyBudget.IsPositive() && totals.TotalExpense.GreaterThan(monthlyBudget) {
		alerts = append(alerts, Alert{
			ID:       alertIDBudgetExceeded,
			Kind:     AlertBudgetExceeded,
			Message:  "You have exceeded your budget limit",
			Severity: SeverityDanger,
		})
	}

	if savingsGoal.IsPositive() && totals.Savings.GreaterThanOrEqual(savingsGoal) {
		alerts = append(alerts, Alert{
			ID:       alertIDGoalReached,
			Kind:     AlertGoalReached,
			Message:  "Congratulations! You reached your savings goal",
			Severity: SeveritySuccess,
		})
	}

	if savingsGoal.IsPositive() && totals.Savings.IsPositive() && totals.Savings.LessThan(savingsGoal) {
		percent := totals.Savings.Mul(decimal.NewFromInt(100)).Div(savingsGoal).Floor().IntPart()
		alerts = append(alerts, Alert{
			ID:       alertIDGoalProgress,
			Kind:     AlertGoalProgress,
			Message:  fmt.Sprintf("You've completed %d%% of your savings goal", percent),
			Severity: SeveritySuccess,
		})
	}

	for _, t := range transactions {
		if t.Amount.Abs().GreaterThanOrEqual(LargeTransactionThreshold) {
			alerts = append(alerts, Alert{
				ID:       alertIDLargeTransaction,
				Kind:     AlertLargeTransaction,
				Message:  fmt.Sprintf("Large transaction detected: %s", t.Amount.Abs().String()),
				Severity: SeverityWarning,
			})
			break // one alert for the first match, matching the dashboard
		}
	}

	if totals.TotalExpense.IsPositive() {
		for i, bucket := range categories {
			share := bucket.Total.Div(totals.TotalExpense)
			if share.GreaterThan(ConcentrationShare) {
				alerts = append(alerts, Alert{
					ID:       concentrationIDBase + i,
					Kind:     AlertConcentration,
					Message:  fmt.Sprintf("High spending detected in %s", bucket.Name),
					Severity: SeverityWarning,
				})
			}
		}
	}

	return alerts
}
