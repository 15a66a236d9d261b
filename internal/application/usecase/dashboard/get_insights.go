// Package dashboard contains use cases that derive dashboard views from a
// user's transactions and budget.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/insight"
)

// InsightCard is one summarized insight for the insights page.
type InsightCard struct {
	Kind    string
	Title   string
	Message string
}

// Card kinds for the insights page.
const (
	CardGoalTimeline = "goal_timeline"
	CardBudgetUsage  = "budget_usage"
	CardTopCategory  = "top_category"
)

// GetInsightsInput represents the input for computing insight cards.
type GetInsightsInput struct {
	UserID uuid.UUID
}

// GetInsightsOutput represents the output of computing insight cards.
type GetInsightsOutput struct {
	Cards []InsightCard
	Goal  insight.GoalProjection
}

// GetInsightsUseCase derives the insights page cards from the same engine
// that feeds the dashboard.
type GetInsightsUseCase struct {
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
	nowFn           func() time.Time
}

// NewGetInsightsUseCase creates a new GetInsightsUseCase instance.
func NewGetInsightsUseCase(
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
) *GetInsightsUseCase {
	return &GetInsightsUseCase{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		nowFn:           time.Now,
	}
}

// WithClock overrides the clock used for day- and month-relative metrics.
func (uc *GetInsightsUseCase) WithClock(nowFn func() time.Time) *GetInsightsUseCase {
	uc.nowFn = nowFn
	return uc
}

// Execute computes the insight cards for the user.
func (uc *GetInsightsUseCase) Execute(ctx context.Context, input GetInsightsInput) (*GetInsightsOutput, error) {
	snapshot, err := loadSnapshot(ctx, input.UserID, uc.transactionRepo, uc.budgetRepo)
	if err != nil {
		return nil, err
	}

	view := insight.Compute(snapshot, uc.nowFn().UTC())

	cards := []InsightCard{
		goalTimelineCard(view.Goal, snapshot.SavingsGoal.IsPositive()),
	}

	if snapshot.MonthlyBudget.IsPositive() {
		cards = append(cards, InsightCard{
			Kind:    CardBudgetUsage,
			Title:   "Budget usage",
			Message: budgetUsageMessage(view, snapshot),
		})
	}

	if ranked := insight.RankByTotal(view.Categories); len(ranked) > 0 {
		cards = append(cards, InsightCard{
			Kind:    CardTopCategory,
			Title:   "Top spending category",
			Message: fmt.Sprintf("%s accounts for %s of your spending", ranked[0].Name, ranked[0].Total.String()),
		})
	}

	return &GetInsightsOutput{Cards: cards, Goal: view.Goal}, nil
}

func goalTimelineCard(goal insight.GoalProjection, goalSet bool) InsightCard {
	card := InsightCard{Kind: CardGoalTimeline, Title: "Savings goal"}

	switch {
	case !goalSet:
		card.Message = "Set a savings goal to see your timeline"
	case goal.MonthsToGoal == 0 && !goal.Unreachable:
		card.Message = "You reached your savings goal"
	case goal.Unreachable:
		card.Message = "At the current rate you will not reach your goal"
	case goal.MonthsToGoal == 1:
		card.Message = "About 1 month to reach your goal"
	default:
		card.Message = fmt.Sprintf("About %d months to reach your goal", goal.MonthsToGoal)
	}

	return card
}

// budgetUsageMessage reports expense against budget without a cap, so an
// overspent month reads as more than 100%.
func budgetUsageMessage(view insight.DerivedView, snapshot insight.Snapshot) string {
	used := view.Totals.TotalExpense.
		Mul(decimal.NewFromInt(100)).
		Div(snapshot.MonthlyBudget).
		Round(0)
	return fmt.Sprintf("You have used %s%% of your monthly budget", used.String())
}
