package dto

import (
	"github.com/fintrack/backend/internal/application/usecase/dashboard"
	"github.com/fintrack/backend/internal/domain/insight"
)

// TotalsResponse represents the income/expense totals in the dashboard.
type TotalsResponse struct {
	TotalIncome  string `json:"total_income"`
	TotalExpense string `json:"total_expense"`
	Balance      string `json:"balance"`
	Savings      string `json:"savings"`
}

// CategoryBucketResponse represents one category's expense aggregate.
type CategoryBucketResponse struct {
	Name    string  `json:"name"`
	Total   string  `json:"total"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// MonthBucketResponse represents one month's income/expense rollup.
type MonthBucketResponse struct {
	Month   string `json:"month"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// DailyPaceResponse represents today's spending pace.
type DailyPaceResponse struct {
	DailyBudget     string  `json:"daily_budget"`
	TodaySpent      string  `json:"today_spent"`
	ProgressPercent float64 `json:"progress_percent"`
	Status          string  `json:"status"`
}

// GoalProjectionResponse represents the savings goal timeline.
type GoalProjectionResponse struct {
	MonthsToGoal    int     `json:"months_to_goal"`
	Unreachable     bool    `json:"unreachable"`
	ProgressPercent float64 `json:"progress_percent"`
}

// AlertResponse represents a single evaluated alert.
type AlertResponse struct {
	ID       int    `json:"id"`
	Kind     string `json:"kind"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// DashboardResponse represents the full dashboard view.
type DashboardResponse struct {
	Totals     TotalsResponse           `json:"totals"`
	Categories []CategoryBucketResponse `json:"categories"`
	Monthly    []MonthBucketResponse    `json:"monthly"`
	DailyPace  DailyPaceResponse        `json:"daily_pace"`
	Goal       GoalProjectionResponse   `json:"goal"`
	Alerts     []AlertResponse          `json:"alerts"`
	FromCache  bool                     `json:"from_cache"`
	ComputedAt string                   `json:"computed_at"`
}

// InsightCardResponse represents one card on the insights page.
type InsightCardResponse struct {
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// InsightsResponse represents the insights page payload.
type InsightsResponse struct {
	Cards []InsightCardResponse  `json:"cards"`
	Goal  GoalProjectionResponse `json:"goal"`
}

// CalendarDayResponse represents one day's spending in the calendar.
type CalendarDayResponse struct {
	Day   int    `json:"day"`
	Spent string `json:"spent"`
	Count int    `json:"count"`
}

// CalendarResponse represents the spending calendar for the current month.
type CalendarResponse struct {
	Month string                `json:"month"`
	Days  []CalendarDayResponse `json:"days"`
}

// ToDashboardResponse converts a GetDashboardOutput to a DashboardResponse DTO.
func ToDashboardResponse(output *dashboard.GetDashboardOutput) DashboardResponse {
	view := output.View

	totalExpense := view.Totals.TotalExpense
	categories := make([]CategoryBucketResponse, len(view.Categories))
	for i, bucket := range view.Categories {
		categories[i] = CategoryBucketResponse{
			Name:    bucket.Name,
			Total:   bucket.Total.String(),
			Count:   bucket.Count,
			Percent: insight.BucketPercent(bucket, totalExpense),
		}
	}

	monthly := make([]MonthBucketResponse, len(view.Monthly))
	for i, bucket := range view.Monthly {
		monthly[i] = MonthBucketResponse{
			Month:   bucket.Month,
			Income:  bucket.Income.String(),
			Expense: bucket.Expense.String(),
		}
	}

	alerts := make([]AlertResponse, len(view.Alerts))
	for i, alert := range view.Alerts {
		alerts[i] = AlertResponse{
			ID:       alert.ID,
			Kind:     string(alert.Kind),
			Message:  alert.Message,
			Severity: string(alert.Severity),
		}
	}

	return DashboardResponse{
		Totals: TotalsResponse{
			TotalIncome:  view.Totals.TotalIncome.String(),
			TotalExpense: view.Totals.TotalExpense.String(),
			Balance:      view.Totals.Balance.String(),
			Savings:      view.Totals.Savings.String(),
		},
		Categories: categories,
		Monthly:    monthly,
		DailyPace: DailyPaceResponse{
			DailyBudget:     view.DailyPace.DailyBudget.String(),
			TodaySpent:      view.DailyPace.TodaySpent.String(),
			ProgressPercent: view.DailyPace.ProgressPercent,
			Status:          string(view.DailyPace.Status),
		},
		Goal:       toGoalProjectionResponse(view.Goal),
		Alerts:     alerts,
		FromCache:  output.FromCache,
		ComputedAt: output.ComputedAt.UTC().Format(timeFormat),
	}
}

// ToInsightsResponse converts a GetInsightsOutput to an InsightsResponse DTO.
func ToInsightsResponse(output *dashboard.GetInsightsOutput) InsightsResponse {
	cards := make([]InsightCardResponse, len(output.Cards))
	for i, card := range output.Cards {
		cards[i] = InsightCardResponse{
			Kind:    card.Kind,
			Title:   card.Title,
			Message: card.Message,
		}
	}
	return InsightsResponse{
		Cards: cards,
		Goal:  toGoalProjectionResponse(output.Goal),
	}
}

// ToCalendarResponse converts a GetCalendarOutput to a CalendarResponse DTO.
func ToCalendarResponse(output *dashboard.GetCalendarOutput) CalendarResponse {
	days := make([]CalendarDayResponse, len(output.Days))
	for i, day := range output.Days {
		days[i] = CalendarDayResponse{
			Day:   day.Day,
			Spent: day.Spent.String(),
			Count: day.Count,
		}
	}
	return CalendarResponse{
		Month: output.Month,
		Days:  days,
	}
}

func toGoalProjectionResponse(goal insight.GoalProjection) GoalProjectionResponse {
	return GoalProjectionResponse{
		MonthsToGoal:    goal.MonthsToGoal,
		Unreachable:     goal.Unreachable,
		ProgressPercent: goal.ProgressPercent,
	}
}
