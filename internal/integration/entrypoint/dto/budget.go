package dto

import (
	"github.com/fintrack/backend/internal/domain/entity"
)

// UpsertBudgetRequest represents the request body for saving the budget and
// savings goal. Both values must be non-negative; zero clears them.
type UpsertBudgetRequest struct {
	MonthlyBudget float64 `json:"monthly_budget" binding:"gte=0"`
	SavingsGoal   float64 `json:"savings_goal" binding:"gte=0"`
}

// BudgetResponse represents the user's budget settings in API responses.
type BudgetResponse struct {
	MonthlyBudget string `json:"monthly_budget"`
	SavingsGoal   string `json:"savings_goal"`
	UpdatedAt     string `json:"updated_at"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	return BudgetResponse{
		MonthlyBudget: b.MonthlyBudget.String(),
		SavingsGoal:   b.SavingsGoal.String(),
		UpdatedAt:     b.UpdatedAt.Format(timeFormat),
	}
}
