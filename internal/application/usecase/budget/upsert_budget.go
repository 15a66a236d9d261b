// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// UpsertBudgetInput represents the input for saving the user's budget.
type UpsertBudgetInput struct {
	UserID        uuid.UUID
	MonthlyBudget decimal.Decimal
	SavingsGoal   decimal.Decimal
}

// UpsertBudgetOutput represents the output of saving the user's budget.
type UpsertBudgetOutput struct {
	Budget *entity.Budget
}

// UpsertBudgetUseCase handles budget creation and update logic.
type UpsertBudgetUseCase struct {
	budgetRepo     adapter.BudgetRepository
	dashboardCache adapter.DashboardCache
}

// NewUpsertBudgetUseCase creates a new UpsertBudgetUseCase instance.
func NewUpsertBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	dashboardCache adapter.DashboardCache,
) *UpsertBudgetUseCase {
	return &UpsertBudgetUseCase{
		budgetRepo:     budgetRepo,
		dashboardCache: dashboardCache,
	}
}

// Execute saves the user's single budget record, creating it on first use.
func (uc *UpsertBudgetUseCase) Execute(ctx context.Context, input UpsertBudgetInput) (*UpsertBudgetOutput, error) {
	if input.MonthlyBudget.IsNegative() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeNegativeBudget,
			"monthly budget cannot be negative",
			domainerror.ErrNegativeBudget,
		)
	}
	if input.SavingsGoal.IsNegative() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeNegativeSavingsGoal,
			"savings goal cannot be negative",
			domainerror.ErrNegativeSavingsGoal,
		)
	}

	budget, err := uc.budgetRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		if !errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, fmt.Errorf("failed to fetch budget: %w", err)
		}
		budget = entity.NewBudget(input.UserID, input.MonthlyBudget, input.SavingsGoal)
	} else {
		budget.MonthlyBudget = input.MonthlyBudget
		budget.SavingsGoal = input.SavingsGoal
		budget.UpdatedAt = time.Now().UTC()
	}

	if err := uc.budgetRepo.Upsert(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}

	// The budget feeds the derived dashboard; drop the stale copy.
	if uc.dashboardCache != nil {
		if err := uc.dashboardCache.Invalidate(ctx, input.UserID); err != nil {
			slog.Warn("failed to invalidate dashboard cache",
				slog.String("user_id", input.UserID.String()),
				slog.String("error", err.Error()))
		}
	}

	return &UpsertBudgetOutput{Budget: budget}, nil
}
