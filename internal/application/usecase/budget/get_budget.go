// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// GetBudgetInput represents the input for fetching the user's budget.
type GetBudgetInput struct {
	UserID uuid.UUID
}

// GetBudgetOutput represents the output of fetching the user's budget.
type GetBudgetOutput struct {
	Budget *entity.Budget
}

// GetBudgetUseCase handles budget retrieval logic.
type GetBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewGetBudgetUseCase creates a new GetBudgetUseCase instance.
func NewGetBudgetUseCase(budgetRepo adapter.BudgetRepository) *GetBudgetUseCase {
	return &GetBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute fetches the user's budget. A user who never saved one gets zero
// values, not an error: the dashboard treats an absent budget as zero.
func (uc *GetBudgetUseCase) Execute(ctx context.Context, input GetBudgetInput) (*GetBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return &GetBudgetOutput{Budget: entity.ZeroBudget(input.UserID)}, nil
		}
		return nil, fmt.Errorf("failed to fetch budget: %w", err)
	}

	return &GetBudgetOutput{Budget: budget}, nil
}
