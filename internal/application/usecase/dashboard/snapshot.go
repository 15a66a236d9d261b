// Package dashboard contains use cases that derive dashboard views from a
// user's transactions and budget.
package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/adapter"
	domainerror "github.com/fintrack/backend/internal/domain/error"
	"github.com/fintrack/backend/internal/domain/insight"
)

// loadSnapshot gathers the engine input for one user: the full transaction
// set plus the budget scalars. A missing budget record reads as zeros.
func loadSnapshot(
	ctx context.Context,
	userID uuid.UUID,
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
) (insight.Snapshot, error) {
	transactions, err := transactionRepo.FindByUser(ctx, userID)
	if err != nil {
		return insight.Snapshot{}, fmt.Errorf("failed to load transactions: %w", err)
	}

	snapshot := insight.Snapshot{Transactions: transactions}

	budget, err := budgetRepo.FindByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, domainerror.ErrBudgetNotFound) {
			return insight.Snapshot{}, fmt.Errorf("failed to load budget: %w", err)
		}
		return snapshot, nil
	}

	snapshot.MonthlyBudget = budget.MonthlyBudget
	snapshot.SavingsGoal = budget.SavingsGoal
	return snapshot, nil
}
