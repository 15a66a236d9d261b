// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
// Each user has at most one budget record.
type BudgetRepository interface {
	// FindByUser retrieves the budget for a given user.
	// Returns domain ErrBudgetNotFound when no record exists yet.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Budget, error)

	// Upsert creates the user's budget record or updates the existing one.
	Upsert(ctx context.Context, budget *entity.Budget) error
}
