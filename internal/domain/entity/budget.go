// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget represents a user's budget/goal record in FinTrack.
// There is at most one per user; it is upserted as a whole.
type Budget struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	MonthlyBudget decimal.Decimal // Starting balance assumption for the current month
	SavingsGoal   decimal.Decimal // Target liquidity
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(userID uuid.UUID, monthlyBudget, savingsGoal decimal.Decimal) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:            uuid.New(),
		UserID:        userID,
		MonthlyBudget: monthlyBudget,
		SavingsGoal:   savingsGoal,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ZeroBudget returns the default budget used when a user has no stored
// record: zero monthly budget and zero savings goal.
func ZeroBudget(userID uuid.UUID) *Budget {
	return &Budget{
		UserID:        userID,
		MonthlyBudget: decimal.Zero,
		SavingsGoal:   decimal.Zero,
	}
}
