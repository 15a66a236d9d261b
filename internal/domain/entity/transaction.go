// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
// It is a redundant tag mirroring the sign of Amount; the sign is the
// source of truth everywhere amounts are aggregated.
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// DefaultCategory is the category assigned to transactions created without one.
const DefaultCategory = "General"

// Transaction represents a single signed ledger entry in FinTrack.
// Positive amounts are income, negative amounts are expenses.
type Transaction struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Amount    decimal.Decimal // Negative for expenses, positive for income
	Type      TransactionType
	Category  string
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity. The type tag is derived
// from the amount sign and the category falls back to DefaultCategory.
func NewTransaction(
	userID uuid.UUID,
	title string,
	amount decimal.Decimal,
	category string,
	date time.Time,
) *Transaction {
	now := time.Now().UTC()

	if category == "" {
		category = DefaultCategory
	}

	return &Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Amount:    amount,
		Type:      TypeForAmount(amount),
		Category:  category,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TypeForAmount derives the transaction type tag from the amount sign.
// Zero amounts are tagged as expenses; they contribute to neither side of
// any aggregation.
func TypeForAmount(amount decimal.Decimal) TransactionType {
	if amount.IsPositive() {
		return TransactionTypeIncome
	}
	return TransactionTypeExpense
}
