// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
type UpdateTransactionInput struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Title    string
	Amount   decimal.Decimal
	Category string
	Date     time.Time
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	dashboardCache  adapter.DashboardCache
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	dashboardCache adapter.DashboardCache,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		dashboardCache:  dashboardCache,
	}
}

// Execute performs the transaction update. Ownership is enforced before any
// field is touched, and the type tag is re-derived from the new amount.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if err := validateTransactionFields(input.Title, input.Amount, input.Category, input.Date); err != nil {
		return nil, err
	}

	transaction, err := uc.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	if transaction.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to modify transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	transaction.Title = input.Title
	transaction.Amount = input.Amount
	transaction.Type = entity.TypeForAmount(input.Amount)
	transaction.Category = input.Category
	if transaction.Category == "" {
		transaction.Category = entity.DefaultCategory
	}
	transaction.Date = input.Date
	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	if uc.dashboardCache != nil {
		if err := uc.dashboardCache.Invalidate(ctx, input.UserID); err != nil {
			slog.Warn("failed to invalidate dashboard cache",
				slog.String("user_id", input.UserID.String()),
				slog.String("error", err.Error()))
		}
	}

	return &UpdateTransactionOutput{Transaction: transaction}, nil
}
