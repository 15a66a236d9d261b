// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/adapter"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteTransactionOutput represents the output of transaction deletion.
type DeleteTransactionOutput struct {
	Message string
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	dashboardCache  adapter.DashboardCache
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	dashboardCache adapter.DashboardCache,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		dashboardCache:  dashboardCache,
	}
}

// Execute soft-deletes the transaction after an ownership check.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	exists, err := uc.transactionRepo.ExistsByIDAndUser(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check transaction ownership: %w", err)
	}
	if !exists {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	if err := uc.transactionRepo.Delete(ctx, input.ID); err != nil {
		return nil, fmt.Errorf("failed to delete transaction: %w", err)
	}

	if uc.dashboardCache != nil {
		if err := uc.dashboardCache.Invalidate(ctx, input.UserID); err != nil {
			slog.Warn("failed to invalidate dashboard cache",
				slog.String("user_id", input.UserID.String()),
				slog.String("error", err.Error()))
		}
	}

	return &DeleteTransactionOutput{Message: "Transaction deleted"}, nil
}
