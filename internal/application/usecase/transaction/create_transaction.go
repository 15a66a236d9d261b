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
	"github.com/fintrack/backend/internal/domain/insight"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID   uuid.UUID
	Title    string
	Amount   decimal.Decimal // Negative for expenses, positive for income
	Category string
	Date     time.Time
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	userRepo        adapter.UserRepository
	emailService    adapter.EmailService
	dashboardCache  adapter.DashboardCache
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	userRepo adapter.UserRepository,
	emailService adapter.EmailService,
	dashboardCache adapter.DashboardCache,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		emailService:    emailService,
		dashboardCache:  dashboardCache,
	}
}

// Execute performs the transaction creation. The type tag is derived from
// the amount sign, never taken from the caller.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateTransactionFields(input.Title, input.Amount, input.Category, input.Date); err != nil {
		return nil, err
	}

	transaction := entity.NewTransaction(input.UserID, input.Title, input.Amount, input.Category, input.Date)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	// The dashboard is derived from the transaction set; drop the stale copy.
	if uc.dashboardCache != nil {
		if err := uc.dashboardCache.Invalidate(ctx, input.UserID); err != nil {
			slog.Warn("failed to invalidate dashboard cache",
				slog.String("user_id", input.UserID.String()),
				slog.String("error", err.Error()))
		}
	}

	uc.notifyLargeTransaction(ctx, transaction)

	return &CreateTransactionOutput{Transaction: transaction}, nil
}

// notifyLargeTransaction queues a spending alert email when the new
// transaction crosses the large-transaction threshold. Queue failures are
// logged, never surfaced: the transaction is already committed.
func (uc *CreateTransactionUseCase) notifyLargeTransaction(ctx context.Context, transaction *entity.Transaction) {
	if uc.emailService == nil || transaction.Amount.Abs().LessThan(insight.LargeTransactionThreshold) {
		return
	}

	user, err := uc.userRepo.FindByID(ctx, transaction.UserID)
	if err != nil {
		slog.Warn("failed to load user for large transaction alert",
			slog.String("user_id", transaction.UserID.String()),
			slog.String("error", err.Error()))
		return
	}

	err = uc.emailService.QueueAlertEmail(ctx, adapter.QueueAlertEmailInput{
		UserEmail: user.Email,
		UserName:  user.Name,
		Subject:   "FinTrack spending alert",
		AlertMessages: []string{
			fmt.Sprintf("Large transaction detected: %s", transaction.Amount.Abs().String()),
		},
	})
	if err != nil {
		slog.Warn("failed to queue large transaction alert",
			slog.String("user_id", transaction.UserID.String()),
			slog.String("error", err.Error()))
	}
}
