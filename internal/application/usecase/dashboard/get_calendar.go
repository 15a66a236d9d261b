// Package dashboard contains use cases that derive dashboard views from a
// user's transactions and budget.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/insight"
)

// GetCalendarInput represents the input for the spending calendar.
type GetCalendarInput struct {
	UserID uuid.UUID
}

// GetCalendarOutput represents the output of the spending calendar.
type GetCalendarOutput struct {
	Month string
	Days  []insight.DaySpend
}

// GetCalendarUseCase derives the per-day spending for the current month.
type GetCalendarUseCase struct {
	transactionRepo adapter.TransactionRepository
	nowFn           func() time.Time
}

// NewGetCalendarUseCase creates a new GetCalendarUseCase instance.
func NewGetCalendarUseCase(transactionRepo adapter.TransactionRepository) *GetCalendarUseCase {
	return &GetCalendarUseCase{
		transactionRepo: transactionRepo,
		nowFn:           time.Now,
	}
}

// WithClock overrides the clock used to pick the calendar month.
func (uc *GetCalendarUseCase) WithClock(nowFn func() time.Time) *GetCalendarUseCase {
	uc.nowFn = nowFn
	return uc
}

// Execute computes the spending calendar for the current month.
func (uc *GetCalendarUseCase) Execute(ctx context.Context, input GetCalendarInput) (*GetCalendarOutput, error) {
	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	now := uc.nowFn().UTC()

	return &GetCalendarOutput{
		Month: now.Format("January 2006"),
		Days:  insight.DailySpending(transactions, now),
	}, nil
}
