// Package dashboard contains use cases that derive dashboard views from a
// user's transactions and budget.
package dashboard

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/insight"
)

// dashboardCacheTTL bounds how stale a cached dashboard can get. Writes
// invalidate the cache eagerly, so the TTL only covers missed
// invalidations and day rollovers.
const dashboardCacheTTL = 5 * time.Minute

// GetDashboardInput represents the input for computing the dashboard view.
type GetDashboardInput struct {
	UserID uuid.UUID
}

// GetDashboardOutput represents the output of computing the dashboard view.
type GetDashboardOutput struct {
	View       insight.DerivedView
	FromCache  bool
	ComputedAt time.Time
}

// GetDashboardUseCase recomputes the full derived view for a user, serving
// a cached copy when one is fresh.
type GetDashboardUseCase struct {
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
	dashboardCache  adapter.DashboardCache
	nowFn           func() time.Time
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
// The cache may be nil, in which case every call recomputes.
func NewGetDashboardUseCase(
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
	dashboardCache adapter.DashboardCache,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		dashboardCache:  dashboardCache,
		nowFn:           time.Now,
	}
}

// WithClock overrides the clock used for day- and month-relative metrics.
func (uc *GetDashboardUseCase) WithClock(nowFn func() time.Time) *GetDashboardUseCase {
	uc.nowFn = nowFn
	return uc
}

// cachedView is the cache wire format: the view plus the clock it was
// computed with, so a cached copy from a previous day is never served.
type cachedView struct {
	View       insight.DerivedView `json:"view"`
	ComputedAt time.Time           `json:"computed_at"`
}

// Execute computes the dashboard view for the user.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	now := uc.nowFn().UTC()

	if cached, ok := uc.readCache(ctx, input.UserID, now); ok {
		return &GetDashboardOutput{
			View:       cached.View,
			FromCache:  true,
			ComputedAt: cached.ComputedAt,
		}, nil
	}

	snapshot, err := loadSnapshot(ctx, input.UserID, uc.transactionRepo, uc.budgetRepo)
	if err != nil {
		return nil, err
	}

	view := insight.Compute(snapshot, now)
	uc.writeCache(ctx, input.UserID, cachedView{View: view, ComputedAt: now})

	return &GetDashboardOutput{
		View:       view,
		FromCache:  false,
		ComputedAt: now,
	}, nil
}

// readCache returns a cached view when present and computed on the same
// calendar day. Cache failures degrade to misses.
func (uc *GetDashboardUseCase) readCache(ctx context.Context, userID uuid.UUID, now time.Time) (cachedView, bool) {
	if uc.dashboardCache == nil {
		return cachedView{}, false
	}

	payload, err := uc.dashboardCache.Get(ctx, userID)
	if err != nil {
		slog.Warn("dashboard cache read failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return cachedView{}, false
	}
	if payload == nil {
		return cachedView{}, false
	}

	var cached cachedView
	if err := json.Unmarshal(payload, &cached); err != nil {
		slog.Warn("dashboard cache payload corrupt",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return cachedView{}, false
	}

	// Daily pace depends on the calendar day the view was computed on.
	y1, m1, d1 := cached.ComputedAt.UTC().Date()
	y2, m2, d2 := now.Date()
	if y1 != y2 || m1 != m2 || d1 != d2 {
		return cachedView{}, false
	}

	return cached, true
}

func (uc *GetDashboardUseCase) writeCache(ctx context.Context, userID uuid.UUID, cached cachedView) {
	if uc.dashboardCache == nil {
		return
	}

	payload, err := json.Marshal(cached)
	if err != nil {
		slog.Warn("dashboard cache payload marshal failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return
	}

	if err := uc.dashboardCache.Set(ctx, userID, payload, dashboardCacheTTL); err != nil {
		slog.Warn("dashboard cache write failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
	}
}
