package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

type fakeTransactionRepo struct {
	transactions []*entity.Transaction
	calls        int
}

func (r *fakeTransactionRepo) Create(context.Context, *entity.Transaction) error { return nil }
func (r *fakeTransactionRepo) Update(context.Context, *entity.Transaction) error { return nil }
func (r *fakeTransactionRepo) Delete(context.Context, uuid.UUID) error           { return nil }

func (r *fakeTransactionRepo) FindByID(context.Context, uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) FindByUser(context.Context, uuid.UUID) ([]*entity.Transaction, error) {
	r.calls++
	return r.transactions, nil
}

func (r *fakeTransactionRepo) ExistsByIDAndUser(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return false, nil
}

type fakeBudgetRepo struct {
	budget *entity.Budget
}

func (r *fakeBudgetRepo) FindByUser(_ context.Context, userID uuid.UUID) (*entity.Budget, error) {
	if r.budget == nil {
		return nil, domainerror.ErrBudgetNotFound
	}
	return r.budget, nil
}

func (r *fakeBudgetRepo) Upsert(context.Context, *entity.Budget) error { return nil }

type memoryCache struct {
	payloads map[uuid.UUID][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{payloads: make(map[uuid.UUID][]byte)}
}

func (c *memoryCache) Get(_ context.Context, userID uuid.UUID) ([]byte, error) {
	return c.payloads[userID], nil
}

func (c *memoryCache) Set(_ context.Context, userID uuid.UUID, payload []byte, _ time.Duration) error {
	c.payloads[userID] = payload
	return nil
}

func (c *memoryCache) Invalidate(_ context.Context, userID uuid.UUID) error {
	delete(c.payloads, userID)
	return nil
}

func transactionsFor(userID uuid.UUID, now time.Time) []*entity.Transaction {
	salary := entity.NewTransaction(userID, "Salary", decimal.NewFromInt(5000), "Income", now.AddDate(0, 0, -5))
	rent := entity.NewTransaction(userID, "Rent", decimal.NewFromInt(-1500), "Housing", now.AddDate(0, 0, -3))
	coffee := entity.NewTransaction(userID, "Coffee", decimal.NewFromInt(-50), "Food", now)
	return []*entity.Transaction{salary, rent, coffee}
}

func TestGetDashboard(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	t.Run("computes the derived view from the snapshot", func(t *testing.T) {
		txRepo := &fakeTransactionRepo{transactions: transactionsFor(userID, now)}
		budgetRepo := &fakeBudgetRepo{budget: entity.NewBudget(userID, decimal.NewFromInt(2000), decimal.NewFromInt(10000))}

		uc := NewGetDashboardUseCase(txRepo, budgetRepo, nil).WithClock(clock)

		out, err := uc.Execute(ctx, GetDashboardInput{UserID: userID})
		require.NoError(t, err)

		assert.False(t, out.FromCache)
		// balance = budget + income - expense = 2000 + 5000 - 1550
		assert.True(t, out.View.Totals.Balance.Equal(decimal.NewFromInt(5450)))
		assert.Len(t, out.View.Categories, 2)
		assert.True(t, out.View.DailyPace.TodaySpent.Equal(decimal.NewFromInt(50)))
	})

	t.Run("missing budget reads as zeros", func(t *testing.T) {
		txRepo := &fakeTransactionRepo{transactions: transactionsFor(userID, now)}

		uc := NewGetDashboardUseCase(txRepo, &fakeBudgetRepo{}, nil).WithClock(clock)

		out, err := uc.Execute(ctx, GetDashboardInput{UserID: userID})
		require.NoError(t, err)

		assert.True(t, out.View.Totals.Balance.Equal(decimal.NewFromInt(3450)))
		assert.False(t, out.View.Goal.Unreachable)
	})

	t.Run("second call is served from cache", func(t *testing.T) {
		txRepo := &fakeTransactionRepo{transactions: transactionsFor(userID, now)}
		budgetRepo := &fakeBudgetRepo{}
		cache := newMemoryCache()

		uc := NewGetDashboardUseCase(txRepo, budgetRepo, cache).WithClock(clock)

		first, err := uc.Execute(ctx, GetDashboardInput{UserID: userID})
		require.NoError(t, err)
		second, err := uc.Execute(ctx, GetDashboardInput{UserID: userID})
		require.NoError(t, err)

		assert.False(t, first.FromCache)
		assert.True(t, second.FromCache)
		assert.Equal(t, 1, txRepo.calls)
		assert.True(t, first.View.Totals.Balance.Equal(second.View.Totals.Balance))
	})

	t.Run("cache from a previous day is ignored", func(t *testing.T) {
		txRepo := &fakeTransactionRepo{transactions: transactionsFor(userID, now)}
		cache := newMemoryCache()

		uc := NewGetDashboardUseCase(txRepo, &fakeBudgetRepo{}, cache).WithClock(clock)
		_, err := uc.Execute(ctx, GetDashboardInput{UserID: userID})
		require.NoError(t, err)

		// Same cache, next day: daily pace must be recomputed.
		uc.WithClock(func() time.Time { return now.AddDate(0, 0, 1) })
		out, err := uc.Execute(ctx, GetDashboardInput{UserID: userID})
		require.NoError(t, err)

		assert.False(t, out.FromCache)
		assert.Equal(t, 2, txRepo.calls)
		assert.True(t, out.View.DailyPace.TodaySpent.IsZero())
	})

	t.Run("corrupt cache payload degrades to a recompute", func(t *testing.T) {
		txRepo := &fakeTransactionRepo{transactions: transactionsFor(userID, now)}
		cache := newMemoryCache()
		cache.payloads[userID] = []byte("{not json")

		uc := NewGetDashboardUseCase(txRepo, &fakeBudgetRepo{}, cache).WithClock(clock)

		out, err := uc.Execute(ctx, GetDashboardInput{UserID: userID})
		require.NoError(t, err)
		assert.False(t, out.FromCache)
	})
}

func TestGetInsights(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	t.Run("cards cover goal, budget and top category", func(t *testing.T) {
		txRepo := &fakeTransactionRepo{transactions: transactionsFor(userID, now)}
		budgetRepo := &fakeBudgetRepo{budget: entity.NewBudget(userID, decimal.NewFromInt(2000), decimal.NewFromInt(10000))}

		uc := NewGetInsightsUseCase(txRepo, budgetRepo).WithClock(clock)

		out, err := uc.Execute(ctx, GetInsightsInput{UserID: userID})
		require.NoError(t, err)

		kinds := make(map[string]InsightCard, len(out.Cards))
		for _, card := range out.Cards {
			kinds[card.Kind] = card
		}

		require.Contains(t, kinds, CardGoalTimeline)
		require.Contains(t, kinds, CardBudgetUsage)
		require.Contains(t, kinds, CardTopCategory)

		// expense 1550 of budget 2000 is 78%.
		assert.Equal(t, "You have used 78% of your monthly budget", kinds[CardBudgetUsage].Message)
		assert.Contains(t, kinds[CardTopCategory].Message, "Housing")
	})

	t.Run("no goal set prompts for one", func(t *testing.T) {
		txRepo := &fakeTransactionRepo{transactions: transactionsFor(userID, now)}

		uc := NewGetInsightsUseCase(txRepo, &fakeBudgetRepo{}).WithClock(clock)

		out, err := uc.Execute(ctx, GetInsightsInput{UserID: userID})
		require.NoError(t, err)

		require.NotEmpty(t, out.Cards)
		assert.Equal(t, CardGoalTimeline, out.Cards[0].Kind)
		assert.Equal(t, "Set a savings goal to see your timeline", out.Cards[0].Message)
	})
}

func TestGetCalendar(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

	txRepo := &fakeTransactionRepo{transactions: transactionsFor(userID, now)}
	uc := NewGetCalendarUseCase(txRepo).WithClock(func() time.Time { return now })

	out, err := uc.Execute(ctx, GetCalendarInput{UserID: userID})
	require.NoError(t, err)

	assert.Equal(t, "March 2025", out.Month)
	require.Len(t, out.Days, 31)
	assert.True(t, out.Days[14].Spent.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, 1, out.Days[14].Count)
}
