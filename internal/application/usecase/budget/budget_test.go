package budget

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

// fakeBudgetRepo is an in-memory BudgetRepository keyed by user.
type fakeBudgetRepo struct {
	budgets map[uuid.UUID]*entity.Budget
}

func newFakeBudgetRepo() *fakeBudgetRepo {
	return &fakeBudgetRepo{budgets: make(map[uuid.UUID]*entity.Budget)}
}

func (r *fakeBudgetRepo) FindByUser(_ context.Context, userID uuid.UUID) (*entity.Budget, error) {
	budget, ok := r.budgets[userID]
	if !ok {
		return nil, domainerror.ErrBudgetNotFound
	}
	return budget, nil
}

func (r *fakeBudgetRepo) Upsert(_ context.Context, budget *entity.Budget) error {
	r.budgets[budget.UserID] = budget
	return nil
}

type noopCache struct{ invalidated int }

func (c *noopCache) Get(context.Context, uuid.UUID) ([]byte, error) { return nil, nil }
func (c *noopCache) Set(context.Context, uuid.UUID, []byte, time.Duration) error {
	return nil
}
func (c *noopCache) Invalidate(context.Context, uuid.UUID) error {
	c.invalidated++
	return nil
}

func TestGetBudget(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("missing budget reads as zeros", func(t *testing.T) {
		uc := NewGetBudgetUseCase(newFakeBudgetRepo())

		out, err := uc.Execute(ctx, GetBudgetInput{UserID: userID})
		require.NoError(t, err)

		assert.True(t, out.Budget.MonthlyBudget.IsZero())
		assert.True(t, out.Budget.SavingsGoal.IsZero())
		assert.Equal(t, userID, out.Budget.UserID)
	})

	t.Run("existing budget is returned as stored", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		repo.budgets[userID] = entity.NewBudget(userID, decimal.NewFromInt(3000), decimal.NewFromInt(10000))

		uc := NewGetBudgetUseCase(repo)

		out, err := uc.Execute(ctx, GetBudgetInput{UserID: userID})
		require.NoError(t, err)

		assert.True(t, out.Budget.MonthlyBudget.Equal(decimal.NewFromInt(3000)))
		assert.True(t, out.Budget.SavingsGoal.Equal(decimal.NewFromInt(10000)))
	})
}

func TestUpsertBudget(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("first save creates the record", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		cache := &noopCache{}
		uc := NewUpsertBudgetUseCase(repo, cache)

		out, err := uc.Execute(ctx, UpsertBudgetInput{
			UserID:        userID,
			MonthlyBudget: decimal.NewFromInt(2500),
			SavingsGoal:   decimal.NewFromInt(8000),
		})
		require.NoError(t, err)

		assert.True(t, out.Budget.MonthlyBudget.Equal(decimal.NewFromInt(2500)))
		assert.Len(t, repo.budgets, 1)
		assert.Equal(t, 1, cache.invalidated)
	})

	t.Run("second save updates in place", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		uc := NewUpsertBudgetUseCase(repo, &noopCache{})

		_, err := uc.Execute(ctx, UpsertBudgetInput{
			UserID:        userID,
			MonthlyBudget: decimal.NewFromInt(2500),
			SavingsGoal:   decimal.NewFromInt(8000),
		})
		require.NoError(t, err)
		firstID := repo.budgets[userID].ID

		out, err := uc.Execute(ctx, UpsertBudgetInput{
			UserID:        userID,
			MonthlyBudget: decimal.NewFromInt(4000),
			SavingsGoal:   decimal.NewFromInt(8000),
		})
		require.NoError(t, err)

		assert.Equal(t, firstID, out.Budget.ID)
		assert.True(t, repo.budgets[userID].MonthlyBudget.Equal(decimal.NewFromInt(4000)))
		assert.Len(t, repo.budgets, 1)
	})

	t.Run("rejects negative values", func(t *testing.T) {
		uc := NewUpsertBudgetUseCase(newFakeBudgetRepo(), &noopCache{})

		_, err := uc.Execute(ctx, UpsertBudgetInput{
			UserID:        userID,
			MonthlyBudget: decimal.NewFromInt(-1),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrNegativeBudget)

		_, err = uc.Execute(ctx, UpsertBudgetInput{
			UserID:      userID,
			SavingsGoal: decimal.NewFromInt(-1),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrNegativeSavingsGoal)
	})
}
