package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// fakeTransactionRepo is an in-memory TransactionRepository for use case tests.
type fakeTransactionRepo struct {
	transactions map[uuid.UUID]*entity.Transaction
	createErr    error
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{transactions: make(map[uuid.UUID]*entity.Transaction)}
}

func (r *fakeTransactionRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.transactions[transaction.ID] = transaction
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	transaction, ok := r.transactions[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	return transaction, nil
}

func (r *fakeTransactionRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.transactions {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, transaction *entity.Transaction) error {
	r.transactions[transaction.ID] = transaction
	return nil
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.transactions, id)
	return nil
}

func (r *fakeTransactionRepo) ExistsByIDAndUser(_ context.Context, id uuid.UUID, userID uuid.UUID) (bool, error) {
	transaction, ok := r.transactions[id]
	return ok && transaction.UserID == userID, nil
}

// fakeUserRepo serves a single fixed user.
type fakeUserRepo struct {
	user *entity.User
}

func (r *fakeUserRepo) Create(context.Context, *entity.User) error { return nil }
func (r *fakeUserRepo) Update(context.Context, *entity.User) error { return nil }
func (r *fakeUserRepo) ExistsByEmail(context.Context, string) (bool, error) {
	return false, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if r.user == nil || r.user.ID != id {
		return nil, domainerror.ErrUserNotFound
	}
	return r.user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.user == nil || r.user.Email != email {
		return nil, domainerror.ErrUserNotFound
	}
	return r.user, nil
}

// fakeEmailService records queued alert emails.
type fakeEmailService struct {
	queued []adapter.QueueAlertEmailInput
}

func (s *fakeEmailService) QueueAlertEmail(_ context.Context, input adapter.QueueAlertEmailInput) error {
	s.queued = append(s.queued, input)
	return nil
}

// fakeCache records invalidations.
type fakeCache struct {
	payloads    map[uuid.UUID][]byte
	invalidated int
	getErr      error
	setErr      error
}

func newFakeCache() *fakeCache {
	return &fakeCache{payloads: make(map[uuid.UUID][]byte)}
}

func (c *fakeCache) Get(_ context.Context, userID uuid.UUID) ([]byte, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.payloads[userID], nil
}

func (c *fakeCache) Set(_ context.Context, userID uuid.UUID, payload []byte, _ time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.payloads[userID] = payload
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context, userID uuid.UUID) error {
	c.invalidated++
	delete(c.payloads, userID)
	return nil
}

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	user := entity.NewUser("ravi@example.com", "Ravi", "hash")
	user.ID = userID
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	newUseCase := func() (*CreateTransactionUseCase, *fakeTransactionRepo, *fakeEmailService, *fakeCache) {
		repo := newFakeTransactionRepo()
		emails := &fakeEmailService{}
		cache := newFakeCache()
		uc := NewCreateTransactionUseCase(repo, &fakeUserRepo{user: user}, emails, cache)
		return uc, repo, emails, cache
	}

	t.Run("derives type from amount sign", func(t *testing.T) {
		uc, repo, _, _ := newUseCase()

		out, err := uc.Execute(ctx, CreateTransactionInput{
			UserID: userID,
			Title:  "Groceries",
			Amount: decimal.NewFromInt(-250),
			Date:   date,
		})
		require.NoError(t, err)

		assert.Equal(t, entity.TransactionTypeExpense, out.Transaction.Type)
		assert.Equal(t, entity.DefaultCategory, out.Transaction.Category)
		assert.Len(t, repo.transactions, 1)
	})

	t.Run("rejects zero amounts", func(t *testing.T) {
		uc, _, _, _ := newUseCase()

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID: userID,
			Title:  "Nothing",
			Amount: decimal.Zero,
			Date:   date,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrZeroTransactionAmount)
	})

	t.Run("rejects empty titles", func(t *testing.T) {
		uc, _, _, _ := newUseCase()

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID: userID,
			Title:  "   ",
			Amount: decimal.NewFromInt(100),
			Date:   date,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrEmptyTransactionTitle)
	})

	t.Run("invalidates the dashboard cache", func(t *testing.T) {
		uc, _, _, cache := newUseCase()

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID: userID,
			Title:  "Rent",
			Amount: decimal.NewFromInt(-800),
			Date:   date,
		})
		require.NoError(t, err)

		assert.Equal(t, 1, cache.invalidated)
	})

	t.Run("queues an alert email at the large transaction threshold", func(t *testing.T) {
		uc, _, emails, _ := newUseCase()

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID: userID,
			Title:  "New laptop",
			Amount: decimal.NewFromInt(-10000),
			Date:   date,
		})
		require.NoError(t, err)

		require.Len(t, emails.queued, 1)
		assert.Equal(t, "ravi@example.com", emails.queued[0].UserEmail)
		assert.Contains(t, emails.queued[0].AlertMessages[0], "Large transaction detected: 10000")
	})

	t.Run("no alert email below the threshold", func(t *testing.T) {
		uc, _, emails, _ := newUseCase()

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID: userID,
			Title:  "Almost large",
			Amount: decimal.NewFromInt(-9999),
			Date:   date,
		})
		require.NoError(t, err)

		assert.Empty(t, emails.queued)
	})
}

func TestUpdateTransaction(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	t.Run("re-derives the type tag", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		existing := entity.NewTransaction(userID, "Refund pending", decimal.NewFromInt(-100), "Shopping", date)
		repo.transactions[existing.ID] = existing

		uc := NewUpdateTransactionUseCase(repo, newFakeCache())

		out, err := uc.Execute(ctx, UpdateTransactionInput{
			ID:       existing.ID,
			UserID:   userID,
			Title:    "Refund received",
			Amount:   decimal.NewFromInt(100),
			Category: "Shopping",
			Date:     date,
		})
		require.NoError(t, err)

		assert.Equal(t, entity.TransactionTypeIncome, out.Transaction.Type)
	})

	t.Run("rejects updates to another user's transaction", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		existing := entity.NewTransaction(uuid.New(), "Not yours", decimal.NewFromInt(-100), "", date)
		repo.transactions[existing.ID] = existing

		uc := NewUpdateTransactionUseCase(repo, newFakeCache())

		_, err := uc.Execute(ctx, UpdateTransactionInput{
			ID:     existing.ID,
			UserID: userID,
			Title:  "Hijack",
			Amount: decimal.NewFromInt(-1),
			Date:   date,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrNotAuthorizedToModifyTransaction)
	})
}

func TestDeleteTransaction(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	t.Run("deletes own transaction and invalidates cache", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		existing := entity.NewTransaction(userID, "Coffee", decimal.NewFromInt(-5), "", date)
		repo.transactions[existing.ID] = existing
		cache := newFakeCache()

		uc := NewDeleteTransactionUseCase(repo, cache)

		_, err := uc.Execute(ctx, DeleteTransactionInput{ID: existing.ID, UserID: userID})
		require.NoError(t, err)

		assert.Empty(t, repo.transactions)
		assert.Equal(t, 1, cache.invalidated)
	})

	t.Run("another user's transaction reads as not found", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		existing := entity.NewTransaction(uuid.New(), "Not yours", decimal.NewFromInt(-5), "", date)
		repo.transactions[existing.ID] = existing

		uc := NewDeleteTransactionUseCase(repo, newFakeCache())

		_, err := uc.Execute(ctx, DeleteTransactionInput{ID: existing.ID, UserID: userID})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrTransactionNotFound)
		assert.Len(t, repo.transactions, 1)
	})
}

func TestCreateTransactionRepoFailure(t *testing.T) {
	repo := newFakeTransactionRepo()
	repo.createErr = errors.New("connection reset")
	uc := NewCreateTransactionUseCase(repo, &fakeUserRepo{}, &fakeEmailService{}, newFakeCache())

	_, err := uc.Execute(context.Background(), CreateTransactionInput{
		UserID: uuid.New(),
		Title:  "Groceries",
		Amount: decimal.NewFromInt(-100),
		Date:   time.Now(),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create transaction")
}
