package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

type fakeUserRepo struct {
	usersByEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{usersByEmail: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.usersByEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range r.usersByEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.usersByEmail[email]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.usersByEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.usersByEmail[email]
	return ok, nil
}

// fakePasswordService hashes by prefixing, which keeps assertions readable.
type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return domainerror.ErrWeakPassword
	}
	return nil
}

type fakeTokenService struct {
	issued      int
	invalidated map[string]bool
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{invalidated: make(map[string]bool)}
}

func (s *fakeTokenService) GenerateTokenPair(_ context.Context, userID uuid.UUID, email string) (*adapter.TokenPair, error) {
	s.issued++
	return &adapter.TokenPair{
		AccessToken:  fmt.Sprintf("access-%d-%s", s.issued, email),
		RefreshToken: fmt.Sprintf("refresh-%d-%s", s.issued, userID),
	}, nil
}

func (s *fakeTokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeTokenService) ValidateRefreshToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	if token != "known-refresh" {
		return nil, domainerror.ErrInvalidToken
	}
	return &adapter.TokenClaims{UserID: uuid.New(), Email: "known@example.com"}, nil
}

func (s *fakeTokenService) InvalidateRefreshToken(_ context.Context, token string) error {
	s.invalidated[token] = true
	return nil
}

func (s *fakeTokenService) InvalidateAllUserTokens(_ context.Context, _ uuid.UUID) error {
	return nil
}

func (s *fakeTokenService) IsRefreshTokenValid(_ context.Context, token string) (bool, error) {
	return !s.invalidated[token], nil
}

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user and issues tokens", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := NewRegisterUserUseCase(repo, fakePasswordService{}, newFakeTokenService())

		out, err := uc.Execute(ctx, RegisterUserInput{
			Email:    "  Alice@Example.COM ",
			Name:     "Alice",
			Password: "supersecret",
		})

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", out.User.Email)
		assert.Equal(t, "hashed:supersecret", out.User.PasswordHash)
		assert.Equal(t, entity.DefaultCurrency, out.User.Currency)
		assert.NotEmpty(t, out.AccessToken)
		assert.NotEmpty(t, out.RefreshToken)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newFakeUserRepo(), fakePasswordService{}, newFakeTokenService())

		_, err := uc.Execute(ctx, RegisterUserInput{
			Email:    "not-an-email",
			Name:     "Alice",
			Password: "supersecret",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrInvalidEmail)
	})

	t.Run("rejects weak password", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newFakeUserRepo(), fakePasswordService{}, newFakeTokenService())

		_, err := uc.Execute(ctx, RegisterUserInput{
			Email:    "alice@example.com",
			Name:     "Alice",
			Password: "short",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrWeakPassword)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := NewRegisterUserUseCase(repo, fakePasswordService{}, newFakeTokenService())

		_, err := uc.Execute(ctx, RegisterUserInput{
			Email:    "alice@example.com",
			Name:     "Alice",
			Password: "supersecret",
		})
		require.NoError(t, err)

		_, err = uc.Execute(ctx, RegisterUserInput{
			Email:    "ALICE@example.com",
			Name:     "Other Alice",
			Password: "supersecret",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrEmailAlreadyExists)
	})
}

func TestLoginUser(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*LoginUserUseCase, *fakeUserRepo) {
		t.Helper()
		repo := newFakeUserRepo()
		register := NewRegisterUserUseCase(repo, fakePasswordService{}, newFakeTokenService())
		_, err := register.Execute(ctx, RegisterUserInput{
			Email:    "alice@example.com",
			Name:     "Alice",
			Password: "supersecret",
		})
		require.NoError(t, err)
		return NewLoginUserUseCase(repo, fakePasswordService{}, newFakeTokenService()), repo
	}

	t.Run("valid credentials", func(t *testing.T) {
		uc, _ := setup(t)

		out, err := uc.Execute(ctx, LoginUserInput{
			Email:    "Alice@Example.com",
			Password: "supersecret",
		})

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", out.User.Email)
		assert.NotEmpty(t, out.AccessToken)
	})

	t.Run("wrong password yields generic error", func(t *testing.T) {
		uc, _ := setup(t)

		_, err := uc.Execute(ctx, LoginUserInput{
			Email:    "alice@example.com",
			Password: "wrongpassword",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrInvalidCredentials)
	})

	t.Run("unknown email yields the same generic error", func(t *testing.T) {
		uc, _ := setup(t)

		_, err := uc.Execute(ctx, LoginUserInput{
			Email:    "nobody@example.com",
			Password: "supersecret",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrInvalidCredentials)
	})
}

func TestRefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("rotates the refresh token", func(t *testing.T) {
		tokens := newFakeTokenService()
		uc := NewRefreshTokenUseCase(tokens)

		out, err := uc.Execute(ctx, RefreshTokenInput{RefreshToken: "known-refresh"})

		require.NoError(t, err)
		assert.NotEmpty(t, out.AccessToken)
		assert.NotEmpty(t, out.RefreshToken)
		assert.True(t, tokens.invalidated["known-refresh"], "old token must be invalidated")
	})

	t.Run("rejects an unknown token", func(t *testing.T) {
		uc := NewRefreshTokenUseCase(newFakeTokenService())

		_, err := uc.Execute(ctx, RefreshTokenInput{RefreshToken: "garbage"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
	})

	t.Run("rejects a revoked token", func(t *testing.T) {
		tokens := newFakeTokenService()
		tokens.invalidated["known-refresh"] = true
		uc := NewRefreshTokenUseCase(tokens)

		_, err := uc.Execute(ctx, RefreshTokenInput{RefreshToken: "known-refresh"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrRevokedToken)

		var authErr *domainerror.AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, domainerror.ErrCodeRevokedToken, authErr.Code)
	})
}

func TestLogoutUser(t *testing.T) {
	ctx := context.Background()

	tokens := newFakeTokenService()
	uc := NewLogoutUserUseCase(tokens)

	out, err := uc.Execute(ctx, LogoutUserInput{RefreshToken: "known-refresh"})

	require.NoError(t, err)
	assert.Equal(t, "Successfully logged out", out.Message)
	assert.True(t, tokens.invalidated["known-refresh"])
}
