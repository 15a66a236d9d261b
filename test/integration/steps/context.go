// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/application/usecase/auth"
	"github.com/fintrack/backend/internal/application/usecase/budget"
	"github.com/fintrack/backend/internal/application/usecase/dashboard"
	"github.com/fintrack/backend/internal/application/usecase/transaction"
	"github.com/fintrack/backend/internal/application/usecase/user"
	"github.com/fintrack/backend/internal/infra/server/router"
	"github.com/fintrack/backend/internal/integration/adapters"
	"github.com/fintrack/backend/internal/integration/cache"
	"github.com/fintrack/backend/internal/integration/email"
	"github.com/fintrack/backend/internal/integration/entrypoint/controller"
	"github.com/fintrack/backend/internal/integration/entrypoint/middleware"
	"github.com/fintrack/backend/internal/integration/persistence"
	"github.com/fintrack/backend/internal/integration/persistence/model"
	"github.com/fintrack/backend/test/integration/mock"
)

const testJWTSecret = "integration-test-secret"

// TestContext holds the test state for each scenario.
type TestContext struct {
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	requestHeaders map[string]string

	accessToken  string
	refreshToken string

	// lastTransactionID is captured from the latest transaction response so
	// later steps can address it in URLs.
	lastTransactionID string

	db         *mock.Db
	emailQueue adapter.EmailQueueRepository
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		// Disables the login rate limiter
		os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc, err := newTestContext()
		if err != nil {
			return ctx, err
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerAuthSteps(ctx)
	registerDataSteps(ctx)
	registerResponseSteps(ctx)
}

// newTestContext wires the full application against in-memory backends.
func newTestContext() (*TestContext, error) {
	database := mock.NewDb([]any{
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.TransactionModel{},
		&model.BudgetModel{},
		&model.EmailQueueModel{},
	})
	if err := database.Reset(); err != nil {
		return nil, err
	}

	redisClient := mock.NewRedis()
	if err := mock.ClearRedis(redisClient); err != nil {
		return nil, err
	}
	dashboardCache := cache.NewDashboardCache(redisClient)

	userRepo := persistence.NewUserRepository(database.DbConn)
	tokenRepo := persistence.NewTokenRepository(database.DbConn)
	transactionRepo := persistence.NewTransactionRepository(database.DbConn)
	budgetRepo := persistence.NewBudgetRepository(database.DbConn)
	emailQueueRepo := persistence.NewEmailQueueRepository(database.DbConn)

	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
	emailService := email.NewService(emailQueueRepo)

	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, userRepo, emailService, dashboardCache)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, dashboardCache)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, dashboardCache)

	getBudgetUseCase := budget.NewGetBudgetUseCase(budgetRepo)
	upsertBudgetUseCase := budget.NewUpsertBudgetUseCase(budgetRepo, dashboardCache)

	getProfileUseCase := user.NewGetProfileUseCase(userRepo)

	getDashboardUseCase := dashboard.NewGetDashboardUseCase(transactionRepo, budgetRepo, dashboardCache)
	getInsightsUseCase := dashboard.NewGetInsightsUseCase(transactionRepo, budgetRepo)
	getCalendarUseCase := dashboard.NewGetCalendarUseCase(transactionRepo)

	healthController := controller.NewHealthController(func() bool { return true })
	authController := controller.NewAuthController(registerUseCase, loginUseCase, refreshTokenUseCase, logoutUseCase)
	userController := controller.NewUserController(getProfileUseCase)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)
	budgetController := controller.NewBudgetController(getBudgetUseCase, upsertBudgetUseCase)
	dashboardController := controller.NewDashboardController(getDashboardUseCase, getInsightsUseCase, getCalendarUseCase)

	r := router.NewRouter(
		healthController,
		authController,
		userController,
		transactionController,
		budgetController,
		dashboardController,
		middleware.NewRateLimiter(),
		middleware.NewAuthMiddleware(tokenService),
		[]string{"http://localhost"},
	)

	tc := &TestContext{
		requestHeaders: make(map[string]string),
		db:             database,
		emailQueue:     emailQueueRepo,
	}
	tc.engine = r.Setup("test")
	tc.server = httptest.NewServer(tc.engine)

	return tc, nil
}
