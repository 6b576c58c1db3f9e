// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	aicategorization "github.com/expenso/backend/internal/application/usecase/ai_categorization"
	"github.com/expenso/backend/internal/application/usecase/auth"
	"github.com/expenso/backend/internal/application/usecase/budget"
	"github.com/expenso/backend/internal/application/usecase/debt"
	"github.com/expenso/backend/internal/application/usecase/expense"
	"github.com/expenso/backend/internal/application/usecase/investmentplan"
	"github.com/expenso/backend/internal/application/usecase/loan"
	"github.com/expenso/backend/internal/application/usecase/obligation"
	"github.com/expenso/backend/internal/application/usecase/report"
	"github.com/expenso/backend/internal/application/usecase/stock"
	"github.com/expenso/backend/internal/infra/server/router"
	"github.com/expenso/backend/internal/integration/adapters"
	"github.com/expenso/backend/internal/integration/email"
	"github.com/expenso/backend/internal/integration/entrypoint/controller"
	"github.com/expenso/backend/internal/integration/entrypoint/middleware"
	"github.com/expenso/backend/internal/integration/persistence"
	"github.com/expenso/backend/internal/integration/persistence/model"
	"github.com/expenso/backend/test/integration/mock"
)

const (
	testJWTSecret  = "test-jwt-secret-key-for-testing-purposes"
	testAppBaseURL = "http://localhost:3000"
)

var (
	serverInit     sync.Once
	testDB         *mock.Db
	testServerPort int
	portInit       sync.Once
)

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("expenso", map[string]any{
			"users":                 &model.UserModel{},
			"refresh_tokens":        &model.RefreshTokenModel{},
			"password_reset_tokens": &model.PasswordResetTokenModel{},
			"expenses":              &model.ExpenseModel{},
			"debts":                 &model.DebtModel{},
			"investment_plans":      &model.InvestmentPlanModel{},
			"stock_holdings":        &model.StockHoldingModel{},
			"loans":                 &model.LoanModel{},
			"obligations":           &model.ObligationModel{},
			"monthly_budgets":       &model.MonthlyBudgetModel{},
			"report_archives":       &model.ReportArchiveModel{},
			"email_jobs":            &model.EmailQueueModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^a password reset token exists for "([^"]*)"$`, test.aPasswordResetTokenExistsFor)
	ctx.Given(`^an expired password reset token exists$`, test.anExpiredPasswordResetTokenExists)

	// Record seeding steps
	ctx.Given(`^the user has an expense of "([^"]*)" in category "([^"]*)" on "([^"]*)"$`, test.theUserHasAnExpense)
	ctx.Given(`^the user has a "([^"]*)" debt of "([^"]*)" with counterparty "([^"]*)"$`, test.theUserHasADebt)
	ctx.Given(`^the user has an active investment plan "([^"]*)" of "([^"]*)" monthly at "([^"]*)" percent for (\d+) months$`, test.theUserHasAnInvestmentPlan)
	ctx.Given(`^the user has a stock holding "([^"]*)" of "([^"]*)" shares bought at "([^"]*)" now at "([^"]*)"$`, test.theUserHasAStockHolding)
	ctx.Given(`^the user has a pending loan from "([^"]*)" of "([^"]*)" at "([^"]*)" percent interest$`, test.theUserHasAPendingLoan)
	ctx.Given(`^the user has a pending "([^"]*)" obligation "([^"]*)" of "([^"]*)" due on "([^"]*)"$`, test.theUserHasAPendingObligation)
	ctx.Given(`^the user has a monthly budget of "([^"]*)" for "([^"]*)"$`, test.theUserHasAMonthlyBudget)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response header "([^"]*)" should contain "([^"]*)"$`, test.theResponseHeaderShouldContain)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

			dbConn := testDB.DbConn

			// Repositories
			userRepo := persistence.NewUserRepository(dbConn)
			tokenRepo := persistence.NewTokenRepository(dbConn)
			expenseRepo := persistence.NewExpenseRepository(dbConn)
			debtRepo := persistence.NewDebtRepository(dbConn)
			planRepo := persistence.NewInvestmentPlanRepository(dbConn)
			stockRepo := persistence.NewStockRepository(dbConn)
			loanRepo := persistence.NewLoanRepository(dbConn)
			obligationRepo := persistence.NewObligationRepository(dbConn)
			budgetRepo := persistence.NewBudgetRepository(dbConn)
			reportRepo := persistence.NewReportRepository(dbConn)
			reportArchiveRepo := persistence.NewReportArchiveRepository(dbConn)
			emailQueueRepo := persistence.NewEmailQueueRepository(dbConn)

			// Adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
			resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
			geminiService := adapters.NewGeminiService("")
			emailService := email.NewService(emailQueueRepo, testAppBaseURL)

			// Auth use cases
			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
			forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, testAppBaseURL)
			resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)
			deleteAccountUseCase := auth.NewDeleteAccountUseCase(userRepo, passwordService, tokenService)

			// Record use cases
			listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
			createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo)
			updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo)
			deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)

			listDebtsUseCase := debt.NewListDebtsUseCase(debtRepo)
			createDebtUseCase := debt.NewCreateDebtUseCase(debtRepo)
			settleDebtUseCase := debt.NewSettleDebtUseCase(debtRepo)
			deleteDebtUseCase := debt.NewDeleteDebtUseCase(debtRepo)

			listPlansUseCase := investmentplan.NewListPlansUseCase(planRepo)
			createPlanUseCase := investmentplan.NewCreatePlanUseCase(planRepo)
			updatePlanStatusUseCase := investmentplan.NewUpdatePlanStatusUseCase(planRepo)
			deletePlanUseCase := investmentplan.NewDeletePlanUseCase(planRepo)

			listStocksUseCase := stock.NewListStocksUseCase(stockRepo)
			createStockUseCase := stock.NewCreateStockUseCase(stockRepo)
			sellStockUseCase := stock.NewSellStockUseCase(stockRepo)
			deleteStockUseCase := stock.NewDeleteStockUseCase(stockRepo)

			listLoansUseCase := loan.NewListLoansUseCase(loanRepo)
			createLoanUseCase := loan.NewCreateLoanUseCase(loanRepo)
			payInterestUseCase := loan.NewPayInterestUseCase(loanRepo)
			markLoanPaidUseCase := loan.NewMarkLoanPaidUseCase(loanRepo)
			deleteLoanUseCase := loan.NewDeleteLoanUseCase(loanRepo)

			listObligationsUseCase := obligation.NewListObligationsUseCase(obligationRepo)
			createObligationUseCase := obligation.NewCreateObligationUseCase(obligationRepo)
			markObligationPaidUseCase := obligation.NewMarkObligationPaidUseCase(obligationRepo)
			deleteObligationUseCase := obligation.NewDeleteObligationUseCase(obligationRepo)

			setBudgetUseCase := budget.NewSetBudgetUseCase(budgetRepo)
			getBudgetStatusUseCase := budget.NewGetBudgetStatusUseCase(budgetRepo, expenseRepo)

			buildReportUseCase := report.NewBuildReportUseCase(reportRepo, logger)
			archiveReportUseCase := report.NewArchiveReportUseCase(buildReportUseCase, reportArchiveRepo, logger)
			reportHistoryUseCase := report.NewListReportHistoryUseCase(reportArchiveRepo)
			trendsUseCase := report.NewGetTrendsUseCase(reportRepo, logger)
			distributionUseCase := report.NewGetDistributionUseCase(reportRepo, logger)
			weeklyPatternUseCase := report.NewGetWeeklyPatternUseCase(reportRepo, logger)

			processingTracker := aicategorization.NewInMemoryProcessingTracker()
			suggestCategoriesUseCase := aicategorization.NewSuggestCategoriesUseCase(expenseRepo, geminiService, processingTracker, logger)
			applySuggestionUseCase := aicategorization.NewApplySuggestionUseCase(expenseRepo)
			aiStatusUseCase := aicategorization.NewGetStatusUseCase(expenseRepo, processingTracker)

			// Controllers
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})
			authController := controller.NewAuthController(
				registerUseCase,
				loginUseCase,
				refreshTokenUseCase,
				logoutUseCase,
				forgotPasswordUseCase,
				resetPasswordUseCase,
			)
			userController := controller.NewUserController(deleteAccountUseCase)
			expenseController := controller.NewExpenseController(
				listExpensesUseCase,
				createExpenseUseCase,
				updateExpenseUseCase,
				deleteExpenseUseCase,
			)
			debtController := controller.NewDebtController(
				listDebtsUseCase,
				createDebtUseCase,
				settleDebtUseCase,
				deleteDebtUseCase,
			)
			investmentPlanController := controller.NewInvestmentPlanController(
				listPlansUseCase,
				createPlanUseCase,
				updatePlanStatusUseCase,
				deletePlanUseCase,
			)
			stockController := controller.NewStockController(
				listStocksUseCase,
				createStockUseCase,
				sellStockUseCase,
				deleteStockUseCase,
			)
			loanController := controller.NewLoanController(
				listLoansUseCase,
				createLoanUseCase,
				payInterestUseCase,
				markLoanPaidUseCase,
				deleteLoanUseCase,
			)
			obligationController := controller.NewObligationController(
				listObligationsUseCase,
				createObligationUseCase,
				markObligationPaidUseCase,
				deleteObligationUseCase,
			)
			budgetController := controller.NewBudgetController(
				setBudgetUseCase,
				getBudgetStatusUseCase,
			)
			reportController := controller.NewReportController(
				archiveReportUseCase,
				reportHistoryUseCase,
				trendsUseCase,
				distributionUseCase,
				weeklyPatternUseCase,
			)
			aiCategorizationController := controller.NewAICategorizationController(
				suggestCategoriesUseCase,
				applySuggestionUseCase,
				aiStatusUseCase,
			)

			// Middleware
			loginRateLimiter := middleware.NewRateLimiter(mock.NewRedis())
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				authController,
				userController,
				expenseController,
				debtController,
				investmentPlanController,
				stockController,
				loanController,
				obligationController,
				budgetController,
				reportController,
				aiCategorizationController,
				loginRateLimiter,
				authMiddleware,
			)
			engine := r.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}
			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}
