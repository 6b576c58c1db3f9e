// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/expenso/backend/config"
	"github.com/expenso/backend/internal/application/adapter"
	aicategorization "github.com/expenso/backend/internal/application/usecase/ai_categorization"
	"github.com/expenso/backend/internal/application/usecase/auth"
	"github.com/expenso/backend/internal/application/usecase/budget"
	"github.com/expenso/backend/internal/application/usecase/debt"
	"github.com/expenso/backend/internal/application/usecase/expense"
	"github.com/expenso/backend/internal/application/usecase/investmentplan"
	"github.com/expenso/backend/internal/application/usecase/loan"
	"github.com/expenso/backend/internal/application/usecase/obligation"
	"github.com/expenso/backend/internal/application/usecase/reminder"
	"github.com/expenso/backend/internal/application/usecase/report"
	"github.com/expenso/backend/internal/application/usecase/stock"
	"github.com/expenso/backend/internal/infra/server/router"
	"github.com/expenso/backend/internal/integration/adapters"
	"github.com/expenso/backend/internal/integration/email"
	"github.com/expenso/backend/internal/integration/email/templates"
	"github.com/expenso/backend/internal/integration/entrypoint/controller"
	"github.com/expenso/backend/internal/integration/entrypoint/middleware"
	"github.com/expenso/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router

	// EmailWorker delivers queued emails in the background. Started by the
	// caller when cfg.Email.WorkerEnabled is set.
	EmailWorker *email.Worker

	// ReminderScanner queues due date reminder emails. Driven by the
	// caller on cfg.Reminder.ScanInterval.
	ReminderScanner *reminder.ScanDueObligationsUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) (*Injector, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if cfg.Redis.Password != "" {
		redisOpts.Password = cfg.Redis.Password
	}
	redisClient := redis.NewClient(redisOpts)

	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	debtRepo := persistence.NewDebtRepository(db)
	planRepo := persistence.NewInvestmentPlanRepository(db)
	stockRepo := persistence.NewStockRepository(db)
	loanRepo := persistence.NewLoanRepository(db)
	obligationRepo := persistence.NewObligationRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	reportRepo := persistence.NewReportRepository(db)
	reportArchiveRepo := persistence.NewReportArchiveRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	geminiService := adapters.NewGeminiService(cfg.AI.GeminiAPIKey)
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	var sender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		sender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		sender = email.NewMockEmailSender()
	}
	workerConfig := email.DefaultWorkerConfig()
	if cfg.Email.PollInterval > 0 {
		workerConfig.PollInterval = cfg.Email.PollInterval
	}
	if cfg.Email.BatchSize > 0 {
		workerConfig.BatchSize = cfg.Email.BatchSize
	}
	emailWorker := email.NewWorker(emailQueueRepo, sender, renderer, workerConfig)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)
	deleteAccountUseCase := auth.NewDeleteAccountUseCase(userRepo, passwordService, tokenService)

	// Create expense use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)

	// Create debt use cases
	listDebtsUseCase := debt.NewListDebtsUseCase(debtRepo)
	createDebtUseCase := debt.NewCreateDebtUseCase(debtRepo)
	settleDebtUseCase := debt.NewSettleDebtUseCase(debtRepo)
	deleteDebtUseCase := debt.NewDeleteDebtUseCase(debtRepo)

	// Create investment plan use cases
	listPlansUseCase := investmentplan.NewListPlansUseCase(planRepo)
	createPlanUseCase := investmentplan.NewCreatePlanUseCase(planRepo)
	updatePlanStatusUseCase := investmentplan.NewUpdatePlanStatusUseCase(planRepo)
	deletePlanUseCase := investmentplan.NewDeletePlanUseCase(planRepo)

	// Create stock use cases
	listStocksUseCase := stock.NewListStocksUseCase(stockRepo)
	createStockUseCase := stock.NewCreateStockUseCase(stockRepo)
	sellStockUseCase := stock.NewSellStockUseCase(stockRepo)
	deleteStockUseCase := stock.NewDeleteStockUseCase(stockRepo)

	// Create loan use cases
	listLoansUseCase := loan.NewListLoansUseCase(loanRepo)
	createLoanUseCase := loan.NewCreateLoanUseCase(loanRepo)
	payInterestUseCase := loan.NewPayInterestUseCase(loanRepo)
	markLoanPaidUseCase := loan.NewMarkLoanPaidUseCase(loanRepo)
	deleteLoanUseCase := loan.NewDeleteLoanUseCase(loanRepo)

	// Create obligation use cases
	listObligationsUseCase := obligation.NewListObligationsUseCase(obligationRepo)
	createObligationUseCase := obligation.NewCreateObligationUseCase(obligationRepo)
	markObligationPaidUseCase := obligation.NewMarkObligationPaidUseCase(obligationRepo)
	deleteObligationUseCase := obligation.NewDeleteObligationUseCase(obligationRepo)

	// Create budget use cases
	setBudgetUseCase := budget.NewSetBudgetUseCase(budgetRepo)
	getBudgetStatusUseCase := budget.NewGetBudgetStatusUseCase(budgetRepo, expenseRepo)

	// Create report use cases
	buildReportUseCase := report.NewBuildReportUseCase(reportRepo, logger)
	archiveReportUseCase := report.NewArchiveReportUseCase(buildReportUseCase, reportArchiveRepo, logger)
	reportHistoryUseCase := report.NewListReportHistoryUseCase(reportArchiveRepo)
	trendsUseCase := report.NewGetTrendsUseCase(reportRepo, logger)
	distributionUseCase := report.NewGetDistributionUseCase(reportRepo, logger)
	weeklyPatternUseCase := report.NewGetWeeklyPatternUseCase(reportRepo, logger)

	// Create AI categorization use cases
	processingTracker := aicategorization.NewInMemoryProcessingTracker()
	suggestCategoriesUseCase := aicategorization.NewSuggestCategoriesUseCase(expenseRepo, geminiService, processingTracker, logger)
	applySuggestionUseCase := aicategorization.NewApplySuggestionUseCase(expenseRepo)
	aiStatusUseCase := aicategorization.NewGetStatusUseCase(expenseRepo, processingTracker)

	// Create reminder scanner
	reminderScanner := reminder.NewScanDueObligationsUseCase(obligationRepo, userRepo, emailService, logger)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	userController := controller.NewUserController(
		deleteAccountUseCase,
	)

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

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter(redisClient)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
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

	return &Injector{
		Config:          cfg,
		DB:              db,
		Redis:           redisClient,
		Router:          r,
		EmailWorker:     emailWorker,
		ReminderScanner: reminderScanner,
	}, nil
}
