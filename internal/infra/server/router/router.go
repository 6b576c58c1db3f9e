// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/expenso/backend/internal/integration/entrypoint/controller"
	"github.com/expenso/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                     *gin.Engine
	healthController           *controller.HealthController
	authController             *controller.AuthController
	userController             *controller.UserController
	expenseController          *controller.ExpenseController
	debtController             *controller.DebtController
	investmentPlanController   *controller.InvestmentPlanController
	stockController            *controller.StockController
	loanController             *controller.LoanController
	obligationController       *controller.ObligationController
	budgetController           *controller.BudgetController
	reportController           *controller.ReportController
	aiCategorizationController *controller.AICategorizationController
	loginRateLimiter           *middleware.RateLimiter
	authMiddleware             *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	expenseController *controller.ExpenseController,
	debtController *controller.DebtController,
	investmentPlanController *controller.InvestmentPlanController,
	stockController *controller.StockController,
	loanController *controller.LoanController,
	obligationController *controller.ObligationController,
	budgetController *controller.BudgetController,
	reportController *controller.ReportController,
	aiCategorizationController *controller.AICategorizationController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:           healthController,
		authController:             authController,
		userController:             userController,
		expenseController:          expenseController,
		debtController:             debtController,
		investmentPlanController:   investmentPlanController,
		stockController:            stockController,
		loanController:             loanController,
		obligationController:       obligationController,
		budgetController:           budgetController,
		reportController:           reportController,
		aiCategorizationController: aiCategorizationController,
		loginRateLimiter:           loginRateLimiter,
		authMiddleware:             authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
				auth.POST("/forgot-password", r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}
		}

		// User routes (require authentication)
		if r.userController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.DELETE("/me", r.userController.DeleteAccount)
			}
		}

		// Expense routes (require authentication)
		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.PATCH("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}

		// Debt routes (require authentication)
		if r.debtController != nil && r.authMiddleware != nil {
			debts := v1.Group("/debts")
			debts.Use(r.authMiddleware.Authenticate())
			{
				debts.GET("", r.debtController.List)
				debts.POST("", r.debtController.Create)
				debts.POST("/:id/settle", r.debtController.Settle)
				debts.DELETE("/:id", r.debtController.Delete)
			}
		}

		// Investment plan routes (require authentication)
		if r.investmentPlanController != nil && r.authMiddleware != nil {
			plans := v1.Group("/investment-plans")
			plans.Use(r.authMiddleware.Authenticate())
			{
				plans.GET("", r.investmentPlanController.List)
				plans.POST("", r.investmentPlanController.Create)
				plans.PATCH("/:id/status", r.investmentPlanController.UpdateStatus)
				plans.DELETE("/:id", r.investmentPlanController.Delete)
			}
		}

		// Stock holding routes (require authentication)
		if r.stockController != nil && r.authMiddleware != nil {
			stocks := v1.Group("/stocks")
			stocks.Use(r.authMiddleware.Authenticate())
			{
				stocks.GET("", r.stockController.List)
				stocks.POST("", r.stockController.Create)
				stocks.POST("/:id/sell", r.stockController.Sell)
				stocks.DELETE("/:id", r.stockController.Delete)
			}
		}

		// Loan routes (require authentication)
		if r.loanController != nil && r.authMiddleware != nil {
			loans := v1.Group("/loans")
			loans.Use(r.authMiddleware.Authenticate())
			{
				loans.GET("", r.loanController.List)
				loans.POST("", r.loanController.Create)
				loans.POST("/:id/pay-interest", r.loanController.PayInterest)
				loans.POST("/:id/mark-paid", r.loanController.MarkPaid)
				loans.DELETE("/:id", r.loanController.Delete)
			}
		}

		// Tax and violation routes (require authentication)
		if r.obligationController != nil && r.authMiddleware != nil {
			obligations := v1.Group("/obligations")
			obligations.Use(r.authMiddleware.Authenticate())
			{
				obligations.GET("", r.obligationController.List)
				obligations.POST("", r.obligationController.Create)
				obligations.POST("/:id/mark-paid", r.obligationController.MarkPaid)
				obligations.DELETE("/:id", r.obligationController.Delete)
			}
		}

		// Budget routes (require authentication)
		if r.budgetController != nil && r.authMiddleware != nil {
			budgets := v1.Group("/budgets")
			budgets.Use(r.authMiddleware.Authenticate())
			{
				budgets.PUT("", r.budgetController.Set)
				budgets.GET("/status", r.budgetController.GetStatus)
			}
		}

		// Report and analytics routes (require authentication)
		if r.reportController != nil && r.authMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate())
			{
				reports.GET("", r.reportController.Build)
				reports.GET("/history", r.reportController.History)
			}

			analytics := v1.Group("/analytics")
			analytics.Use(r.authMiddleware.Authenticate())
			{
				analytics.GET("/trends", r.reportController.Trends)
				analytics.GET("/distribution", r.reportController.Distribution)
				analytics.GET("/weekly-pattern", r.reportController.WeeklyPattern)
			}
		}

		// AI categorization routes (require authentication)
		if r.aiCategorizationController != nil && r.authMiddleware != nil {
			ai := v1.Group("/ai")
			ai.Use(r.authMiddleware.Authenticate())
			{
				ai.GET("/status", r.aiCategorizationController.Status)
				ai.POST("/suggestions", r.aiCategorizationController.Suggest)
				ai.POST("/suggestions/:expenseId/apply", r.aiCategorizationController.Apply)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
