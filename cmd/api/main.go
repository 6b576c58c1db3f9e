// Package main is the entry point for the Expenso API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/expenso/backend/config"
	"github.com/expenso/backend/internal/application/usecase/reminder"
	"github.com/expenso/backend/internal/infra/db"
	"github.com/expenso/backend/internal/infra/dependency"
	"github.com/expenso/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Expenso API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.PasswordResetTokenModel{},
		&model.ExpenseModel{},
		&model.DebtModel{},
		&model.InvestmentPlanModel{},
		&model.StockHoldingModel{},
		&model.LoanModel{},
		&model.ObligationModel{},
		&model.MonthlyBudgetModel{},
		&model.ReportArchiveModel{},
		&model.EmailQueueModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Wire dependencies
	injector, err := dependency.NewInjector(cfg, database.DB())
	if err != nil {
		slog.Error("Failed to initialize dependencies", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := injector.Redis.Close(); err != nil {
			slog.Error("Failed to close redis connection", "error", err)
		}
	}()

	// Background workers run until the server shuts down.
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	if cfg.Email.WorkerEnabled {
		go injector.EmailWorker.Start(workerCtx)
		slog.Info("Email worker started",
			"poll_interval", cfg.Email.PollInterval,
			"batch_size", cfg.Email.BatchSize,
		)
	}

	if cfg.Reminder.Enabled {
		go runReminderScanner(workerCtx, injector.ReminderScanner, cfg.Reminder)
		slog.Info("Reminder scanner started",
			"lead_days", cfg.Reminder.LeadDays,
			"scan_interval", cfg.Reminder.ScanInterval,
		)
	}

	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// runReminderScanner runs one scan immediately, then repeats on the
// configured interval until ctx is cancelled.
func runReminderScanner(ctx context.Context, scanner *reminder.ScanDueObligationsUseCase, cfg config.ReminderConfig) {
	scan := func() {
		output, err := scanner.Execute(ctx, reminder.ScanDueObligationsInput{LeadDays: cfg.LeadDays})
		if err != nil {
			slog.Error("Reminder scan failed", "error", err)
			return
		}
		slog.Info("Reminder scan completed",
			"scanned", output.Scanned,
			"queued", output.Queued,
			"skipped", output.Skipped,
		)
	}

	scan()
	ticker := time.NewTicker(cfg.ScanInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			scan()
		}
	}
}
