// Package main is the entry point for the Expense Tracker API server.
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

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/analytics"
	"github.com/expense-tracker/backend/internal/application/usecase/category"
	"github.com/expense-tracker/backend/internal/application/usecase/expense"
	"github.com/expense-tracker/backend/internal/application/usecase/receipt"
	"github.com/expense-tracker/backend/internal/application/usecase/transfer"
	infracache "github.com/expense-tracker/backend/internal/infra/cache"
	"github.com/expense-tracker/backend/internal/infra/db"
	"github.com/expense-tracker/backend/internal/infra/server/router"
	"github.com/expense-tracker/backend/internal/integration/adapters"
	integrationcache "github.com/expense-tracker/backend/internal/integration/cache"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/persistence"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
	"github.com/expense-tracker/backend/internal/integration/storage"
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

	slog.Info("Starting Expense Tracker API",
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
		&model.CategoryModel{},
		&model.ExpenseModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Initialize the analytics summary cache (optional)
	var summaryCache adapter.SummaryCache
	if cfg.Redis.Enabled {
		redisClient, err := infracache.NewRedisClient(&cfg.Redis)
		if err != nil {
			slog.Warn("Redis connection failed, running without summary cache", "error", err)
		} else {
			summaryCache = integrationcache.NewRedisSummaryCache(redisClient)
			defer func() {
				if err := redisClient.Close(); err != nil {
					slog.Error("Failed to close redis connection", "error", err)
				}
			}()
			slog.Info("Summary cache initialized")
		}
	}

	// Initialize receipt storage
	receiptStore, err := storage.NewLocalReceiptStore(cfg.Receipts.Dir)
	if err != nil {
		slog.Error("Failed to initialize receipt storage", "error", err)
		os.Exit(1)
	}

	// Initialize the receipt text recognizer
	recognizer := adapters.NewGeminiRecognizer(cfg.Gemini.APIKey, cfg.Gemini.Timeout)
	if !recognizer.IsAvailable() {
		slog.Warn("Gemini API key not configured, receipt scans will use placeholder values")
	}

	// Create repositories
	categoryRepo := persistence.NewCategoryRepository(database.DB())
	expenseRepo := persistence.NewExpenseRepository(database.DB())
	importRepo := persistence.NewImportRepository(database.DB())

	// Ensure the protected default category exists before serving
	ensureUncategorized := category.NewEnsureUncategorizedUseCase(categoryRepo)
	if _, err := ensureUncategorized.Execute(context.Background()); err != nil {
		slog.Error("Failed to ensure default category", "error", err)
		os.Exit(1)
	}

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	getCategoryUseCase := category.NewGetCategoryUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo, summaryCache)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo, summaryCache)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, summaryCache)

	// Create expense use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	getExpenseUseCase := expense.NewGetExpenseUseCase(expenseRepo)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, categoryRepo, summaryCache)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, categoryRepo, summaryCache)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, summaryCache)

	// Create analytics use case
	getSummaryUseCase := analytics.NewGetSummaryUseCase(expenseRepo, summaryCache)

	// Create receipt use cases
	uploadReceiptUseCase := receipt.NewUploadReceiptUseCase(receiptStore)
	scanReceiptUseCase := receipt.NewScanReceiptUseCase(receiptStore, recognizer, createExpenseUseCase)

	// Create transfer use cases
	exportDataUseCase := transfer.NewExportDataUseCase(categoryRepo, expenseRepo)
	importDataUseCase := transfer.NewImportDataUseCase(categoryRepo, importRepo, summaryCache)

	// Create controllers
	healthController := controller.NewHealthController(database.HealthCheck)
	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		getCategoryUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)
	expenseController := controller.NewExpenseController(
		listExpensesUseCase,
		getExpenseUseCase,
		createExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
	)
	analyticsController := controller.NewAnalyticsController(getSummaryUseCase)
	receiptController := controller.NewReceiptController(uploadReceiptUseCase, scanReceiptUseCase)
	transferController := controller.NewTransferController(exportDataUseCase, importDataUseCase)

	// Setup router
	r := router.NewRouter(
		healthController,
		categoryController,
		expenseController,
		analyticsController,
		receiptController,
		transferController,
		receiptStore.Dir(),
	)
	engine := r.Setup(cfg.Server.Environment)

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

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
