// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http/httptest"
	"os"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/analytics"
	"github.com/expense-tracker/backend/internal/application/usecase/category"
	"github.com/expense-tracker/backend/internal/application/usecase/expense"
	"github.com/expense-tracker/backend/internal/application/usecase/receipt"
	"github.com/expense-tracker/backend/internal/application/usecase/transfer"
	"github.com/expense-tracker/backend/internal/infra/server/router"
	integrationcache "github.com/expense-tracker/backend/internal/integration/cache"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/persistence"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
	"github.com/expense-tracker/backend/internal/integration/storage"
	"github.com/expense-tracker/backend/test/integration/mock"
)

// testContext holds the application under test and per-scenario state.
type testContext struct {
	db         *mock.Db
	recognizer *mock.Recognizer

	categoryRepo adapter.CategoryRepository
	expenseRepo  adapter.ExpenseRepository

	createCategory *category.CreateCategoryUseCase
	createExpense  *expense.CreateExpenseUseCase

	server *httptest.Server

	responseStatus int
	responseBody   []byte
}

var test *testContext

// InitializeTestSuite sets up shared resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		test = newTestContext()
	})

	ctx.AfterSuite(func() {
		if test != nil && test.server != nil {
			test.server.Close()
		}
	})
}

// InitializeScenario resets state and registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		if err := test.reset(); err != nil {
			return ctx, err
		}
		return ctx, nil
	})

	registerSteps(ctx)
}

func newTestContext() *testContext {
	db := mock.NewDb([]any{
		&model.CategoryModel{},
		&model.ExpenseModel{},
	})
	redisClient := mock.NewRedis()
	recognizer := mock.NewRecognizer()

	receiptsDir, err := os.MkdirTemp("", "receipts")
	if err != nil {
		panic(err)
	}
	receiptStore, err := storage.NewLocalReceiptStore(receiptsDir)
	if err != nil {
		panic(err)
	}

	summaryCache := integrationcache.NewRedisSummaryCache(redisClient)

	categoryRepo := persistence.NewCategoryRepository(db.DbConn)
	expenseRepo := persistence.NewExpenseRepository(db.DbConn)
	importRepo := persistence.NewImportRepository(db.DbConn)

	listCategories := category.NewListCategoriesUseCase(categoryRepo)
	getCategory := category.NewGetCategoryUseCase(categoryRepo)
	createCategory := category.NewCreateCategoryUseCase(categoryRepo, summaryCache)
	updateCategory := category.NewUpdateCategoryUseCase(categoryRepo, summaryCache)
	deleteCategory := category.NewDeleteCategoryUseCase(categoryRepo, summaryCache)

	listExpenses := expense.NewListExpensesUseCase(expenseRepo)
	getExpense := expense.NewGetExpenseUseCase(expenseRepo)
	createExpense := expense.NewCreateExpenseUseCase(expenseRepo, categoryRepo, summaryCache)
	updateExpense := expense.NewUpdateExpenseUseCase(expenseRepo, categoryRepo, summaryCache)
	deleteExpense := expense.NewDeleteExpenseUseCase(expenseRepo, summaryCache)

	getSummary := analytics.NewGetSummaryUseCase(expenseRepo, summaryCache)

	uploadReceipt := receipt.NewUploadReceiptUseCase(receiptStore)
	scanReceipt := receipt.NewScanReceiptUseCase(receiptStore, recognizer, createExpense)

	exportData := transfer.NewExportDataUseCase(categoryRepo, expenseRepo)
	importData := transfer.NewImportDataUseCase(categoryRepo, importRepo, summaryCache)

	healthController := controller.NewHealthController(func() bool { return true })
	categoryController := controller.NewCategoryController(
		listCategories, getCategory, createCategory, updateCategory, deleteCategory,
	)
	expenseController := controller.NewExpenseController(
		listExpenses, getExpense, createExpense, updateExpense, deleteExpense,
	)
	analyticsController := controller.NewAnalyticsController(getSummary)
	receiptController := controller.NewReceiptController(uploadReceipt, scanReceipt)
	transferController := controller.NewTransferController(exportData, importData)

	r := router.NewRouter(
		healthController,
		categoryController,
		expenseController,
		analyticsController,
		receiptController,
		transferController,
		receiptsDir,
	)
	engine := r.Setup("test")

	return &testContext{
		db:             db,
		recognizer:     recognizer,
		categoryRepo:   categoryRepo,
		expenseRepo:    expenseRepo,
		createCategory: createCategory,
		createExpense:  createExpense,
		server:         httptest.NewServer(engine),
	}
}

// reset restores a clean state between scenarios: empty tables, flushed
// cache, default recognizer and the bootstrap category back in place.
func (t *testContext) reset() error {
	if err := t.db.Reset(); err != nil {
		return err
	}
	if err := mock.ClearRedis(mock.NewRedis()); err != nil {
		return err
	}
	t.recognizer.Reset()
	t.responseStatus = 0
	t.responseBody = nil

	ensure := category.NewEnsureUncategorizedUseCase(t.categoryRepo)
	_, err := ensure.Execute(context.Background())
	return err
}
