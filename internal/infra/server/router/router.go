// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	categoryController  *controller.CategoryController
	expenseController   *controller.ExpenseController
	analyticsController *controller.AnalyticsController
	receiptController   *controller.ReceiptController
	transferController  *controller.TransferController
	receiptsDir         string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	categoryController *controller.CategoryController,
	expenseController *controller.ExpenseController,
	analyticsController *controller.AnalyticsController,
	receiptController *controller.ReceiptController,
	transferController *controller.TransferController,
	receiptsDir string,
) *Router {
	return &Router{
		healthController:    healthController,
		categoryController:  categoryController,
		expenseController:   expenseController,
		analyticsController: analyticsController,
		receiptController:   receiptController,
		transferController:  transferController,
		receiptsDir:         receiptsDir,
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

	r.setupHealthRoutes()
	r.setupAPIRoutes()
	r.setupStaticRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.categoryController != nil {
			categories := v1.Group("/categories")
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.GET("/:id", r.categoryController.Get)
				categories.PATCH("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		if r.expenseController != nil {
			expenses := v1.Group("/expenses")
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.GET("/:id", r.expenseController.Get)
				expenses.PUT("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}

		if r.analyticsController != nil {
			v1.GET("/analytics/summary", r.analyticsController.GetSummary)
		}

		if r.receiptController != nil {
			receipts := v1.Group("/receipts")
			{
				receipts.POST("/upload", r.receiptController.Upload)
				receipts.POST("/scan", r.receiptController.Scan)
			}
		}

		if r.transferController != nil {
			v1.GET("/export", r.transferController.Export)
			v1.POST("/import", r.transferController.Import)
		}
	}
}

// setupStaticRoutes serves stored receipt images.
func (r *Router) setupStaticRoutes() {
	if r.receiptsDir != "" {
		r.engine.Static("/receipts", r.receiptsDir)
	}
}
