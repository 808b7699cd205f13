package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/analytics"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// AnalyticsController handles analytics endpoints.
type AnalyticsController struct {
	getSummaryUseCase *analytics.GetSummaryUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(getSummaryUseCase *analytics.GetSummaryUseCase) *AnalyticsController {
	return &AnalyticsController{
		getSummaryUseCase: getSummaryUseCase,
	}
}

// GetSummary handles GET /analytics/summary requests. The optional time_range
// query parameter narrows the headline total and the category breakdown.
func (c *AnalyticsController) GetSummary(ctx *gin.Context) {
	timeRange, err := analytics.ParseTimeRange(ctx.Query("time_range"))
	if err != nil {
		var anaErr *domainerror.AnalyticsError
		if errors.As(err, &anaErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: anaErr.Message,
				Code:  string(anaErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid time range",
		})
		return
	}

	output, err := c.getSummaryUseCase.Execute(ctx.Request.Context(), analytics.GetSummaryInput{TimeRange: timeRange})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute analytics summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, output.Summary)
}
