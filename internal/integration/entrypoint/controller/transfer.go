package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/transfer"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// TransferController handles the bulk export and import endpoints.
type TransferController struct {
	exportUseCase *transfer.ExportDataUseCase
	importUseCase *transfer.ImportDataUseCase
}

// NewTransferController creates a new transfer controller instance.
func NewTransferController(
	exportUseCase *transfer.ExportDataUseCase,
	importUseCase *transfer.ImportDataUseCase,
) *TransferController {
	return &TransferController{
		exportUseCase: exportUseCase,
		importUseCase: importUseCase,
	}
}

// Export handles GET /export requests.
func (c *TransferController) Export(ctx *gin.Context) {
	output, err := c.exportUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to export data",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExportDataResponse(output.Categories, output.Expenses))
}

// Import handles POST /import requests.
func (c *TransferController) Import(ctx *gin.Context) {
	var req dto.ImportDataRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.importUseCase.Execute(ctx.Request.Context(), dto.ToImportDataInput(req))
	if err != nil {
		c.handleImportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ImportDataResponse{
		CategoriesCreated: output.CategoriesCreated,
		ExpensesCreated:   output.ExpensesCreated,
	})
}

// handleImportError handles import errors and returns appropriate HTTP responses.
func (c *TransferController) handleImportError(ctx *gin.Context, err error) {
	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		status := http.StatusUnprocessableEntity
		if catErr.Code == domainerror.ErrCodeUncategorizedMissing {
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	var expErr *domainerror.ExpenseError
	if errors.As(err, &expErr) {
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error: expErr.Message,
			Code:  string(expErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
