package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/receipt"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// maxReceiptSize caps a single receipt upload at 10 MiB.
const maxReceiptSize = 10 << 20

// ReceiptController handles receipt upload and scan endpoints.
type ReceiptController struct {
	uploadUseCase *receipt.UploadReceiptUseCase
	scanUseCase   *receipt.ScanReceiptUseCase
}

// NewReceiptController creates a new receipt controller instance.
func NewReceiptController(
	uploadUseCase *receipt.UploadReceiptUseCase,
	scanUseCase *receipt.ScanReceiptUseCase,
) *ReceiptController {
	return &ReceiptController{
		uploadUseCase: uploadUseCase,
		scanUseCase:   scanUseCase,
	}
}

// Upload handles POST /receipts/upload requests. The image is stored without
// any scanning.
func (c *ReceiptController) Upload(ctx *gin.Context) {
	data, filename, contentType, ok := c.readReceiptFile(ctx)
	if !ok {
		return
	}

	output, err := c.uploadUseCase.Execute(ctx.Request.Context(), receipt.UploadReceiptInput{
		Data:        data,
		Filename:    filename,
		ContentType: contentType,
	})
	if err != nil {
		c.handleReceiptError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.UploadReceiptResponse{ReceiptPath: output.Path})
}

// Scan handles POST /receipts/scan requests. The image is stored, run through
// text recognition and turned into an expense.
func (c *ReceiptController) Scan(ctx *gin.Context) {
	data, filename, contentType, ok := c.readReceiptFile(ctx)
	if !ok {
		return
	}

	output, err := c.scanUseCase.Execute(ctx.Request.Context(), receipt.ScanReceiptInput{
		Data:        data,
		Filename:    filename,
		ContentType: contentType,
	})
	if err != nil {
		c.handleReceiptError(ctx, err)
		return
	}

	response := dto.ScanReceiptResponse{
		Expense:     dto.ToExpenseResponse(output.Expense),
		ReceiptPath: output.ReceiptPath,
	}
	if output.Fields != nil {
		response.ExtractedFields = dto.ToReceiptFieldsResponse(*output.Fields)
	}

	ctx.JSON(http.StatusCreated, response)
}

// readReceiptFile extracts the multipart "file" part of the request. On
// failure it writes the error response and returns ok=false.
func (c *ReceiptController) readReceiptFile(ctx *gin.Context) (data []byte, filename, contentType string, ok bool) {
	header, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Missing receipt file",
		})
		return nil, "", "", false
	}

	if header.Size > maxReceiptSize {
		ctx.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{
			Error: "Receipt file too large",
		})
		return nil, "", "", false
	}

	file, err := header.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Failed to read receipt file",
		})
		return nil, "", "", false
	}
	defer file.Close()

	data, err = io.ReadAll(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Failed to read receipt file",
		})
		return nil, "", "", false
	}

	return data, header.Filename, header.Header.Get("Content-Type"), true
}

// handleReceiptError handles receipt errors and returns appropriate HTTP responses.
func (c *ReceiptController) handleReceiptError(ctx *gin.Context, err error) {
	var rcpErr *domainerror.ReceiptError
	if errors.As(err, &rcpErr) {
		statusCode := c.getStatusCodeForReceiptError(rcpErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: rcpErr.Message,
			Code:  string(rcpErr.Code),
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

// getStatusCodeForReceiptError maps receipt error codes to HTTP status codes.
func (c *ReceiptController) getStatusCodeForReceiptError(code domainerror.ReceiptErrorCode) int {
	switch code {
	case domainerror.ErrCodeNotAnImage,
		domainerror.ErrCodeEmptyReceiptFile:
		return http.StatusBadRequest
	case domainerror.ErrCodeTextRecognitionFailed:
		return http.StatusBadGateway
	case domainerror.ErrCodeReceiptStorageFailed:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
