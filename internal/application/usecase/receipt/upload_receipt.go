// Package receipt contains receipt-intake use cases.
package receipt

import (
	"context"
	"strings"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// UploadReceiptInput represents the input for a receipt upload.
type UploadReceiptInput struct {
	Data        []byte
	Filename    string
	ContentType string
}

// UploadReceiptOutput represents the output of a receipt upload.
type UploadReceiptOutput struct {
	Path string
}

// UploadReceiptUseCase persists an uploaded receipt image without scanning it.
type UploadReceiptUseCase struct {
	receiptStore adapter.ReceiptStore
}

// NewUploadReceiptUseCase creates a new UploadReceiptUseCase instance.
func NewUploadReceiptUseCase(receiptStore adapter.ReceiptStore) *UploadReceiptUseCase {
	return &UploadReceiptUseCase{
		receiptStore: receiptStore,
	}
}

// Execute validates and stores the uploaded image, returning the stored path.
func (uc *UploadReceiptUseCase) Execute(_ context.Context, input UploadReceiptInput) (*UploadReceiptOutput, error) {
	if err := validateImage(input.Data, input.ContentType); err != nil {
		return nil, err
	}

	path, err := uc.receiptStore.Save(input.Data, input.Filename)
	if err != nil {
		return nil, domainerror.NewReceiptError(
			domainerror.ErrCodeReceiptStorageFailed,
			"failed to store receipt file",
			err,
		)
	}

	return &UploadReceiptOutput{
		Path: path,
	}, nil
}

// validateImage enforces the image-only upload rule.
func validateImage(data []byte, contentType string) error {
	if !strings.HasPrefix(contentType, "image/") {
		return domainerror.NewReceiptError(
			domainerror.ErrCodeNotAnImage,
			"file must be an image",
			domainerror.ErrNotAnImage,
		)
	}
	if len(data) == 0 {
		return domainerror.NewReceiptError(
			domainerror.ErrCodeEmptyReceiptFile,
			"receipt file is empty",
			domainerror.ErrEmptyReceiptFile,
		)
	}
	return nil
}
