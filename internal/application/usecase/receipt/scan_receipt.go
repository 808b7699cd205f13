// Package receipt contains receipt-intake use cases.
package receipt

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/expense"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// PendingScanDescription is used for expenses whose receipt scan yielded no
// merchant name.
const PendingScanDescription = "Receipt scan pending"

// placeholderAmount is the minimum positive amount used when the total could
// not be extracted. Such expenses carry the pending flag.
var placeholderAmount = decimal.NewFromFloat(0.01)

// receiptDateLayouts are tried in order against the extracted date string.
var receiptDateLayouts = []string{
	"1/2/2006", "1/2/06",
	"1-2-2006", "1-2-06",
	"2/1/2006", "2-1-2006",
}

// ScanReceiptInput represents the input for a receipt scan.
type ScanReceiptInput struct {
	Data        []byte
	Filename    string
	ContentType string
}

// ScanReceiptOutput represents the output of a receipt scan.
type ScanReceiptOutput struct {
	Expense     *entity.Expense
	Fields      *entity.ReceiptFields
	ReceiptPath string
	RawText     string
}

// ScanReceiptUseCase stores a receipt image, runs the external text-recognition
// step, extracts structured fields and records the resulting expense. Unmatched
// fields degrade to placeholders; only storage or recognition failures error.
type ScanReceiptUseCase struct {
	receiptStore  adapter.ReceiptStore
	recognizer    adapter.TextRecognizer
	createExpense *expense.CreateExpenseUseCase
}

// NewScanReceiptUseCase creates a new ScanReceiptUseCase instance.
func NewScanReceiptUseCase(
	receiptStore adapter.ReceiptStore,
	recognizer adapter.TextRecognizer,
	createExpense *expense.CreateExpenseUseCase,
) *ScanReceiptUseCase {
	return &ScanReceiptUseCase{
		receiptStore:  receiptStore,
		recognizer:    recognizer,
		createExpense: createExpense,
	}
}

// Execute performs the full receipt-intake flow.
func (uc *ScanReceiptUseCase) Execute(ctx context.Context, input ScanReceiptInput) (*ScanReceiptOutput, error) {
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

	// Degraded mode without a configured recognizer: empty text, placeholder
	// expense. A failing recognition call is an error.
	rawText := ""
	if uc.recognizer != nil && uc.recognizer.IsAvailable() {
		rawText, err = uc.recognizer.Recognize(ctx, input.Data, input.ContentType)
		if err != nil {
			return nil, domainerror.NewReceiptError(
				domainerror.ErrCodeTextRecognitionFailed,
				"text recognition failed",
				fmt.Errorf("%w: %w", domainerror.ErrTextRecognitionFailed, err),
			)
		}
	}

	fields := ExtractFields(rawText)

	amount := placeholderAmount
	pending := true
	if fields.Total != nil && fields.Total.IsPositive() {
		amount = *fields.Total
		pending = false
	}

	description := PendingScanDescription
	if fields.Merchant != nil {
		description = *fields.Merchant
	}

	var date time.Time
	if fields.Date != nil {
		date = parseReceiptDate(*fields.Date)
	}

	created, err := uc.createExpense.Execute(ctx, expense.CreateExpenseInput{
		Amount:      amount,
		Description: description,
		Date:        date,
		ReceiptPath: &path,
		Pending:     pending,
	})
	if err != nil {
		return nil, err
	}

	return &ScanReceiptOutput{
		Expense:     created.Expense,
		Fields:      fields,
		ReceiptPath: path,
		RawText:     rawText,
	}, nil
}

// parseReceiptDate tries the known receipt date layouts, returning the zero
// time (which defaults to now downstream) when none match.
func parseReceiptDate(raw string) time.Time {
	for _, layout := range receiptDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
