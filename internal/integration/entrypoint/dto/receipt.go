package dto

import (
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// UploadReceiptResponse represents the response for a stored receipt image.
type UploadReceiptResponse struct {
	ReceiptPath string `json:"receiptPath"`
}

// ReceiptLineItemResponse represents a parsed line item in a scanned receipt.
type ReceiptLineItemResponse struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ReceiptFieldsResponse represents the fields extracted from receipt text.
type ReceiptFieldsResponse struct {
	Total    *decimal.Decimal          `json:"total,omitempty"`
	Date     *string                   `json:"date,omitempty"`
	Merchant *string                   `json:"merchant,omitempty"`
	Items    []ReceiptLineItemResponse `json:"items"`
}

// ScanReceiptResponse represents the response for a scanned receipt.
type ScanReceiptResponse struct {
	Expense         ExpenseResponse       `json:"expense"`
	ReceiptPath     string                `json:"receiptPath"`
	ExtractedFields ReceiptFieldsResponse `json:"extractedFields"`
}

// ToReceiptFieldsResponse converts extracted receipt fields to a DTO.
func ToReceiptFieldsResponse(fields entity.ReceiptFields) ReceiptFieldsResponse {
	items := make([]ReceiptLineItemResponse, 0, len(fields.Items))
	for _, item := range fields.Items {
		items = append(items, ReceiptLineItemResponse{
			Name:  item.Name,
			Price: item.Price,
		})
	}
	return ReceiptFieldsResponse{
		Total:    fields.Total,
		Date:     fields.Date,
		Merchant: fields.Merchant,
		Items:    items,
	}
}
