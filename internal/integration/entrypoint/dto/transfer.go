package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/usecase/transfer"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ExportCategory represents one exported category record.
type ExportCategory struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ExportExpense represents one exported expense record. The category is
// referenced by name so the export survives re-import into a fresh database.
type ExportExpense struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category"`
	ReceiptPath *string         `json:"receiptPath,omitempty"`
}

// ExportDataResponse represents the full-dataset export payload.
type ExportDataResponse struct {
	ExportedAt time.Time        `json:"exportedAt"`
	Categories []ExportCategory `json:"categories"`
	Expenses   []ExportExpense  `json:"expenses"`
}

// ImportDataRequest represents the request body for a bulk import. It mirrors
// the export payload shape.
type ImportDataRequest struct {
	Categories []ExportCategory `json:"categories"`
	Expenses   []ExportExpense  `json:"expenses"`
}

// ImportDataResponse represents the result of a bulk import.
type ImportDataResponse struct {
	CategoriesCreated int `json:"categoriesCreated"`
	ExpensesCreated   int `json:"expensesCreated"`
}

// ToExportDataResponse converts an export dataset to its response DTO.
func ToExportDataResponse(categories []*entity.Category, expenses []*entity.ExpenseWithCategory) ExportDataResponse {
	cats := make([]ExportCategory, 0, len(categories))
	for _, c := range categories {
		cats = append(cats, ExportCategory{
			Name:        c.Name,
			Description: c.Description,
		})
	}

	exps := make([]ExportExpense, 0, len(expenses))
	for _, e := range expenses {
		exps = append(exps, ExportExpense{
			Amount:      e.Expense.Amount,
			Description: e.Expense.Description,
			Date:        e.Expense.Date,
			Category:    e.CategoryName,
			ReceiptPath: e.Expense.ReceiptPath,
		})
	}

	return ExportDataResponse{
		ExportedAt: time.Now().UTC(),
		Categories: cats,
		Expenses:   exps,
	}
}

// ToImportDataInput converts an import request to the use case input.
func ToImportDataInput(req ImportDataRequest) transfer.ImportDataInput {
	categories := make([]transfer.ImportCategory, 0, len(req.Categories))
	for _, c := range req.Categories {
		categories = append(categories, transfer.ImportCategory{
			Name:        c.Name,
			Description: c.Description,
		})
	}

	expenses := make([]transfer.ImportExpense, 0, len(req.Expenses))
	for _, e := range req.Expenses {
		expenses = append(expenses, transfer.ImportExpense{
			Amount:      e.Amount,
			Description: e.Description,
			Date:        e.Date,
			Category:    e.Category,
			ReceiptPath: e.ReceiptPath,
		})
	}

	return transfer.ImportDataInput{
		Categories: categories,
		Expenses:   expenses,
	}
}
