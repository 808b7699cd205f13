package entity

import "github.com/shopspring/decimal"

// ReceiptLineItem is a single "<name> <price>" line recognized on a receipt.
type ReceiptLineItem struct {
	Name  string
	Price decimal.Decimal
}

// ReceiptFields holds the structured fields extracted from recognized receipt
// text. Any field the pattern rules could not match is left nil; callers decide
// the fallback behavior.
type ReceiptFields struct {
	Total    *decimal.Decimal
	Date     *string
	Merchant *string
	Items    []ReceiptLineItem
}
