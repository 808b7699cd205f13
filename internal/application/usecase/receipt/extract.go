// Package receipt contains receipt-intake use cases.
package receipt

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// Pattern rules applied to recognized receipt text. Compiled once at package level.
var (
	totalPattern    = regexp.MustCompile(`(?i)total\s*:?\s*\$?\s*(\d+\.?\d*)`)
	datePattern     = regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`)
	lineItemPattern = regexp.MustCompile(`^(.+?)\s+\$?\s*(\d+\.?\d*)\s*$`)
)

// ExtractFields applies independent pattern rules to raw recognized text and
// returns the structured fields. Pure function, no I/O. Fields that no rule
// matches stay nil; callers decide fallback behavior.
func ExtractFields(rawText string) *entity.ReceiptFields {
	fields := &entity.ReceiptFields{}

	if m := totalPattern.FindStringSubmatch(rawText); m != nil {
		if total, err := decimal.NewFromString(strings.TrimSuffix(m[1], ".")); err == nil {
			fields.Total = &total
		}
	}

	if m := datePattern.FindString(rawText); m != "" {
		fields.Date = &m
	}

	lines := strings.Split(rawText, "\n")

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			merchant := trimmed
			fields.Merchant = &merchant
			break
		}
	}

	for _, line := range lines {
		m := lineItemPattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		price, err := decimal.NewFromString(strings.TrimSuffix(m[2], "."))
		if err != nil {
			continue
		}
		fields.Items = append(fields.Items, entity.ReceiptLineItem{
			Name:  strings.TrimSpace(m[1]),
			Price: price,
		})
	}

	return fields
}
