package receipt

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestExtractFields_FullReceipt(t *testing.T) {
	rawText := "Joe's Diner\n123 Main St\nBurger  12.50\nFries  4.25\nTotal: $42.50\n03/14/2024"

	fields := ExtractFields(rawText)

	if fields.Merchant == nil || *fields.Merchant != "Joe's Diner" {
		t.Errorf("expected merchant Joe's Diner, got %v", fields.Merchant)
	}
	if fields.Total == nil || !fields.Total.Equal(decimal.RequireFromString("42.50")) {
		t.Errorf("expected total 42.50, got %v", fields.Total)
	}
	if fields.Date == nil || *fields.Date != "03/14/2024" {
		t.Errorf("expected date 03/14/2024, got %v", fields.Date)
	}
}

func TestExtractFields_TotalVariants(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "with colon and dollar", text: "Total: $42.50", want: "42.50"},
		{name: "without colon", text: "total 17.99", want: "17.99"},
		{name: "uppercase", text: "TOTAL: 100", want: "100"},
		{name: "spaces around amount", text: "Total :  $ 8.00", want: "8.00"},
		{name: "integer amount", text: "Total: $42", want: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := ExtractFields(tt.text)
			if fields.Total == nil {
				t.Fatal("expected a total")
			}
			if !fields.Total.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("expected %s, got %s", tt.want, fields.Total)
			}
		})
	}
}

func TestExtractFields_NoMatches(t *testing.T) {
	fields := ExtractFields("")

	if fields.Total != nil {
		t.Errorf("expected nil total, got %v", fields.Total)
	}
	if fields.Date != nil {
		t.Errorf("expected nil date, got %v", fields.Date)
	}
	if fields.Merchant != nil {
		t.Errorf("expected nil merchant, got %v", fields.Merchant)
	}
	if len(fields.Items) != 0 {
		t.Errorf("expected no items, got %v", fields.Items)
	}
}

func TestExtractFields_DateFormats(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{text: "visited 03/14/2024 noon", want: "03/14/2024"},
		{text: "3-1-24", want: "3-1-24"},
		{text: "12/31/99", want: "12/31/99"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			fields := ExtractFields(tt.text)
			if fields.Date == nil || *fields.Date != tt.want {
				t.Errorf("expected date %q, got %v", tt.want, fields.Date)
			}
		})
	}
}

func TestExtractFields_MerchantIsFirstNonEmptyLine(t *testing.T) {
	fields := ExtractFields("\n\n  Corner Shop  \nTotal: 5.00")

	if fields.Merchant == nil || *fields.Merchant != "Corner Shop" {
		t.Errorf("expected merchant Corner Shop, got %v", fields.Merchant)
	}
}

func TestExtractFields_LineItems(t *testing.T) {
	rawText := "Corner Shop\nMilk  3.49\nBread $2.99\nThanks for visiting"

	fields := ExtractFields(rawText)

	if len(fields.Items) < 2 {
		t.Fatalf("expected at least 2 line items, got %d", len(fields.Items))
	}

	byName := make(map[string]decimal.Decimal)
	for _, item := range fields.Items {
		byName[item.Name] = item.Price
	}

	if !byName["Milk"].Equal(decimal.RequireFromString("3.49")) {
		t.Errorf("expected Milk 3.49, got %s", byName["Milk"])
	}
	if !byName["Bread"].Equal(decimal.RequireFromString("2.99")) {
		t.Errorf("expected Bread 2.99, got %s", byName["Bread"])
	}
}
