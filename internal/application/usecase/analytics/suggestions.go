// Package analytics contains the spending-summary aggregation engine.
package analytics

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Category names the suggestion rules key on.
const (
	categoryHousing       = "Housing"
	categoryDining        = "Dining"
	categoryEntertainment = "Entertainment"
	categoryShopping      = "Shopping"
	categoryTravel        = "Travel"
)

// Suggestion messages. The not-enough-data message short-circuits every rule;
// the fallback is emitted only when no rule fires.
const (
	msgNotEnoughData = "Not enough data to generate suggestions. Add more expenses to see insights."
	msgHousing       = "Housing takes up more than half of your spending. Reviewing rent or mortgage options could free up your budget."
	msgDining        = "Dining accounts for over 15% of your spending. Preparing more meals at home could reduce costs."
	msgNonEssential  = "Non-essential spending (Entertainment, Shopping, Travel) exceeds 30% of your total. Consider setting a discretionary budget."
	msgBalanced      = "Your spending looks balanced. Keep tracking expenses to stay on top of your budget."
)

var (
	housingShareLimit      = decimal.NewFromFloat(0.50)
	diningShareLimit       = decimal.NewFromFloat(0.15)
	nonEssentialShareLimit = decimal.NewFromFloat(0.30)
	dominantShareLimit     = decimal.NewFromFloat(0.50)
)

// buildSuggestions evaluates the optimization rules against the filtered
// category totals, in rule order. Every matching rule contributes a message;
// rules are independent and may all fire together.
func buildSuggestions(totals map[string]decimal.Decimal, grandTotal decimal.Decimal) []string {
	if len(totals) == 0 || grandTotal.IsZero() {
		return []string{msgNotEnoughData}
	}

	var suggestions []string

	// Rule 1: housing share > 50%
	if totals[categoryHousing].GreaterThan(grandTotal.Mul(housingShareLimit)) {
		suggestions = append(suggestions, msgHousing)
	}

	// Rule 2: dining share > 15%
	if totals[categoryDining].GreaterThan(grandTotal.Mul(diningShareLimit)) {
		suggestions = append(suggestions, msgDining)
	}

	// Rule 3: combined non-essential share > 30%
	nonEssential := totals[categoryEntertainment].
		Add(totals[categoryShopping]).
		Add(totals[categoryTravel])
	if nonEssential.GreaterThan(grandTotal.Mul(nonEssentialShareLimit)) {
		suggestions = append(suggestions, msgNonEssential)
	}

	// Rule 4: at least 3 categories and a single dominant one
	if len(totals) >= 3 {
		if name, total := largestCategory(totals); total.GreaterThan(grandTotal.Mul(dominantShareLimit)) {
			suggestions = append(suggestions, fmt.Sprintf(
				"Most of your spending is concentrated in %s. Setting a monthly budget for this category could help balance your expenses.",
				name,
			))
		}
	}

	if len(suggestions) == 0 {
		return []string{msgBalanced}
	}
	return suggestions
}

// largestCategory returns the category with the highest total, breaking ties
// by name so the result is deterministic.
func largestCategory(totals map[string]decimal.Decimal) (string, decimal.Decimal) {
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	best := names[0]
	for _, name := range names[1:] {
		if totals[name].GreaterThan(totals[best]) {
			best = name
		}
	}
	return best, totals[best]
}
