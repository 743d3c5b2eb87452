package output

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders a dollar amount with two decimal places.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatPercent renders a fraction as a percentage with one decimal.
func FormatPercent(fraction decimal.Decimal) string {
	return fraction.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}

// formatAxisValue compacts a dollar value for chart axes.
func formatAxisValue(value float64) string {
	switch {
	case math.Abs(value) >= 1_000_000:
		return fmt.Sprintf("$%.1fM", value/1_000_000)
	case math.Abs(value) >= 1_000:
		return fmt.Sprintf("$%.0fK", value/1_000)
	default:
		return fmt.Sprintf("$%.0f", value)
	}
}
