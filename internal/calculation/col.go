package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fpgo/fpgo/internal/domain"
)

// Converter rescales dollar amounts between cities using the
// per-category cost-of-living indices.
type Converter struct {
	Table domain.CostOfLivingTable
}

// NewConverter creates a Converter over the given index table.
func NewConverter(table domain.CostOfLivingTable) *Converter {
	return &Converter{Table: table}
}

// Convert rescales an amount from one city to another within a
// category. Fixed costs pass through unchanged. Missing cities or
// categories are dataset defects and fail with a descriptive error.
func (c *Converter) Convert(amount decimal.Decimal, from, to domain.City, category domain.Category) (decimal.Decimal, error) {
	if category == domain.Fixed {
		return amount, nil
	}
	srcIdx, err := c.Table.Index(from, category)
	if err != nil {
		return decimal.Zero, fmt.Errorf("convert %s: %w", category, err)
	}
	dstIdx, err := c.Table.Index(to, category)
	if err != nil {
		return decimal.Zero, fmt.Errorf("convert %s: %w", category, err)
	}
	return amount.Mul(dstIdx).Div(srcIdx), nil
}

// ConvertExpenses rescales every expense line item from one city to
// another. When customHousing is non-nil, the single largest Housing
// line item is replaced by that monthly amount instead of being
// converted; the model is that a mover rightsizes one dominant housing
// cost, while smaller housing items (insurance, fees) still scale with
// the destination market. Ties go to the earliest item.
func (c *Converter) ConvertExpenses(expenses []domain.ExpenseItem, from, to domain.City, customHousing *decimal.Decimal) ([]domain.ExpenseItem, error) {
	overrideIdx := -1
	if customHousing != nil {
		for i, e := range expenses {
			if e.Category != domain.Housing {
				continue
			}
			if overrideIdx < 0 || e.MonthlyAmount.GreaterThan(expenses[overrideIdx].MonthlyAmount) {
				overrideIdx = i
			}
		}
	}

	out := make([]domain.ExpenseItem, len(expenses))
	for i, e := range expenses {
		converted := e
		if i == overrideIdx {
			converted.MonthlyAmount = *customHousing
		} else {
			amount, err := c.Convert(e.MonthlyAmount, from, to, e.Category)
			if err != nil {
				return nil, fmt.Errorf("expense %q: %w", e.Name, err)
			}
			converted.MonthlyAmount = amount
		}
		out[i] = converted
	}
	return out, nil
}
