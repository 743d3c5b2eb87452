package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fpgo/fpgo/internal/data"
	"github.com/fpgo/fpgo/internal/domain"
)

func TestConvertHousingPhiladelphiaToSanFrancisco(t *testing.T) {
	conv := NewConverter(data.Default2024().CostOfLiving)

	got, err := conv.Convert(decimal.NewFromInt(1000), domain.Philadelphia, domain.SanFrancisco, domain.Housing)
	require.NoError(t, err)

	// 1000 * 274.9 / 97.4
	assert.Equal(t, "2822.38", got.StringFixed(2))
}

func TestConvertRoundTrip(t *testing.T) {
	conv := NewConverter(data.Default2024().CostOfLiving)
	tolerance := decimal.NewFromFloat(1e-6)
	amount := decimal.NewFromFloat(1234.56)

	for _, category := range domain.AdjustableCategories {
		there, err := conv.Convert(amount, domain.Chicago, domain.Boston, category)
		require.NoError(t, err)
		back, err := conv.Convert(there, domain.Boston, domain.Chicago, category)
		require.NoError(t, err)

		assert.True(t, back.Sub(amount).Abs().LessThan(tolerance),
			"%s: round trip drifted from %s to %s", category, amount, back)
	}
}

func TestConvertFixedPassthrough(t *testing.T) {
	conv := NewConverter(data.Default2024().CostOfLiving)

	amount := decimal.NewFromFloat(432.10)
	got, err := conv.Convert(amount, domain.NewYorkCity, domain.Houston, domain.Fixed)
	require.NoError(t, err)
	assert.True(t, got.Equal(amount))
}

func TestConvertMissingCityFails(t *testing.T) {
	conv := NewConverter(data.Default2024().CostOfLiving)

	_, err := conv.Convert(decimal.NewFromInt(100), domain.City("Gotham"), domain.Boston, domain.Housing)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Gotham")

	_, err = conv.Convert(decimal.NewFromInt(100), domain.Boston, domain.Boston, domain.Category("Pets"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Pets")
}

func TestConvertExpensesCustomHousingOverride(t *testing.T) {
	conv := NewConverter(data.Default2024().CostOfLiving)

	expenses := []domain.ExpenseItem{
		{Name: "Rent", Category: domain.Housing, MonthlyAmount: decimal.NewFromInt(2000)},
		{Name: "Renter's Insurance", Category: domain.Housing, MonthlyAmount: decimal.NewFromInt(20)},
		{Name: "Subscriptions", Category: domain.Fixed, MonthlyAmount: decimal.NewFromInt(50)},
	}
	override := decimal.NewFromInt(3_100)

	got, err := conv.ConvertExpenses(expenses, domain.Philadelphia, domain.SanFrancisco, &override)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Largest housing item takes the override verbatim.
	assert.True(t, got[0].MonthlyAmount.Equal(override), "rent %s", got[0].MonthlyAmount)

	// Smaller housing items still convert by the index ratio.
	wantInsurance, err := conv.Convert(decimal.NewFromInt(20), domain.Philadelphia, domain.SanFrancisco, domain.Housing)
	require.NoError(t, err)
	assert.True(t, got[1].MonthlyAmount.Equal(wantInsurance))

	// Fixed passes through.
	assert.True(t, got[2].MonthlyAmount.Equal(decimal.NewFromInt(50)))
}

func TestConvertExpensesWithoutOverride(t *testing.T) {
	conv := NewConverter(data.Default2024().CostOfLiving)

	expenses := []domain.ExpenseItem{
		{Name: "Rent", Category: domain.Housing, MonthlyAmount: decimal.NewFromInt(1000)},
		{Name: "Car", Category: domain.Transportation, MonthlyAmount: decimal.NewFromInt(400)},
	}

	got, err := conv.ConvertExpenses(expenses, domain.Philadelphia, domain.Pittsburgh, nil)
	require.NoError(t, err)
	require.Len(t, got, 2)

	wantRent, _ := conv.Convert(decimal.NewFromInt(1000), domain.Philadelphia, domain.Pittsburgh, domain.Housing)
	wantCar, _ := conv.Convert(decimal.NewFromInt(400), domain.Philadelphia, domain.Pittsburgh, domain.Transportation)
	assert.True(t, got[0].MonthlyAmount.Equal(wantRent))
	assert.True(t, got[1].MonthlyAmount.Equal(wantCar))
}
