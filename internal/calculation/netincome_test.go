package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fpgo/fpgo/internal/data"
	"github.com/fpgo/fpgo/internal/domain"
)

// philadelphiaProfile is the hand-checked reference household: $2,610
// of monthly expenses against the 2024 Philadelphia tax stack.
func philadelphiaProfile() domain.HouseholdProfile {
	return domain.HouseholdProfile{
		City:              domain.Philadelphia,
		Status:            domain.StatusSingle,
		Age:               30,
		Salary:            decimal.NewFromInt(100_000),
		FourOhOneKPercent: decimal.NewFromFloat(0.05),
		HSAContribution:   decimal.NewFromInt(1_000),
		Expenses: []domain.ExpenseItem{
			{Name: "Rent", Category: domain.Housing, MonthlyAmount: decimal.NewFromInt(1500)},
			{Name: "Food", Category: domain.Grocery, MonthlyAmount: decimal.NewFromInt(300)},
			{Name: "Utilities", Category: domain.Utilities, MonthlyAmount: decimal.NewFromInt(110)},
			{Name: "Car", Category: domain.Transportation, MonthlyAmount: decimal.NewFromInt(500)},
			{Name: "Entertainment", Category: domain.Miscellaneous, MonthlyAmount: decimal.NewFromInt(100)},
			{Name: "Misc", Category: domain.Miscellaneous, MonthlyAmount: decimal.NewFromInt(100)},
		},
	}
}

func TestComputePhiladelphiaHandChecked(t *testing.T) {
	calc := NewNetTakeHomeCalculator(data.Default2024())
	b, err := calc.Compute(philadelphiaProfile())
	require.NoError(t, err)

	// taxable = 100000 - 12550 - 5000 - 1000
	assert.True(t, b.TaxableIncome.Equal(decimal.NewFromInt(81_450)), "taxable %s", b.TaxableIncome)
	assert.True(t, b.FederalTax.Equal(decimal.NewFromInt(11_812)), "federal %s", b.FederalTax)
	assert.True(t, b.StateTax.Equal(decimal.NewFromFloat(2500.515)), "state %s", b.StateTax)
	assert.True(t, b.CityTax.Equal(decimal.NewFromFloat(3054.375)), "city %s", b.CityTax)
	assert.True(t, b.SocialSecurityTax.Equal(decimal.NewFromInt(6_200)), "ss %s", b.SocialSecurityTax)
	assert.True(t, b.MedicareTax.Equal(decimal.NewFromInt(1_450)), "medicare %s", b.MedicareTax)
	assert.True(t, b.Expenses.Equal(decimal.NewFromInt(31_320)), "expenses %s", b.Expenses)

	assert.True(t, b.NetTakeHome.Equal(decimal.NewFromFloat(37_663.11)), "net %s", b.NetTakeHome)
	assert.True(t, b.SavingsRate.Equal(decimal.NewFromFloat(0.3766311)), "rate %s", b.SavingsRate)
}

func TestComputeNoStateOrCityTax(t *testing.T) {
	calc := NewNetTakeHomeCalculator(data.Default2024())

	profile := philadelphiaProfile()
	profile.City = domain.Seattle

	b, err := calc.Compute(profile)
	require.NoError(t, err)
	assert.True(t, b.StateTax.IsZero(), "state %s", b.StateTax)
	assert.True(t, b.CityTax.IsZero(), "city %s", b.CityTax)
}

func TestComputeDenverFlatCityTax(t *testing.T) {
	calc := NewNetTakeHomeCalculator(data.Default2024())

	profile := philadelphiaProfile()
	profile.City = domain.Denver

	b, err := calc.Compute(profile)
	require.NoError(t, err)
	assert.True(t, b.CityTax.Equal(decimal.NewFromInt(69)), "city %s", b.CityTax)

	// The flat amount is owed even with no income.
	profile.Salary = decimal.Zero
	profile.FourOhOneKPercent = decimal.Zero
	profile.HSAContribution = decimal.Zero
	b, err = calc.Compute(profile)
	require.NoError(t, err)
	assert.True(t, b.CityTax.Equal(decimal.NewFromInt(69)), "city %s", b.CityTax)
}

func TestComputeZeroSalarySavingsRate(t *testing.T) {
	calc := NewNetTakeHomeCalculator(data.Default2024())

	profile := philadelphiaProfile()
	profile.Salary = decimal.Zero
	profile.FourOhOneKPercent = decimal.Zero
	profile.HSAContribution = decimal.Zero

	b, err := calc.Compute(profile)
	require.NoError(t, err)
	assert.True(t, b.SavingsRate.IsZero())
}

func TestComputeUnknownCity(t *testing.T) {
	calc := NewNetTakeHomeCalculator(data.Default2024())

	profile := philadelphiaProfile()
	profile.City = domain.City("Gotham")

	_, err := calc.Compute(profile)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Gotham")
}
