package solver

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fpgo/fpgo/internal/calculation"
	"github.com/fpgo/fpgo/internal/data"
	"github.com/fpgo/fpgo/internal/domain"
)

func sourceProfile() domain.HouseholdProfile {
	return domain.HouseholdProfile{
		City:                domain.Philadelphia,
		Status:              domain.StatusSingle,
		Age:                 30,
		Salary:              decimal.NewFromInt(100_000),
		FourOhOneKPercent:   decimal.NewFromFloat(0.05),
		HSAContribution:     decimal.NewFromInt(1_000),
		RothIRAContribution: decimal.NewFromInt(7_000),
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

func TestSolveSameCityReproducesSalary(t *testing.T) {
	tables := data.Default2024()
	s := NewSalarySolver(tables)

	source := sourceProfile()
	result, err := s.Solve(source, source.City, nil)
	require.NoError(t, err)

	// Moving nowhere should require (almost exactly) the same salary.
	diff := result.Profile.Salary.Sub(source.Salary).Abs()
	assert.True(t, diff.LessThan(decimal.NewFromFloat(0.01)),
		"solved %s, expected ~%s", result.Profile.Salary, source.Salary)

	// Net of discretionary investing: (37663.11 + 7000) / 100000.
	assert.True(t, result.TargetRate.Equal(decimal.NewFromFloat(0.4466311)),
		"target rate %s", result.TargetRate)

	// MAGI stays below the phase-out, so the Roth comes back whole.
	assert.True(t, result.Profile.RothIRAContribution.Equal(decimal.NewFromInt(7_000)),
		"roth %s", result.Profile.RothIRAContribution)
	assert.True(t, result.Profile.AfterTaxInvestments.IsZero())
}

func TestSolveCrossCityHoldsSavingsRate(t *testing.T) {
	tables := data.Default2024()
	s := NewSalarySolver(tables)

	source := sourceProfile()
	result, err := s.Solve(source, domain.SanFrancisco, nil)
	require.NoError(t, err)

	// San Francisco costs more and California taxes more.
	assert.True(t, result.Profile.Salary.GreaterThan(source.Salary),
		"solved %s", result.Profile.Salary)

	// The solved salary reproduces the target rate once discretionary
	// investments are zeroed again.
	check := result.Profile.Copy()
	check.RothIRAContribution = decimal.Zero
	check.AfterTaxInvestments = decimal.Zero
	breakdown, err := calculation.NewNetTakeHomeCalculator(tables).Compute(check)
	require.NoError(t, err)

	diff := breakdown.SavingsRate.Sub(result.TargetRate).Abs()
	assert.True(t, diff.LessThan(decimal.NewFromFloat(1e-9)),
		"rate %s vs target %s", breakdown.SavingsRate, result.TargetRate)
}

func TestSolveExcessDiscretionarySpillsToAfterTax(t *testing.T) {
	tables := data.Default2024()
	s := NewSalarySolver(tables)

	source := sourceProfile()
	source.RothIRAContribution = decimal.NewFromInt(7_000)
	source.AfterTaxInvestments = decimal.NewFromInt(20_000)

	result, err := s.Solve(source, domain.Pittsburgh, nil)
	require.NoError(t, err)

	total := result.Profile.RothIRAContribution.Add(result.Profile.AfterTaxInvestments)
	assert.True(t, total.Equal(decimal.NewFromInt(27_000)), "total %s", total)

	limit := calculation.NewLimits(tables).RothIRALimit(result.Profile)
	assert.True(t, result.Profile.RothIRAContribution.Equal(limit),
		"roth %s limit %s", result.Profile.RothIRAContribution, limit)
}

func TestSolveCustomHousingOverride(t *testing.T) {
	tables := data.Default2024()
	s := NewSalarySolver(tables)

	source := sourceProfile()

	modest := decimal.NewFromInt(2_500)
	lavish := decimal.NewFromInt(6_000)

	withModest, err := s.Solve(source, domain.SanFrancisco, &modest)
	require.NoError(t, err)
	withLavish, err := s.Solve(source, domain.SanFrancisco, &lavish)
	require.NoError(t, err)

	// The override lands on the largest housing item verbatim.
	assert.True(t, withModest.Profile.Expenses[0].MonthlyAmount.Equal(modest))
	assert.True(t, withLavish.Profile.Expenses[0].MonthlyAmount.Equal(lavish))

	assert.True(t, withLavish.Profile.Salary.GreaterThan(withModest.Profile.Salary),
		"lavish %s should outcost modest %s",
		withLavish.Profile.Salary, withModest.Profile.Salary)
}

func TestSolveUnknownDestination(t *testing.T) {
	s := NewSalarySolver(data.Default2024())

	_, err := s.Solve(sourceProfile(), domain.City("Gotham"), nil)
	var solverErr *SolverError
	require.ErrorAs(t, err, &solverErr)
	assert.Equal(t, "salary", solverErr.Operation)
}

func TestSolveUnknownSourceCity(t *testing.T) {
	s := NewSalarySolver(data.Default2024())

	source := sourceProfile()
	source.City = domain.City("Gotham")

	_, err := s.Solve(source, domain.Philadelphia, nil)
	var solverErr *SolverError
	require.ErrorAs(t, err, &solverErr)
}
