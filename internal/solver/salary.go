package solver

import (
	"github.com/shopspring/decimal"

	"github.com/fpgo/fpgo/internal/calculation"
	"github.com/fpgo/fpgo/internal/domain"
)

// SalarySolver answers "what salary do I need in the destination city
// to keep my standard of living". Living standard is pinned to the
// savings rate: the solved salary reproduces the source city's savings
// rate after expenses are converted to the destination's cost of
// living.
type SalarySolver struct {
	Calculator *calculation.NetTakeHomeCalculator
	Converter  *calculation.Converter
	Limits     *calculation.Limits
	Logger     calculation.Logger
	Options    Options
}

// NewSalarySolver wires a solver over one dataset.
func NewSalarySolver(tables *domain.TaxTables) *SalarySolver {
	return &SalarySolver{
		Calculator: calculation.NewNetTakeHomeCalculator(tables),
		Converter:  calculation.NewConverter(tables.CostOfLiving),
		Limits:     calculation.NewLimits(tables),
		Logger:     &calculation.NopLogger{},
		Options:    DefaultOptions(),
	}
}

// Result pairs the destination profile with the breakdowns on both
// sides of the move.
type Result struct {
	Source      domain.Breakdown        `json:"source"`
	Destination domain.Breakdown        `json:"destination"`
	Profile     domain.HouseholdProfile `json:"profile"`
	TargetRate  decimal.Decimal         `json:"targetRate"`
}

// Solve finds the destination-city salary that reproduces the source
// profile's savings rate. Discretionary investments (Roth IRA and
// after-tax) are zeroed while solving since they do not scale with
// cost of living; afterwards the original discretionary total is
// restored up to the destination Roth limit, with any excess routed to
// after-tax investments, and the 401(k) percentage is re-clamped to
// the statutory dollar cap at the solved salary.
func (s *SalarySolver) Solve(source domain.HouseholdProfile, destination domain.City, customHousing *decimal.Decimal) (*Result, error) {
	sourceBreakdown, err := s.Calculator.Compute(source)
	if err != nil {
		return nil, &SolverError{Operation: "salary", Message: "source breakdown failed", Cause: err}
	}

	working := source.Copy()
	working.City = destination
	discretionary := working.RothIRAContribution.Add(working.AfterTaxInvestments)
	working.RothIRAContribution = decimal.Zero
	working.AfterTaxInvestments = decimal.Zero

	// The target savings rate is measured with discretionary
	// investments zeroed on both sides, so they cannot skew the
	// comparison before being re-derived at the solved salary.
	zeroedSource := source.Copy()
	zeroedSource.RothIRAContribution = decimal.Zero
	zeroedSource.AfterTaxInvestments = decimal.Zero
	zeroedBreakdown, err := s.Calculator.Compute(zeroedSource)
	if err != nil {
		return nil, &SolverError{Operation: "salary", Message: "source breakdown failed", Cause: err}
	}
	targetRate := zeroedBreakdown.SavingsRate

	working.Expenses, err = s.Converter.ConvertExpenses(source.Expenses, source.City, destination, customHousing)
	if err != nil {
		return nil, &SolverError{Operation: "salary", Message: "expense conversion failed", Cause: err}
	}

	// The raw rate difference flattens at high salaries; scaling by the
	// salary keeps the root well conditioned for the secant steps.
	objective := func(salary decimal.Decimal) (decimal.Decimal, error) {
		candidate := working.Copy()
		candidate.Salary = salary
		breakdown, err := s.Calculator.Compute(candidate)
		if err != nil {
			return decimal.Zero, err
		}
		return breakdown.SavingsRate.Sub(targetRate).Mul(salary), nil
	}

	salary, err := Secant(objective, decimal.NewFromInt(1), decimal.NewFromInt(1_000_000), s.Options)
	if err != nil {
		return nil, err
	}
	working.Salary = salary

	rothLimit := s.Limits.RothIRALimit(working)
	working.RothIRAContribution = decimal.Min(discretionary, rothLimit)
	working.AfterTaxInvestments = discretionary.Sub(working.RothIRAContribution)
	working.FourOhOneKPercent = s.Limits.ClampFourOhOneKPercent(working)

	destBreakdown, err := s.Calculator.Compute(working)
	if err != nil {
		return nil, &SolverError{Operation: "salary", Message: "destination breakdown failed", Cause: err}
	}

	s.Logger.Debugf("salary solve %s -> %s: %s -> %s",
		source.City, destination,
		source.Salary.StringFixed(0), salary.StringFixed(2))

	return &Result{
		Source:      sourceBreakdown,
		Destination: destBreakdown,
		Profile:     working,
		TargetRate:  targetRate,
	}, nil
}
