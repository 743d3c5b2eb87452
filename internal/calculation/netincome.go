package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fpgo/fpgo/internal/domain"
)

var twelve = decimal.NewFromInt(12)

// NetTakeHomeCalculator composes the tax evaluator over the federal,
// state and city layers plus FICA, contributions and expenses into a
// single breakdown. The tables are injected so alternate years or
// jurisdictions can be swapped in.
type NetTakeHomeCalculator struct {
	Tables *domain.TaxTables
	Logger Logger
}

// NewNetTakeHomeCalculator creates a calculator over the given tables.
func NewNetTakeHomeCalculator(tables *domain.TaxTables) *NetTakeHomeCalculator {
	return &NetTakeHomeCalculator{Tables: tables, Logger: &NopLogger{}}
}

// Compute derives the full net take-home breakdown for a profile. The
// only failure mode is a city missing from the dataset.
func (c *NetTakeHomeCalculator) Compute(profile domain.HouseholdProfile) (domain.Breakdown, error) {
	stateRule, err := c.Tables.StateRule(profile.City)
	if err != nil {
		return domain.Breakdown{}, fmt.Errorf("net take-home for %q: %w", profile.City, err)
	}
	cityRule := c.Tables.CityRule(profile.City)

	fourOhOneK := profile.FourOhOneKDollars()

	// Federal, state and city all tax the same base. FICA applies to
	// gross salary with no wage-base cap in this model.
	taxable := profile.Salary.
		Sub(c.Tables.StandardDeduction).
		Sub(fourOhOneK).
		Sub(profile.HSAContribution)

	breakdown := domain.Breakdown{
		PreTaxIncome:        profile.Salary,
		TaxableIncome:       taxable,
		FederalTax:          EvaluateTax(taxable, c.Tables.FederalRates, profile.Status),
		StateTax:            EvaluateTax(taxable, stateRule, profile.Status),
		CityTax:             EvaluateTax(taxable, cityRule, profile.Status),
		SocialSecurityTax:   profile.Salary.Mul(c.Tables.SocialSecurityRate),
		MedicareTax:         profile.Salary.Mul(c.Tables.MedicareRate),
		FourOhOneK:          fourOhOneK,
		HSA:                 profile.HSAContribution,
		RothIRA:             profile.RothIRAContribution,
		AfterTaxInvestments: profile.AfterTaxInvestments,
		Expenses:            profile.AnnualExpenses(),
	}

	breakdown.NetTakeHome = breakdown.PreTaxIncome.
		Sub(breakdown.TotalTax()).
		Sub(breakdown.FourOhOneK).
		Sub(breakdown.HSA).
		Sub(breakdown.RothIRA).
		Sub(breakdown.AfterTaxInvestments).
		Sub(breakdown.Expenses)

	if profile.Salary.IsZero() {
		breakdown.SavingsRate = decimal.Zero
	} else {
		breakdown.SavingsRate = breakdown.NetTakeHome.Div(profile.Salary)
	}

	c.Logger.Debugf("net take-home %s: taxable=%s net=%s rate=%s",
		c.Tables.DisplayName(profile.City),
		taxable.StringFixed(2),
		breakdown.NetTakeHome.StringFixed(2),
		breakdown.SavingsRate.StringFixed(4))

	return breakdown, nil
}
