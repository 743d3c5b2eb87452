package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CostOfLivingTable maps city and category to a relative cost index.
// The ratio between two cities' indices for the same category is the
// conversion factor between them.
type CostOfLivingTable map[City]map[Category]decimal.Decimal

// Index returns the cost index for a city/category pair. A missing
// entry is a dataset defect, so it is reported as an error rather than
// propagating a zero through a division.
func (t CostOfLivingTable) Index(city City, category Category) (decimal.Decimal, error) {
	byCategory, ok := t[city]
	if !ok {
		return decimal.Zero, fmt.Errorf("no cost-of-living data for city %q", city)
	}
	idx, ok := byCategory[category]
	if !ok {
		return decimal.Zero, fmt.Errorf("no cost-of-living index for %q in %q", category, city)
	}
	if idx.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("non-positive cost-of-living index for %q in %q", category, city)
	}
	return idx, nil
}

// PhaseOutRange is a modified-AGI window over which a contribution
// limit phases linearly to zero.
type PhaseOutRange struct {
	Low  decimal.Decimal
	High decimal.Decimal
}

// ContributionLimits holds the statutory retirement-account limits for
// one tax year.
type ContributionLimits struct {
	HSAContribution   map[FilingStatus]decimal.Decimal
	HSACatchUp        decimal.Decimal // age 55+
	HSACatchUpAge     int
	RothIRALimit      decimal.Decimal
	RothIRACatchUp    decimal.Decimal // age 50+
	RothIRAPhaseOut   map[FilingStatus]PhaseOutRange
	FourOhOneKLimit   decimal.Decimal
	FourOhOneKCatchUp decimal.Decimal // age 50+
	CatchUpAge        int
}

// SocialSecurityRules holds the SSA parameters used by the benefit
// estimator.
type SocialSecurityRules struct {
	FullRetirementAge      int
	MaxDelayAge            int
	MinClaimAge            int
	TopEarningYears        int
	WorkStartAge           int
	TaxableWageBase        decimal.Decimal
	BendPoint1Monthly      decimal.Decimal
	BendPoint2Monthly      decimal.Decimal
	BendRate1              decimal.Decimal
	BendRate2              decimal.Decimal
	BendRate3              decimal.Decimal
	EarlyReduction         decimal.Decimal // per month, first 36 months early
	EarlyReductionExtended decimal.Decimal // per month beyond 36
	DelayedCredit          decimal.Decimal // per month delayed past FRA
}

// TaxTables is the injected configuration for one tax year: every
// jurisdiction's tax rule, FICA rates, contribution limits, the
// cost-of-living dataset and the SSA rules. Calculators take this as a
// parameter so multiple years or jurisdictions can coexist and be
// swapped in tests.
type TaxTables struct {
	Year               int
	StandardDeduction  decimal.Decimal
	SocialSecurityRate decimal.Decimal
	MedicareRate       decimal.Decimal
	FederalRates       TaxRule
	StateRates         map[State]TaxRule
	CityRates          map[City]TaxRule
	CityStates         map[City]State
	StateAbbreviations map[State]string
	CostOfLiving       CostOfLivingTable
	Limits             ContributionLimits
	SocialSecurity     SocialSecurityRules
}

// StateOf resolves the state a city belongs to.
func (t *TaxTables) StateOf(city City) (State, error) {
	state, ok := t.CityStates[city]
	if !ok {
		return "", fmt.Errorf("unknown city %q", city)
	}
	return state, nil
}

// StateRule returns the state income tax rule for a city's state.
// States without an income tax carry an explicit NoneRule.
func (t *TaxTables) StateRule(city City) (TaxRule, error) {
	state, err := t.StateOf(city)
	if err != nil {
		return nil, err
	}
	rule, ok := t.StateRates[state]
	if !ok {
		return NoneRule{}, nil
	}
	return rule, nil
}

// CityRule returns the city income tax rule. Cities without their own
// tax carry an explicit NoneRule.
func (t *TaxTables) CityRule(city City) TaxRule {
	rule, ok := t.CityRates[city]
	if !ok {
		return NoneRule{}
	}
	return rule
}

// DisplayName renders "City, ST" for reports.
func (t *TaxTables) DisplayName(city City) string {
	state, err := t.StateOf(city)
	if err != nil {
		return string(city)
	}
	abbr, ok := t.StateAbbreviations[state]
	if !ok {
		return string(city)
	}
	return fmt.Sprintf("%s, %s", city, abbr)
}
