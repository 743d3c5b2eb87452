package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/fpgo/fpgo/internal/domain"
)

// Limits derives the statutory contribution caps that apply to a
// profile: the Roth IRA phase-out, the HSA status/age limit and the
// 401(k) dollar cap. Used by input validation and by the salary solver
// when it re-derives contributions at the solved salary.
type Limits struct {
	Tables *domain.TaxTables
}

// NewLimits creates a Limits helper over the given tables.
func NewLimits(tables *domain.TaxTables) *Limits {
	return &Limits{Tables: tables}
}

// ModifiedAGI approximates modified adjusted gross income as salary
// minus the standard deduction and pre-tax contributions.
func (l *Limits) ModifiedAGI(profile domain.HouseholdProfile) decimal.Decimal {
	return profile.Salary.
		Sub(l.Tables.StandardDeduction).
		Sub(profile.HSAContribution).
		Sub(profile.FourOhOneKDollars())
}

// RothIRALimit computes the maximum Roth IRA contribution for a
// profile: the base limit plus age catch-up, phased linearly to zero
// across the filing status's modified-AGI window.
func (l *Limits) RothIRALimit(profile domain.HouseholdProfile) decimal.Decimal {
	limits := l.Tables.Limits
	maxForAge := limits.RothIRALimit
	if profile.Age >= limits.CatchUpAge {
		maxForAge = maxForAge.Add(limits.RothIRACatchUp)
	}

	rng, ok := limits.RothIRAPhaseOut[profile.Status]
	if !ok {
		return maxForAge
	}

	magi := l.ModifiedAGI(profile)
	switch {
	case magi.LessThanOrEqual(rng.Low):
		return maxForAge
	case magi.GreaterThanOrEqual(rng.High):
		return decimal.Zero
	default:
		width := rng.High.Sub(rng.Low)
		reduction := magi.Sub(rng.Low).Mul(maxForAge).Div(width)
		return maxForAge.Sub(reduction)
	}
}

// HSALimit computes the maximum HSA contribution for a profile's
// filing status, with the age catch-up applied.
func (l *Limits) HSALimit(profile domain.HouseholdProfile) decimal.Decimal {
	limits := l.Tables.Limits
	base, ok := limits.HSAContribution[profile.Status]
	if !ok {
		return decimal.Zero
	}
	if profile.Age >= limits.HSACatchUpAge {
		base = base.Add(limits.HSACatchUp)
	}
	return base
}

// FourOhOneKLimit is the 401(k) elective deferral dollar cap for a
// profile's age.
func (l *Limits) FourOhOneKLimit(profile domain.HouseholdProfile) decimal.Decimal {
	limits := l.Tables.Limits
	max := limits.FourOhOneKLimit
	if profile.Age >= limits.CatchUpAge {
		max = max.Add(limits.FourOhOneKCatchUp)
	}
	return max
}

// ClampFourOhOneKPercent lowers the contribution percentage so that
// its dollar value at the given salary stays within the statutory cap.
func (l *Limits) ClampFourOhOneKPercent(profile domain.HouseholdProfile) decimal.Decimal {
	if profile.Salary.LessThanOrEqual(decimal.Zero) {
		return profile.FourOhOneKPercent
	}
	maxPercent := l.FourOhOneKLimit(profile).Div(profile.Salary)
	return decimal.Min(profile.FourOhOneKPercent, maxPercent)
}
