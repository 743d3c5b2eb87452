package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/fpgo/fpgo/internal/domain"
)

// SocialSecurityInput describes one earner. ClaimAge defaults to
// RetirementAge and WorkStartAge to the dataset default when zero.
type SocialSecurityInput struct {
	RetirementAge int
	ClaimAge      int
	AnnualIncome  decimal.Decimal
	WorkStartAge  int
}

// SocialSecurityEstimator approximates an annual Social Security
// benefit from a flat income history: AIME without historical wage
// indexing, the three-tier bend-point PIA formula, and the claim-age
// early/delayed adjustment.
type SocialSecurityEstimator struct {
	Rules domain.SocialSecurityRules
}

// NewSocialSecurityEstimator creates an estimator over the given SSA
// rules.
func NewSocialSecurityEstimator(rules domain.SocialSecurityRules) *SocialSecurityEstimator {
	return &SocialSecurityEstimator{Rules: rules}
}

// EstimateAnnualBenefit computes the annual benefit for an earner.
// Claiming before the minimum claim age or a non-positive income yields
// zero. The adjusted monthly PIA is rounded to cents before
// annualizing.
func (e *SocialSecurityEstimator) EstimateAnnualBenefit(input SocialSecurityInput) decimal.Decimal {
	claimAge := input.ClaimAge
	if claimAge == 0 {
		claimAge = input.RetirementAge
	}
	workStartAge := input.WorkStartAge
	if workStartAge == 0 {
		workStartAge = e.Rules.WorkStartAge
	}

	if claimAge < e.Rules.MinClaimAge {
		return decimal.Zero
	}
	if input.AnnualIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	yearsWorked := input.RetirementAge - workStartAge
	if yearsWorked < 0 {
		yearsWorked = 0
	}
	if yearsWorked > e.Rules.TopEarningYears {
		yearsWorked = e.Rules.TopEarningYears
	}

	aime := e.AIME(input.AnnualIncome, yearsWorked)
	pia := e.PIA(aime)
	adjusted := pia.Mul(e.AdjustmentFactor(claimAge)).Round(2)
	return adjusted.Mul(twelve)
}

// AIME approximates average indexed monthly earnings from a flat
// income: cap at the taxable wage base, scale by years worked, average
// over the top-35 window in months.
func (e *SocialSecurityEstimator) AIME(annualIncome decimal.Decimal, yearsWorked int) decimal.Decimal {
	capped := decimal.Min(annualIncome, e.Rules.TaxableWageBase)
	total := capped.Mul(decimal.NewFromInt(int64(yearsWorked)))
	months := decimal.NewFromInt(int64(e.Rules.TopEarningYears)).Mul(twelve)
	return total.Div(months)
}

// PIA applies the bend-point formula to a monthly AIME.
func (e *SocialSecurityEstimator) PIA(aime decimal.Decimal) decimal.Decimal {
	r := e.Rules
	switch {
	case aime.LessThanOrEqual(r.BendPoint1Monthly):
		return aime.Mul(r.BendRate1)
	case aime.LessThanOrEqual(r.BendPoint2Monthly):
		return r.BendPoint1Monthly.Mul(r.BendRate1).
			Add(aime.Sub(r.BendPoint1Monthly).Mul(r.BendRate2))
	default:
		return r.BendPoint1Monthly.Mul(r.BendRate1).
			Add(r.BendPoint2Monthly.Sub(r.BendPoint1Monthly).Mul(r.BendRate2)).
			Add(aime.Sub(r.BendPoint2Monthly).Mul(r.BendRate3))
	}
}

// AdjustmentFactor scales the PIA for early or delayed claiming
// relative to full retirement age. Delayed credits stop accruing at the
// maximum delay age.
func (e *SocialSecurityEstimator) AdjustmentFactor(claimAge int) decimal.Decimal {
	one := decimal.NewFromInt(1)
	monthsFromFRA := (claimAge - e.Rules.FullRetirementAge) * 12

	switch {
	case monthsFromFRA < 0:
		monthsEarly := int64(-monthsFromFRA)
		if monthsEarly <= 36 {
			return one.Sub(e.Rules.EarlyReduction.Mul(decimal.NewFromInt(monthsEarly)))
		}
		return one.
			Sub(e.Rules.EarlyReduction.Mul(decimal.NewFromInt(36))).
			Sub(e.Rules.EarlyReductionExtended.Mul(decimal.NewFromInt(monthsEarly - 36)))
	case monthsFromFRA > 0:
		maxMonths := int64(e.Rules.MaxDelayAge-e.Rules.FullRetirementAge) * 12
		months := int64(monthsFromFRA)
		if months > maxMonths {
			months = maxMonths
		}
		return one.Add(e.Rules.DelayedCredit.Mul(decimal.NewFromInt(months)))
	default:
		return one
	}
}
