package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CoastFireConfig parameterizes a Coast-FIRE projection. The target is
// RetirementSpend divided by SafeWithdrawRate; Inflation, when
// non-zero, grows the spend (and hence the target) per year of age.
// SocialSecurity, when set, reduces the spend by the estimated benefit
// from the claim age onward, lowering the target for those ages.
type CoastFireConfig struct {
	CurrentAge          int
	RetirementAge       int
	RetirementSpend     decimal.Decimal
	CurrentInvested     decimal.Decimal
	MonthlyContribution decimal.Decimal
	AnnualReturn        decimal.Decimal
	SafeWithdrawRate    decimal.Decimal
	Inflation           decimal.Decimal
	SocialSecurity      *SocialSecurityInput
}

// CoastFirePoint is one year of the projection.
type CoastFirePoint struct {
	Age               int             `json:"age"`
	CoastValue        decimal.Decimal `json:"coastValue"`
	WithContributions decimal.Decimal `json:"withContributions"`
	TargetAmount      decimal.Decimal `json:"targetAmount"`
	CoastFrom         decimal.Decimal `json:"coastFrom"`
}

// CoastFireResult is the projected trajectory plus the detected
// crossing ages. FIREAge is the first age at which the contributing
// path reaches that age's target; CoastFireAge is the first age at
// which contributions could stop with the balance still compounding to
// the retirement-age target. Either is zero when never reached.
type CoastFireResult struct {
	Points         []CoastFirePoint `json:"points"`
	AlreadyCoast   bool             `json:"alreadyCoast"`
	FIREAge        int              `json:"fireAge"`
	CoastFireAge   int              `json:"coastFireAge"`
	TargetAtRetire decimal.Decimal  `json:"targetAtRetirement"`
}

// CoastFireProjector produces compound-growth trajectories with and
// without continued contributions and finds the crossing ages.
type CoastFireProjector struct {
	Estimator *SocialSecurityEstimator
	Logger    Logger
}

// NewCoastFireProjector creates a projector. The estimator may be nil
// when no Social Security reduction is requested.
func NewCoastFireProjector(estimator *SocialSecurityEstimator) *CoastFireProjector {
	return &CoastFireProjector{Estimator: estimator, Logger: &NopLogger{}}
}

// Project builds the year-by-year trajectory from current age through
// retirement age.
func (p *CoastFireProjector) Project(config CoastFireConfig) (*CoastFireResult, error) {
	if config.CurrentAge >= config.RetirementAge {
		return nil, fmt.Errorf("coast fire: current age %d must be below retirement age %d",
			config.CurrentAge, config.RetirementAge)
	}
	if config.SafeWithdrawRate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("coast fire: safe withdraw rate must be positive")
	}
	if config.SocialSecurity != nil && p.Estimator == nil {
		return nil, fmt.Errorf("coast fire: social security reduction requested without an estimator")
	}

	horizon := config.RetirementAge - config.CurrentAge

	result := &CoastFireResult{
		Points:         make([]CoastFirePoint, 0, horizon+1),
		TargetAtRetire: p.targetAt(config, config.RetirementAge),
	}

	contributed := make([]decimal.Decimal, horizon+1)
	for year := 0; year <= horizon; year++ {
		age := config.CurrentAge + year
		contributed[year] = p.withContributions(config, year)

		point := CoastFirePoint{
			Age:               age,
			CoastValue:        compound(config.CurrentInvested, config.AnnualReturn, year),
			WithContributions: contributed[year],
			TargetAmount:      p.targetAt(config, age),
		}
		result.Points = append(result.Points, point)

		if result.FIREAge == 0 && point.WithContributions.GreaterThanOrEqual(point.TargetAmount) {
			result.FIREAge = age
		}
	}

	result.AlreadyCoast = compound(config.CurrentInvested, config.AnnualReturn, horizon).
		GreaterThanOrEqual(result.TargetAtRetire)

	// Coast-FIRE age: the earliest stop-age whose then-current balance,
	// compounded with no further contributions, still reaches the
	// retirement-age target.
	for year := 0; year <= horizon; year++ {
		atRetirement := compound(contributed[year], config.AnnualReturn, horizon-year)
		if atRetirement.GreaterThanOrEqual(result.TargetAtRetire) {
			result.CoastFireAge = config.CurrentAge + year
			break
		}
	}

	// The hybrid path: contribute until the coast-fire age, then coast.
	if result.CoastFireAge > 0 {
		stop := result.CoastFireAge - config.CurrentAge
		for year := range result.Points {
			if year <= stop {
				result.Points[year].CoastFrom = contributed[year]
			} else {
				result.Points[year].CoastFrom = compound(contributed[stop], config.AnnualReturn, year-stop)
			}
		}
	}

	p.Logger.Debugf("coast fire: target=%s fireAge=%d coastAge=%d",
		result.TargetAtRetire.StringFixed(0), result.FIREAge, result.CoastFireAge)

	return result, nil
}

// withContributions is the balance after compounding the starting
// investment annually and the monthly contributions at the monthly
// rate via the future-value-of-annuity formula.
func (p *CoastFireProjector) withContributions(config CoastFireConfig, year int) decimal.Decimal {
	base := compound(config.CurrentInvested, config.AnnualReturn, year)
	months := year * 12
	if months == 0 {
		return base
	}

	monthlyRate := config.AnnualReturn.Div(twelve)
	if monthlyRate.IsZero() {
		// FV of an annuity degenerates to a plain sum at zero rate.
		return base.Add(config.MonthlyContribution.Mul(decimal.NewFromInt(int64(months))))
	}

	one := decimal.NewFromInt(1)
	growth := one.Add(monthlyRate).Pow(decimal.NewFromInt(int64(months))).Sub(one)
	return base.Add(config.MonthlyContribution.Mul(growth).Div(monthlyRate))
}

// targetAt computes the target amount for a given age: the (optionally
// inflation-grown) retirement spend, net of any Social Security benefit
// from the claim age onward, divided by the safe withdrawal rate.
func (p *CoastFireProjector) targetAt(config CoastFireConfig, age int) decimal.Decimal {
	spend := config.RetirementSpend
	if config.Inflation.GreaterThan(decimal.Zero) {
		spend = compound(spend, config.Inflation, age-config.CurrentAge)
	}

	if config.SocialSecurity != nil {
		ss := *config.SocialSecurity
		claimAge := ss.ClaimAge
		if claimAge == 0 {
			claimAge = ss.RetirementAge
		}
		if age >= claimAge {
			spend = spend.Sub(p.Estimator.EstimateAnnualBenefit(ss))
			if spend.IsNegative() {
				spend = decimal.Zero
			}
		}
	}

	return spend.Div(config.SafeWithdrawRate)
}

// compound grows an amount at an annual rate over whole years.
func compound(amount, rate decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return amount
	}
	one := decimal.NewFromInt(1)
	return amount.Mul(one.Add(rate).Pow(decimal.NewFromInt(int64(years))))
}
