package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fpgo/fpgo/internal/data"
)

func TestProjectZeroReturnHandChecked(t *testing.T) {
	proj := NewCoastFireProjector(nil)

	result, err := proj.Project(CoastFireConfig{
		CurrentAge:          30,
		RetirementAge:       67,
		RetirementSpend:     decimal.NewFromInt(24_000),
		CurrentInvested:     decimal.NewFromInt(100_000),
		MonthlyContribution: decimal.NewFromInt(5_000),
		AnnualReturn:        decimal.Zero,
		SafeWithdrawRate:    decimal.NewFromFloat(0.04),
	})
	require.NoError(t, err)

	// 24000 / 0.04
	assert.True(t, result.TargetAtRetire.Equal(decimal.NewFromInt(600_000)),
		"target %s", result.TargetAtRetire)
	require.Len(t, result.Points, 38)

	// At zero return the contributing path is 100000 + 60000 per year.
	for i, p := range result.Points {
		want := decimal.NewFromInt(100_000 + int64(i)*60_000)
		assert.True(t, p.WithContributions.Equal(want), "age %d: got %s want %s",
			p.Age, p.WithContributions, want)
		assert.True(t, p.CoastValue.Equal(decimal.NewFromInt(100_000)))
		assert.True(t, p.TargetAmount.Equal(decimal.NewFromInt(600_000)))
	}

	// 100000 + 60000y first reaches 600000 at y=9, and with no growth
	// the stop-contributing age is the same year.
	assert.Equal(t, 39, result.FIREAge)
	assert.Equal(t, 39, result.CoastFireAge)
	assert.False(t, result.AlreadyCoast)

	// Hybrid path: flat after the stop year at zero return.
	for i, p := range result.Points {
		if i <= 9 {
			assert.True(t, p.CoastFrom.Equal(p.WithContributions))
		} else {
			assert.True(t, p.CoastFrom.Equal(decimal.NewFromInt(640_000)))
		}
	}
}

func TestProjectCoastAgePrecedesFIREAge(t *testing.T) {
	proj := NewCoastFireProjector(nil)

	result, err := proj.Project(CoastFireConfig{
		CurrentAge:          30,
		RetirementAge:       65,
		RetirementSpend:     decimal.NewFromInt(60_000),
		CurrentInvested:     decimal.NewFromInt(150_000),
		MonthlyContribution: decimal.NewFromInt(2_000),
		AnnualReturn:        decimal.NewFromFloat(0.06),
		SafeWithdrawRate:    decimal.NewFromFloat(0.04),
	})
	require.NoError(t, err)

	require.Greater(t, result.FIREAge, 0)
	require.Greater(t, result.CoastFireAge, 0)

	// Stopping early still leaves years of compounding, so the
	// coast age can never come after the full FIRE age.
	assert.LessOrEqual(t, result.CoastFireAge, result.FIREAge)

	prev := result.Points[0].WithContributions
	for _, p := range result.Points[1:] {
		assert.True(t, p.WithContributions.GreaterThan(prev), "age %d not growing", p.Age)
		prev = p.WithContributions
	}
}

func TestProjectAlreadyCoasting(t *testing.T) {
	proj := NewCoastFireProjector(nil)

	result, err := proj.Project(CoastFireConfig{
		CurrentAge:       30,
		RetirementAge:    65,
		RetirementSpend:  decimal.NewFromInt(20_000),
		CurrentInvested:  decimal.NewFromInt(1_000_000),
		AnnualReturn:     decimal.NewFromFloat(0.05),
		SafeWithdrawRate: decimal.NewFromFloat(0.04),
	})
	require.NoError(t, err)

	assert.True(t, result.AlreadyCoast)
	assert.Equal(t, 30, result.CoastFireAge)
}

func TestProjectInflationGrowsTarget(t *testing.T) {
	proj := NewCoastFireProjector(nil)

	result, err := proj.Project(CoastFireConfig{
		CurrentAge:       40,
		RetirementAge:    60,
		RetirementSpend:  decimal.NewFromInt(40_000),
		CurrentInvested:  decimal.NewFromInt(200_000),
		AnnualReturn:     decimal.NewFromFloat(0.06),
		SafeWithdrawRate: decimal.NewFromFloat(0.04),
		Inflation:        decimal.NewFromFloat(0.03),
	})
	require.NoError(t, err)

	first := result.Points[0].TargetAmount
	last := result.Points[len(result.Points)-1].TargetAmount
	assert.True(t, first.Equal(decimal.NewFromInt(1_000_000)), "base target %s", first)
	assert.True(t, last.GreaterThan(first))
	assert.True(t, result.TargetAtRetire.Equal(last))
}

func TestProjectSocialSecurityLowersTarget(t *testing.T) {
	estimator := NewSocialSecurityEstimator(data.Default2024().SocialSecurity)
	proj := NewCoastFireProjector(estimator)

	result, err := proj.Project(CoastFireConfig{
		CurrentAge:       60,
		RetirementAge:    67,
		RetirementSpend:  decimal.NewFromInt(40_000),
		CurrentInvested:  decimal.NewFromInt(300_000),
		AnnualReturn:     decimal.NewFromFloat(0.05),
		SafeWithdrawRate: decimal.NewFromFloat(0.04),
		SocialSecurity: &SocialSecurityInput{
			RetirementAge: 67,
			ClaimAge:      67,
			AnnualIncome:  decimal.NewFromInt(60_000),
		},
	})
	require.NoError(t, err)

	// Before the claim age the full spend drives the target.
	preClaim := result.Points[0]
	require.Equal(t, 60, preClaim.Age)
	assert.True(t, preClaim.TargetAmount.Equal(decimal.NewFromInt(1_000_000)),
		"pre-claim target %s", preClaim.TargetAmount)

	// From the claim age the benefit offsets the spend:
	// (40000 - 27371.04) / 0.04
	atClaim := result.Points[len(result.Points)-1]
	require.Equal(t, 67, atClaim.Age)
	assert.True(t, atClaim.TargetAmount.Equal(decimal.NewFromInt(315_724)),
		"post-claim target %s", atClaim.TargetAmount)
	assert.True(t, result.TargetAtRetire.Equal(decimal.NewFromInt(315_724)))
}

func TestProjectSocialSecurityFloorsSpendAtZero(t *testing.T) {
	estimator := NewSocialSecurityEstimator(data.Default2024().SocialSecurity)
	proj := NewCoastFireProjector(estimator)

	result, err := proj.Project(CoastFireConfig{
		CurrentAge:       60,
		RetirementAge:    67,
		RetirementSpend:  decimal.NewFromInt(10_000),
		CurrentInvested:  decimal.NewFromInt(50_000),
		AnnualReturn:     decimal.NewFromFloat(0.05),
		SafeWithdrawRate: decimal.NewFromFloat(0.04),
		SocialSecurity: &SocialSecurityInput{
			RetirementAge: 67,
			ClaimAge:      67,
			AnnualIncome:  decimal.NewFromInt(60_000),
		},
	})
	require.NoError(t, err)

	// The benefit exceeds the spend, so the target bottoms out at zero
	// instead of going negative.
	assert.True(t, result.TargetAtRetire.IsZero(), "target %s", result.TargetAtRetire)
}

func TestProjectValidation(t *testing.T) {
	proj := NewCoastFireProjector(nil)

	_, err := proj.Project(CoastFireConfig{
		CurrentAge:       67,
		RetirementAge:    67,
		SafeWithdrawRate: decimal.NewFromFloat(0.04),
	})
	assert.Error(t, err)

	_, err = proj.Project(CoastFireConfig{
		CurrentAge:    30,
		RetirementAge: 67,
	})
	assert.Error(t, err)

	_, err = proj.Project(CoastFireConfig{
		CurrentAge:       30,
		RetirementAge:    67,
		SafeWithdrawRate: decimal.NewFromFloat(0.04),
		SocialSecurity:   &SocialSecurityInput{RetirementAge: 67},
	})
	assert.Error(t, err)
}
