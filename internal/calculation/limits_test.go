package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fpgo/fpgo/internal/data"
	"github.com/fpgo/fpgo/internal/domain"
)

func singleProfile(salary int64, age int) domain.HouseholdProfile {
	return domain.HouseholdProfile{
		City:   domain.Philadelphia,
		Status: domain.StatusSingle,
		Age:    age,
		Salary: decimal.NewFromInt(salary),
	}
}

func TestRothIRALimitPhaseOut(t *testing.T) {
	limits := NewLimits(data.Default2024())

	t.Run("below phase-out", func(t *testing.T) {
		got := limits.RothIRALimit(singleProfile(100_000, 30))
		assert.True(t, got.Equal(decimal.NewFromInt(7_000)), "limit %s", got)
	})

	t.Run("midway through phase-out", func(t *testing.T) {
		// MAGI = 166050 - 12550 = 153500, halfway into 146000..161000.
		got := limits.RothIRALimit(singleProfile(166_050, 30))
		assert.True(t, got.Equal(decimal.NewFromInt(3_500)), "limit %s", got)
	})

	t.Run("above phase-out", func(t *testing.T) {
		got := limits.RothIRALimit(singleProfile(300_000, 30))
		assert.True(t, got.IsZero(), "limit %s", got)
	})

	t.Run("catch-up at fifty", func(t *testing.T) {
		got := limits.RothIRALimit(singleProfile(100_000, 50))
		assert.True(t, got.Equal(decimal.NewFromInt(8_000)), "limit %s", got)
	})

	t.Run("pre-tax contributions lower MAGI", func(t *testing.T) {
		profile := singleProfile(166_050, 30)
		profile.FourOhOneKPercent = decimal.NewFromFloat(0.05)
		withDeferral := limits.RothIRALimit(profile)
		without := limits.RothIRALimit(singleProfile(166_050, 30))
		assert.True(t, withDeferral.GreaterThan(without))
	})
}

func TestHSALimit(t *testing.T) {
	limits := NewLimits(data.Default2024())

	single := limits.HSALimit(singleProfile(100_000, 30))
	assert.True(t, single.Equal(decimal.NewFromInt(4_150)), "single %s", single)

	married := singleProfile(100_000, 30)
	married.Status = domain.StatusMarried
	got := limits.HSALimit(married)
	assert.True(t, got.Equal(decimal.NewFromInt(8_300)), "married %s", got)

	older := limits.HSALimit(singleProfile(100_000, 55))
	assert.True(t, older.Equal(decimal.NewFromInt(5_150)), "catch-up %s", older)
}

func TestFourOhOneKLimit(t *testing.T) {
	limits := NewLimits(data.Default2024())

	base := limits.FourOhOneKLimit(singleProfile(100_000, 30))
	assert.True(t, base.Equal(decimal.NewFromInt(23_000)), "base %s", base)

	catchUp := limits.FourOhOneKLimit(singleProfile(100_000, 50))
	assert.True(t, catchUp.Equal(decimal.NewFromInt(30_500)), "catch-up %s", catchUp)
}

func TestClampFourOhOneKPercent(t *testing.T) {
	limits := NewLimits(data.Default2024())

	t.Run("under the cap passes through", func(t *testing.T) {
		profile := singleProfile(100_000, 30)
		profile.FourOhOneKPercent = decimal.NewFromFloat(0.10)
		got := limits.ClampFourOhOneKPercent(profile)
		assert.True(t, got.Equal(decimal.NewFromFloat(0.10)))
	})

	t.Run("over the cap clamps to limit over salary", func(t *testing.T) {
		// 50% of 100000 would exceed the 23000 cap.
		profile := singleProfile(100_000, 30)
		profile.FourOhOneKPercent = decimal.NewFromFloat(0.50)
		got := limits.ClampFourOhOneKPercent(profile)
		assert.True(t, got.Equal(decimal.NewFromFloat(0.23)), "clamped %s", got)
	})

	t.Run("zero salary passes through", func(t *testing.T) {
		profile := singleProfile(0, 30)
		profile.FourOhOneKPercent = decimal.NewFromFloat(0.50)
		got := limits.ClampFourOhOneKPercent(profile)
		assert.True(t, got.Equal(decimal.NewFromFloat(0.50)))
	})
}
