// Package data ships the built-in 2024 tax, contribution-limit,
// cost-of-living and Social Security dataset. Everything here is
// illustrative modeling data, not filing-grade tax tables.
package data

import (
	"github.com/shopspring/decimal"

	"github.com/fpgo/fpgo/internal/domain"
)

func d(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func di(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

// br builds a bracket schedule from (upper, rate) pairs plus the rate
// applied to everything above the last upper bound.
func br(topRate float64, tiers ...[2]float64) domain.BracketRule {
	rule := domain.BracketRule{TopRate: d(topRate)}
	for _, t := range tiers {
		rule.Thresholds = append(rule.Thresholds, domain.BracketThreshold{
			Upper: d(t[0]),
			Rate:  d(t[1]),
		})
	}
	return rule
}

func pct(rate float64) domain.PercentageRule {
	return domain.PercentageRule{Rate: d(rate)}
}

func byStatus(single, married, hoh domain.TaxRule) domain.StatusBasedRule {
	return domain.StatusBasedRule{PerStatus: map[domain.FilingStatus]domain.TaxRule{
		domain.StatusSingle:          single,
		domain.StatusMarried:         married,
		domain.StatusHeadOfHousehold: hoh,
	}}
}

// Default2024 returns the complete 2024 dataset. Callers may copy and
// override any part of it before handing it to the calculators.
func Default2024() *domain.TaxTables {
	return &domain.TaxTables{
		Year:               2024,
		StandardDeduction:  di(12_550),
		SocialSecurityRate: d(0.062),
		MedicareRate:       d(0.0145),
		FederalRates:       federalRates2024(),
		StateRates:         stateRates2024(),
		CityRates:          cityRates2024(),
		CityStates:         cityStates(),
		StateAbbreviations: stateAbbreviations(),
		CostOfLiving:       costOfLiving2024(),
		Limits:             limits2024(),
		SocialSecurity:     socialSecurity2024(),
	}
}

func federalRates2024() domain.TaxRule {
	return byStatus(
		br(0.37,
			[2]float64{11_600, 0.10},
			[2]float64{47_150, 0.12},
			[2]float64{100_525, 0.22},
			[2]float64{191_950, 0.24},
			[2]float64{243_725, 0.32},
			[2]float64{609_350, 0.35},
		),
		br(0.37,
			[2]float64{23_200, 0.10},
			[2]float64{94_300, 0.12},
			[2]float64{201_050, 0.22},
			[2]float64{383_900, 0.24},
			[2]float64{487_450, 0.32},
			[2]float64{731_200, 0.35},
		),
		br(0.37,
			[2]float64{16_550, 0.10},
			[2]float64{63_100, 0.12},
			[2]float64{100_500, 0.22},
			[2]float64{191_950, 0.24},
			[2]float64{243_700, 0.32},
			[2]float64{609_350, 0.35},
		),
	)
}

func stateRates2024() map[domain.State]domain.TaxRule {
	california := byStatus(
		br(0.123,
			[2]float64{10_756, 0.01},
			[2]float64{25_499, 0.02},
			[2]float64{40_245, 0.04},
			[2]float64{55_866, 0.06},
			[2]float64{70_606, 0.08},
			[2]float64{360_659, 0.093},
			[2]float64{432_787, 0.103},
			[2]float64{721_314, 0.113},
		),
		br(0.123,
			[2]float64{21_512, 0.01},
			[2]float64{50_998, 0.02},
			[2]float64{80_490, 0.04},
			[2]float64{111_732, 0.06},
			[2]float64{141_212, 0.08},
			[2]float64{721_318, 0.093},
			[2]float64{865_574, 0.103},
			[2]float64{1_442_628, 0.113},
		),
		br(0.123,
			[2]float64{21_527, 0.01},
			[2]float64{51_000, 0.02},
			[2]float64{65_744, 0.04},
			[2]float64{81_364, 0.06},
			[2]float64{96_107, 0.08},
			[2]float64{490_493, 0.093},
			[2]float64{588_593, 0.103},
			[2]float64{980_987, 0.113},
		),
	)

	georgia := byStatus(
		br(0.0575,
			[2]float64{750, 0.01},
			[2]float64{2_250, 0.02},
			[2]float64{3_750, 0.03},
			[2]float64{5_250, 0.04},
			[2]float64{7_000, 0.05},
		),
		br(0.0575,
			[2]float64{1_000, 0.01},
			[2]float64{3_000, 0.02},
			[2]float64{5_000, 0.03},
			[2]float64{7_000, 0.04},
			[2]float64{10_000, 0.05},
		),
		br(0.0575,
			[2]float64{1_000, 0.01},
			[2]float64{3_000, 0.02},
			[2]float64{5_000, 0.03},
			[2]float64{7_000, 0.04},
			[2]float64{10_000, 0.05},
		),
	)

	oregonSingle := br(0.099,
		[2]float64{3_750, 0.0475},
		[2]float64{9_450, 0.0675},
		[2]float64{125_000, 0.0876},
	)
	oregon := byStatus(
		oregonSingle,
		br(0.099,
			[2]float64{8_100, 0.0475},
			[2]float64{20_400, 0.0675},
			[2]float64{250_000, 0.0875},
		),
		oregonSingle,
	)

	newYork := byStatus(
		br(0.109,
			[2]float64{8_500, 0.04},
			[2]float64{11_700, 0.045},
			[2]float64{13_900, 0.0525},
			[2]float64{80_650, 0.055},
			[2]float64{215_400, 0.06},
			[2]float64{1_077_550, 0.0685},
			[2]float64{5_000_000, 0.0965},
			[2]float64{25_000_000, 0.103},
		),
		br(0.109,
			[2]float64{17_150, 0.04},
			[2]float64{23_600, 0.045},
			[2]float64{27_900, 0.0525},
			[2]float64{161_550, 0.055},
			[2]float64{323_200, 0.06},
			[2]float64{2_155_350, 0.0685},
			[2]float64{5_000_000, 0.0965},
			[2]float64{25_000_000, 0.103},
		),
		br(0.109,
			[2]float64{12_800, 0.04},
			[2]float64{17_650, 0.045},
			[2]float64{20_900, 0.0525},
			[2]float64{107_650, 0.055},
			[2]float64{269_300, 0.06},
			[2]float64{1_616_450, 0.0685},
			[2]float64{5_000_000, 0.0965},
			[2]float64{25_000_000, 0.103},
		),
	)

	return map[domain.State]domain.TaxRule{
		domain.Pennsylvania:  pct(0.0307),
		domain.California:    california,
		domain.Illinois:      pct(0.0495),
		domain.Texas:         domain.NoneRule{},
		domain.Arizona:       pct(0.025),
		domain.Massachusetts: pct(0.05),
		domain.Georgia:       georgia,
		domain.Oregon:        oregon,
		domain.Washington:    domain.NoneRule{},
		domain.Colorado:      pct(0.0425),
		domain.Florida:       domain.NoneRule{},
		domain.NewYork:       newYork,
	}
}

func cityRates2024() map[domain.City]domain.TaxRule {
	// Portland's Metro tax only touches the first bracket; income above
	// it is outside the schedule, hence a zero top rate.
	portlandWide := br(0, [2]float64{250_000, 0.01})
	portland := byStatus(
		br(0, [2]float64{125_000, 0.01}),
		portlandWide,
		portlandWide,
	)

	nycWide := br(0.03876,
		[2]float64{21_600, 0.0378},
		[2]float64{45_000, 0.03762},
		[2]float64{90_000, 0.03819},
	)
	nyc := byStatus(
		br(0.03876,
			[2]float64{12_000, 0.0378},
			[2]float64{25_000, 0.03762},
			[2]float64{50_000, 0.03819},
		),
		nycWide,
		nycWide,
	)

	return map[domain.City]domain.TaxRule{
		domain.Philadelphia: pct(0.0375),
		domain.Pittsburgh:   pct(0.03),
		domain.Portland:     portland,
		domain.Denver:       domain.FlatRule{Amount: d(5.75 * 12)},
		domain.NewYorkCity:  nyc,
	}
}

func cityStates() map[domain.City]domain.State {
	return map[domain.City]domain.State{
		domain.Austin:       domain.Texas,
		domain.Dallas:       domain.Texas,
		domain.Houston:      domain.Texas,
		domain.LosAngeles:   domain.California,
		domain.SanFrancisco: domain.California,
		domain.SanDiego:     domain.California,
		domain.Portland:     domain.Oregon,
		domain.Phoenix:      domain.Arizona,
		domain.Seattle:      domain.Washington,
		domain.Miami:        domain.Florida,
		domain.Pittsburgh:   domain.Pennsylvania,
		domain.Philadelphia: domain.Pennsylvania,
		domain.NewYorkCity:  domain.NewYork,
		domain.Boston:       domain.Massachusetts,
		domain.Atlanta:      domain.Georgia,
		domain.Denver:       domain.Colorado,
		domain.Chicago:      domain.Illinois,
	}
}

func stateAbbreviations() map[domain.State]string {
	return map[domain.State]string{
		domain.Pennsylvania:  "PA",
		domain.California:    "CA",
		domain.Illinois:      "IL",
		domain.Texas:         "TX",
		domain.Arizona:       "AZ",
		domain.Massachusetts: "MA",
		domain.Georgia:       "GA",
		domain.Oregon:        "OR",
		domain.Washington:    "WA",
		domain.Colorado:      "CO",
		domain.Florida:       "FL",
		domain.NewYork:       "NY",
	}
}

// costOfLiving2024 carries per-category indices relative to a 100
// national baseline. Housing, Transportation and Miscellaneous follow
// published composite indices; the remaining categories are filled with
// metro-level estimates in the same units.
func costOfLiving2024() domain.CostOfLivingTable {
	row := func(housing, transport, grocery, utilities, healthcare, misc float64) map[domain.Category]decimal.Decimal {
		return map[domain.Category]decimal.Decimal{
			domain.Housing:        d(housing),
			domain.Transportation: d(transport),
			domain.Grocery:        d(grocery),
			domain.Utilities:      d(utilities),
			domain.Healthcare:     d(healthcare),
			domain.Miscellaneous:  d(misc),
		}
	}
	return domain.CostOfLivingTable{
		domain.SanFrancisco: row(274.9, 147.1, 131.2, 131.5, 124.3, 125),
		domain.LosAngeles:   row(233.3, 142.6, 111.6, 112.8, 110.5, 110),
		domain.Philadelphia: row(97.4, 108.7, 104.8, 103.6, 98.7, 100),
		domain.Pittsburgh:   row(94.9, 110, 99.3, 104.2, 97.5, 100),
		domain.Chicago:      row(139, 99.5, 103.1, 96.4, 102.2, 100),
		domain.Houston:      row(80.6, 92.7, 96.1, 99.8, 95.4, 100),
		domain.Phoenix:      row(113.5, 99.8, 101.4, 102.9, 96.8, 100),
		domain.SanDiego:     row(210.9, 142.9, 109.7, 114.5, 108.9, 110),
		domain.Dallas:       row(97.3, 88.8, 99.6, 103.4, 99.2, 105),
		domain.Austin:       row(105.2, 93.9, 96.7, 98.1, 97.1, 95),
		domain.Boston:       row(212.8, 113.8, 110.4, 121.7, 114.6, 120),
		domain.Atlanta:      row(91.1, 98.6, 98.9, 91.9, 99.8, 100),
		domain.Portland:     row(147.4, 133.3, 107.3, 94.6, 106.2, 105),
		domain.Seattle:      row(209.2, 130.1, 112.9, 107.8, 115.3, 115),
		domain.Denver:       row(124.4, 91.6, 100.7, 98.5, 103.9, 100),
		domain.Miami:        row(153.3, 103.9, 106.8, 101.2, 104.5, 105),
		domain.NewYorkCity:  row(485.3, 110.5, 116.6, 108.3, 112.1, 125),
	}
}

func limits2024() domain.ContributionLimits {
	return domain.ContributionLimits{
		HSAContribution: map[domain.FilingStatus]decimal.Decimal{
			domain.StatusSingle:          di(4_150),
			domain.StatusMarried:         di(8_300),
			domain.StatusHeadOfHousehold: di(8_300),
		},
		HSACatchUp:     di(1_000),
		HSACatchUpAge:  55,
		RothIRALimit:   di(7_000),
		RothIRACatchUp: di(1_000),
		RothIRAPhaseOut: map[domain.FilingStatus]domain.PhaseOutRange{
			domain.StatusSingle:          {Low: di(146_000), High: di(161_000)},
			domain.StatusMarried:         {Low: di(230_000), High: di(240_000)},
			domain.StatusHeadOfHousehold: {Low: di(146_000), High: di(161_000)},
		},
		FourOhOneKLimit:   di(23_000),
		FourOhOneKCatchUp: di(7_500),
		CatchUpAge:        50,
	}
}

func socialSecurity2024() domain.SocialSecurityRules {
	return domain.SocialSecurityRules{
		FullRetirementAge:      67,
		MaxDelayAge:            70,
		MinClaimAge:            62,
		TopEarningYears:        35,
		WorkStartAge:           22,
		TaxableWageBase:        di(168_600),
		BendPoint1Monthly:      di(1_174),
		BendPoint2Monthly:      di(7_078),
		BendRate1:              d(0.90),
		BendRate2:              d(0.32),
		BendRate3:              d(0.15),
		EarlyReduction:         d(5.0 / 9.0 / 100.0),
		EarlyReductionExtended: d(5.0 / 12.0 / 100.0),
		DelayedCredit:          d(2.0 / 3.0 / 100.0),
	}
}

// DefaultProfile mirrors the product's starter household: a single
// filer in Philadelphia with the stock expense list.
func DefaultProfile() domain.HouseholdProfile {
	return domain.HouseholdProfile{
		City:                domain.Philadelphia,
		Status:              domain.StatusSingle,
		Age:                 30,
		Salary:              di(100_000),
		FourOhOneKPercent:   d(0.05),
		HSAContribution:     di(1_000),
		RothIRAContribution: di(7_000),
		AfterTaxInvestments: decimal.Zero,
		Expenses: []domain.ExpenseItem{
			{Name: "Rent", Category: domain.Housing, MonthlyAmount: di(1_000)},
			{Name: "Renter's Insurance", Category: domain.Housing, MonthlyAmount: di(10)},
			{Name: "Food", Category: domain.Grocery, MonthlyAmount: di(300)},
			{Name: "Utilities", Category: domain.Utilities, MonthlyAmount: di(100)},
			{Name: "Car", Category: domain.Transportation, MonthlyAmount: di(500)},
			{Name: "Entertainment", Category: domain.Miscellaneous, MonthlyAmount: di(100)},
			{Name: "Misc", Category: domain.Miscellaneous, MonthlyAmount: di(100)},
		},
	}
}
