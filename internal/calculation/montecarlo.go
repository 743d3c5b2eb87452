package calculation

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/fpgo/fpgo/internal/domain"
)

// RandomSource supplies uniform variates in [0, 1). Production trials
// use math/rand seeded per trial; tests substitute fixed sequences for
// bit-reproducible paths.
type RandomSource interface {
	Float64() float64
}

// DrawdownConfig parameterizes one Monte Carlo drawdown run. The
// withdrawal is constant: InitialInvestment times WithdrawRate every
// year, never re-based on the current balance.
type DrawdownConfig struct {
	Years             int
	SimCount          int
	InitialInvestment decimal.Decimal
	WithdrawRate      decimal.Decimal
	Inflation         decimal.Decimal
	Portfolio         domain.Portfolio
	Seed              int64
	Parallel          bool
}

// TrialResult is one simulated path. Balances holds the year-end
// balance per year with index 0 carrying the initial investment; a
// path shorter than years+1 was truncated by ruin.
type TrialResult struct {
	Trial    int               `json:"trial"`
	Balances []decimal.Decimal `json:"balances"`
	Bankrupt bool              `json:"bankrupt"`
}

// YearAggregate summarizes one year across all trials still solvent
// that year.
type YearAggregate struct {
	Year            int             `json:"year"`
	Mean            decimal.Decimal `json:"mean"`
	Median          decimal.Decimal `json:"median"`
	TenthPercentile decimal.Decimal `json:"tenthPercentile"`
	SolventCount    int             `json:"solventCount"`
}

// DrawdownResult is the full outcome of a run: every trial path plus
// the per-year aggregates and terminal bankruptcy statistics.
type DrawdownResult struct {
	Trials          []TrialResult   `json:"trials"`
	Years           []YearAggregate `json:"years"`
	BankruptCount   int             `json:"bankruptCount"`
	BankruptPercent decimal.Decimal `json:"bankruptPercent"`
}

// DrawdownSimulator runs independent portfolio drawdown trials and
// aggregates them into percentile trajectories.
type DrawdownSimulator struct {
	Logger Logger

	// newSource builds the RNG for one trial. Defaults to math/rand
	// seeded with config.Seed plus the trial index so parallel runs
	// stay reproducible per trial.
	newSource func(seed int64) RandomSource
}

// NewDrawdownSimulator creates a simulator with the default RNG.
func NewDrawdownSimulator() *DrawdownSimulator {
	return &DrawdownSimulator{
		Logger: &NopLogger{},
		newSource: func(seed int64) RandomSource {
			return rand.New(rand.NewSource(seed))
		},
	}
}

// NewDrawdownSimulatorWithSource creates a simulator whose trials draw
// from sources built by newSource.
func NewDrawdownSimulatorWithSource(newSource func(seed int64) RandomSource) *DrawdownSimulator {
	return &DrawdownSimulator{Logger: &NopLogger{}, newSource: newSource}
}

// Run executes all trials and aggregates the results.
func (s *DrawdownSimulator) Run(ctx context.Context, config DrawdownConfig) (*DrawdownResult, error) {
	if config.Years <= 0 {
		return nil, fmt.Errorf("drawdown: years must be positive, got %d", config.Years)
	}
	if config.SimCount <= 0 {
		return nil, fmt.Errorf("drawdown: simCount must be positive, got %d", config.SimCount)
	}
	if len(config.Portfolio) == 0 {
		return nil, fmt.Errorf("drawdown: portfolio has no funds")
	}

	trials := make([]TrialResult, config.SimCount)

	if config.Parallel {
		var wg sync.WaitGroup
		for i := 0; i < config.SimCount; i++ {
			wg.Add(1)
			go func(trial int) {
				defer wg.Done()
				trials[trial] = s.runTrial(trial, config)
			}(i)
		}
		wg.Wait()
	} else {
		for i := 0; i < config.SimCount; i++ {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("drawdown cancelled: %w", err)
			}
			trials[i] = s.runTrial(i, config)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("drawdown cancelled: %w", err)
	}

	result := &DrawdownResult{Trials: trials}
	result.Years = aggregateYears(trials, config.Years)
	for _, t := range trials {
		if t.Bankrupt {
			result.BankruptCount++
		}
	}
	result.BankruptPercent = decimal.NewFromInt(int64(result.BankruptCount)).
		Div(decimal.NewFromInt(int64(config.SimCount))).
		Mul(decimal.NewFromInt(100))

	s.Logger.Debugf("drawdown: %d/%d trials bankrupt (%s%%)",
		result.BankruptCount, config.SimCount, result.BankruptPercent.StringFixed(1))

	return result, nil
}

// runTrial simulates one path. The withdrawal comes off the balance
// first; a negative balance ends the path before any return or
// inflation is applied for that year.
func (s *DrawdownSimulator) runTrial(trial int, config DrawdownConfig) TrialResult {
	source := s.newSource(config.Seed + int64(trial))

	one := decimal.NewFromInt(1)
	withdraw := config.InitialInvestment.Mul(config.WithdrawRate)
	inflationFactor := one.Sub(config.Inflation)

	balance := config.InitialInvestment
	balances := make([]decimal.Decimal, 0, config.Years+1)
	balances = append(balances, balance)

	for year := 1; year <= config.Years; year++ {
		balance = balance.Sub(withdraw)
		if balance.IsNegative() {
			break
		}
		balance = balance.Mul(one.Add(portfolioReturn(config.Portfolio, source)))
		balance = balance.Mul(inflationFactor)
		balances = append(balances, balance)
	}

	return TrialResult{
		Trial:    trial,
		Balances: balances,
		Bankrupt: len(balances) < config.Years+1,
	}
}

// portfolioReturn draws one blended annual return: each fund gets an
// independent standard-normal variate, scaled by its own mean and
// volatility and combined by weight. No cross-asset correlation is
// modeled.
func portfolioReturn(portfolio domain.Portfolio, source RandomSource) decimal.Decimal {
	total := decimal.Zero
	for _, fund := range portfolio {
		z := decimal.NewFromFloat(standardNormal(source))
		draw := fund.Mean.Add(fund.StdDev.Mul(z))
		total = total.Add(draw.Mul(fund.Weight))
	}
	return total
}

// standardNormal applies the Box-Muller transform to two uniform
// draws. A zero first draw would blow up the logarithm, so it is
// nudged to the smallest positive float.
func standardNormal(source RandomSource) float64 {
	u1 := source.Float64()
	if u1 == 0 {
		u1 = math.SmallestNonzeroFloat64
	}
	u2 := source.Float64()
	return math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
}

// aggregateYears computes per-year mean, median and 10th percentile
// over the trials still solvent in each year. Years with no solvent
// trials report zeros.
func aggregateYears(trials []TrialResult, years int) []YearAggregate {
	out := make([]YearAggregate, 0, years+1)
	for year := 0; year <= years; year++ {
		agg := YearAggregate{Year: year}

		solvent := make([]decimal.Decimal, 0, len(trials))
		for _, t := range trials {
			if year < len(t.Balances) {
				solvent = append(solvent, t.Balances[year])
			}
		}
		agg.SolventCount = len(solvent)

		if len(solvent) > 0 {
			sort.Slice(solvent, func(i, j int) bool {
				return solvent[i].LessThan(solvent[j])
			})
			sum := decimal.Zero
			for _, b := range solvent {
				sum = sum.Add(b)
			}
			n := len(solvent)
			agg.Mean = sum.Div(decimal.NewFromInt(int64(n)))
			agg.Median = solvent[n/2]
			agg.TenthPercentile = solvent[n/10]
		}

		out = append(out, agg)
	}
	return out
}
