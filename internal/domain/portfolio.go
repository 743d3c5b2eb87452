package domain

import (
	"github.com/shopspring/decimal"
)

// Fund is one asset in a simulated portfolio, described by the mean
// and standard deviation of its annual return and its allocation
// weight.
type Fund struct {
	Name   string          `json:"name" yaml:"name"`
	Mean   decimal.Decimal `json:"mean" yaml:"mean"`
	StdDev decimal.Decimal `json:"stdDev" yaml:"std_dev"`
	Weight decimal.Decimal `json:"weight" yaml:"weight"`
}

// Portfolio is an allocation across funds. Weights summing to one is a
// precondition checked by input validation, not by the simulator.
type Portfolio []Fund

// TotalWeight sums the allocation weights.
func (p Portfolio) TotalWeight() decimal.Decimal {
	total := decimal.Zero
	for _, f := range p {
		total = total.Add(f.Weight)
	}
	return total
}
