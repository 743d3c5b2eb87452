// Package calculation contains the numerical engines: the layered tax
// evaluator, net take-home calculator, cost-of-living converter, Monte
// Carlo drawdown simulator, Coast-FIRE projector and Social Security
// estimator. All money math uses decimal arithmetic.
package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/fpgo/fpgo/internal/domain"
)

// EvaluateTax reduces any tax rule, income and filing status to a
// dollar amount. A nil rule and a status missing from a status-based
// rule both evaluate to zero; absence of a tax is a valid rule state,
// not an error.
func EvaluateTax(income decimal.Decimal, rule domain.TaxRule, status domain.FilingStatus) decimal.Decimal {
	switch r := rule.(type) {
	case nil:
		return decimal.Zero
	case domain.NoneRule:
		return decimal.Zero
	case domain.StatusBasedRule:
		inner, ok := r.PerStatus[status]
		if !ok {
			return decimal.Zero
		}
		return EvaluateTax(income, inner, status)
	case domain.PercentageRule:
		return income.Mul(r.Rate)
	case domain.FlatRule:
		// A fixed amount owed regardless of income.
		return r.Amount
	case domain.BracketRule:
		return evaluateBrackets(income, r)
	default:
		return decimal.Zero
	}
}

// evaluateBrackets consumes income tier by tier. Each threshold's Upper
// is the width consumed by that tier, so min(remaining, Upper) is taxed
// at the tier rate and removed from the remainder. Whatever survives
// all thresholds is taxed at the top rate.
func evaluateBrackets(income decimal.Decimal, rule domain.BracketRule) decimal.Decimal {
	if income.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	tax := decimal.Zero
	remaining := income
	for _, tier := range rule.Thresholds {
		if remaining.LessThanOrEqual(decimal.Zero) {
			return tax
		}
		amount := decimal.Min(remaining, tier.Upper)
		tax = tax.Add(amount.Mul(tier.Rate))
		remaining = remaining.Sub(amount)
	}
	if remaining.GreaterThan(decimal.Zero) {
		tax = tax.Add(remaining.Mul(rule.TopRate))
	}
	return tax
}
