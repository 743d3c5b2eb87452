package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FilingStatus is the federal tax filing status used to dispatch
// status-based tax rules and contribution limits.
type FilingStatus string

const (
	StatusSingle          FilingStatus = "single"
	StatusMarried         FilingStatus = "married"
	StatusHeadOfHousehold FilingStatus = "head_of_household"
)

// AllFilingStatuses lists every supported filing status.
var AllFilingStatuses = []FilingStatus{StatusSingle, StatusMarried, StatusHeadOfHousehold}

// ParseFilingStatus converts a config string into a FilingStatus.
func ParseFilingStatus(s string) (FilingStatus, error) {
	switch FilingStatus(s) {
	case StatusSingle, StatusMarried, StatusHeadOfHousehold:
		return FilingStatus(s), nil
	default:
		return "", fmt.Errorf("unknown filing status %q (expected single, married or head_of_household)", s)
	}
}

// TaxRule is the recursive sum type describing how a jurisdiction taxes
// income. Exactly five variants exist: StatusBasedRule, BracketRule,
// PercentageRule, FlatRule and NoneRule. The evaluator switches over
// all of them; there is no other way to construct a rule.
type TaxRule interface {
	isTaxRule()
}

// StatusBasedRule dispatches on filing status before further evaluation.
type StatusBasedRule struct {
	PerStatus map[FilingStatus]TaxRule
}

// BracketThreshold is one tier of a progressive schedule. Upper is the
// amount of income the tier consumes at its rate.
type BracketThreshold struct {
	Upper decimal.Decimal
	Rate  decimal.Decimal
}

// BracketRule is a progressive marginal-rate schedule. Thresholds must
// be strictly increasing; TopRate taxes all income above the last
// threshold, so the schedule always absorbs the full remainder.
type BracketRule struct {
	Thresholds []BracketThreshold
	TopRate    decimal.Decimal
}

// PercentageRule is a flat proportional tax on the full taxable base.
type PercentageRule struct {
	Rate decimal.Decimal
}

// FlatRule is a fixed dollar tax independent of income, e.g. a
// per-capita city tax.
type FlatRule struct {
	Amount decimal.Decimal
}

// NoneRule is the explicit absence of a jurisdiction's tax. It replaces
// the original product's "undefined means no tax" convention so the
// evaluator can be exhaustive.
type NoneRule struct{}

func (StatusBasedRule) isTaxRule() {}
func (BracketRule) isTaxRule()     {}
func (PercentageRule) isTaxRule()  {}
func (FlatRule) isTaxRule()        {}
func (NoneRule) isTaxRule()        {}

// Validate checks the bracket schedule invariant: thresholds are
// strictly increasing positive cumulative upper bounds.
func (b BracketRule) Validate() error {
	prev := decimal.Zero
	for i, t := range b.Thresholds {
		if t.Upper.LessThanOrEqual(prev) {
			return fmt.Errorf("bracket threshold %d (%s) is not strictly increasing", i, t.Upper.String())
		}
		prev = t.Upper
	}
	return nil
}
