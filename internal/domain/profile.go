package domain

import (
	"github.com/shopspring/decimal"
)

// ExpenseItem is one monthly expense line, classified for
// cost-of-living adjustment.
type ExpenseItem struct {
	Name          string          `json:"name" yaml:"name"`
	Category      Category        `json:"category" yaml:"category"`
	MonthlyAmount decimal.Decimal `json:"monthlyAmount" yaml:"monthly_amount"`
}

// HouseholdProfile is the full input to the take-home calculator and
// the equal-standard-of-living solver. All amounts are annual dollars
// except the expense line items, which are monthly.
type HouseholdProfile struct {
	City                City            `json:"city"`
	Status              FilingStatus    `json:"status"`
	Age                 int             `json:"age"`
	Salary              decimal.Decimal `json:"salary"`
	FourOhOneKPercent   decimal.Decimal `json:"fourOhOneKPercent"` // fraction of salary, pre-tax
	HSAContribution     decimal.Decimal `json:"hsaContribution"`
	RothIRAContribution decimal.Decimal `json:"rothIRAContribution"`
	AfterTaxInvestments decimal.Decimal `json:"afterTaxInvestments"`
	Expenses            []ExpenseItem   `json:"expenses"`
}

// Copy returns a deep copy; solver iterations mutate working copies
// without touching the caller's profile.
func (p HouseholdProfile) Copy() HouseholdProfile {
	out := p
	out.Expenses = make([]ExpenseItem, len(p.Expenses))
	copy(out.Expenses, p.Expenses)
	return out
}

// FourOhOneKDollars is the annual pre-tax 401(k) contribution in
// dollars at the profile's salary.
func (p HouseholdProfile) FourOhOneKDollars() decimal.Decimal {
	return p.Salary.Mul(p.FourOhOneKPercent)
}

// MonthlyExpenses sums all expense line items.
func (p HouseholdProfile) MonthlyExpenses() decimal.Decimal {
	total := decimal.Zero
	for _, e := range p.Expenses {
		total = total.Add(e.MonthlyAmount)
	}
	return total
}

// AnnualExpenses is MonthlyExpenses times twelve.
func (p HouseholdProfile) AnnualExpenses() decimal.Decimal {
	return p.MonthlyExpenses().Mul(decimal.NewFromInt(12))
}

// Breakdown is the result of a net-take-home calculation: every tax,
// contribution and expense subtracted from pre-tax income, plus the
// derived savings rate. Plain data, chart-ready.
type Breakdown struct {
	PreTaxIncome        decimal.Decimal `json:"preTaxIncome"`
	TaxableIncome       decimal.Decimal `json:"taxableIncome"`
	FederalTax          decimal.Decimal `json:"federalTax"`
	StateTax            decimal.Decimal `json:"stateTax"`
	CityTax             decimal.Decimal `json:"cityTax"`
	SocialSecurityTax   decimal.Decimal `json:"socialSecurityTax"`
	MedicareTax         decimal.Decimal `json:"medicareTax"`
	FourOhOneK          decimal.Decimal `json:"fourOhOneK"`
	HSA                 decimal.Decimal `json:"hsa"`
	RothIRA             decimal.Decimal `json:"rothIRA"`
	AfterTaxInvestments decimal.Decimal `json:"afterTaxInvestments"`
	Expenses            decimal.Decimal `json:"expenses"` // annualized
	NetTakeHome         decimal.Decimal `json:"netTakeHome"`
	SavingsRate         decimal.Decimal `json:"savingsRate"`
}

// TotalTax sums the five tax components.
func (b Breakdown) TotalTax() decimal.Decimal {
	return b.FederalTax.Add(b.StateTax).Add(b.CityTax).
		Add(b.SocialSecurityTax).Add(b.MedicareTax)
}
