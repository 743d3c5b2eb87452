package output

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fpgo/fpgo/internal/calculation"
	"github.com/fpgo/fpgo/internal/domain"
	"github.com/fpgo/fpgo/internal/solver"
)

// ConsoleFormatter renders results as styled terminal reports.
type ConsoleFormatter struct {
	Tables *domain.TaxTables
}

// NewConsoleFormatter creates a formatter bound to the dataset used
// for display names.
func NewConsoleFormatter(tables *domain.TaxTables) *ConsoleFormatter {
	return &ConsoleFormatter{Tables: tables}
}

func line(label string, value string) string {
	return fmt.Sprintf("  %s %s\n", LabelStyle.Width(26).Render(label), ValueStyle.Render(value))
}

// Breakdown renders a full take-home report for one profile.
func (f *ConsoleFormatter) Breakdown(profile domain.HouseholdProfile, b domain.Breakdown) string {
	var out strings.Builder

	out.WriteString(TitleStyle.Render(fmt.Sprintf("Take-Home Pay: %s", f.Tables.DisplayName(profile.City))))
	out.WriteString("\n\n")

	out.WriteString(SectionStyle.Render("Income"))
	out.WriteString("\n")
	out.WriteString(line("Gross salary", FormatCurrency(b.PreTaxIncome)))
	out.WriteString(line("Taxable income", FormatCurrency(b.TaxableIncome)))
	out.WriteString("\n")

	out.WriteString(SectionStyle.Render("Taxes"))
	out.WriteString("\n")
	out.WriteString(line("Federal", FormatCurrency(b.FederalTax)))
	out.WriteString(line("State", FormatCurrency(b.StateTax)))
	out.WriteString(line("City", FormatCurrency(b.CityTax)))
	out.WriteString(line("Social Security", FormatCurrency(b.SocialSecurityTax)))
	out.WriteString(line("Medicare", FormatCurrency(b.MedicareTax)))
	out.WriteString(line("Total", FormatCurrency(b.TotalTax())))
	out.WriteString("\n")

	out.WriteString(SectionStyle.Render("Contributions & Expenses"))
	out.WriteString("\n")
	out.WriteString(line("401(k)", FormatCurrency(b.FourOhOneK)))
	out.WriteString(line("HSA", FormatCurrency(b.HSA)))
	out.WriteString(line("Roth IRA", FormatCurrency(b.RothIRA)))
	out.WriteString(line("After-tax investing", FormatCurrency(b.AfterTaxInvestments)))
	out.WriteString(line("Annual expenses", FormatCurrency(b.Expenses)))
	out.WriteString("\n")

	net := FormatCurrency(b.NetTakeHome)
	if b.NetTakeHome.IsNegative() {
		net = BadStyle.Render(net)
	} else {
		net = GoodStyle.Render(net)
	}
	out.WriteString(line("Net take-home", net))
	out.WriteString(line("Savings rate", FormatPercent(b.SavingsRate)))

	return out.String()
}

// Comparison renders the solved destination against the source city:
// the required salary plus side-by-side tax and expense tables.
func (f *ConsoleFormatter) Comparison(source domain.HouseholdProfile, result *solver.Result) string {
	var out strings.Builder

	srcName := f.Tables.DisplayName(source.City)
	dstName := f.Tables.DisplayName(result.Profile.City)

	out.WriteString(TitleStyle.Render(fmt.Sprintf("Equivalent Standard of Living: %s vs %s", srcName, dstName)))
	out.WriteString("\n\n")
	out.WriteString(line("Current salary", FormatCurrency(source.Salary)))
	out.WriteString(line("Required salary", GoodStyle.Render(FormatCurrency(result.Profile.Salary))))
	out.WriteString(line("Savings rate held at", FormatPercent(result.TargetRate)))
	out.WriteString("\n")

	out.WriteString(SectionStyle.Render("Taxes"))
	out.WriteString("\n")
	out.WriteString(compareHeader(srcName, dstName))
	out.WriteString(compareRow("Federal", result.Source.FederalTax, result.Destination.FederalTax))
	out.WriteString(compareRow("State", result.Source.StateTax, result.Destination.StateTax))
	out.WriteString(compareRow("City", result.Source.CityTax, result.Destination.CityTax))
	out.WriteString(compareRow("FICA", result.Source.SocialSecurityTax.Add(result.Source.MedicareTax),
		result.Destination.SocialSecurityTax.Add(result.Destination.MedicareTax)))
	out.WriteString("\n")

	out.WriteString(SectionStyle.Render("Monthly Expenses"))
	out.WriteString("\n")
	out.WriteString(compareHeader(srcName, dstName))
	for i, src := range source.Expenses {
		out.WriteString(compareRow(src.Name, src.MonthlyAmount, result.Profile.Expenses[i].MonthlyAmount))
	}
	out.WriteString(compareRow("Total", monthlyTotal(source.Expenses), monthlyTotal(result.Profile.Expenses)))

	return out.String()
}

func monthlyTotal(expenses []domain.ExpenseItem) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.MonthlyAmount)
	}
	return total
}

func compareHeader(left, right string) string {
	return fmt.Sprintf("  %-22s %14s %14s\n", "", LabelStyle.Render(left), LabelStyle.Render(right))
}

func compareRow(label string, left, right decimal.Decimal) string {
	return fmt.Sprintf("  %-22s %14s %14s\n", label, FormatCurrency(left), FormatCurrency(right))
}

// Drawdown renders the Monte Carlo terminal statistics and the
// percentile-band chart.
func (f *ConsoleFormatter) Drawdown(config calculation.DrawdownConfig, result *calculation.DrawdownResult) string {
	var out strings.Builder

	out.WriteString(TitleStyle.Render("Monte Carlo Drawdown"))
	out.WriteString("\n\n")
	out.WriteString(line("Trials", fmt.Sprintf("%d over %d years", config.SimCount, config.Years)))
	out.WriteString(line("Initial investment", FormatCurrency(config.InitialInvestment)))
	out.WriteString(line("Annual withdrawal", FormatCurrency(config.InitialInvestment.Mul(config.WithdrawRate))))

	bankrupt := fmt.Sprintf("%d (%s%%)", result.BankruptCount, result.BankruptPercent.StringFixed(1))
	if result.BankruptCount > 0 {
		bankrupt = BadStyle.Render(bankrupt)
	} else {
		bankrupt = GoodStyle.Render(bankrupt)
	}
	out.WriteString(line("Bankrupt trials", bankrupt))

	terminal := result.Years[len(result.Years)-1]
	out.WriteString(line("Terminal mean", FormatCurrency(terminal.Mean)))
	out.WriteString(line("Terminal median", FormatCurrency(terminal.Median)))
	out.WriteString(line("Terminal 10th pct", FormatCurrency(terminal.TenthPercentile)))
	out.WriteString("\n")

	mean := make([]decimal.Decimal, len(result.Years))
	median := make([]decimal.Decimal, len(result.Years))
	tenth := make([]decimal.Decimal, len(result.Years))
	for i, y := range result.Years {
		mean[i] = y.Mean
		median[i] = y.Median
		tenth[i] = y.TenthPercentile
	}

	chart := NewLineChart("Balance by year (solvent trials)").
		AddDecimalSeries("mean", mean, ColorPrimary).
		AddDecimalSeries("median", median, ColorAccent).
		AddDecimalSeries("10th percentile", tenth, ColorBad)
	chart.XLabel = "years"
	out.WriteString(chart.Render())

	return out.String()
}

// CoastFire renders the projection chart and the detected ages.
func (f *ConsoleFormatter) CoastFire(result *calculation.CoastFireResult) string {
	var out strings.Builder

	out.WriteString(TitleStyle.Render("Coast FIRE Projection"))
	out.WriteString("\n\n")
	out.WriteString(line("Target at retirement", FormatCurrency(result.TargetAtRetire)))

	switch {
	case result.AlreadyCoast:
		out.WriteString(line("Status", GoodStyle.Render("already coasting")))
	case result.CoastFireAge > 0:
		out.WriteString(line("Coast FIRE age", GoodStyle.Render(fmt.Sprintf("%d", result.CoastFireAge))))
	default:
		out.WriteString(line("Coast FIRE age", BadStyle.Render("not reached by retirement")))
	}
	if result.FIREAge > 0 {
		out.WriteString(line("FIRE age", fmt.Sprintf("%d", result.FIREAge)))
	}
	out.WriteString("\n")

	coast := make([]decimal.Decimal, len(result.Points))
	contrib := make([]decimal.Decimal, len(result.Points))
	target := make([]decimal.Decimal, len(result.Points))
	for i, p := range result.Points {
		coast[i] = p.CoastValue
		contrib[i] = p.WithContributions
		target[i] = p.TargetAmount
	}

	chart := NewLineChart("Trajectory by age").
		AddDecimalSeries("target", target, ColorBad).
		AddDecimalSeries("coast (no contributions)", coast, ColorAccent).
		AddDecimalSeries("with contributions", contrib, ColorGood)
	chart.XLabel = "age"
	out.WriteString(chart.Render())

	return out.String()
}

// SocialSecurity renders a benefit estimate.
func (f *ConsoleFormatter) SocialSecurity(input calculation.SocialSecurityInput, annual decimal.Decimal, estimator *calculation.SocialSecurityEstimator) string {
	var out strings.Builder

	claimAge := input.ClaimAge
	if claimAge == 0 {
		claimAge = input.RetirementAge
	}

	out.WriteString(TitleStyle.Render("Social Security Estimate"))
	out.WriteString("\n\n")
	out.WriteString(line("Annual income", FormatCurrency(input.AnnualIncome)))
	out.WriteString(line("Claim age", fmt.Sprintf("%d", claimAge)))
	out.WriteString(line("Adjustment factor", estimator.AdjustmentFactor(claimAge).StringFixed(4)))
	out.WriteString(line("Monthly benefit", FormatCurrency(annual.Div(decimal.NewFromInt(12)))))
	out.WriteString(line("Annual benefit", GoodStyle.Render(FormatCurrency(annual))))

	return out.String()
}
