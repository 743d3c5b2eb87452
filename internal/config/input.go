// Package config parses and validates the YAML input documents the
// CLI consumes.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/fpgo/fpgo/internal/calculation"
	"github.com/fpgo/fpgo/internal/domain"
)

// CurrentVersion is the input document schema version this build
// understands.
const CurrentVersion = 1

// Document is the root of an input file. Version gates schema
// migration; unknown versions are rejected rather than guessed at.
type Document struct {
	Version        int                  `yaml:"version"`
	Profile        *ProfileInput        `yaml:"profile,omitempty"`
	Compare        *CompareInput        `yaml:"compare,omitempty"`
	MonteCarlo     *MonteCarloInput     `yaml:"monte_carlo,omitempty"`
	CoastFire      *CoastFireInput      `yaml:"coast_fire,omitempty"`
	SocialSecurity *SocialSecurityInput `yaml:"social_security,omitempty"`
}

// ProfileInput mirrors domain.HouseholdProfile in YAML form.
type ProfileInput struct {
	City                string               `yaml:"city"`
	Status              string               `yaml:"status"`
	Age                 int                  `yaml:"age"`
	Salary              decimal.Decimal      `yaml:"salary"`
	FourOhOneKPercent   decimal.Decimal      `yaml:"four_oh_one_k_percent"`
	HSAContribution     decimal.Decimal      `yaml:"hsa_contribution"`
	RothIRAContribution decimal.Decimal      `yaml:"roth_ira_contribution"`
	AfterTaxInvestments decimal.Decimal      `yaml:"after_tax_investments"`
	Expenses            []domain.ExpenseItem `yaml:"expenses"`
}

// CompareInput configures the equal-standard-of-living solve.
type CompareInput struct {
	DestinationCity string           `yaml:"destination_city"`
	CustomHousing   *decimal.Decimal `yaml:"custom_housing,omitempty"`
}

// MonteCarloInput configures a drawdown simulation.
type MonteCarloInput struct {
	Years             int              `yaml:"years"`
	SimCount          int              `yaml:"sim_count"`
	InitialInvestment decimal.Decimal  `yaml:"initial_investment"`
	WithdrawRate      decimal.Decimal  `yaml:"withdraw_rate"`
	Inflation         decimal.Decimal  `yaml:"inflation"`
	Seed              int64            `yaml:"seed"`
	Parallel          bool             `yaml:"parallel"`
	Portfolio         domain.Portfolio `yaml:"portfolio"`
}

// CoastFireInput configures a Coast-FIRE projection.
type CoastFireInput struct {
	Age                 int                  `yaml:"age"`
	RetirementAge       int                  `yaml:"retirement_age"`
	RetirementSpend     decimal.Decimal      `yaml:"retirement_spend"`
	CurrentInvested     decimal.Decimal      `yaml:"current_invested"`
	MonthlyContribution decimal.Decimal      `yaml:"monthly_contribution"`
	AnnualReturn        decimal.Decimal      `yaml:"annual_return"`
	SafeWithdrawRate    decimal.Decimal      `yaml:"safe_withdraw_rate"`
	Inflation           decimal.Decimal      `yaml:"inflation"`
	SocialSecurity      *SocialSecurityInput `yaml:"social_security,omitempty"`
}

// SocialSecurityInput configures a benefit estimate.
type SocialSecurityInput struct {
	RetirementAge int             `yaml:"retirement_age"`
	ClaimAge      int             `yaml:"claim_age"`
	AnnualIncome  decimal.Decimal `yaml:"annual_income"`
	WorkStartAge  int             `yaml:"work_start_age"`
}

// MaxSimCount bounds a Monte Carlo run; beyond this the charts become
// unreadable long before the CPU minds.
const MaxSimCount = 1000

// InputParser loads and validates input documents against a dataset.
type InputParser struct {
	Tables *domain.TaxTables
}

// NewInputParser creates a parser bound to the dataset used for
// limit validation.
func NewInputParser(tables *domain.TaxTables) *InputParser {
	return &InputParser{Tables: tables}
}

// LoadFromFile reads and validates a YAML input document.
func (ip *InputParser) LoadFromFile(filename string) (*Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.Validate(&doc); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}
	return &doc, nil
}

// Validate checks the document version and every section present.
func (ip *InputParser) Validate(doc *Document) error {
	if doc.Version != CurrentVersion {
		return fmt.Errorf("unsupported input version %d (expected %d)", doc.Version, CurrentVersion)
	}
	if doc.Profile != nil {
		if _, err := ip.Profile(doc); err != nil {
			return fmt.Errorf("profile: %w", err)
		}
	}
	if doc.Compare != nil {
		if err := ip.validateCompare(doc.Compare); err != nil {
			return fmt.Errorf("compare: %w", err)
		}
	}
	if doc.MonteCarlo != nil {
		if err := ip.validateMonteCarlo(doc.MonteCarlo); err != nil {
			return fmt.Errorf("monte_carlo: %w", err)
		}
	}
	if doc.CoastFire != nil {
		if err := ip.validateCoastFire(doc.CoastFire); err != nil {
			return fmt.Errorf("coast_fire: %w", err)
		}
	}
	if doc.SocialSecurity != nil {
		if err := ip.validateSocialSecurity(doc.SocialSecurity); err != nil {
			return fmt.Errorf("social_security: %w", err)
		}
	}
	return nil
}

// Profile converts and validates the profile section.
func (ip *InputParser) Profile(doc *Document) (domain.HouseholdProfile, error) {
	if doc.Profile == nil {
		return domain.HouseholdProfile{}, fmt.Errorf("profile section is required")
	}
	in := doc.Profile

	status, err := domain.ParseFilingStatus(in.Status)
	if err != nil {
		return domain.HouseholdProfile{}, err
	}
	city := domain.City(in.City)
	if _, err := ip.Tables.StateOf(city); err != nil {
		return domain.HouseholdProfile{}, err
	}

	profile := domain.HouseholdProfile{
		City:                city,
		Status:              status,
		Age:                 in.Age,
		Salary:              in.Salary,
		FourOhOneKPercent:   in.FourOhOneKPercent,
		HSAContribution:     in.HSAContribution,
		RothIRAContribution: in.RothIRAContribution,
		AfterTaxInvestments: in.AfterTaxInvestments,
		Expenses:            in.Expenses,
	}
	if err := ip.validateProfile(profile); err != nil {
		return domain.HouseholdProfile{}, err
	}
	return profile, nil
}

func (ip *InputParser) validateProfile(profile domain.HouseholdProfile) error {
	if profile.Salary.IsNegative() {
		return fmt.Errorf("salary cannot be negative")
	}
	one := decimal.NewFromInt(1)
	if profile.FourOhOneKPercent.IsNegative() || profile.FourOhOneKPercent.GreaterThan(one) {
		return fmt.Errorf("401(k) percent must be between 0 and 1, got %s", profile.FourOhOneKPercent.String())
	}

	for i, e := range profile.Expenses {
		if !domain.ValidCategory(e.Category) {
			return fmt.Errorf("expense %d (%s): unknown category %q", i, e.Name, e.Category)
		}
		if e.MonthlyAmount.IsNegative() {
			return fmt.Errorf("expense %d (%s): amount cannot be negative", i, e.Name)
		}
	}

	limits := calculation.NewLimits(ip.Tables)
	if rothMax := limits.RothIRALimit(profile); profile.RothIRAContribution.GreaterThan(rothMax) {
		return fmt.Errorf("Roth IRA contribution %s exceeds the %s limit for this income",
			profile.RothIRAContribution.StringFixed(2), rothMax.StringFixed(2))
	}
	if hsaMax := limits.HSALimit(profile); profile.HSAContribution.GreaterThan(hsaMax) {
		return fmt.Errorf("HSA contribution %s exceeds the %s limit",
			profile.HSAContribution.StringFixed(2), hsaMax.StringFixed(2))
	}
	if dollars := profile.FourOhOneKDollars(); dollars.GreaterThan(limits.FourOhOneKLimit(profile)) {
		return fmt.Errorf("401(k) contribution %s exceeds the %s limit",
			dollars.StringFixed(2), limits.FourOhOneKLimit(profile).StringFixed(2))
	}

	magi := limits.ModifiedAGI(profile)
	committed := profile.AnnualExpenses().
		Add(profile.RothIRAContribution).
		Add(profile.AfterTaxInvestments)
	if magi.Sub(committed).IsNegative() {
		return fmt.Errorf("expenses and investments exceed modified gross income (%s)", magi.StringFixed(2))
	}
	return nil
}

func (ip *InputParser) validateCompare(in *CompareInput) error {
	city := domain.City(in.DestinationCity)
	if _, err := ip.Tables.StateOf(city); err != nil {
		return err
	}
	if in.CustomHousing != nil && in.CustomHousing.IsNegative() {
		return fmt.Errorf("custom housing cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateMonteCarlo(in *MonteCarloInput) error {
	if in.Years <= 0 {
		return fmt.Errorf("years must be positive")
	}
	if in.SimCount <= 0 || in.SimCount > MaxSimCount {
		return fmt.Errorf("sim_count must be between 1 and %d, got %d", MaxSimCount, in.SimCount)
	}
	one := decimal.NewFromInt(1)
	if in.WithdrawRate.IsNegative() || in.WithdrawRate.GreaterThan(one) {
		return fmt.Errorf("withdraw_rate must be between 0 and 1")
	}
	if in.Inflation.IsNegative() || in.Inflation.GreaterThan(one) {
		return fmt.Errorf("inflation must be between 0 and 1")
	}
	if len(in.Portfolio) == 0 {
		return fmt.Errorf("portfolio must have at least one fund")
	}

	tolerance := decimal.NewFromFloat(1e-4)
	if in.Portfolio.TotalWeight().Sub(one).Abs().GreaterThan(tolerance) {
		return fmt.Errorf("portfolio weights must sum to 1, got %s", in.Portfolio.TotalWeight().String())
	}
	return nil
}

func (ip *InputParser) validateCoastFire(in *CoastFireInput) error {
	if in.Age >= in.RetirementAge {
		return fmt.Errorf("age %d must be below retirement age %d", in.Age, in.RetirementAge)
	}
	if in.SafeWithdrawRate.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("safe_withdraw_rate must be positive")
	}
	if in.SocialSecurity != nil {
		if err := ip.validateSocialSecurity(in.SocialSecurity); err != nil {
			return fmt.Errorf("social_security: %w", err)
		}
	}
	return nil
}

func (ip *InputParser) validateSocialSecurity(in *SocialSecurityInput) error {
	if in.RetirementAge <= 0 {
		return fmt.Errorf("retirement_age must be positive")
	}
	if in.AnnualIncome.IsNegative() {
		return fmt.Errorf("annual_income cannot be negative")
	}
	if in.ClaimAge != 0 && in.ClaimAge > ip.Tables.SocialSecurity.MaxDelayAge {
		return fmt.Errorf("claim_age %d is past the maximum delay age %d",
			in.ClaimAge, ip.Tables.SocialSecurity.MaxDelayAge)
	}
	return nil
}
