package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fpgo/fpgo/internal/calculation"
	"github.com/fpgo/fpgo/internal/config"
	"github.com/fpgo/fpgo/internal/data"
	"github.com/fpgo/fpgo/internal/domain"
	"github.com/fpgo/fpgo/internal/output"
	"github.com/fpgo/fpgo/internal/solver"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...interface{}) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...interface{})  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...interface{}) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "fpgo",
	Short: "Personal finance modeling CLI",
	Long:  "Take-home pay, cost-of-living arbitrage, Monte Carlo drawdown, Coast FIRE and Social Security modeling",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "fpgo %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

const starterInput = `version: 1

profile:
  city: Philadelphia
  status: single
  age: 30
  salary: 100000
  four_oh_one_k_percent: 0.05
  hsa_contribution: 1000
  roth_ira_contribution: 7000
  after_tax_investments: 0
  expenses:
    - name: Rent
      category: Housing
      monthly_amount: 1000
    - name: Renter's Insurance
      category: Housing
      monthly_amount: 10
    - name: Food
      category: Grocery
      monthly_amount: 300
    - name: Utilities
      category: Utilities
      monthly_amount: 100
    - name: Car
      category: Transportation
      monthly_amount: 500
    - name: Entertainment
      category: Miscellaneous
      monthly_amount: 100
    - name: Misc
      category: Miscellaneous
      monthly_amount: 100

compare:
  destination_city: San Francisco
`

func loadDocument(inputFile string) (*config.Document, *config.InputParser) {
	tables := data.Default2024()
	parser := config.NewInputParser(tables)
	doc, err := parser.LoadFromFile(inputFile)
	if err != nil {
		log.Fatal(err)
	}
	return doc, parser
}

func cliLogger(cmd *cobra.Command) calculation.Logger {
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		return simpleCLILogger{}
	}
	return &calculation.NopLogger{}
}

var takehomeCmd = &cobra.Command{
	Use:   "takehome [input-file]",
	Short: "Compute the net take-home breakdown for a profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if writeStarter, _ := cmd.Flags().GetBool("init"); writeStarter {
			target := "fpgo.yaml"
			if len(args) == 1 {
				target = args[0]
			}
			if err := os.WriteFile(target, []byte(starterInput), 0o644); err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Wrote starter input to %s\n", target)
			return
		}
		if len(args) != 1 {
			log.Fatal("input file required (or --init to create one)")
		}

		doc, parser := loadDocument(args[0])
		profile, err := parser.Profile(doc)
		if err != nil {
			log.Fatal(err)
		}

		calc := calculation.NewNetTakeHomeCalculator(parser.Tables)
		calc.Logger = cliLogger(cmd)
		breakdown, err := calc.Compute(profile)
		if err != nil {
			log.Fatal(err)
		}

		format, _ := cmd.Flags().GetString("format")
		switch strings.ToLower(format) {
		case "json":
			text, err := output.JSON(breakdown)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(text)
		case "console", "":
			fmt.Println(output.NewConsoleFormatter(parser.Tables).Breakdown(profile, breakdown))
		default:
			log.Fatalf("unknown output format: %s (valid: console, json)", format)
		}
	},
}

var colCmd = &cobra.Command{
	Use:   "col [input-file]",
	Short: "Solve the salary needed to keep your standard of living in another city",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc, parser := loadDocument(args[0])
		if doc.Compare == nil {
			log.Fatal("input file needs a compare section")
		}
		profile, err := parser.Profile(doc)
		if err != nil {
			log.Fatal(err)
		}

		s := solver.NewSalarySolver(parser.Tables)
		s.Logger = cliLogger(cmd)
		result, err := s.Solve(profile, domain.City(doc.Compare.DestinationCity), doc.Compare.CustomHousing)
		if err != nil {
			log.Fatal(err)
		}

		format, _ := cmd.Flags().GetString("format")
		switch strings.ToLower(format) {
		case "json":
			text, err := output.JSON(result)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(text)
		case "console", "":
			fmt.Println(output.NewConsoleFormatter(parser.Tables).Comparison(profile, result))
		default:
			log.Fatalf("unknown output format: %s (valid: console, json)", format)
		}
	},
}

var montecarloCmd = &cobra.Command{
	Use:   "montecarlo [input-file]",
	Short: "Run Monte Carlo portfolio drawdown simulations",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc, parser := loadDocument(args[0])
		if doc.MonteCarlo == nil {
			log.Fatal("input file needs a monte_carlo section")
		}
		in := doc.MonteCarlo

		seed := in.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		cfg := calculation.DrawdownConfig{
			Years:             in.Years,
			SimCount:          in.SimCount,
			InitialInvestment: in.InitialInvestment,
			WithdrawRate:      in.WithdrawRate,
			Inflation:         in.Inflation,
			Portfolio:         in.Portfolio,
			Seed:              seed,
			Parallel:          in.Parallel,
		}

		sim := calculation.NewDrawdownSimulator()
		sim.Logger = cliLogger(cmd)
		result, err := sim.Run(context.Background(), cfg)
		if err != nil {
			log.Fatal(err)
		}

		format, _ := cmd.Flags().GetString("format")
		switch strings.ToLower(format) {
		case "json":
			text, err := output.JSON(result)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(text)
		case "csv":
			text, err := output.DrawdownCSV(result)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Print(text)
		case "console", "":
			fmt.Println(output.NewConsoleFormatter(parser.Tables).Drawdown(cfg, result))
		default:
			log.Fatalf("unknown output format: %s (valid: console, json, csv)", format)
		}
	},
}

var coastfireCmd = &cobra.Command{
	Use:   "coastfire [input-file]",
	Short: "Project Coast FIRE trajectories and crossing ages",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc, parser := loadDocument(args[0])
		if doc.CoastFire == nil {
			log.Fatal("input file needs a coast_fire section")
		}
		in := doc.CoastFire

		cfg := calculation.CoastFireConfig{
			CurrentAge:          in.Age,
			RetirementAge:       in.RetirementAge,
			RetirementSpend:     in.RetirementSpend,
			CurrentInvested:     in.CurrentInvested,
			MonthlyContribution: in.MonthlyContribution,
			AnnualReturn:        in.AnnualReturn,
			SafeWithdrawRate:    in.SafeWithdrawRate,
			Inflation:           in.Inflation,
		}
		if in.SocialSecurity != nil {
			cfg.SocialSecurity = &calculation.SocialSecurityInput{
				RetirementAge: in.SocialSecurity.RetirementAge,
				ClaimAge:      in.SocialSecurity.ClaimAge,
				AnnualIncome:  in.SocialSecurity.AnnualIncome,
				WorkStartAge:  in.SocialSecurity.WorkStartAge,
			}
		}

		projector := calculation.NewCoastFireProjector(
			calculation.NewSocialSecurityEstimator(parser.Tables.SocialSecurity))
		projector.Logger = cliLogger(cmd)
		result, err := projector.Project(cfg)
		if err != nil {
			log.Fatal(err)
		}

		format, _ := cmd.Flags().GetString("format")
		switch strings.ToLower(format) {
		case "json":
			text, err := output.JSON(result)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(text)
		case "console", "":
			fmt.Println(output.NewConsoleFormatter(parser.Tables).CoastFire(result))
		default:
			log.Fatalf("unknown output format: %s (valid: console, json)", format)
		}
	},
}

var socialsecurityCmd = &cobra.Command{
	Use:   "socialsecurity [input-file]",
	Short: "Estimate an annual Social Security benefit",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc, parser := loadDocument(args[0])
		if doc.SocialSecurity == nil {
			log.Fatal("input file needs a social_security section")
		}
		in := calculation.SocialSecurityInput{
			RetirementAge: doc.SocialSecurity.RetirementAge,
			ClaimAge:      doc.SocialSecurity.ClaimAge,
			AnnualIncome:  doc.SocialSecurity.AnnualIncome,
			WorkStartAge:  doc.SocialSecurity.WorkStartAge,
		}

		estimator := calculation.NewSocialSecurityEstimator(parser.Tables.SocialSecurity)
		annual := estimator.EstimateAnnualBenefit(in)

		format, _ := cmd.Flags().GetString("format")
		switch strings.ToLower(format) {
		case "json":
			text, err := output.JSON(map[string]interface{}{
				"annualBenefit":  annual,
				"monthlyBenefit": annual.Div(decimal.NewFromInt(12)),
			})
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(text)
		case "console", "":
			fmt.Println(output.NewConsoleFormatter(parser.Tables).SocialSecurity(in, annual, estimator))
		default:
			log.Fatalf("unknown output format: %s (valid: console, json)", format)
		}
	},
}

func init() {
	takehomeCmd.Flags().StringP("format", "f", "console", "Output format (console, json)")
	takehomeCmd.Flags().Bool("init", false, "Write a starter input file and exit")
	takehomeCmd.Flags().Bool("debug", false, "Enable debug output")

	colCmd.Flags().StringP("format", "f", "console", "Output format (console, json)")
	colCmd.Flags().Bool("debug", false, "Enable debug output")

	montecarloCmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv)")
	montecarloCmd.Flags().Bool("debug", false, "Enable debug output")

	coastfireCmd.Flags().StringP("format", "f", "console", "Output format (console, json)")
	coastfireCmd.Flags().Bool("debug", false, "Enable debug output")

	socialsecurityCmd.Flags().StringP("format", "f", "console", "Output format (console, json)")

	rootCmd.AddCommand(takehomeCmd)
	rootCmd.AddCommand(colCmd)
	rootCmd.AddCommand(montecarloCmd)
	rootCmd.AddCommand(coastfireCmd)
	rootCmd.AddCommand(socialsecurityCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
