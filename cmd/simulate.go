package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	planner "github.com/hiop5155/Dynamic-Withdrawal-Strategy"
	"github.com/hiop5155/Dynamic-Withdrawal-Strategy/renderer"
)

// simulateCmd holds the flags for the 'simulate' subcommand.
type simulateCmd struct {
	rate       float64
	upper      float64
	lower      float64
	expected   float64
	volatility float64
	runs       int
	years      int
	horizon    int
	growthRate float64
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "run the Guyton-Klinger withdrawal simulation" }
func (*simulateCmd) Usage() string {
	return `dws simulate [-r <rate>] [-upper <pct>] [-lower <pct>] [-return <pct>] [-volatility <pct>] [-runs <n>] [-y <years>] [-horizon <years>] [-growth-rate <pct>]

  Runs a Monte Carlo batch of withdrawal simulations. The starting balance is
  the portfolio's projected value after -horizon years of growth, or its
  current value when the horizon is 0.

Usage Examples:
$ dws simulate -r 4 -upper 20 -lower 20 -return 6 -volatility 15 -runs 1000 -y 30

`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.rate, "r", 4, "Initial withdrawal rate, percent of the starting balance")
	f.Float64Var(&c.upper, "upper", 20, "Upper guardrail threshold in percent")
	f.Float64Var(&c.lower, "lower", 20, "Lower guardrail threshold in percent")
	f.Float64Var(&c.expected, "return", 6, "Expected annual return in percent")
	f.Float64Var(&c.volatility, "volatility", 15, "Annual return volatility in percent")
	f.IntVar(&c.runs, "runs", 1000, "Number of Monte Carlo runs")
	f.IntVar(&c.years, "y", 30, "Simulation horizon in years")
	f.IntVar(&c.horizon, "horizon", 0, "Growth years before withdrawals start")
	f.Float64Var(&c.growthRate, "growth-rate", 0, "Annual return of the current holdings during the growth years, in percent")
}

func (c *simulateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.runs <= 0 || c.years <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -runs and -y must be positive")
		return subcommands.ExitUsageError
	}

	p, err := OpenPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	startingValue := p.TotalValue().AsFloat()
	if c.horizon > 0 {
		snapshots := planner.Project(startingValue, planner.ProjectionParameters{
			InitialRate: planner.Percent(c.growthRate),
			Years:       c.horizon,
			Strategies:  p.Strategies(),
		})
		startingValue = snapshots[len(snapshots)-1].Total
	}

	params := planner.WithdrawalParameters{
		InitialRate:    planner.Percent(c.rate),
		UpperGuardrail: planner.Percent(c.upper),
		LowerGuardrail: planner.Percent(c.lower),
		ExpectedReturn: planner.Percent(c.expected),
		Volatility:     planner.Percent(c.volatility),
		Simulations:    c.runs,
		Years:          c.years,
	}
	batch := planner.RunSimulations(startingValue, params)

	printMarkdown(renderer.SimulationMarkdown(batch, params))
	return subcommands.ExitSuccess
}
