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

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	rate  float64
	years int
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project the portfolio growth year by year" }
func (*projectCmd) Usage() string {
	return `dws project [-r <rate>] [-y <years>]

  Projects the current portfolio value and the configured contribution
  strategies over the given horizon, and displays one row per year.

Usage Examples:
$ dws project -r 5 -y 20

`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.rate, "r", 0, "Annual return rate of the current holdings, in percent")
	f.IntVar(&c.years, "y", 10, "Projection horizon in years")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.years < 0 {
		fmt.Fprintln(os.Stderr, "Error: the horizon cannot be negative")
		return subcommands.ExitUsageError
	}

	p, err := OpenPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	params := planner.ProjectionParameters{
		InitialRate: planner.Percent(c.rate),
		Years:       c.years,
		Strategies:  p.Strategies(),
	}
	snapshots := planner.Project(p.TotalValue().AsFloat(), params)

	printMarkdown(renderer.ProjectionMarkdown(snapshots, params))
	return subcommands.ExitSuccess
}
