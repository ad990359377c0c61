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

type strategyCmd struct {
	add     bool
	remove  string
	name    string
	monthly float64
	rate    float64
}

func (*strategyCmd) Name() string     { return "strategy" }
func (*strategyCmd) Synopsis() string { return "manage contribution strategies" }
func (*strategyCmd) Usage() string {
	return `dws strategy [-add -name <name> -monthly <amount> -rate <percent>] [-remove <name>]

  Without flags, lists the contribution strategies. With -add, appends a new
  strategy; with -remove, deletes the named one.

Usage Examples:
$ dws strategy -add -name "index fund" -monthly 500 -rate 7
$ dws strategy -remove "index fund"

`
}

func (c *strategyCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.add, "add", false, "Add a new strategy")
	f.StringVar(&c.remove, "remove", "", "Name of the strategy to remove")
	f.StringVar(&c.name, "name", "", "Display name of the strategy")
	f.Float64Var(&c.monthly, "monthly", 0, "Monthly contribution amount")
	f.Float64Var(&c.rate, "rate", 0, "Annual return rate in percent")
}

func (c *strategyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := OpenPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	switch {
	case c.add:
		s := planner.ContributionStrategy{
			Name:    c.name,
			Monthly: c.monthly,
			Rate:    planner.Percent(c.rate),
		}
		if err := p.AddStrategy(s); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if st := SavePortfolio(p); st != subcommands.ExitSuccess {
			return st
		}
		fmt.Printf("Added strategy %q to %s\n", c.name, *portfolioFile)

	case c.remove != "":
		if err := p.RemoveStrategy(c.remove); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if st := SavePortfolio(p); st != subcommands.ExitSuccess {
			return st
		}
		fmt.Printf("Removed strategy %q from %s\n", c.remove, *portfolioFile)

	default:
		printMarkdown(renderer.HoldingsMarkdown(p))
	}
	return subcommands.ExitSuccess
}
