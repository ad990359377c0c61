package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	planner "github.com/hiop5155/Dynamic-Withdrawal-Strategy"
)

type addCmd struct {
	ticker   string
	quantity float64
	price    float64
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a holding to the portfolio" }
func (*addCmd) Usage() string {
	return `dws add -t <ticker> -q <quantity> [-p <price>]

  Appends a holding. The price can be left at 0 and filled in later with
  'dws update'.

Usage Examples:
$ dws add -t AAPL -q 10 -p 180.5

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker of the holding")
	f.Float64Var(&c.quantity, "q", 0, "Number of units held")
	f.Float64Var(&c.price, "p", 0, "Unit price")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -t <ticker> is required")
		return subcommands.ExitUsageError
	}

	p, err := OpenPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	h := planner.Holding{
		Ticker:   c.ticker,
		Quantity: planner.Q(c.quantity),
		Price:    planner.M(c.price, p.Currency()),
	}
	if err := p.Add(h); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if st := SavePortfolio(p); st != subcommands.ExitSuccess {
		return st
	}
	fmt.Printf("Added %s to %s\n", c.ticker, *portfolioFile)
	return subcommands.ExitSuccess
}
