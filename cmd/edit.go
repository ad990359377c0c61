package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	planner "github.com/hiop5155/Dynamic-Withdrawal-Strategy"
)

type editCmd struct {
	ticker   string
	quantity float64
	price    float64
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit the quantity or price of a holding" }
func (*editCmd) Usage() string {
	return `dws edit -t <ticker> [-q <quantity>] [-p <price>]

  Updates the first holding with the given ticker. A negative value leaves
  the field unchanged.

Usage Examples:
$ dws edit -t AAPL -q 15

`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker of the holding to edit")
	f.Float64Var(&c.quantity, "q", -1, "New number of units, negative to keep")
	f.Float64Var(&c.price, "p", -1, "New unit price, negative to keep")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -t <ticker> is required")
		return subcommands.ExitUsageError
	}

	p, err := OpenPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	i := p.Find(c.ticker)
	if i < 0 {
		fmt.Fprintf(os.Stderr, "Error: no holding with ticker %q\n", c.ticker)
		return subcommands.ExitFailure
	}

	h := p.Holdings()[i]
	if c.quantity >= 0 {
		h.Quantity = planner.Q(c.quantity)
	}
	if c.price >= 0 {
		h.Price = planner.M(c.price, p.Currency())
	}
	if err := p.Update(i, h); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if st := SavePortfolio(p); st != subcommands.ExitSuccess {
		return st
	}
	fmt.Printf("Updated %s in %s\n", c.ticker, *portfolioFile)
	return subcommands.ExitSuccess
}
