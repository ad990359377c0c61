package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type removeCmd struct {
	ticker string
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove a holding from the portfolio" }
func (*removeCmd) Usage() string {
	return `dws remove -t <ticker>

  Removes the first holding with the given ticker.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker of the holding to remove")
}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := p.Remove(i); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if st := SavePortfolio(p); st != subcommands.ExitSuccess {
		return st
	}
	fmt.Printf("Removed %s from %s\n", c.ticker, *portfolioFile)
	return subcommands.ExitSuccess
}
