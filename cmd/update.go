package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	planner "github.com/hiop5155/Dynamic-Withdrawal-Strategy"
)

type updateCmd struct{}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "refresh holding prices from the quote endpoint" }
func (*updateCmd) Usage() string {
	return `dws update

  Fetches a fresh quote for every holding and stores the new prices.
  Holdings whose quote cannot be fetched keep their stored price.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := OpenPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := p.RefreshPrices(planner.NewQuoteClient(), quoteBase()); err != nil {
		// Partial failures are not fatal: save what was refreshed.
		fmt.Fprintf(os.Stderr, "Warning: some prices could not be refreshed: %v\n", err)
	}

	if st := SavePortfolio(p); st != subcommands.ExitSuccess {
		return st
	}
	fmt.Printf("Updated prices in %s\n", *portfolioFile)
	return subcommands.ExitSuccess
}
