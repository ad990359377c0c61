// Package cmd implements the CLI application to manage a portfolio and its
// withdrawal strategy.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	planner "github.com/hiop5155/Dynamic-Withdrawal-Strategy"
)

// Commands is the list of subcommands registered by the main package.
var Commands = []subcommands.Command{
	&listCmd{},
	&addCmd{},
	&editCmd{},
	&removeCmd{},
	&strategyCmd{},
	&valueCmd{},
	&projectCmd{},
	&simulateCmd{},
	&updateCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioFile = flag.String("portfolio-file", "portfolio.jsonl", "Path to the portfolio file (JSONL format)")
var defaultCurrency = flag.String("currency", "USD", "Reporting currency for holdings and reports")
var quoteAPI = flag.String("quote-api", "", "Base URL of the quote endpoint.\n If missing it will read the environment variable \"DWS_QUOTE_API\", then fall back to the built-in default.")

// OpenPortfolio loads the portfolio from the app default portfolio file.
func OpenPortfolio() (p *planner.Portfolio, err error) {
	p, err = planner.LoadPortfolio(*portfolioFile, *defaultCurrency)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, portfolio file does not exist, starting with an empty portfolio instead")
		p, err = planner.NewPortfolio(*defaultCurrency), nil
	}
	return
}

// SavePortfolio writes the portfolio back to the app default portfolio file.
func SavePortfolio(p *planner.Portfolio) subcommands.ExitStatus {
	if err := planner.SavePortfolio(*portfolioFile, p); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing portfolio file %q: %v\n", *portfolioFile, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// quoteBase resolves the quote endpoint from flag, environment, or default.
func quoteBase() string {
	if *quoteAPI != "" {
		return *quoteAPI
	}
	if env := os.Getenv("DWS_QUOTE_API"); env != "" {
		return env
	}
	return planner.DefaultQuoteAPI
}

// printMarkdown renders a markdown report on the terminal.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
