package renderer

import (
	"fmt"
	"strings"

	planner "github.com/hiop5155/Dynamic-Withdrawal-Strategy"
)

// HoldingsMarkdown renders the portfolio's holdings and total value.
func HoldingsMarkdown(p *planner.Portfolio) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Holdings\n\n")

	holdings := p.Holdings()
	if len(holdings) == 0 {
		fmt.Fprintln(&b, "No holdings.")
		return b.String()
	}

	fmt.Fprintln(&b, "| # | Ticker | Quantity | Price | Value |")
	fmt.Fprintln(&b, "|---:|:---|---:|---:|---:|")
	for i, h := range holdings {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n",
			i,
			h.Ticker,
			h.Quantity,
			h.Price,
			h.Value(),
		)
	}
	fmt.Fprintf(&b, "\nTotal: %s\n", p.TotalValue())

	if strategies := p.Strategies(); len(strategies) > 0 {
		fmt.Fprintf(&b, "\n## Contribution Strategies\n\n")
		fmt.Fprintln(&b, "| Name | Monthly | Rate |")
		fmt.Fprintln(&b, "|:---|---:|---:|")
		for _, s := range strategies {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", s.Name, amount(s.Monthly), s.Rate)
		}
	}
	return b.String()
}
