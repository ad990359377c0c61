package renderer

import (
	"fmt"
	"strings"

	planner "github.com/hiop5155/Dynamic-Withdrawal-Strategy"
)

// SimulationMarkdown renders the Monte Carlo batch statistics and the detail
// of the first run as a sample path.
func SimulationMarkdown(batch *planner.SimulationBatch, p planner.WithdrawalParameters) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Withdrawal Simulation\n\n")
	fmt.Fprintf(&b, "%d runs over %d years, initial withdrawal %s, guardrails +%s/-%s, expected return %s ± %s.\n\n",
		len(batch.Runs), p.Years, p.InitialRate, p.UpperGuardrail, p.LowerGuardrail,
		p.ExpectedReturn, p.Volatility)

	fmt.Fprintln(&b, "| Statistic | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Success rate | %d%% |\n", batch.SuccessRate())
	fmt.Fprintf(&b, "| Median final value | %s |\n", amount(batch.MedianFinalValue()))
	fmt.Fprintf(&b, "| Best case | %s |\n", amount(batch.BestCase()))
	fmt.Fprintf(&b, "| Worst case | %s |\n", amount(batch.WorstCase()))

	if len(batch.Runs) == 0 || len(batch.Runs[0]) == 0 {
		return b.String()
	}

	fmt.Fprintf(&b, "\n## Sample Run\n\n")
	fmt.Fprintln(&b, "| Year | Withdrawal | Value | Rate | Return | Adjustment |")
	fmt.Fprintln(&b, "|---:|---:|---:|---:|---:|:---|")
	for _, y := range batch.Runs[0] {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s |\n",
			y.Year,
			amount(y.Withdrawal),
			amount(y.PortfolioValue),
			y.WithdrawalRate,
			y.Return.SignedString(),
			adjustmentLabel(y),
		)
	}
	return b.String()
}

func adjustmentLabel(y planner.WithdrawalYearResult) string {
	if y.Guardrail != planner.GuardrailNone {
		return y.Guardrail.String() + " guardrail"
	}
	if y.InflationAdjusted {
		return "inflation"
	}
	return "-"
}
