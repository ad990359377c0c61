package renderer

import (
	"fmt"
	"strings"

	planner "github.com/hiop5155/Dynamic-Withdrawal-Strategy"
)

// ProjectionMarkdown renders the year-by-year growth projection.
func ProjectionMarkdown(snapshots []planner.YearlySnapshot, p planner.ProjectionParameters) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Growth Projection\n\n")
	fmt.Fprintf(&b, "Initial rate %s over %d years, %d contribution strategies.\n\n",
		p.InitialRate, p.Years, len(p.Strategies))

	fmt.Fprintln(&b, "| Year | Principal | Growth | Total |")
	fmt.Fprintln(&b, "|---:|---:|---:|---:|")
	for _, s := range snapshots {
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n",
			s.Year,
			amount(s.Principal),
			amount(s.Growth),
			amount(s.Total),
		)
	}

	if len(snapshots) > 0 {
		last := snapshots[len(snapshots)-1]
		fmt.Fprintf(&b, "\nProjected value after %d years: %s\n", last.Year, amount(last.Total))
	}
	return b.String()
}
