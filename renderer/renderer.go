// Package renderer turns planner reports into markdown strings,
// ready to be printed raw or through a terminal markdown renderer.
package renderer

import "fmt"

// amount formats a plain float64 amount for a markdown table cell.
// Engine outputs are binary floating point; whole units are enough
// for reports.
func amount(v float64) string {
	return fmt.Sprintf("%.0f", v)
}
