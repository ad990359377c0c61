package planner

import "fmt"

// Guardrail identifies which Guyton-Klinger guardrail fired for a simulated
// year, if any.
type Guardrail int

const (
	// GuardrailNone means the withdrawal rate stayed inside both guardrails.
	GuardrailNone Guardrail = iota
	// GuardrailUpper is the capital-preservation rule: the withdrawal rate
	// rose too far above the initial plan and spending is cut.
	GuardrailUpper
	// GuardrailLower is the prosperity rule: the withdrawal rate fell too far
	// below the initial plan and spending is raised.
	GuardrailLower
)

func (g Guardrail) String() string {
	switch g {
	case GuardrailNone:
		return "none"
	case GuardrailUpper:
		return "upper"
	case GuardrailLower:
		return "lower"
	default:
		return "unknown"
	}
}

// ParseGuardrail parses a string into a Guardrail.
func ParseGuardrail(s string) (Guardrail, error) {
	switch s {
	case "none":
		return GuardrailNone, nil
	case "upper":
		return GuardrailUpper, nil
	case "lower":
		return GuardrailLower, nil
	default:
		return 0, fmt.Errorf("unknown guardrail: %q", s)
	}
}
