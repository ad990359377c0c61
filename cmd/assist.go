package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	planner "github.com/hiop5155/Dynamic-Withdrawal-Strategy"
	"github.com/hiop5155/Dynamic-Withdrawal-Strategy/renderer"
	"google.golang.org/genai"
)

// assistCmd runs a simulation and asks Gemini to explain the outcome in
// plain language.
type assistCmd struct {
	simulate simulateCmd
	model    string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "explain a withdrawal simulation with the AI assistant" }
func (*assistCmd) Usage() string {
	return `dws assist [simulate flags]

  Runs the withdrawal simulation and asks Gemini for a plain-language reading
  of the result: how safe the plan looks and which guardrail adjustments
  dominated. Requires the GEMINI_API_KEY environment variable.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	c.simulate.SetFlags(f)
	f.StringVar(&c.model, "model", "gemini-2.5-flash", "Gemini model to use")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := OpenPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	s := &c.simulate
	startingValue := p.TotalValue().AsFloat()
	if s.horizon > 0 {
		snapshots := planner.Project(startingValue, planner.ProjectionParameters{
			InitialRate: planner.Percent(s.growthRate),
			Years:       s.horizon,
			Strategies:  p.Strategies(),
		})
		startingValue = snapshots[len(snapshots)-1].Total
	}
	params := planner.WithdrawalParameters{
		InitialRate:    planner.Percent(s.rate),
		UpperGuardrail: planner.Percent(s.upper),
		LowerGuardrail: planner.Percent(s.lower),
		ExpectedReturn: planner.Percent(s.expected),
		Volatility:     planner.Percent(s.volatility),
		Simulations:    s.runs,
		Years:          s.years,
	}
	batch := planner.RunSimulations(startingValue, params)
	report := renderer.SimulationMarkdown(batch, params)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	chat, err := client.Chats.Create(ctx, c.model, nil, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error starting chat:", err)
		return subcommands.ExitFailure
	}

	prompt := "You are a cautious financial planning assistant. Here is the result of a " +
		"Guyton-Klinger withdrawal simulation in markdown. Explain in a short paragraph " +
		"how robust this retirement plan looks and what the guardrail adjustments in the " +
		"sample run mean. Do not give investment advice.\n\n" + report

	resp, err := chat.Send(ctx, &genai.Part{Text: prompt})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Assist failed:", err)
		return subcommands.ExitFailure
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		fmt.Fprintln(os.Stderr, "Assist failed: empty response")
		return subcommands.ExitFailure
	}

	printMarkdown(report)
	printMarkdown(resp.Candidates[0].Content.Parts[0].Text)
	return subcommands.ExitSuccess
}
