package planner

import "math"

// WithdrawalParameters drives a Guyton-Klinger withdrawal simulation.
type WithdrawalParameters struct {
	InitialRate    Percent // first-year withdrawal, as a percent of the starting balance
	UpperGuardrail Percent // relative threshold above the initial rate that cuts spending
	LowerGuardrail Percent // relative threshold below the initial rate that raises spending
	ExpectedReturn Percent // mean of the sampled annual return
	Volatility     Percent // standard deviation of the sampled annual return
	Simulations    int     // number of Monte Carlo runs
	Years          int     // simulation horizon in years
}

// WithdrawalYearResult records one simulated year.
type WithdrawalYearResult struct {
	Year              int
	PortfolioValue    float64 // after withdrawal and growth, floored at 0
	Withdrawal        float64 // the amount withdrawn this year
	WithdrawalRate    Percent // withdrawal divided by the post-growth balance
	Return            Percent // the sampled annual return
	InflationAdjusted bool    // next year's withdrawal got the 3% bump
	Guardrail         Guardrail
}

// adjustment is the outcome of the guardrail policy for one year: which rule
// fired and the factor applied to next year's withdrawal.
type adjustment struct {
	guardrail Guardrail
	inflation bool
	factor    float64
}

// decideAdjustment applies the Guyton-Klinger rules in priority order,
// always comparing against the fixed initial withdrawal rate:
// capital preservation first, then prosperity, then the inflation bump
// when the year's growth was positive, else no change. The rules are
// mutually exclusive.
func decideAdjustment(currentRate, initialRate float64, upper, lower Percent, portfolioGained bool) adjustment {
	switch {
	case currentRate > initialRate*(1+upper.Rate()):
		return adjustment{guardrail: GuardrailUpper, factor: 0.9}
	case currentRate < initialRate*(1-lower.Rate()):
		return adjustment{guardrail: GuardrailLower, factor: 1.1}
	case portfolioGained:
		return adjustment{inflation: true, factor: 1.03}
	default:
		return adjustment{factor: 1}
	}
}

// simulateRun produces a single withdrawal path. Each year the withdrawal is
// taken first, then one annual return is sampled and applied, then the
// guardrail policy sets next year's withdrawal. The run stops at the horizon
// or as soon as the portfolio is depleted, whichever comes first, so the
// returned sequence may be shorter than p.Years.
func simulateRun(startingValue float64, p WithdrawalParameters, sampler *normalSampler) []WithdrawalYearResult {
	results := make([]WithdrawalYearResult, 0, p.Years)

	value := startingValue
	initialRate := p.InitialRate.Rate()
	withdrawal := startingValue * initialRate
	mean := p.ExpectedReturn.Rate()
	stdDev := p.Volatility.Rate()

	for year := 1; year <= p.Years; year++ {
		// Withdrawal happens before growth.
		value -= withdrawal
		r := sampler.Normal(mean, stdDev)
		before := value
		value *= 1 + r
		// Gained means the balance strictly increased over this year's
		// growth step, measured on the post-withdrawal baseline.
		gained := value > before

		currentRate := withdrawal / value
		adj := decideAdjustment(currentRate, initialRate, p.UpperGuardrail, p.LowerGuardrail, gained)

		results = append(results, WithdrawalYearResult{
			Year:              year,
			PortfolioValue:    math.Max(value, 0),
			Withdrawal:        withdrawal,
			WithdrawalRate:    Percent(currentRate * 100),
			Return:            Percent(r * 100),
			InflationAdjusted: adj.inflation,
			Guardrail:         adj.guardrail,
		})

		withdrawal *= adj.factor
		// Depletion is absorbing; there is no recovery mid-horizon.
		if value <= 0 {
			break
		}
	}
	return results
}
