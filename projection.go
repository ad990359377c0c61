package planner

import "math"

// ContributionStrategy is a stream of monthly contributions compounding at
// its own annual rate. Each strategy accumulates an independent balance;
// strategies never share growth.
type ContributionStrategy struct {
	Name    string  // display only, not used in the math
	Monthly float64 // contribution amount per month, may be 0
	Rate    Percent // annual return rate
}

// ProjectionParameters drives a compound growth projection.
type ProjectionParameters struct {
	InitialRate Percent // annual return of the starting portfolio value
	Years       int     // projection horizon in whole years
	Strategies  []ContributionStrategy
}

// YearlySnapshot is the state of the projection at the end of a year.
// Year 0 is the initial state, before any growth or contribution.
type YearlySnapshot struct {
	Year      int
	Principal float64 // starting value plus all contributions made so far
	Growth    float64 // total minus principal, negative under negative rates
	Total     float64
}

// Project advances startingValue year by year, month by month, and returns
// one snapshot per year from 0 to p.Years, ordered by year.
//
// The starting value compounds alone at p.InitialRate and receives no
// further contributions. Each strategy owns its own balance, starting at 0:
// every month the contribution is added first, then the balance compounds,
// so a contribution earns that month's growth. Strategies are advanced in
// list order.
//
// Snapshot values are rounded to the nearest whole unit; the internal
// balances carried between years are never rounded.
func Project(startingValue float64, p ProjectionParameters) []YearlySnapshot {
	snapshots := make([]YearlySnapshot, 0, p.Years+1)
	snapshots = append(snapshots, YearlySnapshot{
		Year:      0,
		Principal: math.Round(startingValue),
		Growth:    0,
		Total:     math.Round(startingValue),
	})

	initialBalance := startingValue
	initialGrowth := 1 + p.InitialRate.Rate()/12

	// One independent accumulator per strategy, owned by this call.
	balances := make([]float64, len(p.Strategies))
	growths := make([]float64, len(p.Strategies))
	for i, s := range p.Strategies {
		growths[i] = 1 + s.Rate.Rate()/12
	}

	var contributed float64
	for year := 1; year <= p.Years; year++ {
		for month := 0; month < 12; month++ {
			initialBalance *= initialGrowth
			for i, s := range p.Strategies {
				balances[i] += s.Monthly
				contributed += s.Monthly
				balances[i] *= growths[i]
			}
		}

		total := initialBalance
		for _, b := range balances {
			total += b
		}
		principal := math.Round(startingValue + contributed)
		roundedTotal := math.Round(total)
		snapshots = append(snapshots, YearlySnapshot{
			Year:      year,
			Principal: principal,
			Growth:    roundedTotal - principal,
			Total:     roundedTotal,
		})
	}
	return snapshots
}
