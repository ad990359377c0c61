package planner

import (
	"math"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
)

// SimulationBatch is a collection of independent withdrawal simulation runs.
// The batch itself is unordered; each run is ordered by year.
type SimulationBatch struct {
	Runs [][]WithdrawalYearResult
}

// RunSimulations runs p.Simulations independent withdrawal simulations from
// the same starting value and parameters, each with freshly sampled
// randomness.
func RunSimulations(startingValue float64, p WithdrawalParameters) *SimulationBatch {
	return runSimulations(startingValue, p, time.Now().UnixNano())
}

// runSimulations is the seedable variant used by tests. Runs are pure and
// independent, so they fan out across workers; each worker owns its sampler
// and writes to its own slot, no locking needed.
func runSimulations(startingValue float64, p WithdrawalParameters, seed int64) *SimulationBatch {
	runs := make([][]WithdrawalYearResult, p.Simulations)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range runs {
		g.Go(func() error {
			sampler := newNormalSampler(seed + int64(i))
			runs[i] = simulateRun(startingValue, p, sampler)
			return nil
		})
	}
	// Workers never fail; Wait is only a join point.
	_ = g.Wait()

	return &SimulationBatch{Runs: runs}
}

// FinalValues returns the terminal portfolio value of every run.
// A depleted run's terminal value is 0.
func (b *SimulationBatch) FinalValues() []float64 {
	values := make([]float64, 0, len(b.Runs))
	for _, run := range b.Runs {
		if len(run) == 0 {
			values = append(values, 0)
			continue
		}
		values = append(values, run[len(run)-1].PortfolioValue)
	}
	return values
}

// SuccessRate returns the percentage of runs whose last recorded year still
// had a positive portfolio value, rounded to the nearest integer.
func (b *SimulationBatch) SuccessRate() int {
	if len(b.Runs) == 0 {
		return 0
	}
	var success int
	for _, v := range b.FinalValues() {
		if v > 0 {
			success++
		}
	}
	return int(math.Round(float64(success) / float64(len(b.Runs)) * 100))
}

// MedianFinalValue returns the lower median of the terminal values: the
// element at index floor(n/2) of the ascending sort.
func (b *SimulationBatch) MedianFinalValue() float64 {
	values := b.FinalValues()
	if len(values) == 0 {
		return 0
	}
	sort.Float64s(values)
	return values[len(values)/2]
}

// BestCase returns the highest terminal value across runs.
func (b *SimulationBatch) BestCase() float64 {
	var best float64
	for i, v := range b.FinalValues() {
		if i == 0 || v > best {
			best = v
		}
	}
	return best
}

// WorstCase returns the lowest terminal value across runs.
func (b *SimulationBatch) WorstCase() float64 {
	var worst float64
	for i, v := range b.FinalValues() {
		if i == 0 || v < worst {
			worst = v
		}
	}
	return worst
}
