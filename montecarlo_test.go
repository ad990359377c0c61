package planner

import (
	"math"
	"reflect"
	"testing"
)

// batchOf builds a batch whose runs end at the given terminal values.
func batchOf(finals ...float64) *SimulationBatch {
	b := &SimulationBatch{}
	for _, v := range finals {
		b.Runs = append(b.Runs, []WithdrawalYearResult{{Year: 1, PortfolioValue: v}})
	}
	return b
}

func TestSimulationBatch_SuccessRate(t *testing.T) {
	testCases := []struct {
		name   string
		finals []float64
		want   int
	}{
		{name: "all succeed", finals: []float64{1, 2, 3}, want: 100},
		{name: "all deplete", finals: []float64{0, 0}, want: 0},
		{name: "two out of three rounds to 67", finals: []float64{100, 0, 50}, want: 67},
		{name: "one out of three rounds to 33", finals: []float64{100, 0, 0}, want: 33},
		{name: "empty batch", finals: nil, want: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := batchOf(tc.finals...).SuccessRate(); got != tc.want {
				t.Errorf("SuccessRate() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestSimulationBatch_MedianIsLowerMedian(t *testing.T) {
	// For an even count the median is the element at index n/2 of the
	// ascending sort, not the average of the middle pair.
	b := batchOf(4, 1, 3, 2)
	if got := b.MedianFinalValue(); got != 3 {
		t.Errorf("MedianFinalValue() = %v, want 3", got)
	}

	b = batchOf(9, 5, 7)
	if got := b.MedianFinalValue(); got != 7 {
		t.Errorf("MedianFinalValue() = %v, want 7", got)
	}
}

func TestSimulationBatch_BestAndWorstCase(t *testing.T) {
	b := batchOf(250, 800, 0, 425)
	if got := b.BestCase(); got != 800 {
		t.Errorf("BestCase() = %v, want 800", got)
	}
	if got := b.WorstCase(); got != 0 {
		t.Errorf("WorstCase() = %v, want 0", got)
	}
}

func TestSimulationBatch_FinalValueOfEmptyRunIsZero(t *testing.T) {
	b := &SimulationBatch{Runs: [][]WithdrawalYearResult{nil}}
	if got := b.FinalValues(); !reflect.DeepEqual(got, []float64{0}) {
		t.Errorf("FinalValues() = %v, want [0]", got)
	}
}

func TestRunSimulations_DeterministicBatch(t *testing.T) {
	// With zero volatility every run follows the same path, so the batch
	// statistics all collapse onto the reference 8M outcome.
	p := WithdrawalParameters{
		InitialRate:    4,
		UpperGuardrail: 20,
		LowerGuardrail: 20,
		ExpectedReturn: 0,
		Volatility:     0,
		Simulations:    50,
		Years:          5,
	}
	batch := RunSimulations(10_000_000, p)

	if len(batch.Runs) != 50 {
		t.Fatalf("got %d runs, want 50", len(batch.Runs))
	}
	if got := batch.SuccessRate(); got != 100 {
		t.Errorf("SuccessRate() = %d, want 100", got)
	}
	if got := batch.MedianFinalValue(); math.Abs(got-8_000_000) > 1e-3 {
		t.Errorf("MedianFinalValue() = %v, want 8000000", got)
	}
	if batch.BestCase() != batch.WorstCase() {
		t.Errorf("BestCase() = %v, WorstCase() = %v, want identical runs",
			batch.BestCase(), batch.WorstCase())
	}
}

func TestRunSimulations_SeededIsReproducible(t *testing.T) {
	p := WithdrawalParameters{
		InitialRate:    4,
		UpperGuardrail: 20,
		LowerGuardrail: 20,
		ExpectedReturn: 6,
		Volatility:     15,
		Simulations:    100,
		Years:          30,
	}
	a := runSimulations(1_000_000, p, 42)
	b := runSimulations(1_000_000, p, 42)

	if !reflect.DeepEqual(a.Runs, b.Runs) {
		t.Error("two batches with the same seed differ")
	}

	c := runSimulations(1_000_000, p, 43)
	if reflect.DeepEqual(a.Runs, c.Runs) {
		t.Error("two batches with different seeds are identical")
	}
}

func TestRunSimulations_RunsAreIndependent(t *testing.T) {
	p := WithdrawalParameters{
		InitialRate:    4,
		UpperGuardrail: 20,
		LowerGuardrail: 20,
		ExpectedReturn: 6,
		Volatility:     15,
		Simulations:    20,
		Years:          10,
	}
	batch := runSimulations(1_000_000, p, 7)

	if len(batch.Runs) != 20 {
		t.Fatalf("got %d runs, want 20", len(batch.Runs))
	}
	distinct := false
	for _, run := range batch.Runs[1:] {
		if len(run) > p.Years {
			t.Fatalf("run length %d exceeds horizon %d", len(run), p.Years)
		}
		if !reflect.DeepEqual(run, batch.Runs[0]) {
			distinct = true
		}
	}
	if !distinct {
		t.Error("all runs are identical despite fresh randomness per run")
	}
}
