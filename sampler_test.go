package planner

import (
	"math"
	"testing"
)

// fakeSource replays a fixed sequence of uniform draws.
type fakeSource struct {
	values []float64
	i      int
}

func (f *fakeSource) Float64() float64 {
	v := f.values[f.i]
	f.i++
	return v
}

func TestNormalSampler_RedrawsOnZero(t *testing.T) {
	// Box-Muller takes log(u1): a zero draw must be discarded and redrawn,
	// not turned into an infinite return.
	src := &fakeSource{values: []float64{0, 0, 0.5, 0.25}}
	s := &normalSampler{src: src}

	v := s.Normal(0, 1)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		t.Fatalf("Normal() = %v, want finite", v)
	}
	if src.i != 4 {
		t.Errorf("consumed %d draws, want 4 (two zero redraws, then u1 and u2)", src.i)
	}
}

func TestNormalSampler_ZeroVolatilityReturnsMean(t *testing.T) {
	s := newNormalSampler(1)
	for i := 0; i < 100; i++ {
		if got := s.Normal(0.07, 0); got != 0.07 {
			t.Fatalf("Normal(0.07, 0) = %v, want exactly 0.07", got)
		}
	}
}

func TestNormalSampler_SeededMoments(t *testing.T) {
	const (
		n      = 200_000
		mean   = 0.05
		stdDev = 0.15
	)
	s := newNormalSampler(12345)

	var sum, sumSq float64
	for i := 0; i < n; i++ {
		v := s.Normal(mean, stdDev)
		if math.IsInf(v, 0) || math.IsNaN(v) {
			t.Fatalf("draw %d: non-finite sample %v", i, v)
		}
		sum += v
		sumSq += v * v
	}

	gotMean := sum / n
	gotStdDev := math.Sqrt(sumSq/n - gotMean*gotMean)

	if math.Abs(gotMean-mean) > 0.005 {
		t.Errorf("sample mean = %v, want %v ± 0.005", gotMean, mean)
	}
	if math.Abs(gotStdDev-stdDev) > 0.005 {
		t.Errorf("sample stddev = %v, want %v ± 0.005", gotStdDev, stdDev)
	}
}
