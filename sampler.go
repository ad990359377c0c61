package planner

import (
	"math"
	"math/rand"
)

// uniformSource yields independent uniform samples in [0, 1).
type uniformSource interface {
	Float64() float64
}

// normalSampler draws normally distributed values using the Box-Muller
// transform. It is not safe for concurrent use; every simulation worker
// owns its own sampler.
type normalSampler struct {
	src uniformSource
}

// newNormalSampler returns a sampler seeded with the given seed.
func newNormalSampler(seed int64) *normalSampler {
	return &normalSampler{src: rand.New(rand.NewSource(seed))}
}

// Normal returns one sample from the normal distribution with the given
// mean and standard deviation.
//
// Box-Muller is undefined for u1 = 0 (log of zero), and Float64 can return
// exactly 0, so u1 is redrawn until it is strictly positive.
func (s *normalSampler) Normal(mean, stdDev float64) float64 {
	u1 := s.src.Float64()
	for u1 == 0 {
		u1 = s.src.Float64()
	}
	u2 := s.src.Float64()
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + z*stdDev
}
