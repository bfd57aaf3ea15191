package csprng

import (
	"math"

	"github.com/SUSYLABS/nufhe/math/num"
)

// GaussianSampler samples torus elements from a centered discrete
// gaussian distribution.
//
// The standard deviation is given normalized to the torus, i.e. as a
// fraction of the full modulus, matching how parameter sets specify
// noise.
type GaussianSampler[T num.Unsigned] struct {
	base *UniformSampler[uint64]

	cached    float64
	hasCached bool
}

// NewGaussianSampler creates a new GaussianSampler seeded from crypto/rand.
func NewGaussianSampler[T num.Unsigned]() *GaussianSampler[T] {
	return &GaussianSampler[T]{base: NewUniformSampler[uint64]()}
}

// NewGaussianSamplerWithSeed creates a new GaussianSampler with a given seed.
func NewGaussianSamplerWithSeed[T num.Unsigned](seed []byte) *GaussianSampler[T] {
	return &GaussianSampler[T]{base: NewUniformSamplerWithSeed[uint64](seed)}
}

// normFloat64 samples from the standard normal distribution
// using the Box-Muller transform.
func (s *GaussianSampler[T]) normFloat64() float64 {
	if s.hasCached {
		s.hasCached = false
		return s.cached
	}

	// u1 in (0, 1], so the log is finite.
	u1 := (float64(s.base.Sample()>>11) + 1) / (1 << 53)
	u2 := float64(s.base.Sample()>>11) / (1 << 53)

	r := math.Sqrt(-2 * math.Log(u1))
	theta := 2 * math.Pi * u2

	s.cached = r * math.Sin(theta)
	s.hasCached = true
	return r * math.Cos(theta)
}

// Sample samples a torus element with normalized standard deviation stdDev.
func (s *GaussianSampler[T]) Sample(stdDev float64) T {
	return num.FromFloat64[T](s.normFloat64() * stdDev * num.MaxT[T]())
}

// SampleSliceAssign samples a slice of torus gaussian values to vOut.
func (s *GaussianSampler[T]) SampleSliceAssign(stdDev float64, vOut []T) {
	for i := range vOut {
		vOut[i] = s.Sample(stdDev)
	}
}

// SampleSliceAddAssign samples torus gaussian values and adds them to vOut.
func (s *GaussianSampler[T]) SampleSliceAddAssign(stdDev float64, vOut []T) {
	for i := range vOut {
		vOut[i] += s.Sample(stdDev)
	}
}
