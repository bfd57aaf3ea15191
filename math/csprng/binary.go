package csprng

import (
	"github.com/SUSYLABS/nufhe/math/num"
)

// BinarySampler samples values from {0, 1}.
type BinarySampler[T num.Unsigned] struct {
	base *UniformSampler[uint64]

	buf  uint64
	left int
}

// NewBinarySampler creates a new BinarySampler seeded from crypto/rand.
func NewBinarySampler[T num.Unsigned]() *BinarySampler[T] {
	return &BinarySampler[T]{base: NewUniformSampler[uint64]()}
}

// NewBinarySamplerWithSeed creates a new BinarySampler with a given seed.
func NewBinarySamplerWithSeed[T num.Unsigned](seed []byte) *BinarySampler[T] {
	return &BinarySampler[T]{base: NewUniformSamplerWithSeed[uint64](seed)}
}

// Sample uniformly samples 0 or 1.
func (s *BinarySampler[T]) Sample() T {
	if s.left == 0 {
		s.buf = s.base.Sample()
		s.left = 64
	}
	x := T(s.buf & 1)
	s.buf >>= 1
	s.left--
	return x
}

// SampleSliceAssign uniformly samples a slice of random bits to vOut.
func (s *BinarySampler[T]) SampleSliceAssign(vOut []T) {
	for i := range vOut {
		vOut[i] = s.Sample()
	}
}
