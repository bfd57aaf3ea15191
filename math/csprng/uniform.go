// Package csprng implements cryptographically secure pseudo-random
// number generators for sampling torus elements and noise.
//
// All samplers stream from a BLAKE2b XOF seeded from crypto/rand,
// so keys and ciphertexts generated from them are reproducible given
// a seed, and unpredictable otherwise.
package csprng

import (
	"crypto/rand"
	"encoding/binary"

	"golang.org/x/crypto/blake2b"

	"github.com/SUSYLABS/nufhe/math/num"
)

const bufSize = 8192

// UniformSampler samples values uniformly from the whole range of T.
type UniformSampler[T num.Unsigned] struct {
	prng blake2b.XOF

	buf [bufSize]byte
	ptr int
}

// NewUniformSampler creates a new UniformSampler seeded from crypto/rand.
//
// Panics when it fails to read the seed, since no sampler state can be
// trusted after that.
func NewUniformSampler[T num.Unsigned]() *UniformSampler[T] {
	seed := make([]byte, 32)
	if _, err := rand.Read(seed); err != nil {
		panic(err)
	}
	return NewUniformSamplerWithSeed[T](seed)
}

// NewUniformSamplerWithSeed creates a new UniformSampler with a given seed.
func NewUniformSamplerWithSeed[T num.Unsigned](seed []byte) *UniformSampler[T] {
	prng, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		panic(err)
	}
	if _, err := prng.Write(seed); err != nil {
		panic(err)
	}

	s := &UniformSampler[T]{prng: prng, ptr: bufSize}
	return s
}

func (s *UniformSampler[T]) refill() {
	if _, err := s.prng.Read(s.buf[:]); err != nil {
		panic(err)
	}
	s.ptr = 0
}

// Sample uniformly samples a random value of T.
func (s *UniformSampler[T]) Sample() T {
	if s.ptr+8 > bufSize {
		s.refill()
	}
	x := binary.LittleEndian.Uint64(s.buf[s.ptr:])
	s.ptr += 8
	return T(x)
}

// SampleN uniformly samples a random value in [0, n).
//
// Rejection sampling removes the modulo bias.
func (s *UniformSampler[T]) SampleN(n T) T {
	bound := T(0) - (T(0)-n)%n // largest multiple of n representable in T
	for {
		x := s.Sample()
		if bound == 0 || x < bound {
			return x % n
		}
	}
}

// SampleSliceAssign uniformly samples a slice of random values to vOut.
func (s *UniformSampler[T]) SampleSliceAssign(vOut []T) {
	for i := range vOut {
		vOut[i] = s.Sample()
	}
}
