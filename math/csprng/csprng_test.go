package csprng_test

import (
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/assert"

	"github.com/SUSYLABS/nufhe/math/csprng"
	"github.com/SUSYLABS/nufhe/math/num"
)

const sampleCount = 16384

func TestUniformSampler(t *testing.T) {
	t.Run("Deterministic", func(t *testing.T) {
		seed := []byte("test seed")
		s0 := csprng.NewUniformSamplerWithSeed[uint64](seed)
		s1 := csprng.NewUniformSamplerWithSeed[uint64](seed)

		v0 := make([]uint64, sampleCount)
		v1 := make([]uint64, sampleCount)
		s0.SampleSliceAssign(v0)
		s1.SampleSliceAssign(v1)

		assert.Equal(t, v0, v1)
	})

	t.Run("SeedSeparation", func(t *testing.T) {
		s0 := csprng.NewUniformSamplerWithSeed[uint64]([]byte("seed 0"))
		s1 := csprng.NewUniformSamplerWithSeed[uint64]([]byte("seed 1"))

		v0 := make([]uint64, sampleCount)
		v1 := make([]uint64, sampleCount)
		s0.SampleSliceAssign(v0)
		s1.SampleSliceAssign(v1)

		assert.NotEqual(t, v0, v1)
	})

	t.Run("SampleN", func(t *testing.T) {
		s := csprng.NewUniformSampler[uint32]()
		for i := 0; i < sampleCount; i++ {
			assert.Less(t, s.SampleN(100), uint32(100))
		}
	})

	t.Run("Mean", func(t *testing.T) {
		s := csprng.NewUniformSampler[uint64]()
		v := make([]float64, sampleCount)
		for i := range v {
			// Normalize to [-1/2, 1/2).
			v[i] = num.ToFloat64Signed(s.Sample()) / num.MaxT[uint64]()
		}

		mean, err := stats.Mean(v)
		assert.NoError(t, err)
		assert.InDelta(t, 0, mean, 0.02)
	})
}

func TestBinarySampler(t *testing.T) {
	s := csprng.NewBinarySampler[uint32]()

	v := make([]uint32, sampleCount)
	s.SampleSliceAssign(v)

	ones := 0
	for _, x := range v {
		assert.LessOrEqual(t, x, uint32(1))
		ones += int(x)
	}

	// Both values occur with overwhelming probability.
	assert.Greater(t, ones, 0)
	assert.Less(t, ones, sampleCount)
}

func TestGaussianSampler(t *testing.T) {
	const stdDev = 0.001

	s := csprng.NewGaussianSampler[uint64]()

	v := make([]float64, sampleCount)
	for i := range v {
		v[i] = num.ToFloat64Signed(s.Sample(stdDev)) / num.MaxT[uint64]()
	}

	mean, err := stats.Mean(v)
	assert.NoError(t, err)
	assert.InDelta(t, 0, mean, 10*stdDev/128)

	sd, err := stats.StandardDeviation(v)
	assert.NoError(t, err)
	assert.InEpsilon(t, stdDev, sd, 0.1)
}
