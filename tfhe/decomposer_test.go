package tfhe_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SUSYLABS/nufhe/math/csprng"
	"github.com/SUSYLABS/nufhe/math/num"
	"github.com/SUSYLABS/nufhe/tfhe"
)

func TestDecomposer(t *testing.T) {
	us := csprng.NewUniformSampler[uint64]()

	t.Run("SignedRoundTrip", func(t *testing.T) {
		for baseLog := 2; baseLog <= 8; baseLog++ {
			for level := 1; level <= 8; level++ {
				if baseLog*level > num.SizeT[uint32]() {
					continue
				}
				t.Run(fmt.Sprintf("baseLog=%v/level=%v", baseLog, level), func(t *testing.T) {
					gadgetParams := tfhe.GadgetParametersLiteral[uint32]{
						Base:  1 << baseLog,
						Level: level,
					}.Compile()
					decomposer := tfhe.NewDecomposer(testParams)

					precisionLog := num.SizeT[uint32]() - baseLog*level
					for i := 0; i < 1024; i++ {
						x := uint32(us.Sample())
						decomposed := decomposer.DecomposeScalar(x, gadgetParams)

						var reconstructed uint32
						for j, d := range decomposed {
							dSigned := num.ToFloat64Signed(d)
							assert.GreaterOrEqual(t, dSigned, -float64(gadgetParams.Base())/2)
							assert.Less(t, dSigned, float64(gadgetParams.Base())/2)
							reconstructed += d << gadgetParams.ScaledBaseLog(j)
						}

						if precisionLog == 0 {
							// Full-width gadgets reconstruct exactly.
							assert.Equal(t, x, reconstructed)
						} else {
							rounded := num.DivRoundBits(x, precisionLog) << precisionLog
							assert.Equal(t, rounded, reconstructed)
						}
					}
				})
			}
		}
	})

	t.Run("SignedExact", func(t *testing.T) {
		// Base and Level covering the whole modulus reconstruct exactly.
		gadgetParams := tfhe.GadgetParametersLiteral[uint32]{
			Base:  1 << 8,
			Level: 4,
		}.Compile()
		decomposer := tfhe.NewDecomposer(testParams)

		for i := 0; i < 1024; i++ {
			x := uint32(us.Sample())
			decomposed := decomposer.DecomposeScalar(x, gadgetParams)

			var reconstructed uint32
			for j, d := range decomposed {
				reconstructed += d << gadgetParams.ScaledBaseLog(j)
			}
			assert.Equal(t, x, reconstructed)
		}
	})

	t.Run("SignedZero", func(t *testing.T) {
		decomposer := tfhe.NewDecomposer(testParams)
		decomposed := decomposer.DecomposeScalar(0, testParams.BlindRotateParameters())
		for _, d := range decomposed {
			assert.Zero(t, d)
		}
	})

	t.Run("UnsignedRoundTrip", func(t *testing.T) {
		gadgetParams := testParams.KeySwitchParameters()
		decomposer := tfhe.NewDecomposer(testParams)

		precisionLog := num.SizeT[uint32]() - gadgetParams.BaseLog()*gadgetParams.Level()
		roundOffset := uint32(1) << (precisionLog - 1)
		decomposed := make([]uint32, gadgetParams.Level())
		for i := 0; i < 1024; i++ {
			x := uint32(us.Sample())
			decomposer.DecomposeScalarUnsignedAssign(x, gadgetParams, decomposed)

			var reconstructed uint32
			for j, d := range decomposed {
				assert.Less(t, d, gadgetParams.Base())
				reconstructed += d << gadgetParams.ScaledBaseLog(j)
			}

			rounded := (x + roundOffset) >> precisionLog << precisionLog
			assert.Equal(t, rounded, reconstructed)
		}
	})
}
