package tfhe_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/SUSYLABS/nufhe/math/poly"
	"github.com/SUSYLABS/nufhe/tfhe"
)

var (
	testParams    = tfhe.ParamsBinary.Compile()
	testEncryptor = tfhe.NewEncryptor(testParams)
	testEvaluator = tfhe.NewEvaluator(testParams, testEncryptor.GenEvaluationKeyParallel())
)

func TestEncryptor(t *testing.T) {
	messages := []int{0, 1, 1, 0, 1}

	t.Run("LWE", func(t *testing.T) {
		for _, message := range messages {
			ct := testEncryptor.EncryptLWE(message)
			assert.Equal(t, message, testEncryptor.DecryptLWE(ct))
		}
	})

	t.Run("GLWE", func(t *testing.T) {
		ct := testEncryptor.EncryptGLWE(messages)
		assert.Equal(t, messages, testEncryptor.DecryptGLWE(ct)[:len(messages)])
	})

	t.Run("SampleExtract", func(t *testing.T) {
		ct := testEncryptor.EncryptGLWE(messages)
		ctExtract := tfhe.NewLWECiphertextCustom[uint32](testParams.GLWEDimension())
		for i, message := range messages {
			ct.ToLWECiphertextAssign(i, ctExtract)
			assert.Equal(t, message, testEncryptor.DecryptLWE(ctExtract))
		}
	})
}

func TestEvaluator(t *testing.T) {
	messages := []int{0, 1, 1, 0, 1}

	t.Run("AddLWE", func(t *testing.T) {
		ct0 := testEncryptor.EncryptLWE(0)
		ct1 := testEncryptor.EncryptLWE(1)
		ctOut := testEvaluator.AddLWE(ct0, ct1)
		assert.Equal(t, 1, testEncryptor.DecryptLWE(ctOut))
	})

	t.Run("ExternalProduct", func(t *testing.T) {
		ctGLWE := testEncryptor.EncryptGLWE(messages)

		ptOne := poly.NewPoly[uint32](testParams.PolyDegree())
		ptOne.Coeffs[0] = 1
		ctGGSW := tfhe.NewFourierGGSWCiphertext(testParams, testParams.BlindRotateParameters())
		testEncryptor.EncryptFourierGGSWPolyAssign(ptOne, ctGGSW)

		ctOut := testEvaluator.ExternalProduct(ctGGSW, ctGLWE)
		assert.Equal(t, messages, testEncryptor.DecryptGLWE(ctOut)[:len(messages)])
	})

	t.Run("ExternalProductZero", func(t *testing.T) {
		ctGLWE := testEncryptor.EncryptGLWE(messages)

		ptZero := poly.NewPoly[uint32](testParams.PolyDegree())
		ctGGSW := tfhe.NewFourierGGSWCiphertext(testParams, testParams.BlindRotateParameters())
		testEncryptor.EncryptFourierGGSWPolyAssign(ptZero, ctGGSW)

		ctOut := testEvaluator.ExternalProduct(ctGGSW, ctGLWE)
		for _, message := range testEncryptor.DecryptGLWE(ctOut) {
			assert.Equal(t, 0, message)
		}
	})

	t.Run("ExternalProductZeroDigits", func(t *testing.T) {
		// All-zero digit polynomials accumulate to exactly zero,
		// regardless of key content.
		brParams := testParams.BlindRotateParameters()
		decomposed := make([][]poly.FourierPoly, testParams.GLWERank()+1)
		for c := range decomposed {
			decomposed[c] = make([]poly.FourierPoly, brParams.Level())
			for j := range decomposed[c] {
				decomposed[c][j] = poly.NewFourierPoly(testParams.PolyDegree())
			}
		}

		ctOut := tfhe.NewGLWECiphertext(testParams)
		ctGGSW := testEvaluator.EvaluationKey.BlindRotateKey.Value[0]
		testEvaluator.ExternalProductFourierDecomposedAssign(ctGGSW, decomposed, ctOut)

		for _, p := range ctOut.Value {
			for _, coeff := range p.Coeffs {
				assert.Zero(t, coeff)
			}
		}
	})

	t.Run("KeySwitchForBootstrap", func(t *testing.T) {
		ct := tfhe.NewLWECiphertextCustom[uint32](testParams.GLWEDimension())
		for _, message := range messages {
			testEncryptor.EncryptLWEPlaintextAssign(testEncryptor.EncodeLWE(message), ct)
			ctOut := testEvaluator.KeySwitchForBootstrap(ct)
			assert.Equal(t, testParams.LWEDimension(), len(ctOut.Value)-1)
			assert.Equal(t, message, testEncryptor.DecryptLWE(ctOut))
		}
	})
}

// TestBlindRotateExact checks blind rotation against plain negacyclic
// rotation, using a noiseless identity key: each key entry is the raw
// gadget matrix, so every step multiplies the accumulator by exactly
// X^amount.
func TestBlindRotateExact(t *testing.T) {
	params := tfhe.ParametersLiteral[uint32]{
		LWEDimension: 4,
		GLWERank:     1,
		PolyDegree:   1 << 6,

		LWEStdDev:  0.000001,
		GLWEStdDev: 0.000001,

		MessageModulus: 1 << 2,

		// Base and Level covering the whole modulus make the
		// decomposition exact, so rotation steps are noiseless.
		BlindRotateParameters: tfhe.GadgetParametersLiteral[uint32]{
			Base:  1 << 8,
			Level: 4,
		},
		KeySwitchParameters: tfhe.GadgetParametersLiteral[uint32]{
			Base:  1 << 2,
			Level: 8,
		},

		BootstrapOrder: tfhe.OrderBlindRotateKeySwitch,
	}.Compile()

	evk := tfhe.NewEvaluationKey(params)
	pe := poly.NewEvaluator[uint32](params.PolyDegree())
	gadget := pe.NewPoly()
	brParams := params.BlindRotateParameters()
	for i := range evk.BlindRotateKey.Value {
		for c := 0; c < params.GLWERank()+1; c++ {
			for j := 0; j < brParams.Level(); j++ {
				gadget.Clear()
				gadget.Coeffs[0] = 1 << brParams.ScaledBaseLog(j)
				pe.ToFourierPolyAssign(gadget, evk.BlindRotateKey.Value[i].Value[c].Value[j].Value[c])
			}
		}
	}
	eval := tfhe.NewEvaluator(params, evk)

	p := pe.NewPoly()
	for i := range p.Coeffs {
		p.Coeffs[i] = uint32(i + 1)
	}

	ctAcc := tfhe.NewGLWECiphertext(params)
	pWant := pe.NewPoly()
	for a := 0; a < 2*params.PolyDegree(); a++ {
		ctAcc.Clear()
		ctAcc.Value[0].CopyFrom(p)
		eval.BlindRotateAmountsAssign([]int{a}, ctAcc)

		pe.MonomialMulPolyAssign(p, a, pWant)
		assert.Equal(t, pWant.Coeffs, ctAcc.Value[0].Coeffs, a)
		for _, coeff := range ctAcc.Value[1].Coeffs {
			assert.Zero(t, coeff)
		}
	}

	// Steps compose: rotating by a then b equals rotating by a+b.
	ctAcc.Clear()
	ctAcc.Value[0].CopyFrom(p)
	eval.BlindRotateAmountsAssign([]int{5, 12, 100, 1}, ctAcc)
	pe.MonomialMulPolyAssign(p, 118, pWant)
	assert.Equal(t, pWant.Coeffs, ctAcc.Value[0].Coeffs)
}

// TestBlindRotateMaskPhase checks the rotation direction of the mask:
// for a ciphertext with body b and mask a under an all-ones key, the
// accumulator must end at X^-(b~ - sum a~_i), the negated mod-switched
// phase. The key entries encrypt 1 under a zero GLWE key and the mask
// sits on the mod switch grid, so the result is exact.
func TestBlindRotateMaskPhase(t *testing.T) {
	params := tfhe.ParametersLiteral[uint32]{
		LWEDimension: 4,
		GLWERank:     1,
		PolyDegree:   1 << 6,

		LWEStdDev:  0.000001,
		GLWEStdDev: 0.000001,

		MessageModulus: 1 << 2,

		BlindRotateParameters: tfhe.GadgetParametersLiteral[uint32]{
			Base:  1 << 8,
			Level: 4,
		},
		KeySwitchParameters: tfhe.GadgetParametersLiteral[uint32]{
			Base:  1 << 2,
			Level: 8,
		},

		BootstrapOrder: tfhe.OrderBlindRotateKeySwitch,
	}.Compile()

	evk := tfhe.NewEvaluationKey(params)
	pe := poly.NewEvaluator[uint32](params.PolyDegree())
	gadget := pe.NewPoly()
	brParams := params.BlindRotateParameters()
	for i := range evk.BlindRotateKey.Value {
		for c := 0; c < params.GLWERank()+1; c++ {
			for j := 0; j < brParams.Level(); j++ {
				gadget.Clear()
				gadget.Coeffs[0] = 1 << brParams.ScaledBaseLog(j)
				pe.ToFourierPolyAssign(gadget, evk.BlindRotateKey.Value[i].Value[c].Value[j].Value[c])
			}
		}
	}
	eval := tfhe.NewEvaluator(params, evk)

	lut := tfhe.NewLookUpTable(params)
	for i := range lut.Value.Coeffs {
		lut.Value.Coeffs[i] = uint32(i + 1)
	}

	// Mask coefficients sit on multiples of 2^25, so mod switching to
	// 2N = 128 introduces no rounding.
	masks := []int{3, 17, 100, 42}
	pWant := pe.NewPoly()
	for _, message := range []int{0, 1, 37, 64, 100, 127} {
		ct := tfhe.NewLWECiphertext(params)
		b := uint32(message) << 25
		for i, c := range masks {
			ct.Value[i+1] = uint32(c) << 25
			b += uint32(c) << 25
		}
		ct.Value[0] = b

		ctOut := eval.BlindRotate(ct, lut)

		pe.MonomialMulPolyAssign(lut.Value, -message, pWant)
		assert.Equal(t, pWant.Coeffs, ctOut.Value[0].Coeffs, message)
		for _, coeff := range ctOut.Value[1].Coeffs {
			assert.Zero(t, coeff)
		}
	}
}

// TestBlindRotateNoOp checks that all-zero rotation amounts leave the
// accumulator bitwise untouched, even under a real noisy key.
func TestBlindRotateNoOp(t *testing.T) {
	ctAcc := testEncryptor.EncryptGLWE([]int{0, 1, 1, 0})
	ctWant := ctAcc.Copy()

	amounts := make([]int, testParams.LWEDimension())
	testEvaluator.BlindRotateAmountsAssign(amounts, ctAcc)

	for c := range ctAcc.Value {
		assert.Equal(t, ctWant.Value[c].Coeffs, ctAcc.Value[c].Coeffs)
	}
}

func TestKeySwitchDeterminism(t *testing.T) {
	ct := tfhe.NewLWECiphertextCustom[uint32](testParams.GLWEDimension())
	testEncryptor.EncryptLWEPlaintextAssign(testEncryptor.EncodeLWE(1), ct)

	ct0 := testEvaluator.KeySwitchForBootstrap(ct)
	ct1 := testEvaluator.KeySwitchForBootstrap(ct)
	assert.Equal(t, ct0.Value, ct1.Value)
}

// TestBootstrapTrivial runs the full pipeline over trivial ciphertexts,
// where every rotation amount is zero and the result is noiseless.
// This pins down the lookup table layout exactly.
func TestBootstrapTrivial(t *testing.T) {
	f := func(x int) int { return 1 - x }
	lut := testEvaluator.GenLookUpTable(f)

	ct := tfhe.NewLWECiphertext(testParams)
	ctOut := tfhe.NewLWECiphertext(testParams)
	for message := 0; message < int(testParams.MessageModulus()); message++ {
		ct.Clear()
		ct.Value[0] = testEncryptor.EncodeLWE(message).Value

		testEvaluator.BootstrapLUTAssign(ct, lut, ctOut)
		assert.Equal(t, f(message), testEncryptor.DecryptLWE(ctOut))
	}
}

func TestBootstrap(t *testing.T) {
	t.Run("Identity", func(t *testing.T) {
		for message := 0; message < int(testParams.MessageModulus()); message++ {
			ct := testEncryptor.EncryptLWE(message)
			ctOut := testEvaluator.Bootstrap(ct)
			assert.Equal(t, message, testEncryptor.DecryptLWE(ctOut))
		}
	})

	t.Run("NOT", func(t *testing.T) {
		for message := 0; message < 2; message++ {
			ct := testEncryptor.EncryptLWE(message)
			ctOut := testEvaluator.BootstrapFunc(ct, func(x int) int { return 1 - x })
			assert.Equal(t, 1-message, testEncryptor.DecryptLWE(ctOut))
		}
	})
}

func TestBootstrapUint2(t *testing.T) {
	params := tfhe.ParamsUint2.Compile()
	enc := tfhe.NewEncryptor(params)
	eval := tfhe.NewEvaluator(params, enc.GenEvaluationKeyParallel())

	f := func(x int) int { return 3 - x }
	for message := 0; message < int(params.MessageModulus()); message++ {
		ct := enc.EncryptLWE(message)
		ctOut := eval.BootstrapFunc(ct, f)
		assert.Equal(t, f(message), enc.DecryptLWE(ctOut))
	}
}

// TestBootstrapUint4 runs the full pipeline over the 64-bit torus,
// with the key switch before the blind rotation.
func TestBootstrapUint4(t *testing.T) {
	if testing.Short() {
		t.Skip("uint64 keygen is slow")
	}

	params := tfhe.ParamsUint4.Compile()
	enc := tfhe.NewEncryptor(params)
	eval := tfhe.NewEvaluator(params, enc.GenEvaluationKeyParallel())

	t.Run("Identity", func(t *testing.T) {
		for message := 0; message < int(params.MessageModulus()); message++ {
			ct := enc.EncryptLWE(message)
			ctOut := eval.Bootstrap(ct)
			assert.Equal(t, message, enc.DecryptLWE(ctOut))
		}
	})

	t.Run("Func", func(t *testing.T) {
		f := func(x int) int { return 15 - x }
		for message := 0; message < int(params.MessageModulus()); message++ {
			ct := enc.EncryptLWE(message)
			ctOut := eval.BootstrapFunc(ct, f)
			assert.Equal(t, f(message), enc.DecryptLWE(ctOut))
		}
	})
}

func TestBootstrapBatch(t *testing.T) {
	messages := []int{0, 1, 1, 0, 1, 0, 0, 1}
	lut := testEvaluator.GenLookUpTable(func(x int) int { return x })

	cts := make([]tfhe.LWECiphertext[uint32], len(messages))
	for i, message := range messages {
		cts[i] = testEncryptor.EncryptLWE(message)
	}

	ctsOut := testEvaluator.BootstrapLUTBatch(cts, lut)
	for i, message := range messages {
		assert.Equal(t, message, testEncryptor.DecryptLWE(ctsOut[i]))
	}

	// Evaluation is deterministic, so the batch must match the
	// one-by-one path bit for bit.
	ctOut := tfhe.NewLWECiphertext(testParams)
	for i := range cts {
		testEvaluator.BootstrapLUTAssign(cts[i], lut, ctOut)
		if diff := cmp.Diff(ctOut.Value, ctsOut[i].Value); diff != "" {
			t.Errorf("batch result %v mismatch:\n%v", i, diff)
		}
	}
}

func TestShallowCopy(t *testing.T) {
	evalCopy := testEvaluator.ShallowCopy()

	ct := testEncryptor.EncryptLWE(1)
	ctOut := evalCopy.Bootstrap(ct)
	assert.Equal(t, 1, testEncryptor.DecryptLWE(ctOut))

	encCopy := testEncryptor.ShallowCopy()
	assert.Equal(t, 1, encCopy.DecryptLWE(encCopy.EncryptLWE(1)))
}

func Example() {
	params := tfhe.ParamsBinary.Compile()

	enc := tfhe.NewEncryptor(params)
	eval := tfhe.NewEvaluator(params, enc.GenEvaluationKeyParallel())

	ct := enc.EncryptLWE(1)
	ctOut := eval.BootstrapFunc(ct, func(x int) int { return 1 - x })

	fmt.Println(enc.DecryptLWE(ctOut))
	// Output: 0
}

func BenchmarkBootstrap(b *testing.B) {
	ct := testEncryptor.EncryptLWE(1)
	ctOut := tfhe.NewLWECiphertext(testParams)
	lut := testEvaluator.GenLookUpTable(func(x int) int { return x })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		testEvaluator.BootstrapLUTAssign(ct, lut, ctOut)
	}
}
