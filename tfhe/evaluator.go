package tfhe

import (
	"github.com/SUSYLABS/nufhe/math/num"
	"github.com/SUSYLABS/nufhe/math/poly"
	"github.com/SUSYLABS/nufhe/math/vec"
)

// Evaluator evaluates homomorphic operations on ciphertexts.
// The expensive one is bootstrapping: blind rotation fused with
// key switching.
//
// Evaluator is not safe for concurrent use.
// Use [*Evaluator.ShallowCopy] to get a safe copy sharing the
// read-only evaluation key.
type Evaluator[T TorusInt] struct {
	// Parameters is the parameters of this Evaluator.
	Parameters Parameters[T]

	// PolyEvaluator is the transform engine of this Evaluator.
	PolyEvaluator *poly.Evaluator[T]
	// Decomposer is the gadget decomposer of this Evaluator.
	Decomposer *Decomposer[T]

	// EvaluationKey is the evaluation key of this Evaluator.
	// It is read-only and shared between shallow copies.
	EvaluationKey EvaluationKey[T]

	buffer evaluationBuffer[T]
}

// evaluationBuffer is a scratch space for Evaluator.
// Each field is scoped to one phase of one operation;
// nothing here survives across exported method calls.
type evaluationBuffer[T TorusInt] struct {
	// polyDiff holds (X^a - 1) * acc_c, the decomposition input.
	polyDiff poly.Poly[T]
	// ctFourierDecomposed holds the transformed digit polynomials of
	// one rotation step: (k+1) x Level.
	ctFourierDecomposed [][]poly.FourierPoly
	// ctFourierAcc is the per-component transform-domain accumulator
	// of the external product.
	ctFourierAcc FourierGLWECiphertext[T]

	// ctRotate is the blind rotation output before extraction.
	ctRotate GLWECiphertext[T]
	// ctExtract is the sample-extracted LWE ciphertext,
	// of dimension GLWEDimension.
	ctExtract LWECiphertext[T]
	// ctKeySwitchForBootstrap is the key-switched LWE ciphertext,
	// of dimension LWEDimension.
	ctKeySwitchForBootstrap LWECiphertext[T]

	// rotations holds the mod-switched rotation amounts of one batch.
	rotations []int

	// lut is the scratch table for BootstrapFunc.
	lut LookUpTable[T]
	// lutRaw is the scratch slice for LUT generation.
	lutRaw []T
}

// NewEvaluator creates a new Evaluator with a given evaluation key.
func NewEvaluator[T TorusInt](params Parameters[T], evk EvaluationKey[T]) *Evaluator[T] {
	return &Evaluator[T]{
		Parameters:    params,
		PolyEvaluator: poly.NewEvaluator[T](params.PolyDegree()),
		Decomposer:    NewDecomposer(params),
		EvaluationKey: evk,
		buffer:        newEvaluationBuffer(params),
	}
}

func newEvaluationBuffer[T TorusInt](params Parameters[T]) evaluationBuffer[T] {
	brLevel := params.BlindRotateParameters().Level()

	ctFourierDecomposed := make([][]poly.FourierPoly, params.GLWERank()+1)
	for c := range ctFourierDecomposed {
		ctFourierDecomposed[c] = make([]poly.FourierPoly, brLevel)
		for j := range ctFourierDecomposed[c] {
			ctFourierDecomposed[c][j] = poly.NewFourierPoly(params.PolyDegree())
		}
	}

	return evaluationBuffer[T]{
		polyDiff:            poly.NewPoly[T](params.PolyDegree()),
		ctFourierDecomposed: ctFourierDecomposed,
		ctFourierAcc:        NewFourierGLWECiphertext(params),

		ctRotate:                NewGLWECiphertext(params),
		ctExtract:               NewLWECiphertextCustom[T](params.GLWEDimension()),
		ctKeySwitchForBootstrap: NewLWECiphertextCustom[T](params.LWEDimension()),

		rotations: make([]int, params.LWEDimension()),

		lut:    NewLookUpTable(params),
		lutRaw: make([]T, params.PolyDegree()),
	}
}

// ShallowCopy returns a shallow copy of the Evaluator
// that is safe to use concurrently with the original.
func (e *Evaluator[T]) ShallowCopy() *Evaluator[T] {
	return &Evaluator[T]{
		Parameters:    e.Parameters,
		PolyEvaluator: e.PolyEvaluator.ShallowCopy(),
		Decomposer:    e.Decomposer.ShallowCopy(),
		EvaluationKey: e.EvaluationKey,
		buffer:        newEvaluationBuffer(e.Parameters),
	}
}

// AddLWE returns ct0 + ct1.
func (e *Evaluator[T]) AddLWE(ct0, ct1 LWECiphertext[T]) LWECiphertext[T] {
	ctOut := NewLWECiphertextCustom[T](len(ct0.Value) - 1)
	e.AddLWEAssign(ct0, ct1, ctOut)
	return ctOut
}

// AddLWEAssign computes ctOut = ct0 + ct1.
func (e *Evaluator[T]) AddLWEAssign(ct0, ct1, ctOut LWECiphertext[T]) {
	vec.AddAssign(ct0.Value, ct1.Value, ctOut.Value)
}

// SubLWEAssign computes ctOut = ct0 - ct1.
func (e *Evaluator[T]) SubLWEAssign(ct0, ct1, ctOut LWECiphertext[T]) {
	vec.SubAssign(ct0.Value, ct1.Value, ctOut.Value)
}

// NegLWEAssign computes ctOut = -ct0.
func (e *Evaluator[T]) NegLWEAssign(ct0, ctOut LWECiphertext[T]) {
	vec.NegAssign(ct0.Value, ctOut.Value)
}

// PlaintextAddLWEAssign computes ctOut = ct0 + pt.
func (e *Evaluator[T]) PlaintextAddLWEAssign(ct0 LWECiphertext[T], pt LWEPlaintext[T], ctOut LWECiphertext[T]) {
	ctOut.CopyFrom(ct0)
	ctOut.Value[0] += pt.Value
}

// ScalarMulAddLWEAssign computes ctOut += c * ct0.
func (e *Evaluator[T]) ScalarMulAddLWEAssign(ct0 LWECiphertext[T], c T, ctOut LWECiphertext[T]) {
	vec.ScalarMulAddAssign(ct0.Value, c, ctOut.Value)
}

// AddGLWEAssign computes ctOut = ct0 + ct1.
func (e *Evaluator[T]) AddGLWEAssign(ct0, ct1, ctOut GLWECiphertext[T]) {
	for i := range ctOut.Value {
		e.PolyEvaluator.AddPolyAssign(ct0.Value[i], ct1.Value[i], ctOut.Value[i])
	}
}

// SubGLWEAssign computes ctOut = ct0 - ct1.
func (e *Evaluator[T]) SubGLWEAssign(ct0, ct1, ctOut GLWECiphertext[T]) {
	for i := range ctOut.Value {
		e.PolyEvaluator.SubPolyAssign(ct0.Value[i], ct1.Value[i], ctOut.Value[i])
	}
}

// MonomialMulGLWEAssign computes ctOut = X^d * ct0.
//
// ct0 and ctOut should not overlap.
func (e *Evaluator[T]) MonomialMulGLWEAssign(ct0 GLWECiphertext[T], d int, ctOut GLWECiphertext[T]) {
	for i := range ctOut.Value {
		e.PolyEvaluator.MonomialMulPolyAssign(ct0.Value[i], d, ctOut.Value[i])
	}
}

// EncodeLWE encodes an integer message to an LWE plaintext.
// The message is taken modulo MessageModulus.
func (e *Evaluator[T]) EncodeLWE(message int) LWEPlaintext[T] {
	return LWEPlaintext[T]{Value: (T(message) % e.Parameters.messageModulus) * e.Parameters.scale}
}

// DecodeLWE decodes an LWE plaintext to an integer message.
func (e *Evaluator[T]) DecodeLWE(pt LWEPlaintext[T]) int {
	message := num.DivRoundBits(pt.Value, e.Parameters.scaleLog) % (2 * e.Parameters.messageModulus)
	return int(message % e.Parameters.messageModulus)
}
