package tfhe

import (
	"github.com/SUSYLABS/nufhe/math/poly"
)

// ExternalProduct returns ctGGSW * ctGLWE.
func (e *Evaluator[T]) ExternalProduct(ctGGSW FourierGGSWCiphertext[T], ctGLWE GLWECiphertext[T]) GLWECiphertext[T] {
	ctOut := NewGLWECiphertext(e.Parameters)
	e.ExternalProductAssign(ctGGSW, ctGLWE, ctOut)
	return ctOut
}

// ExternalProductAssign computes ctOut = ctGGSW * ctGLWE.
func (e *Evaluator[T]) ExternalProductAssign(ctGGSW FourierGGSWCiphertext[T], ctGLWE GLWECiphertext[T], ctOut GLWECiphertext[T]) {
	polyDecomposed := e.Decomposer.buffer.polyDecomposed[:ctGGSW.GadgetParameters.level]
	for c := 0; c < e.Parameters.glweRank+1; c++ {
		e.Decomposer.DecomposePolyAssign(ctGLWE.Value[c], ctGGSW.GadgetParameters, polyDecomposed)
		for j := 0; j < ctGGSW.GadgetParameters.level; j++ {
			e.PolyEvaluator.ToFourierPolyAssign(polyDecomposed[j], e.buffer.ctFourierDecomposed[c][j])
		}
	}

	e.ExternalProductFourierDecomposedAssign(ctGGSW, e.buffer.ctFourierDecomposed, ctOut)
}

// ExternalProductFourierDecomposedAssign computes ctOut = ctGGSW * ctGLWEDecomposed,
// where ctGLWEDecomposed is the transformed decomposition of a GLWE ciphertext.
//
// All accumulation happens in the transform domain;
// each output component is inverse-transformed exactly once.
func (e *Evaluator[T]) ExternalProductFourierDecomposedAssign(ctGGSW FourierGGSWCiphertext[T], ctGLWEDecomposed [][]poly.FourierPoly, ctOut GLWECiphertext[T]) {
	for cOut := 0; cOut < e.Parameters.glweRank+1; cOut++ {
		first := true
		for cIn := 0; cIn < e.Parameters.glweRank+1; cIn++ {
			for j := 0; j < ctGGSW.GadgetParameters.level; j++ {
				if first {
					e.PolyEvaluator.MulFourierAssign(ctGLWEDecomposed[cIn][j], ctGGSW.Value[cIn].Value[j].Value[cOut], e.buffer.ctFourierAcc.Value[cOut])
					first = false
				} else {
					e.PolyEvaluator.MulAddFourierAssign(ctGLWEDecomposed[cIn][j], ctGGSW.Value[cIn].Value[j].Value[cOut], e.buffer.ctFourierAcc.Value[cOut])
				}
			}
		}
		e.PolyEvaluator.ToPolyAssignUnsafe(e.buffer.ctFourierAcc.Value[cOut], ctOut.Value[cOut])
	}
}

// externalProductFourierDecomposedAddAssign computes ctOut += ctGGSW * ctGLWEDecomposed.
// This is the fused accumulate of a blind rotation step: the inverse
// transform lands directly on the accumulator.
func (e *Evaluator[T]) externalProductFourierDecomposedAddAssign(ctGGSW FourierGGSWCiphertext[T], ctGLWEDecomposed [][]poly.FourierPoly, ctOut GLWECiphertext[T]) {
	for cOut := 0; cOut < e.Parameters.glweRank+1; cOut++ {
		first := true
		for cIn := 0; cIn < e.Parameters.glweRank+1; cIn++ {
			for j := 0; j < ctGGSW.GadgetParameters.level; j++ {
				if first {
					e.PolyEvaluator.MulFourierAssign(ctGLWEDecomposed[cIn][j], ctGGSW.Value[cIn].Value[j].Value[cOut], e.buffer.ctFourierAcc.Value[cOut])
					first = false
				} else {
					e.PolyEvaluator.MulAddFourierAssign(ctGLWEDecomposed[cIn][j], ctGGSW.Value[cIn].Value[j].Value[cOut], e.buffer.ctFourierAcc.Value[cOut])
				}
			}
		}
		e.PolyEvaluator.ToPolyAddAssignUnsafe(e.buffer.ctFourierAcc.Value[cOut], ctOut.Value[cOut])
	}
}
