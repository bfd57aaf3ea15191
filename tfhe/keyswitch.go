package tfhe

import (
	"github.com/SUSYLABS/nufhe/math/vec"
)

// KeySwitchForBootstrap switches the key of ct from the large
// GLWE-derived LWE key to the small LWE key.
func (e *Evaluator[T]) KeySwitchForBootstrap(ct LWECiphertext[T]) LWECiphertext[T] {
	ctOut := NewLWECiphertextCustom[T](e.Parameters.lweDimension)
	e.KeySwitchForBootstrapAssign(ct, ctOut)
	return ctOut
}

// KeySwitchForBootstrapAssign switches the key of ct from the large
// GLWE-derived LWE key to the small LWE key, and writes it to ctOut.
//
// The key switching key is tabulated: entry [i][j][d] encrypts the j-th
// digit position of d * sk[i], so each nonzero digit costs one vector
// subtraction and no multiplication.
func (e *Evaluator[T]) KeySwitchForBootstrapAssign(ct, ctOut LWECiphertext[T]) {
	ksk := e.EvaluationKey.KeySwitchKey
	level := e.Parameters.keySwitchParameters.level
	scalarDecomposed := e.Decomposer.buffer.scalarDecomposed[:level]

	vec.Fill(ctOut.Value[1:], 0)
	ctOut.Value[0] = ct.Value[0]
	for i := 0; i < e.Parameters.glweDimension; i++ {
		e.Decomposer.DecomposeScalarUnsignedAssign(ct.Value[i+1], e.Parameters.keySwitchParameters, scalarDecomposed)
		for j := 0; j < level; j++ {
			if d := scalarDecomposed[j]; d != 0 {
				vec.SubAssign(ctOut.Value, ksk.Value[i][j][d].Value, ctOut.Value)
			}
		}
	}
}
