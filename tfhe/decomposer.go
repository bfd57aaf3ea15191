package tfhe

import (
	"github.com/SUSYLABS/nufhe/math/num"
	"github.com/SUSYLABS/nufhe/math/poly"
)

// Decomposer extracts gadget-decomposition digits from torus values.
//
// Decomposer is not safe for concurrent use.
// Use [*Decomposer.ShallowCopy] to get a safe copy.
type Decomposer[T TorusInt] struct {
	polyDegree int
	maxLevel   int

	buffer decompositionBuffer[T]
}

// decompositionBuffer is a scratch space for Decomposer.
type decompositionBuffer[T TorusInt] struct {
	// polyDecomposed holds the digit polynomials of one accumulator
	// component, consumed by the forward transform within the same
	// rotation step. Sliced to the current gadget level before use.
	polyDecomposed []poly.Poly[T]
	// scalarDecomposed holds the digits of one scalar.
	scalarDecomposed []T
}

// NewDecomposer creates a new Decomposer.
// Its buffers cover the levels of both gadgets of params.
func NewDecomposer[T TorusInt](params Parameters[T]) *Decomposer[T] {
	maxLevel := num.Max(params.BlindRotateParameters().Level(), params.KeySwitchParameters().Level())
	return &Decomposer[T]{
		polyDegree: params.PolyDegree(),
		maxLevel:   maxLevel,
		buffer:     newDecompositionBuffer[T](params.PolyDegree(), maxLevel),
	}
}

func newDecompositionBuffer[T TorusInt](polyDegree, maxLevel int) decompositionBuffer[T] {
	polyDecomposed := make([]poly.Poly[T], maxLevel)
	for i := range polyDecomposed {
		polyDecomposed[i] = poly.NewPoly[T](polyDegree)
	}
	return decompositionBuffer[T]{
		polyDecomposed:   polyDecomposed,
		scalarDecomposed: make([]T, maxLevel),
	}
}

// ShallowCopy returns a shallow copy of the Decomposer
// that is safe to use concurrently with the original.
func (d *Decomposer[T]) ShallowCopy() *Decomposer[T] {
	return &Decomposer[T]{
		polyDegree: d.polyDegree,
		maxLevel:   d.maxLevel,
		buffer:     newDecompositionBuffer[T](d.polyDegree, d.maxLevel),
	}
}

// DecomposeScalar decomposes x into Level signed digits.
func (d *Decomposer[T]) DecomposeScalar(x T, gadgetParams GadgetParameters[T]) []T {
	decomposed := make([]T, gadgetParams.Level())
	d.DecomposeScalarAssign(x, gadgetParams, decomposed)
	return decomposed
}

// DecomposeScalarAssign decomposes x into Level signed digits and
// writes them to decomposedOut, most significant digit first.
//
// x is biased by half the representable range plus a rounding half so
// that the recentered digits, each in [-Base/2, Base/2 - 1],
// reconstruct the value of x rounded to nearest at Level * BaseLog
// bits, without carries. Rounding to nearest keeps the decomposition
// error zero-mean, which matters when thousands of external products
// accumulate into one ciphertext.
func (d *Decomposer[T]) DecomposeScalarAssign(x T, gadgetParams GadgetParameters[T], decomposedOut []T) {
	base := gadgetParams.base
	u := x + gadgetParams.offset + gadgetParams.roundOffset
	for j := 0; j < gadgetParams.level; j++ {
		decomposedOut[j] = (u>>gadgetParams.scaledBasesLog[j])&(base-1) - base/2
	}
}

// DecomposePolyAssign decomposes every coefficient of p into Level
// signed digit polynomials and writes them to decomposedOut,
// most significant digit first.
func (d *Decomposer[T]) DecomposePolyAssign(p poly.Poly[T], gadgetParams GadgetParameters[T], decomposedOut []poly.Poly[T]) {
	base := gadgetParams.base
	for i := 0; i < p.Degree(); i++ {
		u := p.Coeffs[i] + gadgetParams.offset + gadgetParams.roundOffset
		for j := 0; j < gadgetParams.level; j++ {
			decomposedOut[j].Coeffs[i] = (u>>gadgetParams.scaledBasesLog[j])&(base-1) - base/2
		}
	}
}

// DecomposeScalarUnsignedAssign decomposes x into Level unsigned
// digits in [0, Base) and writes them to decomposedOut,
// most significant digit first.
//
// x is rounded at Level * BaseLog bits of precision first.
// This is the decomposition used by the key switch, where digits
// index a precomputed subtraction table.
func (d *Decomposer[T]) DecomposeScalarUnsignedAssign(x T, gadgetParams GadgetParameters[T], decomposedOut []T) {
	base := gadgetParams.base
	u := x + gadgetParams.roundOffset
	for j := 0; j < gadgetParams.level; j++ {
		decomposedOut[j] = (u >> gadgetParams.scaledBasesLog[j]) & (base - 1)
	}
}
