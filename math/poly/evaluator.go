package poly

import (
	"math"
	"math/cmplx"

	"github.com/SUSYLABS/nufhe/math/num"
)

// Evaluator computes polynomial operations over the ring Z_Q[X]/(X^N + 1).
//
// Evaluator is not safe for concurrent use.
// Use [*Evaluator.ShallowCopy] to get a safe copy.
type Evaluator[T num.Unsigned] struct {
	degree int

	// tables are read-only and shared between shallow copies.
	tables *transformTables

	buffer evaluationBuffer[T]
}

// transformTables holds the precomputed constants of the negacyclic
// transform of one degree.
type transformTables struct {
	// twist[j] = exp(pi*i*j/N), folding Z[X]/(X^N+1) into C[X]/(X^(N/2) - i).
	twist []complex128
	// twistInv[j] = conj(twist[j]) / (N/2), fused with the inverse FFT scaling.
	twistInv []complex128
	// roots[j] = exp(2*pi*i*j/M) for the forward butterflies, M = N/2.
	roots []complex128
	// rootsInv[j] = conj(roots[j]) for the inverse butterflies.
	rootsInv []complex128
	// bitRev is the bit-reversal permutation of [0, M).
	bitRev []int
}

// evaluationBuffer is a scratch space for Evaluator.
// All fields are phase-scoped: no value stored here is meaningful
// across exported method calls.
type evaluationBuffer[T num.Unsigned] struct {
	// pSplit holds one limb of a multiplication operand,
	// and later one shift bucket of the product.
	pSplit Poly[T]
	// fp0Split, fp1Split hold the transformed limbs of the operands
	// during polynomial multiplication.
	fp0Split []FourierPoly
	fp1Split []FourierPoly
	// fpMul accumulates the limb products of one shift bucket.
	fpMul FourierPoly
}

// NewEvaluator creates a new Evaluator for degree N.
// N must be a power of two at least MinDegree.
func NewEvaluator[T num.Unsigned](N int) *Evaluator[T] {
	if !num.IsPowerOfTwo(N) || N < MinDegree {
		panic("degree not power of two or too small")
	}

	M := N / 2

	twist := make([]complex128, M)
	twistInv := make([]complex128, M)
	for j := 0; j < M; j++ {
		e := math.Pi * float64(j) / float64(N)
		twist[j] = cmplx.Rect(1, e)
		twistInv[j] = cmplx.Rect(1/float64(M), -e)
	}

	roots := make([]complex128, M)
	rootsInv := make([]complex128, M)
	for j := 0; j < M; j++ {
		e := 2 * math.Pi * float64(j) / float64(M)
		roots[j] = cmplx.Rect(1, e)
		rootsInv[j] = cmplx.Rect(1, -e)
	}

	logM := num.Log2(M)
	bitRev := make([]int, M)
	for i := 0; i < M; i++ {
		r := 0
		for b := 0; b < logM; b++ {
			r |= ((i >> b) & 1) << (logM - 1 - b)
		}
		bitRev[i] = r
	}

	return &Evaluator[T]{
		degree: N,
		tables: &transformTables{
			twist:    twist,
			twistInv: twistInv,
			roots:    roots,
			rootsInv: rootsInv,
			bitRev:   bitRev,
		},
		buffer: newEvaluationBuffer[T](N),
	}
}

func newEvaluationBuffer[T num.Unsigned](N int) evaluationBuffer[T] {
	splits := splitCount[T]()
	fp0Split := make([]FourierPoly, splits)
	fp1Split := make([]FourierPoly, splits)
	for i := 0; i < splits; i++ {
		fp0Split[i] = NewFourierPoly(N)
		fp1Split[i] = NewFourierPoly(N)
	}

	return evaluationBuffer[T]{
		pSplit:   NewPoly[T](N),
		fp0Split: fp0Split,
		fp1Split: fp1Split,
		fpMul:    NewFourierPoly(N),
	}
}

// ShallowCopy returns a shallow copy of the Evaluator
// that is safe to use concurrently with the original.
func (e *Evaluator[T]) ShallowCopy() *Evaluator[T] {
	return &Evaluator[T]{
		degree: e.degree,
		tables: e.tables,
		buffer: newEvaluationBuffer[T](e.degree),
	}
}

// Degree returns the degree of polynomials this Evaluator operates on.
func (e *Evaluator[T]) Degree() int {
	return e.degree
}

// NewPoly creates a zero polynomial of the evaluator's degree.
func (e *Evaluator[T]) NewPoly() Poly[T] {
	return NewPoly[T](e.degree)
}

// NewFourierPoly creates a zero transform-domain polynomial
// of the evaluator's degree.
func (e *Evaluator[T]) NewFourierPoly() FourierPoly {
	return NewFourierPoly(e.degree)
}
