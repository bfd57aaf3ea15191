package poly

import (
	"github.com/SUSYLABS/nufhe/math/num"
)

// The transform implemented here is the standard negacyclic half-size
// FFT: a degree-N real polynomial is folded into N/2 complex values
// through the ring isomorphism
//
//	Z[X]/(X^N+1) -> C[X]/(X^(N/2) - i),  p -> p_lo + i*p_hi,
//
// twisted by exp(pi*i*j/N), and evaluated at the N/2 roots of
// X^(N/2) = i with a radix-2 FFT. Multiplication is then pointwise,
// and the inverse path untwists and rounds back to integers.

// fftInPlace computes the forward FFT of c in place.
// Input and output are in natural order.
func fftInPlace(c []complex128, roots []complex128, bitRev []int) {
	for i, j := range bitRev {
		if i < j {
			c[i], c[j] = c[j], c[i]
		}
	}

	M := len(c)
	for size := 2; size <= M; size <<= 1 {
		half := size >> 1
		step := M / size
		for base := 0; base < M; base += size {
			for k := 0; k < half; k++ {
				w := roots[k*step]
				u := c[base+k]
				v := c[base+k+half] * w
				c[base+k] = u + v
				c[base+k+half] = u - v
			}
		}
	}
}

// ToFourierPoly transforms p to the transform domain.
func (e *Evaluator[T]) ToFourierPoly(p Poly[T]) FourierPoly {
	fpOut := NewFourierPoly(e.degree)
	e.ToFourierPolyAssign(p, fpOut)
	return fpOut
}

// ToFourierPolyAssign transforms p and writes it to fpOut.
//
// This is the forward transform of the engine: deterministic and pure,
// p is read-only.
func (e *Evaluator[T]) ToFourierPolyAssign(p Poly[T], fpOut FourierPoly) {
	M := e.degree / 2
	for j := 0; j < M; j++ {
		fpOut.Coeffs[j] = complex(
			num.ToFloat64Signed(p.Coeffs[j]),
			num.ToFloat64Signed(p.Coeffs[j+M]),
		) * e.tables.twist[j]
	}
	fftInPlace(fpOut.Coeffs, e.tables.roots, e.tables.bitRev)
}

// inverseUntwistInPlace computes the inverse FFT of fp in place
// and untwists it, leaving the folded coefficient values in fp.
func (e *Evaluator[T]) inverseUntwistInPlace(fp FourierPoly) {
	fftInPlace(fp.Coeffs, e.tables.rootsInv, e.tables.bitRev)
	M := e.degree / 2
	for j := 0; j < M; j++ {
		fp.Coeffs[j] *= e.tables.twistInv[j]
	}
}

// ToPolyAssignUnsafe transforms fp back to the coefficient domain
// and writes it to pOut.
//
// The operation is performed in place over fp, so fp is invalidated.
func (e *Evaluator[T]) ToPolyAssignUnsafe(fp FourierPoly, pOut Poly[T]) {
	e.inverseUntwistInPlace(fp)
	M := e.degree / 2
	for j := 0; j < M; j++ {
		pOut.Coeffs[j] = num.FromFloat64[T](real(fp.Coeffs[j]))
		pOut.Coeffs[j+M] = num.FromFloat64[T](imag(fp.Coeffs[j]))
	}
}

// ToPolyAddAssignUnsafe transforms fp back to the coefficient domain
// and adds it to pOut, fusing the inverse transform with the
// accumulation.
//
// The operation is performed in place over fp, so fp is invalidated.
func (e *Evaluator[T]) ToPolyAddAssignUnsafe(fp FourierPoly, pOut Poly[T]) {
	e.inverseUntwistInPlace(fp)
	M := e.degree / 2
	for j := 0; j < M; j++ {
		pOut.Coeffs[j] += num.FromFloat64[T](real(fp.Coeffs[j]))
		pOut.Coeffs[j+M] += num.FromFloat64[T](imag(fp.Coeffs[j]))
	}
}

// ToPolySubAssignUnsafe transforms fp back to the coefficient domain
// and subtracts it from pOut.
//
// The operation is performed in place over fp, so fp is invalidated.
func (e *Evaluator[T]) ToPolySubAssignUnsafe(fp FourierPoly, pOut Poly[T]) {
	e.inverseUntwistInPlace(fp)
	M := e.degree / 2
	for j := 0; j < M; j++ {
		pOut.Coeffs[j] -= num.FromFloat64[T](real(fp.Coeffs[j]))
		pOut.Coeffs[j+M] -= num.FromFloat64[T](imag(fp.Coeffs[j]))
	}
}
