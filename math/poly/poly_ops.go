package poly

import (
	"github.com/SUSYLABS/nufhe/math/num"
	"github.com/SUSYLABS/nufhe/math/vec"
)

// AddPolyAssign computes pOut = p0 + p1.
func (e *Evaluator[T]) AddPolyAssign(p0, p1, pOut Poly[T]) {
	vec.AddAssign(p0.Coeffs, p1.Coeffs, pOut.Coeffs)
}

// SubPolyAssign computes pOut = p0 - p1.
func (e *Evaluator[T]) SubPolyAssign(p0, p1, pOut Poly[T]) {
	vec.SubAssign(p0.Coeffs, p1.Coeffs, pOut.Coeffs)
}

// NegPolyAssign computes pOut = -p0.
func (e *Evaluator[T]) NegPolyAssign(p0, pOut Poly[T]) {
	vec.NegAssign(p0.Coeffs, pOut.Coeffs)
}

// ScalarMulPolyAssign computes pOut = c * p0.
func (e *Evaluator[T]) ScalarMulPolyAssign(p0 Poly[T], c T, pOut Poly[T]) {
	vec.ScalarMulAssign(p0.Coeffs, c, pOut.Coeffs)
}

// ScalarMulAddPolyAssign computes pOut += c * p0.
func (e *Evaluator[T]) ScalarMulAddPolyAssign(p0 Poly[T], c T, pOut Poly[T]) {
	vec.ScalarMulAddAssign(p0.Coeffs, c, pOut.Coeffs)
}

// MonomialMulPolyAssign computes pOut = X^d * p, where X^N = -1.
// d may be any integer; it is reduced modulo 2N.
//
// p and pOut should not overlap.
func (e *Evaluator[T]) MonomialMulPolyAssign(p Poly[T], d int, pOut Poly[T]) {
	N := e.degree
	d = ((d % (2 * N)) + 2*N) % (2 * N)

	// pOut[i] = p[i-d], with a sign flip on every wrap over the
	// anti-periodicity boundary X^N = -1.
	for i := 0; i < N; i++ {
		j := i - d
		switch {
		case j >= 0:
			pOut.Coeffs[i] = p.Coeffs[j]
		case j >= -N:
			pOut.Coeffs[i] = -p.Coeffs[j+N]
		default:
			pOut.Coeffs[i] = p.Coeffs[j+2*N]
		}
	}
}

// MonomialMulSubPolyAssign computes pOut = (X^d - 1) * p, where X^N = -1.
// d may be any integer; it is reduced modulo 2N.
//
// p and pOut should not overlap.
func (e *Evaluator[T]) MonomialMulSubPolyAssign(p Poly[T], d int, pOut Poly[T]) {
	N := e.degree
	d = ((d % (2 * N)) + 2*N) % (2 * N)

	for i := 0; i < N; i++ {
		j := i - d
		switch {
		case j >= 0:
			pOut.Coeffs[i] = p.Coeffs[j] - p.Coeffs[i]
		case j >= -N:
			pOut.Coeffs[i] = -p.Coeffs[j+N] - p.Coeffs[i]
		default:
			pOut.Coeffs[i] = p.Coeffs[j+2*N] - p.Coeffs[i]
		}
	}
}

// splitBits is the limb width used by coefficient-domain multiplication.
// A single float64 transform cannot round full-width products correctly,
// so operands are split into splitBits-wide limbs, multiplied limb by
// limb, and recombined with shifts. 12-bit limbs keep every limb product
// below the float64 mantissa for degrees up to 2048.
const splitBits = 12

// splitCount returns the number of splitBits-wide limbs covering T.
func splitCount[T num.Unsigned]() int {
	return (num.SizeT[T]() + splitBits - 1) / splitBits
}

// toFourierPolyLimbsAssign splits p into splitBits-wide limbs
// and transforms each limb into fpOut.
func (e *Evaluator[T]) toFourierPolyLimbsAssign(p Poly[T], fpOut []FourierPoly) {
	shift := splitBits
	mask := T(1)<<shift - 1
	for t := range fpOut {
		for i := range p.Coeffs {
			e.buffer.pSplit.Coeffs[i] = (p.Coeffs[i] >> (t * splitBits)) & mask
		}
		e.ToFourierPolyAssign(e.buffer.pSplit, fpOut[t])
	}
}

// addLimbProductsAssign accumulates pOut += p0 * p1 from the transformed
// limbs in fp0Split and fp1Split. Limb products are grouped by their
// combined shift; buckets whose shift falls outside the modulus vanish
// modulo 2^SizeT and are skipped.
func (e *Evaluator[T]) addLimbProductsAssign(pOut Poly[T]) {
	splits := len(e.buffer.fp0Split)
	for s := 0; s*splitBits < num.SizeT[T](); s++ {
		first := true
		for t := 0; t <= s; t++ {
			u := s - t
			if t >= splits || u >= splits {
				continue
			}
			if first {
				e.MulFourierAssign(e.buffer.fp0Split[t], e.buffer.fp1Split[u], e.buffer.fpMul)
				first = false
			} else {
				e.MulAddFourierAssign(e.buffer.fp0Split[t], e.buffer.fp1Split[u], e.buffer.fpMul)
			}
		}
		e.ToPolyAssignUnsafe(e.buffer.fpMul, e.buffer.pSplit)
		for i := range pOut.Coeffs {
			pOut.Coeffs[i] += e.buffer.pSplit.Coeffs[i] << (s * splitBits)
		}
	}
}

// subLimbProductsAssign computes pOut -= p0 * p1 from the transformed
// limbs in fp0Split and fp1Split.
func (e *Evaluator[T]) subLimbProductsAssign(pOut Poly[T]) {
	splits := len(e.buffer.fp0Split)
	for s := 0; s*splitBits < num.SizeT[T](); s++ {
		first := true
		for t := 0; t <= s; t++ {
			u := s - t
			if t >= splits || u >= splits {
				continue
			}
			if first {
				e.MulFourierAssign(e.buffer.fp0Split[t], e.buffer.fp1Split[u], e.buffer.fpMul)
				first = false
			} else {
				e.MulAddFourierAssign(e.buffer.fp0Split[t], e.buffer.fp1Split[u], e.buffer.fpMul)
			}
		}
		e.ToPolyAssignUnsafe(e.buffer.fpMul, e.buffer.pSplit)
		for i := range pOut.Coeffs {
			pOut.Coeffs[i] -= e.buffer.pSplit.Coeffs[i] << (s * splitBits)
		}
	}
}

// MulPoly computes the negacyclic product p0 * p1.
func (e *Evaluator[T]) MulPoly(p0, p1 Poly[T]) Poly[T] {
	pOut := e.NewPoly()
	e.MulPolyAssign(p0, p1, pOut)
	return pOut
}

// MulPolyAssign computes pOut = p0 * p1.
// The product is exact over Z_Q for full-width coefficients.
func (e *Evaluator[T]) MulPolyAssign(p0, p1, pOut Poly[T]) {
	e.toFourierPolyLimbsAssign(p0, e.buffer.fp0Split)
	e.toFourierPolyLimbsAssign(p1, e.buffer.fp1Split)
	pOut.Clear()
	e.addLimbProductsAssign(pOut)
}

// MulAddPolyAssign computes pOut += p0 * p1.
func (e *Evaluator[T]) MulAddPolyAssign(p0, p1, pOut Poly[T]) {
	e.toFourierPolyLimbsAssign(p0, e.buffer.fp0Split)
	e.toFourierPolyLimbsAssign(p1, e.buffer.fp1Split)
	e.addLimbProductsAssign(pOut)
}

// MulSubPolyAssign computes pOut -= p0 * p1.
func (e *Evaluator[T]) MulSubPolyAssign(p0, p1, pOut Poly[T]) {
	e.toFourierPolyLimbsAssign(p0, e.buffer.fp0Split)
	e.toFourierPolyLimbsAssign(p1, e.buffer.fp1Split)
	e.subLimbProductsAssign(pOut)
}
