// Package poly implements polynomial types over the negacyclic ring
// Z_Q[X]/(X^N + 1), where Q is the modulus of the unsigned integer
// type T and N is a power-of-two degree, together with an evaluator
// computing ring operations through a floating-point transform domain.
package poly

import (
	"github.com/SUSYLABS/nufhe/math/num"
	"github.com/SUSYLABS/nufhe/math/vec"
)

// MinDegree is the minimum degree of supported polynomials.
const MinDegree = 1 << 4

// Poly is a polynomial of degree N over Z_Q[X]/(X^N + 1).
// Coeffs[i] is the coefficient of X^i.
type Poly[T num.Integer] struct {
	Coeffs []T
}

// NewPoly creates a zero polynomial of degree N.
// N must be a power of two at least MinDegree.
func NewPoly[T num.Integer](N int) Poly[T] {
	if !num.IsPowerOfTwo(N) || N < MinDegree {
		panic("degree not power of two or too small")
	}
	return Poly[T]{Coeffs: make([]T, N)}
}

// Degree returns the degree of the polynomial.
func (p Poly[T]) Degree() int {
	return len(p.Coeffs)
}

// Copy returns a copy of the polynomial.
func (p Poly[T]) Copy() Poly[T] {
	return Poly[T]{Coeffs: append([]T(nil), p.Coeffs...)}
}

// CopyFrom copies p0 to p.
func (p Poly[T]) CopyFrom(p0 Poly[T]) {
	vec.CopyAssign(p0.Coeffs, p.Coeffs)
}

// Clear sets all coefficients to zero.
func (p Poly[T]) Clear() {
	vec.Fill(p.Coeffs, 0)
}

// FourierPoly is a polynomial of degree N in the transform domain:
// N/2 complex evaluations at the odd 2N-th roots of unity.
type FourierPoly struct {
	Coeffs []complex128
}

// NewFourierPoly creates a zero transform-domain polynomial
// corresponding to coefficient degree N.
func NewFourierPoly(N int) FourierPoly {
	if !num.IsPowerOfTwo(N) || N < MinDegree {
		panic("degree not power of two or too small")
	}
	return FourierPoly{Coeffs: make([]complex128, N/2)}
}

// Degree returns the coefficient-domain degree of the polynomial.
func (p FourierPoly) Degree() int {
	return 2 * len(p.Coeffs)
}

// Copy returns a copy of the polynomial.
func (p FourierPoly) Copy() FourierPoly {
	return FourierPoly{Coeffs: append([]complex128(nil), p.Coeffs...)}
}

// CopyFrom copies p0 to p.
func (p FourierPoly) CopyFrom(p0 FourierPoly) {
	vec.CopyAssign(p0.Coeffs, p.Coeffs)
}

// Clear sets all coefficients to zero.
func (p FourierPoly) Clear() {
	vec.Fill(p.Coeffs, 0)
}
