// Package vec implements vector operations acting on slices.
//
// Operations usually take three forms: for example,
//   - Add(v0, v1) returns a new vector holding v0 + v1.
//   - AddAssign(v0, v1, vOut) computes vOut = v0 + v1.
//   - AddAddAssign-style fused variants where they save an allocation.
//
// The "Assign" variants never allocate, so they are the ones used in
// hot paths.
package vec

import (
	"github.com/SUSYLABS/nufhe/math/num"
)

// Fill fills v with x.
func Fill[T any](v []T, x T) {
	for i := range v {
		v[i] = x
	}
}

// CopyAssign copies v0 to vOut.
func CopyAssign[T any](v0, vOut []T) {
	copy(vOut, v0)
}

// Dot returns the dot product of v0 and v1.
func Dot[T num.Number](v0, v1 []T) T {
	var res T
	for i := range v0 {
		res += v0[i] * v1[i]
	}
	return res
}

// AddAssign computes vOut = v0 + v1.
func AddAssign[T num.Number](v0, v1, vOut []T) {
	for i := range vOut {
		vOut[i] = v0[i] + v1[i]
	}
}

// SubAssign computes vOut = v0 - v1.
func SubAssign[T num.Number](v0, v1, vOut []T) {
	for i := range vOut {
		vOut[i] = v0[i] - v1[i]
	}
}

// NegAssign computes vOut = -v0.
func NegAssign[T num.Number](v0, vOut []T) {
	for i := range vOut {
		vOut[i] = -v0[i]
	}
}

// ScalarMulAssign computes vOut = c * v0.
func ScalarMulAssign[T num.Number](v0 []T, c T, vOut []T) {
	for i := range vOut {
		vOut[i] = c * v0[i]
	}
}

// ScalarMulAddAssign computes vOut += c * v0.
func ScalarMulAddAssign[T num.Number](v0 []T, c T, vOut []T) {
	for i := range vOut {
		vOut[i] += c * v0[i]
	}
}

// ScalarMulSubAssign computes vOut -= c * v0.
func ScalarMulSubAssign[T num.Number](v0 []T, c T, vOut []T) {
	for i := range vOut {
		vOut[i] -= c * v0[i]
	}
}

// RotateInPlace rotates v by n positions in place.
// If n > 0, the rotation is to the right, so that vOut[i] = v[i-n].
// If n < 0, the rotation is to the left.
func RotateInPlace[T any](v []T, n int) {
	n %= len(v)
	if n < 0 {
		n += len(v)
	}
	if n == 0 {
		return
	}
	reverseInPlace(v)
	reverseInPlace(v[:n])
	reverseInPlace(v[n:])
}

func reverseInPlace[T any](v []T) {
	for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
}
