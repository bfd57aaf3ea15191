// Package num implements various utility functions regarding numeric types.
package num

import (
	"math"
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Integer represents the integer numeric types.
type Integer interface {
	constraints.Integer
}

// Unsigned represents the unsigned integer numeric types.
type Unsigned interface {
	constraints.Unsigned
}

// Number represents all the numeric types supporting arithmetic operations.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// SizeT returns the bit length of type T.
func SizeT[T Integer]() int {
	var z T
	return int(unsafe.Sizeof(z)) * 8
}

// MaxT returns the maximum possible value of type T in float64.
func MaxT[T Unsigned]() float64 {
	return math.Exp2(float64(SizeT[T]()))
}

// Abs returns the absolute value of x.
func Abs[T Integer](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// IsPowerOfTwo returns whether x is a power of two.
// If x <= 0, it always returns false.
func IsPowerOfTwo[T Integer](x T) bool {
	return x > 0 && x&(x-1) == 0
}

// Log2 returns floor(log2(x)). If x == 0, it returns 0.
func Log2[T Integer](x T) int {
	if x == 0 {
		return 0
	}
	return bits.Len64(uint64(x)) - 1
}

// DivRound returns round(x/y), where x and y are integers.
func DivRound[T Integer](x, y T) T {
	ratio := x / y
	rem := x % y
	if 2*Abs(rem) >= Abs(y) {
		if (x < 0) != (y < 0) {
			return ratio - 1
		}
		return ratio + 1
	}
	return ratio
}

// DivRoundBits returns round(x / 2^bits).
// The result wraps around modulo 2^SizeT, which is the intended
// behavior for torus arithmetic.
func DivRoundBits[T Unsigned](x T, bits int) T {
	return (x + T(1)<<(bits-1)) >> bits
}

// ToFloat64Signed interprets x as a signed value centered around zero
// and returns it as float64.
func ToFloat64Signed[T Unsigned](x T) float64 {
	if x >= T(1)<<(SizeT[T]()-1) {
		return -float64(-x)
	}
	return float64(x)
}

// FromFloat64 rounds f and reduces it modulo 2^SizeT.
func FromFloat64[T Unsigned](f float64) T {
	maxT := MaxT[T]()
	f = math.Round(f)
	f -= math.Trunc(f/maxT) * maxT
	if f < 0 {
		f += maxT
	}
	return T(uint64(f))
}

// Min returns the smaller of x and y.
func Min[T constraints.Ordered](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Max returns the larger of x and y.
func Max[T constraints.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}
