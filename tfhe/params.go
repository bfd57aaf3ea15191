// Package tfhe implements a torus fully homomorphic encryption scheme
// whose central operation is programmable bootstrapping:
// blind rotation of an encrypted accumulator followed by key switching.
package tfhe

import (
	"math"

	"github.com/SUSYLABS/nufhe/math/num"
)

// TorusInt represents the discretized torus types:
// unsigned integers whose full range is interpreted as [0, 1).
type TorusInt interface {
	uint32 | uint64
}

// BootstrapOrder is the order of the two key-changing operations
// inside a bootstrap pipeline.
type BootstrapOrder int

const (
	// OrderKeySwitchBlindRotate key-switches first, so fresh
	// ciphertexts live under the large (GLWE-derived) LWE key.
	OrderKeySwitchBlindRotate BootstrapOrder = iota

	// OrderBlindRotateKeySwitch blind-rotates first, so fresh
	// ciphertexts live under the small LWE key.
	OrderBlindRotateKeySwitch
)

// GadgetParametersLiteral is a structure for the gadget decomposition,
// which is used in both the blind rotation and the key switch.
type GadgetParametersLiteral[T TorusInt] struct {
	// Base is the decomposition base. Must be a power of two.
	Base T
	// Level is the number of decomposed digits.
	Level int
}

// Compile transforms GadgetParametersLiteral to read-only GadgetParameters.
// If the parameters are invalid, it panics.
func (p GadgetParametersLiteral[T]) Compile() GadgetParameters[T] {
	switch {
	case !num.IsPowerOfTwo(p.Base):
		panic("Base not power of two")
	case p.Level <= 0:
		panic("Level smaller than zero")
	case num.Log2(p.Base)*p.Level > num.SizeT[T]():
		panic("Base and Level exceeding the modulus")
	}

	baseLog := num.Log2(p.Base)
	sizeT := num.SizeT[T]()

	scaledBasesLog := make([]int, p.Level)
	for j := 0; j < p.Level; j++ {
		scaledBasesLog[j] = sizeT - (j+1)*baseLog
	}

	// Biasing by offset before digit extraction makes the recentered
	// digits reconstruct a correctly rounded value without carries.
	var offset T
	for j := 0; j < p.Level; j++ {
		offset += (p.Base / 2) << scaledBasesLog[j]
	}

	var roundOffset T
	if baseLog*p.Level < sizeT {
		roundOffset = T(1) << (sizeT - (1 + baseLog*p.Level))
	}

	return GadgetParameters[T]{
		base:           p.Base,
		baseLog:        baseLog,
		level:          p.Level,
		offset:         offset,
		roundOffset:    roundOffset,
		scaledBasesLog: scaledBasesLog,
	}
}

// GadgetParameters is a read-only compiled GadgetParametersLiteral.
type GadgetParameters[T TorusInt] struct {
	base           T
	baseLog        int
	level          int
	offset         T
	roundOffset    T
	scaledBasesLog []int
}

// Base returns the decomposition base.
func (p GadgetParameters[T]) Base() T {
	return p.base
}

// BaseLog returns log2 of the decomposition base.
func (p GadgetParameters[T]) BaseLog() int {
	return p.baseLog
}

// Level returns the number of decomposed digits.
func (p GadgetParameters[T]) Level() int {
	return p.level
}

// ScaledBaseLog returns log2 of the scaling factor of the j-th digit,
// i.e. SizeT - (j+1)*BaseLog. Digits are most-significant first.
func (p GadgetParameters[T]) ScaledBaseLog(j int) int {
	return p.scaledBasesLog[j]
}

// Literal returns the GadgetParametersLiteral this was compiled from.
func (p GadgetParameters[T]) Literal() GadgetParametersLiteral[T] {
	return GadgetParametersLiteral[T]{Base: p.base, Level: p.level}
}

// ParametersLiteral is a structure for the parameters of the scheme.
//
// Unless you are a cryptographic expert, use the default parameter sets
// from params_list.go.
type ParametersLiteral[T TorusInt] struct {
	// LWEDimension is the dimension of LWE ciphertexts,
	// and the number of blind rotation steps.
	LWEDimension int
	// GLWERank is the rank of GLWE ciphertexts,
	// referred to as k. The accumulator has GLWERank+1 polynomials.
	GLWERank int
	// PolyDegree is the degree N of the ring polynomials.
	PolyDegree int

	// LWEStdDev is the standard deviation of LWE encryption noise,
	// normalized to the torus.
	LWEStdDev float64
	// GLWEStdDev is the standard deviation of GLWE encryption noise,
	// normalized to the torus.
	GLWEStdDev float64

	// MessageModulus is the size of the message space.
	// Must be a power of two.
	MessageModulus T

	// BlindRotateParameters is the gadget decomposition used
	// in the external products of blind rotation.
	BlindRotateParameters GadgetParametersLiteral[T]
	// KeySwitchParameters is the gadget decomposition used
	// in the key switch.
	KeySwitchParameters GadgetParametersLiteral[T]

	// BootstrapOrder is the order of key switch and blind rotation.
	BootstrapOrder BootstrapOrder
}

// Compile transforms ParametersLiteral to read-only Parameters.
// If the parameters are invalid, it panics.
//
// All structural preconditions are validated here, once; no
// per-invocation validation happens afterwards.
func (p ParametersLiteral[T]) Compile() Parameters[T] {
	switch {
	case p.LWEDimension <= 0:
		panic("LWEDimension smaller than zero")
	case p.GLWERank <= 0:
		panic("GLWERank smaller than zero")
	case p.LWEDimension > p.GLWERank*p.PolyDegree:
		panic("LWEDimension larger than GLWEDimension")
	case !num.IsPowerOfTwo(p.PolyDegree):
		panic("PolyDegree not power of two")
	case p.LWEStdDev <= 0:
		panic("LWEStdDev smaller than zero")
	case p.GLWEStdDev <= 0:
		panic("GLWEStdDev smaller than zero")
	case !num.IsPowerOfTwo(p.MessageModulus) || p.MessageModulus < 2:
		panic("MessageModulus not power of two")
	case p.BootstrapOrder != OrderKeySwitchBlindRotate && p.BootstrapOrder != OrderBlindRotateKeySwitch:
		panic("BootstrapOrder not valid")
	}

	messageModulusLog := num.Log2(p.MessageModulus)
	sizeT := num.SizeT[T]()

	return Parameters[T]{
		lweDimension:  p.LWEDimension,
		glweDimension: p.GLWERank * p.PolyDegree,
		glweRank:      p.GLWERank,
		polyDegree:    p.PolyDegree,

		lweStdDev:  p.LWEStdDev,
		glweStdDev: p.GLWEStdDev,

		messageModulus: p.MessageModulus,
		scale:          T(1) << (sizeT - messageModulusLog - 1),
		scaleLog:       sizeT - messageModulusLog - 1,

		blindRotateParameters: p.BlindRotateParameters.Compile(),
		keySwitchParameters:   p.KeySwitchParameters.Compile(),

		modSwitchConstant: float64(2*p.PolyDegree) / math.Exp2(float64(sizeT)),

		bootstrapOrder: p.BootstrapOrder,
	}
}

// Parameters is a read-only compiled ParametersLiteral.
type Parameters[T TorusInt] struct {
	lweDimension  int
	glweDimension int
	glweRank      int
	polyDegree    int

	lweStdDev  float64
	glweStdDev float64

	messageModulus T
	scale          T
	scaleLog       int

	blindRotateParameters GadgetParameters[T]
	keySwitchParameters   GadgetParameters[T]

	modSwitchConstant float64

	bootstrapOrder BootstrapOrder
}

// LWEDimension returns the dimension of LWE ciphertexts.
func (p Parameters[T]) LWEDimension() int {
	return p.lweDimension
}

// GLWEDimension returns the dimension GLWERank * PolyDegree of the
// LWE ciphertext extracted from a GLWE ciphertext.
func (p Parameters[T]) GLWEDimension() int {
	return p.glweDimension
}

// DefaultLWEDimension returns the dimension of fresh LWE ciphertexts.
// This depends on BootstrapOrder.
func (p Parameters[T]) DefaultLWEDimension() int {
	if p.bootstrapOrder == OrderKeySwitchBlindRotate {
		return p.glweDimension
	}
	return p.lweDimension
}

// GLWERank returns the rank k of GLWE ciphertexts.
func (p Parameters[T]) GLWERank() int {
	return p.glweRank
}

// PolyDegree returns the degree N of the ring polynomials.
func (p Parameters[T]) PolyDegree() int {
	return p.polyDegree
}

// LWEStdDev returns the standard deviation of LWE encryption noise.
func (p Parameters[T]) LWEStdDev() float64 {
	return p.lweStdDev
}

// GLWEStdDev returns the standard deviation of GLWE encryption noise.
func (p Parameters[T]) GLWEStdDev() float64 {
	return p.glweStdDev
}

// MessageModulus returns the size of the message space.
func (p Parameters[T]) MessageModulus() T {
	return p.messageModulus
}

// Scale returns the scaling factor used in encoding.
func (p Parameters[T]) Scale() T {
	return p.scale
}

// BlindRotateParameters returns the gadget parameters of blind rotation.
func (p Parameters[T]) BlindRotateParameters() GadgetParameters[T] {
	return p.blindRotateParameters
}

// KeySwitchParameters returns the gadget parameters of the key switch.
func (p Parameters[T]) KeySwitchParameters() GadgetParameters[T] {
	return p.keySwitchParameters
}

// BootstrapOrder returns the order of key switch and blind rotation.
func (p Parameters[T]) BootstrapOrder() BootstrapOrder {
	return p.bootstrapOrder
}

// Literal returns the ParametersLiteral this was compiled from.
func (p Parameters[T]) Literal() ParametersLiteral[T] {
	return ParametersLiteral[T]{
		LWEDimension: p.lweDimension,
		GLWERank:     p.glweRank,
		PolyDegree:   p.polyDegree,

		LWEStdDev:  p.lweStdDev,
		GLWEStdDev: p.glweStdDev,

		MessageModulus: p.messageModulus,

		BlindRotateParameters: p.blindRotateParameters.Literal(),
		KeySwitchParameters:   p.keySwitchParameters.Literal(),

		BootstrapOrder: p.bootstrapOrder,
	}
}
