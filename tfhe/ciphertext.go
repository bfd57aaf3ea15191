package tfhe

import (
	"github.com/SUSYLABS/nufhe/math/poly"
	"github.com/SUSYLABS/nufhe/math/vec"
)

// LWEPlaintext is an encoded LWE message.
type LWEPlaintext[T TorusInt] struct {
	Value T
}

// LWECiphertext is an LWE ciphertext: a body and a mask.
// Value[0] is the body, Value[1:] is the mask.
type LWECiphertext[T TorusInt] struct {
	Value []T
}

// NewLWECiphertext creates a new zero LWE ciphertext
// of the default dimension.
func NewLWECiphertext[T TorusInt](params Parameters[T]) LWECiphertext[T] {
	return NewLWECiphertextCustom[T](params.DefaultLWEDimension())
}

// NewLWECiphertextCustom creates a new zero LWE ciphertext
// of dimension lweDimension.
func NewLWECiphertextCustom[T TorusInt](lweDimension int) LWECiphertext[T] {
	return LWECiphertext[T]{Value: make([]T, lweDimension+1)}
}

// Copy returns a copy of the ciphertext.
func (ct LWECiphertext[T]) Copy() LWECiphertext[T] {
	return LWECiphertext[T]{Value: append([]T(nil), ct.Value...)}
}

// CopyFrom copies ct0 to ct.
func (ct LWECiphertext[T]) CopyFrom(ct0 LWECiphertext[T]) {
	vec.CopyAssign(ct0.Value, ct.Value)
}

// Clear sets the ciphertext to zero.
func (ct LWECiphertext[T]) Clear() {
	vec.Fill(ct.Value, 0)
}

// GLWEPlaintext is an encoded GLWE message: a polynomial.
type GLWEPlaintext[T TorusInt] struct {
	Value poly.Poly[T]
}

// NewGLWEPlaintext creates a new zero GLWE plaintext.
func NewGLWEPlaintext[T TorusInt](params Parameters[T]) GLWEPlaintext[T] {
	return GLWEPlaintext[T]{Value: poly.NewPoly[T](params.PolyDegree())}
}

// GLWECiphertext is a GLWE ciphertext: (k+1) polynomials.
// Value[0] is the body, Value[1:] is the mask.
//
// A GLWECiphertext is the accumulator of blind rotation;
// it is mutated in place across rotation steps.
type GLWECiphertext[T TorusInt] struct {
	Value []poly.Poly[T]
}

// NewGLWECiphertext creates a new zero GLWE ciphertext.
func NewGLWECiphertext[T TorusInt](params Parameters[T]) GLWECiphertext[T] {
	return NewGLWECiphertextCustom[T](params.GLWERank(), params.PolyDegree())
}

// NewGLWECiphertextCustom creates a new zero GLWE ciphertext
// of given rank and degree.
func NewGLWECiphertextCustom[T TorusInt](glweRank, polyDegree int) GLWECiphertext[T] {
	ct := GLWECiphertext[T]{Value: make([]poly.Poly[T], glweRank+1)}
	for i := range ct.Value {
		ct.Value[i] = poly.NewPoly[T](polyDegree)
	}
	return ct
}

// Copy returns a copy of the ciphertext.
func (ct GLWECiphertext[T]) Copy() GLWECiphertext[T] {
	ctCopy := GLWECiphertext[T]{Value: make([]poly.Poly[T], len(ct.Value))}
	for i := range ct.Value {
		ctCopy.Value[i] = ct.Value[i].Copy()
	}
	return ctCopy
}

// CopyFrom copies ct0 to ct.
func (ct GLWECiphertext[T]) CopyFrom(ct0 GLWECiphertext[T]) {
	for i := range ct.Value {
		ct.Value[i].CopyFrom(ct0.Value[i])
	}
}

// Clear sets the ciphertext to zero.
func (ct GLWECiphertext[T]) Clear() {
	for i := range ct.Value {
		ct.Value[i].Clear()
	}
}

// ToLWECiphertextAssign extracts the LWE ciphertext of the idx-th
// message coefficient and writes it to ctOut.
// ctOut must have dimension GLWERank * PolyDegree.
//
// The reindexing follows the ring sign convention exactly:
// for idx = 0, mask[cN] = ct.Value[c+1][0] and
// mask[cN+j] = -ct.Value[c+1][N-j] for j > 0,
// with body ct.Value[0][idx].
func (ct GLWECiphertext[T]) ToLWECiphertextAssign(idx int, ctOut LWECiphertext[T]) {
	N := ct.Value[0].Degree()
	glweRank := len(ct.Value) - 1

	ctOut.Value[0] = ct.Value[0].Coeffs[idx]
	for c := 0; c < glweRank; c++ {
		base := c * N
		for j := 0; j <= idx; j++ {
			ctOut.Value[base+j+1] = ct.Value[c+1].Coeffs[idx-j]
		}
		for j := idx + 1; j < N; j++ {
			ctOut.Value[base+j+1] = -ct.Value[c+1].Coeffs[N+idx-j]
		}
	}
}

// FourierGLWECiphertext is a GLWE ciphertext with
// transform-domain polynomials.
type FourierGLWECiphertext[T TorusInt] struct {
	Value []poly.FourierPoly
}

// NewFourierGLWECiphertext creates a new zero FourierGLWE ciphertext.
func NewFourierGLWECiphertext[T TorusInt](params Parameters[T]) FourierGLWECiphertext[T] {
	return NewFourierGLWECiphertextCustom[T](params.GLWERank(), params.PolyDegree())
}

// NewFourierGLWECiphertextCustom creates a new zero FourierGLWE
// ciphertext of given rank and degree.
func NewFourierGLWECiphertextCustom[T TorusInt](glweRank, polyDegree int) FourierGLWECiphertext[T] {
	ct := FourierGLWECiphertext[T]{Value: make([]poly.FourierPoly, glweRank+1)}
	for i := range ct.Value {
		ct.Value[i] = poly.NewFourierPoly(polyDegree)
	}
	return ct
}

// Copy returns a copy of the ciphertext.
func (ct FourierGLWECiphertext[T]) Copy() FourierGLWECiphertext[T] {
	ctCopy := FourierGLWECiphertext[T]{Value: make([]poly.FourierPoly, len(ct.Value))}
	for i := range ct.Value {
		ctCopy.Value[i] = ct.Value[i].Copy()
	}
	return ctCopy
}

// Clear sets the ciphertext to zero.
func (ct FourierGLWECiphertext[T]) Clear() {
	for i := range ct.Value {
		ct.Value[i].Clear()
	}
}

// FourierGLevCiphertext is a leveled gadget vector of FourierGLWE
// ciphertexts: Value[j] is scaled by 1 / Base^(j+1).
type FourierGLevCiphertext[T TorusInt] struct {
	GadgetParameters GadgetParameters[T]

	Value []FourierGLWECiphertext[T]
}

// NewFourierGLevCiphertext creates a new zero FourierGLev ciphertext.
func NewFourierGLevCiphertext[T TorusInt](params Parameters[T], gadgetParams GadgetParameters[T]) FourierGLevCiphertext[T] {
	ct := FourierGLevCiphertext[T]{
		GadgetParameters: gadgetParams,
		Value:            make([]FourierGLWECiphertext[T], gadgetParams.Level()),
	}
	for i := range ct.Value {
		ct.Value[i] = NewFourierGLWECiphertext(params)
	}
	return ct
}

// Copy returns a copy of the ciphertext.
func (ct FourierGLevCiphertext[T]) Copy() FourierGLevCiphertext[T] {
	ctCopy := FourierGLevCiphertext[T]{
		GadgetParameters: ct.GadgetParameters,
		Value:            make([]FourierGLWECiphertext[T], len(ct.Value)),
	}
	for i := range ct.Value {
		ctCopy.Value[i] = ct.Value[i].Copy()
	}
	return ctCopy
}

// FourierGGSWCiphertext is a GGSW ciphertext in the transform domain:
// a (k+1) x Level x (k+1) matrix of polynomials.
// Value[c] is the gadget row vector of input component c.
//
// One FourierGGSWCiphertext is one bootstrapping-key entry.
type FourierGGSWCiphertext[T TorusInt] struct {
	GadgetParameters GadgetParameters[T]

	Value []FourierGLevCiphertext[T]
}

// NewFourierGGSWCiphertext creates a new zero FourierGGSW ciphertext.
func NewFourierGGSWCiphertext[T TorusInt](params Parameters[T], gadgetParams GadgetParameters[T]) FourierGGSWCiphertext[T] {
	ct := FourierGGSWCiphertext[T]{
		GadgetParameters: gadgetParams,
		Value:            make([]FourierGLevCiphertext[T], params.GLWERank()+1),
	}
	for i := range ct.Value {
		ct.Value[i] = NewFourierGLevCiphertext(params, gadgetParams)
	}
	return ct
}

// Copy returns a copy of the ciphertext.
func (ct FourierGGSWCiphertext[T]) Copy() FourierGGSWCiphertext[T] {
	ctCopy := FourierGGSWCiphertext[T]{
		GadgetParameters: ct.GadgetParameters,
		Value:            make([]FourierGLevCiphertext[T], len(ct.Value)),
	}
	for i := range ct.Value {
		ctCopy.Value[i] = ct.Value[i].Copy()
	}
	return ctCopy
}

// LookUpTable is the plaintext accumulator polynomial of bootstrapping.
type LookUpTable[T TorusInt] struct {
	Value poly.Poly[T]
}

// NewLookUpTable creates a new zero LookUpTable.
func NewLookUpTable[T TorusInt](params Parameters[T]) LookUpTable[T] {
	return LookUpTable[T]{Value: poly.NewPoly[T](params.PolyDegree())}
}

// Copy returns a copy of the LookUpTable.
func (lut LookUpTable[T]) Copy() LookUpTable[T] {
	return LookUpTable[T]{Value: lut.Value.Copy()}
}
