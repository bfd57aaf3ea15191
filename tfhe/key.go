package tfhe

import (
	"github.com/SUSYLABS/nufhe/math/poly"
)

// LWESecretKey is a binary LWE secret key.
type LWESecretKey[T TorusInt] struct {
	Value []T
}

// NewLWESecretKey creates a new zero LWE secret key of given dimension.
func NewLWESecretKey[T TorusInt](lweDimension int) LWESecretKey[T] {
	return LWESecretKey[T]{Value: make([]T, lweDimension)}
}

// Copy returns a copy of the key.
func (sk LWESecretKey[T]) Copy() LWESecretKey[T] {
	return LWESecretKey[T]{Value: append([]T(nil), sk.Value...)}
}

// GLWESecretKey is a binary GLWE secret key: GLWERank polynomials.
type GLWESecretKey[T TorusInt] struct {
	Value []poly.Poly[T]
}

// NewGLWESecretKey creates a new zero GLWE secret key.
func NewGLWESecretKey[T TorusInt](glweRank, polyDegree int) GLWESecretKey[T] {
	sk := GLWESecretKey[T]{Value: make([]poly.Poly[T], glweRank)}
	for i := range sk.Value {
		sk.Value[i] = poly.NewPoly[T](polyDegree)
	}
	return sk
}

// SecretKey is the full secret key of the scheme.
//
// GLWEKey and LWELargeKey share the same backing storage:
// the large LWE key is the GLWE key coefficients flattened in order,
// matching the sample-extraction convention.
type SecretKey[T TorusInt] struct {
	// LWEKey is the small LWE key, of length LWEDimension.
	LWEKey LWESecretKey[T]
	// GLWEKey is the GLWE key, of GLWERank polynomials.
	GLWEKey GLWESecretKey[T]
	// LWELargeKey is the GLWE key flattened, of length GLWERank * PolyDegree.
	LWELargeKey LWESecretKey[T]
}

// NewSecretKey creates a new zero SecretKey.
func NewSecretKey[T TorusInt](params Parameters[T]) SecretKey[T] {
	glweRank, polyDegree := params.GLWERank(), params.PolyDegree()

	largeKey := make([]T, glweRank*polyDegree)
	glweKey := GLWESecretKey[T]{Value: make([]poly.Poly[T], glweRank)}
	for i := 0; i < glweRank; i++ {
		glweKey.Value[i] = poly.Poly[T]{Coeffs: largeKey[i*polyDegree : (i+1)*polyDegree]}
	}

	return SecretKey[T]{
		LWEKey:      NewLWESecretKey[T](params.LWEDimension()),
		GLWEKey:     glweKey,
		LWELargeKey: LWESecretKey[T]{Value: largeKey},
	}
}

// BlindRotateKey is the bootstrapping key: one pre-transformed GGSW
// encryption of each small LWE key bit.
// It is read-only during evaluation and safe to share across batches.
type BlindRotateKey[T TorusInt] struct {
	GadgetParameters GadgetParameters[T]

	// Value[i] is the GGSW encryption of LWEKey.Value[i].
	Value []FourierGGSWCiphertext[T]
}

// NewBlindRotateKey creates a new zero BlindRotateKey.
func NewBlindRotateKey[T TorusInt](params Parameters[T]) BlindRotateKey[T] {
	brk := BlindRotateKey[T]{
		GadgetParameters: params.BlindRotateParameters(),
		Value:            make([]FourierGGSWCiphertext[T], params.LWEDimension()),
	}
	for i := range brk.Value {
		brk.Value[i] = NewFourierGGSWCiphertext(params, params.BlindRotateParameters())
	}
	return brk
}

// KeySwitchKey is the key-switching key from the large LWE key to the
// small LWE key, in digit-table form:
// Value[i][j][d] encrypts d * LWELargeKey[i] / Base^(j+1),
// for every nonzero digit d in [1, Base).
// The d = 0 entries are kept zero and never used.
// It is read-only during evaluation and safe to share across batches.
type KeySwitchKey[T TorusInt] struct {
	GadgetParameters GadgetParameters[T]

	Value [][][]LWECiphertext[T]
}

// NewKeySwitchKey creates a new zero KeySwitchKey.
func NewKeySwitchKey[T TorusInt](params Parameters[T]) KeySwitchKey[T] {
	gadgetParams := params.KeySwitchParameters()

	ksk := KeySwitchKey[T]{
		GadgetParameters: gadgetParams,
		Value:            make([][][]LWECiphertext[T], params.GLWEDimension()),
	}
	for i := range ksk.Value {
		ksk.Value[i] = make([][]LWECiphertext[T], gadgetParams.Level())
		for j := range ksk.Value[i] {
			ksk.Value[i][j] = make([]LWECiphertext[T], gadgetParams.Base())
			for d := range ksk.Value[i][j] {
				ksk.Value[i][j][d] = NewLWECiphertextCustom[T](params.LWEDimension())
			}
		}
	}
	return ksk
}

// EvaluationKey is the public key needed for bootstrapping.
type EvaluationKey[T TorusInt] struct {
	BlindRotateKey BlindRotateKey[T]
	KeySwitchKey   KeySwitchKey[T]
}

// NewEvaluationKey creates a new zero EvaluationKey.
func NewEvaluationKey[T TorusInt](params Parameters[T]) EvaluationKey[T] {
	return EvaluationKey[T]{
		BlindRotateKey: NewBlindRotateKey(params),
		KeySwitchKey:   NewKeySwitchKey(params),
	}
}
