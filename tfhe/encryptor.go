package tfhe

import (
	"runtime"
	"sync"

	"github.com/SUSYLABS/nufhe/math/csprng"
	"github.com/SUSYLABS/nufhe/math/num"
	"github.com/SUSYLABS/nufhe/math/poly"
	"github.com/SUSYLABS/nufhe/math/vec"
)

// Encryptor encrypts and decrypts ciphertexts.
// It embeds the secret key, so it should not leave the owner's side.
//
// Encryptor is not safe for concurrent use.
// Use [*Encryptor.ShallowCopy] to get a safe copy sharing the
// secret key.
type Encryptor[T TorusInt] struct {
	// Parameters is the parameters of this Encryptor.
	Parameters Parameters[T]

	// PolyEvaluator is the transform engine of this Encryptor.
	PolyEvaluator *poly.Evaluator[T]

	// UniformSampler samples the ciphertext masks.
	UniformSampler *csprng.UniformSampler[T]
	// BinarySampler samples the secret keys.
	BinarySampler *csprng.BinarySampler[T]
	// GaussianSampler samples the encryption noise.
	GaussianSampler *csprng.GaussianSampler[T]

	// SecretKey is the secret key of this Encryptor.
	// It is read-only and shared between shallow copies.
	SecretKey SecretKey[T]

	buffer encryptionBuffer[T]
}

// encryptionBuffer is a scratch space for Encryptor.
type encryptionBuffer[T TorusInt] struct {
	// ptGLWE holds the GLWE plaintext of the encryption in progress.
	ptGLWE GLWEPlaintext[T]
	// ctGLWE holds one GGSW row before its transform.
	ctGLWE GLWECiphertext[T]
}

// NewEncryptor creates a new Encryptor with a newly sampled secret key.
func NewEncryptor[T TorusInt](params Parameters[T]) *Encryptor[T] {
	e := NewEncryptorWithKey(params, NewSecretKey(params))
	e.GenSecretKeyAssign()
	return e
}

// NewEncryptorWithKey creates a new Encryptor with a given secret key.
func NewEncryptorWithKey[T TorusInt](params Parameters[T], sk SecretKey[T]) *Encryptor[T] {
	return &Encryptor[T]{
		Parameters: params,

		PolyEvaluator: poly.NewEvaluator[T](params.PolyDegree()),

		UniformSampler:  csprng.NewUniformSampler[T](),
		BinarySampler:   csprng.NewBinarySampler[T](),
		GaussianSampler: csprng.NewGaussianSampler[T](),

		SecretKey: sk,

		buffer: newEncryptionBuffer(params),
	}
}

func newEncryptionBuffer[T TorusInt](params Parameters[T]) encryptionBuffer[T] {
	return encryptionBuffer[T]{
		ptGLWE: NewGLWEPlaintext(params),
		ctGLWE: NewGLWECiphertext(params),
	}
}

// ShallowCopy returns a shallow copy of the Encryptor
// that is safe to use concurrently with the original.
func (e *Encryptor[T]) ShallowCopy() *Encryptor[T] {
	return &Encryptor[T]{
		Parameters: e.Parameters,

		PolyEvaluator: e.PolyEvaluator.ShallowCopy(),

		UniformSampler:  csprng.NewUniformSampler[T](),
		BinarySampler:   csprng.NewBinarySampler[T](),
		GaussianSampler: csprng.NewGaussianSampler[T](),

		SecretKey: e.SecretKey,

		buffer: newEncryptionBuffer(e.Parameters),
	}
}

// GenSecretKeyAssign samples a new binary secret key
// and writes it to the SecretKey of this Encryptor.
// The small LWE key and the GLWE key are sampled independently.
func (e *Encryptor[T]) GenSecretKeyAssign() {
	e.BinarySampler.SampleSliceAssign(e.SecretKey.LWEKey.Value)
	e.BinarySampler.SampleSliceAssign(e.SecretKey.LWELargeKey.Value)
}

// DefaultLWESecretKey returns the LWE key of the default dimension.
// This depends on BootstrapOrder.
func (e *Encryptor[T]) DefaultLWESecretKey() LWESecretKey[T] {
	if e.Parameters.bootstrapOrder == OrderKeySwitchBlindRotate {
		return e.SecretKey.LWELargeKey
	}
	return e.SecretKey.LWEKey
}

// EncodeLWE encodes an integer message to an LWE plaintext.
// The message is taken modulo MessageModulus.
func (e *Encryptor[T]) EncodeLWE(message int) LWEPlaintext[T] {
	return LWEPlaintext[T]{Value: (T(message) % e.Parameters.messageModulus) * e.Parameters.scale}
}

// DecodeLWE decodes an LWE plaintext to an integer message.
func (e *Encryptor[T]) DecodeLWE(pt LWEPlaintext[T]) int {
	message := num.DivRoundBits(pt.Value, e.Parameters.scaleLog) % (2 * e.Parameters.messageModulus)
	return int(message % e.Parameters.messageModulus)
}

// EncryptLWE encodes and encrypts an integer message to an LWE ciphertext
// of the default dimension.
func (e *Encryptor[T]) EncryptLWE(message int) LWECiphertext[T] {
	return e.EncryptLWEPlaintext(e.EncodeLWE(message))
}

// EncryptLWEPlaintext encrypts an LWE plaintext to an LWE ciphertext
// of the default dimension.
func (e *Encryptor[T]) EncryptLWEPlaintext(pt LWEPlaintext[T]) LWECiphertext[T] {
	ctOut := NewLWECiphertext(e.Parameters)
	e.EncryptLWEPlaintextAssign(pt, ctOut)
	return ctOut
}

// EncryptLWEPlaintextAssign encrypts an LWE plaintext and writes it to ctOut.
// The key is selected to match the dimension of ctOut.
func (e *Encryptor[T]) EncryptLWEPlaintextAssign(pt LWEPlaintext[T], ctOut LWECiphertext[T]) {
	ctOut.Value[0] = pt.Value
	e.EncryptLWEBody(ctOut)
}

// EncryptLWEBody samples a fresh mask and noise for ct,
// whose body holds the plaintext.
// The key is selected to match the dimension of ct.
func (e *Encryptor[T]) EncryptLWEBody(ct LWECiphertext[T]) {
	lweDimension := len(ct.Value) - 1
	sk := e.lweKeyFor(lweDimension)
	stdDev := e.Parameters.lweStdDev
	if lweDimension == e.Parameters.glweDimension {
		stdDev = e.Parameters.glweStdDev
	}
	e.UniformSampler.SampleSliceAssign(ct.Value[1:])
	ct.Value[0] += vec.Dot(ct.Value[1:], sk.Value) + e.GaussianSampler.Sample(stdDev)
}

// DecryptLWE decrypts and decodes an LWE ciphertext to an integer message.
func (e *Encryptor[T]) DecryptLWE(ct LWECiphertext[T]) int {
	return e.DecodeLWE(e.DecryptLWEPlaintext(ct))
}

// DecryptLWEPlaintext decrypts an LWE ciphertext to an LWE plaintext.
// The returned plaintext still carries the encryption noise.
// The key is selected to match the dimension of ct.
func (e *Encryptor[T]) DecryptLWEPlaintext(ct LWECiphertext[T]) LWEPlaintext[T] {
	sk := e.lweKeyFor(len(ct.Value) - 1)
	return LWEPlaintext[T]{Value: ct.Value[0] - vec.Dot(ct.Value[1:], sk.Value)}
}

// lweKeyFor returns the secret key matching an LWE dimension.
func (e *Encryptor[T]) lweKeyFor(lweDimension int) LWESecretKey[T] {
	switch lweDimension {
	case e.Parameters.lweDimension:
		return e.SecretKey.LWEKey
	case e.Parameters.glweDimension:
		return e.SecretKey.LWELargeKey
	}
	panic("no key matching LWE dimension")
}

// EncodeGLWE encodes integer messages to a GLWE plaintext.
// Each message is coefficient-packed, taken modulo MessageModulus.
func (e *Encryptor[T]) EncodeGLWE(messages []int) GLWEPlaintext[T] {
	ptOut := NewGLWEPlaintext(e.Parameters)
	for i := 0; i < num.Min(len(messages), e.Parameters.polyDegree); i++ {
		ptOut.Value.Coeffs[i] = (T(messages[i]) % e.Parameters.messageModulus) * e.Parameters.scale
	}
	return ptOut
}

// DecodeGLWE decodes a GLWE plaintext to integer messages.
func (e *Encryptor[T]) DecodeGLWE(pt GLWEPlaintext[T]) []int {
	messages := make([]int, e.Parameters.polyDegree)
	for i := range messages {
		messages[i] = e.DecodeLWE(LWEPlaintext[T]{Value: pt.Value.Coeffs[i]})
	}
	return messages
}

// EncryptGLWE encodes and encrypts integer messages to a GLWE ciphertext.
func (e *Encryptor[T]) EncryptGLWE(messages []int) GLWECiphertext[T] {
	return e.EncryptGLWEPlaintext(e.EncodeGLWE(messages))
}

// EncryptGLWEPlaintext encrypts a GLWE plaintext to a GLWE ciphertext.
func (e *Encryptor[T]) EncryptGLWEPlaintext(pt GLWEPlaintext[T]) GLWECiphertext[T] {
	ctOut := NewGLWECiphertext(e.Parameters)
	e.EncryptGLWEPlaintextAssign(pt, ctOut)
	return ctOut
}

// EncryptGLWEPlaintextAssign encrypts a GLWE plaintext and writes it to ctOut.
func (e *Encryptor[T]) EncryptGLWEPlaintextAssign(pt GLWEPlaintext[T], ctOut GLWECiphertext[T]) {
	ctOut.Value[0].CopyFrom(pt.Value)
	e.EncryptGLWEBody(ctOut)
}

// EncryptGLWEBody samples a fresh mask and noise for ct,
// whose body holds the plaintext.
func (e *Encryptor[T]) EncryptGLWEBody(ct GLWECiphertext[T]) {
	for i := 0; i < e.Parameters.glweRank; i++ {
		e.UniformSampler.SampleSliceAssign(ct.Value[i+1].Coeffs)
	}
	e.GaussianSampler.SampleSliceAddAssign(e.Parameters.glweStdDev, ct.Value[0].Coeffs)
	for i := 0; i < e.Parameters.glweRank; i++ {
		e.PolyEvaluator.MulAddPolyAssign(ct.Value[i+1], e.SecretKey.GLWEKey.Value[i], ct.Value[0])
	}
}

// DecryptGLWE decrypts and decodes a GLWE ciphertext to integer messages.
func (e *Encryptor[T]) DecryptGLWE(ct GLWECiphertext[T]) []int {
	return e.DecodeGLWE(e.DecryptGLWEPlaintext(ct))
}

// DecryptGLWEPlaintext decrypts a GLWE ciphertext to a GLWE plaintext.
// The returned plaintext still carries the encryption noise.
func (e *Encryptor[T]) DecryptGLWEPlaintext(ct GLWECiphertext[T]) GLWEPlaintext[T] {
	ptOut := NewGLWEPlaintext(e.Parameters)
	e.DecryptGLWEPlaintextAssign(ct, ptOut)
	return ptOut
}

// DecryptGLWEPlaintextAssign decrypts a GLWE ciphertext and writes the
// phase to ptOut.
func (e *Encryptor[T]) DecryptGLWEPlaintextAssign(ct GLWECiphertext[T], ptOut GLWEPlaintext[T]) {
	ptOut.Value.CopyFrom(ct.Value[0])
	for i := 0; i < e.Parameters.glweRank; i++ {
		e.PolyEvaluator.MulSubPolyAssign(ct.Value[i+1], e.SecretKey.GLWEKey.Value[i], ptOut.Value)
	}
}

// EncryptFourierGGSWPolyAssign encrypts a plaintext polynomial to a GGSW
// ciphertext in the transform domain, and writes it to ctOut.
// The plaintext is encrypted as-is, without scaling.
//
// Row (c, j) is an encryption of zero with p * 2^ScaledBaseLog(j) added
// to component c, so that gadget-decomposed products reconstruct p times
// the input ciphertext.
func (e *Encryptor[T]) EncryptFourierGGSWPolyAssign(p poly.Poly[T], ctOut FourierGGSWCiphertext[T]) {
	gadgetParams := ctOut.GadgetParameters
	for c := 0; c < e.Parameters.glweRank+1; c++ {
		for j := 0; j < gadgetParams.level; j++ {
			e.buffer.ctGLWE.Value[0].Clear()
			e.EncryptGLWEBody(e.buffer.ctGLWE)
			e.PolyEvaluator.ScalarMulAddPolyAssign(p, T(1)<<gadgetParams.scaledBasesLog[j], e.buffer.ctGLWE.Value[c])
			for cOut := 0; cOut < e.Parameters.glweRank+1; cOut++ {
				e.PolyEvaluator.ToFourierPolyAssign(e.buffer.ctGLWE.Value[cOut], ctOut.Value[c].Value[j].Value[cOut])
			}
		}
	}
}

// GenEvaluationKey generates a new evaluation key for bootstrapping.
//
// This can take a long time; use [*Encryptor.GenEvaluationKeyParallel]
// when multiple cores are available.
func (e *Encryptor[T]) GenEvaluationKey() EvaluationKey[T] {
	return EvaluationKey[T]{
		BlindRotateKey: e.GenBlindRotateKey(),
		KeySwitchKey:   e.GenKeySwitchKey(),
	}
}

// GenBlindRotateKey generates a new blind rotation key:
// GGSW encryptions of the small LWE key bits under the GLWE key.
func (e *Encryptor[T]) GenBlindRotateKey() BlindRotateKey[T] {
	brk := NewBlindRotateKey(e.Parameters)
	for i := 0; i < e.Parameters.lweDimension; i++ {
		e.genBlindRotateKeyIndex(i, brk)
	}
	return brk
}

func (e *Encryptor[T]) genBlindRotateKeyIndex(i int, brk BlindRotateKey[T]) {
	e.buffer.ptGLWE.Value.Clear()
	e.buffer.ptGLWE.Value.Coeffs[0] = e.SecretKey.LWEKey.Value[i]
	e.EncryptFourierGGSWPolyAssign(e.buffer.ptGLWE.Value, brk.Value[i])
}

// GenKeySwitchKey generates a new key switching key:
// for every digit position and every digit value d, an LWE encryption
// of d times the corresponding large key coefficient under the small key.
// The d = 0 entries are left zero and never used.
func (e *Encryptor[T]) GenKeySwitchKey() KeySwitchKey[T] {
	ksk := NewKeySwitchKey(e.Parameters)
	for i := 0; i < e.Parameters.glweDimension; i++ {
		e.genKeySwitchKeyIndex(i, ksk)
	}
	return ksk
}

func (e *Encryptor[T]) genKeySwitchKeyIndex(i int, ksk KeySwitchKey[T]) {
	gadgetParams := ksk.GadgetParameters
	for j := 0; j < gadgetParams.level; j++ {
		for d := T(1); d < gadgetParams.base; d++ {
			ct := ksk.Value[i][j][d]
			ct.Value[0] = d * e.SecretKey.LWELargeKey.Value[i] << gadgetParams.scaledBasesLog[j]
			e.EncryptLWEBody(ct)
		}
	}
}

// GenEvaluationKeyParallel generates a new evaluation key for
// bootstrapping in parallel.
func (e *Encryptor[T]) GenEvaluationKeyParallel() EvaluationKey[T] {
	return EvaluationKey[T]{
		BlindRotateKey: e.GenBlindRotateKeyParallel(),
		KeySwitchKey:   e.GenKeySwitchKeyParallel(),
	}
}

// GenBlindRotateKeyParallel generates a new blind rotation key in parallel.
func (e *Encryptor[T]) GenBlindRotateKeyParallel() BlindRotateKey[T] {
	brk := NewBlindRotateKey(e.Parameters)
	parallelOver(e, e.Parameters.lweDimension, func(eWorker *Encryptor[T], i int) {
		eWorker.genBlindRotateKeyIndex(i, brk)
	})
	return brk
}

// GenKeySwitchKeyParallel generates a new key switching key in parallel.
func (e *Encryptor[T]) GenKeySwitchKeyParallel() KeySwitchKey[T] {
	ksk := NewKeySwitchKey(e.Parameters)
	parallelOver(e, e.Parameters.glweDimension, func(eWorker *Encryptor[T], i int) {
		eWorker.genKeySwitchKeyIndex(i, ksk)
	})
	return ksk
}

// parallelOver runs f over indices [0, n) with one shallow-copied
// Encryptor per worker. Calls for different indices must write to
// disjoint locations.
func parallelOver[T TorusInt](e *Encryptor[T], n int, f func(*Encryptor[T], int)) {
	workerCount := num.Min(runtime.NumCPU(), n)
	if workerCount <= 1 {
		for i := 0; i < n; i++ {
			f(e, i)
		}
		return
	}

	jobs := make(chan int)
	go func() {
		defer close(jobs)
		for i := 0; i < n; i++ {
			jobs <- i
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			eWorker := e.ShallowCopy()
			for i := range jobs {
				f(eWorker, i)
			}
		}()
	}
	wg.Wait()
}
