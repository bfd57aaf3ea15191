package poly_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SUSYLABS/nufhe/math/csprng"
	"github.com/SUSYLABS/nufhe/math/poly"
)

const testDegree = 1 << 6

var (
	evaluator32 = poly.NewEvaluator[uint32](testDegree)
	evaluator64 = poly.NewEvaluator[uint64](testDegree)
)

// mulNaive is a schoolbook negacyclic multiplication used as a reference.
func mulNaive[T uint32 | uint64](p0, p1, pOut poly.Poly[T]) {
	N := p0.Degree()
	for i := 0; i < N; i++ {
		pOut.Coeffs[i] = 0
	}
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			if i+j < N {
				pOut.Coeffs[i+j] += p0.Coeffs[i] * p1.Coeffs[j]
			} else {
				pOut.Coeffs[i+j-N] -= p0.Coeffs[i] * p1.Coeffs[j]
			}
		}
	}
}

func TestTransform(t *testing.T) {
	us := csprng.NewUniformSampler[uint64]()

	t.Run("RoundTrip", func(t *testing.T) {
		p := poly.NewPoly[uint64](testDegree)
		for i := range p.Coeffs {
			p.Coeffs[i] = us.SampleN(1 << 40)
		}

		pOut := poly.NewPoly[uint64](testDegree)
		fp := evaluator64.ToFourierPoly(p)
		evaluator64.ToPolyAssignUnsafe(fp, pOut)

		assert.Equal(t, p.Coeffs, pOut.Coeffs)
	})

	t.Run("RoundTripAddAssign", func(t *testing.T) {
		p := poly.NewPoly[uint64](testDegree)
		base := poly.NewPoly[uint64](testDegree)
		for i := range p.Coeffs {
			p.Coeffs[i] = us.SampleN(1 << 40)
			base.Coeffs[i] = us.Sample()
		}

		pOut := base.Copy()
		fp := evaluator64.ToFourierPoly(p)
		evaluator64.ToPolyAddAssignUnsafe(fp, pOut)

		for i := range pOut.Coeffs {
			assert.Equal(t, base.Coeffs[i]+p.Coeffs[i], pOut.Coeffs[i])
		}
	})
}

func TestMulPoly(t *testing.T) {
	us := csprng.NewUniformSampler[uint64]()

	p0 := poly.NewPoly[uint64](testDegree)
	p1 := poly.NewPoly[uint64](testDegree)
	us.SampleSliceAssign(p0.Coeffs)
	us.SampleSliceAssign(p1.Coeffs)

	pNaive := poly.NewPoly[uint64](testDegree)
	mulNaive(p0, p1, pNaive)

	t.Run("FullWidth", func(t *testing.T) {
		pOut := evaluator64.MulPoly(p0, p1)
		assert.Equal(t, pNaive.Coeffs, pOut.Coeffs)
	})

	t.Run("Aliased", func(t *testing.T) {
		pOut := p0.Copy()
		evaluator64.MulPolyAssign(pOut, p1, pOut)
		assert.Equal(t, pNaive.Coeffs, pOut.Coeffs)
	})
}

func TestMulAddPoly(t *testing.T) {
	us := csprng.NewUniformSampler[uint32]()

	p0 := poly.NewPoly[uint32](testDegree)
	p1 := poly.NewPoly[uint32](testDegree)
	pAcc := poly.NewPoly[uint32](testDegree)
	us.SampleSliceAssign(p0.Coeffs)
	us.SampleSliceAssign(p1.Coeffs)
	us.SampleSliceAssign(pAcc.Coeffs)

	pOut := pAcc.Copy()
	evaluator32.MulAddPolyAssign(p0, p1, pOut)

	pNaive := poly.NewPoly[uint32](testDegree)
	mulNaive(p0, p1, pNaive)
	for i := 0; i < testDegree; i++ {
		assert.Equal(t, pAcc.Coeffs[i]+pNaive.Coeffs[i], pOut.Coeffs[i])
	}

	evaluator32.MulSubPolyAssign(p0, p1, pOut)
	assert.Equal(t, pAcc.Coeffs, pOut.Coeffs)
}

func TestMonomialMulPoly(t *testing.T) {
	us := csprng.NewUniformSampler[uint32]()

	p := poly.NewPoly[uint32](testDegree)
	for i := range p.Coeffs {
		p.Coeffs[i] = us.Sample()
	}

	pX := poly.NewPoly[uint32](testDegree)
	pX.Coeffs[1] = 1

	t.Run("MatchesMulPoly", func(t *testing.T) {
		pOut := poly.NewPoly[uint32](testDegree)
		pRef := p.Copy()
		pRefOut := poly.NewPoly[uint32](testDegree)
		for d := 0; d < 2*testDegree; d++ {
			evaluator32.MonomialMulPolyAssign(p, d, pOut)
			assert.Equal(t, pRef.Coeffs, pOut.Coeffs, d)

			evaluator32.MulPolyAssign(pRef, pX, pRefOut)
			pRef, pRefOut = pRefOut, pRef
		}
	})

	t.Run("NegacyclicWrap", func(t *testing.T) {
		pOut := poly.NewPoly[uint32](testDegree)
		evaluator32.MonomialMulPolyAssign(p, testDegree, pOut)
		for i := range pOut.Coeffs {
			assert.Equal(t, -p.Coeffs[i], pOut.Coeffs[i])
		}
	})

	t.Run("SubIdentity", func(t *testing.T) {
		pMul := poly.NewPoly[uint32](testDegree)
		pSub := poly.NewPoly[uint32](testDegree)
		for d := 0; d < 2*testDegree; d++ {
			evaluator32.MonomialMulPolyAssign(p, d, pMul)
			evaluator32.MonomialMulSubPolyAssign(p, d, pSub)
			for i := range pSub.Coeffs {
				assert.Equal(t, pMul.Coeffs[i]-p.Coeffs[i], pSub.Coeffs[i])
			}
		}
	})

	t.Run("ZeroExponent", func(t *testing.T) {
		pOut := poly.NewPoly[uint32](testDegree)
		evaluator32.MonomialMulPolyAssign(p, 0, pOut)
		assert.Equal(t, p.Coeffs, pOut.Coeffs)

		evaluator32.MonomialMulSubPolyAssign(p, 0, pOut)
		for i := range pOut.Coeffs {
			assert.Zero(t, pOut.Coeffs[i])
		}
	})
}

func BenchmarkTransform(b *testing.B) {
	e := poly.NewEvaluator[uint64](1 << 10)
	p := e.NewPoly()
	fp := e.NewFourierPoly()
	us := csprng.NewUniformSampler[uint64]()
	us.SampleSliceAssign(p.Coeffs)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.ToFourierPolyAssign(p, fp)
	}
}

func BenchmarkMulPoly(b *testing.B) {
	e := poly.NewEvaluator[uint64](1 << 10)
	p0 := e.NewPoly()
	p1 := e.NewPoly()
	pOut := e.NewPoly()
	us := csprng.NewUniformSampler[uint64]()
	us.SampleSliceAssign(p0.Coeffs)
	us.SampleSliceAssign(p1.Coeffs)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.MulPolyAssign(p0, p1, pOut)
	}
}
