package poly

import (
	"github.com/SUSYLABS/nufhe/math/vec"
)

// AddFourierAssign computes fpOut = fp0 + fp1.
func (e *Evaluator[T]) AddFourierAssign(fp0, fp1, fpOut FourierPoly) {
	vec.AddAssign(fp0.Coeffs, fp1.Coeffs, fpOut.Coeffs)
}

// SubFourierAssign computes fpOut = fp0 - fp1.
func (e *Evaluator[T]) SubFourierAssign(fp0, fp1, fpOut FourierPoly) {
	vec.SubAssign(fp0.Coeffs, fp1.Coeffs, fpOut.Coeffs)
}

// NegFourierAssign computes fpOut = -fp0.
func (e *Evaluator[T]) NegFourierAssign(fp0, fpOut FourierPoly) {
	vec.NegAssign(fp0.Coeffs, fpOut.Coeffs)
}

// MulFourierAssign computes fpOut = fp0 * fp1.
//
// Transform-domain multiplication is pointwise, so it is the ring
// product of the corresponding polynomials.
func (e *Evaluator[T]) MulFourierAssign(fp0, fp1, fpOut FourierPoly) {
	for i := range fpOut.Coeffs {
		fpOut.Coeffs[i] = fp0.Coeffs[i] * fp1.Coeffs[i]
	}
}

// MulAddFourierAssign computes fpOut += fp0 * fp1.
func (e *Evaluator[T]) MulAddFourierAssign(fp0, fp1, fpOut FourierPoly) {
	for i := range fpOut.Coeffs {
		fpOut.Coeffs[i] += fp0.Coeffs[i] * fp1.Coeffs[i]
	}
}

// MulSubFourierAssign computes fpOut -= fp0 * fp1.
func (e *Evaluator[T]) MulSubFourierAssign(fp0, fp1, fpOut FourierPoly) {
	for i := range fpOut.Coeffs {
		fpOut.Coeffs[i] -= fp0.Coeffs[i] * fp1.Coeffs[i]
	}
}
