package tfhe

// BootstrapFunc returns a bootstrapped LWE ciphertext with respect to given function.
func (e *Evaluator[T]) BootstrapFunc(ct LWECiphertext[T], f func(int) int) LWECiphertext[T] {
	e.GenLookUpTableAssign(f, e.buffer.lut)
	return e.BootstrapLUT(ct, e.buffer.lut)
}

// BootstrapFuncAssign bootstraps LWE ciphertext with respect to given function and writes it to ctOut.
func (e *Evaluator[T]) BootstrapFuncAssign(ct LWECiphertext[T], f func(int) int, ctOut LWECiphertext[T]) {
	e.GenLookUpTableAssign(f, e.buffer.lut)
	e.BootstrapLUTAssign(ct, e.buffer.lut, ctOut)
}

// Bootstrap returns a bootstrapped LWE ciphertext
// encrypting the same message with refreshed noise.
func (e *Evaluator[T]) Bootstrap(ct LWECiphertext[T]) LWECiphertext[T] {
	return e.BootstrapFunc(ct, func(x int) int { return x })
}

// BootstrapAssign bootstraps LWE ciphertext and writes it to ctOut.
func (e *Evaluator[T]) BootstrapAssign(ct, ctOut LWECiphertext[T]) {
	e.BootstrapFuncAssign(ct, func(x int) int { return x }, ctOut)
}

// BootstrapLUT returns a bootstrapped LWE ciphertext with respect to given LUT.
func (e *Evaluator[T]) BootstrapLUT(ct LWECiphertext[T], lut LookUpTable[T]) LWECiphertext[T] {
	ctOut := NewLWECiphertext(e.Parameters)
	e.BootstrapLUTAssign(ct, lut, ctOut)
	return ctOut
}

// BootstrapLUTAssign bootstraps LWE ciphertext with respect to given LUT and writes it to ctOut.
//
// The dimension of ct must match [Parameters.DefaultLWEDimension];
// ctOut always has the same dimension as ct.
func (e *Evaluator[T]) BootstrapLUTAssign(ct LWECiphertext[T], lut LookUpTable[T], ctOut LWECiphertext[T]) {
	switch e.Parameters.bootstrapOrder {
	case OrderKeySwitchBlindRotate:
		e.KeySwitchForBootstrapAssign(ct, e.buffer.ctKeySwitchForBootstrap)
		e.BlindRotateAssign(e.buffer.ctKeySwitchForBootstrap, lut, e.buffer.ctRotate)
		e.buffer.ctRotate.ToLWECiphertextAssign(0, ctOut)
	case OrderBlindRotateKeySwitch:
		e.BlindRotateAssign(ct, lut, e.buffer.ctRotate)
		e.buffer.ctRotate.ToLWECiphertextAssign(0, e.buffer.ctExtract)
		e.KeySwitchForBootstrapAssign(e.buffer.ctExtract, ctOut)
	}
}

// ModSwitch switches the modulus of x from 2^SizeT to 2 * PolyDegree.
// The result is in [0, 2N).
func (e *Evaluator[T]) ModSwitch(x T) int {
	return int(int64(float64(x)*e.Parameters.modSwitchConstant+0.5)) & (2*e.Parameters.polyDegree - 1)
}

// BlindRotate returns the blind rotation of lut by ct.
func (e *Evaluator[T]) BlindRotate(ct LWECiphertext[T], lut LookUpTable[T]) GLWECiphertext[T] {
	ctOut := NewGLWECiphertext(e.Parameters)
	e.BlindRotateAssign(ct, lut, ctOut)
	return ctOut
}

// BlindRotateAssign computes the blind rotation of lut by ct,
// and writes it to ctOut.
//
// ctOut is a GLWE encryption of X^(-phase(ct)) * lut,
// where the phase is mod-switched to Z_2N.
func (e *Evaluator[T]) BlindRotateAssign(ct LWECiphertext[T], lut LookUpTable[T], ctOut GLWECiphertext[T]) {
	// Stage the accumulator as a trivial encryption of X^(-b~) * lut.
	ctOut.Clear()
	e.PolyEvaluator.MonomialMulPolyAssign(lut.Value, 2*e.Parameters.polyDegree-e.ModSwitch(ct.Value[0]), ctOut.Value[0])

	// Step i rotates by +a~_i when the i-th key bit is set, so the
	// final exponent is -b~ + sum a~_i s_i = -phase.
	for i := 0; i < e.Parameters.lweDimension; i++ {
		e.buffer.rotations[i] = e.ModSwitch(ct.Value[i+1])
	}

	e.BlindRotateAmountsAssign(e.buffer.rotations, ctOut)
}

// BlindRotateAmountsAssign rotates ctAcc in place by the given amounts,
// one external product per amount:
//
//	ctAcc <- ctAcc + BlindRotateKey[i] * (X^amounts[i] - 1) * ctAcc
//
// Each amount must be in [0, 2N). The steps are strictly sequential;
// step i reads the accumulator produced by step i-1.
func (e *Evaluator[T]) BlindRotateAmountsAssign(amounts []int, ctAcc GLWECiphertext[T]) {
	for i := range amounts {
		e.blindRotateStepAssign(e.EvaluationKey.BlindRotateKey.Value[i], amounts[i], ctAcc)
	}
}

// blindRotateStepAssign computes ctAcc += ctGGSW * (X^d - 1) * ctAcc.
func (e *Evaluator[T]) blindRotateStepAssign(ctGGSW FourierGGSWCiphertext[T], d int, ctAcc GLWECiphertext[T]) {
	brLevel := e.Parameters.blindRotateParameters.level
	polyDecomposed := e.Decomposer.buffer.polyDecomposed[:brLevel]
	for c := 0; c < e.Parameters.glweRank+1; c++ {
		e.PolyEvaluator.MonomialMulSubPolyAssign(ctAcc.Value[c], d, e.buffer.polyDiff)
		e.Decomposer.DecomposePolyAssign(e.buffer.polyDiff, e.Parameters.blindRotateParameters, polyDecomposed)
		for j := 0; j < brLevel; j++ {
			e.PolyEvaluator.ToFourierPolyAssign(polyDecomposed[j], e.buffer.ctFourierDecomposed[c][j])
		}
	}

	e.externalProductFourierDecomposedAddAssign(ctGGSW, e.buffer.ctFourierDecomposed, ctAcc)
}
