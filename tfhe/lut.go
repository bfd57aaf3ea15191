package tfhe

import (
	"github.com/SUSYLABS/nufhe/math/num"
	"github.com/SUSYLABS/nufhe/math/vec"
)

// GenLookUpTable generates a lookup table based on function f.
// Input and output of f is cut by MessageModulus.
func (e *Evaluator[T]) GenLookUpTable(f func(int) int) LookUpTable[T] {
	lutOut := NewLookUpTable(e.Parameters)
	e.GenLookUpTableAssign(f, lutOut)
	return lutOut
}

// GenLookUpTableAssign generates a lookup table based on function f and writes it to lutOut.
// Input and output of f is cut by MessageModulus.
func (e *Evaluator[T]) GenLookUpTableAssign(f func(int) int, lutOut LookUpTable[T]) {
	e.GenLookUpTableFullAssign(func(x int) T { return e.EncodeLWE(f(x)).Value }, lutOut)
}

// GenLookUpTableFull generates a lookup table based on function f.
// Output of f is encoded as-is.
func (e *Evaluator[T]) GenLookUpTableFull(f func(int) T) LookUpTable[T] {
	lutOut := NewLookUpTable(e.Parameters)
	e.GenLookUpTableFullAssign(f, lutOut)
	return lutOut
}

// GenLookUpTableFullAssign generates a lookup table based on function f and writes it to lutOut.
// Output of f is encoded as-is.
//
// The table is rotated by half an interval so that each message sits at
// the center of its coefficient block, and the wrapped tail is negated
// to account for negacyclicity.
func (e *Evaluator[T]) GenLookUpTableFullAssign(f func(int) T, lutOut LookUpTable[T]) {
	messageModulus := int(e.Parameters.messageModulus)
	for x := 0; x < messageModulus; x++ {
		start := num.DivRound(x*e.Parameters.polyDegree, messageModulus)
		end := num.DivRound((x+1)*e.Parameters.polyDegree, messageModulus)
		y := f(x)
		for i := start; i < end; i++ {
			e.buffer.lutRaw[i] = y
		}
	}

	offset := num.DivRound(e.Parameters.polyDegree, 2*messageModulus)
	vec.RotateInPlace(e.buffer.lutRaw, -offset)
	for i := e.Parameters.polyDegree - offset; i < e.Parameters.polyDegree; i++ {
		e.buffer.lutRaw[i] = -e.buffer.lutRaw[i]
	}

	vec.CopyAssign(e.buffer.lutRaw, lutOut.Value.Coeffs)
}
