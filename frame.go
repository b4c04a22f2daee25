// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// Erased represents a type-erased value in the defunctionalized frame chain.
// Frame types use Erased parameters to process heterogeneous value types
// through a homogeneous evaluation pipeline. Concrete types are recovered
// via type assertions at frame boundaries.
type Erased = any

// Frame is the interface for defunctionalized computation frames.
// Implementations carry the data needed to continue evaluation.
// Dispatch uses type switches, not tags — Frame is a pure marker interface.
type Frame interface {
	frame() // unexported marker method
}

// ReturnFrame signals computation completion.
// The evaluator returns the current value as the final result.
type ReturnFrame struct{}

func (ReturnFrame) frame() {}

// BindFrame represents sequencing: the previous value selects the next
// computation.
// Type parameters:
//   - A: input type (value from previous computation)
//   - B: output type (result of the selected computation)
type BindFrame[A, B any] struct {
	// F is applied to the current value to obtain the next computation.
	F func(A) Expr[B]

	// Next is the frame to continue with after F's computation completes.
	Next Frame
}

func (*BindFrame[A, B]) frame() {}

// MapFrame represents a pure transformation of the current value.
// Type parameters:
//   - A: input type (value to transform)
//   - B: output type (result of transformation)
type MapFrame[A, B any] struct {
	// F is the transformation function.
	F func(A) B

	// Next is the frame to continue with after transformation.
	Next Frame
}

func (*MapFrame[A, B]) frame() {}

// ThenFrame represents sequencing with discard: the previous value is
// dropped and a fixed second computation runs in its place.
// Type parameters:
//   - A: discarded type (result of first computation, unused)
//   - B: output type (result of second computation)
type ThenFrame[A, B any] struct {
	// Second is the computation to evaluate after discarding the value.
	Second Expr[B]

	// Next is the frame to continue with after Second completes.
	Next Frame
}

func (*ThenFrame[A, B]) frame() {}

// Expr is a defunctionalized computation producing a value of type A.
// Instead of closures, pending work is represented as an explicit chain of
// tagged frames, which [Eval] processes iteratively — frame chains of any
// depth evaluate in constant stack space.
type Expr[A any] struct {
	// Value holds the current value if this is a completed computation.
	// Valid when Frame is ReturnFrame.
	Value A

	// Frame holds the next frame to evaluate.
	Frame Frame
}

// ExprReturn creates a completed computation with the given value.
func ExprReturn[A any](a A) Expr[A] {
	return Expr[A]{
		Value: a,
		Frame: ReturnFrame{},
	}
}

// ExprSuspend creates a computation suspended at the given frame.
func ExprSuspend[A any](frame Frame) Expr[A] {
	var zero A
	return Expr[A]{
		Value: zero,
		Frame: frame,
	}
}
