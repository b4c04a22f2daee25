// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// Eval reduces a defunctionalized computation to its normal-form value.
// It iteratively processes the frame chain until reaching ReturnFrame,
// avoiding stack growth from recursive calls.
//
// Panics on a Frame implementation from outside this package.
func Eval[A any](c Expr[A]) A {
	return evalFrames(Erased(c.Value), c.Frame).(A)
}

// evalFrames is the iterative evaluation loop shared by all entry points.
// The current value threads through the chain; each frame either rewrites
// the value (MapFrame), substitutes a new computation (BindFrame/ThenFrame),
// or terminates (ReturnFrame). Chained frames are re-associated on the fly
// so the head of the chain is always a primitive frame.
func evalFrames(current Erased, frame Frame) Erased {
	for {
		switch f := frame.(type) {
		case ReturnFrame:
			return current
		case *chainedFrame:
			if nested, ok := f.first.(*chainedFrame); ok {
				// Re-associate: (a ; b) ; c  =>  a ; (b ; c)
				frame = &chainedFrame{
					first: nested.first,
					rest:  ChainFrames(nested.rest, f.rest),
				}
				continue
			}
			switch g := f.first.(type) {
			case ReturnFrame:
				frame = f.rest
			case *BindFrame[Erased, Erased]:
				next := g.F(current)
				current = next.Value
				frame = ChainFrames(ChainFrames(next.Frame, g.Next), f.rest)
			case *MapFrame[Erased, Erased]:
				current = g.F(current)
				frame = ChainFrames(g.Next, f.rest)
			case *ThenFrame[Erased, Erased]:
				current = Erased(g.Second.Value)
				frame = ChainFrames(ChainFrames(g.Second.Frame, g.Next), f.rest)
			default:
				panic("seq: unknown frame type in chain")
			}
		case *BindFrame[Erased, Erased]:
			next := f.F(current)
			current = next.Value
			frame = ChainFrames(next.Frame, f.Next)
		case *MapFrame[Erased, Erased]:
			current = f.F(current)
			frame = f.Next
		case *ThenFrame[Erased, Erased]:
			current = Erased(f.Second.Value)
			frame = ChainFrames(f.Second.Frame, f.Next)
		default:
			panic("seq: unknown frame type")
		}
	}
}

// ChainFrames links two frame chains together.
// Returns the other operand when either side is ReturnFrame (the identity
// element for frame composition), avoiding unnecessary chainedFrame
// allocation. Construction is O(1) in all cases.
func ChainFrames(first, second Frame) Frame {
	if _, ok := first.(ReturnFrame); ok {
		return second
	}
	if _, ok := second.(ReturnFrame); ok {
		return first
	}
	return &chainedFrame{first: first, rest: second}
}

// chainedFrame represents a frame followed by more frames.
// This enables composing frame chains without mutation.
type chainedFrame struct {
	first Frame
	rest  Frame
}

func (*chainedFrame) frame() {}

// ExprBind creates a bind frame linking computation m to function f.
func ExprBind[A, B any](m Expr[A], f func(A) Expr[B]) Expr[B] {
	if _, ok := m.Frame.(ReturnFrame); ok {
		// m is already completed: apply f directly
		return f(m.Value)
	}

	bindFrame := &BindFrame[Erased, Erased]{
		F: func(a Erased) Expr[Erased] {
			result := f(a.(A))
			return Expr[Erased]{
				Value: Erased(result.Value),
				Frame: result.Frame,
			}
		},
		Next: ReturnFrame{},
	}

	var zero B
	return Expr[B]{
		Value: zero,
		Frame: ChainFrames(m.Frame, bindFrame),
	}
}

// ExprMap creates a map frame transforming computation m with function f.
func ExprMap[A, B any](m Expr[A], f func(A) B) Expr[B] {
	if _, ok := m.Frame.(ReturnFrame); ok {
		// m is already completed: apply f directly
		return ExprReturn(f(m.Value))
	}

	mapFrame := &MapFrame[Erased, Erased]{
		F: func(a Erased) Erased {
			return f(a.(A))
		},
		Next: ReturnFrame{},
	}

	var zero B
	return Expr[B]{
		Value: zero,
		Frame: ChainFrames(m.Frame, mapFrame),
	}
}

// ExprThen creates a then frame sequencing m before n (discarding m's result).
func ExprThen[A, B any](m Expr[A], n Expr[B]) Expr[B] {
	if _, ok := m.Frame.(ReturnFrame); ok {
		// m is already completed: just run n
		return n
	}

	thenFrame := &ThenFrame[Erased, Erased]{
		Second: Expr[Erased]{
			Value: Erased(n.Value),
			Frame: n.Frame,
		},
		Next: ReturnFrame{},
	}

	var zero B
	return Expr[B]{
		Value: zero,
		Frame: ChainFrames(m.Frame, thenFrame),
	}
}
