// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// Staged combinators: defunctionalized counterparts of the recursive
// traversals. Construction produces an inert [Expr] frame chain; [Eval]
// reduces it iteratively, so these run in constant stack space on inputs
// that would overflow the recursive forms.

// FoldrExpr is the staged right fold: Eval(FoldrExpr(step, seed, xs)) equals
// Foldr(step, seed, xs) for every input.
//
// The list is walked once at construction time, emitting one map frame per
// element. The chain is ordered so the last element's step applies to the
// seed first, preserving right-fold semantics.
func FoldrExpr[A, B any](step func(A, B) B, seed B, xs *List[A]) Expr[B] {
	var chain Frame = ReturnFrame{}
	for l := xs; l != nil; l = l.tail {
		x := l.head
		chain = ChainFrames(&MapFrame[Erased, Erased]{
			F:    func(b Erased) Erased { return step(x, b.(B)) },
			Next: ReturnFrame{},
		}, chain)
	}
	return Expr[B]{Value: seed, Frame: chain}
}

// UnfoldrExpr is the staged unfold: Eval(UnfoldrExpr(gen, state)) equals
// Unfoldr(gen, state) whenever the generator terminates.
//
// Expansion is lazy: each generator call happens during evaluation, as a
// bind frame that threads the state and queues a map frame to prepend the
// emitted element once the remainder of the list is built. The generator's
// termination contract is the same as for [Unfoldr].
func UnfoldrExpr[A, S any](gen func(S) Option[Pair[A, S]], state S) Expr[*List[A]] {
	var step func(Erased) Expr[Erased]
	step = func(sv Erased) Expr[Erased] {
		next, ok := gen(sv.(S)).Get()
		if !ok {
			return Expr[Erased]{Value: Erased(Nil[A]()), Frame: ReturnFrame{}}
		}
		x := next.Fst
		return Expr[Erased]{
			Value: Erased(next.Snd),
			Frame: ChainFrames(
				&BindFrame[Erased, Erased]{F: step, Next: ReturnFrame{}},
				&MapFrame[Erased, Erased]{
					F:    func(rest Erased) Erased { return Cons(x, rest.(*List[A])) },
					Next: ReturnFrame{},
				},
			),
		}
	}
	return ExprSuspend[*List[A]](&BindFrame[Erased, Erased]{
		F:    func(Erased) Expr[Erased] { return step(Erased(state)) },
		Next: ReturnFrame{},
	})
}
