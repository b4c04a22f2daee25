// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// Core traversal primitives.
// Foldr/Unfoldr are the two halves of the package: every other traversal
// either is a fold, or is definable as one.

// Foldr is the right fold: Foldr(step, seed, [x1, x2, ..., xn]) computes
// step(x1, step(x2, ... step(xn, seed))).
//
// The recursive call is evaluated eagerly before step applies, so step
// cannot short-circuit the traversal. Stack depth is proportional to the
// list length; use [FoldrExpr] with [Eval] for lists too deep to recurse.
func Foldr[A, B any](step func(A, B) B, seed B, xs *List[A]) B {
	if xs == nil {
		return seed
	}
	return step(xs.head, Foldr(step, seed, xs.tail))
}

// UnList is [Foldr] with the seed and step parameters swapped.
// Provided for call sites that read better seed-first; same algorithm.
func UnList[A, B any](seed B, step func(A, B) B, xs *List[A]) B {
	return Foldr(step, seed, xs)
}

// Unfoldr is the dual of [Foldr]: it grows a list from a seed state.
// Each generator call either emits Some(Pair{element, nextState}), which
// prepends the element and continues from nextState, or None, which
// terminates the list.
//
// Termination is entirely the generator's contract: a generator that never
// returns None makes Unfoldr run forever. No step limit is imposed.
func Unfoldr[A, S any](gen func(S) Option[Pair[A, S]], state S) *List[A] {
	next, ok := gen(state).Get()
	if !ok {
		return nil
	}
	return Cons(next.Fst, Unfoldr(gen, next.Snd))
}

// Append concatenates two lists.
// Cost is proportional to the length of xs; ys is shared, not copied.
func Append[A any](xs, ys *List[A]) *List[A] {
	if xs == nil {
		return ys
	}
	return Cons(xs.head, Append(xs.tail, ys))
}

// Map applies f to every element, preserving order.
func Map[A, B any](f func(A) B, xs *List[A]) *List[B] {
	if xs == nil {
		return nil
	}
	return Cons(f(xs.head), Map(f, xs.tail))
}

// Concat flattens one level of nesting: the fold of [Append] over xss.
func Concat[A any](xss *List[*List[A]]) *List[A] {
	return Foldr(Append[A], Nil[A](), xss)
}

// ConcatMap maps f over xs and flattens the results.
func ConcatMap[A, B any](f func(A) *List[B], xs *List[A]) *List[B] {
	return Concat(Map(f, xs))
}
