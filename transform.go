// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// Structural transforms.

// SetIndex replaces the element at the given zero-based index, returning
// the updated list. An index at or past the end of the list (or negative)
// returns the input list itself — a silent no-op, not an error. On a
// replacement, the prefix up to the index is rebuilt and the tail past it
// is shared.
func SetIndex[A any](index int, value A, xs *List[A]) *List[A] {
	if out, ok := setIndex(index, value, xs); ok {
		return out
	}
	return xs
}

// setIndex reports whether the index was in range; no cells are built for
// an out-of-range descent.
func setIndex[A any](index int, value A, xs *List[A]) (*List[A], bool) {
	if xs == nil || index < 0 {
		return nil, false
	}
	if index == 0 {
		return Cons(value, xs.tail), true
	}
	rest, ok := setIndex(index-1, value, xs.tail)
	if !ok {
		return nil, false
	}
	return Cons(xs.head, rest), true
}

// Replicate returns a list of n copies of value. n <= 0 yields the empty
// list. Defined as an [Unfoldr] over a counter that stops at n.
func Replicate[A any](n int, value A) *List[A] {
	return Unfoldr(func(i int) Option[Pair[A, int]] {
		if i >= n {
			return None[Pair[A, int]]()
		}
		return Some(MkPair(value, i+1))
	}, 0)
}

// ZipWith combines two lists pairwise with the given function, stopping at
// the end of the shorter list. No padding: excess elements of the longer
// list are dropped.
func ZipWith[A, B, C any](combine func(A, B) C, xs *List[A], ys *List[B]) *List[C] {
	if xs == nil || ys == nil {
		return nil
	}
	return Cons(combine(xs.head, ys.head), ZipWith(combine, xs.tail, ys.tail))
}

// Zip is [ZipWith] specialized to pair construction.
func Zip[A, B any](xs *List[A], ys *List[B]) *List[Pair[A, B]] {
	return ZipWith(MkPair[A, B], xs, ys)
}

// Unzip splits a list of pairs into a pair of lists, preserving order.
// Built in one right fold that prepends each component onto its
// accumulator; the zero Pair is two empty lists.
func Unzip[A, B any](ps *List[Pair[A, B]]) Pair[*List[A], *List[B]] {
	return Foldr(func(p Pair[A, B], acc Pair[*List[A], *List[B]]) Pair[*List[A], *List[B]] {
		return MkPair(Cons(p.Fst, acc.Fst), Cons(p.Snd, acc.Snd))
	}, Pair[*List[A], *List[B]]{}, ps)
}
