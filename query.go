// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// Selectors and predicates.
// All partiality is expressed through [Option] absence: no operation in this
// file panics or errors for any input.

// Head returns the first element, or None on the empty list.
func Head[A any](xs *List[A]) Option[A] {
	if xs == nil {
		return None[A]()
	}
	return Some(xs.head)
}

// Last returns the final element, or None on the empty list.
func Last[A any](xs *List[A]) Option[A] {
	if xs == nil {
		return None[A]()
	}
	for xs.tail != nil {
		xs = xs.tail
	}
	return Some(xs.head)
}

// Tail returns everything after the first element.
// None only on the empty list; Tail of a singleton is Some empty list.
func Tail[A any](xs *List[A]) Option[*List[A]] {
	if xs == nil {
		return None[*List[A]]()
	}
	return Some(xs.tail)
}

// Init returns everything before the final element.
// None only on the empty list; Init of a singleton is Some empty list.
func Init[A any](xs *List[A]) Option[*List[A]] {
	if xs == nil {
		return None[*List[A]]()
	}
	return Some(initNonEmpty(xs))
}

func initNonEmpty[A any](xs *List[A]) *List[A] {
	if xs.tail == nil {
		return nil
	}
	return Cons(xs.head, initNonEmpty(xs.tail))
}

// Null returns true iff the list is empty.
func Null[A any](xs *List[A]) bool {
	return xs == nil
}

// Length returns the number of elements.
func Length[A any](xs *List[A]) int {
	n := 0
	for l := xs; l != nil; l = l.tail {
		n++
	}
	return n
}

// Filter keeps the elements satisfying pred, preserving order.
func Filter[A any](pred func(A) bool, xs *List[A]) *List[A] {
	if xs == nil {
		return nil
	}
	if pred(xs.head) {
		return Cons(xs.head, Filter(pred, xs.tail))
	}
	return Filter(pred, xs.tail)
}

// Find returns the first element satisfying pred, or None.
func Find[A any](pred func(A) bool, xs *List[A]) Option[A] {
	for l := xs; l != nil; l = l.tail {
		if pred(l.head) {
			return Some(l.head)
		}
	}
	return None[A]()
}

// FindIndex returns the zero-based index of the first element satisfying
// pred, or None.
func FindIndex[A any](pred func(A) bool, xs *List[A]) Option[int] {
	idx := 0
	for l := xs; l != nil; l = l.tail {
		if pred(l.head) {
			return Some(idx)
		}
		idx++
	}
	return None[int]()
}

// Elem reports whether some element of xs is eq-equal to x.
// The comparator is explicit: element types carry no single canonical
// equality, so the caller chooses one ([Eq] for comparable types).
func Elem[A any](eq func(A, A) bool, x A, xs *List[A]) bool {
	return FindIndex(func(y A) bool { return eq(x, y) }, xs).IsSome()
}

// Lookup returns the value of the first pair whose key is eq-equal to key.
// Keys are not required to be unique; pairs after the first match are
// never inspected.
func Lookup[K, V any](eq func(K, K) bool, key K, xs *List[Pair[K, V]]) Option[V] {
	for l := xs; l != nil; l = l.tail {
		if eq(key, l.head.Fst) {
			return Some(l.head.Snd)
		}
	}
	return None[V]()
}
