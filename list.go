// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// List is an immutable, finite, singly linked sequence of elements of type A.
// The nil pointer is the empty list.
//
// Every operation in this package that "modifies" a list returns a new list;
// an existing list is never mutated. Results therefore share structure with
// their inputs (Cons shares the whole tail, Append shares the right operand),
// and lists are safe to use from multiple goroutines without synchronization.
type List[A any] struct {
	head A
	tail *List[A]
}

// Nil returns the empty list.
// The empty list is the nil pointer; Nil exists for call sites where
// a typed empty list reads better than a bare nil.
func Nil[A any]() *List[A] { return nil }

// Cons prepends head to tail, returning the extended list.
// The tail is shared, not copied.
func Cons[A any](head A, tail *List[A]) *List[A] {
	return &List[A]{head: head, tail: tail}
}

// New builds a list containing the given elements in order.
func New[A any](xs ...A) *List[A] {
	return FromSlice(xs)
}

// FromSlice builds a list containing the elements of xs in order.
// The slice is read once during construction and not retained.
func FromSlice[A any](xs []A) *List[A] {
	var l *List[A]
	for i := len(xs) - 1; i >= 0; i-- {
		l = &List[A]{head: xs[i], tail: l}
	}
	return l
}

// ToSlice returns the elements of xs in order as a fresh slice.
// The empty list yields nil.
func ToSlice[A any](xs *List[A]) []A {
	var out []A
	for l := xs; l != nil; l = l.tail {
		out = append(out, l.head)
	}
	return out
}

// EqList reports whether xs and ys have the same length and pairwise
// eq-equal elements.
func EqList[A any](eq func(A, A) bool, xs, ys *List[A]) bool {
	for xs != nil && ys != nil {
		if !eq(xs.head, ys.head) {
			return false
		}
		xs, ys = xs.tail, ys.tail
	}
	return xs == nil && ys == nil
}

// Eq is structural equality for comparable element types, in the shape
// the comparator-taking operations ([Elem], [Lookup], [EqList]) expect.
func Eq[A comparable](x, y A) bool { return x == y }
