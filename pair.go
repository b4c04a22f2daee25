// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// Pair holds two values.
// Zipped lists are List[Pair[A, B]], and List[Pair[K, V]] serves as an
// association list for [Lookup] (no key uniqueness; first match wins).
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// MkPair creates a Pair from its two components.
func MkPair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}

// Swap returns the pair with its components exchanged.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{Fst: p.Snd, Snd: p.Fst}
}
