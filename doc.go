// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package seq provides pure, total combinators over immutable sequences
// in Go.
//
// The core type [List] is an immutable singly linked sequence. Every
// operation is a pure function: inputs are never mutated, results share
// structure with their inputs, and no exported operation panics or errors
// for any well-typed input. Partiality is expressed through [Option]
// absence or an identity no-op, never a fault.
//
// # Design Philosophy
//
// seq provides:
//   - A minimal but complete sequence vocabulary: fold, unfold, filter,
//     find, zip, and their derived forms
//   - First-class operation parameters (step functions, predicates,
//     generators, combiners) passed explicitly to combinators
//   - A defunctionalized [Expr] representation with an iterative evaluator
//     for stack-safe reduction of deep sequences
//
// # Data Types
//
//   - [List]: immutable cons sequence; the nil pointer is the empty list
//   - [Option]: present-or-absent result of partial operations
//   - [Pair]: two-element tuple, for zipped sequences and association lists
//
// Construction and conversion:
//
//   - [Nil], [Cons], [New]: build lists structurally or from elements
//   - [FromSlice], [ToSlice]: convert to and from Go slices
//   - [EqList]: elementwise equality under a caller-supplied comparator
//
// # Core Traversal
//
//   - [Foldr]: right fold — step(x1, step(x2, ... step(xn, seed)))
//   - [UnList]: Foldr with seed and step swapped for call-site ergonomics
//   - [Unfoldr]: grow a list from a seed state until the generator
//     returns None
//   - [Map], [Append], [Concat], [ConcatMap]: derived traversals
//
// # Selectors & Predicates
//
//   - [Head], [Last], [Init], [Tail]: positional selectors, None on empty
//   - [Null], [Length]: emptiness and element count
//   - [Filter], [Find], [FindIndex]: predicate-driven selection
//   - [Elem], [Lookup]: membership and association-list search under an
//     explicit equality function ([Eq] covers comparable types)
//
// # Structural Transforms
//
//   - [SetIndex]: replace one element; out-of-range indices are a no-op
//   - [Replicate]: n copies of a value, driven by [Unfoldr]
//   - [ZipWith], [Zip]: pairwise combination, truncating to the shorter input
//   - [Unzip]: split a list of pairs into a pair of lists in one fold
//
// # Equality
//
// Operations that compare elements ([Elem], [Lookup], [EqList]) take the
// equality function as an explicit parameter rather than fixing one notion
// of equality per element type. [Eq] is the == comparator for comparable
// types.
//
// # Totality
//
// Looking up a missing key, taking the head of an empty list, or setting an
// index past the end are all well-defined: they produce None or return the
// input unchanged. The one sanctioned non-termination is a generator passed
// to [Unfoldr] or [UnfoldrExpr] that never returns None; termination is the
// generator's contract and is not guarded by a step limit.
//
// # Defunctionalized Evaluation
//
// Defunctionalization (Reynolds 1972) enables iterative evaluation loops in
// place of structural recursion. Instead of closures on the call stack,
// pending work is represented as tagged frame structures which [Eval]
// reduces in a loop.
//
// Type-erased values:
//
//   - [Erased]: Type alias for any, marking type-erased intermediate values
//     in the frame chain. Concrete types are recovered via type assertions
//     at frame boundaries. Frame type parameters use [Erased] (e.g.
//     BindFrame[Erased, Erased]) to document the type-erasure boundary.
//
// [Frame] is the marker interface for all frame types:
//
//   - [ReturnFrame]: Computation complete
//   - [BindFrame]: Value-dependent sequencing
//   - [MapFrame]: Pure transformation
//   - [ThenFrame]: Sequencing with discard
//
// Constructors and combinators:
//
//   - [ExprReturn]: Create completed computation
//   - [ExprBind]: Sequence computations
//   - [ExprMap]: Transform result
//   - [ExprThen]: Sequence with discard
//   - [ExprSuspend]: Create suspended computation
//   - [ChainFrames]: Compose frame chains
//   - [Eval]: Iteratively reduce a computation to its value
//
// Staged traversals built on this layer:
//
//   - [FoldrExpr]: stack-safe right fold; Eval(FoldrExpr(f, z, xs)) equals
//     Foldr(f, z, xs) for every input
//   - [UnfoldrExpr]: lazy unfold through bind frames; one generator call
//     per evaluation step
//
// # Example
//
//	evens := seq.Filter(func(x int) bool { return x%2 == 0 },
//		seq.New(1, 2, 3, 4, 5, 6))
//	// evens: [2 4 6]
//
//	sum := seq.Foldr(func(x, acc int) int { return x + acc }, 0, evens)
//	// sum == 12
//
//	table := seq.New(seq.MkPair("k1", 1), seq.MkPair("k2", 2))
//	v, ok := seq.Lookup(seq.Eq[string], "k2", table).Get()
//	// v == 2, ok == true
package seq
