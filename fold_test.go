// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/seq"
)

func TestFoldrEmpty(t *testing.T) {
	got := seq.Foldr(func(x, acc int) int { return x + acc }, 7, seq.Nil[int]())
	require.Equal(t, 7, got)
}

func TestFoldrSum(t *testing.T) {
	got := seq.Foldr(func(x, acc int) int { return x + acc }, 0, seq.New(1, 2, 3, 4))
	require.Equal(t, 10, got)
}

func TestFoldrRightAssociation(t *testing.T) {
	// Non-commutative step exposes the fold direction:
	// "a" - ("b" - ("c" - "|")) reads left to right around the seed.
	got := seq.Foldr(func(x, acc string) string { return x + "(" + acc + ")" }, "|", seq.New("a", "b", "c"))
	require.Equal(t, "a(b(c(|)))", got)
}

func TestUnListMatchesFoldr(t *testing.T) {
	step := func(x, acc int) int { return x*2 + acc }
	xs := seq.New(1, 2, 3)
	require.Equal(t, seq.Foldr(step, 5, xs), seq.UnList(5, step, xs))
}

// counterUpTo emits the current counter value until it reaches limit.
func counterUpTo(limit int) func(int) seq.Option[seq.Pair[int, int]] {
	return func(i int) seq.Option[seq.Pair[int, int]] {
		if i >= limit {
			return seq.None[seq.Pair[int, int]]()
		}
		return seq.Some(seq.MkPair(i, i+1))
	}
}

func TestUnfoldrCounter(t *testing.T) {
	got := seq.Unfoldr(counterUpTo(3), 0)
	if diff := cmp.Diff([]int{0, 1, 2}, seq.ToSlice(got)); diff != "" {
		t.Fatalf("Unfoldr mismatch (-want +got):\n%s", diff)
	}
}

func TestUnfoldrImmediateStop(t *testing.T) {
	got := seq.Unfoldr(counterUpTo(0), 0)
	require.True(t, seq.Null(got))
}

func TestAppend(t *testing.T) {
	tests := []struct {
		name   string
		xs, ys []int
		want   []int
	}{
		{"both empty", nil, nil, nil},
		{"left empty", nil, []int{1, 2}, []int{1, 2}},
		{"right empty", []int{1, 2}, nil, []int{1, 2}},
		{"both nonempty", []int{1, 2}, []int{3, 4}, []int{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := seq.Append(seq.FromSlice(tt.xs), seq.FromSlice(tt.ys))
			if diff := cmp.Diff(tt.want, seq.ToSlice(got)); diff != "" {
				t.Fatalf("Append mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAppendSharesRightOperand(t *testing.T) {
	ys := seq.New(3, 4)
	got := seq.Append(seq.New(1), ys)
	tail, ok := seq.Tail(got).Get()
	require.True(t, ok)
	require.True(t, tail == ys, "right operand must be shared, not copied")
}

func TestMap(t *testing.T) {
	got := seq.Map(func(x int) string {
		return string(rune('a' + x))
	}, seq.New(0, 1, 2))
	if diff := cmp.Diff([]string{"a", "b", "c"}, seq.ToSlice(got)); diff != "" {
		t.Fatalf("Map mismatch (-want +got):\n%s", diff)
	}
}

func TestConcat(t *testing.T) {
	tests := []struct {
		name string
		in   [][]int
		want []int
	}{
		{"empty outer", nil, nil},
		{"single empty inner", [][]int{nil}, nil},
		{"single inner", [][]int{{1, 2}}, []int{1, 2}},
		{"several inner", [][]int{{1}, nil, {2, 3}, {4}}, []int{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := make([]*seq.List[int], len(tt.in))
			for i, s := range tt.in {
				inner[i] = seq.FromSlice(s)
			}
			got := seq.Concat(seq.FromSlice(inner))
			if diff := cmp.Diff(tt.want, seq.ToSlice(got)); diff != "" {
				t.Fatalf("Concat mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConcatMap(t *testing.T) {
	dup := func(x int) *seq.List[int] { return seq.New(x, x) }
	got := seq.ConcatMap(dup, seq.New(1, 2, 3))
	if diff := cmp.Diff([]int{1, 1, 2, 2, 3, 3}, seq.ToSlice(got)); diff != "" {
		t.Fatalf("ConcatMap mismatch (-want +got):\n%s", diff)
	}
}
