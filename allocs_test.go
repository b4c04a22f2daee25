// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq_test

import (
	"code.hybscloud.com/seq"
	"testing"
)

func TestEvalAllocationsPure(t *testing.T) {
	expr := seq.ExprReturn(42)
	allocs := testing.AllocsPerRun(100, func() {
		_ = seq.Eval(expr)
	})
	if allocs > 0 {
		t.Errorf("Eval(ExprReturn) allocs = %v; want 0", allocs)
	}
}

func TestSelectorAllocations(t *testing.T) {
	xs := seq.New(1, 2, 3, 4, 5)

	allocs := testing.AllocsPerRun(100, func() {
		_ = seq.Head(xs)
		_ = seq.Last(xs)
		_ = seq.Length(xs)
		_ = seq.Null(xs)
	})
	if allocs > 0 {
		t.Errorf("selector allocs = %v; want 0", allocs)
	}

	allocs = testing.AllocsPerRun(100, func() {
		_ = seq.Find(func(x int) bool { return x == 4 }, xs)
		_ = seq.FindIndex(func(x int) bool { return x == 4 }, xs)
	})
	if allocs > 0 {
		t.Errorf("search allocs = %v; want 0", allocs)
	}
}

func TestSetIndexOutOfRangeAllocations(t *testing.T) {
	xs := seq.New(1, 2, 3)
	allocs := testing.AllocsPerRun(100, func() {
		_ = seq.SetIndex(10, 9, xs)
	})
	if allocs > 0 {
		t.Errorf("out-of-range SetIndex allocs = %v; want 0", allocs)
	}
}
