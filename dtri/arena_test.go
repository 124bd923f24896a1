// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtri

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_arena2d01(tst *testing.T) {

	chk.PrintTitle("arena2d01")

	a := NewArena(2)
	a.PushRoot([3]float64{0, 0, 0}, [3]float64{1, 1, 0})
	chk.IntAssert(a.NodeCount(), 3)
	chk.IntAssert(a.TriaCount(), 1)

	idx, _, ok := a.PushNode([3]float64{0.5, 0.5, 0}, -1)
	if !ok {
		tst.Fatalf("expected insertion to succeed")
	}
	chk.IntAssert(idx, 3)
	tnew, told, nnew, _ := a.Cavity()
	chk.IntAssert(len(told), 1)
	chk.IntAssert(len(tnew), 3)
	chk.IntAssert(len(nnew), 1)

	// re-inserting the same point must be rejected as a duplicate
	_, _, ok2 := a.PushNode([3]float64{0.5, 0.5, 0}, -1)
	if ok2 {
		tst.Errorf("expected duplicate insertion to be rejected")
	}
}

func Test_arena3d01(tst *testing.T) {

	chk.PrintTitle("arena3d01")

	a := NewArena(3)
	a.PushRoot([3]float64{0, 0, 0}, [3]float64{1, 1, 1})
	chk.IntAssert(a.NodeCount(), 4)
	chk.IntAssert(a.TriaCount(), 1)

	_, _, ok := a.PushNode([3]float64{0.5, 0.5, 0.5}, -1)
	if !ok {
		tst.Fatalf("expected insertion to succeed")
	}
	tnew, told, _, _ := a.Cavity()
	chk.IntAssert(len(told), 1)
	chk.IntAssert(len(tnew), 4)
}
