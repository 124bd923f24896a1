// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hfun

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_constant01(tst *testing.T) {

	chk.PrintTitle("constant01")

	o := Constant{H: 0.25}
	h, hint := o.Eval([3]float64{1, 2, 3}, NullHint())
	chk.Float64(tst, "h", 1e-15, h, 0.25)
	chk.IntAssert(int(hint), int(NullHint()))
}

func Test_grid01(tst *testing.T) {

	chk.PrintTitle("grid01")

	g := &Grid{
		Pmin: [3]float64{0, 0, 0}, Pmax: [3]float64{1, 1, 0},
		Ndim: 2, N: [3]int{2, 2},
		Vals: []float64{0.1, 0.3, 0.1, 0.3}, // varies along x only
	}
	h, _ := g.Eval([3]float64{0, 0.5, 0}, NullHint())
	chk.Float64(tst, "h@x=0", 1e-12, h, 0.1)

	h, _ = g.Eval([3]float64{1, 0.5, 0}, NullHint())
	chk.Float64(tst, "h@x=1", 1e-12, h, 0.3)

	h, _ = g.Eval([3]float64{0.5, 0.5, 0}, NullHint())
	chk.Float64(tst, "h@x=0.5", 1e-12, h, 0.2)
}
