// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cavity

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/rdelmesh/dtri"
	"github.com/cpmech/rdelmesh/geom"
	"github.com/cpmech/rdelmesh/hfun"
	"github.com/cpmech/rdelmesh/rface"
	"github.com/cpmech/rdelmesh/rmesh"
)

func Test_update2d01(tst *testing.T) {

	chk.PrintTitle("update2d01")

	a := dtri.NewArena(2)
	a.PushRoot([3]float64{0, 0, 0}, [3]float64{1, 1, 0})
	box := geom.NewBox([3]float64{0, 0, 0}, [3]float64{1, 1, 0}, 2)
	h := hfun.Constant{H: 0.5}
	idx := rface.New()
	mesh := &rmesh.Mesh{Ndim: 2}

	// three interior points: the last insertion creates the all-interior
	// triangle, whose bottom edge and circumcentre lie on/inside the square
	for _, p := range [][3]float64{{0.2, 0.2, 0}, {0.8, 0.2, 0}, {0.5, 0.8, 0}} {
		if _, _, inserted := a.PushNode(p, -1); !inserted {
			tst.Fatalf("expected point %v to be inserted", p)
		}
	}
	tnew, told, _, nold := a.Cavity()

	out := Update(box, h, a, idx, mesh, tnew, told, nold, 1, 2, 0)
	if len(out.BadEdges) == 0 && len(out.BadCells) == 0 {
		tst.Errorf("expected at least one restricted edge or cell inside the unit square")
	}
	if idx.Edges.Count()+idx.Cells.Count() == 0 {
		tst.Errorf("expected the index to hold at least one restricted record")
	}
}
