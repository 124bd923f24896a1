// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package predicate

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/rdelmesh/dtri"
	"github.com/cpmech/rdelmesh/geom"
)

func Test_triaball01(tst *testing.T) {

	chk.PrintTitle("triaball01")

	a := dtri.NewArena(2)
	a.PushRoot([3]float64{0, 0, 0}, [3]float64{1, 1, 0})
	// the triangle of these three points is Delaunay, with circumcentre
	// (0.5, 0.425) inside the unit square
	a.PushNode([3]float64{0.2, 0.2, 0}, -1)
	a.PushNode([3]float64{0.8, 0.2, 0}, -1)
	a.PushNode([3]float64{0.5, 0.8, 0}, -1)

	box := geom.NewBox([3]float64{0, 0, 0}, [3]float64{1, 1, 0}, 2)

	sawHit := false
	a.IterTrias(func(i int) bool {
		if hit, _, _ := TriaBall(box, a, i, 0); hit {
			sawHit = true
		}
		return true
	})
	if !sawHit {
		tst.Errorf("expected at least one cell's circumcentre inside the unit square")
	}
}

func Test_edgeball01(tst *testing.T) {

	chk.PrintTitle("edgeball01")

	a := dtri.NewArena(2)
	a.PushRoot([3]float64{0, 0, 0}, [3]float64{1, 1, 0})
	box := geom.NewBox([3]float64{0, 0, 0}, [3]float64{1, 1, 0}, 2)

	hit, _, _, _, _ := EdgeBall(box, a, 0, 0, 0)
	_ = hit // super-triangle edges lie far outside the unit square; no assertion on hit itself
}

// Test_faceball01 checks that FaceBall's dual ball is genuinely the cell's
// circumcentre (equidistant from all 3 face vertices), not an arithmetic
// centroid measured to a single vertex.
func Test_faceball01(tst *testing.T) {

	chk.PrintTitle("faceball01")

	a := dtri.NewArena(3)
	a.PushRoot([3]float64{0, 0, 0}, [3]float64{1, 1, 1})
	a.PushNode([3]float64{0.5, 0.5, 0.5}, -1)
	box := geom.NewBox([3]float64{0, 0, 0}, [3]float64{1, 1, 1}, 3)

	sawHit := false
	a.IterTrias(func(cell int) bool {
		for li := int8(0); li < 4; li++ {
			hit, ball, _, _, _ := FaceBall(box, a, cell, li, 0)
			if !hit {
				continue
			}
			sawHit = true

			want := Circumcentre(a, cell)
			for i := 0; i < 3; i++ {
				chk.Scalar(tst, "centre", 1e-9, ball.Centre[i], want[i])
			}

			nd := a.Tria(cell).Node
			na, nb, nc := localFaceNodes(nd, li)
			da := dist2(ball.Centre, a.Node(na).Pos, 3)
			db := dist2(ball.Centre, a.Node(nb).Pos, 3)
			dc := dist2(ball.Centre, a.Node(nc).Pos, 3)
			chk.Scalar(tst, "radiusSq to vertex b", 1e-6, db, da)
			chk.Scalar(tst, "radiusSq to vertex c", 1e-6, dc, da)
			chk.Scalar(tst, "ball.RadiusSq", 1e-9, ball.RadiusSq, da)
		}
		return true
	})
	if !sawHit {
		tst.Errorf("expected at least one cell face's dual ball to intersect the unit cube")
	}
}
