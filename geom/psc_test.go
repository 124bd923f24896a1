// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/rdelmesh/rmesh"
)

func Test_psc01(tst *testing.T) {

	chk.PrintTitle("psc01")

	p := NewBox([3]float64{0, 0, 0}, [3]float64{1, 1, 0}, 2)
	chk.IntAssert(len(p.Corns), 4)
	chk.IntAssert(len(p.Ridgs), 4)

	inside, part := p.Classify([3]float64{0.5, 0.5, 0}, 0)
	if !inside {
		tst.Errorf("expected centroid to be inside unit square")
	}
	chk.IntAssert(part, 0)

	outside, _ := p.Classify([3]float64{2, 2, 0}, 0)
	if outside {
		tst.Errorf("expected (2,2) to be outside unit square")
	}

	hit, feat, topo, _ := p.Intersect([3]float64{0, 0.5, 0}, 0.01, 1, 0)
	if !hit {
		tst.Errorf("expected ball on left edge to hit a ridge")
	}
	chk.IntAssert(int(feat), int(rmesh.HardFeat))
	chk.IntAssert(int(topo), 1)
}

func Test_psc02(tst *testing.T) {

	chk.PrintTitle("psc02")

	p := NewBox([3]float64{0, 0, 0}, [3]float64{1, 1, 1}, 3)
	chk.IntAssert(len(p.Corns), 8)
	chk.IntAssert(len(p.Ridgs), 12)

	hit, _, topo, _ := p.Intersect([3]float64{0.5, 0.5, 0}, 0.0001, 2, 0)
	if !hit {
		tst.Errorf("expected ball on z=0 face to hit a surface")
	}
	chk.IntAssert(int(topo), 2)
}
