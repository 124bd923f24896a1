// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rule

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/rdelmesh/hfun"
	"github.com/cpmech/rdelmesh/rmesh"
)

func Test_factory01(tst *testing.T) {

	chk.PrintTitle("factory01")

	fcn := Get("default")
	c := fcn(rmesh.Options{})
	if c == nil {
		tst.Fatalf("expected a non-nil chooser")
	}
}

func Test_ball01(tst *testing.T) {

	chk.PrintTitle("ball01")

	d := NewDefault(rmesh.Options{}).(*Default)
	b := rmesh.Ball{Centre: [3]float64{1, 2, 0}, RadiusSq: 4}
	pt, kind, ok := d.Ball(nil, nil, nil, b)
	if !ok {
		tst.Fatalf("expected Ball to always accept")
	}
	chk.IntAssert(int(kind), int(Circ))
	chk.Scalar(tst, "x", 1e-15, pt[0], 1.0)
	chk.Scalar(tst, "y", 1e-15, pt[1], 2.0)
}

func Test_edge01(tst *testing.T) {

	chk.PrintTitle("edge01")

	a := newTestArena2d()
	d := NewDefault(rmesh.Options{HRatio: 0}).(*Default)
	h := hfun.Constant{H: 1.0}

	e := rmesh.EdgeData{Key: [2]int{0, 1}}
	pt, kind, dim, ok := d.Edge(a, nil, h, e, rmesh.Options{})
	if !ok {
		tst.Fatalf("expected Edge to succeed")
	}
	chk.IntAssert(int(kind), int(Circ))
	chk.IntAssert(int(dim), 1)
	_ = pt
}

func Test_edge_feature01(tst *testing.T) {

	chk.PrintTitle("edge_feature01")

	a := newTestArena2d()
	d := NewDefault(rmesh.Options{}).(*Default)
	h := hfun.Constant{H: 0.1}

	e := rmesh.EdgeData{Key: [2]int{0, 1}, Feat: int8(rmesh.HardFeat)}
	_, kind, _, ok := d.Edge(a, nil, h, e, rmesh.Options{})
	if !ok {
		tst.Fatalf("expected Edge to succeed")
	}
	chk.IntAssert(int(kind), int(Disk))
}

func Test_tria01(tst *testing.T) {

	chk.PrintTitle("tria01")

	a := newTestArena2d()
	d := NewDefault(rmesh.Options{RadEdge: 100}).(*Default) // permissive: expect Circ
	c := rmesh.CellData{Tadj: 0}
	pt, kind, dim, ok := d.Tria(a, nil, nil, c, rmesh.Options{RadEdge: 100})
	if !ok {
		tst.Fatalf("expected Tria to succeed")
	}
	chk.IntAssert(int(kind), int(Circ))
	chk.IntAssert(int(dim), 2)
	_ = pt
}
