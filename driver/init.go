// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"github.com/cpmech/rdelmesh/aabb"
	"github.com/cpmech/rdelmesh/cavity"
	"github.com/cpmech/rdelmesh/rmesh"
)

// softBallFrac sizes a SoftFeat node's initial protecting ball as this
// fraction of the local spacing at the node, loose enough that ordinary
// refinement insertions nearby don't immediately re-trigger it.
const softBallFrac = 0.2

// construct seeds the super-simplex, the domain's feature/mesh points and
// the caller-supplied init set in BRIO order, then performs the one-shot
// face/cell scan needed to enter the Tria phase.
func (d *Driver) construct(init []rmesh.InitPoint) error {
	pmin, pmax := d.g.BBox()
	ndim := d.k.Ndim()

	var emin, emax [3]float64
	for i := 0; i < ndim; i++ {
		c := (pmin[i] + pmax[i]) / 2
		span := pmax[i] - pmin[i]
		if span <= 0 {
			span = 1
		}
		emin[i] = c - span
		emax[i] = c + span
	}
	d.k.PushRoot(emin, emax)
	d.state = Node

	seeds := &rmesh.Mesh{}
	d.g.SeedFeat(seeds, d.opts)
	d.g.SeedMesh(seeds, d.opts)

	type seed struct {
		pos  [3]float64
		feat rmesh.FeatKind
	}
	list := make([]seed, 0, len(seeds.Nodes)+len(init))
	for _, n := range seeds.Nodes {
		list = append(list, seed{n.Pos, n.Feat})
	}
	for _, p := range init {
		list = append(list, seed{p.Pos, p.Feat})
	}

	pts := make([][3]float64, len(list))
	for i, s := range list {
		pts[i] = s.pos
	}
	order := aabb.Order(pts, ndim, d.rng)

	for _, i := range order {
		d.insertSeed(list[i].pos, list[i].feat)
	}

	d.state = Edge
	d.state = Etop
	d.state = Tria

	var live []int
	d.k.IterTrias(func(i int) bool {
		live = append(live, i)
		return true
	})
	d.pass++
	out := cavity.ScanCells(d.g, d.h, d.k, d.idx, live, d.pass, d.phaseDim(), d.signHint())
	for _, c := range out.BadCells {
		d.cells.Push(c)
	}
	for _, e := range out.BadEdges {
		d.edges.Push(e)
		if d.opts.Top1 {
			d.etop.Push(e)
		}
	}

	return nil
}

// insertSeed inserts a construction-phase point (domain feature, mesh
// seed or caller-supplied init point) and, for feature nodes, attaches a
// protecting ball: zero radius for HardFeat (corners/ridge endpoints must
// never move), a small h-weighted radius for SoftFeat. Duplicate seed
// points are dropped silently, matching how refinement insertions treat a
// kernel-rejected point.
func (d *Driver) insertSeed(pt [3]float64, feat rmesh.FeatKind) {
	node, inserted := d.applyInsertion(pt)
	if !inserted || feat == rmesh.NoFeat {
		return
	}
	var radiusSq float64
	if feat == rmesh.SoftFeat {
		hval, _ := d.h.Eval(pt, 0)
		r := softBallFrac * hval
		radiusSq = r * r
	}
	ball := rmesh.Ball{Node: node, Kind: rmesh.FeatBall, Centre: pt, RadiusSq: radiusSq, Pass: d.pass}
	d.liveBalls = append(d.liveBalls, ball)
	if radiusSq > 0 {
		d.balls.Push(ball)
	}
}
