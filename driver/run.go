// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import "github.com/cpmech/rdelmesh/rmesh"

// refine drains the four priority queues until none has a live entry left
// to offer, or opts.IterLimit iterations have elapsed.
func (d *Driver) refine() {
	for d.stats.Iters < d.opts.IterLimit {
		if !d.step() {
			d.stats.Converged = true
			return
		}
		d.stats.Iters++
		if d.stats.Iters%d.opts.TrimFreq == 0 {
			d.edges.Trim(d.idx)
			d.etop.Trim(d.idx)
			d.cells.Trim(d.idx)
		}
	}
}

// step pops and processes the single highest-priority live entry across
// the four queues, tried in Ball, Edge, Etop, Cell order: a ball violation
// is always resolved before any split candidate, and a restricted edge
// before a restricted cell. It reports false once nothing is left to pop.
func (d *Driver) step() bool {
	if b, ok := d.balls.Pop(d.nodeAlive); ok {
		pt, kind, ok2 := d.chooser.Ball(d.k, d.g, d.h, b)
		if ok2 {
			d.insertSteiner(pt, kind, 1)
		}
		return true
	}

	if e, ok := d.edges.Pop(d.idx); ok {
		d.stepEdge(e)
		return true
	}

	if d.opts.Top1 {
		if e, ok := d.etop.Pop(d.idx); ok {
			d.stepEdge(e)
			return true
		}
	}

	if c, ok := d.cells.Pop(d.idx); ok {
		pt, kind, dim, ok2 := d.chooser.Tria(d.k, d.g, d.h, c.CellData, d.opts)
		if ok2 {
			d.insertSteiner(pt, kind, dim)
		}
		return true
	}

	return false
}

func (d *Driver) stepEdge(e rmesh.EdgeCost) {
	pt, kind, dim, ok := d.chooser.Edge(d.k, d.g, d.h, e.EdgeData, d.opts)
	if ok {
		d.insertSteiner(pt, kind, dim)
	}
}
