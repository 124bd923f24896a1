// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"math/rand"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/rdelmesh/cavity"
	"github.com/cpmech/rdelmesh/dtri"
	"github.com/cpmech/rdelmesh/geom"
	"github.com/cpmech/rdelmesh/hfun"
	"github.com/cpmech/rdelmesh/pqueue"
	"github.com/cpmech/rdelmesh/rface"
	"github.com/cpmech/rdelmesh/rmesh"
	"github.com/cpmech/rdelmesh/rule"
)

// Driver owns every piece of mutable refinement state: the DT kernel, the
// restricted-face index, the four priority queues, and the output mesh
// accumulator. It is not safe for concurrent use: refinement runs as a
// strictly single-threaded cooperative loop.
type Driver struct {
	g       geom.Oracle
	h       hfun.Oracle
	k       dtri.Kernel
	idx     *rface.Index
	chooser rule.Chooser
	opts    rmesh.Options

	balls *pqueue.BallQueue
	edges *pqueue.EdgeQueue
	etop  *pqueue.EtopQueue
	cells *pqueue.CellQueue

	liveBalls []rmesh.Ball

	state State
	pass  int
	hint  int
	stats Stats
	rng   *rand.Rand
}

func newDriver(g geom.Oracle, h hfun.Oracle, opts rmesh.Options) (*Driver, error) {
	if err := opts.Normalise(); err != nil {
		return nil, err
	}
	k := dtri.NewArena(g.Ndim())
	return &Driver{
		g:       g,
		h:       h,
		k:       k,
		idx:     rface.New(),
		chooser: rule.Get("default")(opts),
		opts:    opts,
		balls:   pqueue.NewBallQueue(),
		edges:   pqueue.NewEdgeQueue(),
		etop:    pqueue.NewEtopQueue(),
		cells:   pqueue.NewCellQueue(),
		hint:    -1,
		rng:     rand.New(rand.NewSource(opts.Seed)),
	}, nil
}

// Make runs construction only: it builds the initial restricted-Delaunay
// triangulation (the Node/Edge/Etop/Tria construction phases) without
// draining any refinement queue, then flattens the result into out. It
// has no use for a spacing function, so it drives a uniform placeholder
// internally; callers that need quality-driven refinement should call
// Mesh instead.
func Make(g geom.Oracle, init []rmesh.InitPoint, out *rmesh.Mesh, opts rmesh.Options) error {
	d, err := newDriver(g, hfun.Constant{H: 1}, opts)
	if err != nil {
		return err
	}
	if err := d.construct(init); err != nil {
		return err
	}
	d.flatten(out)
	return nil
}

// Mesh runs the full construction-and-refinement loop, draining all four
// priority queues (Ball, Edge, Etop, Cell, in that order) until they and
// the triangulation's cavity buffers are empty, or opts.IterLimit
// iterations have elapsed.
func Mesh(g geom.Oracle, init []rmesh.InitPoint, h hfun.Oracle, out *rmesh.Mesh, opts rmesh.Options) (*Stats, error) {
	d, err := newDriver(g, h, opts)
	if err != nil {
		return nil, err
	}
	if err := d.construct(init); err != nil {
		return nil, err
	}
	d.refine()
	d.flatten(out)
	return &d.stats, nil
}

// flatten copies the driver's live kernel/index/ball state into the
// caller's output Mesh; this is the only point during a run where
// *rmesh.Mesh is written, keeping the kernel arena the single source of
// truth while refinement is in progress.
func (d *Driver) flatten(out *rmesh.Mesh) {
	out.Ndim = d.k.Ndim()
	out.Nodes = out.Nodes[:0]
	d.k.IterNodes(func(i int) bool {
		n := *d.k.Node(i)
		if n.FDim <= int8(d.k.Ndim()) { // drop super-simplex artefacts
			out.Nodes = append(out.Nodes, n)
		}
		return true
	})
	out.Balls = append([]rmesh.Ball(nil), d.liveBalls...)
	out.Edges = d.idx.Edges.Snapshot()
	out.Faces = d.idx.Faces.Snapshot()
	out.Cells = d.idx.Cells.Snapshot()

	if d.opts.Verb > 0 {
		io.Pf("rdelmesh: %d nodes, %d edges, %d faces, %d cells (pass=%d, state=%s)\n",
			len(out.Nodes), len(out.Edges), len(out.Faces), len(out.Cells), d.pass, d.state)
	}
}

func (d *Driver) nodeAlive(n int) bool { return d.k.Node(n).Alive }

// phaseDim is the ceiling ScanCells tests up to: the min of how far
// construction has progressed (only edges are reachable before the Tria
// phase) and opts.Dims, the caller's requested upper dimension of
// restricted faces to build.
func (d *Driver) phaseDim() int8 {
	reach := int8(1)
	if d.state == Tria {
		reach = int8(d.k.Ndim())
	}
	if ceil := int8(d.opts.Dims); ceil < reach {
		reach = ceil
	}
	return reach
}

// signHint is the sign-propagation hint passed to predicate.TriaBall at
// cell-phase entry: -1 forces a full, unseeded inside/outside test
// whenever an unresolved duplicate restricted face remains (a boundary
// face tested as restricted from both adjacent cells, not yet
// reconciled); 0 otherwise. 2D has no restricted faces, so the hint is
// always 0. Unlike cell-queue admission, which is gated only by whether
// the queue actually holds a live entry, this hint never blocks cell
// processing — it only tells the predicate whether it may trust a
// seeded sign.
func (d *Driver) signHint() int8 {
	if d.k.Ndim() != 3 {
		return 0
	}
	if d.idx.Faces.UnresolvedDups() {
		return -1
	}
	return 0
}

// checkBallEncroachment re-enqueues any live protecting ball violated by a
// freshly inserted point, the trigger condition cavity.Update itself does
// not test (it only tracks edge/face/cell rDT membership).
func (d *Driver) checkBallEncroachment(pt [3]float64) {
	for i := range d.liveBalls {
		b := &d.liveBalls[i]
		if !d.k.Node(b.Node).Alive {
			continue
		}
		if dist2(pt, b.Centre, d.k.Ndim()) < b.RadiusSq {
			b.Pass = d.pass
			d.balls.Push(*b)
		}
	}
}

func dist2(a, b [3]float64, ndim int) float64 {
	s := 0.0
	for i := 0; i < ndim; i++ {
		v := a[i] - b[i]
		s += v * v
	}
	return s
}

// applyInsertion inserts pt into the kernel and folds the resulting
// cavity update back into the index and queues. It is the shared core of
// insertSteiner (refinement insertions, which also update Stats) and
// construct's seeding pass (which instead may attach a protecting ball).
// inserted=false means the kernel rejected the point (exact duplicate).
func (d *Driver) applyInsertion(pt [3]float64) (node int, inserted bool) {
	node, newHint, ok := d.k.PushNode(pt, d.hint)
	if !ok {
		return -1, false
	}
	d.hint = newHint
	d.pass++

	tnew, told, _, nold := d.k.Cavity()
	mesh := &rmesh.Mesh{} // scratch: only its Balls field is consulted by cavity.Update
	mesh.Balls = d.liveBalls
	out := cavity.Update(d.g, d.h, d.k, d.idx, mesh, tnew, told, nold, d.pass, d.phaseDim(), d.signHint())
	d.liveBalls = mesh.Balls

	// out is already capped to opts.Dims by phaseDim, so no further gating
	// is needed here: an empty out.BadEdges/BadCells at dims=0 means
	// nothing gets queued, matching "only balls are produced".
	for _, e := range out.BadEdges {
		d.edges.Push(e)
		if d.opts.Top1 {
			d.etop.Push(e)
		}
	}
	for _, c := range out.BadCells {
		d.cells.Push(c)
	}

	d.checkBallEncroachment(pt)
	return node, true
}

// insertSteiner inserts a refinement point chosen by rule.Chooser. ok=false
// means the kernel rejected the point (exact duplicate), in which case the
// caller drops the triggering bad face without retry.
func (d *Driver) insertSteiner(pt [3]float64, kind rule.Kind, dim int8) (ok bool) {
	_, inserted := d.applyInsertion(pt)
	if !inserted {
		return false
	}
	d.stats.record(kind, dim)
	return true
}
