// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cavity implements the incremental rDT synchronisation run after
// every Steiner insertion: newly-created DT cells are face-tested against
// the domain and their restricted faces recorded, destroyed cells have
// their records removed, and destroyed nodes have their protecting balls
// dropped.
package cavity

import (
	"math"

	"github.com/cpmech/rdelmesh/dtri"
	"github.com/cpmech/rdelmesh/geom"
	"github.com/cpmech/rdelmesh/hfun"
	"github.com/cpmech/rdelmesh/predicate"
	"github.com/cpmech/rdelmesh/rface"
	"github.com/cpmech/rdelmesh/rmesh"
)

// Outcome reports the newly-discovered bad faces a single Update call
// should feed into the driver's priority queues. There is no third list
// for 3D restricted faces: faces never host a Steiner point directly,
// they only drive rface.FaceIndex's Dups safety gate.
type Outcome struct {
	BadEdges []rmesh.EdgeCost
	BadCells []rmesh.TriaCost
}

// localEdges/localFaces mirror the opposite-vertex enumeration used by
// package predicate, duplicated here because cavity walks local indices
// directly rather than through a single (cell, localIdx) predicate call.
var localEdges2d = [3][2]int{{1, 2}, {2, 0}, {0, 1}}
var localEdges3d = [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
var localFaces3d = [4][3]int{{1, 2, 3}, {0, 3, 2}, {0, 1, 3}, {0, 2, 1}}

// Update folds a single point insertion's cavity change into the
// restricted-face index and live ball bookkeeping. tnew/told/nold are the
// sets reported by dtri.View.Cavity() after the triggering PushNode call;
// mesh accumulates emitted node/ball bookkeeping (only its Balls slice is
// touched here).
func Update(g geom.Oracle, h hfun.Oracle, k dtri.View, idx *rface.Index, mesh *rmesh.Mesh, tnew, told, nold []int, pass int, phaseDim, signHint int8) Outcome {
	for _, cell := range told {
		removeCellFaces(k, idx, cell, k.Ndim())
	}

	out := ScanCells(g, h, k, idx, tnew, pass, phaseDim, signHint)

	for _, node := range nold {
		removeBall(mesh, node)
	}

	return out
}

// ScanCells face-tests every cell in cells against the domain, recording
// restricted edges (at phaseDim>=1), 3D faces (at phaseDim>=2), and cells
// (at phaseDim>=ndim) into idx. phaseDim is the caller's combined
// phase/opts.Dims ceiling: it caps both how far construction has
// progressed (Node-phase insertions never reach the cell dimension) and
// how deep the caller asked the restricted set to go. signHint seeds the
// cell-dimension inside/outside test (predicate.TriaBall); the caller
// passes -1 whenever an unresolved duplicate restricted face makes a
// seeded sign untrustworthy. It is the part of Update shared with
// construct's one-shot initial scan on entering the Tria phase, where
// every live cell (not just a single insertion's cavity) needs testing at
// the deeper phase dimension for the first time.
func ScanCells(g geom.Oracle, h hfun.Oracle, k dtri.View, idx *rface.Index, cells []int, pass int, phaseDim, signHint int8) Outcome {
	var out Outcome
	ndim := k.Ndim()
	eprv := make(map[[2]int]bool)
	fprv := make(map[[3]int]bool)

	for _, cell := range cells {
		nd := k.Tria(cell).Node

		if phaseDim >= 1 {
			edges := localEdges2d[:]
			if ndim == 3 {
				edges = localEdges3d[:]
			}
			for li, pr := range edges {
				a, b := nd[pr[0]], nd[pr[1]]
				if superNode(k, a, ndim) || superNode(k, b, ndim) {
					continue
				}
				key := rmesh.SortKey2(a, b)
				if eprv[key] {
					continue
				}
				eprv[key] = true

				hit, ball, feat, topo, part := predicate.EdgeBall(g, k, cell, int8(li), 0)
				if !hit {
					continue
				}
				rec := &rmesh.EdgeData{Key: key, Tadj: cell, Eadj: int8(li), Pass: pass, Feat: feat, Topo: topo, Part: part}
				idx.Edges.Insert(rec)
				out.BadEdges = append(out.BadEdges, rmesh.EdgeCost{
					EdgeData: *rec,
					Node:     [2]int{a, b},
					Pass:     pass,
					Cost:     ballCost(h, ball),
				})
			}
		}

		if ndim == 3 && phaseDim >= 2 {
			for li, fc := range localFaces3d {
				a, b, c := nd[fc[0]], nd[fc[1]], nd[fc[2]]
				if superNode(k, a, ndim) || superNode(k, b, ndim) || superNode(k, c, ndim) {
					continue
				}
				key := rmesh.SortKey3(a, b, c)
				if fprv[key] {
					continue
				}
				fprv[key] = true

				hit, _, feat, topo, part := predicate.FaceBall(g, k, cell, int8(li), 0)
				if !hit {
					continue
				}
				rec := &rmesh.FaceData{Key: key, Tadj: cell, Fadj: int8(li), Pass: pass, Feat: feat, Topo: topo, Part: part}
				idx.Faces.Insert(rec)
			}
		}

		if phaseDim >= int8(ndim) {
			if hasSuper(nd, ndim, k) {
				continue
			}
			hit, centre, part := predicate.TriaBall(g, k, cell, signHint)
			if !hit {
				continue
			}
			key := cellKey(nd, ndim)
			rec := &rmesh.CellData{Key: key, Tadj: cell, Pass: pass, Part: part}
			idx.Cells.Insert(rec)
			out.BadCells = append(out.BadCells, rmesh.TriaCost{
				CellData: *rec,
				Node:     nd,
				Pass:     pass,
				Cost:     centreCost(h, centre),
			})
		}
	}

	return out
}

func superNode(k dtri.View, i, ndim int) bool {
	return int(k.Node(i).FDim) > ndim
}

func hasSuper(nd [4]int, ndim int, k dtri.View) bool {
	n := 3
	if ndim == 3 {
		n = 4
	}
	for i := 0; i < n; i++ {
		if superNode(k, nd[i], ndim) {
			return true
		}
	}
	return false
}

// cellKey builds the canonical cell-record key: the sorted node tuple,
// padded with -1 in the unused fourth slot for 2D triangles so the same
// CellIndex (and [4]int key shape) serves both dimensions.
func cellKey(nd [4]int, ndim int) [4]int {
	if ndim == 3 {
		return rmesh.SortKey4(nd[0], nd[1], nd[2], nd[3])
	}
	s := rmesh.SortKey3(nd[0], nd[1], nd[2])
	return [4]int{-1, s[0], s[1], s[2]}
}

// removeCellFaces drops every face record owned by a destroyed cell: its
// edges, its faces (3D), and its own cell record, tearing down a dead
// tria's index entries before it is returned to the kernel free list.
func removeCellFaces(k dtri.View, idx *rface.Index, cell int, ndim int) {
	nd := k.Tria(cell).Node

	edges := localEdges2d[:]
	if ndim == 3 {
		edges = localEdges3d[:]
	}
	for _, pr := range edges {
		idx.Edges.Remove(rmesh.SortKey2(nd[pr[0]], nd[pr[1]]))
	}
	if ndim == 3 {
		for _, fc := range localFaces3d {
			idx.Faces.Remove(rmesh.SortKey3(nd[fc[0]], nd[fc[1]], nd[fc[2]]))
		}
	}
	idx.Cells.Remove(cellKey(nd, ndim))
}

// removeBall drops the protecting ball (if any) centred at node, via
// swap-remove against mesh.Balls; cavities are local so this slice never
// grows large enough for the linear scan to matter.
func removeBall(mesh *rmesh.Mesh, node int) {
	for i, b := range mesh.Balls {
		if b.Node == node {
			last := len(mesh.Balls) - 1
			mesh.Balls[i] = mesh.Balls[last]
			mesh.Balls = mesh.Balls[:last]
			return
		}
	}
}

// ballCost is a "radius / local h" ordering: the worse the encroachment
// relative to the local target spacing, the higher this value, and the
// sooner the ball queue pops it.
func ballCost(h hfun.Oracle, b rmesh.Ball) float64 {
	hval, _ := h.Eval(b.Centre, hfun.NullHint())
	if hval <= 0 {
		return math.Sqrt(b.RadiusSq)
	}
	return math.Sqrt(b.RadiusSq) / hval
}

func centreCost(h hfun.Oracle, centre [3]float64) float64 {
	hval, _ := h.Eval(centre, hfun.NullHint())
	if hval <= 0 {
		return 1
	}
	return 1 / hval
}
