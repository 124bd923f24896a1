// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"

	"github.com/cpmech/rdelmesh/rmesh"
)

// PSC is a reference piecewise-smooth-complex domain: a convex polygon
// (2D) or box (3D) boundary with an optional set of internal ridge
// segments treated as hard features. It is grounded on the bounding-box
// plus spatial-bin idiom of out/out.go's NodBins/IpsBins (gm.Bins), here
// repurposed from "bin integration points for output extrapolation" to
// "bin feature points for nearest-ridge/corner lookup".
type PSC struct {
	dim   int
	Pmin  [3]float64
	Pmax  [3]float64
	Corns [][3]float64 // hard-feature corner points
	Ridgs [][2]int     // pairs of indices into Corns defining hard ridges
	Tol   float64      // ball-intersection tolerance

	bins gm.Bins // feature-point bins for nearest-corner/ridge lookup
}

// NewBox returns a PSC bounding an axis-aligned box/rectangle, with its
// 2^ndim corners registered as hard features and its edges as ridges.
func NewBox(pmin, pmax [3]float64, ndim int) *PSC {
	o := &PSC{dim: ndim, Pmin: pmin, Pmax: pmax, Tol: 1e-8}
	if ndim == 2 {
		o.Corns = [][3]float64{
			{pmin[0], pmin[1], 0},
			{pmax[0], pmin[1], 0},
			{pmax[0], pmax[1], 0},
			{pmin[0], pmax[1], 0},
		}
		o.Ridgs = [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	} else {
		o.Corns = boxCorners3d(pmin, pmax)
		o.Ridgs = boxEdges3d()
	}
	o.initBins()
	return o
}

func (o *PSC) initBins() {
	lo := append([]float64{}, o.Pmin[:o.dim]...)
	hi := append([]float64{}, o.Pmax[:o.dim]...)
	o.bins.Init(lo, hi, 20)
	for i, c := range o.Corns {
		o.bins.Append(c[:o.dim], i)
	}
}

func boxCorners3d(pmin, pmax [3]float64) [][3]float64 {
	var out [][3]float64
	for _, x := range []float64{pmin[0], pmax[0]} {
		for _, y := range []float64{pmin[1], pmax[1]} {
			for _, z := range []float64{pmin[2], pmax[2]} {
				out = append(out, [3]float64{x, y, z})
			}
		}
	}
	return out
}

func boxEdges3d() [][2]int {
	// corner indices follow the x-y-z nested loop order of boxCorners3d:
	// 0:000 1:001 2:010 3:011 4:100 5:101 6:110 7:111
	return [][2]int{
		{0, 1}, {0, 2}, {0, 4}, {1, 3}, {1, 5}, {2, 3},
		{2, 6}, {3, 7}, {4, 5}, {4, 6}, {5, 7}, {6, 7},
	}
}

// Ndim implements Oracle.
func (o *PSC) Ndim() int { return o.dim }

// BBox implements Oracle.
func (o *PSC) BBox() (min, max [3]float64) { return o.Pmin, o.Pmax }

// SeedFeat implements Oracle: pushes the corner set as hard-feature
// (FDim 0) nodes. Ridge membership is not recorded on the nodes; Node.Topo
// stays 0.
func (o *PSC) SeedFeat(mesh *rmesh.Mesh, opts rmesh.Options) {
	for _, c := range o.Corns {
		mesh.Nodes = append(mesh.Nodes, rmesh.Node{
			Pos: c, FDim: 0, Feat: rmesh.HardFeat, Alive: true,
		})
	}
}

// SeedMesh implements Oracle; the box PSC requires no additional seeding
// beyond its corners and the caller-supplied init set.
func (o *PSC) SeedMesh(mesh *rmesh.Mesh, opts rmesh.Options) {}

// nearestCorner returns the index of the corner nearest x, using the bin
// index to avoid a linear scan once the corner count grows.
func (o *PSC) nearestCorner(x [3]float64) int {
	ids := o.bins.FindAlongSegment(x[:o.dim], x[:o.dim], o.Tol)
	if len(ids) > 0 {
		return ids[0]
	}
	best, bd := -1, math.Inf(1)
	for i, c := range o.Corns {
		d := dist2(c, x, o.dim)
		if d < bd {
			bd, best = d, i
		}
	}
	if best < 0 {
		chk.Panic("geom: PSC has no corners to seed from")
	}
	return best
}

func dist2(a, b [3]float64, ndim int) float64 {
	s := 0.0
	for i := 0; i < ndim; i++ {
		d := a[i] - b[i]
		s += d * d
	}
	return s
}

// Classify implements Oracle: a point is "inside" the box domain when it
// lies within [Pmin,Pmax] (up to Tol); the box has a single part, id 0.
func (o *PSC) Classify(centre [3]float64, signHint int8) (inside bool, part int) {
	for i := 0; i < o.dim; i++ {
		if centre[i] < o.Pmin[i]-o.Tol || centre[i] > o.Pmax[i]+o.Tol {
			return false, -1
		}
	}
	return true, 0
}

// Intersect implements Oracle. For dim=1 it tests the ball against every
// ridge segment (distance from centre to the segment vs. radius); for
// dim=2 (3D meshes only) it tests against the box's planar faces.
func (o *PSC) Intersect(centre [3]float64, radiusSq float64, dim int8, signHint int8) (hit bool, feat, topo int8, part int) {
	switch dim {
	case 1:
		return o.intersectRidges(centre, radiusSq)
	case 2:
		return o.intersectFaces(centre, radiusSq)
	default:
		chk.Panic("geom: PSC.Intersect called with unsupported dim=%d", dim)
		return
	}
}

func (o *PSC) intersectRidges(centre [3]float64, radiusSq float64) (hit bool, feat, topo int8, part int) {
	r := math.Sqrt(radiusSq)
	for ri, e := range o.Ridgs {
		a, b := o.Corns[e[0]], o.Corns[e[1]]
		d := segmentDist(centre, a, b, o.dim)
		if d <= r+o.Tol {
			return true, int8(rmesh.HardFeat), 1, ri
		}
	}
	return false, 0, 0, -1
}

func (o *PSC) intersectFaces(centre [3]float64, radiusSq float64) (hit bool, feat, topo int8, part int) {
	r := math.Sqrt(radiusSq)
	for axis := 0; axis < o.dim; axis++ {
		if math.Abs(centre[axis]-o.Pmin[axis]) <= r+o.Tol {
			return true, int8(rmesh.NoFeat), 2, 2 * axis
		}
		if math.Abs(centre[axis]-o.Pmax[axis]) <= r+o.Tol {
			return true, int8(rmesh.NoFeat), 2, 2*axis + 1
		}
	}
	return false, 0, 0, -1
}

// segmentDist returns the distance from p to the segment [a,b].
func segmentDist(p, a, b [3]float64, ndim int) float64 {
	var ab, ap [3]float64
	for i := 0; i < ndim; i++ {
		ab[i] = b[i] - a[i]
		ap[i] = p[i] - a[i]
	}
	abLenSq := dotN(ab, ab, ndim)
	if abLenSq < 1e-300 {
		return math.Sqrt(dist2(p, a, ndim))
	}
	t := dotN(ap, ab, ndim) / abLenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	var closest [3]float64
	for i := 0; i < ndim; i++ {
		closest[i] = a[i] + t*ab[i]
	}
	return math.Sqrt(dist2(p, closest, ndim))
}

func dotN(a, b [3]float64, ndim int) float64 {
	s := 0.0
	for i := 0; i < ndim; i++ {
		s += a[i] * b[i]
	}
	return s
}
