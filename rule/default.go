// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rule

import (
	"math"

	"github.com/cpmech/rdelmesh/dtri"
	"github.com/cpmech/rdelmesh/geom"
	"github.com/cpmech/rdelmesh/hfun"
	"github.com/cpmech/rdelmesh/predicate"
	"github.com/cpmech/rdelmesh/rmesh"
)

// offCentreFrac blends an off-centre point this fraction of the way from
// the circumcentre toward the shortest-edge midpoint, a cheap analogue of
// the classic off-center refinement shift (not an exact reproduction).
const offCentreFrac = 0.3

// Default is the reference Chooser: circumcentre/edge-midpoint when
// quality is acceptable, an h-weighted or 3D off-centre shift when it
// isn't, feature-disk projection on hard-feature edges, and sink as the
// unconditional fallback when the off-centre construction degenerates.
type Default struct {
	opts rmesh.Options
}

// NewDefault satisfies the rule.Factory signature; registered under
// "default" in the package init.
func NewDefault(opts rmesh.Options) Chooser { return &Default{opts: opts} }

// Ball always accepts the protecting ball's own centre: a ball is
// enqueued only once it is known to be encroached, so there is no
// quality judgement left to make.
func (d *Default) Ball(k dtri.View, g geom.Oracle, h hfun.Oracle, ball rmesh.Ball) (pt [3]float64, kind Kind, ok bool) {
	return ball.Centre, Circ, true
}

// Edge chooses a split point for a restricted edge: the feature-disk
// projection for hard-feature edges, an h-weighted off-centre shift when
// the edge is longer than the local spacing allows, the midpoint
// otherwise.
func (d *Default) Edge(k dtri.View, g geom.Oracle, h hfun.Oracle, e rmesh.EdgeData, opts rmesh.Options) (pt [3]float64, kind Kind, dim int8, ok bool) {
	ndim := k.Ndim()
	a, b := k.Node(e.Key[0]).Pos, k.Node(e.Key[1]).Pos
	length := distance(a, b, ndim)
	mid := midpoint(a, b, ndim)

	hval, _ := h.Eval(mid, hfun.NullHint())

	if e.Feat == int8(rmesh.HardFeat) {
		step := math.Min(hval, length/2)
		if step <= 0 || length <= 0 {
			return mid, Sink, 1, true
		}
		return along(a, b, ndim, step/length), Disk, 1, true
	}

	if opts.HRatio > 0 && hval > 0 && length > opts.HRatio*hval {
		frac := 0.5 * math.Min(hval/length, 1.0)
		return along(a, b, ndim, frac), Offh, 1, true
	}

	return mid, Circ, 1, true
}

// Tria chooses a split point for a restricted cell: the circumcentre when
// quality (radius-edge ratio) is acceptable, an off-centre shift toward
// the shortest edge otherwise, falling back to the plain circumcentre
// (kind Sink) when the shift itself would degenerate.
func (d *Default) Tria(k dtri.View, g geom.Oracle, h hfun.Oracle, c rmesh.CellData, opts rmesh.Options) (pt [3]float64, kind Kind, dim int8, ok bool) {
	ndim := k.Ndim()
	nd := k.Tria(c.Tadj).Node

	cc := predicate.Circumcentre(k, c.Tadj)
	circR := distance(cc, k.Node(nd[0]).Pos, ndim)
	shortLen, shortMid := shortestEdge(k, nd, ndim)

	if shortLen <= 0 {
		return cc, Sink, int8(ndim), true
	}

	ratio := circR / shortLen
	if opts.RadEdge <= 0 || ratio <= opts.RadEdge {
		return cc, Circ, int8(ndim), true
	}

	var off [3]float64
	for i := 0; i < ndim; i++ {
		off[i] = cc[i] + offCentreFrac*(shortMid[i]-cc[i])
	}
	if ndim == 3 {
		return off, Offc, int8(ndim), true
	}
	return off, Offh, int8(ndim), true
}

func midpoint(a, b [3]float64, ndim int) [3]float64 {
	var m [3]float64
	for i := 0; i < ndim; i++ {
		m[i] = (a[i] + b[i]) / 2
	}
	return m
}

// along returns the point frac of the way from a to b (frac in [0,1]).
func along(a, b [3]float64, ndim int, frac float64) [3]float64 {
	var p [3]float64
	for i := 0; i < ndim; i++ {
		p[i] = a[i] + frac*(b[i]-a[i])
	}
	return p
}

func distance(a, b [3]float64, ndim int) float64 {
	s := 0.0
	for i := 0; i < ndim; i++ {
		d := a[i] - b[i]
		s += d * d
	}
	return math.Sqrt(s)
}

// shortestEdge scans a cell's 3 (2D) or 6 (3D) edges and returns the
// length and midpoint of the shortest one, the target of the off-centre
// shift.
func shortestEdge(k dtri.View, nd [4]int, ndim int) (length float64, mid [3]float64) {
	var pairs [][2]int
	if ndim == 2 {
		pairs = [][2]int{{0, 1}, {1, 2}, {2, 0}}
	} else {
		pairs = [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	}
	length = math.Inf(1)
	for _, pr := range pairs {
		a, b := k.Node(nd[pr[0]]).Pos, k.Node(nd[pr[1]]).Pos
		l := distance(a, b, ndim)
		if l < length {
			length = l
			mid = midpoint(a, b, ndim)
		}
	}
	return length, mid
}
