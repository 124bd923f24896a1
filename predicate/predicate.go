// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package predicate implements the restricted-face predicates shared by
// initial rDT construction and cavity update: circumball computation and
// the edge/face/tria-ball domain-intersection tests. The predicates are
// orientation-independent and deterministic for identical inputs; they
// compute the generic dual-ball geometry themselves and only ask the
// geom.Oracle to classify the result against the domain.
package predicate

import (
	"math"

	"github.com/cpmech/gosl/num"

	"github.com/cpmech/rdelmesh/dtri"
	"github.com/cpmech/rdelmesh/geom"
	"github.com/cpmech/rdelmesh/rmesh"
)

// degenTol scales num.EPS into a relative tolerance used to decide when a
// circumball is too close to degenerate (cospherical/coplanar) to classify
// robustly; such configurations are reported "not restricted" rather than
// propagated as an error.
const degenTolFactor = 1e8

var degenTol = num.EPS * degenTolFactor

// localEdgeNodes returns the two node positions (global indices into the
// kernel) that bound local edge eidx of a 2D/3D cell: in 2D the 3 edges
// are opposite each vertex; in 3D a cell exposes 6 edges.
func localEdgeNodes(nd [4]int, ndim int, eidx int8) (a, b int) {
	if ndim == 2 {
		opp := [3][2]int{{1, 2}, {2, 0}, {0, 1}}
		e := opp[eidx]
		return nd[e[0]], nd[e[1]]
	}
	pairs := [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	e := pairs[eidx]
	return nd[e[0]], nd[e[1]]
}

// localFaceNodes returns the three node positions bounding local face
// fidx of a 3D cell (opposite the vertex of the same index).
func localFaceNodes(nd [4]int, fidx int8) (a, b, c int) {
	opp := [4][3]int{{1, 2, 3}, {0, 3, 2}, {0, 1, 3}, {0, 2, 1}}
	f := opp[fidx]
	return nd[f[0]], nd[f[1]], nd[f[2]]
}

// EdgeBall tests the DT edge's diametral ball (centred at the edge
// midpoint, radius half the edge length) against the domain ridges via
// geom.Oracle.Intersect. The edge's Voronoi dual is not constructed, so
// the result depends only on the edge's two endpoints, not on the cell.
func EdgeBall(g geom.Oracle, k dtri.View, cell int, localEdge int8, signHint int8) (hit bool, ball rmesh.Ball, feat, topo int8, part int) {
	nd, ndim := k.Tria(cell).Node, k.Ndim()
	a, b := localEdgeNodes(nd, ndim, localEdge)

	pa, pb := k.Node(a).Pos, k.Node(b).Pos
	centre := midpoint(pa, pb, ndim)
	r2 := dist2(centre, pa, ndim)

	if nearDegenerate(r2) {
		return false, rmesh.Ball{}, 0, 0, -1
	}

	ok, f, t, p := g.Intersect(centre, r2, 1, signHint)
	if !ok {
		return false, rmesh.Ball{}, 0, 0, -1
	}
	ball = rmesh.Ball{Centre: centre, RadiusSq: r2}
	return true, ball, f, t, p
}

// FaceBall computes the Voronoi dual of a DT face (a segment joining the
// circumcentres of its two incident cells, here approximated by the
// circumcentre of the cell itself since the reference dtri.Arena keeps no
// adjacency map) and tests it against a domain surface.
func FaceBall(g geom.Oracle, k dtri.View, cell int, localFace int8, signHint int8) (hit bool, ball rmesh.Ball, feat, topo int8, part int) {
	a, _, _ := localFaceNodes(k.Tria(cell).Node, localFace)
	centre := circumcentre(k, cell)
	r2 := dist2(centre, k.Node(a).Pos, 3)

	if nearDegenerate(r2) {
		return false, rmesh.Ball{}, 0, 0, -1
	}

	ok, f, t, p := g.Intersect(centre, r2, 2, signHint)
	if !ok {
		return false, rmesh.Ball{}, 0, 0, -1
	}
	ball = rmesh.Ball{Centre: centre, RadiusSq: r2}
	return true, ball, f, t, p
}

// TriaBall tests whether cell's circumcentre lies inside the domain. The
// circumcentre is always recomputed from the node positions (a cache such
// as dtri.Arena's is not consulted), so predicate stays usable against any
// View.
func TriaBall(g geom.Oracle, k dtri.View, cell int, signHint int8) (hit bool, centre [3]float64, part int) {
	c := circumcentre(k, cell)
	inside, p := g.Classify(c, signHint)
	if !inside {
		return false, [3]float64{}, -1
	}
	return true, c, p
}

// Circumcentre exposes circumcentre recomputation to package rule, whose
// off-centre Steiner placement needs the same point TriaBall classifies.
func Circumcentre(k dtri.View, cell int) [3]float64 { return circumcentre(k, cell) }

// circumcentre recomputes a cell's circumcentre directly from its node
// positions (predicate must not assume dtri.Arena specifically, only the
// dtri.View contract).
func circumcentre(k dtri.View, cell int) [3]float64 {
	nd := k.Tria(cell).Node
	if k.Ndim() == 2 {
		return circum2d(k.Node(nd[0]).Pos, k.Node(nd[1]).Pos, k.Node(nd[2]).Pos)
	}
	return circum3d(k.Node(nd[0]).Pos, k.Node(nd[1]).Pos, k.Node(nd[2]).Pos, k.Node(nd[3]).Pos)
}

func circum2d(a, b, c [3]float64) [3]float64 {
	ax, ay := a[0], a[1]
	bx, by := b[0], b[1]
	cx, cy := c[0], c[1]
	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if nearDegenerate(d * d) {
		return a // degenerate: no meaningful circumcentre; vertex a stands in for it
	}
	ux := ((ax*ax+ay*ay)*(by-cy) + (bx*bx+by*by)*(cy-ay) + (cx*cx+cy*cy)*(ay-by)) / d
	uy := ((ax*ax+ay*ay)*(cx-bx) + (bx*bx+by*by)*(ax-cx) + (cx*cx+cy*cy)*(bx-ax)) / d
	return [3]float64{ux, uy, 0}
}

func circum3d(a, b, c, d [3]float64) [3]float64 {
	var A [3][3]float64
	var rhs [3]float64
	pts := [3][3]float64{b, c, d}
	for i, p := range pts {
		for k := 0; k < 3; k++ {
			A[i][k] = 2 * (p[k] - a[k])
		}
		rhs[i] = dotSq(p) - dotSq(a)
	}
	det := det3(A)
	if nearDegenerate(det * det) {
		return a
	}
	var x [3]float64
	for col := 0; col < 3; col++ {
		M := A
		for row := 0; row < 3; row++ {
			M[row][col] = rhs[row]
		}
		x[col] = det3(M) / det
	}
	return x
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

func dotSq(p [3]float64) float64 { return p[0]*p[0] + p[1]*p[1] + p[2]*p[2] }

func midpoint(a, b [3]float64, ndim int) [3]float64 {
	var m [3]float64
	for i := 0; i < ndim; i++ {
		m[i] = (a[i] + b[i]) / 2
	}
	return m
}

func dist2(a, b [3]float64, ndim int) float64 {
	s := 0.0
	for i := 0; i < ndim; i++ {
		d := a[i] - b[i]
		s += d * d
	}
	return s
}

// nearDegenerate reports whether a squared-length quantity is small
// enough relative to num.EPS that the predicate should decline to
// classify it (cospherical/coplanar input).
func nearDegenerate(q float64) bool {
	return math.Abs(q) < degenTol
}
