// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom defines the Geom Oracle capability the restricted-Delaunay
// core consumes: bounding-box queries, feature/mesh seeding and the
// edge/face/tria-ball domain-intersection tests. A reference
// piecewise-smooth-complex implementation (PSC) is provided so the module
// can be run end to end without an external embedder supplying one.
package geom

import "github.com/cpmech/rdelmesh/rmesh"

// Oracle is the capability contract consumed by package predicate and by
// the driver's initialisation phase. It deliberately exposes only
// domain-classification primitives, not dual-geometry construction: the
// circumball/dual-ball math is generic linear algebra shared by every
// domain and lives in package predicate, which calls into Oracle only to
// decide whether a given ball or point lies on the domain.
type Oracle interface {
	// Ndim returns the ambient dimension of the domain (2 or 3),
	// independent of Options.Dims (which instead caps how deep the
	// restricted-face hierarchy is built).
	Ndim() int

	// BBox returns the axis-aligned bounding box of the domain.
	BBox() (min, max [3]float64)

	// SeedFeat appends hard/soft feature points (corners, ridges) to mesh.
	SeedFeat(mesh *rmesh.Mesh, opts rmesh.Options)

	// SeedMesh appends any additional domain-mandated seed points (e.g.
	// minimum sampling of surfaces) beyond the caller-supplied init set.
	SeedMesh(mesh *rmesh.Mesh, opts rmesh.Options)

	// Classify reports whether centre lies inside the domain interior,
	// and if so which domain part owns it. signHint accelerates the
	// inside/outside test via seeded sign propagation; pass 0 when
	// unknown. Used by predicate.TriaBall.
	Classify(centre [3]float64, signHint int8) (inside bool, part int)

	// Intersect reports whether the ball (centre, radiusSq) intersects a
	// dim-dimensional domain feature (dim=1: ridges, dim=2: surfaces),
	// returning the feature/topology classification and domain part of
	// the intersected feature. Used by predicate.EdgeBall/FaceBall.
	Intersect(centre [3]float64, radiusSq float64, dim int8, signHint int8) (hit bool, feat, topo int8, part int)
}
