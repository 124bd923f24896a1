// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aabb implements the recursive axis-aligned-bounding-box tree
// the driver's initialiser walks to produce a Biased Randomised Insertion
// Order (BRIO) for the initial point set: bisecting the longest axis at
// the median until a leaf holds at most LeafSize(ndim) points, then
// visiting leaves left-to-right and shuffling each leaf with a
// caller-seeded *rand.Rand, gives a spatially-local insertion order that
// is reproducible for a given seed. Grounded on the bucket-then-scan
// idiom of gm.Bins (package geom's PSC uses it for feature-point lookup),
// generalised from a single flat bucket grid into a recursive split since
// gm.Bins itself has no notion of "split until small enough".
package aabb

import (
	"math/rand"
	"sort"
)

// LeafSize returns 8^ndim, the point-count threshold below which a
// bounding box is not split further.
func LeafSize(ndim int) int {
	n := 1
	for i := 0; i < ndim; i++ {
		n *= 8
	}
	return n
}

// Order returns a permutation of 0..len(pts)-1: the Biased Randomised
// Insertion Order a recursive AABB-tree walk induces. Each leaf bucket is
// shuffled with rng before being appended, the "biased" part of BRIO
// (spatial locality from the tree, randomness within a geometrically
// small neighbourhood); rng should be seeded from Options.Seed so the
// result is reproducible. In 2D the point closest to the centroid of all
// input points is then moved to the front.
func Order(pts [][3]float64, ndim int, rng *rand.Rand) []int {
	idx := make([]int, len(pts))
	for i := range idx {
		idx[i] = i
	}
	out := make([]int, 0, len(pts))
	split(pts, idx, ndim, LeafSize(ndim), rng, &out)

	if ndim == 2 && len(out) > 1 {
		bringCentroidFirst(pts, ndim, out)
	}
	return out
}

// split recursively bisects idx's bounding box along its longest axis at
// the median, shuffling and appending to *out once a chunk is small
// enough.
func split(pts [][3]float64, idx []int, ndim, leafSize int, rng *rand.Rand, out *[]int) {
	if len(idx) <= leafSize {
		leaf := append([]int(nil), idx...)
		rng.Shuffle(len(leaf), func(i, j int) { leaf[i], leaf[j] = leaf[j], leaf[i] })
		*out = append(*out, leaf...)
		return
	}

	axis, lo, hi := longestAxis(pts, idx, ndim)
	if hi-lo <= 0 {
		*out = append(*out, idx...) // degenerate (coincident points): nothing left to split on
		return
	}

	sorted := append([]int(nil), idx...)
	sort.Slice(sorted, func(i, j int) bool { return pts[sorted[i]][axis] < pts[sorted[j]][axis] })
	mid := len(sorted) / 2

	split(pts, sorted[:mid], ndim, leafSize, rng, out)
	split(pts, sorted[mid:], ndim, leafSize, rng, out)
}

// longestAxis returns the axis (0..ndim-1) along which idx's points span
// the greatest range, and that range's [lo,hi] bounds.
func longestAxis(pts [][3]float64, idx []int, ndim int) (axis int, lo, hi float64) {
	var min, max [3]float64
	min = pts[idx[0]]
	max = pts[idx[0]]
	for _, i := range idx[1:] {
		for d := 0; d < ndim; d++ {
			if pts[i][d] < min[d] {
				min[d] = pts[i][d]
			}
			if pts[i][d] > max[d] {
				max[d] = pts[i][d]
			}
		}
	}
	best := 0
	bestSpan := max[0] - min[0]
	for d := 1; d < ndim; d++ {
		if span := max[d] - min[d]; span > bestSpan {
			best, bestSpan = d, span
		}
	}
	return best, min[best], max[best]
}

// bringCentroidFirst moves the entry of order closest to the centroid of
// all pts to index 0, preserving the relative order of the rest.
func bringCentroidFirst(pts [][3]float64, ndim int, order []int) {
	var centroid [3]float64
	for _, p := range pts {
		for d := 0; d < ndim; d++ {
			centroid[d] += p[d]
		}
	}
	n := float64(len(pts))
	for d := 0; d < ndim; d++ {
		centroid[d] /= n
	}

	best, bestDist := 0, dist2(pts[order[0]], centroid, ndim)
	for i := 1; i < len(order); i++ {
		if d := dist2(pts[order[i]], centroid, ndim); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best == 0 {
		return
	}
	pick := order[best]
	copy(order[1:best+1], order[0:best])
	order[0] = pick
}

func dist2(a, b [3]float64, ndim int) float64 {
	s := 0.0
	for d := 0; d < ndim; d++ {
		v := a[d] - b[d]
		s += v * v
	}
	return s
}
