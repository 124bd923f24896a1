// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dtri defines the Delaunay-kernel capability the restricted
// Delaunay core consumes (point location, cavity flip, vertex insertion,
// free-list management) and ships a reference Bowyer-Watson implementation
// over a node/tetra arena, so the module is runnable end to end even
// though the kernel is treated as an external collaborator behind this
// interface.
package dtri

import "github.com/cpmech/rdelmesh/rmesh"

// View is the read-only subset of the live triangulation the predicate
// and cavity layers need.
type View interface {
	Node(i int) *rmesh.Node
	Tria(i int) *rmesh.Tria
	NodeCount() int
	TriaCount() int
	Ndim() int
	IterNodes(fn func(i int) bool)
	IterTrias(fn func(i int) bool)

	// Cavity exposes the sets produced by the most recent PushNode call:
	// newly-created/destroyed cells and nodes.
	Cavity() (tnew, told, nnew, nold []int)
}

// Kernel is the capability contract consumed by package driver.
type Kernel interface {
	View

	// PushRoot seeds the arena with a super-simplex bounding [pmin,pmax].
	PushRoot(pmin, pmax [3]float64)

	// PushNode inserts pt, starting point location from the node hinted
	// by hint (or -1 to start from the root). Returns the new node's
	// index, a fresh hint for the next nearby insertion, and whether the
	// point was actually inserted (false on exact duplicate).
	PushNode(pt [3]float64, hint int) (idx int, newHint int, inserted bool)

	// FreeTria returns a dead cell to the kernel's free list; callers
	// must have already removed any rface records referencing it.
	FreeTria(i int)
}
