// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rface implements the restricted-face index: three hash tables,
// one per face dimension, keyed by the canonical ascending-sorted tuple
// of bounding node indices. The registry idiom (name/key -> record, with
// an explicit "already present" branch) is grounded on the
// ele.SetAllocator/ele.SetInfoFunc factory-map pattern, generalised from
// string keys to fixed-size array keys so lookups stay allocation-free.
package rface

import "github.com/cpmech/rdelmesh/rmesh"

// EdgeIndex holds restricted-edge records keyed by their sorted node pair.
type EdgeIndex struct {
	m map[[2]int]*rmesh.EdgeData
}

// NewEdgeIndex returns an empty edge index.
func NewEdgeIndex() *EdgeIndex { return &EdgeIndex{m: make(map[[2]int]*rmesh.EdgeData)} }

// Find looks up the record for key, if one is live.
func (x *EdgeIndex) Find(key [2]int) (*rmesh.EdgeData, bool) {
	d, ok := x.m[key]
	return d, ok
}

// Insert adds d if its key is not already present; no-op on duplicate key.
func (x *EdgeIndex) Insert(d *rmesh.EdgeData) (dup bool) {
	if _, ok := x.m[d.Key]; ok {
		return true
	}
	x.m[d.Key] = d
	return false
}

// Remove drops the record for key, if any.
func (x *EdgeIndex) Remove(key [2]int) { delete(x.m, key) }

// Count returns the number of live records.
func (x *EdgeIndex) Count() int { return len(x.m) }

// Snapshot returns every live record, for flattening into the output mesh.
func (x *EdgeIndex) Snapshot() []rmesh.EdgeData {
	out := make([]rmesh.EdgeData, 0, len(x.m))
	for _, d := range x.m {
		out = append(out, *d)
	}
	return out
}

// FaceIndex holds restricted-face records (3D only) keyed by their sorted
// node triple.
type FaceIndex struct {
	m map[[3]int]*rmesh.FaceData
}

// NewFaceIndex returns an empty face index.
func NewFaceIndex() *FaceIndex { return &FaceIndex{m: make(map[[3]int]*rmesh.FaceData)} }

// Find looks up the record for key, if one is live.
func (x *FaceIndex) Find(key [3]int) (*rmesh.FaceData, bool) {
	d, ok := x.m[key]
	return d, ok
}

// Insert implements the two-sided insertion rule for faces: a face key
// inserted a second time (from the adjacent cell) increments Dups on the
// existing record instead of being rejected outright. The first insertion
// leaves Dups at 0 (a face seen from only one side is an ordinary,
// resolved boundary face); only a genuine second-side insertion makes it
// non-zero, flagging an unresolved duplicate.
func (x *FaceIndex) Insert(d *rmesh.FaceData) (dup bool) {
	if existing, ok := x.m[d.Key]; ok {
		existing.Dups++
		return true
	}
	d.Dups = 0
	x.m[d.Key] = d
	return false
}

// Remove drops the record for key, if any.
func (x *FaceIndex) Remove(key [3]int) { delete(x.m, key) }

// Count returns the number of live records.
func (x *FaceIndex) Count() int { return len(x.m) }

// Snapshot returns every live record, for flattening into the output mesh.
func (x *FaceIndex) Snapshot() []rmesh.FaceData {
	out := make([]rmesh.FaceData, 0, len(x.m))
	for _, d := range x.m {
		out = append(out, *d)
	}
	return out
}

// UnresolvedDups reports whether any live face record still has Dups>0;
// driver.signHint consults this to decide whether a cell-dimension
// inside/outside test may trust a seeded sign.
func (x *FaceIndex) UnresolvedDups() bool {
	for _, d := range x.m {
		if d.Dups > 0 {
			return true
		}
	}
	return false
}

// CellIndex holds restricted-cell records keyed by their sorted node
// quadruple; 2D triangles use the sorted triple padded with -1 in slot 0.
type CellIndex struct {
	m map[[4]int]*rmesh.CellData
}

// NewCellIndex returns an empty cell index.
func NewCellIndex() *CellIndex { return &CellIndex{m: make(map[[4]int]*rmesh.CellData)} }

// Find looks up the record for key, if one is live.
func (x *CellIndex) Find(key [4]int) (*rmesh.CellData, bool) {
	d, ok := x.m[key]
	return d, ok
}

// Insert adds d if its key is not already present; no-op on duplicate key.
func (x *CellIndex) Insert(d *rmesh.CellData) (dup bool) {
	if _, ok := x.m[d.Key]; ok {
		return true
	}
	x.m[d.Key] = d
	return false
}

// Remove drops the record for key, if any.
func (x *CellIndex) Remove(key [4]int) { delete(x.m, key) }

// Count returns the number of live records.
func (x *CellIndex) Count() int { return len(x.m) }

// Snapshot returns every live record, for flattening into the output mesh.
func (x *CellIndex) Snapshot() []rmesh.CellData {
	out := make([]rmesh.CellData, 0, len(x.m))
	for _, d := range x.m {
		out = append(out, *d)
	}
	return out
}

// Index bundles the three hash tables the driver threads through every
// phase.
type Index struct {
	Edges *EdgeIndex
	Faces *FaceIndex
	Cells *CellIndex
}

// New returns an empty, ready-to-use restricted-face index.
func New() *Index {
	return &Index{Edges: NewEdgeIndex(), Faces: NewFaceIndex(), Cells: NewCellIndex()}
}
