// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rmesh defines the data model shared by every stage of the
// restricted-Delaunay pipeline: nodes, triangulation cells, protecting
// balls, restricted-face records and the run options.
package rmesh

// FeatKind classifies how hard a domain feature a node is pinned to is.
type FeatKind int8

const (
	NoFeat   FeatKind = iota // interior node, free to move nowhere (never moved post-insertion)
	SoftFeat                 // feature node that may still receive a small protecting ball
	HardFeat                 // corner/ridge node requiring a zero-radius protecting ball
)

// BallKind tags what a protecting ball is protecting.
type BallKind int8

const (
	OtherBall BallKind = iota
	FeatBall
)

// SuperFDim is the FDim stamped on the DT super-simplex's vertices; nodes
// at this dimension are artefacts of the bounding triangulation and are
// never emitted as output.
const SuperFDim = 4

// Node is a 2D/3D point together with the domain-feature bookkeeping the
// refinement rules and predicates need. Nodes are created at insertion and
// never moved; Alive=false marks a node removed during cavity retriangulation.
type Node struct {
	Pos   [3]float64
	FDim  int8
	Feat  FeatKind
	Topo  int
	IdxH  int32 // cached spacing-function lookup hint
	Alive bool
}

// Tria is a DT cell: 3 node indices in 2D, 4 in 3D, stored in orientation
// order. Circ holds the lazily-computed circumcentre (first Ndim entries)
// and squared circumradius (last entry); CircOK reports whether it has
// been filled in since this Tria's most recent creation.
type Tria struct {
	Node   [4]int
	Circ   [4]float64
	CircOK bool
	Alive  bool
}

// Ball is a protecting ball centred at a feature node.
type Ball struct {
	Node     int
	Kind     BallKind
	Centre   [3]float64
	RadiusSq float64
	Pass     int
}

// EdgeData is a restricted-edge record: the canonical sorted pair of
// bounding node indices is the hash key.
type EdgeData struct {
	Key  [2]int
	Tadj int // owning DT cell
	Eadj int8 // local edge index within that cell
	Pass int
	Feat int8
	Topo int8
	Part int
}

// FaceData is a restricted-face record (3D only); Dups counts how many
// distinct DT cells beyond the first have also tested this boundary face
// restricted. It stays 0 for an ordinary face seen from only one side;
// non-zero flags an unresolved duplicate classification.
type FaceData struct {
	Key  [3]int
	Tadj int
	Fadj int8
	Pass int
	Feat int8
	Topo int8
	Part int
	Dups int
}

// CellData is a restricted-cell record.
type CellData struct {
	Key  [4]int
	Tadj int
	Pass int
	Part int
}

// EdgeCost embeds an EdgeData plus the key/pass duplicated onto the heap
// entry, so a popped entry can be checked for staleness without touching
// the index's backing storage.
type EdgeCost struct {
	EdgeData
	Node [2]int
	Pass int
	Cost float64 // rule-specific ordering cost; ignored by the Etop (FIFO) queue
}

// TriaCost is the cell-queue analogue of EdgeCost.
type TriaCost struct {
	CellData
	Node [4]int
	Pass int
	Cost float64
}

// InitPoint is a caller-supplied seed point, prior to insertion into the
// DT; FDim/Feat mirror the feature classification the geometry layer
// assigns it.
type InitPoint struct {
	Pos  [3]float64
	FDim int8
	Feat FeatKind
}

// Mesh is the output accumulator populated by driver.Make/driver.Mesh.
// It does not itself hold the live DT arena (that belongs to a
// dtri.Kernel); it is the flattened, restricted-face view of it.
type Mesh struct {
	Ndim   int
	Nodes  []Node
	Balls  []Ball
	Edges  []EdgeData
	Faces  []FaceData
	Cells  []CellData
}

// Options collects every tunable the driver and rule layers consume.
type Options struct {
	Dims      int     // 0..3, upper dimension of restricted faces to build
	IterLimit int     // hard cap on refinement iterations; 0 means unbounded
	Verb      int     // verbosity 0..2
	Top1      bool    // enable the Etop (edge-topology) phase
	RadEdge   float64 // radius-edge quality threshold consumed by package rule
	HRatio    float64 // h-ratio quality threshold consumed by package rule
	TrimFreq  int     // heap/scratch compaction period; 0 defaults to 10000
	Seed      int64   // deterministic PRNG seed for the driver's BRIO leaf shuffle
}

// Normalise fills in zero-valued defaults and reports a configuration
// error for out-of-range fields rather than silently clamping them.
func (o *Options) Normalise() error {
	if o.Dims < 0 || o.Dims > 3 {
		return errInvalidDims(o.Dims)
	}
	if o.TrimFreq <= 0 {
		o.TrimFreq = 10000
	}
	if o.IterLimit <= 0 {
		o.IterLimit = 1 << 30 // effectively unbounded, but still a hard cap
	}
	return nil
}
