// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver implements the refinement state machine: Null -> Node ->
// Edge -> Etop -> Tria, dequeuing the highest-priority non-stale entry
// from the first non-empty queue each iteration (Ball, Edge, Etop, Cell),
// invoking the injected rule.Chooser, inserting the resulting Steiner
// point, and folding the cavity.Update outcome back into the index and
// queues, until every queue and cavity buffer is empty or opts.IterLimit
// is hit.
package driver

import "github.com/cpmech/rdelmesh/rule"

// State is a phase of the refinement state machine. States are visited in
// strictly increasing order; the driver never transitions backwards.
type State int8

const (
	Null State = iota
	Node
	Edge
	Etop
	Tria
)

// String names a State for progress log lines.
func (s State) String() string {
	switch s {
	case Null:
		return "null"
	case Node:
		return "node"
	case Edge:
		return "edge"
	case Etop:
		return "etop"
	case Tria:
		return "tria"
	}
	return "unknown"
}

// Stats reports per-kind, per-insertion-dimension Steiner-point counters
// plus whether the run converged (all queues drained) or stopped because
// IterLimit was reached.
type Stats struct {
	Enod      [5]int // indexed by rule.Kind; edge-dimension (1) insertions
	Tnod      [5]int // indexed by rule.Kind; cell-dimension (2 or 3) insertions
	Iters     int
	Converged bool
}

func (s *Stats) record(kind rule.Kind, dim int8) {
	if dim <= 1 {
		s.Enod[kind]++
	} else {
		s.Tnod[kind]++
	}
}
