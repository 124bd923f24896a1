// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pqueue

import (
	"github.com/cpmech/rdelmesh/rface"
	"github.com/cpmech/rdelmesh/rmesh"
)

// trimThreshold is the live-entry count a trim scan must exceed before it
// may stop early.
const trimThreshold = 1024

// trimDeadFraction is the dead-entry fraction below which a trim scan may
// stop early rather than walk the whole backing array.
const trimDeadFraction = 0.25

// BallQueue orders protecting balls largest-radius-first: the largest
// encroaching ball is resolved before smaller, possibly-subsumed ones.
type BallQueue struct {
	h *Heap[rmesh.Ball]
}

// NewBallQueue returns an empty ball queue.
func NewBallQueue() *BallQueue {
	return &BallQueue{h: NewHeap(func(a, b rmesh.Ball) bool { return a.RadiusSq > b.RadiusSq })}
}

// Push adds a protecting ball.
func (q *BallQueue) Push(b rmesh.Ball) { q.h.Push(b) }

// Len reports the number of entries still backing the queue, stale or not.
func (q *BallQueue) Len() int { return q.h.Count() }

// Pop removes and returns the largest live ball, skipping entries whose
// node alive(node) now reports dead (superseded by a later cavity update).
func (q *BallQueue) Pop(alive func(node int) bool) (rmesh.Ball, bool) {
	for !q.h.Empty() {
		b := q.h.popRaw()
		if alive(b.Node) {
			return b, true
		}
	}
	return rmesh.Ball{}, false
}

// seqCounter hands out monotonically increasing insertion sequence
// numbers so the Etop queue, which must behave as a FIFO rather than a
// cost-ordered heap, can still reuse the generic Heap[T] machinery: the
// sequence number doubles as the ordering key.
type seqCounter struct{ n int64 }

func (c *seqCounter) next() int64 { c.n++; return c.n }

// EdgeQueue orders restricted-edge split candidates worst-cost-first.
type EdgeQueue struct {
	h *Heap[rmesh.EdgeCost]
}

// NewEdgeQueue returns an empty edge queue, worst (largest Cost) first.
func NewEdgeQueue() *EdgeQueue {
	return &EdgeQueue{h: NewHeap(func(a, b rmesh.EdgeCost) bool { return a.Cost > b.Cost })}
}

// Push adds an edge-split candidate.
func (q *EdgeQueue) Push(e rmesh.EdgeCost) { q.h.Push(e) }

// Len reports the number of entries still backing the queue, stale or not.
func (q *EdgeQueue) Len() int { return q.h.Count() }

// Pop removes and returns the worst live candidate. An entry is stale, and
// silently discarded, if its key is no longer in idx or the live record's
// Pass differs from the entry's own Pass stamp.
func (q *EdgeQueue) Pop(idx *rface.Index) (rmesh.EdgeCost, bool) {
	for !q.h.Empty() {
		e := q.h.popRaw()
		if rec, ok := idx.Edges.Find(e.Key); ok && rec.Pass == e.Pass {
			return e, true
		}
	}
	return rmesh.EdgeCost{}, false
}

// Trim drops stale entries once the queue is large enough to justify the
// scan, then shrinks the backing array if it is over-allocated.
func (q *EdgeQueue) Trim(idx *rface.Index) {
	trimGeneric(q.h, func(e rmesh.EdgeCost) bool {
		rec, ok := idx.Edges.Find(e.Key)
		return ok && rec.Pass == e.Pass
	})
}

// EtopQueue re-tests restricted edges for topological validity, in FIFO
// order rather than cost order, implemented by keying the shared
// Heap[T] on an insertion sequence number.
type EtopQueue struct {
	h   *Heap[rmesh.EdgeCost]
	seq seqCounter
}

// NewEtopQueue returns an empty, FIFO-ordered Etop queue.
func NewEtopQueue() *EtopQueue {
	return &EtopQueue{h: NewHeap(func(a, b rmesh.EdgeCost) bool { return a.Cost < b.Cost })}
}

// Push adds an edge for topology re-testing; Cost is overwritten with the
// next insertion sequence number to enforce FIFO order.
func (q *EtopQueue) Push(e rmesh.EdgeCost) {
	e.Cost = float64(q.seq.next())
	q.h.Push(e)
}

// Len reports the number of entries still backing the queue, stale or not.
func (q *EtopQueue) Len() int { return q.h.Count() }

// Pop removes and returns the oldest live entry, under the same staleness
// rule as EdgeQueue.Pop.
func (q *EtopQueue) Pop(idx *rface.Index) (rmesh.EdgeCost, bool) {
	for !q.h.Empty() {
		e := q.h.popRaw()
		if rec, ok := idx.Edges.Find(e.Key); ok && rec.Pass == e.Pass {
			return e, true
		}
	}
	return rmesh.EdgeCost{}, false
}

// Trim drops stale entries and shrinks the backing array, as EdgeQueue.Trim.
func (q *EtopQueue) Trim(idx *rface.Index) {
	trimGeneric(q.h, func(e rmesh.EdgeCost) bool {
		rec, ok := idx.Edges.Find(e.Key)
		return ok && rec.Pass == e.Pass
	})
}

// CellQueue orders restricted-cell split candidates worst-cost-first.
type CellQueue struct {
	h *Heap[rmesh.TriaCost]
}

// NewCellQueue returns an empty cell queue, worst (largest Cost) first.
func NewCellQueue() *CellQueue {
	return &CellQueue{h: NewHeap(func(a, b rmesh.TriaCost) bool { return a.Cost > b.Cost })}
}

// Push adds a cell-split candidate.
func (q *CellQueue) Push(c rmesh.TriaCost) { q.h.Push(c) }

// Len reports the number of entries still backing the queue, stale or not.
func (q *CellQueue) Len() int { return q.h.Count() }

// Pop removes and returns the worst live candidate, under the key+pass
// staleness rule.
func (q *CellQueue) Pop(idx *rface.Index) (rmesh.TriaCost, bool) {
	for !q.h.Empty() {
		c := q.h.popRaw()
		if rec, ok := idx.Cells.Find(c.Key); ok && rec.Pass == c.Pass {
			return c, true
		}
	}
	return rmesh.TriaCost{}, false
}

// Trim drops stale entries and shrinks the backing array, as EdgeQueue.Trim.
func (q *CellQueue) Trim(idx *rface.Index) {
	trimGeneric(q.h, func(c rmesh.TriaCost) bool {
		rec, ok := idx.Cells.Find(c.Key)
		return ok && rec.Pass == c.Pass
	})
}

// trimGeneric implements the shared compaction pass used by Edge/Etop/Cell
// queues: entries are walked back-to-front and removed when valid reports
// them stale. The scan stops once more than trimThreshold live entries
// have been seen with a running dead fraction under trimDeadFraction, or
// when the array is exhausted. dropAt's heap fix-up can move an unvisited
// entry into an already-visited slot; such an entry is left for a later
// trim or for Pop's own staleness check. A final Compact call shrinks the
// backing array when it is now over-allocated.
func trimGeneric[T any](h *Heap[T], valid func(T) bool) {
	dead, seen := 0, 0
	for i := h.Count() - 1; i >= 0; i-- {
		seen++
		if !valid(h.Peek(i)) {
			h.dropAt(i)
			dead++
		}
		if seen-dead > trimThreshold && float64(dead)/float64(seen) < trimDeadFraction {
			break
		}
	}
	h.Compact()
}
