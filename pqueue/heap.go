// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pqueue implements the four refinement priority queues (ball,
// edge, edge-topology, cell), each a container/heap-backed min-heap with
// a lazy "pass"-stamp staleness discipline: a popped entry is
// re-validated against the restricted-face index and discarded, without
// side effect, if stale. The container/heap-plus-comparator pattern is
// grounded on lvlath's Dijkstra/Prim priority queues
// (graph/dijkstra.go, graph/prim_kruskal.go), generalised here into one
// reusable generic wrapper instead of four bespoke heap types.
package pqueue

import "container/heap"

// Heap is a generic binary min-heap ordered by a caller-supplied Less.
type Heap[T any] struct {
	items []T
	less  func(a, b T) bool
}

// NewHeap returns an empty heap ordered by less.
func NewHeap[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{less: less}
}

// heapAdapter satisfies container/heap.Interface by delegating to Heap.
type heapAdapter[T any] struct{ h *Heap[T] }

func (a heapAdapter[T]) Len() int            { return len(a.h.items) }
func (a heapAdapter[T]) Less(i, j int) bool  { return a.h.less(a.h.items[i], a.h.items[j]) }
func (a heapAdapter[T]) Swap(i, j int)       { a.h.items[i], a.h.items[j] = a.h.items[j], a.h.items[i] }
func (a heapAdapter[T]) Push(x interface{})  { a.h.items = append(a.h.items, x.(T)) }
func (a heapAdapter[T]) Pop() interface{} {
	old := a.h.items
	n := len(old)
	v := old[n-1]
	a.h.items = old[:n-1]
	return v
}

// Push adds an entry, maintaining the heap invariant.
func (o *Heap[T]) Push(v T) { heap.Push(heapAdapter[T]{o}, v) }

// popRaw removes and returns the root, maintaining the heap invariant.
func (o *Heap[T]) popRaw() T { return heap.Pop(heapAdapter[T]{o}).(T) }

// Empty reports whether the heap has no entries (live or stale).
func (o *Heap[T]) Empty() bool { return len(o.items) == 0 }

// Count returns the number of entries currently backing the heap,
// including any not-yet-pruned stale ones.
func (o *Heap[T]) Count() int { return len(o.items) }

// Alloc returns the backing slice's capacity, the quantity Compact's
// shrink threshold checks: backing arrays shrink when over-allocated
// relative to what is actually live.
func (o *Heap[T]) Alloc() int { return cap(o.items) }

// Peek returns the entry at heap position i without removing it, used by
// the back-to-front trim scan.
func (o *Heap[T]) Peek(i int) T { return o.items[i] }

// dropAt removes the entry at position i and restores the heap invariant,
// used by the trim scan to excise a stale entry mid-array without a pop
// from the root.
func (o *Heap[T]) dropAt(i int) {
	heap.Remove(heapAdapter[T]{o}, i)
}

// Compact shrinks the backing slice when it is over-allocated relative to
// its live count (alloc > 3x live && alloc > 512).
func (o *Heap[T]) Compact() {
	live := len(o.items)
	if cap(o.items) > 3*live && cap(o.items) > 512 {
		fresh := make([]T, live)
		copy(fresh, o.items)
		o.items = fresh
	}
}
