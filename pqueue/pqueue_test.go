// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pqueue

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/rdelmesh/rface"
	"github.com/cpmech/rdelmesh/rmesh"
)

func Test_ballqueue01(tst *testing.T) {

	chk.PrintTitle("ballqueue01")

	q := NewBallQueue()
	q.Push(rmesh.Ball{Node: 1, RadiusSq: 1.0})
	q.Push(rmesh.Ball{Node: 2, RadiusSq: 9.0})
	q.Push(rmesh.Ball{Node: 3, RadiusSq: 4.0})
	chk.IntAssert(q.Len(), 3)

	alive := map[int]bool{1: true, 2: false, 3: true}
	b, ok := q.Pop(func(n int) bool { return alive[n] })
	if !ok {
		tst.Fatalf("expected a live ball")
	}
	chk.IntAssert(b.Node, 3) // node 2 has the largest ball but is dead: skipped
}

func Test_edgequeue01(tst *testing.T) {

	chk.PrintTitle("edgequeue01")

	idx := rface.New()
	idx.Edges.Insert(&rmesh.EdgeData{Key: [2]int{1, 2}, Pass: 5})
	idx.Edges.Insert(&rmesh.EdgeData{Key: [2]int{3, 4}, Pass: 7})

	q := NewEdgeQueue()
	q.Push(rmesh.EdgeCost{EdgeData: rmesh.EdgeData{Key: [2]int{1, 2}}, Pass: 5, Cost: 1.0})
	q.Push(rmesh.EdgeCost{EdgeData: rmesh.EdgeData{Key: [2]int{3, 4}}, Pass: 7, Cost: 9.0})
	q.Push(rmesh.EdgeCost{EdgeData: rmesh.EdgeData{Key: [2]int{5, 6}}, Pass: 1, Cost: 99.0}) // stale: no live record

	e, ok := q.Pop(idx)
	if !ok {
		tst.Fatalf("expected a live entry")
	}
	chk.IntAssert(int(e.Key[0]), 3) // highest cost among live entries
	chk.Scalar(tst, "cost", 1e-15, e.Cost, 9.0)

	e2, ok := q.Pop(idx)
	if !ok {
		tst.Fatalf("expected a second live entry")
	}
	chk.IntAssert(int(e2.Key[0]), 1)

	_, ok = q.Pop(idx)
	if ok {
		tst.Errorf("expected queue to be drained")
	}
}

func Test_etopqueue01(tst *testing.T) {

	chk.PrintTitle("etopqueue01")

	idx := rface.New()
	idx.Edges.Insert(&rmesh.EdgeData{Key: [2]int{1, 2}, Pass: 0})
	idx.Edges.Insert(&rmesh.EdgeData{Key: [2]int{3, 4}, Pass: 0})

	q := NewEtopQueue()
	q.Push(rmesh.EdgeCost{EdgeData: rmesh.EdgeData{Key: [2]int{1, 2}}})
	q.Push(rmesh.EdgeCost{EdgeData: rmesh.EdgeData{Key: [2]int{3, 4}}})

	first, ok := q.Pop(idx)
	if !ok {
		tst.Fatalf("expected a live entry")
	}
	chk.IntAssert(int(first.Key[0]), 1) // FIFO: pushed first, popped first

	second, ok := q.Pop(idx)
	if !ok {
		tst.Fatalf("expected a second live entry")
	}
	chk.IntAssert(int(second.Key[0]), 3)
}

func Test_cellqueue01(tst *testing.T) {

	chk.PrintTitle("cellqueue01")

	idx := rface.New()
	idx.Cells.Insert(&rmesh.CellData{Key: [4]int{1, 2, 3, 4}, Pass: 2})

	q := NewCellQueue()
	q.Push(rmesh.TriaCost{CellData: rmesh.CellData{Key: [4]int{1, 2, 3, 4}}, Pass: 2, Cost: 5.0})
	q.Push(rmesh.TriaCost{CellData: rmesh.CellData{Key: [4]int{5, 6, 7, 8}}, Pass: 0, Cost: 50.0}) // stale

	c, ok := q.Pop(idx)
	if !ok {
		tst.Fatalf("expected a live entry")
	}
	chk.IntAssert(int(c.Key[0]), 1)

	_, ok = q.Pop(idx)
	if ok {
		tst.Errorf("expected queue to be drained")
	}
}

func Test_trim01(tst *testing.T) {

	chk.PrintTitle("trim01")

	idx := rface.New()
	q := NewEdgeQueue()
	for i := 0; i < 2000; i++ {
		key := [2]int{i, i + 1}
		idx.Edges.Insert(&rmesh.EdgeData{Key: key, Pass: 0})
		q.Push(rmesh.EdgeCost{EdgeData: rmesh.EdgeData{Key: key}, Pass: 0, Cost: float64(i)})
	}
	// invalidate every other record by removing it from the index without
	// touching the queue
	for i := 0; i < 2000; i += 2 {
		idx.Edges.Remove([2]int{i, i + 1})
	}
	before := q.Len()
	q.Trim(idx)
	if q.Len() >= before {
		tst.Errorf("expected Trim to shrink the queue: before=%d after=%d", before, q.Len())
	}
}
