// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rface

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/rdelmesh/rmesh"
)

func Test_edgeindex01(tst *testing.T) {

	chk.PrintTitle("edgeindex01")

	idx := NewEdgeIndex()
	d := &rmesh.EdgeData{Key: [2]int{1, 2}, Pass: 3}
	if idx.Insert(d) {
		tst.Errorf("first insert should not report duplicate")
	}
	if !idx.Insert(&rmesh.EdgeData{Key: [2]int{1, 2}, Pass: 9}) {
		tst.Errorf("second insert of same key should report duplicate")
	}
	got, ok := idx.Find([2]int{1, 2})
	if !ok {
		tst.Fatalf("expected record to be found")
	}
	chk.IntAssert(got.Pass, 3) // unchanged: duplicate insert is a no-op

	idx.Remove([2]int{1, 2})
	if _, ok := idx.Find([2]int{1, 2}); ok {
		tst.Errorf("expected record to be gone after Remove")
	}
	chk.IntAssert(idx.Count(), 0)
}

func Test_faceindex01(tst *testing.T) {

	chk.PrintTitle("faceindex01")

	idx := NewFaceIndex()
	d := &rmesh.FaceData{Key: [3]int{1, 2, 3}}
	idx.Insert(d)
	chk.IntAssert(d.Dups, 0)
	if idx.UnresolvedDups() {
		tst.Errorf("expected UnresolvedDups to be false after a single, ordinary insert")
	}

	dup := idx.Insert(&rmesh.FaceData{Key: [3]int{1, 2, 3}})
	if !dup {
		tst.Errorf("expected second insert to report duplicate")
	}
	got, _ := idx.Find([3]int{1, 2, 3})
	chk.IntAssert(got.Dups, 1)

	if !idx.UnresolvedDups() {
		tst.Errorf("expected UnresolvedDups to be true while Dups>0")
	}
	got.Dups = 0
	if idx.UnresolvedDups() {
		tst.Errorf("expected UnresolvedDups to be false once Dups==0")
	}
}
