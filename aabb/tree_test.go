// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aabb

import (
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_leafsize01(tst *testing.T) {
	chk.PrintTitle("leafsize01")
	chk.IntAssert(LeafSize(2), 64)
	chk.IntAssert(LeafSize(3), 512)
}

func Test_order01(tst *testing.T) {

	chk.PrintTitle("order01")

	pts := [][3]float64{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}, {0.5, 0.5, 0},
	}
	order := Order(pts, 2, rand.New(rand.NewSource(1)))
	chk.IntAssert(len(order), len(pts))

	seen := make(map[int]bool)
	for _, i := range order {
		if i < 0 || i >= len(pts) {
			tst.Fatalf("index out of range: %d", i)
		}
		if seen[i] {
			tst.Fatalf("duplicate index in order: %d", i)
		}
		seen[i] = true
	}
	chk.IntAssert(order[0], 4) // the centroid-ish point is nearest itself
}

func Test_order_large01(tst *testing.T) {

	chk.PrintTitle("order_large01")

	n := 200
	pts := make([][3]float64, n)
	for i := 0; i < n; i++ {
		pts[i] = [3]float64{float64(i % 13), float64(i % 7), 0}
	}
	order := Order(pts, 2, rand.New(rand.NewSource(1)))
	chk.IntAssert(len(order), n)
}
