// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rmesh

import "github.com/cpmech/gosl/chk"

// errInvalidDims returns a configuration error for Options.Dims outside [0,3].
func errInvalidDims(dims int) error {
	return chk.Err("rmesh: Options.Dims must be in [0,3]; got %d", dims)
}

// SortKey2 returns the canonical ascending-sorted 2-tuple key for an edge.
func SortKey2(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// SortKey3 returns the canonical ascending-sorted 3-tuple key for a face.
func SortKey3(a, b, c int) [3]int {
	k := [3]int{a, b, c}
	insertionSort3(&k)
	return k
}

// SortKey4 returns the canonical ascending-sorted 4-tuple key for a cell.
func SortKey4(a, b, c, d int) [4]int {
	k := [4]int{a, b, c, d}
	insertionSort4(&k)
	return k
}

// insertionSort3/4 avoid pulling in sort.Slice for these fixed tiny tuples.
func insertionSort3(k *[3]int) {
	for i := 1; i < 3; i++ {
		v := k[i]
		j := i - 1
		for j >= 0 && k[j] > v {
			k[j+1] = k[j]
			j--
		}
		k[j+1] = v
	}
}

func insertionSort4(k *[4]int) {
	for i := 1; i < 4; i++ {
		v := k[i]
		j := i - 1
		for j >= 0 && k[j] > v {
			k[j+1] = k[j]
			j--
		}
		k[j+1] = v
	}
}
