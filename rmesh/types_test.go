// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rmesh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_sortkey01(tst *testing.T) {

	chk.PrintTitle("sortkey01")

	k2 := SortKey2(5, 2)
	chk.IntAssert(k2[0], 2)
	chk.IntAssert(k2[1], 5)

	k3 := SortKey3(9, 1, 4)
	chk.Ints(tst, "k3", k3[:], []int{1, 4, 9})

	k4 := SortKey4(3, 0, 2, 1)
	chk.Ints(tst, "k4", k4[:], []int{0, 1, 2, 3})
}

func Test_options01(tst *testing.T) {

	chk.PrintTitle("options01")

	o := Options{Dims: 2}
	if err := o.Normalise(); err != nil {
		tst.Errorf("unexpected error: %v", err)
	}
	chk.IntAssert(o.TrimFreq, 10000)

	bad := Options{Dims: 7}
	if err := bad.Normalise(); err == nil {
		tst.Errorf("expected an error for Dims=7")
	}
}
