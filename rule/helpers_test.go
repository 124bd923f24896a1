// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rule

import "github.com/cpmech/rdelmesh/dtri"

// newTestArena2d returns a 2D arena seeded with just the super-triangle,
// enough for Edge/Tria to read node positions and cell topology off of.
func newTestArena2d() *dtri.Arena {
	a := dtri.NewArena(2)
	a.PushRoot([3]float64{0, 0, 0}, [3]float64{1, 1, 0})
	return a
}
