// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hfun

// Constant is the trivial uniform spacing function h(x) = H for all x; the
// hint is meaningless here but is still threaded through so callers can
// treat every Oracle implementation uniformly.
type Constant struct {
	H float64
}

// Eval implements Oracle.
func (o Constant) Eval(pt [3]float64, hint int32) (h float64, newHint int32) {
	return o.H, hint
}
