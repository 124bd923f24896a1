// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hfun defines the mesh-spacing function h(x) capability: a
// black-box oracle evaluated at query points, with a caller-held "hint"
// enabling amortised lookups (e.g. walking an octree or background mesh
// from the previous query's cell instead of restarting from the root).
package hfun

// NullHint is the hint value meaning "no prior lookup to amortise from".
func NullHint() int32 { return -1 }

// Oracle is the capability contract consumed by packages rule, cavity and
// driver.
type Oracle interface {
	// Eval returns h(pt) and an updated hint the caller should pass back
	// on its next nearby query.
	Eval(pt [3]float64, hint int32) (h float64, newHint int32)
}
