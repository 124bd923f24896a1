// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rdelmesh implements a restricted-Delaunay mesh generator: given
// a piecewise-smooth geometric domain, a mesh-spacing function h(x) and an
// initial point set, it builds a simplicial mesh conforming to the domain
// by incrementally inserting Steiner points into a Delaunay triangulation
// and filtering its faces against the domain.
//
// The entry points are driver.Make, which builds the restricted
// triangulation without refinement, and driver.Mesh, which runs the full
// construction-and-refinement loop. See package driver for details.
package rdelmesh
