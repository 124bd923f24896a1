// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rule

import (
	"github.com/cpmech/rdelmesh/dtri"
	"github.com/cpmech/rdelmesh/geom"
	"github.com/cpmech/rdelmesh/hfun"
	"github.com/cpmech/rdelmesh/rmesh"
)

// Kind tags which rule produced a candidate Steiner point, so callers can
// keep per-kind insertion histograms (driver.Stats.Enod/Tnod).
type Kind int8

const (
	Circ Kind = iota // circumcentre / edge midpoint
	Offh             // h-weighted off-centre (edges and 2D cells)
	Offc             // off-centre for 3D cells
	Disk             // ridge/feature-disk projection (edges only)
	Sink             // unconditional fallback: always accepted
)

// String names a Kind for log lines, mirroring the short element-type
// tags gofem prints in its simulation summaries.
func (k Kind) String() string {
	switch k {
	case Circ:
		return "circ"
	case Offh:
		return "offh"
	case Offc:
		return "offc"
	case Disk:
		return "disk"
	case Sink:
		return "sink"
	}
	return "unknown"
}

// Chooser is the injected Steiner-point placement policy. Ball, Edge and
// Tria each take the bad simplex plus the live node positions (View),
// the domain oracle, and the spacing function, and return a candidate
// point, the Kind of rule that produced it, and (for Edge/Tria) the
// dimension the point should be inserted at odd cases where a rule opts
// to defer to a lower-dimensional feature. ok=false means: drop this bad
// face without retry (the insertion-rejection rule already covers the
// case where the DT kernel itself later rejects the point).
type Chooser interface {
	Ball(k dtri.View, g geom.Oracle, h hfun.Oracle, ball rmesh.Ball) (pt [3]float64, kind Kind, ok bool)
	Edge(k dtri.View, g geom.Oracle, h hfun.Oracle, e rmesh.EdgeData, opts rmesh.Options) (pt [3]float64, kind Kind, dim int8, ok bool)
	Tria(k dtri.View, g geom.Oracle, h hfun.Oracle, c rmesh.CellData, opts rmesh.Options) (pt [3]float64, kind Kind, dim int8, ok bool)
}
