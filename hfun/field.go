// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hfun

import "github.com/cpmech/gosl/fun/dbf"

// Analytic wraps a gosl analytic scalar function as a spacing oracle, the
// way an injected dbf.T callback is used elsewhere for scalar-valued
// material parameters. Queries are evaluated at t=0 (h has no time
// dependence); the hint is unused since dbf.T has no locality to amortise.
type Analytic struct {
	Fcn dbf.T
}

// Eval implements Oracle.
func (o Analytic) Eval(pt [3]float64, hint int32) (h float64, newHint int32) {
	return o.Fcn.F(0, pt[:]), hint
}

// Grid is a piecewise-linear background-mesh spacing field sampled on a
// regular axis-aligned lattice, with bilinear/trilinear interpolation
// between lattice points. Eval returns the lattice cell index as its hint;
// the incoming hint is not consulted.
type Grid struct {
	Pmin, Pmax [3]float64
	Ndim       int
	N          [3]int // lattice point counts per axis
	Vals       []float64
}

// Eval implements Oracle. The lattice cell is computed directly from pt in
// O(1); the incoming hint is ignored, and newHint is the flattened index of
// the cell just used.
func (o *Grid) Eval(pt [3]float64, hint int32) (h float64, newHint int32) {
	idx := [3]int{}
	frac := [3]float64{}
	for i := 0; i < o.Ndim; i++ {
		span := o.Pmax[i] - o.Pmin[i]
		if span <= 0 {
			idx[i], frac[i] = 0, 0
			continue
		}
		u := (pt[i] - o.Pmin[i]) / span * float64(o.N[i]-1)
		if u < 0 {
			u = 0
		}
		if u > float64(o.N[i]-1) {
			u = float64(o.N[i] - 1)
		}
		lo := int(u)
		if lo >= o.N[i]-1 {
			lo = o.N[i] - 2
			if lo < 0 {
				lo = 0
			}
		}
		idx[i], frac[i] = lo, u-float64(lo)
	}
	h = o.interp(idx, frac)
	newHint = int32(o.flatIndex(idx))
	return
}

func (o *Grid) flatIndex(idx [3]int) int {
	switch o.Ndim {
	case 2:
		return idx[1]*o.N[0] + idx[0]
	default:
		return (idx[2]*o.N[1]+idx[1])*o.N[0] + idx[0]
	}
}

func (o *Grid) at(i, j, k int) float64 {
	if o.Ndim == 2 {
		return o.Vals[j*o.N[0]+i]
	}
	return o.Vals[(k*o.N[1]+j)*o.N[0]+i]
}

func (o *Grid) interp(idx [3]int, frac [3]float64) float64 {
	i, j := idx[0], idx[1]
	fx, fy := frac[0], frac[1]
	if o.Ndim == 2 {
		v00, v10 := o.at(i, j, 0), o.at(i+1, j, 0)
		v01, v11 := o.at(i, j+1, 0), o.at(i+1, j+1, 0)
		v0 := v00*(1-fx) + v10*fx
		v1 := v01*(1-fx) + v11*fx
		return v0*(1-fy) + v1*fy
	}
	k, fz := idx[2], frac[2]
	v000, v100 := o.at(i, j, k), o.at(i+1, j, k)
	v010, v110 := o.at(i, j+1, k), o.at(i+1, j+1, k)
	v001, v101 := o.at(i, j, k+1), o.at(i+1, j, k+1)
	v011, v111 := o.at(i, j+1, k+1), o.at(i+1, j+1, k+1)
	v00 := v000*(1-fx) + v100*fx
	v10 := v010*(1-fx) + v110*fx
	v01 := v001*(1-fx) + v101*fx
	v11 := v011*(1-fx) + v111*fx
	v0 := v00*(1-fy) + v10*fy
	v1 := v01*(1-fy) + v11*fy
	return v0*(1-fz) + v1*fz
}
