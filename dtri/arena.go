// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtri

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/rdelmesh/rmesh"
)

// Arena is a reference Bowyer-Watson Delaunay kernel over a node/tetra
// free-list arena, grounded on the Domain/arena bookkeeping idiom of
// fem/domain.go (active-vs-inactive slices addressed by index, a live/dead
// flag rather than physical removal).
type Arena struct {
	ndim int

	nodes     []rmesh.Node
	trias     []rmesh.Tria
	freeNodes []int
	freeTrias []int

	// scratch set by the most recent PushNode, consumed by the caller
	// (package cavity) before the next insertion.
	tnew, told, nnew, nold []int

	dupTol float64
}

// NewArena returns an empty kernel for ndim in {2,3}.
func NewArena(ndim int) *Arena {
	if ndim != 2 && ndim != 3 {
		chk.Panic("dtri: NewArena requires ndim in {2,3}; got %d", ndim)
	}
	return &Arena{ndim: ndim, dupTol: 1e-12}
}

// Ndim implements View.
func (o *Arena) Ndim() int { return o.ndim }

// NodeCount implements View.
func (o *Arena) NodeCount() int { return len(o.nodes) }

// TriaCount implements View.
func (o *Arena) TriaCount() int { return len(o.trias) }

// Node implements View.
func (o *Arena) Node(i int) *rmesh.Node { return &o.nodes[i] }

// Tria implements View.
func (o *Arena) Tria(i int) *rmesh.Tria { return &o.trias[i] }

// IterNodes implements View; fn returning false stops the iteration.
func (o *Arena) IterNodes(fn func(i int) bool) {
	for i := range o.nodes {
		if o.nodes[i].Alive {
			if !fn(i) {
				return
			}
		}
	}
}

// IterTrias implements View.
func (o *Arena) IterTrias(fn func(i int) bool) {
	for i := range o.trias {
		if o.trias[i].Alive {
			if !fn(i) {
				return
			}
		}
	}
}

// Cavity implements View.
func (o *Arena) Cavity() (tnew, told, nnew, nold []int) {
	return o.tnew, o.told, o.nnew, o.nold
}

// nverts is 3 in 2D, 4 in 3D.
func (o *Arena) nverts() int {
	if o.ndim == 2 {
		return 3
	}
	return 4
}

// PushRoot implements Kernel: seeds a single bounding super-simplex. In 2D
// this is a triangle enclosing [pmin,pmax]; in 3D a tetrahedron.
func (o *Arena) PushRoot(pmin, pmax [3]float64) {
	if o.ndim == 2 {
		cx, cy := (pmin[0]+pmax[0])/2, (pmin[1]+pmax[1])/2
		dx, dy := pmax[0]-pmin[0], pmax[1]-pmin[1]
		r := math.Max(dx, dy)*3 + 1
		o.pushSuperNode([3]float64{cx - r, cy - r, 0})
		o.pushSuperNode([3]float64{cx + r, cy - r, 0})
		o.pushSuperNode([3]float64{cx, cy + r, 0})
		o.newTria([4]int{0, 1, 2, 0})
		return
	}
	cx, cy, cz := (pmin[0]+pmax[0])/2, (pmin[1]+pmax[1])/2, (pmin[2]+pmax[2])/2
	dx, dy, dz := pmax[0]-pmin[0], pmax[1]-pmin[1], pmax[2]-pmin[2]
	r := math.Max(dx, math.Max(dy, dz))*3 + 1
	o.pushSuperNode([3]float64{cx - r, cy - r, cz - r})
	o.pushSuperNode([3]float64{cx + r, cy - r, cz - r})
	o.pushSuperNode([3]float64{cx, cy + r, cz - r})
	o.pushSuperNode([3]float64{cx, cy, cz + r})
	o.newTria([4]int{0, 1, 2, 3})
}

func (o *Arena) pushSuperNode(p [3]float64) {
	o.nodes = append(o.nodes, rmesh.Node{Pos: p, FDim: rmesh.SuperFDim, Alive: true})
}

// newTria appends a live cell with the given (unsorted) node indices and
// returns its index; circumcentre is left uncached.
func (o *Arena) newTria(nd [4]int) int {
	if len(o.freeTrias) > 0 {
		i := o.freeTrias[len(o.freeTrias)-1]
		o.freeTrias = o.freeTrias[:len(o.freeTrias)-1]
		o.trias[i] = rmesh.Tria{Node: nd, Alive: true}
		return i
	}
	o.trias = append(o.trias, rmesh.Tria{Node: nd, Alive: true})
	return len(o.trias) - 1
}

// FreeTria implements Kernel.
func (o *Arena) FreeTria(i int) {
	o.trias[i].Alive = false
	o.freeTrias = append(o.freeTrias, i)
}

// Circumcentre returns the cached circumcentre/radius^2 of cell i,
// computing and caching it on first access (component 4, "DESIGN NOTES":
// shared cached circumcentre, a per-cell lazily-computed field).
func (o *Arena) Circumcentre(i int) [4]float64 {
	t := &o.trias[i]
	if t.CircOK {
		return t.Circ
	}
	if o.ndim == 2 {
		t.Circ = circum2d(o.nodes[t.Node[0]].Pos, o.nodes[t.Node[1]].Pos, o.nodes[t.Node[2]].Pos)
	} else {
		t.Circ = circum3d(o.nodes[t.Node[0]].Pos, o.nodes[t.Node[1]].Pos, o.nodes[t.Node[2]].Pos, o.nodes[t.Node[3]].Pos)
	}
	t.CircOK = true
	return t.Circ
}

// PushNode implements Kernel via a direct (non-incremental-walk)
// Bowyer-Watson insertion: every live cell's circumsphere is tested for
// containment of pt; this trades point-location performance for a
// compact, auditable cavity construction.
func (o *Arena) PushNode(pt [3]float64, hint int) (idx int, newHint int, inserted bool) {
	o.tnew, o.told, o.nnew, o.nold = nil, nil, nil, nil

	if dup, ok := o.findDuplicate(pt); ok {
		return dup, hint, false
	}

	nv := o.nverts()
	var bad []int
	o.IterTrias(func(i int) bool {
		c := o.Circumcentre(i)
		d2 := dist2(c, pt, o.ndim)
		if d2 < c[3]-o.dupTol {
			bad = append(bad, i)
		}
		return true
	})
	if len(bad) == 0 {
		chk.Panic("dtri: PushNode found no enclosing cavity for point %v; insertion order violates Delaunay invariant", pt)
	}

	badSet := make(map[int]bool, len(bad))
	for _, b := range bad {
		badSet[b] = true
	}

	boundary := boundaryFaces(o.trias, bad, nv)

	idx = o.pushFreeNode(pt)
	o.nnew = append(o.nnew, idx)

	for _, b := range bad {
		o.told = append(o.told, b)
	}
	for _, face := range boundary {
		nd := appendNode(face, idx, nv)
		ti := o.newTria(nd)
		o.tnew = append(o.tnew, ti)
	}
	for _, b := range bad {
		o.trias[b].Alive = false
	}
	_ = badSet
	return idx, idx, true
}

func (o *Arena) pushFreeNode(pt [3]float64) int {
	n := rmesh.Node{Pos: pt, Alive: true, IdxH: -1}
	if len(o.freeNodes) > 0 {
		i := o.freeNodes[len(o.freeNodes)-1]
		o.freeNodes = o.freeNodes[:len(o.freeNodes)-1]
		o.nodes[i] = n
		return i
	}
	o.nodes = append(o.nodes, n)
	return len(o.nodes) - 1
}

func (o *Arena) findDuplicate(pt [3]float64) (int, bool) {
	found := -1
	o.IterNodes(func(i int) bool {
		if dist2ToArr(o.nodes[i].Pos, pt, o.ndim) < o.dupTol {
			found = i
			return false
		}
		return true
	})
	return found, found >= 0
}

// boundaryFaces returns the (ndim-1)-faces of the bad-cell union that are
// shared by exactly one bad cell: the cavity's watertight boundary.
func boundaryFaces(trias []rmesh.Tria, bad []int, nv int) [][]int {
	type faceKey [3]int // up to 3 node indices (2D edges use 2, 3D faces use 3)
	count := make(map[faceKey]int)
	owner := make(map[faceKey][]int)
	for _, b := range bad {
		nd := trias[b].Node
		for _, f := range localFaces(nd, nv) {
			k := sortedKey(f)
			count[k]++
			owner[k] = f
		}
	}
	var out [][]int
	for k, c := range count {
		if c == 1 {
			out = append(out, owner[k])
		}
	}
	return out
}

// localFaces returns the opposite-vertex faces of a cell: edges (2
// entries) in 2D, triangles (3 entries) in 3D.
func localFaces(nd [4]int, nv int) [][]int {
	if nv == 3 {
		return [][]int{{nd[0], nd[1]}, {nd[1], nd[2]}, {nd[2], nd[0]}}
	}
	return [][]int{
		{nd[1], nd[2], nd[3]},
		{nd[0], nd[3], nd[2]},
		{nd[0], nd[1], nd[3]},
		{nd[0], nd[2], nd[1]},
	}
}

func sortedKey(f []int) [3]int {
	var k [3]int
	copy(k[:], f)
	for i := 1; i < len(f); i++ {
		v := k[i]
		j := i - 1
		for j >= 0 && k[j] > v {
			k[j+1] = k[j]
			j--
		}
		k[j+1] = v
	}
	return k
}

func appendNode(face []int, idx, nv int) [4]int {
	var nd [4]int
	copy(nd[:], face)
	nd[len(face)] = idx
	_ = nv
	return nd
}

func dist2(ballCentreAndR [4]float64, pt [3]float64, ndim int) float64 {
	var c [3]float64
	copy(c[:], ballCentreAndR[:3])
	s := 0.0
	for i := 0; i < ndim; i++ {
		d := c[i] - pt[i]
		s += d * d
	}
	return s
}

func dist2ToArr(a, b [3]float64, ndim int) float64 {
	s := 0.0
	for i := 0; i < ndim; i++ {
		d := a[i] - b[i]
		s += d * d
	}
	return s
}

// circum2d returns {cx, cy, 0, r^2} for triangle (a,b,c).
func circum2d(a, b, c [3]float64) [4]float64 {
	ax, ay := a[0], a[1]
	bx, by := b[0], b[1]
	cx, cy := c[0], c[1]
	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if math.Abs(d) < 1e-300 {
		chk.Panic("dtri: circum2d called on degenerate (collinear) triangle")
	}
	ux := ((ax*ax+ay*ay)*(by-cy) + (bx*bx+by*by)*(cy-ay) + (cx*cx+cy*cy)*(ay-by)) / d
	uy := ((ax*ax+ay*ay)*(cx-bx) + (bx*bx+by*by)*(ax-cx) + (cx*cx+cy*cy)*(bx-ax)) / d
	r2 := (ux-ax)*(ux-ax) + (uy-ay)*(uy-ay)
	return [4]float64{ux, uy, 0, r2}
}

// circum3d returns {cx, cy, cz, r^2} for tetrahedron (a,b,c,d), solved via
// the 3x3 linear system |p-a|^2 == |p-b|^2 == |p-c|^2 == |p-d|^2, grounded
// on the small dense-solve idiom of gosl/la (la.MatAlloc + a 3x3 solve).
func circum3d(a, b, c, d [3]float64) [4]float64 {
	A := la.MatAlloc(3, 3)
	rhs := make([]float64, 3)
	pts := [][3]float64{b, c, d}
	for i, p := range pts {
		for k := 0; k < 3; k++ {
			A[i][k] = 2 * (p[k] - a[k])
		}
		rhs[i] = dotSq(p) - dotSq(a)
	}
	x := solve3(A, rhs)
	r2 := dist2ToArr(a, [3]float64{x[0], x[1], x[2]}, 3)
	return [4]float64{x[0], x[1], x[2], r2}
}

func dotSq(p [3]float64) float64 { return p[0]*p[0] + p[1]*p[1] + p[2]*p[2] }

// solve3 solves the 3x3 linear system A x = rhs via Cramer's rule; the
// arena only ever solves this one fixed-size system so a general LU solve
// from gosl/la would be overkill for a 3x3 (kept as a tight hand-rolled
// routine, justified in DESIGN.md).
func solve3(A [][]float64, rhs []float64) [3]float64 {
	det := det3(A)
	if math.Abs(det) < 1e-300 {
		chk.Panic("dtri: circum3d called on degenerate (coplanar) tetrahedron")
	}
	var x [3]float64
	for col := 0; col < 3; col++ {
		M := cloneMat3(A)
		for row := 0; row < 3; row++ {
			M[row][col] = rhs[row]
		}
		x[col] = det3(M) / det
	}
	return x
}

func det3(m [][]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

func cloneMat3(m [][]float64) [][]float64 {
	out := la.MatAlloc(3, 3)
	for i := range m {
		copy(out[i], m[i])
	}
	return out
}
