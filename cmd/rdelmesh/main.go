// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command rdelmesh drives driver.Make/driver.Mesh over a box domain:
// flags in, a progress/result summary out.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/rdelmesh/driver"
	"github.com/cpmech/rdelmesh/geom"
	"github.com/cpmech/rdelmesh/hfun"
	"github.com/cpmech/rdelmesh/rmesh"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// flags
	ndim := flag.Int("ndim", 2, "ambient dimension: 2 or 3")
	pmin := flag.String("pmin", "0,0,0", "domain box minimum corner, comma-separated")
	pmax := flag.String("pmax", "1,1,1", "domain box maximum corner, comma-separated")
	hval := flag.Float64("h", 0.1, "uniform target spacing")
	dims := flag.Int("dims", 0, "upper dimension of restricted faces to build (0..ndim)")
	iterLimit := flag.Int("iter", 0, "refinement iteration cap; 0 means unbounded")
	seed := flag.Int64("seed", 1, "deterministic PRNG seed")
	top1 := flag.Bool("top1", false, "enable the Etop edge-topology phase")
	radEdge := flag.Float64("radedge", 1.4, "radius-edge quality threshold")
	hRatio := flag.Float64("hratio", 1.2, "h-ratio quality threshold")
	verb := flag.Int("verb", 1, "verbosity 0..2")
	construct := flag.Bool("construct-only", false, "run driver.Make instead of driver.Mesh (no refinement)")
	out := flag.String("out", "", "output node-dump filename; empty means no file is written")
	flag.Parse()

	if *ndim != 2 && *ndim != 3 {
		chk.Panic("ndim must be 2 or 3; got %d", *ndim)
	}

	opts := rmesh.Options{
		Dims:      *dims,
		IterLimit: *iterLimit,
		Verb:      *verb,
		Top1:      *top1,
		RadEdge:   *radEdge,
		HRatio:    *hRatio,
		Seed:      *seed,
	}

	io.Pf("%v\n", io.ArgsTable("RDELMESH",
		"ambient dimension", "ndim", *ndim,
		"domain box minimum", "pmin", *pmin,
		"domain box maximum", "pmax", *pmax,
		"target spacing", "h", *hval,
		"restricted-face depth", "dims", opts.Dims,
		"iteration cap", "iter", opts.IterLimit,
		"seed", "seed", opts.Seed,
		"construct-only", "construct-only", *construct,
	))

	pminArr := parsePoint(*pmin)
	pmaxArr := parsePoint(*pmax)

	g := geom.NewBox(pminArr, pmaxArr, *ndim)
	h := hfun.Constant{H: *hval}
	mesh := &rmesh.Mesh{}

	if *construct {
		if err := driver.Make(g, nil, mesh, opts); err != nil {
			chk.Panic("%v", err)
		}
		io.Pfgreen("done: %d nodes, %d edges, %d faces, %d cells\n",
			len(mesh.Nodes), len(mesh.Edges), len(mesh.Faces), len(mesh.Cells))
	} else {
		stats, err := driver.Mesh(g, nil, h, mesh, opts)
		if err != nil {
			chk.Panic("%v", err)
		}
		io.Pfgreen("done: %d nodes, %d edges, %d faces, %d cells (iters=%d converged=%v)\n",
			len(mesh.Nodes), len(mesh.Edges), len(mesh.Faces), len(mesh.Cells), stats.Iters, stats.Converged)
	}

	if *out != "" {
		if err := dumpMesh(*out, mesh); err != nil {
			chk.Panic("%v", err)
		}
		io.Pf("wrote %s\n", *out)
	}
}

// parsePoint reads a comma-separated "x,y,z" string into [3]float64,
// defaulting missing trailing components to 0 (2D points need not carry a
// trailing ",0").
func parsePoint(s string) (pt [3]float64) {
	var x, y, z float64
	n, err := fmt.Sscanf(s, "%g,%g,%g", &x, &y, &z)
	if err != nil && n < 2 {
		chk.Panic("invalid point %q: %v", s, err)
	}
	return [3]float64{x, y, z}
}

// dumpMesh writes a plain-text node listing, one "index x y z" line per
// node; a minimal stand-in for a real mesh-file writer, since an
// output-format surface beyond the in-memory rmesh.Mesh is out of this
// module's scope.
func dumpMesh(path string, mesh *rmesh.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	defer w.Flush()
	fmt.Fprintf(w, "# ndim=%d nodes=%d\n", mesh.Ndim, len(mesh.Nodes))
	for i, n := range mesh.Nodes {
		fmt.Fprintf(w, "%d %g %g %g\n", i, n.Pos[0], n.Pos[1], n.Pos[2])
	}
	return nil
}
