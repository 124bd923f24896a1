// Copyright 2024 The Rdelmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rule implements the Steiner-point placement policy injected
// into the driver: given an encroached ball, restricted edge, or
// restricted cell, a Chooser decides where (and by which Kind of rule) to
// insert the next point. The name-keyed registry below is grounded on
// gofem's ele.SetAllocator/ele.GetAllocator element factory.
package rule

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/rdelmesh/rmesh"
)

// Factory builds a Chooser for a given run's options.
type Factory func(opts rmesh.Options) Chooser

// Register installs fcn under name, panicking if name is already taken
// (mirrors ele.SetAllocator: a factory collision is a programming error,
// never a runtime condition to recover from).
func Register(name string, fcn Factory) {
	if _, ok := factories[name]; ok {
		chk.Panic("cannot register rule factory %q because it exists already", name)
	}
	factories[name] = fcn
}

// Get looks up a registered factory by name, panicking if absent.
func Get(name string) Factory {
	if fcn, ok := factories[name]; ok {
		return fcn
	}
	chk.Panic("cannot find rule factory %q", name)
	return nil
}

var factories = make(map[string]Factory)

func init() {
	Register("default", NewDefault)
}
