// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"github.com/davecgh/go-spew/spew"

	"fortio.org/log"

	"robpike.io/stak/value"
)

// trace logs the expression just executed and the resulting stack,
// as selected by the "exec" and "stack" debug flags.
func (m *Machine) trace(e value.Expr) {
	if m.conf.Debug("exec") {
		log.Infof("exec %s -> %s", e.ProgString(), stackString(m.stack))
	} else {
		log.LogVf("exec %s", e.ProgString())
	}
	if m.conf.Debug("stack") {
		log.Infof("stack after %s:\n%s", e.ProgString(), m.Dump())
	}
}

// Dump returns a detailed description of the stack, bottom first,
// including the shape and elements of every value.
func (m *Machine) Dump() string {
	type entry struct {
		Rows, Cols int
		Data       []float64
	}
	entries := make([]entry, len(m.stack))
	for i, v := range m.stack {
		rows, cols := v.Shape()
		entries[i] = entry{rows, cols, v.Data()}
	}
	return spew.Sdump(entries)
}
