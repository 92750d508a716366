// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"maps"
	"slices"

	"robpike.io/stak/value"
)

// A stackOp rearranges or consumes the stack itself rather than
// computing from a fixed number of operands.
type stackOp struct {
	arity int // minimum stack depth
	fn    func(m *Machine)
}

var stackOps = map[string]stackOp{
	"right":   {1, (*Machine).dup},
	"dup":     {1, (*Machine).dup},
	"left":    {2, (*Machine).left},
	"commute": {2, (*Machine).commute},
	"|":       {0, (*Machine).concat},
}

// Predefined reports whether the word names a built-in operator.
func Predefined(word string) bool {
	_, isStack := stackOps[word]
	return isStack || value.MonadicOps[word] != nil || value.DyadicOps[word] != nil
}

// Words returns the names of all the operators, sorted.
func Words() []string {
	var words []string
	words = slices.AppendSeq(words, maps.Keys(value.MonadicOps))
	words = slices.AppendSeq(words, maps.Keys(value.DyadicOps))
	words = slices.AppendSeq(words, maps.Keys(stackOps))
	slices.Sort(words)
	return words
}

// dup pushes a copy of the top of the stack.
func (m *Machine) dup() {
	m.push(m.stack[len(m.stack)-1])
}

// left pushes a copy of the value under the top of the stack.
// The old top becomes second from the top.
func (m *Machine) left() {
	m.push(m.stack[len(m.stack)-2])
}

// commute swaps the top two values.
func (m *Machine) commute() {
	n := len(m.stack)
	m.stack[n-1], m.stack[n-2] = m.stack[n-2], m.stack[n-1]
}

// concat pops the run of single-element values at the top of the
// stack and pushes them as one row vector, in the order they were
// pushed. The run ends at the first value with more or fewer than
// one element. With no such values it pushes an empty vector.
func (m *Machine) concat() {
	i := len(m.stack)
	for i > 0 && m.stack[i-1].IsScalar() {
		i--
	}
	elems := make([]float64, 0, len(m.stack)-i)
	for _, v := range m.stack[i:] {
		elems = append(elems, v.At(0, 0))
	}
	m.stack = append(m.stack[:i], value.RowVector(elems...))
}
