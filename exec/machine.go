// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exec executes expressions against a stack of values.
package exec // import "robpike.io/stak/exec"

import (
	"fmt"
	"slices"

	"fortio.org/log"

	"robpike.io/stak/config"
	"robpike.io/stak/value"
)

// Machine holds a stack of values and executes expressions against it,
// one at a time. A Machine is not safe for concurrent use; distinct
// Machines share nothing mutable.
type Machine struct {
	// conf is the configuration for debugging output.
	conf *config.Config
	// sink receives diagnostics.
	sink Sink
	// stack holds the values; the top is the last element.
	stack []value.Matrix
}

// NewMachine returns a Machine with an empty stack. Diagnostics are
// delivered to sink; if sink is nil they are printed, one per line,
// to the configuration's error output. A nil conf means the defaults.
func NewMachine(conf *config.Config, sink Sink) *Machine {
	if conf == nil {
		conf = new(config.Config)
	}
	m := &Machine{
		conf:  conf,
		sink:  sink,
		stack: make([]value.Matrix, 0, 10),
	}
	if m.sink == nil {
		m.sink = func(d *Diagnostic) {
			fmt.Fprintln(conf.ErrOutput(), d.Error())
		}
	}
	return m
}

func (m *Machine) Config() *config.Config {
	return m.conf
}

// Eval executes the expressions in order and returns the result.
func (m *Machine) Eval(exprs []value.Expr) []value.Matrix {
	for _, e := range exprs {
		m.Execute(e)
	}
	return m.Result()
}

// Execute executes one expression. If the expression cannot be
// executed, a Diagnostic is reported and the stack is unchanged.
func (m *Machine) Execute(e value.Expr) {
	switch e := e.(type) {
	case value.Number:
		m.push(value.Scalar(float64(e)))
	case value.Word:
		m.executeWord(string(e))
	default:
		m.report(&Diagnostic{Kind: Unknown, Word: e.ProgString()})
	}
	m.trace(e)
}

func (m *Machine) executeWord(word string) {
	if fn := value.MonadicOps[word]; fn != nil {
		if m.guard(word, 1) {
			top := m.stack[len(m.stack)-1]
			if v, ok := m.apply(word, func() value.Matrix { return fn(top) }); ok {
				m.stack[len(m.stack)-1] = v
			}
		}
		return
	}
	if fn := value.DyadicOps[word]; fn != nil {
		if m.guard(word, 2) {
			n := len(m.stack)
			top, next := m.stack[n-1], m.stack[n-2]
			if v, ok := m.apply(word, func() value.Matrix { return fn(top, next) }); ok {
				m.stack = append(m.stack[:n-2], v)
			}
		}
		return
	}
	if op, ok := stackOps[word]; ok {
		if m.guard(word, op.arity) {
			op.fn(m)
		}
		return
	}
	m.report(&Diagnostic{Kind: Unknown, Word: word})
}

// guard reports whether the stack holds at least n values.
// If not, it reports an Arity diagnostic.
func (m *Machine) guard(word string, n int) bool {
	if len(m.stack) >= n {
		return true
	}
	m.report(&Diagnostic{Kind: Arity, Word: word, Need: n, Stack: m.Stack()})
	return false
}

// apply calls fn, turning a value.Error panic into a Domain diagnostic.
// Other panics are not recovered.
func (m *Machine) apply(word string, fn func() value.Matrix) (v value.Matrix, ok bool) {
	defer func() {
		if e := recover(); e != nil {
			err, isErr := e.(value.Error)
			if !isErr {
				panic(e)
			}
			m.report(&Diagnostic{Kind: Domain, Word: word, Msg: err.Error()})
			ok = false
		}
	}()
	return fn(), true
}

func (m *Machine) report(d *Diagnostic) {
	log.S(log.Verbose, "diagnostic", log.Str("kind", d.Kind.String()), log.Str("word", d.Word))
	m.sink(d)
}

func (m *Machine) push(v value.Matrix) {
	m.stack = append(m.stack, v)
}

// Result returns the values on the stack, top first.
func (m *Machine) Result() []value.Matrix {
	r := slices.Clone(m.stack)
	slices.Reverse(r)
	return r
}

// Stack returns a copy of the stack, bottom first.
func (m *Machine) Stack() []value.Matrix {
	return slices.Clone(m.stack)
}

// Depth returns the number of values on the stack.
func (m *Machine) Depth() int {
	return len(m.stack)
}

// Reset empties the stack.
func (m *Machine) Reset() {
	m.stack = m.stack[:0]
}
