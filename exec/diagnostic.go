// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"fmt"
	"strings"

	"robpike.io/stak/value"
)

// Kind classifies a Diagnostic.
type Kind int

const (
	Arity   Kind = iota // too few values on the stack for the operator
	Unknown             // the word names no operator
	Domain              // the operator could not compute a result
)

func (k Kind) String() string {
	switch k {
	case Arity:
		return "arity"
	case Unknown:
		return "unknown"
	case Domain:
		return "domain"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Diagnostic reports an expression that could not be executed.
// The stack is left as it was before the expression, and execution
// continues with the next one, so a Diagnostic is never fatal.
type Diagnostic struct {
	Kind  Kind
	Word  string         // The operator, as written.
	Need  int            // For Arity: the number of operands required.
	Stack []value.Matrix // For Arity: the stack, bottom first.
	Msg   string         // For Domain: what went wrong.
}

// A Sink receives the diagnostics produced by a Machine.
type Sink func(*Diagnostic)

var operands = [...]string{"no arguments", "one argument", "two arguments"}

func (d *Diagnostic) Error() string {
	switch d.Kind {
	case Arity:
		need := fmt.Sprintf("%d arguments", d.Need)
		if d.Need < len(operands) {
			need = operands[d.Need]
		}
		return fmt.Sprintf("`%s` requires %s; the stack: %s", d.Word, need, stackString(d.Stack))
	case Unknown:
		return fmt.Sprintf("unrecognized word `%s`", d.Word)
	}
	return fmt.Sprintf("`%s`: %s", d.Word, d.Msg)
}

// stackString formats a stack, bottom first, on one line.
func stackString(stack []value.Matrix) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range stack {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(short(strings.ReplaceAll(v.String(), "\n", "")))
	}
	b.WriteByte(']')
	return b.String()
}

// short returns its argument, truncating if it's too long.
func short(s string) string {
	if len(s) > 50 {
		s = s[:50] + "..."
	}
	return s
}
