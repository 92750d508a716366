// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value implements the values of stak, two-dimensional
// arrays of float64, along with the expressions that produce them
// and the monadic and dyadic operators that act on them.
package value // import "robpike.io/stak/value"

import (
	"fmt"
	"strconv"
)

// Expr is an executable element of a line: a Number or a Word.
type Expr interface {
	String() string

	// ProgString returns the text of the expression as it would be written.
	ProgString() string
}

// Number is a numeric literal. Executing it pushes a 1x1 Matrix.
type Number float64

func (n Number) String() string {
	return fmt.Sprintf("<number %s>", n.ProgString())
}

func (n Number) ProgString() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// Word is anything that is not a number: an operator name or symbol.
type Word string

func (w Word) String() string {
	return fmt.Sprintf("<word %s>", string(w))
}

func (w Word) ProgString() string {
	return string(w)
}

// Error is the type of the values panicked by operators that
// cannot produce a result. The executor recovers it.
type Error string

func (err Error) Error() string {
	return string(err)
}

func Errorf(format string, args ...interface{}) Error {
	return Error(fmt.Sprintf(format, args...))
}
