// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse turns lexemes into expressions.
// There is no grammar yet: every lexeme is either a number
// or a word, and a line is a flat sequence of them.
package parse // import "robpike.io/stak/parse"

import (
	"errors"
	"strconv"
	"strings"

	"robpike.io/stak/scan"
	"robpike.io/stak/value"
)

// Expr classifies a lexeme. If it parses as a float64 it is a
// value.Number; otherwise it is a value.Word holding the lexeme.
// A number too large to represent becomes an infinity.
func Expr(lexeme string) value.Expr {
	x, err := strconv.ParseFloat(lexeme, 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return value.Number(x)
	}
	return value.Word(lexeme)
}

// Line returns the expressions of a line of input.
// Lexemes are separated by white space, so operators
// such as + and | need no special scanning.
func Line(line string) []value.Expr {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	exprs := make([]value.Expr, len(fields))
	for i, f := range fields {
		exprs[i] = Expr(f)
	}
	return exprs
}

// Tokens returns the expressions for the Number and Identifier tokens
// in toks. Brackets, dots, commas and arrows have no meaning to the
// stack machine and are skipped.
func Tokens(toks []scan.Token) []value.Expr {
	var exprs []value.Expr
	for _, tok := range toks {
		switch tok.Type {
		case scan.Number, scan.Identifier:
			exprs = append(exprs, Expr(tok.Text))
		}
	}
	return exprs
}
