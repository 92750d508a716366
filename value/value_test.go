// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math"
	"strings"
	"testing"

	"robpike.io/stak/config"
)

func mat(rows, cols int, data ...float64) Matrix {
	return NewMatrix(rows, cols, data)
}

// wantPanic runs f and checks that it panics
// with an Error whose text contains text.
func wantPanic(t *testing.T, text string, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		e := recover()
		if e == nil {
			t.Fatalf("no panic, wanted %q", text)
		}
		err, ok := e.(Error)
		if !ok {
			t.Fatalf("panic(%#v) is not an Error", e)
		}
		if !strings.Contains(err.Error(), text) {
			t.Fatalf("panic(%q), wanted %q", err, text)
		}
	}()
	f()
}

func TestMonadic(t *testing.T) {
	var tests = []struct {
		op   string
		in   Matrix
		want Matrix
	}{
		{"negate", Scalar(3), Scalar(-3)},
		{"neg", RowVector(1, -2, 3), RowVector(-1, 2, -3)},
		{"reverse", RowVector(1, 2, 3), RowVector(3, 2, 1)},
		{"rev", mat(2, 3, 1, 2, 3, 4, 5, 6), mat(2, 3, 3, 2, 1, 6, 5, 4)},
		{"rev", Scalar(9), Scalar(9)},
		{"length", RowVector(4, 5, 6), Scalar(3)},
		{"len", mat(2, 2, 1, 2, 3, 4), Scalar(4)},
		{"len", RowVector(), Scalar(0)},
		{"sum", RowVector(1, 2, 3, 4, 5), Scalar(15)},
		{"sum", RowVector(), Scalar(0)},
		{"product", RowVector(1, 2, 3, 4), Scalar(24)},
		{"prod", RowVector(), Scalar(1)},
		{"iota", Scalar(5), RowVector(1, 2, 3, 4, 5)},
		{"iota", Scalar(3.9), RowVector(1, 2, 3)},
		{"iota", Scalar(0), RowVector()},
		{"iota", Scalar(-2), RowVector()},
		{"iota", RowVector(2, 7), RowVector(1, 2)},
	}
	for _, test := range tests {
		fn := MonadicOps[test.op]
		if fn == nil {
			t.Fatalf("no monadic op %q", test.op)
		}
		have := fn(test.in)
		if !have.Equal(test.want) {
			t.Errorf("%s %v = %v, want %v", test.op, test.in, have, test.want)
		}
	}
}

func TestMonadicDoesNotModify(t *testing.T) {
	in := RowVector(1, 2, 3)
	for name, fn := range MonadicOps {
		if name == "iota" {
			continue
		}
		fn(in)
		if !in.Equal(RowVector(1, 2, 3)) {
			t.Fatalf("%s modified its operand: %v", name, in)
		}
	}
}

func TestIotaErrors(t *testing.T) {
	wantPanic(t, "empty argument", func() { MonadicOps["iota"](RowVector()) })
	wantPanic(t, "too large", func() { MonadicOps["iota"](Scalar(MaxIota + 1)) })
}

func TestDyadic(t *testing.T) {
	// Arguments are given in stack order: next is pushed first, top last.
	// The top is the left operand of - and /.
	var tests = []struct {
		next Matrix
		top  Matrix
		op   string
		want Matrix
	}{
		{Scalar(3), Scalar(4), "+", Scalar(7)},
		{Scalar(3), Scalar(4), "-", Scalar(1)},
		{Scalar(4), Scalar(3), "-", Scalar(-1)},
		{Scalar(3), Scalar(4), "*", Scalar(12)},
		{Scalar(2), Scalar(8), "/", Scalar(4)},
		{Scalar(0), Scalar(5), "/", Scalar(math.Inf(1))},
		{RowVector(1, 2, 3), Scalar(10), "+", RowVector(11, 12, 13)},
		{Scalar(10), RowVector(1, 2, 3), "-", RowVector(-9, -8, -7)},
		{RowVector(1, 2, 3), RowVector(4, 5, 6), "*", RowVector(4, 10, 18)},
		{mat(2, 1, 1, 2), RowVector(10, 20), "+", mat(2, 2, 11, 21, 12, 22)},
		{RowVector(1, 2), mat(2, 2, 1, 2, 3, 4), "/", mat(2, 2, 1, 1, 3, 2)},
		{RowVector(), Scalar(1), "+", RowVector()},
	}
	for _, test := range tests {
		have := DyadicOps[test.op](test.top, test.next)
		if !have.Equal(test.want) {
			t.Errorf("%v %v %s = %v, want %v", test.next, test.top, test.op, have, test.want)
		}
	}
}

func TestDyadicShapeMismatch(t *testing.T) {
	wantPanic(t, "+: shape mismatch: 1x3 and 1x2", func() {
		DyadicOps["+"](RowVector(1, 2, 3), RowVector(1, 2))
	})
	wantPanic(t, "shape mismatch", func() {
		DyadicOps["*"](mat(3, 1, 1, 2, 3), mat(2, 1, 1, 2))
	})
}

func TestNewMatrix(t *testing.T) {
	data := []float64{1, 2}
	m := NewMatrix(1, 2, data)
	data[0] = 99
	if m.At(0, 0) != 1 {
		t.Fatal("NewMatrix did not copy its data")
	}
	wantPanic(t, "bad matrix shape 2x2 for 3 elements", func() { NewMatrix(2, 2, []float64{1, 2, 3}) })
	wantPanic(t, "out of range", func() { m.At(1, 0) })
	d := m.Data()
	d[1] = 99
	if m.At(0, 1) != 2 {
		t.Fatal("Data did not copy")
	}
	if r, c := m.Shape(); r != 1 || c != 2 {
		t.Fatalf("Shape() = %d, %d", r, c)
	}
}

func TestSprint(t *testing.T) {
	var tests = []struct {
		v      Matrix
		format string
		want   string
	}{
		{Scalar(7), "", "7"},
		{Scalar(-2.5), "", "-2.5"},
		{Scalar(1e6), "", "1000000"},
		{Scalar(math.Inf(-1)), "", "-Inf"},
		{RowVector(1, 2, 3), "", "[[1, 2, 3]]"},
		{RowVector(), "", "[[]]"},
		{mat(2, 2, 1, 2, 3, 4), "", "[[1, 2],\n [3, 4]]"},
		{RowVector(7), "", "7"},
		{Scalar(2), "%.2f", "2.00"},
		{RowVector(0.5, 1), "%.1f", "[[0.5, 1.0]]"},
	}
	for _, test := range tests {
		var conf config.Config
		if test.format != "" {
			conf.SetFormat(test.format)
		}
		if have := test.v.Sprint(&conf); have != test.want {
			t.Errorf("Sprint(%#v, %q) = %q, want %q", test.v, test.format, have, test.want)
		}
	}
}

func TestExprStrings(t *testing.T) {
	if s := Number(12.5).ProgString(); s != "12.5" {
		t.Errorf("Number.ProgString = %q", s)
	}
	if s := Number(3).String(); s != "<number 3>" {
		t.Errorf("Number.String = %q", s)
	}
	if s := Word("iota").String(); s != "<word iota>" {
		t.Errorf("Word.String = %q", s)
	}
}
