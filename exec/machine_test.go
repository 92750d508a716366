// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"robpike.io/stak/config"
	"robpike.io/stak/parse"
	"robpike.io/stak/value"
)

// run executes the line on a fresh Machine and returns the result,
// top first, and the diagnostics.
func run(line string) ([]value.Matrix, []*Diagnostic) {
	var diags []*Diagnostic
	m := NewMachine(&config.Config{}, func(d *Diagnostic) {
		diags = append(diags, d)
	})
	return m.Eval(parse.Line(line)), diags
}

var (
	s   = value.Scalar
	vec = value.RowVector
)

var execTests = []struct {
	line  string
	want  []value.Matrix // Top first.
	kinds []Kind
}{
	{"", nil, nil},
	{"3", []value.Matrix{s(3)}, nil},
	{"3 4 +", []value.Matrix{s(7)}, nil},
	{"3 4 -", []value.Matrix{s(1)}, nil},
	{"4 3 -", []value.Matrix{s(-1)}, nil},
	{"3 4 *", []value.Matrix{s(12)}, nil},
	{"2 8 /", []value.Matrix{s(4)}, nil},
	{"5 iota sum", []value.Matrix{s(15)}, nil},
	{"5 iota", []value.Matrix{vec(1, 2, 3, 4, 5)}, nil},
	{"4 iota product", []value.Matrix{s(24)}, nil},
	{"4 iota prod", []value.Matrix{s(24)}, nil},
	{"3 iota rev", []value.Matrix{vec(3, 2, 1)}, nil},
	{"3 iota reverse len", []value.Matrix{s(3)}, nil},
	{"3 iota length", []value.Matrix{s(3)}, nil},
	{"3 neg", []value.Matrix{s(-3)}, nil},
	{"3 iota negate", []value.Matrix{vec(-1, -2, -3)}, nil},
	{"3 iota 10 +", []value.Matrix{vec(11, 12, 13)}, nil},
	{"7 dup commute", []value.Matrix{s(7), s(7)}, nil},
	{"7 right", []value.Matrix{s(7), s(7)}, nil},
	{"1 2 commute", []value.Matrix{s(1), s(2)}, nil},
	{"1 2 left", []value.Matrix{s(1), s(2), s(1)}, nil},
	{"1 2 3 left", []value.Matrix{s(2), s(3), s(2), s(1)}, nil},
	{"1 2 3 |", []value.Matrix{vec(1, 2, 3)}, nil},
	{"4 iota 1 2 |", []value.Matrix{vec(1, 2), vec(1, 2, 3, 4)}, nil},
	{"|", []value.Matrix{vec()}, nil},
	{"3 iota |", []value.Matrix{vec(), vec(1, 2, 3)}, nil},
	{"1 iota 5 |", []value.Matrix{vec(1, 5)}, nil},
	{"1 2 | 3 4 | +", []value.Matrix{vec(4, 6)}, nil},

	// Diagnostics leave the stack alone and execution continues.
	{"+", nil, []Kind{Arity}},
	{"1 +", []value.Matrix{s(1)}, []Kind{Arity}},
	{"sum", nil, []Kind{Arity}},
	{"dup", nil, []Kind{Arity}},
	{"1 left", []value.Matrix{s(1)}, []Kind{Arity}},
	{"1 commute", []value.Matrix{s(1)}, []Kind{Arity}},
	{"1 foo 2 +", []value.Matrix{s(3)}, []Kind{Unknown}},
	{"+ - 1 2 +", []value.Matrix{s(3)}, []Kind{Arity, Arity}},
	{"1 2 | 1 2 3 | +", []value.Matrix{vec(1, 2, 3), vec(1, 2)}, []Kind{Domain}},
	{"| iota", []value.Matrix{vec()}, []Kind{Domain}},
	{"1e9 iota", []value.Matrix{s(1e9)}, []Kind{Domain}},
}

func TestExecute(t *testing.T) {
	for _, test := range execTests {
		have, diags := run(test.line)
		if diff := cmp.Diff(test.want, have, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("%q: stack mismatch (-want +have):\n%s", test.line, diff)
		}
		var kinds []Kind
		for _, d := range diags {
			kinds = append(kinds, d.Kind)
		}
		if diff := cmp.Diff(test.kinds, kinds, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("%q: diagnostics mismatch (-want +have):\n%s", test.line, diff)
		}
	}
}

func TestIdempotent(t *testing.T) {
	for _, test := range execTests {
		first, _ := run(test.line)
		second, _ := run(test.line)
		if diff := cmp.Diff(first, second, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("%q: second run differs:\n%s", test.line, diff)
		}
	}
}

func TestDiagnosticText(t *testing.T) {
	var tests = []struct {
		line string
		want string
	}{
		{"+", "`+` requires two arguments; the stack: []"},
		{"3 iota -", "`-` requires two arguments; the stack: [[[1, 2, 3]]]"},
		{"iota", "`iota` requires one argument; the stack: []"},
		{"1 2 bogus", "unrecognized word `bogus`"},
		{"1e9 iota", "`iota`: iota: 1e+09 too large"},
	}
	for _, test := range tests {
		_, diags := run(test.line)
		if len(diags) != 1 {
			t.Errorf("%q: got %d diagnostics, want 1", test.line, len(diags))
			continue
		}
		if have := diags[0].Error(); have != test.want {
			t.Errorf("%q: diagnostic %q, want %q", test.line, have, test.want)
		}
	}
}

func TestArityDiagnosticStack(t *testing.T) {
	_, diags := run("5 -")
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics", len(diags))
	}
	d := diags[0]
	if d.Word != "-" || d.Need != 2 {
		t.Errorf("diagnostic = %+v", d)
	}
	if diff := cmp.Diff([]value.Matrix{s(5)}, d.Stack); diff != "" {
		t.Errorf("diagnostic stack (-want +have):\n%s", diff)
	}
}

func TestDefaultSink(t *testing.T) {
	var conf config.Config
	var stderr bytes.Buffer
	conf.SetErrOutput(&stderr)
	m := NewMachine(&conf, nil)
	m.Eval(parse.Line("+ nope"))
	want := "`+` requires two arguments; the stack: []\nunrecognized word `nope`\n"
	if stderr.String() != want {
		t.Errorf("stderr = %q, want %q", stderr.String(), want)
	}
}

func TestMachineState(t *testing.T) {
	m := NewMachine(nil, func(*Diagnostic) {})
	m.Eval(parse.Line("1 2 3"))
	if m.Depth() != 3 {
		t.Fatalf("Depth() = %d", m.Depth())
	}
	stack := m.Stack()
	stack[0] = s(100)
	if diff := cmp.Diff([]value.Matrix{s(1), s(2), s(3)}, m.Stack()); diff != "" {
		t.Errorf("Stack() aliases the machine:\n%s", diff)
	}
	if diff := cmp.Diff([]value.Matrix{s(3), s(2), s(1)}, m.Result()); diff != "" {
		t.Errorf("Result() (-want +have):\n%s", diff)
	}
	m.Reset()
	if m.Depth() != 0 {
		t.Fatalf("Depth() after Reset = %d", m.Depth())
	}
}

func TestNonErrorPanicPropagates(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("runtime panic was swallowed")
		}
	}()
	m := NewMachine(nil, nil)
	m.apply("boom", func() value.Matrix { panic("boom") })
}

func TestWords(t *testing.T) {
	words := Words()
	for _, w := range []string{"+", "-", "*", "/", "|", "commute", "dup", "iota", "left", "neg", "right", "sum"} {
		if !Predefined(w) {
			t.Errorf("%q not predefined", w)
		}
		found := false
		for _, x := range words {
			found = found || x == w
		}
		if !found {
			t.Errorf("%q missing from Words()", w)
		}
	}
	if Predefined("foo") {
		t.Error("foo is predefined")
	}
}

func TestDump(t *testing.T) {
	m := NewMachine(nil, nil)
	m.Eval(parse.Line("2 iota 7"))
	dump := m.Dump()
	for _, want := range []string{"Rows: (int) 1", "Cols: (int) 2", "(float64) 7"} {
		if !strings.Contains(dump, want) {
			t.Errorf("Dump() lacks %q:\n%s", want, dump)
		}
	}
}
