// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The mobile package provides a very narrow interface to stak,
// suitable for wrapping in a UI for mobile applications.
// It is designed to work well with the gomobile tool by exposing
// only primitive types. It's also handy for testing.
//
// The package holds one global configuration, so only one execution
// stream (Eval or Demo) should be active at a time.
package mobile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"robpike.io/stak/config"
	"robpike.io/stak/exec"
	"robpike.io/stak/run"
)

var conf config.Config

func init() {
	Reset()
}

// Eval evaluates the input string and returns its output.
// If execution caused errors, they will be returned concatenated
// together in the error value returned. Each line of input runs
// on a fresh stack.
func Eval(expr string) (result string, errors error) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	run.Stak(&conf, expr, stdout, stderr)
	var err error
	if stderr.Len() > 0 {
		err = fmt.Errorf("%s", stderr)
	}
	return stdout.String(), err
}

// Demo represents a running line-by-line demonstration.
type Demo struct {
	scanner *bufio.Scanner
}

// NewDemo returns a new Demo that will scan the input text line by line.
func NewDemo(input string) *Demo {
	Reset()
	return &Demo{
		scanner: bufio.NewScanner(strings.NewReader(input)),
	}
}

// Next returns the result (and error) produced by the next line of
// input. Commentary lines, which begin with #, produce nothing.
// It returns ("", io.EOF) at EOF.
func (d *Demo) Next() (result string, err error) {
	if !d.scanner.Scan() {
		if err := d.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	line := d.scanner.Text()
	if strings.HasPrefix(line, "#") {
		return "", nil
	}
	return Eval(line)
}

// Reset clears all state to the initial value.
func Reset() {
	conf.SetFormat("")
	conf.SetPrompt("")
}

// Help returns a summary of the predefined words, one per line.
func Help() string {
	var b strings.Builder
	b.WriteString("Numbers are pushed on the stack. Predefined words:\n")
	for _, w := range exec.Words() {
		fmt.Fprintf(&b, "\t%s\n", w)
	}
	return b.String()
}

// SetFormat sets the fmt verb used to print each number, such as "%.2f".
func SetFormat(format string) {
	conf.SetFormat(format)
}
