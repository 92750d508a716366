// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run provides the execution control for stak.
// It is factored out of main so it can be used for tests.
// This layout also helps out stak/mobile.
package run // import "robpike.io/stak/run"

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"fortio.org/log"

	"robpike.io/stak/config"
	"robpike.io/stak/exec"
	"robpike.io/stak/parse"
	"robpike.io/stak/scan"
	"robpike.io/stak/value"
)

// A LineReader delivers lines of input, without their newlines.
// It returns io.EOF when the input is exhausted.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// NewReader returns a LineReader that reads from r.
// If prompt is non-nil, prompts are written to it.
func NewReader(r io.Reader, prompt io.Writer) LineReader {
	return &reader{bufio.NewScanner(r), prompt}
}

type reader struct {
	scanner *bufio.Scanner
	prompt  io.Writer
}

func (r *reader) ReadLine(prompt string) (string, error) {
	if r.prompt != nil {
		fmt.Fprint(r.prompt, prompt)
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

// Line executes one line of input on a new Machine, so nothing
// carries over from earlier lines. It prints the resulting values to
// the configured output, top of stack first, one per line, and any
// diagnostics to the configured error output. The return value
// reports whether execution was free of diagnostics.
func Line(conf *config.Config, line string) (result []value.Matrix, ok bool) {
	ok = true
	m := exec.NewMachine(conf, func(d *exec.Diagnostic) {
		ok = false
		fmt.Fprintln(conf.ErrOutput(), d.Error())
	})
	result = m.Eval(parse.Line(line))
	printValues(conf, conf.Output(), result)
	return result, ok
}

// Tokens prints the tokens of the line, one per line, to the
// configured output.
func Tokens(conf *config.Config, line string) []scan.Token {
	toks := scan.New(conf, "<line>", line).Tokens()
	w := conf.Output()
	for _, tok := range toks {
		fmt.Fprintln(w, tok)
	}
	return toks
}

// Run reads lines from r and executes them until EOF. If interactive
// is set, each line is prompted for and a blank line also ends the
// loop; otherwise blank lines are skipped. If tokens is set the lines
// are scanned and their tokens printed instead of being executed.
// Lines beginning with ')' are special commands in either case.
// The return value is nil at EOF or a blank line.
func Run(conf *config.Config, r LineReader, interactive, tokens bool) error {
	prompt := ""
	if interactive {
		prompt = conf.Prompt()
	}
	for {
		line, err := r.ReadLine(prompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			if interactive {
				return nil
			}
			continue
		}
		start := startTimer()
		safely(conf, func() {
			if isSpecial(line) {
				special(conf, line)
			} else if tokens {
				Tokens(conf, line)
			} else {
				Line(conf, line)
			}
		})
		if interactive && conf.Debug("cpu") {
			fmt.Fprintln(conf.Output(), start)
		}
	}
}

// Stak executes each line of text in turn, writing results to stdout
// and diagnostics to stderr. It is the entry point for tests and the
// mobile package.
func Stak(conf *config.Config, text string, stdout, stderr io.Writer) {
	conf.SetOutput(stdout)
	conf.SetErrOutput(stderr)
	Run(conf, NewReader(strings.NewReader(text), nil), false, false)
}

// safely calls fn, reporting rather than propagating a panic so one
// bad line cannot end the session. The "panic" debug flag disables this.
func safely(conf *config.Config, fn func()) {
	defer func() {
		if conf.Debug("panic") {
			return
		}
		err := recover()
		if err == nil {
			return
		}
		log.Warnf("recovered: %v", err)
		fmt.Fprintf(conf.ErrOutput(), "internal error: %v\n", err)
	}()
	fn()
}

// printValues prints the values, one per line.
func printValues(conf *config.Config, writer io.Writer, values []value.Matrix) {
	for _, v := range values {
		fmt.Fprintln(writer, v.Sprint(conf))
	}
}
