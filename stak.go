// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main // import "robpike.io/stak"

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"fortio.org/log"
	"github.com/peterh/liner"
	"golang.org/x/term"

	"robpike.io/stak/config"
	"robpike.io/stak/demo"
	"robpike.io/stak/exec"
	"robpike.io/stak/run"
)

var (
	format     = flag.String("format", "", "use `fmt` as format for printing numbers; empty sets default format")
	prompt     = flag.String("prompt", "", "command `prompt`")
	configFile = flag.String("config", "", "read settings from the YAML `file`")
	debugFlag  = flag.String("debug", "", "comma-separated `names` of debug settings to enable")
	logLevel   = flag.String("loglevel", "", "log `level` (debug, verbose, info, warning, error)")
	tokens     = flag.Bool("tokens", false, "print the tokens of each line instead of executing it")
	demoFlag   = flag.Bool("demo", false, "run the demo")
)

var conf config.Config

func main() {
	log.SetDefaultsForClientTools()
	flag.Usage = usage
	flag.Parse()

	if *configFile != "" {
		if err := config.LoadFile(*configFile, &conf); err != nil {
			fmt.Fprintf(os.Stderr, "stak: %s\n", err)
			os.Exit(2)
		}
	}
	if *format != "" {
		conf.SetFormat(*format)
	}
	if *prompt != "" {
		conf.SetPrompt(*prompt)
	}
	if *logLevel != "" {
		conf.SetLogLevel(*logLevel)
	}
	if *debugFlag != "" {
		for _, name := range strings.Split(*debugFlag, ",") {
			if !conf.SetDebug(name, true) {
				fmt.Fprintf(os.Stderr, "stak: unknown debug flag %q\n", name)
				os.Exit(2)
			}
		}
	}
	if level := conf.LogLevel(); level != "" {
		if err := log.SetLogLevelStr(level); err != nil {
			fmt.Fprintf(os.Stderr, "stak: %s\n", err)
			os.Exit(2)
		}
	}

	if *demoFlag {
		runDemo()
		return
	}

	switch flag.NArg() {
	case 0:
	case 1:
		fd, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "stak: %s\n", err)
			os.Exit(1)
		}
		defer fd.Close()
		if err := run.Run(&conf, run.NewReader(fd, nil), false, *tokens); err != nil {
			fmt.Fprintf(os.Stderr, "stak: %s\n", err)
			os.Exit(1)
		}
		return
	default:
		usage()
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		if err := run.Run(&conf, run.NewReader(os.Stdin, nil), false, *tokens); err != nil {
			fmt.Fprintf(os.Stderr, "stak: %s\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println("A stack based programming language. Enjoy!")
	ln := newLineReader(conf.History())
	err := run.Run(&conf, ln, true, *tokens)
	ln.Close()
	fmt.Println("Goodbye.")
	if err != nil {
		fmt.Fprintf(os.Stderr, "stak: %s\n", err)
		os.Exit(1)
	}
}

// lineReader reads interactive input with line editing and history.
type lineReader struct {
	state   *liner.State
	history string
}

func newLineReader(history string) *lineReader {
	ln := &lineReader{
		state:   liner.NewLiner(),
		history: history,
	}
	ln.state.SetCtrlCAborts(true)
	ln.state.SetCompleter(complete)
	if history != "" {
		if f, err := os.Open(history); err == nil {
			ln.state.ReadHistory(f)
			f.Close()
		}
	}
	return ln
}

func (ln *lineReader) ReadLine(prompt string) (string, error) {
	line, err := ln.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		ln.state.AppendHistory(line)
	}
	return line, nil
}

// Close restores the terminal and saves the history, if any.
func (ln *lineReader) Close() {
	if ln.history != "" {
		if f, err := os.Create(ln.history); err == nil {
			if _, err := ln.state.WriteHistory(f); err != nil {
				log.Warnf("history: %v", err)
			}
			f.Close()
		} else {
			log.Warnf("history: %v", err)
		}
	}
	ln.state.Close()
}

// complete offers the predefined words that extend the last word of the line.
func complete(line string) []string {
	i := strings.LastIndexAny(line, " \t") + 1
	prefix, last := line[:i], line[i:]
	if last == "" {
		return nil
	}
	var c []string
	for _, w := range exec.Words() {
		if strings.HasPrefix(w, last) {
			c = append(c, prefix+w)
		}
	}
	return c
}

// runDemo feeds the demo script to an interpreter reading from a pipe.
func runDemo() {
	pr, pw := io.Pipe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := run.Run(&conf, run.NewReader(pr, nil), false, false); err != nil {
			log.Warnf("demo: %v", err)
		}
		io.Copy(io.Discard, pr)
	}()
	err := demo.Run(os.Stdin, pw, os.Stdout)
	pw.Close()
	<-done
	if err != nil {
		fmt.Fprintf(os.Stderr, "stak: %s\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: stak [options] [file]\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	os.Exit(2)
}
