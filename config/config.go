// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings that control scanning, execution
// and printing. A Config may also be loaded from a YAML file.
package config

import (
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// DebugFlags lists the names accepted by SetDebug.
var DebugFlags = []string{
	"cpu",    // print the time taken by each interactive line
	"exec",   // log every expression executed
	"panic",  // do not recover from faults in the shell
	"stack",  // dump the stack after every expression
	"tokens", // log every token emitted by the scanner
}

type Config struct {
	prompt    string
	format    string
	logLevel  string
	history   string
	debug     map[string]bool
	output    io.Writer
	errOutput io.Writer
}

// Format returns the fmt verb used to print each element of a value.
func (c *Config) Format() string {
	if c.format == "" {
		return "%v"
	}
	return c.format
}

func (c *Config) SetFormat(s string) {
	c.format = s
}

func (c *Config) Debug(s string) bool {
	return c.debug[s]
}

// SetDebug sets the named debug flag. It reports whether the name is known.
func (c *Config) SetDebug(s string, state bool) bool {
	if !slices.Contains(DebugFlags, s) {
		return false
	}
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[s] = state
	return true
}

func (c *Config) Prompt() string {
	return c.prompt
}

func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

// LogLevel returns the log level name, such as "info" or "verbose".
// The empty string means the logger's default.
func (c *Config) LogLevel() string {
	return c.logLevel
}

func (c *Config) SetLogLevel(level string) {
	c.logLevel = level
}

// History returns the path of the interactive history file, if any.
func (c *Config) History() string {
	return c.history
}

func (c *Config) SetHistory(path string) {
	c.history = path
}

// Output returns the writer for results. The default is os.Stdout.
func (c *Config) Output() io.Writer {
	if c.output == nil {
		return os.Stdout
	}
	return c.output
}

func (c *Config) SetOutput(w io.Writer) {
	c.output = w
}

// ErrOutput returns the writer for diagnostics. The default is os.Stderr.
func (c *Config) ErrOutput() io.Writer {
	if c.errOutput == nil {
		return os.Stderr
	}
	return c.errOutput
}

func (c *Config) SetErrOutput(w io.Writer) {
	c.errOutput = w
}

// file is the YAML form of a Config. Absent fields leave the
// Config unchanged.
type file struct {
	Format   *string  `yaml:"format"`
	Prompt   *string  `yaml:"prompt"`
	LogLevel *string  `yaml:"loglevel"`
	History  *string  `yaml:"history"`
	Debug    []string `yaml:"debug"`
}

// Load reads YAML settings from r into c. Unknown keys and unknown
// debug flags are errors.
func Load(r io.Reader, c *Config) error {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil // Empty file.
		}
		return fmt.Errorf("config: %w", err)
	}
	if f.Format != nil {
		c.SetFormat(*f.Format)
	}
	if f.Prompt != nil {
		c.SetPrompt(*f.Prompt)
	}
	if f.LogLevel != nil {
		c.SetLogLevel(*f.LogLevel)
	}
	if f.History != nil {
		c.SetHistory(*f.History)
	}
	for _, d := range f.Debug {
		if !c.SetDebug(d, true) {
			return fmt.Errorf("config: unknown debug flag %q", d)
		}
	}
	return nil
}

// LoadFile is like Load but reads the named file.
func LoadFile(name string, c *Config) error {
	fd, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer fd.Close()
	if err := Load(fd, c); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
