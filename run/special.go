// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package run

import (
	"fmt"
	"os"
	"strings"

	"robpike.io/stak/config"
	"robpike.io/stak/exec"
)

// isSpecial reports whether the line is a special command,
// which begins with a right parenthesis: )format %.2f
func isSpecial(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), ")")
}

// special executes a special command. Special commands change the
// configuration of the session rather than computing values.
func special(conf *config.Config, line string) {
	line = strings.TrimPrefix(strings.TrimSpace(line), ")")
	words := strings.Fields(line)
	if len(words) == 0 {
		errorf(conf, "empty special command")
		return
	}
	w := conf.Output()
	args := words[1:]
	switch words[0] {
	case "help":
		fmt.Fprintln(w, "Special commands:")
		fmt.Fprintln(w, "\t)debug [name [0|1]]  show or set debug flags")
		fmt.Fprintln(w, "\t)format [fmt]        show or set the format for numbers")
		fmt.Fprintln(w, "\t)get file            execute the lines of file")
		fmt.Fprintln(w, "\t)prompt [string]     show or set the prompt")
		fmt.Fprintln(w, "\t)words               list the predefined words")
	case "debug":
		if len(args) == 0 {
			for _, f := range config.DebugFlags {
				fmt.Fprintf(w, "%s\t%d\n", f, truth(conf.Debug(f)))
			}
			return
		}
		name := args[0]
		state := !conf.Debug(name) // Toggle by default.
		if len(args) > 1 {
			switch args[1] {
			case "0":
				state = false
			case "1":
				state = true
			default:
				errorf(conf, "illegal value %q for debug %s", args[1], name)
				return
			}
		}
		if !conf.SetDebug(name, state) {
			errorf(conf, "no such debug flag: %s", name)
			return
		}
		fmt.Fprintln(w, truth(state))
	case "format":
		if len(args) == 0 {
			fmt.Fprintf(w, "%q\n", conf.Format())
			return
		}
		// The format may contain spaces.
		conf.SetFormat(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "format")))
	case "get":
		if len(args) != 1 {
			errorf(conf, "usage: )get file")
			return
		}
		fd, err := os.Open(args[0])
		if err != nil {
			errorf(conf, "%s", err)
			return
		}
		defer fd.Close()
		if err := Run(conf, NewReader(fd, nil), false, false); err != nil {
			errorf(conf, "%s: %s", args[0], err)
		}
	case "prompt":
		if len(args) == 0 {
			fmt.Fprintf(w, "%q\n", conf.Prompt())
			return
		}
		conf.SetPrompt(strings.Join(args, " ") + " ")
	case "words":
		fmt.Fprintln(w, strings.Join(exec.Words(), " "))
	default:
		errorf(conf, "unknown special command %q", words[0])
	}
}

func truth(x bool) int {
	if x {
		return 1
	}
	return 0
}

func errorf(conf *config.Config, format string, args ...interface{}) {
	fmt.Fprintf(conf.ErrOutput(), format+"\n", args...)
}
