// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate stringer -type Type

// Package scan turns a line of text into tokens.
//
// The scanner never indexes into its input. It holds the unread
// input as a persistent list of runes and advances by taking the
// list's tail, so every intermediate state of a scan shares the
// nodes of the original line.
package scan // import "robpike.io/stak/scan"

import (
	"fmt"
	"strings"
	"unicode"

	"fortio.org/log"

	"robpike.io/stak/config"
	"robpike.io/stak/persist"
)

// Token represents a token returned from the scanner.
type Token struct {
	Type   Type   // The type of this item.
	Text   string // The text of this item. Never empty.
	Offset int    // Offset in runes of the first character in the line.
}

// Type identifies the type of lex items.
type Type int

const (
	Number       Type = iota // digits with at most one '.'
	Identifier               // run of letters
	LeftBracket              // '['
	RightBracket             // ']'
	Dot                      // '.'
	Comma                    // ','
	LeftArrow                // "<-"
)

func (i Token) String() string {
	if len(i.Text) > 10 {
		return fmt.Sprintf("%s: %.10q...", i.Type, i.Text)
	}
	return fmt.Sprintf("%s: %q", i.Type, i.Text)
}

// stateFn represents the state of the scanner as a function that returns the next state.
type stateFn func(*Scanner) stateFn

// Scanner holds the state of the scanner.
type Scanner struct {
	conf   *config.Config
	name   string             // the name of the input; used only for debugging output
	input  persist.List[rune] // the unread input
	pos    int                // offset of the head of input
	start  int                // offset of the token being accumulated
	text   strings.Builder    // text of the token being accumulated
	dot    bool               // the number being accumulated has a '.'
	done   bool
	tokens []Token
}

// New creates and returns a new scanner for the text.
// The configuration may be nil.
func New(conf *config.Config, name, text string) *Scanner {
	return &Scanner{
		conf:  conf,
		name:  name,
		input: persist.Runes(text),
	}
}

// Scan returns the tokens of text using the default configuration.
func Scan(text string) []Token {
	return New(nil, "", text).Tokens()
}

// Tokens scans the input to the end and returns the tokens
// in the order they appear.
func (l *Scanner) Tokens() []Token {
	if !l.done {
		for state := lexAny; state != nil; {
			state = state(l)
		}
		l.done = true
	}
	return l.tokens
}

// peek returns but does not consume the next rune in the input.
// The boolean is false at end of input.
func (l *Scanner) peek() (rune, bool) {
	return l.input.Head()
}

// next consumes and returns the next rune in the input.
func (l *Scanner) next() (rune, bool) {
	r, ok := l.input.Head()
	if ok {
		l.input = l.input.Tail()
		l.pos++
	}
	return r, ok
}

// emit passes a token back to the client.
func (l *Scanner) emit(t Type, text string) {
	tok := Token{Type: t, Text: text, Offset: l.start}
	if l.conf != nil && l.conf.Debug("tokens") {
		log.Infof("%s:%d: emit %s", l.name, tok.Offset, tok)
	}
	l.tokens = append(l.tokens, tok)
}

// emitText emits the accumulated text and resets the accumulator.
func (l *Scanner) emitText(t Type) {
	l.emit(t, l.text.String())
	l.text.Reset()
	l.dot = false
}

// state functions

// lexAny dispatches on the next rune.
func lexAny(l *Scanner) stateFn {
	l.start = l.pos
	r, ok := l.next()
	switch {
	case !ok:
		return nil
	case r == '[':
		l.emit(LeftBracket, "[")
	case r == ']':
		l.emit(RightBracket, "]")
	case r == '.':
		l.emit(Dot, ".")
	case r == ',':
		l.emit(Comma, ",")
	case r == '<':
		if r, _ := l.peek(); r == '-' {
			l.next()
			l.emit(LeftArrow, "<-")
		}
		// A lone '<' is dropped; whatever follows is scanned normally.
	case unicode.IsLetter(r):
		l.text.WriteRune(r)
		return lexIdentifier
	case isDigit(r):
		l.text.WriteRune(r)
		return lexNumber
	}
	// Spaces and all other characters are skipped.
	return lexAny
}

// lexIdentifier scans a run of letters. The first has been consumed.
// The rune that ends the run is left for lexAny.
func lexIdentifier(l *Scanner) stateFn {
	for {
		r, ok := l.peek()
		if !ok || !unicode.IsLetter(r) {
			break
		}
		l.next()
		l.text.WriteRune(r)
	}
	l.emitText(Identifier)
	return lexAny
}

// lexNumber scans digits with at most one decimal point.
// The first digit has been consumed. A second '.' ends the number
// and is left for lexAny, which scans it as a Dot.
func lexNumber(l *Scanner) stateFn {
	for {
		r, ok := l.peek()
		switch {
		case ok && isDigit(r):
		case ok && r == '.' && !l.dot:
			l.dot = true
		default:
			l.emitText(Number)
			return lexAny
		}
		l.next()
		l.text.WriteRune(r)
	}
}

// isDigit reports whether r is an ASCII digit.
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
