// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scan turns jot source text into tokens.
package scan // import "github.com/jotlang/jot/scan"

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jotlang/jot/config"
)

// Verbs holds the characters that scan as verbs.
const Verbs = "+-~#{,<"

// Token represents a token or text string returned from the scanner.
type Token struct {
	Type   Type   // The type of this item.
	Offset int    // Byte offset of the start of the token in the source.
	Text   string // The text of this item.
}

// Type identifies the type of lex items.
type Type int

const (
	EOF        Type = iota // end of input
	ErrorToken             // error occurred; Text is the message
	Number                 // single integer
	Vector                 // integers separated by blanks
	Verb                   // one of Verbs
	LeftParen              // '('
	RightParen             // ')'
)

var typeNames = [...]string{
	EOF:        "EOF",
	ErrorToken: "Error",
	Number:     "Number",
	Vector:     "Vector",
	Verb:       "Verb",
	LeftParen:  "LeftParen",
	RightParen: "RightParen",
}

func (t Type) String() string {
	if 0 <= t && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}

func (i Token) String() string {
	switch {
	case i.Type == EOF:
		return "EOF"
	case i.Type == ErrorToken:
		return "error: " + i.Text
	case len(i.Text) > 10:
		return fmt.Sprintf("%s: %.10q...", i.Type, i.Text)
	}
	return fmt.Sprintf("%s: %q", i.Type, i.Text)
}

// ErrorKind classifies a scanning error.
type ErrorKind int

const (
	UnrecognizedCharacter ErrorKind = iota + 1
	InvalidNumber
)

func (k ErrorKind) String() string {
	switch k {
	case UnrecognizedCharacter:
		return "unrecognized character"
	case InvalidNumber:
		return "invalid number"
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

// Error reports input the scanner cannot turn into a token.
type Error struct {
	Kind   ErrorKind
	Offset int    // Byte offset of the offending text.
	Text   string // The offending text.
}

func (e *Error) Error() string {
	if e.Kind == UnrecognizedCharacter {
		r, _ := utf8.DecodeRuneInString(e.Text)
		return fmt.Sprintf("%s %#U at offset %d", e.Kind, r, e.Offset)
	}
	return fmt.Sprintf("%s %q at offset %d", e.Kind, e.Text, e.Offset)
}

const eof = -1

// stateFn represents the state of the scanner as a function that returns the next state.
type stateFn func(*Scanner) stateFn

// Scanner holds the state of the scanner.
type Scanner struct {
	config    *config.Config
	input     string // the text being scanned.
	lastRune  rune   // most recent return from next()
	lastWidth int    // size of that rune
	pos       int    // current position in the input
	start     int    // start position of this item
	token     Token
	err       *Error // first error encountered, if any
}

// New creates and returns a new scanner for the source text.
func New(conf *config.Config, src string) *Scanner {
	return &Scanner{
		config: conf,
		input:  src,
	}
}

// Err returns the error that stopped the scanner, if any.
func (l *Scanner) Err() error {
	if l.err == nil {
		return nil
	}
	return l.err
}

// Next returns the next token. After an error or the end of the input
// it returns EOF.
func (l *Scanner) Next() Token {
	l.lastRune = eof
	l.lastWidth = 0
	l.token = Token{EOF, l.pos, "EOF"}
	state := lexAny
	for state != nil {
		state = state(l)
	}
	return l.token
}

// Tokenize returns all the tokens of src, not including the final EOF.
func Tokenize(conf *config.Config, src string) ([]Token, error) {
	l := New(conf, src)
	var toks []Token
	for {
		tok := l.Next()
		switch tok.Type {
		case EOF:
			return toks, nil
		case ErrorToken:
			return nil, l.err
		}
		toks = append(toks, tok)
	}
}

// next returns the next rune in the input.
func (l *Scanner) next() rune {
	if l.pos >= len(l.input) {
		l.lastRune, l.lastWidth = eof, 0
		return eof
	}
	l.lastRune, l.lastWidth = utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.lastWidth
	return l.lastRune
}

// peek returns but does not consume the next rune in the input.
func (l *Scanner) peek() rune {
	if l.pos >= len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

// backup steps back one rune. Should only be called once per call of next.
func (l *Scanner) backup() {
	l.pos -= l.lastWidth
	l.lastWidth = 0
}

// emit passes an item back to the client.
func (l *Scanner) emit(t Type) stateFn {
	l.token = Token{t, l.start, l.input[l.start:l.pos]}
	if l.config.Debug("tokens") {
		fmt.Fprintf(l.config.Output(), "%d: emit %s\n", l.start, l.token)
	}
	l.start = l.pos
	return nil
}

// acceptRun consumes a run of runes from the valid set.
func (l *Scanner) acceptRun(valid string) {
	for strings.ContainsRune(valid, l.next()) {
	}
	l.backup()
}

// errorf records the error, returns an error token and empties the input.
func (l *Scanner) errorf(kind ErrorKind, offset int, text string) stateFn {
	l.err = &Error{Kind: kind, Offset: offset, Text: text}
	l.token = Token{ErrorToken, offset, l.err.Error()}
	l.input = l.input[:0]
	l.start = 0
	l.pos = 0
	return nil
}

// state functions

// lexAny scans non-space items.
func lexAny(l *Scanner) stateFn {
	switch r := l.next(); {
	case r == eof:
		return nil
	case isSpace(r):
		return lexSpace
	case isDigit(r):
		l.backup()
		return lexNumber
	case strings.ContainsRune(Verbs, r):
		return l.emit(Verb)
	case r == '(':
		return l.emit(LeftParen)
	case r == ')':
		return l.emit(RightParen)
	default:
		return l.errorf(UnrecognizedCharacter, l.start, l.input[l.start:l.pos])
	}
}

// lexSpace scans a run of space characters.
// One space has already been seen.
func lexSpace(l *Scanner) stateFn {
	for isSpace(l.peek()) {
		l.next()
	}
	// Skips over the pending input.
	l.start = l.pos
	return lexAny
}

// lexNumber scans a run of integers separated by blanks. A run of more
// than one integer is a vector.
func lexNumber(l *Scanner) stateFn {
	count := 0
	for {
		groupStart := l.pos
		l.acceptRun(digits)
		if _, err := strconv.ParseInt(l.input[groupStart:l.pos], 10, 64); err != nil {
			return l.errorf(InvalidNumber, groupStart, l.input[groupStart:l.pos])
		}
		count++
		end := l.pos
		for isSpace(l.peek()) {
			l.next()
		}
		if !isDigit(l.peek()) {
			// Trailing blanks belong to no token.
			l.pos = end
			break
		}
	}
	if count > 1 {
		return l.emit(Vector)
	}
	return l.emit(Number)
}

const digits = "0123456789"

// isSpace reports whether r is a blank.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
