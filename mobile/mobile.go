// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The mobile package provides a very narrow interface to jot,
// suitable for wrapping in a UI for mobile applications.
// It is designed to work well with the gomobile tool by exposing
// only primitive types. It's also handy for testing.
// Each call evaluates with a fresh default configuration, so any number
// of calls may run at once.
package mobile // import "github.com/jotlang/jot/mobile"

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/jotlang/jot/config"
	"github.com/jotlang/jot/run"
)

// Eval evaluates each line of the input string and returns the output.
// If execution caused errors, they will be returned concatenated
// together in the error value returned; evaluation continues after
// a failing line.
func Eval(expr string) (result string, err error) {
	var conf config.Config
	var out, errs strings.Builder
	for _, line := range strings.Split(expr, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "NB.") {
			continue
		}
		text, ok := run.Eval(&conf, line)
		if !ok {
			errs.WriteString(text)
			errs.WriteByte('\n')
			continue
		}
		out.WriteString(text)
		out.WriteByte('\n')
	}
	if errs.Len() > 0 {
		err = errors.New(strings.TrimSuffix(errs.String(), "\n"))
	}
	return out.String(), err
}

// Demo represents a running line-by-line demonstration.
type Demo struct {
	scanner *bufio.Scanner
}

// NewDemo returns a new Demo that will scan the input text line by line.
func NewDemo(input string) *Demo {
	return &Demo{
		scanner: bufio.NewScanner(strings.NewReader(input)),
	}
}

// Next returns the result (and error) produced by the next line of
// input. It returns ("", io.EOF) at EOF.
func (d *Demo) Next() (result string, err error) {
	if !d.scanner.Scan() {
		if err := d.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return Eval(d.scanner.Text())
}
