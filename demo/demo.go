// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demo implements the I/O for running the )demo
// special command. The script for the demo is in demo.jot
// in this directory. Its content is embedded in this source file.
package demo // import "github.com/jotlang/jot/demo"

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	_ "embed"
)

//go:embed demo.jot
var demoText []byte

// commentPrefix marks a line of the script that is shown but not evaluated.
const commentPrefix = "NB."

// Text returns the input text for the standard demo.
func Text() string {
	return string(demoText)
}

// Run runs the demo. The arguments are the user's input, the function that
// evaluates a line of jot, and a Writer for the output. Expressions are read
// from a file (maintained in demo.jot but embedded in the package). When the
// user hits a blank line, the next line from the file is shown and evaluated.
// If the user's input line has text, that is evaluated instead and the file
// does not advance. A line reading "quit" ends the demo.
// A nil userInput ignores the user and just runs the script.
func Run(userInput io.Reader, eval func(string) string, output io.Writer) error {
	text := demoText // Don't overwrite the global!
	var scan *bufio.Scanner
	if userInput != nil {
		scan = bufio.NewScanner(userInput)
	}
	nextLine := func() (line []byte) {
		nl := bytes.IndexByte(text, '\n')
		if nl < 0 { // EOF or incomplete line.
			return nil
		}
		line, text = text[:nl+1], text[nl+1:]
		return line
	}
	send := func(line []byte) error {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || bytes.HasPrefix(line, []byte(commentPrefix)) {
			return nil
		}
		_, err := fmt.Fprintln(output, eval(string(line)))
		return err
	}
	// Show first line, with instructions, before accepting user input.
	output.Write(nextLine())
	for userInput == nil || scan.Scan() {
		if userInput != nil && len(bytes.TrimSpace(scan.Bytes())) > 0 {
			// User typed a non-empty line of text; send that.
			line := scan.Bytes()
			if string(bytes.TrimSpace(line)) == "quit" {
				break
			}
			if err := send(line); err != nil {
				return err
			}
		} else {
			// User typed newline; send next line of file's text.
			line := nextLine()
			if line == nil {
				break
			}
			output.Write(line)
			if err := send(line); err != nil {
				return err
			}
		}
	}
	if scan == nil {
		return nil
	}
	return scan.Err()
}
