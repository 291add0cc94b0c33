// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings that control evaluation and printing:
// resource limits, debugging flags, the prompt, and the output writers.
package config // import "github.com/jotlang/jot/config"

import (
	"fmt"
	"io"
	"os"
	"sort"
)

const (
	// DefaultMaxDepth bounds the nesting of parentheses and verb applications.
	DefaultMaxDepth = 1000
	// DefaultMaxElements bounds the number of elements in a constructed array.
	DefaultMaxElements = 1 << 22
)

// DebugFlags lists the names accepted by SetDebug.
var DebugFlags = []string{
	"cpu",    // Print the CPU time used by each evaluation.
	"panic",  // Don't catch panics in the evaluator.
	"parse",  // Print the parse tree before evaluation.
	"tokens", // Print each token as it is scanned.
	"trace",  // Print each verb application.
	"types",  // Print the shape of each result.
}

// A Config holds the settings for one evaluation stream.
// The zero value is ready to use and has the default limits.
type Config struct {
	prompt      string
	history     string
	maxDepth    int
	maxElements int
	debug       map[string]bool
	output      io.Writer
	errOutput   io.Writer
}

// Prompt returns the interactive prompt.
func (c *Config) Prompt() string {
	return c.prompt
}

func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

// History returns the path of the interactive history file.
// An empty string means history is not saved.
func (c *Config) History() string {
	return c.history
}

func (c *Config) SetHistory(path string) {
	c.history = path
}

// MaxDepth returns the maximum nesting depth of an expression.
func (c *Config) MaxDepth() int {
	if c == nil || c.maxDepth <= 0 {
		return DefaultMaxDepth
	}
	return c.maxDepth
}

func (c *Config) SetMaxDepth(n int) {
	c.maxDepth = n
}

// MaxElements returns the maximum number of elements in any array
// built during evaluation.
func (c *Config) MaxElements() int {
	if c == nil || c.maxElements <= 0 {
		return DefaultMaxElements
	}
	return c.maxElements
}

func (c *Config) SetMaxElements(n int) {
	c.maxElements = n
}

// Debug reports whether the named debugging flag is set.
func (c *Config) Debug(s string) bool {
	if c == nil {
		return false
	}
	return c.debug[s]
}

// SetDebug sets the named debugging flag. It reports whether the name
// is a known flag; unknown names are ignored.
func (c *Config) SetDebug(s string, state bool) bool {
	if !isDebugFlag(s) {
		return false
	}
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[s] = state
	return true
}

func isDebugFlag(s string) bool {
	for _, f := range DebugFlags {
		if f == s {
			return true
		}
	}
	return false
}

// DebugSettings returns the debug flags and their settings, sorted by name.
func (c *Config) DebugSettings() []string {
	names := append([]string(nil), DebugFlags...)
	sort.Strings(names)
	out := make([]string, len(names))
	for i, name := range names {
		state := 0
		if c.Debug(name) {
			state = 1
		}
		out[i] = fmt.Sprintf("%s\t%d", name, state)
	}
	return out
}

// Output returns the writer to be used for program output.
func (c *Config) Output() io.Writer {
	if c == nil || c.output == nil {
		return os.Stdout
	}
	return c.output
}

// SetOutput sets the writer to which program output is printed; default is os.Stdout.
func (c *Config) SetOutput(output io.Writer) {
	c.output = output
}

// ErrOutput returns the writer to be used for error output.
func (c *Config) ErrOutput() io.Writer {
	if c == nil || c.errOutput == nil {
		return os.Stderr
	}
	return c.errOutput
}

// SetErrOutput sets the writer to which error output is printed; default is os.Stderr.
func (c *Config) SetErrOutput(output io.Writer) {
	c.errOutput = output
}
