// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"fmt"
	"strings"

	"github.com/jotlang/jot/value"
)

// short returns its argument, truncating if it's too long.
func short(s string) string {
	if len(s) > 50 {
		s = s[:50] + "..."
	}
	return s
}

// argPrint prints the value of an argument.
func argPrint(a value.Array) string {
	if value.IsCompound(a) {
		return "(" + short(a.ProgString()) + ")"
	}
	return short(a.ProgString())
}

// TraceIndent returns an indentation marker showing the depth of the evaluation.
func (c *Context) TraceIndent() string {
	return strings.Repeat("| ", c.depth)
}

func (c *Context) traceUnary(op byte, right, result value.Array) {
	fmt.Fprintf(c.config.ErrOutput(), "\t%s%c %s = %s\n", c.TraceIndent(), op, argPrint(right), argPrint(result))
}

func (c *Context) traceBinary(left value.Array, op byte, right, result value.Array) {
	fmt.Fprintf(c.config.ErrOutput(), "\t%s%s %c %s = %s\n", c.TraceIndent(), argPrint(left), op, argPrint(right), argPrint(result))
}
