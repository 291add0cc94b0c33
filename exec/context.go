// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exec resolves and evaluates jot expressions.
package exec // import "github.com/jotlang/jot/exec"

import (
	"github.com/jotlang/jot/config"
	"github.com/jotlang/jot/value"
)

// Context holds execution context for a single evaluation.
// It is the only implementation of ../value/Context, but since it references the value
// package, there would be a cycle if that package depended on this type definition.
type Context struct {
	// config is the configuration state used for evaluation, printing, etc.
	// Accessed through the value.Context Config method.
	config *config.Config

	// depth is the current depth in the tree being resolved or evaluated.
	depth int
}

var _ value.Context = (*Context)(nil)

// NewContext returns a new execution context using the configuration.
// A nil configuration gives the defaults.
func NewContext(conf *config.Config) *Context {
	if conf == nil {
		conf = new(config.Config)
	}
	return &Context{
		config: conf,
	}
}

func (c *Context) Config() *config.Config {
	return c.config
}

// Depth returns the current nesting depth.
func (c *Context) Depth() int {
	return c.depth
}

// Enter descends one level, failing once the configured maximum
// depth is reached.
func (c *Context) Enter() error {
	if max := c.config.MaxDepth(); c.depth >= max {
		return value.Errorf(value.RecursionLimitExceeded, "expression nested more than %d deep", max)
	}
	c.depth++
	return nil
}

// Leave undoes Enter.
func (c *Context) Leave() {
	c.depth--
}

// Eval evaluates a resolved expression.
func (c *Context) Eval(expr value.Expr) (value.Array, error) {
	return expr.Eval(c)
}

// EvalUnary applies the monadic form of the verb.
func (c *Context) EvalUnary(op byte, right value.Array) (value.Array, error) {
	fn := value.UnaryOps[op]
	if fn == nil {
		return value.Array{}, &SemanticError{Kind: NoMonadicForm, Op: op, Offset: -1}
	}
	result, err := fn.EvalUnary(c, right)
	if err == nil && c.config.Debug("trace") {
		c.traceUnary(op, right, result)
	}
	return result, err
}

// EvalBinary applies the dyadic form of the verb.
func (c *Context) EvalBinary(left value.Array, op byte, right value.Array) (value.Array, error) {
	fn := value.BinaryOps[op]
	if fn == nil {
		return value.Array{}, &SemanticError{Kind: NoDyadicForm, Op: op, Offset: -1}
	}
	result, err := fn.EvalBinary(c, left, right)
	if err == nil && c.config.Debug("trace") {
		c.traceBinary(left, op, right, result)
	}
	return result, err
}
