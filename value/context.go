// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "github.com/jotlang/jot/config"

// UnaryOp is the interface implemented by the monadic form of a verb.
type UnaryOp interface {
	Name() string
	EvalUnary(c Context, right Array) (Array, error)
}

// BinaryOp is the interface implemented by the dyadic form of a verb.
type BinaryOp interface {
	Name() string
	EvalBinary(c Context, left, right Array) (Array, error)
}

// Context is the execution context for evaluation.
// The only implementation is ../exec/Context, but the interface
// is defined separately, here, because of the dependence on Expr
// and the import cycle that would otherwise result.
type Context interface {
	// Config returns the configuration state for evaluation.
	Config() *config.Config

	// EvalUnary applies the monadic form of the verb.
	EvalUnary(op byte, right Array) (Array, error)

	// EvalBinary applies the dyadic form of the verb.
	EvalBinary(left Array, op byte, right Array) (Array, error)

	// Enter records a step deeper into the expression tree.
	// It fails once the configured maximum depth is reached.
	// Each successful Enter must be matched by a Leave.
	Enter() error

	// Leave undoes Enter.
	Leave()
}

// checkSize fails if an array of n elements would be too big.
func checkSize(c Context, what string, n int64) error {
	if max := c.Config().MaxElements(); n > int64(max) {
		return Errorf(SizeLimitExceeded, "%s of %d elements exceeds limit of %d", what, n, max)
	}
	return nil
}
