// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "fmt"

// Expr is the interface for a resolved expression.
// Also implemented by Array.
type Expr interface {
	// ProgString returns the unambiguous representation of the
	// expression to be used in program source.
	ProgString() string

	Eval(Context) (Array, error)
}

// MonadicExpr applies the monadic form of Op to Right.
type MonadicExpr struct {
	Op    byte
	Right Expr
}

// ProgString parenthesizes the operand only if it is dyadic, since a
// monadic verb applies to the single term after it.
func (m *MonadicExpr) ProgString() string {
	if _, ok := m.Right.(*DyadicExpr); ok {
		return fmt.Sprintf("%c (%s)", m.Op, m.Right.ProgString())
	}
	return fmt.Sprintf("%c %s", m.Op, m.Right.ProgString())
}

func (m *MonadicExpr) Eval(c Context) (Array, error) {
	if err := c.Enter(); err != nil {
		return Array{}, err
	}
	defer c.Leave()
	right, err := m.Right.Eval(c)
	if err != nil {
		return Array{}, err
	}
	return c.EvalUnary(m.Op, right)
}

// DyadicExpr applies the dyadic form of Op to Left and Right.
type DyadicExpr struct {
	Op    byte
	Left  Expr
	Right Expr
}

func (d *DyadicExpr) ProgString() string {
	var left string
	if IsCompound(d.Left) {
		left = fmt.Sprintf("(%s)", d.Left.ProgString())
	} else {
		left = d.Left.ProgString()
	}
	return fmt.Sprintf("%s %c %s", left, d.Op, d.Right.ProgString())
}

// Eval evaluates the right operand before the left, as is the usual rule.
func (d *DyadicExpr) Eval(c Context) (Array, error) {
	if err := c.Enter(); err != nil {
		return Array{}, err
	}
	defer c.Leave()
	right, err := d.Right.Eval(c)
	if err != nil {
		return Array{}, err
	}
	left, err := d.Left.Eval(c)
	if err != nil {
		return Array{}, err
	}
	return c.EvalBinary(left, d.Op, right)
}

// IsCompound reports whether the item is a non-trivial expression tree,
// one that may require parentheses around it when printed to maintain
// correct evaluation order.
func IsCompound(x interface{}) bool {
	switch x := x.(type) {
	case Array:
		return x.Rank() > 1 || x.Len() == 0
	case *MonadicExpr, *DyadicExpr:
		return true
	default:
		return false
	}
}
