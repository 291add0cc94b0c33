// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/jotlang/jot/parse"
	"github.com/jotlang/jot/value"
)

// SemanticErrorKind classifies a resolution error.
type SemanticErrorKind int

const (
	NoMonadicForm SemanticErrorKind = iota + 1
	NoDyadicForm
)

func (k SemanticErrorKind) String() string {
	switch k {
	case NoMonadicForm:
		return "no monadic form"
	case NoDyadicForm:
		return "no dyadic form"
	}
	return fmt.Sprintf("SemanticErrorKind(%d)", int(k))
}

// SemanticError reports a verb used in a form it does not have.
// Offset is the position of the verb in the source, or -1 if unknown.
type SemanticError struct {
	Kind   SemanticErrorKind
	Op     byte
	Offset int
}

func (e *SemanticError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%s for %q", e.Kind, string(e.Op))
	}
	return fmt.Sprintf("%s for %q at offset %d", e.Kind, string(e.Op), e.Offset)
}

// Resolve turns the syntax tree into an expression ready for
// evaluation, deciding for each verb whether it is applied monadically
// or dyadically. Operands are resolved before the verb that uses them.
// Verbs and parentheses each count one level toward the depth limit.
func (c *Context) Resolve(n parse.Node) (value.Expr, error) {
	switch n := n.(type) {
	case *parse.Literal:
		return n.Value, nil
	case *parse.Paren:
		if err := c.Enter(); err != nil {
			return nil, err
		}
		defer c.Leave()
		return c.Resolve(n.Inner)
	case *parse.Verb:
		if err := c.Enter(); err != nil {
			return nil, err
		}
		defer c.Leave()
		right, err := c.Resolve(n.Right)
		if err != nil {
			return nil, err
		}
		if n.Left == nil {
			if value.UnaryOps[n.Op] == nil {
				return nil, &SemanticError{Kind: NoMonadicForm, Op: n.Op, Offset: n.Offset}
			}
			return &value.MonadicExpr{Op: n.Op, Right: right}, nil
		}
		left, err := c.Resolve(n.Left)
		if err != nil {
			return nil, err
		}
		if value.BinaryOps[n.Op] == nil {
			return nil, &SemanticError{Kind: NoDyadicForm, Op: n.Op, Offset: n.Offset}
		}
		return &value.DyadicExpr{Op: n.Op, Left: left, Right: right}, nil
	}
	return nil, errors.Errorf("cannot resolve %T", n)
}
