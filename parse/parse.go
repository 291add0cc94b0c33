// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse builds the syntax tree of a jot expression. Verbs are
// left ambiguous: whether a verb is applied monadically or dyadically
// is recorded only by the presence of a left operand.
package parse // import "github.com/jotlang/jot/parse"

import (
	"fmt"

	"github.com/jotlang/jot/config"
	"github.com/jotlang/jot/scan"
	"github.com/jotlang/jot/value"
)

// Node is an element of the syntax tree.
type Node interface {
	// Pos returns the byte offset of the node in the source.
	Pos() int
}

// Literal is a number or vector of numbers.
type Literal struct {
	Value  value.Array
	Offset int
}

// Verb is a verb application. Left is nil when nothing stands to the
// left of the verb.
type Verb struct {
	Op     byte
	Left   Node
	Right  Node
	Offset int
}

// Paren is a parenthesized expression.
type Paren struct {
	Inner  Node
	Offset int
}

func (l *Literal) Pos() int { return l.Offset }
func (v *Verb) Pos() int    { return v.Offset }
func (p *Paren) Pos() int   { return p.Offset }

// Tree formats a syntax tree in an unambiguous form for debugging.
// It generates the output for )debug parse.
func Tree(n Node) string {
	switch n := n.(type) {
	case *Literal:
		return fmt.Sprintf("<%s>", n.Value.ProgString())
	case *Verb:
		if n.Left == nil {
			return fmt.Sprintf("(%c %s)", n.Op, Tree(n.Right))
		}
		return fmt.Sprintf("(%s %c %s)", Tree(n.Left), n.Op, Tree(n.Right))
	case *Paren:
		return fmt.Sprintf("[%s]", Tree(n.Inner))
	case nil:
		return "<nil>"
	default:
		return fmt.Sprintf("%T", n)
	}
}

// ErrorKind classifies a syntax error.
type ErrorKind int

const (
	UnexpectedToken ErrorKind = iota + 1
	UnexpectedEndOfInput
	UnmatchedParenthesis
)

var kindNames = map[ErrorKind]string{
	UnexpectedToken:      "unexpected token",
	UnexpectedEndOfInput: "unexpected end of input",
	UnmatchedParenthesis: "unmatched parenthesis",
}

func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a syntax error. Token is the offending token; it is EOF
// when the input ended early.
type Error struct {
	Kind   ErrorKind
	Offset int
	Token  scan.Token
}

func (e *Error) Error() string {
	if e.Token.Type == scan.EOF {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s %q at offset %d", e.Kind, e.Token.Text, e.Offset)
}

// Parser stores the state for the jot parser.
type Parser struct {
	config *config.Config
	tokens []scan.Token
	depth  int
	end    int // offset just past the last token
}

// NewParser returns a new parser that will read the tokens.
func NewParser(conf *config.Config, tokens []scan.Token) *Parser {
	p := &Parser{
		config: conf,
		tokens: tokens,
	}
	if n := len(tokens); n > 0 {
		p.end = tokens[n-1].Offset + len(tokens[n-1].Text)
	}
	return p
}

// Parse parses the tokens as a single expression.
func Parse(conf *config.Config, tokens []scan.Token) (Node, error) {
	return NewParser(conf, tokens).Parse()
}

// Parse returns the syntax tree of the parser's tokens, which must
// form exactly one expression.
func (p *Parser) Parse() (n Node, err error) {
	defer p.recover(&err)
	n = p.expression()
	switch tok := p.peek(); tok.Type {
	case scan.EOF:
	case scan.RightParen:
		p.errorf(UnmatchedParenthesis, tok)
	default:
		p.errorf(UnexpectedToken, tok)
	}
	return n, nil
}

// recover turns a panic from errorf or enter into an error return.
func (p *Parser) recover(errp *error) {
	if e := recover(); e != nil {
		switch err := e.(type) {
		case *Error:
			*errp = err
		case *value.Error:
			*errp = err
		default:
			panic(e)
		}
	}
}

func (p *Parser) next() scan.Token {
	tok := p.peek()
	if tok.Type != scan.EOF {
		p.tokens = p.tokens[1:]
	}
	return tok
}

func (p *Parser) peek() scan.Token {
	if len(p.tokens) == 0 {
		return scan.Token{Type: scan.EOF, Offset: p.end, Text: "EOF"}
	}
	return p.tokens[0]
}

func (p *Parser) errorf(kind ErrorKind, tok scan.Token) {
	if tok.Type == scan.EOF && kind == UnexpectedToken {
		kind = UnexpectedEndOfInput
	}
	p.tokens = nil
	panic(&Error{Kind: kind, Offset: tok.Offset, Token: tok})
}

// enter bounds the depth of the recursive descent. The resolver enforces
// the configured depth on the tree, and never counts fewer levels than
// the parser less one. The parser's own bound is looser and only keeps
// absurd input off the stack.
func (p *Parser) enter(tok scan.Token) {
	p.depth++
	if max := p.config.MaxDepth(); p.depth > 2*max+2 {
		p.tokens = nil
		panic(value.Errorf(value.RecursionLimitExceeded, "expression nested more than %d deep at offset %d", max, tok.Offset))
	}
}

func (p *Parser) leave() {
	p.depth--
}

// expression
//
//	term
//	term verb expression
func (p *Parser) expression() Node {
	p.enter(p.peek())
	defer p.leave()
	left := p.term()
	tok := p.peek()
	if tok.Type != scan.Verb {
		return left
	}
	p.next()
	return &Verb{
		Op:     tok.Text[0],
		Left:   left,
		Right:  p.expression(),
		Offset: tok.Offset,
	}
}

// term
//
//	verb term
//	number
//	vector
//	'(' expression ')'
func (p *Parser) term() Node {
	tok := p.next()
	switch tok.Type {
	case scan.Verb:
		p.enter(tok)
		defer p.leave()
		return &Verb{
			Op:     tok.Text[0],
			Right:  p.term(),
			Offset: tok.Offset,
		}
	case scan.Number, scan.Vector:
		v, err := value.Parse(tok.Text)
		if err != nil {
			p.errorf(UnexpectedToken, tok)
		}
		return &Literal{Value: v, Offset: tok.Offset}
	case scan.LeftParen:
		inner := p.expression()
		if p.peek().Type != scan.RightParen {
			if p.peek().Type == scan.EOF {
				p.errorf(UnmatchedParenthesis, tok)
			}
			p.errorf(UnexpectedToken, p.peek())
		}
		p.next()
		return &Paren{Inner: inner, Offset: tok.Offset}
	}
	p.errorf(UnexpectedToken, tok)
	panic("not reached")
}
