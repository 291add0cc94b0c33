// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/jotlang/jot/config"
	"github.com/jotlang/jot/parse"
	"github.com/jotlang/jot/scan"
	"github.com/jotlang/jot/value"
)

func resolve(t *testing.T, c *Context, src string) (value.Expr, error) {
	t.Helper()
	toks, err := scan.Tokenize(c.Config(), src)
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", src, err)
	}
	tree, err := parse.Parse(c.Config(), toks)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return c.Resolve(tree)
}

func TestResolve(t *testing.T) {
	var tests = []struct {
		src  string
		prog string
		want string
	}{
		{"~3+~3", "(~ 3) + ~ 3", "0 2 4"},
		{"2 3#~6", "2 3 # ~ 6", "0 1 2\n3 4 5"},
		{"1+2+3+4", "1 + 2 + 3 + 4", "10"},
		{"4{~7", "4 { ~ 7", "4"},
		{"1,2,3,4", "1 , 2 , 3 , 4", "1 2 3 4"},
		{"(1+2)+3", "(1 + 2) + 3", "6"},
		{"#~5", "# ~ 5", "5"},
		{"#,~3", "# , ~ 3", "3"},
		{"~(1+2)", "~ (1 + 2)", "0 1 2"},
		{"((4))", "4", "4"},
		{"<1 2", "< 1 2", "1 2"},
		{"1 2 3<2", "1 2 3 < 2", "1 0 0"},
	}
	for _, test := range tests {
		c := NewContext(nil)
		expr, err := resolve(t, c, test.src)
		if err != nil {
			t.Errorf("Resolve(%q): %v", test.src, err)
			continue
		}
		if got := expr.ProgString(); got != test.prog {
			t.Errorf("Resolve(%q) = %q; want %q", test.src, got, test.prog)
		}
		result, err := c.Eval(expr)
		if err != nil {
			t.Errorf("Eval(%q): %v", test.src, err)
			continue
		}
		if got := result.String(); got != test.want {
			t.Errorf("Eval(%q) = %q; want %q", test.src, got, test.want)
		}
		if c.Depth() != 0 {
			t.Errorf("%q: depth %d after evaluation", test.src, c.Depth())
		}
	}
}

func TestResolveError(t *testing.T) {
	var tests = []struct {
		src    string
		kind   SemanticErrorKind
		op     byte
		offset int
	}{
		{"{3", NoMonadicForm, '{', 0},
		{"-3", NoMonadicForm, '-', 0},
		{"1-3", NoDyadicForm, '-', 1},
		{"1+{2", NoMonadicForm, '{', 2},
		{"({1)+2", NoMonadicForm, '{', 1},
	}
	for _, test := range tests {
		_, err := resolve(t, NewContext(nil), test.src)
		var e *SemanticError
		if !errors.As(err, &e) {
			t.Errorf("Resolve(%q): expected semantic error; got %v", test.src, err)
			continue
		}
		if e.Kind != test.kind || e.Op != test.op || e.Offset != test.offset {
			t.Errorf("Resolve(%q): got %v; want %s for %q at %d", test.src, e, test.kind, test.op, test.offset)
		}
	}
}

func TestRecursionLimit(t *testing.T) {
	var conf config.Config
	conf.SetMaxDepth(10)
	src := strings.Repeat("+", 9) + "1"
	c := NewContext(&conf)
	expr, err := resolve(t, c, src)
	if err != nil {
		t.Fatalf("Resolve(%q): %v", src, err)
	}
	if _, err := c.Eval(expr); err != nil {
		t.Fatalf("Eval(%q): %v", src, err)
	}

	for _, src := range []string{
		strings.Repeat("+", 11) + "1",
		strings.Repeat("(", 11) + "1" + strings.Repeat(")", 11),
		strings.Repeat("1+", 11) + "1",
	} {
		_, err = resolve(t, c, src)
		if !value.IsKind(err, value.RecursionLimitExceeded) {
			t.Errorf("Resolve(%q): expected recursion limit; got %v", src, err)
		}
		if c.Depth() != 0 {
			t.Errorf("%q: depth %d after error", src, c.Depth())
		}
	}
	if _, err := resolve(t, c, strings.Repeat("(", 10)+"1"+strings.Repeat(")", 10)); err != nil {
		t.Errorf("10 parentheses: %v", err)
	}
}

func TestTrace(t *testing.T) {
	var conf config.Config
	var out bytes.Buffer
	conf.SetErrOutput(&out)
	conf.SetDebug("trace", true)
	c := NewContext(&conf)
	expr, err := resolve(t, c, "1+~2")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Eval(expr); err != nil {
		t.Fatal(err)
	}
	want := "\t| | ~ 2 = 0 1\n\t| 1 + 0 1 = 1 2\n"
	if got := out.String(); got != want {
		t.Errorf("trace output %q; want %q", got, want)
	}
}
