// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"testing"

	"github.com/jotlang/jot/config"
)

// testContext is a minimal Context for exercising the ops directly.
type testContext struct {
	conf  config.Config
	depth int
}

func (c *testContext) Config() *config.Config { return &c.conf }

func (c *testContext) EvalUnary(op byte, right Array) (Array, error) {
	return UnaryOps[op].EvalUnary(c, right)
}

func (c *testContext) EvalBinary(left Array, op byte, right Array) (Array, error) {
	return BinaryOps[op].EvalBinary(c, left, right)
}

func (c *testContext) Enter() error {
	if c.depth >= c.conf.MaxDepth() {
		return Errorf(RecursionLimitExceeded, "depth %d", c.depth)
	}
	c.depth++
	return nil
}

func (c *testContext) Leave() { c.depth-- }

func vec(x ...int64) Array { return NewVector(x...) }

func mat(rows, cols int, x ...int64) Array {
	a, err := NewArray([]int{rows, cols}, x)
	if err != nil {
		panic(err)
	}
	return a
}

func TestParse(t *testing.T) {
	var tests = []struct {
		text string
		want Array
	}{
		{"7", NewScalar(7)},
		{"1 2 3", vec(1, 2, 3)},
		{"10   20", vec(10, 20)},
		{"9223372036854775807", NewScalar(9223372036854775807)},
	}
	for _, test := range tests {
		got, err := Parse(test.text)
		if err != nil {
			t.Errorf("Parse(%q): %v", test.text, err)
			continue
		}
		if !got.Equal(test.want) {
			t.Errorf("Parse(%q) = %v (shape %v); want %v (shape %v)", test.text, got, got.Shape(), test.want, test.want.Shape())
		}
	}
	for _, text := range []string{"", "x", "9223372036854775808"} {
		if _, err := Parse(text); !IsKind(err, InvalidArgument) {
			t.Errorf("Parse(%q): expected invalid argument; got %v", text, err)
		}
	}
}

func TestNewArray(t *testing.T) {
	a, err := NewArray([]int{2, 2}, []int64{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	if a.Rank() != 2 || a.Len() != 4 || a.At(3) != 4 {
		t.Errorf("bad array %v", a)
	}
	if _, err := NewArray([]int{2, 2}, []int64{1, 2, 3}); !IsKind(err, InvalidShape) {
		t.Errorf("short data: got %v", err)
	}
	if _, err := NewArray([]int{-1}, nil); !IsKind(err, InvalidShape) {
		t.Errorf("negative axis: got %v", err)
	}
	// Results must not alias the caller's slices.
	data := []int64{5, 6}
	b, _ := NewArray([]int{2}, data)
	data[0] = 0
	if b.At(0) != 5 {
		t.Error("NewArray aliases its argument")
	}
	d := b.Data()
	d[1] = 0
	if b.At(1) != 6 {
		t.Error("Data aliases the array")
	}
}

func TestUnary(t *testing.T) {
	var tests = []struct {
		op   byte
		in   Array
		want Array
	}{
		{'+', vec(1, 2), vec(1, 2)},
		{'~', NewScalar(4), vec(0, 1, 2, 3)},
		{'~', NewScalar(0), vec()},
		{'~', vec(3), vec(0, 1, 2)},
		{'#', NewScalar(9), NewScalar(1)},
		{'#', vec(4, 5, 6), NewScalar(3)},
		{'#', mat(2, 3, 1, 2, 3, 4, 5, 6), NewScalar(2)},
		{',', mat(2, 2, 1, 2, 3, 4), vec(1, 2, 3, 4)},
		{',', NewScalar(5), vec(5)},
		{'<', vec(7, 8), vec(7, 8)},
	}
	c := new(testContext)
	for _, test := range tests {
		got, err := c.EvalUnary(test.op, test.in)
		if err != nil {
			t.Errorf("%c %v: %v", test.op, test.in, err)
			continue
		}
		if !got.Equal(test.want) {
			t.Errorf("%c %v = %v %v; want %v %v", test.op, test.in, got.Shape(), got, test.want.Shape(), test.want)
		}
	}
}

func TestBinary(t *testing.T) {
	var tests = []struct {
		left  Array
		op    byte
		right Array
		want  Array
	}{
		{NewScalar(1), '+', NewScalar(2), NewScalar(3)},
		{vec(1, 2, 3), '+', vec(10, 20, 30), vec(11, 22, 33)},
		{NewScalar(1), '+', vec(1, 2), vec(2, 3)},
		{vec(1, 2), '+', vec(5), vec(6, 7)},
		{mat(2, 2, 1, 2, 3, 4), '+', NewScalar(1), mat(2, 2, 2, 3, 4, 5)},
		{vec(1, 5), '<', vec(3, 3), vec(1, 0)},
		{NewScalar(2), '<', vec(1, 2, 3), vec(0, 0, 1)},
		{vec(2, 9), '~', vec(5, 2, 2), vec(1, -1)},
		{NewScalar(2), '~', vec(5, 2, 2), NewScalar(1)},
		{vec(2, 3), '#', vec(0, 1, 2, 3, 4, 5), mat(2, 3, 0, 1, 2, 3, 4, 5)},
		{vec(2, 2), '#', vec(1, 2, 3), mat(2, 2, 1, 2, 3, 1)},
		{NewScalar(5), '#', NewScalar(7), vec(7, 7, 7, 7, 7)},
		{vec(0, 3), '#', vec(1), Array{shape: []int{0, 3}, data: []int64{}}},
		{NewScalar(2), '{', vec(7, 8, 9), NewScalar(9)},
		{vec(2, 0), '{', vec(7, 8, 9), vec(9, 7)},
		{NewScalar(1), '{', mat(2, 2, 1, 2, 3, 4), vec(3, 4)},
		{vec(1, 1), '{', mat(2, 2, 1, 2, 3, 4), mat(2, 2, 3, 4, 3, 4)},
		{NewScalar(0), '{', NewScalar(6), NewScalar(6)},
		{NewScalar(1), ',', NewScalar(2), vec(1, 2)},
		{vec(1, 2), ',', vec(3), vec(1, 2, 3)},
		{mat(1, 2, 1, 2), ',', mat(2, 2, 3, 4, 5, 6), mat(3, 2, 1, 2, 3, 4, 5, 6)},
	}
	c := new(testContext)
	for _, test := range tests {
		got, err := c.EvalBinary(test.left, test.op, test.right)
		if err != nil {
			t.Errorf("%v %c %v: %v", test.left, test.op, test.right, err)
			continue
		}
		if !got.Equal(test.want) {
			t.Errorf("%v %c %v = %v %v; want %v %v", test.left, test.op, test.right, got.Shape(), got, test.want.Shape(), test.want)
		}
	}
}

func TestBinaryError(t *testing.T) {
	var tests = []struct {
		left  Array
		op    byte
		right Array
		kind  ErrorKind
	}{
		{vec(1, 2), '+', vec(1, 2, 3), ShapeMismatch},
		{vec(1, 2), '<', mat(1, 2, 1, 2), ShapeMismatch},
		{NewScalar(9223372036854775807), '+', NewScalar(1), InvalidArgument},
		{mat(1, 1, 2), '#', vec(1, 2), InvalidShape},
		{vec(2, -1), '#', vec(1, 2), InvalidShape},
		{NewScalar(3), '#', vec(), InvalidArgument},
		{NewScalar(7), '{', vec(1, 2, 3), IndexOutOfRange},
		{NewScalar(3), '{', vec(1, 2, 3), IndexOutOfRange},
		{NewScalar(1), '{', NewScalar(6), IndexOutOfRange},
		{mat(2, 2, 1, 2, 3, 4), ',', mat(1, 3, 1, 2, 3), ShapeMismatch},
		{mat(2, 2, 1, 2, 3, 4), ',', vec(1, 2), ShapeMismatch},
	}
	c := new(testContext)
	for _, test := range tests {
		_, err := c.EvalBinary(test.left, test.op, test.right)
		if !IsKind(err, test.kind) {
			t.Errorf("%v %c %v: expected %s; got %v", test.left, test.op, test.right, test.kind, err)
		}
	}
}

func TestIotaError(t *testing.T) {
	c := new(testContext)
	for _, in := range []Array{NewScalar(-1), vec(1, 2)} {
		if _, err := c.EvalUnary('~', in); !IsKind(err, InvalidArgument) {
			t.Errorf("~%v: expected invalid argument; got %v", in, err)
		}
	}
}

func TestSizeLimit(t *testing.T) {
	c := new(testContext)
	c.conf.SetMaxElements(100)
	checks := []func() error{
		func() error { _, err := c.EvalUnary('~', NewScalar(101)); return err },
		func() error { _, err := c.EvalBinary(vec(10, 11), '#', NewScalar(1)); return err },
		func() error { _, err := c.EvalBinary(NewScalar(1000), '#', NewScalar(1)); return err },
		func() error {
			_, err := c.EvalBinary(vec(4611686018427387904, 4611686018427387904), '#', NewScalar(1))
			return err
		},
		func() error {
			big, _ := c.EvalUnary('~', NewScalar(60))
			_, err := c.EvalBinary(big, ',', big)
			return err
		},
	}
	for i, check := range checks {
		if err := check(); !IsKind(err, SizeLimitExceeded) {
			t.Errorf("check %d: expected size limit; got %v", i, err)
		}
	}
	if _, err := c.EvalUnary('~', NewScalar(100)); err != nil {
		t.Errorf("~100: %v", err)
	}
}

func TestString(t *testing.T) {
	var tests = []struct {
		a    Array
		want string
	}{
		{NewScalar(42), "42"},
		{NewScalar(-1), "-1"},
		{vec(7), "7"},
		{vec(1, 2, 3), "1 2 3"},
		{vec(), ""},
		{mat(2, 3, 0, 1, 2, 3, 4, 5), "0 1 2\n3 4 5"},
		{mat(2, 2, 1, 10, 100, 2), "  1  10\n100   2"},
		{Array{shape: []int{2, 1, 2}, data: []int64{1, 2, 3, 4}}, "1 2\n\n3 4"},
		{Array{shape: []int{3, 0}, data: []int64{}}, ""},
	}
	for _, test := range tests {
		if got := test.a.String(); got != test.want {
			t.Errorf("%v: got %q; want %q", test.a.Shape(), got, test.want)
		}
	}
}

func TestExpr(t *testing.T) {
	// ~3 + ~3
	e := &DyadicExpr{
		Op:    '+',
		Left:  &MonadicExpr{Op: '~', Right: NewScalar(3)},
		Right: &MonadicExpr{Op: '~', Right: NewScalar(3)},
	}
	c := new(testContext)
	got, err := e.Eval(c)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "0 2 4" {
		t.Errorf("got %q", got)
	}
	if c.depth != 0 {
		t.Errorf("depth not restored: %d", c.depth)
	}
	if s := e.ProgString(); s != "(~ 3) + ~ 3" {
		t.Errorf("ProgString = %q", s)
	}
	c.conf.SetMaxDepth(1)
	if _, err := e.Eval(c); !IsKind(err, RecursionLimitExceeded) {
		t.Errorf("expected recursion limit; got %v", err)
	}
	if c.depth != 0 {
		t.Errorf("depth not restored after error: %d", c.depth)
	}
}
