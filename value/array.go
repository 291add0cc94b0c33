// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"strconv"
	"strings"
)

/*
	2 3 # ~6

0 1 2
3 4 5
*/

// Array is the only run-time value: a shape and the elements in row-major
// order. The number of elements is always the product of the shape; an
// empty shape is a scalar holding one element. Arrays are immutable, so
// operations may share the underlying storage of their operands.
type Array struct {
	shape []int
	data  []int64
}

var _ Expr = Array{}

// NewScalar returns a rank 0 array holding x.
func NewScalar(x int64) Array {
	return Array{data: []int64{x}}
}

// NewVector returns a rank 1 array holding the elements.
// The slice is copied.
func NewVector(elems ...int64) Array {
	return Array{
		shape: []int{len(elems)},
		data:  append([]int64{}, elems...),
	}
}

// NewArray returns an array with the given shape and elements.
// Both slices are copied.
func NewArray(shape []int, data []int64) (Array, error) {
	n := 1
	for _, d := range shape {
		if d < 0 {
			return Array{}, Errorf(InvalidShape, "negative axis length %d", d)
		}
		n *= d
	}
	if n != len(data) {
		return Array{}, Errorf(InvalidShape, "shape %v needs %d elements; have %d", shape, n, len(data))
	}
	return Array{
		shape: append([]int{}, shape...),
		data:  append([]int64{}, data...),
	}, nil
}

// newArray builds an array from slices the caller hands over.
func newArray(shape []int, data []int64) Array {
	return Array{shape: shape, data: data}
}

// Parse returns the array denoted by a literal: a single integer
// is a scalar, a blank-separated list of integers is a vector.
func Parse(text string) (Array, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Array{}, Errorf(InvalidArgument, "empty literal")
	}
	data := make([]int64, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return Array{}, Errorf(InvalidArgument, "bad number %q", f)
		}
		data[i] = x
	}
	if len(data) == 1 {
		return NewScalar(data[0]), nil
	}
	return newArray([]int{len(data)}, data), nil
}

// Shape returns a copy of the shape of a.
func (a Array) Shape() []int {
	return append([]int{}, a.shape...)
}

// Data returns a copy of the elements of a in row-major order.
func (a Array) Data() []int64 {
	return append([]int64{}, a.data...)
}

// Rank returns the number of axes of a.
func (a Array) Rank() int {
	return len(a.shape)
}

// Len returns the number of elements of a.
func (a Array) Len() int {
	return len(a.data)
}

// At returns the i'th element of a in row-major order.
func (a Array) At(i int) int64 {
	return a.data[i]
}

// IsScalar reports whether a is a scalar or a one-element vector.
// Both print and broadcast the same way.
func (a Array) IsScalar() bool {
	switch len(a.shape) {
	case 0:
		return true
	case 1:
		return a.shape[0] == 1
	}
	return false
}

// items returns the number of items along the first axis of a.
// A scalar has one item, itself.
func (a Array) items() int {
	if len(a.shape) == 0 {
		return 1
	}
	return a.shape[0]
}

// Equal reports whether a and b have the same shape and elements.
func (a Array) Equal(b Array) bool {
	return sameShape(a.shape, b.shape) && sameData(a.data, b.data)
}

func sameShape(s, t []int) bool {
	if len(s) != len(t) {
		return false
	}
	for i := range s {
		if s[i] != t[i] {
			return false
		}
	}
	return true
}

func sameData(x, y []int64) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// Eval implements Expr; an array evaluates to itself.
func (a Array) Eval(Context) (Array, error) {
	return a, nil
}

// ProgString returns a representation of a suitable for program source
// when a has rank 0 or 1, and a reshape expression otherwise.
func (a Array) ProgString() string {
	if a.Rank() <= 1 && a.Len() > 0 {
		return joinInts(a.data)
	}
	shape := make([]int64, len(a.shape))
	for i, d := range a.shape {
		shape[i] = int64(d)
	}
	s := "(" + joinInts(shape) + ")#"
	if a.Len() == 0 {
		return s + "~0"
	}
	return s + joinInts(a.data)
}

func joinInts(x []int64) string {
	var b strings.Builder
	for i, v := range x {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatInt(v, 10))
	}
	return b.String()
}
