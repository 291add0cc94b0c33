// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// Binary operators.

type binaryFn func(c Context, left, right Array) (Array, error)

type binaryOp struct {
	name string
	fn   binaryFn
}

func (op *binaryOp) Name() string {
	return op.name
}

func (op *binaryOp) EvalBinary(c Context, left, right Array) (Array, error) {
	return op.fn(c, left, right)
}

// BinaryOps maps each verb to its dyadic form. A verb missing from
// the map has no dyadic form.
var BinaryOps map[byte]BinaryOp

var add, find, reshape, from, catenate, less *binaryOp

func init() {
	add = &binaryOp{
		name: "add",
		fn: func(c Context, u, v Array) (Array, error) {
			return elementwise("+", u, v, func(x, y int64) (int64, error) {
				z := x + y
				if (y > 0 && z < x) || (y < 0 && z > x) {
					return 0, Errorf(InvalidArgument, "integer overflow: %d + %d", x, y)
				}
				return z, nil
			})
		},
	}

	less = &binaryOp{
		name: "less than",
		fn: func(c Context, u, v Array) (Array, error) {
			return elementwise("<", u, v, func(x, y int64) (int64, error) {
				return toInt(x < y), nil
			})
		},
	}

	find = &binaryOp{
		name: "find",
		fn:   indexOf,
	}

	reshape = &binaryOp{
		name: "reshape",
		fn:   reshapeOf,
	}

	from = &binaryOp{
		name: "from",
		fn:   index,
	}

	catenate = &binaryOp{
		name: "append",
		fn:   concat,
	}

	BinaryOps = map[byte]BinaryOp{
		'+': add,
		'~': find,
		'#': reshape,
		'{': from,
		',': catenate,
		'<': less,
	}
}

// toInt turns the boolean into 0 or 1.
func toInt(t bool) int64 {
	if t {
		return 1
	}
	return 0
}

// elementwise applies fn to corresponding elements of u and v.
// The shapes must agree unless one side is a scalar, in which case
// it is paired with every element of the other.
func elementwise(op string, u, v Array, fn func(x, y int64) (int64, error)) (Array, error) {
	var shape []int
	switch {
	case u.IsScalar() && v.IsScalar():
		shape = u.shape
		if len(v.shape) > len(shape) {
			shape = v.shape
		}
	case u.IsScalar():
		shape = v.shape
	case v.IsScalar():
		shape = u.shape
	case sameShape(u.shape, v.shape):
		shape = u.shape
	default:
		return Array{}, Errorf(ShapeMismatch, "%s: shapes %v and %v do not conform", op, u.shape, v.shape)
	}
	n := len(u.data)
	if u.IsScalar() {
		n = len(v.data)
	}
	data := make([]int64, n)
	for i := range data {
		x, y := u.data[0], v.data[0]
		if !u.IsScalar() {
			x = u.data[i]
		}
		if !v.IsScalar() {
			y = v.data[i]
		}
		z, err := fn(x, y)
		if err != nil {
			return Array{}, err
		}
		data[i] = z
	}
	return newArray(shape, data), nil
}

// indexOf returns, for each element of u, the position of its first
// occurrence in the elements of v, or -1 if it does not occur.
// The result has the shape of u.
func indexOf(c Context, u, v Array) (Array, error) {
	first := make(map[int64]int64, len(v.data))
	for i := len(v.data) - 1; i >= 0; i-- {
		first[v.data[i]] = int64(i)
	}
	data := make([]int64, len(u.data))
	for i, x := range u.data {
		pos, ok := first[x]
		if !ok {
			pos = -1
		}
		data[i] = pos
	}
	return newArray(u.shape, data), nil
}

// reshapeOf returns the elements of v, cycled or truncated, in the
// shape given by u.
func reshapeOf(c Context, u, v Array) (Array, error) {
	if u.Rank() > 1 {
		return Array{}, Errorf(InvalidShape, "reshape: left argument must be a vector; have shape %v", u.shape)
	}
	max := int64(c.Config().MaxElements())
	shape := make([]int, len(u.data))
	zero := false
	for i, d := range u.data {
		if d < 0 {
			return Array{}, Errorf(InvalidShape, "reshape: negative axis length %d", d)
		}
		if int64(int(d)) != d {
			return Array{}, Errorf(SizeLimitExceeded, "reshape: axis length %d exceeds limit of %d", d, max)
		}
		if d == 0 {
			zero = true
		}
		shape[i] = int(d)
	}
	// An empty result has no elements to limit, however long its other axes.
	n := int64(0)
	if !zero {
		n = 1
		for _, d := range shape {
			if n > max/int64(d) {
				return Array{}, Errorf(SizeLimitExceeded, "reshape: shape %v exceeds limit of %d elements", shape, max)
			}
			n *= int64(d)
		}
	}
	if n > 0 && len(v.data) == 0 {
		return Array{}, Errorf(InvalidArgument, "reshape: no elements to fill shape %v", shape)
	}
	data := make([]int64, n)
	for i := range data {
		data[i] = v.data[i%len(v.data)]
	}
	return newArray(shape, data), nil
}

// concat joins u and v along the first axis. Scalars are treated as
// one-element vectors, and two vectors give a vector. Arrays of higher
// rank must agree in all axes but the first and keep their rank: this
// is J's rule for append, not a flattening into one vector.
func concat(c Context, u, v Array) (Array, error) {
	us, vs := u.shape, v.shape
	if len(us) == 0 {
		us = []int{1}
	}
	if len(vs) == 0 {
		vs = []int{1}
	}
	var shape []int
	if len(us) == 1 && len(vs) == 1 {
		shape = []int{len(u.data) + len(v.data)}
	} else {
		if len(us) != len(vs) || !sameShape(us[1:], vs[1:]) {
			return Array{}, Errorf(ShapeMismatch, "append: shapes %v and %v do not conform", u.shape, v.shape)
		}
		shape = append([]int{us[0] + vs[0]}, us[1:]...)
	}
	if err := checkSize(c, "append", int64(len(u.data))+int64(len(v.data))); err != nil {
		return Array{}, err
	}
	data := make([]int64, 0, len(u.data)+len(v.data))
	data = append(data, u.data...)
	data = append(data, v.data...)
	return newArray(shape, data), nil
}
