// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// Unary operators.

type unaryFn func(Context, Array) (Array, error)

type unaryOp struct {
	name string
	fn   unaryFn
}

func (op *unaryOp) Name() string {
	return op.name
}

func (op *unaryOp) EvalUnary(c Context, right Array) (Array, error) {
	return op.fn(c, right)
}

// UnaryOps maps each verb to its monadic form. A verb missing from
// the map has no monadic form.
var UnaryOps map[byte]UnaryOp

var unaryPlus, unaryIota, unaryTally, unaryRavel, unaryBox *unaryOp

// To avoid initialization cycles when we refer to the ops from inside
// themselves, we use an init function to initialize the ops.
func init() {
	unaryPlus = &unaryOp{
		name: "identity",
		fn: func(c Context, v Array) (Array, error) {
			return v, nil
		},
	}

	unaryIota = &unaryOp{
		name: "iota",
		fn:   interval,
	}

	unaryTally = &unaryOp{
		name: "tally",
		fn: func(c Context, v Array) (Array, error) {
			return NewScalar(int64(v.items())), nil
		},
	}

	unaryRavel = &unaryOp{
		name: "ravel",
		fn: func(c Context, v Array) (Array, error) {
			return newArray([]int{v.Len()}, v.data), nil
		},
	}

	// Box is a passthrough: there are no boxed arrays.
	unaryBox = &unaryOp{
		name: "box",
		fn: func(c Context, v Array) (Array, error) {
			return v, nil
		},
	}

	UnaryOps = map[byte]UnaryOp{
		'+': unaryPlus,
		'~': unaryIota,
		'#': unaryTally,
		',': unaryRavel,
		'<': unaryBox,
	}
}

// interval returns the vector 0 1 ... n-1.
func interval(c Context, v Array) (Array, error) {
	if !v.IsScalar() {
		return Array{}, Errorf(InvalidArgument, "iota needs a single number; have shape %v", v.shape)
	}
	n := v.data[0]
	if n < 0 {
		return Array{}, Errorf(InvalidArgument, "iota of negative number %d", n)
	}
	if err := checkSize(c, "iota", n); err != nil {
		return Array{}, err
	}
	data := make([]int64, n)
	for i := range data {
		data[i] = int64(i)
	}
	return newArray([]int{int(n)}, data), nil
}
