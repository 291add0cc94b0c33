// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// index implements u { v: each element of u selects an item along
// the first axis of v. The result has shape (shape u), (1 drop shape v).
func index(c Context, u, v Array) (Array, error) {
	var itemShape []int
	if v.Rank() > 0 {
		itemShape = v.shape[1:]
	}
	itemSize := 1
	for _, d := range itemShape {
		itemSize *= d
	}
	n := v.items()
	if err := checkSize(c, "from", int64(len(u.data))*int64(itemSize)); err != nil {
		return Array{}, err
	}
	data := make([]int64, 0, len(u.data)*itemSize)
	for _, k := range u.data {
		if k < 0 || k >= int64(n) {
			return Array{}, Errorf(IndexOutOfRange, "from: index %d out of range [0, %d)", k, n)
		}
		start := int(k) * itemSize
		data = append(data, v.data[start:start+itemSize]...)
	}
	shape := make([]int, 0, len(u.shape)+len(itemShape))
	shape = append(shape, u.shape...)
	shape = append(shape, itemShape...)
	return newArray(shape, data), nil
}
