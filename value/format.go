// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"strconv"
	"strings"
)

// String formats a for display. A scalar prints as a bare integer and a
// vector as blank-separated integers. A matrix prints one row per line with
// every element right-aligned to a common width; higher ranks print their
// matrices separated by blank lines. An empty array prints as nothing.
func (a Array) String() string {
	switch {
	case a.Len() == 0:
		return ""
	case a.IsScalar():
		return strconv.FormatInt(a.data[0], 10)
	case a.Rank() == 1:
		return joinInts(a.data)
	}
	strs := make([]string, len(a.data))
	width := 1
	for i, x := range a.data {
		strs[i] = strconv.FormatInt(x, 10)
		if width < len(strs[i]) {
			width = len(strs[i])
		}
	}
	var b strings.Builder
	writeNd(&b, a.shape, strs, width)
	return b.String()
}

// writeNd prints the array of the given shape, rank 2 or more, whose
// elements are already formatted in value.
func writeNd(b *strings.Builder, shape []int, value []string, width int) {
	if len(shape) == 2 {
		write2d(b, shape[0], shape[1], value, width)
		return
	}
	size := len(value) / shape[0] // number of elements in each subarray.
	sep := strings.Repeat("\n", len(shape)-1)
	for i := 0; i < shape[0]; i++ {
		if i > 0 {
			b.WriteString(sep)
		}
		writeNd(b, shape[1:], value[i*size:(i+1)*size], width)
	}
}

// write2d prints the nrows by ncols matrix into the buffer.
// value is a slice of already-printed values.
func write2d(b *strings.Builder, nrows, ncols int, value []string, width int) {
	index := 0
	for row := 0; row < nrows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < ncols; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			s := value[index]
			for pad := width - len(s); pad > 0; pad-- {
				b.WriteByte(' ')
			}
			b.WriteString(s)
			index++
		}
	}
}
