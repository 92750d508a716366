// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// Dyadic operators.

// DyadicFn computes the result of a dyadic operator. Its first
// argument is the value popped first, the top of the stack.
// The top is the left operand of - and /, so "a b -" computes
// b-a and "a b /" computes b/a.
type DyadicFn func(top, next Matrix) Matrix

// broadcastDim returns the size of one axis of the result of
// combining axes of size a and b. Sizes must agree unless one is 1.
func broadcastDim(a, b int) (int, bool) {
	switch {
	case a == b:
		return a, true
	case a == 1:
		return b, true
	case b == 1:
		return a, true
	}
	return 0, false
}

// index returns the position in m of element (i, j) of a
// broadcast result; axes of size 1 are stretched.
func (m Matrix) index(i, j int) int {
	if m.rows == 1 {
		i = 0
	}
	if m.cols == 1 {
		j = 0
	}
	return i*m.cols + j
}

// binaryElemOp applies op elementwise to left and right, broadcasting
// axes of size 1.
func binaryElemOp(name string, left Matrix, op func(x, y float64) float64, right Matrix) Matrix {
	rows, rok := broadcastDim(left.rows, right.rows)
	cols, cok := broadcastDim(left.cols, right.cols)
	if !rok || !cok {
		panic(Errorf("%s: shape mismatch: %s and %s", name, left.shapeString(), right.shapeString()))
	}
	data := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[i*cols+j] = op(left.data[left.index(i, j)], right.data[right.index(i, j)])
		}
	}
	return Matrix{rows: rows, cols: cols, data: data}
}

func add(top, next Matrix) Matrix {
	return binaryElemOp("+", top, func(x, y float64) float64 { return x + y }, next)
}

func sub(top, next Matrix) Matrix {
	return binaryElemOp("-", top, func(x, y float64) float64 { return x - y }, next)
}

func mul(top, next Matrix) Matrix {
	return binaryElemOp("*", top, func(x, y float64) float64 { return x * y }, next)
}

// quo divides using IEEE rules: x/0 is an infinity and 0/0 is NaN.
func quo(top, next Matrix) Matrix {
	return binaryElemOp("/", top, func(x, y float64) float64 { return x / y }, next)
}

// DyadicOps maps the names of the dyadic operators to their implementations.
var DyadicOps = map[string]DyadicFn{
	"+": add,
	"-": sub,
	"*": mul,
	"/": quo,
}
