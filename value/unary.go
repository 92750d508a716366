// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "math"

// Monadic operators.

// MonadicFn computes the result of a monadic operator from its operand.
type MonadicFn func(Matrix) Matrix

// MaxIota is the largest argument accepted by iota.
const MaxIota = 1 << 24

// unaryElemOp applies op to every element of m.
func unaryElemOp(op func(float64) float64, m Matrix) Matrix {
	data := make([]float64, len(m.data))
	for i, x := range m.data {
		data[i] = op(x)
	}
	return Matrix{rows: m.rows, cols: m.cols, data: data}
}

func negate(m Matrix) Matrix {
	return unaryElemOp(func(x float64) float64 { return x * -1 }, m)
}

// reverse reverses the order of the columns in every row.
func reverse(m Matrix) Matrix {
	data := make([]float64, len(m.data))
	for i := 0; i < m.rows; i++ {
		row := m.data[i*m.cols : (i+1)*m.cols]
		for j, x := range row {
			data[i*m.cols+m.cols-1-j] = x
		}
	}
	return Matrix{rows: m.rows, cols: m.cols, data: data}
}

func length(m Matrix) Matrix {
	return Scalar(float64(m.Len()))
}

func sum(m Matrix) Matrix {
	s := 0.0
	for _, x := range m.data {
		s += x
	}
	return Scalar(s)
}

func product(m Matrix) Matrix {
	p := 1.0
	for _, x := range m.data {
		p *= x
	}
	return Scalar(p)
}

// unaryIota returns the row vector 1 2 ... n, where n is the first
// element of m truncated toward zero. It is empty if n < 1.
func unaryIota(m Matrix) Matrix {
	if m.Len() == 0 {
		panic(Error("iota: empty argument"))
	}
	x := math.Trunc(m.data[0])
	if math.IsNaN(x) || x < 1 {
		return RowVector()
	}
	if x > MaxIota {
		panic(Errorf("iota: %v too large", m.data[0]))
	}
	n := int(x)
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i + 1)
	}
	return Matrix{rows: 1, cols: n, data: data}
}

// MonadicOps maps the names of the monadic operators to their implementations.
var MonadicOps = map[string]MonadicFn{
	"negate":  negate,
	"neg":     negate,
	"reverse": reverse,
	"rev":     reverse,
	"length":  length,
	"len":     length,
	"sum":     sum,
	"product": product,
	"prod":    product,
	"iota":    unaryIota,
}
