// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"strconv"
	"strings"

	"robpike.io/stak/config"
)

/*
    5 iota

[[1, 2, 3, 4, 5]]
*/

// Matrix is the only kind of value. A scalar is a 1x1 Matrix
// and a vector is a 1xN Matrix.
type Matrix struct {
	rows, cols int
	data       []float64 // Row major. Never modified after construction.
}

// debugConf is used to print values when no configuration is at hand.
var debugConf = &config.Config{}

// Scalar returns a 1x1 Matrix holding x.
func Scalar(x float64) Matrix {
	return Matrix{rows: 1, cols: 1, data: []float64{x}}
}

// RowVector returns a 1xN Matrix holding a copy of the elements.
func RowVector(elems ...float64) Matrix {
	data := make([]float64, len(elems))
	copy(data, elems)
	return Matrix{rows: 1, cols: len(data), data: data}
}

// NewMatrix returns a rows x cols Matrix holding a copy of data,
// which is in row-major order.
func NewMatrix(rows, cols int, data []float64) Matrix {
	if rows < 0 || cols < 0 || rows*cols != len(data) {
		panic(Errorf("bad matrix shape %dx%d for %d elements", rows, cols, len(data)))
	}
	d := make([]float64, len(data))
	copy(d, data)
	return Matrix{rows: rows, cols: cols, data: d}
}

// Shape returns the number of rows and columns of m.
func (m Matrix) Shape() (rows, cols int) {
	return m.rows, m.cols
}

// Len returns the number of elements of m.
func (m Matrix) Len() int {
	return len(m.data)
}

// IsScalar reports whether m holds exactly one element.
func (m Matrix) IsScalar() bool {
	return len(m.data) == 1
}

// At returns the element at row i, column j.
func (m Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(Errorf("index [%d,%d] out of range for %s", i, j, m.shapeString()))
	}
	return m.data[i*m.cols+j]
}

// Data returns a copy of the elements of m in row-major order.
func (m Matrix) Data() []float64 {
	d := make([]float64, len(m.data))
	copy(d, m.data)
	return d
}

// Equal reports whether m and n have the same shape and elements.
func (m Matrix) Equal(n Matrix) bool {
	if m.rows != n.rows || m.cols != n.cols {
		return false
	}
	for i, x := range m.data {
		if x != n.data[i] {
			return false
		}
	}
	return true
}

func (m Matrix) shapeString() string {
	return fmt.Sprintf("%dx%d", m.rows, m.cols)
}

func (m Matrix) String() string {
	return m.Sprint(debugConf)
}

// Sprint formats m. A single element prints as a bare number;
// anything else prints row by row in brackets:
//
//	[[1, 2, 3],
//	 [4, 5, 6]]
func (m Matrix) Sprint(conf *config.Config) string {
	if m.IsScalar() {
		return formatElem(conf, m.data[0])
	}
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < max(m.rows, 1); i++ {
		if i > 0 {
			b.WriteString(",\n ")
		}
		b.WriteByte('[')
		for j := 0; j < m.cols && i < m.rows; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(formatElem(conf, m.data[i*m.cols+j]))
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')
	return b.String()
}

// formatElem formats one element. The default format prints
// the shortest decimal that reads back as x, without an exponent.
func formatElem(conf *config.Config, x float64) string {
	if f := conf.Format(); f != "%v" {
		return fmt.Sprintf(f, x)
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
