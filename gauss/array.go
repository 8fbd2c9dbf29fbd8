// SPDX-License-Identifier: MIT

package gauss

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvnum/matrix"
)

// Array is a shape-tagged real array in row-major order. It describes solver
// inputs of any dimensionality so that Validate can reject the wrong ones.
// A well-formed Array has len(Data) equal to the product of Shape.
type Array struct {
	Shape []int
	Data  []float64

	ragged bool // set by Rows when row lengths differ
}

// Vector returns a 1-D Array holding a copy of v.
func Vector(v ...float64) Array {
	return Array{Shape: []int{len(v)}, Data: append([]float64(nil), v...)}
}

// Rows returns a 2-D Array from row slices. The shape is taken from the row
// count and the first row's length; ragged input is remembered and reported
// by Validate.
func Rows(rows [][]float64) Array {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	ragged := false
	data := make([]float64, 0, len(rows)*cols)
	for _, r := range rows {
		if len(r) != cols {
			ragged = true
		}
		data = append(data, r...)
	}

	return Array{Shape: []int{len(rows), cols}, Data: data, ragged: ragged}
}

// NewArray copies shape and data into an Array without checking them.
func NewArray(shape []int, data []float64) Array {
	return Array{
		Shape: append([]int(nil), shape...),
		Data:  append([]float64(nil), data...),
	}
}

// FromMatrix copies m into a 2-D Array.
func FromMatrix(m matrix.Matrix) (Array, error) {
	rows, err := matrix.ToRows(m)
	if err != nil {
		return Array{}, errors.Wrap(err, "gauss.FromMatrix")
	}

	return Rows(rows), nil
}

// Ndim returns the number of dimensions.
func (a Array) Ndim() int { return len(a.Shape) }

// Consistent reports whether Data matches Shape and no rows were ragged.
func (a Array) Consistent() bool {
	return !a.ragged && a.Size() == len(a.Data)
}

// Size returns the product of Shape, or -1 when a dimension is negative or
// the product overflows an int.
func (a Array) Size() int {
	size := 1
	for _, d := range a.Shape {
		if d < 0 {
			return -1
		}
		if d != 0 && size > math.MaxInt/d {
			return -1
		}
		size *= d
	}

	return size
}
