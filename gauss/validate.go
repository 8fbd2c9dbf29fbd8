// SPDX-License-Identifier: MIT

package gauss

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvnum/matrix"
)

// Validate checks a and b in a fixed order and returns deep copies as a System:
//  1. A is 2-D            (ShapeDimsA)
//  2. A data fits shape   (ShapeRaggedA)
//  3. A is square         (ShapeNotSquare)
//  4. B is 1-D or 2-D     (ShapeDimsB)
//  5. B data fits shape   (ShapeRaggedB)
//  6. B rows equal A rows (ShapeRowMismatch)
//  7. n ≥ 1 and m ≥ 1     (ShapeEmpty)
//
// A 1-D B is reshaped to n×1 and VectorRHS is set. Non-finite values are
// rejected with matrix.ErrNaNInf. The inputs are never mutated.
func Validate(a, b Array) (*System, error) {
	shapeErr := func(kind ShapeKind, dataLen int) error {
		return &ShapeError{
			Kind:    kind,
			ShapeA:  append([]int(nil), a.Shape...),
			ShapeB:  append([]int(nil), b.Shape...),
			DataLen: dataLen,
		}
	}

	if a.Ndim() != 2 {
		return nil, shapeErr(ShapeDimsA, len(a.Data))
	}
	if !a.Consistent() {
		return nil, shapeErr(ShapeRaggedA, len(a.Data))
	}
	n := a.Shape[0]
	if n != a.Shape[1] {
		return nil, shapeErr(ShapeNotSquare, len(a.Data))
	}
	ndimB := b.Ndim()
	if ndimB != 1 && ndimB != 2 {
		return nil, shapeErr(ShapeDimsB, len(b.Data))
	}
	if !b.Consistent() {
		return nil, shapeErr(ShapeRaggedB, len(b.Data))
	}
	if b.Shape[0] != n {
		return nil, shapeErr(ShapeRowMismatch, len(b.Data))
	}
	m := 1
	if ndimB == 2 {
		m = b.Shape[1]
	}
	if n == 0 || m == 0 {
		return nil, shapeErr(ShapeEmpty, len(b.Data))
	}

	am, err := matrix.FromSlice(n, n, a.Data)
	if err != nil {
		return nil, errors.Wrap(err, "gauss.Validate: A")
	}
	bm, err := matrix.FromSlice(n, m, b.Data)
	if err != nil {
		return nil, errors.Wrap(err, "gauss.Validate: b")
	}

	return &System{A: am, B: bm, N: n, M: m, VectorRHS: ndimB == 1}, nil
}
