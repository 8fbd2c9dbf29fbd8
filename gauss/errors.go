// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidShape is matched by every *ShapeError.
	ErrInvalidShape = errors.New("gauss: invalid shape")

	// ErrSingularPivot is matched by every *PivotError.
	ErrSingularPivot = errors.New("gauss: singular pivot")
)

// ShapeKind names the validation check that failed.
type ShapeKind int

const (
	// ShapeDimsA: A is not 2-dimensional.
	ShapeDimsA ShapeKind = iota + 1
	// ShapeRaggedA: A's data length does not match its shape.
	ShapeRaggedA
	// ShapeNotSquare: A has different row and column counts.
	ShapeNotSquare
	// ShapeDimsB: B is neither 1- nor 2-dimensional.
	ShapeDimsB
	// ShapeRaggedB: B's data length does not match its shape.
	ShapeRaggedB
	// ShapeRowMismatch: B's row count differs from A's.
	ShapeRowMismatch
	// ShapeEmpty: the system has no unknowns or no right-hand side.
	ShapeEmpty
)

var shapeKindNames = map[ShapeKind]string{
	ShapeDimsA:       "dims-a",
	ShapeRaggedA:     "ragged-a",
	ShapeNotSquare:   "not-square",
	ShapeDimsB:       "dims-b",
	ShapeRaggedB:     "ragged-b",
	ShapeRowMismatch: "row-mismatch",
	ShapeEmpty:       "empty",
}

func (k ShapeKind) String() string {
	if s, ok := shapeKindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("ShapeKind(%d)", int(k))
}

// ShapeError reports a rejected input shape. ShapeA and ShapeB echo the
// declared shapes of the operands.
type ShapeError struct {
	Kind   ShapeKind
	ShapeA []int
	ShapeB []int
	// DataLen is the offending operand's data length for the ragged kinds.
	DataLen int
}

func (e *ShapeError) Error() string {
	var msg string
	switch e.Kind {
	case ShapeDimsA:
		msg = fmt.Sprintf("A is %d-dimensional, should be 2d", len(e.ShapeA))
	case ShapeRaggedA:
		msg = fmt.Sprintf("A has shape %v but %d values", e.ShapeA, e.DataLen)
	case ShapeNotSquare:
		msg = fmt.Sprintf("A has %d rows and %d columns, should be square", e.ShapeA[0], e.ShapeA[1])
	case ShapeDimsB:
		msg = fmt.Sprintf("b is %d-dimensional, should be 1d or 2d", len(e.ShapeB))
	case ShapeRaggedB:
		msg = fmt.Sprintf("b has shape %v but %d values", e.ShapeB, e.DataLen)
	case ShapeRowMismatch:
		msg = fmt.Sprintf("A has %d rows and b has %d rows, should be equal", e.ShapeA[0], e.ShapeB[0])
	case ShapeEmpty:
		msg = fmt.Sprintf("empty system: A %v, b %v", e.ShapeA, e.ShapeB)
	default:
		msg = e.Kind.String()
	}

	return ErrInvalidShape.Error() + ": " + msg
}

// Unwrap lets errors.Is(err, ErrInvalidShape) match.
func (e *ShapeError) Unwrap() error { return ErrInvalidShape }

// Stage identifies where a singular pivot was met.
type Stage string

const (
	StageElimination  Stage = "elimination"
	StageSubstitution Stage = "substitution"
)

// PivotError reports a pivot with |Value| ≤ Tolerance (or NaN) at row Index.
type PivotError struct {
	Stage     Stage
	Index     int
	Value     float64
	Tolerance float64
}

func (e *PivotError) Error() string {
	return fmt.Sprintf("%s: pivot [%d][%d] = %g during %s (tolerance %g)",
		ErrSingularPivot.Error(), e.Index, e.Index, e.Value, e.Stage, e.Tolerance)
}

// Unwrap lets errors.Is(err, ErrSingularPivot) match.
func (e *PivotError) Unwrap() error { return ErrSingularPivot }
