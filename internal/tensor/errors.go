package tensor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error kinds. Every fallible operation returns an *Error whose Kind is one of
// these sentinels, so callers match with errors.Is.
var (
	ErrInvalidAxis            = errors.New("tensor: invalid axis")
	ErrInvalidSlicing         = errors.New("tensor: invalid slicing")
	ErrShapeMismatch          = errors.New("tensor: shape mismatch")
	ErrDimensionMismatch      = errors.New("tensor: dimension mismatch")
	ErrShapeMismatchBroadcast = errors.New("tensor: shapes not compatible for broadcasting")
	ErrIndexOutOfRange        = errors.New("tensor: index out of range")
	ErrInvalidParam           = errors.New("tensor: invalid parameter")
	ErrInvalidFileContents    = errors.New("tensor: invalid file contents")
	ErrBorrowed               = errors.New("tensor: buffer is mutably borrowed")
	Err                       = errors.New("tensor: error")
)

// Error provides detailed information about a failed tensor operation.
// Only the fields relevant to Kind are populated.
type Error struct {
	Kind   error // One of the package sentinels.
	Axis   int   // Offending axis (InvalidAxis) or supplied length (DimensionMismatch).
	NDim   int   // Rank of the tensor involved.
	Slice  []int // Supplied index prefix (InvalidSlicing).
	ShapeA Shape
	ShapeB Shape
	Index  int // Offending index or flat offset (IndexOutOfRange).
	NElems int // Bound the index was checked against.
	Msg    string
	Err    error // Wrapped cause from a collaborator, if any.
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case ErrInvalidAxis:
		return fmt.Sprintf("Invalid axis [ AXIS: %d | NDIM: %d ]", e.Axis, e.NDim)
	case ErrInvalidSlicing:
		return fmt.Sprintf("Invalid slicing [ SLICE: %s | SHAPE: %s ]", formatDims(e.Slice), formatDims(e.ShapeA))
	case ErrShapeMismatch:
		return fmt.Sprintf("Shape mismatch [ SHAPE(A): %s | SHAPE(B): %s ]", formatDims(e.ShapeA), formatDims(e.ShapeB))
	case ErrDimensionMismatch:
		return fmt.Sprintf("Dimension mismatch [ TENSOR_DIMENSION: %d | DIMENSION: %d ]", e.NDim, e.Axis)
	case ErrShapeMismatchBroadcast:
		return fmt.Sprintf("The two shapes are not compatible for broadcasting [ SHAPE(A): %s | SHAPE(B): %s ]",
			formatDims(e.ShapeA), formatDims(e.ShapeB))
	case ErrIndexOutOfRange:
		return fmt.Sprintf("Index out of range [ INDEX: %d | NUM_ELEMENTS: %d ]", e.Index, e.NElems)
	case ErrInvalidParam:
		return fmt.Sprintf("Invalid parameter [ DESC: %s ]", e.Msg)
	case ErrBorrowed:
		return fmt.Sprintf("Buffer already borrowed [ DESC: %s ]", e.Msg)
	default:
		msg := e.Msg
		if e.Err != nil {
			msg = e.Err.Error()
		}
		return fmt.Sprintf("Error [ ERR_MSG: %s ]", msg)
	}
}

// Unwrap exposes the kind sentinel and the wrapped cause to errors.Is/As.
func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// Wrap converts a collaborator error (I/O, sampling parameters) into the
// generic Err kind. A nil err yields nil; an *Error is returned unchanged.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	var te *Error
	if errors.As(err, &te) {
		return err
	}
	return &Error{Kind: Err, Err: err}
}

func newAxisError(axis, ndim int) *Error {
	return &Error{Kind: ErrInvalidAxis, Axis: axis, NDim: ndim}
}

func newSlicingError(index []int, shape Shape) *Error {
	return &Error{Kind: ErrInvalidSlicing, Slice: append([]int(nil), index...), ShapeA: shape.Clone()}
}

func newShapeError(a, b []int) *Error {
	return &Error{Kind: ErrShapeMismatch, ShapeA: Shape(a).Clone(), ShapeB: Shape(b).Clone()}
}

func newDimensionError(ndim, dim int) *Error {
	return &Error{Kind: ErrDimensionMismatch, NDim: ndim, Axis: dim}
}

func newBroadcastError(a, b Shape) *Error {
	return &Error{Kind: ErrShapeMismatchBroadcast, ShapeA: a.Clone(), ShapeB: b.Clone()}
}

func newIndexError(index, nelems int) *Error {
	return &Error{Kind: ErrIndexOutOfRange, Index: index, NElems: nelems}
}

func newParamError(format string, args ...any) *Error {
	return &Error{Kind: ErrInvalidParam, Msg: fmt.Sprintf(format, args...)}
}

func newBorrowError(msg string) *Error {
	return &Error{Kind: ErrBorrowed, Msg: msg}
}

// formatDims renders dims as "[2, 3]".
func formatDims(dims []int) string {
	parts := make([]string, len(dims))
	for i, d := range dims {
		parts[i] = strconv.Itoa(d)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
