// Package linalg provides 2-D matrix and column-vector wrappers over the
// tensor engine, plus adapters to gonum's mat package.
package linalg

import (
	"github.com/born-ml/ndarray/internal/tensor"
)

// Matrix is a rank-2 tensor with row/column accessors.
type Matrix[T tensor.Numeric] struct {
	t *tensor.Tensor[T]
}

// Wrap adopts a rank-2 tensor without copying it.
func Wrap[T tensor.Numeric](t *tensor.Tensor[T]) (*Matrix[T], error) {
	if t.NDim() != 2 {
		return nil, &tensor.Error{Kind: tensor.ErrDimensionMismatch, NDim: t.NDim(), Axis: 2}
	}
	return &Matrix[T]{t: t}, nil
}

// Zeros creates a rows x cols matrix of zeros.
func Zeros[T tensor.Numeric](rows, cols int) (*Matrix[T], error) {
	t, err := tensor.Zeros[T](tensor.Shape{rows, cols})
	if err != nil {
		return nil, err
	}
	return &Matrix[T]{t: t}, nil
}

// FromRows builds a matrix from row slices. All rows must have the same
// length.
func FromRows[T tensor.Numeric](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 {
		return Zeros[T](0, 0)
	}
	t, err := tensor.FromVec[T](rows)
	if err != nil {
		return nil, err
	}
	return Wrap(t)
}

// FromShape builds a rows x cols matrix from row-major data.
func FromShape[T tensor.Numeric](rows, cols int, data []T) (*Matrix[T], error) {
	t, err := tensor.FromShape(tensor.Shape{rows, cols}, data)
	if err != nil {
		return nil, err
	}
	return &Matrix[T]{t: t}, nil
}

// FromOneHot one-hot encodes labels into a [len(labels), classes] matrix.
func FromOneHot[L comparable](labels []L) (*Matrix[uint8], error) {
	t, err := tensor.FromOneHot(labels)
	if err != nil {
		return nil, err
	}
	return &Matrix[uint8]{t: t}, nil
}

// Tensor returns the underlying tensor.
func (m *Matrix[T]) Tensor() *tensor.Tensor[T] { return m.t }

// Shape returns [rows, cols].
func (m *Matrix[T]) Shape() tensor.Shape { return m.t.Shape() }

// Dims returns the number of rows and columns.
func (m *Matrix[T]) Dims() (rows, cols int) {
	s := m.t.Shape()
	return s[0], s[1]
}

// At returns the element at row i, column j.
func (m *Matrix[T]) At(i, j int) (T, error) { return m.t.GetVal([]int{i, j}) }

// Set writes the element at row i, column j.
func (m *Matrix[T]) Set(i, j int, v T) error { return m.t.SetVal([]int{i, j}, v) }

// Row returns a view of row i.
func (m *Matrix[T]) Row(i int) (*tensor.View[T], error) { return m.t.Slice([]int{i}) }

// Col returns a view of column j.
func (m *Matrix[T]) Col(j int) (*tensor.View[T], error) { return m.t.AxisSlice(1, []int{j}) }

// T returns the transposed view.
func (m *Matrix[T]) T() *tensor.View[T] { return m.t.T() }

// TMut takes the matrix's lease and returns a writable transposed view.
func (m *Matrix[T]) TMut() (*tensor.ViewMut[T], error) { return m.t.TMut() }

// Update overwrites the whole matrix with rows.
func (m *Matrix[T]) Update(rows [][]T) error {
	v, err := m.t.Update(nil, rows)
	if err != nil {
		return err
	}
	v.Release()
	return nil
}

// UpdateRow overwrites row i.
func (m *Matrix[T]) UpdateRow(i int, row []T) error {
	v, err := m.t.Update([]int{i}, row)
	if err != nil {
		return err
	}
	v.Release()
	return nil
}

// Add returns m + other with broadcasting.
func (m *Matrix[T]) Add(other *Matrix[T]) (*Matrix[T], error) {
	return m.binary(other, tensor.Add[T])
}

// Sub returns m - other with broadcasting.
func (m *Matrix[T]) Sub(other *Matrix[T]) (*Matrix[T], error) {
	return m.binary(other, tensor.Sub[T])
}

// Mul returns the matrix product m x other.
func (m *Matrix[T]) Mul(other *Matrix[T]) (*Matrix[T], error) {
	return m.binary(other, tensor.Mul[T])
}

func (m *Matrix[T]) binary(other *Matrix[T], op func(a, b tensor.Reader[T]) (*tensor.Tensor[T], error)) (*Matrix[T], error) {
	t, err := op(m.t, other.t)
	if err != nil {
		return nil, err
	}
	return &Matrix[T]{t: t}, nil
}

// AddScalar adds s to every element in place.
func (m *Matrix[T]) AddScalar(s T) error { return m.t.AddScalar(s) }

// SubScalar subtracts s from every element in place.
func (m *Matrix[T]) SubScalar(s T) error { return m.t.SubScalar(s) }

// MulScalar multiplies every element by s in place.
func (m *Matrix[T]) MulScalar(s T) error { return m.t.MulScalar(s) }

// Relu clamps negative elements to zero in place.
func (m *Matrix[T]) Relu() error { return m.t.Relu() }

// Equal reports structural equality of the underlying tensors.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool { return m.t.Equal(other.t) }

// EqualNested compares m against a nested literal such as [][]T.
func (m *Matrix[T]) EqualNested(nested any) bool { return m.t.EqualNested(nested) }

// String renders the matrix as nested brackets.
func (m *Matrix[T]) String() string { return m.t.String() }
