package linalg

import (
	"github.com/born-ml/ndarray/internal/tensor"
)

// Vector is a column vector stored as an [n, 1] tensor, so it composes with
// Matrix.Mul without reshaping.
type Vector[T tensor.Numeric] struct {
	t *tensor.Tensor[T]
}

// ZerosVec creates a column vector of n zeros.
func ZerosVec[T tensor.Numeric](n int) (*Vector[T], error) {
	t, err := tensor.Zeros[T](tensor.Shape{n, 1})
	if err != nil {
		return nil, err
	}
	return &Vector[T]{t: t}, nil
}

// FromSlice builds a column vector holding a copy of data.
func FromSlice[T tensor.Numeric](data []T) (*Vector[T], error) {
	t, err := tensor.FromShape(tensor.Shape{len(data), 1}, data)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{t: t}, nil
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.t.Shape()[0] }

// Get returns element i.
func (v *Vector[T]) Get(i int) (T, error) { return v.t.GetVal([]int{i, 0}) }

// Set writes element i.
func (v *Vector[T]) Set(i int, x T) error { return v.t.SetVal([]int{i, 0}, x) }

// Tensor returns the underlying [n, 1] tensor.
func (v *Vector[T]) Tensor() *tensor.Tensor[T] { return v.t }

// Matrix views the vector as an n x 1 matrix.
func (v *Vector[T]) Matrix() *Matrix[T] { return &Matrix[T]{t: v.t} }

// Slice returns a copy of the elements.
func (v *Vector[T]) Slice() []T { return v.t.Contiguous().Data() }

// Equal reports structural equality of the underlying tensors.
func (v *Vector[T]) Equal(other *Vector[T]) bool { return v.t.Equal(other.t) }

// EqualNested compares v against a flat literal such as []T.
func (v *Vector[T]) EqualNested(nested any) bool {
	col, err := v.t.AxisSlice(1, []int{0})
	if err != nil {
		return false
	}
	return col.EqualNested(nested)
}

// String renders the vector as a flat bracket list.
func (v *Vector[T]) String() string {
	col, err := v.t.AxisSlice(1, []int{0})
	if err != nil {
		return v.t.String()
	}
	return col.String()
}
