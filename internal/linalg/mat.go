package linalg

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ndarray/internal/tensor"
)

// dense exposes a rank-2 view as a read-only gonum mat.Matrix. Elements are
// read through the view's strides and converted to float64 on access.
type dense[T tensor.Numeric] struct {
	v          *tensor.View[T]
	rows, cols int
}

var _ mat.Matrix = dense[float32]{}

func newDense[T tensor.Numeric](v *tensor.View[T]) dense[T] {
	s := v.Shape()
	return dense[T]{v: v, rows: s[0], cols: s[1]}
}

func (d dense[T]) Dims() (r, c int) { return d.rows, d.cols }

// At panics with mat.ErrIndexOutOfRange on a bad index, as gonum matrices do.
func (d dense[T]) At(i, j int) float64 {
	x, err := d.v.GetVal([]int{i, j})
	if err != nil {
		panic(mat.ErrIndexOutOfRange)
	}
	return float64(x)
}

func (d dense[T]) T() mat.Matrix { return mat.Transpose{Matrix: d} }

// Mat returns a zero-copy gonum view of m. Later writes to m are visible
// through it.
func (m *Matrix[T]) Mat() mat.Matrix {
	return newDense(m.t.AsView())
}

// Mat returns a zero-copy n x 1 gonum view of v.
func (v *Vector[T]) Mat() mat.Matrix {
	return newDense(v.t.AsView())
}

// FromMat copies any gonum matrix into a new float64 Matrix.
func FromMat(a mat.Matrix) (*Matrix[float64], error) {
	r, c := a.Dims()
	data := make([]float64, 0, r*c)
	for i := range r {
		for j := range c {
			data = append(data, a.At(i, j))
		}
	}
	return FromShape(r, c, data)
}

// ToDense copies m into a new gonum *mat.Dense.
func (m *Matrix[T]) ToDense() *mat.Dense {
	return mat.DenseCopyOf(m.Mat())
}
