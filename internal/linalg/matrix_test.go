package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ndarray/internal/tensor"
)

func TestMatrixFromRows(t *testing.T) {
	m, err := FromRows([][]float32{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, tensor.Shape{2, 3}, m.Shape())
	assert.Equal(t, "[[1, 2, 3], [4, 5, 6]]", m.String())

	_, err = FromRows([][]float32{{1, 2}, {3}})
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	empty, err := FromRows[float32](nil)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{0, 0}, empty.Shape())
}

func TestMatrixRowCol(t *testing.T) {
	m, err := FromShape(2, 3, []int32{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.True(t, row.EqualNested([]int32{4, 5, 6}))

	col, err := m.Col(2)
	require.NoError(t, err)
	assert.True(t, col.EqualNested([]int32{3, 6}))

	_, err = m.Row(2)
	assert.ErrorIs(t, err, tensor.ErrInvalidSlicing)
	_, err = m.Col(3)
	assert.ErrorIs(t, err, tensor.ErrInvalidSlicing)

	assert.True(t, m.T().EqualNested([][]int32{{1, 4}, {2, 5}, {3, 6}}))
}

func TestMatrixUpdate(t *testing.T) {
	m, err := Zeros[int64](2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Update([][]int64{{1, 2}, {3, 4}}))
	require.NoError(t, m.UpdateRow(0, []int64{10, 20}))
	require.NoError(t, m.Set(1, 1, 40))
	assert.True(t, m.EqualNested([][]int64{{10, 20}, {3, 40}}))

	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)

	assert.ErrorIs(t, m.UpdateRow(0, []int64{1}), tensor.ErrShapeMismatch)
}

func TestMatrixTMut(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	tr, err := m.TMut()
	require.NoError(t, err)
	require.NoError(t, tr.SetVal([]int{0, 1}, 30))
	tr.Release()

	assert.True(t, m.EqualNested([][]float64{{1, 2}, {30, 4}}))
}

func TestMatrixArithmetic(t *testing.T) {
	a, err := FromRows([][]int32{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := FromRows([][]int32{{5, 6}, {7, 8}})
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.EqualNested([][]int32{{6, 8}, {10, 12}}))

	diff, err := b.Sub(a)
	require.NoError(t, err)
	assert.True(t, diff.EqualNested([][]int32{{4, 4}, {4, 4}}))

	prod, err := a.Mul(b)
	require.NoError(t, err)
	assert.True(t, prod.EqualNested([][]int32{{19, 22}, {43, 50}}))

	require.NoError(t, prod.MulScalar(2))
	require.NoError(t, prod.SubScalar(38))
	require.NoError(t, prod.AddScalar(1))
	assert.True(t, prod.EqualNested([][]int32{{1, 7}, {49, 63}}))

	require.NoError(t, diff.SubScalar(5))
	require.NoError(t, diff.Relu())
	assert.True(t, diff.EqualNested([][]int32{{0, 0}, {0, 0}}))

	c, err := FromRows([][]int32{{1, 2, 3}})
	require.NoError(t, err)
	_, err = a.Mul(c)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatchBroadcast)
}

func TestMatrixEqual(t *testing.T) {
	a, err := FromRows([][]uint8{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := FromShape(2, 2, []uint8{1, 2, 3, 4})
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	require.NoError(t, b.Set(0, 0, 9))
	assert.False(t, a.Equal(b))
}

func TestMatrixFromOneHot(t *testing.T) {
	m, err := FromOneHot([]string{"b", "a", "b"})
	require.NoError(t, err)
	assert.True(t, m.EqualNested([][]uint8{{1, 0}, {0, 1}, {1, 0}}))

	_, err = FromOneHot([]string(nil))
	assert.ErrorIs(t, err, tensor.ErrInvalidParam)
}

func TestWrap(t *testing.T) {
	x, err := tensor.Zeros[float32](tensor.Shape{2, 2, 2})
	require.NoError(t, err)
	_, err = Wrap(x)
	assert.ErrorIs(t, err, tensor.ErrDimensionMismatch)

	y, err := tensor.Zeros[float32](tensor.Shape{3, 2})
	require.NoError(t, err)
	m, err := Wrap(y)
	require.NoError(t, err)
	assert.Same(t, y, m.Tensor())
}

func TestMatMulMatchesGonum(t *testing.T) {
	aData := []float64{0.5, -1, 2, 3, 0.25, -4, 1, 1, 1, 7, -2, 0.5}
	bData := []float64{1, 2, -1, 0.5, 3, 3, -2, 1, 0, 4, 2, -0.5}

	a, err := FromShape(3, 4, aData)
	require.NoError(t, err)
	b, err := FromShape(4, 3, bData)
	require.NoError(t, err)
	got, err := a.Mul(b)
	require.NoError(t, err)

	var want mat.Dense
	want.Mul(mat.NewDense(3, 4, aData), mat.NewDense(4, 3, bData))
	assert.True(t, mat.EqualApprox(&want, got.Mat(), 1e-12), "got %v", got)

	// Transposed operand through the adapter.
	at, err := Wrap(a.T().Contiguous())
	require.NoError(t, err)
	assert.True(t, mat.Equal(a.Mat().T(), at.Mat()))
}
