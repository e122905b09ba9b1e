package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ndarray/internal/tensor"
)

func TestVector(t *testing.T) {
	v, err := FromSlice([]float32{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, tensor.Shape{3, 1}, v.Tensor().Shape())
	assert.Equal(t, "[1, 2, 3]", v.String())
	assert.True(t, v.EqualNested([]float32{1, 2, 3}))

	require.NoError(t, v.Set(1, 20))
	x, err := v.Get(1)
	require.NoError(t, err)
	assert.Equal(t, float32(20), x)
	assert.Equal(t, []float32{1, 20, 3}, v.Slice())

	_, err = v.Get(3)
	assert.ErrorIs(t, err, tensor.ErrIndexOutOfRange)

	z, err := ZerosVec[float32](3)
	require.NoError(t, err)
	assert.False(t, z.Equal(v))
	require.NoError(t, z.Tensor().AddScalar(1))
	assert.True(t, z.EqualNested([]float32{1, 1, 1}))
}

func TestMatrixVectorProduct(t *testing.T) {
	m, err := FromRows([][]int32{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	v, err := FromSlice([]int32{1, 0, -1})
	require.NoError(t, err)

	got, err := m.Mul(v.Matrix())
	require.NoError(t, err)
	assert.True(t, got.EqualNested([][]int32{{-2}, {-2}}))
}

func TestVectorMat(t *testing.T) {
	v, err := FromSlice([]float64{1, 2, 3})
	require.NoError(t, err)

	g := v.Mat()
	r, c := g.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 1, c)

	dot := mat.Dot(mat.NewVecDense(3, []float64{1, 1, 1}), mat.NewVecDense(3, v.Slice()))
	assert.InDelta(t, 6.0, dot, 1e-12)
	assert.InDelta(t, 2.0, g.At(1, 0), 1e-12)
	assert.Panics(t, func() { g.At(3, 0) })
}

func TestFromMat(t *testing.T) {
	d := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	m, err := FromMat(d)
	require.NoError(t, err)
	assert.True(t, m.EqualNested([][]float64{{1, 2, 3}, {4, 5, 6}}))

	mt, err := FromMat(d.T())
	require.NoError(t, err)
	assert.True(t, mt.EqualNested([][]float64{{1, 4}, {2, 5}, {3, 6}}))

	assert.True(t, mat.Equal(d, m.ToDense()))
}
