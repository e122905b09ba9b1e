// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ndarray/linalg"
	"github.com/born-ml/ndarray/tensor"
)

func TestMatrixVector(t *testing.T) {
	a, err := linalg.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	x, err := linalg.FromSlice([]float64{1, 1})
	require.NoError(t, err)

	y, err := a.Mul(x.Matrix())
	require.NoError(t, err)
	assert.True(t, y.EqualNested([][]float64{{3}, {7}}))

	var want mat.Dense
	want.Mul(mat.NewDense(2, 2, []float64{1, 2, 3, 4}), mat.NewVecDense(2, []float64{1, 1}))
	assert.True(t, mat.Equal(&want, y.Mat()))
}

func TestWrapRejectsRank3(t *testing.T) {
	x, err := tensor.Zeros[int32](tensor.Shape{1, 2, 3})
	require.NoError(t, err)

	_, err = linalg.Wrap(x)
	assert.ErrorIs(t, err, tensor.ErrDimensionMismatch)
}

func TestFromMatRoundTrip(t *testing.T) {
	d := mat.NewDense(2, 2, []float64{0.5, -1, 2, 8})
	m, err := linalg.FromMat(d)
	require.NoError(t, err)
	assert.True(t, mat.Equal(d, m.ToDense()))

	z, err := linalg.ZerosVec[float64](2)
	require.NoError(t, err)
	assert.Equal(t, 2, z.Len())
}
