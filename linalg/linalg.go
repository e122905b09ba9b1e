// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg provides rank-2 Matrix and column Vector wrappers over
// tensor.Tensor, with zero-copy adapters to gonum's mat.Matrix.
//
// Example:
//
//	import "github.com/born-ml/ndarray/linalg"
//
//	func main() {
//	    a, _ := linalg.FromRows([][]float64{{1, 2}, {3, 4}})
//	    x, _ := linalg.FromSlice([]float64{1, 1})
//	    y, _ := a.Mul(x.Matrix()) // [[3], [7]]
//	    fmt.Println(mat.Formatted(y.Mat()))
//	}
package linalg

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ndarray/internal/linalg"
	"github.com/born-ml/ndarray/tensor"
)

// Matrix is a rank-2 tensor with row and column accessors.
type Matrix[T tensor.Numeric] = linalg.Matrix[T]

// Vector is a column vector stored as an [n, 1] tensor.
type Vector[T tensor.Numeric] = linalg.Vector[T]

// Wrap adopts a rank-2 tensor without copying it.
func Wrap[T tensor.Numeric](t *tensor.Tensor[T]) (*Matrix[T], error) {
	return linalg.Wrap(t)
}

// Zeros creates a rows x cols matrix of zeros.
func Zeros[T tensor.Numeric](rows, cols int) (*Matrix[T], error) {
	return linalg.Zeros[T](rows, cols)
}

// FromRows builds a matrix from equal-length row slices.
func FromRows[T tensor.Numeric](rows [][]T) (*Matrix[T], error) {
	return linalg.FromRows(rows)
}

// FromShape builds a rows x cols matrix from row-major data.
func FromShape[T tensor.Numeric](rows, cols int, data []T) (*Matrix[T], error) {
	return linalg.FromShape(rows, cols, data)
}

// FromOneHot one-hot encodes labels into a [len(labels), classes] matrix.
func FromOneHot[L comparable](labels []L) (*Matrix[uint8], error) {
	return linalg.FromOneHot(labels)
}

// FromMat copies any gonum matrix into a new float64 Matrix.
func FromMat(a mat.Matrix) (*Matrix[float64], error) {
	return linalg.FromMat(a)
}

// ZerosVec creates a column vector of n zeros.
func ZerosVec[T tensor.Numeric](n int) (*Vector[T], error) {
	return linalg.ZerosVec[T](n)
}

// FromSlice builds a column vector holding a copy of data.
func FromSlice[T tensor.Numeric](data []T) (*Vector[T], error) {
	return linalg.FromSlice(data)
}
