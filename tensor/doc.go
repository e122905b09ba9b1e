// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides strided n-dimensional arrays over a flat numeric
// buffer.
//
// # Overview
//
// A Tensor owns its buffer. Views describe other arrangements of the same
// buffer by shape, strides and offset, so axis moves, slicing, batching,
// permutation, transposition and flattening never copy data:
//   - Tensor[T]: owns the buffer, created by constructors and arithmetic
//   - View[T]: read-only window, any number may be alive
//   - ViewMut[T]: writable window, one family per tensor at a time
//
// # Basic Usage
//
//	import "github.com/born-ml/ndarray/tensor"
//
//	func main() {
//	    x, _ := tensor.FromVec[float32]([][]float32{{1, 2, 3}, {4, 5, 6}})
//	    w, _ := tensor.FromShape(tensor.Shape{3, 2}, []float32{1, 0, 0, 1, 1, 1})
//
//	    y, _ := x.Mul(w)     // [2, 2] matrix product
//	    row, _ := x.Slice([]int{1})
//	    z, _ := x.Add(row)   // row broadcast over the leading axis
//	    fmt.Println(y, z)
//	}
//
// # Supported Data Types
//
// Elements satisfy the Numeric constraint: int8, uint8, int32, uint32,
// int64, uint64, float32 and float64 (and named types over them).
//
// # Broadcasting
//
// Add and Sub follow NumPy rules. Shapes are aligned on their trailing axes;
// two sizes are compatible when equal or when one of them is 1:
//
//	a, _ := tensor.Zeros[float32](tensor.Shape{3, 1}) // (3, 1)
//	b, _ := tensor.Zeros[float32](tensor.Shape{4})    // (4)
//	c, _ := a.Add(b)                                  // (3, 4)
//
// Mul treats the last two axes as matrices and broadcasts the leading batch
// axes the same way: (5, 1, 2, 3) x (4, 3, 2) gives (5, 4, 2, 2).
//
// # Mutation
//
// Writes go through a ViewMut. Taking one from a Tensor acquires the
// tensor's lease; a second attempt fails with ErrBorrowed until Release:
//
//	v, err := x.SliceMut([]int{0})
//	if err != nil {
//	    return err
//	}
//	defer v.Release()
//	v.MulScalar(2)
//
// Tensor methods that do not return a view (SetVal, AddScalar, Relu, ...)
// take and release the lease themselves.
//
// # Errors
//
// Every fallible operation returns an *Error whose kind is matched with
// errors.Is against ErrInvalidAxis, ErrInvalidSlicing, ErrShapeMismatch,
// ErrDimensionMismatch, ErrShapeMismatchBroadcast, ErrIndexOutOfRange,
// ErrInvalidParam, ErrBorrowed or Err.
package tensor
