// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndarray/internal/tensor"
)

// Type aliases for public API

// Numeric is the constraint for tensor element types.
type Numeric = tensor.Numeric

// Float is the constraint for element types accepted by Softmax.
type Float = tensor.Float

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is an n-dimensional array that owns its buffer.
// All read-only View methods are available on it.
type Tensor[T Numeric] = tensor.Tensor[T]

// View is a read-only, zero-copy window onto a tensor's buffer.
type View[T Numeric] = tensor.View[T]

// ViewMut is an exclusive, writable window onto a tensor's buffer.
type ViewMut[T Numeric] = tensor.ViewMut[T]

// Reader is implemented by *Tensor, *View and *ViewMut.
type Reader[T Numeric] = tensor.Reader[T]

// Mutable is implemented by *Tensor and *ViewMut.
type Mutable[T Numeric] = tensor.Mutable[T]

// Storage is read access to a flat element buffer.
type Storage[T Numeric] = tensor.Storage[T]

// MutableStorage extends Storage with write access.
type MutableStorage[T Numeric] = tensor.MutableStorage[T]

// Error carries the details of a failed tensor operation.
type Error = tensor.Error

// Error kinds, matched with errors.Is.
var (
	ErrInvalidAxis            = tensor.ErrInvalidAxis
	ErrInvalidSlicing         = tensor.ErrInvalidSlicing
	ErrShapeMismatch          = tensor.ErrShapeMismatch
	ErrDimensionMismatch      = tensor.ErrDimensionMismatch
	ErrShapeMismatchBroadcast = tensor.ErrShapeMismatchBroadcast
	ErrIndexOutOfRange        = tensor.ErrIndexOutOfRange
	ErrInvalidParam           = tensor.ErrInvalidParam
	ErrInvalidFileContents    = tensor.ErrInvalidFileContents
	ErrBorrowed               = tensor.ErrBorrowed
	Err                       = tensor.Err
)

// Wrap converts a collaborator error into the generic Err kind.
func Wrap(err error) error {
	return tensor.Wrap(err)
}

// Creation functions

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	x, err := tensor.Zeros[float32](tensor.Shape{2, 3})
func Zeros[T Numeric](shape Shape) (*Tensor[T], error) {
	return tensor.Zeros[T](shape)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	x, err := tensor.Full[float32](tensor.Shape{2, 3}, 3.14)
func Full[T Numeric](shape Shape, value T) (*Tensor[T], error) {
	return tensor.Full(shape, value)
}

// FromVec creates a tensor from a nested slice literal; the nesting gives
// the shape.
//
// Example:
//
//	x, err := tensor.FromVec[int32]([][]int32{{1, 2}, {3, 4}})
func FromVec[T Numeric](nested any) (*Tensor[T], error) {
	return tensor.FromVec[T](nested)
}

// FromVecRef is FromVec.
func FromVecRef[T Numeric](nested any) (*Tensor[T], error) {
	return tensor.FromVecRef[T](nested)
}

// FromShape creates a tensor of the given shape from flat row-major data.
//
// Example:
//
//	x, err := tensor.FromShape(tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
func FromShape[T Numeric](shape Shape, data []T) (*Tensor[T], error) {
	return tensor.FromShape(shape, data)
}

// FromOneHot one-hot encodes labels, numbering classes by first appearance.
//
// Example:
//
//	x, err := tensor.FromOneHot([]string{"cat", "dog", "cat"}) // [[1, 0], [0, 1], [1, 0]]
func FromOneHot[L comparable](labels []L) (*Tensor[uint8], error) {
	return tensor.FromOneHot(labels)
}

// ViewOf wraps a caller-owned slice as a read-only view without copying.
func ViewOf[T Numeric](shape Shape, data []T) (*View[T], error) {
	return tensor.ViewOf(shape, data)
}

// ViewMutOf wraps a caller-owned slice as a writable view without copying.
func ViewMutOf[T Numeric](shape Shape, data []T) (*ViewMut[T], error) {
	return tensor.ViewMutOf(shape, data)
}

// Operations

// Add returns a + b elementwise with broadcasting.
func Add[T Numeric](a, b Reader[T]) (*Tensor[T], error) {
	return tensor.Add(a, b)
}

// Sub returns a - b elementwise with broadcasting.
func Sub[T Numeric](a, b Reader[T]) (*Tensor[T], error) {
	return tensor.Sub(a, b)
}

// Mul returns the batched matrix product of a and b.
func Mul[T Numeric](a, b Reader[T]) (*Tensor[T], error) {
	return tensor.Mul(a, b)
}

// Softmax normalizes x in place along axis and returns the axis-first view.
// When x is a *Tensor the returned view holds its lease and must be released.
//
// Example:
//
//	v, err := tensor.Softmax[float32](logits, 1)
//	if err != nil {
//	    return err
//	}
//	v.Release()
func Softmax[F Float](x Mutable[F], axis int) (*ViewMut[F], error) {
	return tensor.Softmax(x, axis)
}

// Utility functions

// BroadcastShapes computes the broadcast shape for two shapes following NumPy broadcasting rules.
//
// Example:
//
//	shape, needsBroadcast, err := tensor.BroadcastShapes(
//	    tensor.Shape{3, 1},
//	    tensor.Shape{3, 4},
//	)
//	// shape = [3, 4], needsBroadcast = true
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}

// MatMulShapes computes the output shape of a batched matrix product.
func MatMulShapes(a, b Shape) (Shape, error) {
	return tensor.MatMulShapes(a, b)
}
