// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dist draws random samples for initializing tensors.
//
// Example:
//
//	import (
//	    "github.com/born-ml/ndarray/dist"
//	    "github.com/born-ml/ndarray/tensor"
//	)
//
//	func main() {
//	    w, err := dist.Tensor(tensor.Shape{784, 128}, func(n int) ([]float32, error) {
//	        return dist.NormalHe(n, 784)
//	    })
//	}
package dist

import (
	"github.com/born-ml/ndarray/internal/dist"
	"github.com/born-ml/ndarray/tensor"
)

// Uniform draws n samples from [lo, hi).
func Uniform(n int, lo, hi float32) ([]float32, error) {
	return dist.Uniform(n, lo, hi)
}

// UniformHe draws n samples from U(-b, b) with b = sqrt(6 / fanIn).
func UniformHe(n, fanIn int) ([]float32, error) {
	return dist.UniformHe(n, fanIn)
}

// Normal draws n samples from N(mean, sd^2).
func Normal(n int, mean, sd float32) ([]float32, error) {
	return dist.Normal(n, mean, sd)
}

// NormalHe draws n samples from N(0, 2 / fanIn).
func NormalHe(n, fanIn int) ([]float32, error) {
	return dist.NormalHe(n, fanIn)
}

// Standard draws n samples from N(0, 1).
func Standard(n int) ([]float32, error) {
	return dist.Standard(n)
}

// Tensor draws one sample per element of shape.
func Tensor(shape tensor.Shape, draw func(n int) ([]float32, error)) (*tensor.Tensor[float32], error) {
	return dist.Tensor(shape, draw)
}
