// Package dist draws flat float32 sample sequences used to seed tensors:
// uniform and normal distributions plus their He-scaled variants.
//
// Sampling is delegated to gonum's stat/distuv. Invalid parameters fail with
// the tensor package's generic Err kind.
package dist

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/born-ml/ndarray/internal/tensor"
)

// errParam is wrapped by every parameter validation failure.
var errParam = errors.New("dist: invalid distribution parameter")

// sampler is satisfied by the distuv distributions used here.
type sampler interface {
	Rand() float64
}

// Uniform draws n samples from the half-open range [lo, hi).
func Uniform(n int, lo, hi float32) ([]float32, error) {
	if !finite(lo) || !finite(hi) || lo >= hi {
		return nil, paramError("uniform range [%v, %v) is empty or not finite", lo, hi)
	}
	return sample(n, distuv.Uniform{Min: float64(lo), Max: float64(hi)})
}

// UniformHe draws n samples from U(-b, b) with b = sqrt(6 / fanIn).
func UniformHe(n, fanIn int) ([]float32, error) {
	if fanIn <= 0 {
		return nil, paramError("fan-in must be positive, got %d", fanIn)
	}
	bound := float32(math.Sqrt(6 / float64(fanIn)))
	return Uniform(n, -bound, bound)
}

// Normal draws n samples from N(mean, sd^2).
func Normal(n int, mean, sd float32) ([]float32, error) {
	if !finite(mean) || !finite(sd) || sd < 0 {
		return nil, paramError("normal(mean=%v, sd=%v) is not a valid distribution", mean, sd)
	}
	return sample(n, distuv.Normal{Mu: float64(mean), Sigma: float64(sd)})
}

// NormalHe draws n samples from N(0, 2 / fanIn).
func NormalHe(n, fanIn int) ([]float32, error) {
	if fanIn <= 0 {
		return nil, paramError("fan-in must be positive, got %d", fanIn)
	}
	return Normal(n, 0, float32(math.Sqrt(2/float64(fanIn))))
}

// Standard draws n samples from the standard normal distribution.
func Standard(n int) ([]float32, error) {
	return Normal(n, 0, 1)
}

// Tensor draws one sample per element of shape and wraps them in a tensor.
//
// Example:
//
//	w, err := dist.Tensor(tensor.Shape{784, 128}, func(n int) ([]float32, error) {
//		return dist.NormalHe(n, 784)
//	})
func Tensor(shape tensor.Shape, draw func(n int) ([]float32, error)) (*tensor.Tensor[float32], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	samples, err := draw(shape.NumElements())
	if err != nil {
		return nil, err
	}
	return tensor.FromShape(shape, samples)
}

func sample(n int, d sampler) ([]float32, error) {
	if n < 0 {
		return nil, paramError("sample count must not be negative, got %d", n)
	}
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(d.Rand())
	}
	return out, nil
}

func finite(x float32) bool {
	return !math.IsNaN(float64(x)) && !math.IsInf(float64(x), 0)
}

func paramError(format string, args ...any) error {
	return tensor.Wrap(fmt.Errorf("%w: "+format, append([]any{errParam}, args...)...))
}
