// Package tensor implements the ndarray engine: a strided n-dimensional view
// abstraction over a flat numeric buffer.
package tensor

// Numeric is a constraint for supported tensor element types.
// It uses Go generics to ensure compile-time type safety.
type Numeric interface {
	~int8 | ~uint8 | ~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64
}

// Float is the subset of Numeric accepted by kernels that exponentiate.
type Float interface {
	~float32 | ~float64
}
